package domain

// FallbackAnswer é a resposta genérica enviada quando o processamento falha
const FallbackAnswer = "Ops! Ocorreu um erro ao processar sua pergunta. Tente novamente."

// Envelope é a resposta do pipeline para o chamador
type Envelope struct {
	Success  bool              `json:"success"`
	Answer   string            `json:"answer"`
	Analysis *QuestionAnalysis `json:"analysis,omitempty"`
	Result   Result            `json:"result,omitempty"`
	Error    string            `json:"error,omitempty"`
}

// NewFailureEnvelope monta o envelope de erro com a resposta genérica
func NewFailureEnvelope(err error) *Envelope {
	return &Envelope{
		Success: false,
		Error:   err.Error(),
		Answer:  FallbackAnswer,
	}
}

// SmokeTestReport é a resposta do teste com dados fixos
type SmokeTestReport struct {
	TestQuestion  string    `json:"test_question"`
	TestDataCount int       `json:"test_data_count"`
	Result        *Envelope `json:"result"`
}
