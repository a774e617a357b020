package domain

// Intent é a classificação do propósito da pergunta
type Intent string

const (
	IntentSales       Intent = "sales"
	IntentLossReasons Intent = "loss_reasons"
	IntentRanking     Intent = "ranking"
	IntentConversion  Intent = "conversion"
	IntentFunnel      Intent = "funnel"
	IntentSummary     Intent = "summary"
)

// StatusFilter é o filtro de status extraído da pergunta
type StatusFilter string

const (
	StatusFilterClosed     StatusFilter = "closed"
	StatusFilterLost       StatusFilter = "lost"
	StatusFilterInProgress StatusFilter = "in_progress"
	StatusFilterAll        StatusFilter = "all"
)

// Period é um filtro temporal de mês/ano
type Period struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

// QuestionAnalysis é o resultado da análise de uma pergunta
type QuestionAnalysis struct {
	Type              Intent         `json:"type"`
	Period            *Period        `json:"period"`
	StatusFilter      StatusFilter   `json:"status_filter"`
	AdditionalFilters map[string]any `json:"additional_filters"`
	OriginalQuestion  string         `json:"original_question"`
}
