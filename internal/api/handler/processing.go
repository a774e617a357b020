package handler

import (
	"bytes"
	"io"
	"net/http"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/nalk-ai-api/internal/domain"
	"github.com/vfg2006/nalk-ai-api/internal/usecases/processing"
	"github.com/vfg2006/nalk-ai-api/pkg/apiErrors"
	"github.com/vfg2006/nalk-ai-api/pkg/log"
	"github.com/vfg2006/nalk-ai-api/pkg/metrics"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type ProcessRequest struct {
	Question string           `json:"question"`
	Data     []map[string]any `json:"data"`
}

type AnalyzeRequest struct {
	Question string `json:"question"`
}

type AnalyzeResponse struct {
	Success  bool                    `json:"success"`
	Analysis domain.QuestionAnalysis `json:"analysis"`
}

// ProcessQuestion responde a pergunta do chat sobre os deals enviados
func ProcessQuestion(service processing.Processor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req ProcessRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		if req.Question == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Question is required", nil)
			return
		}

		logger.WithFields(log.Fields{
			"question_text": req.Question,
			"records":       len(req.Data),
		}).Info("handler: processando pergunta")

		startTime := time.Now()
		envelope := service.Process(r.Context(), req.Question, req.Data)
		observeQuestion(envelope, len(req.Data), time.Since(startTime))

		logger.WithField("question_success", envelope.Success).Info("handler: pergunta processada")

		writeJSON(w, logger, envelope)
	}
}

// AnalyzeQuestion apenas classifica a pergunta, sem processar dados
func AnalyzeQuestion(service processing.Processor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AnalyzeRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		if req.Question == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Question is required", nil)
			return
		}

		writeJSON(w, log.ForContext(r.Context()), AnalyzeResponse{
			Success:  true,
			Analysis: service.Analyze(req.Question),
		})
	}
}

// SmokeTest executa o pipeline com a carga fixa de teste
func SmokeTest(service processing.Processor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, log.ForContext(r.Context()), service.SmokeTest(r.Context()))
	}
}

func observeQuestion(envelope *domain.Envelope, records int, duration time.Duration) {
	intent := metrics.UnknownIntent
	if envelope.Analysis != nil {
		intent = string(envelope.Analysis.Type)
	}

	metrics.QuestionsProcessed.WithLabelValues(intent, strconv.FormatBool(envelope.Success)).Inc()
	metrics.QuestionDuration.WithLabelValues(intent).Observe(duration.Seconds())
	metrics.RecordsReceived.Observe(float64(records))
}

// decodeRequest lê o corpo JSON. Corpo vazio ou nulo é tratado como requisição sem dados.
func decodeRequest(w http.ResponseWriter, r *http.Request, target any) bool {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao ler o corpo da requisição", nil)
		return false
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "No data provided", nil)
		return false
	}

	if err := json.Unmarshal(trimmed, target); err != nil {
		apiErr := apiErrors.FromError(errors.Wrap(err, "corpo da requisição"), apiErrors.ErrInvalidFormat)
		apiErrors.WriteError(w, apiErr.Code, "Formato de requisição inválido", apiErr.Message)
		return false
	}

	return true
}

func writeJSON(w http.ResponseWriter, logger log.Logger, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.WithError(err).Error("handler: erro ao enviar resposta")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
	}
}
