package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/nalk-ai-api/internal/domain"
	"github.com/vfg2006/nalk-ai-api/internal/usecases/processing/mocks"
	"github.com/vfg2006/nalk-ai-api/pkg/apiErrors"
	"github.com/vfg2006/nalk-ai-api/pkg/metrics"
	"go.uber.org/mock/gomock"
)

func TestProcessQuestion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProcessor := mocks.NewMockProcessor(ctrl)

	tests := []struct {
		name     string
		body     string
		setup    func()
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name: "Pergunta processada com sucesso",
			body: `{"question": "Qual o valor das vendas?", "data": [{"win": true, "deal_amount_total": 100}]}`,
			setup: func() {
				mockProcessor.EXPECT().
					Process(gomock.Any(), "Qual o valor das vendas?", []map[string]any{
						{"win": true, "deal_amount_total": float64(100)},
					}).
					Return(&domain.Envelope{
						Success: true,
						Answer:  "resposta",
						Result:  &domain.SalesResult{Type: domain.IntentSales, TotalValue: 100, ClosedDeals: 1},
					})
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)

				var body map[string]any
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, true, body["success"])
				assert.Equal(t, "resposta", body["answer"])

				result := body["result"].(map[string]any)
				assert.Equal(t, "sales", result["type"])
				assert.Equal(t, float64(100), result["total_value"])
			},
		},
		{
			name: "Falha no processamento mantém status 200 com envelope de erro",
			body: `{"question": "Resumo"}`,
			setup: func() {
				mockProcessor.EXPECT().
					Process(gomock.Any(), "Resumo", gomock.Nil()).
					Return(&domain.Envelope{Success: false, Error: "falhou", Answer: domain.FallbackAnswer})
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Contains(t, rec.Body.String(), `"success":false`)
				assert.NotContains(t, rec.Body.String(), `"result"`)
			},
		},
		{
			name:  "Corpo vazio",
			body:  "",
			setup: func() {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Contains(t, rec.Body.String(), apiErrors.ErrInvalidRequest)
			},
		},
		{
			name:  "Pergunta ausente",
			body:  `{"data": []}`,
			setup: func() {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Contains(t, rec.Body.String(), apiErrors.ErrMissingRequiredData)
			},
		},
		{
			name:  "JSON inválido",
			body:  `{"question": `,
			setup: func() {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Contains(t, rec.Body.String(), apiErrors.ErrInvalidFormat)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			req := httptest.NewRequest(http.MethodPost, "/process", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			ProcessQuestion(mockProcessor).ServeHTTP(rec, req)

			tt.validate(t, rec)
		})
	}
}

func TestProcessQuestion_Metrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProcessor := mocks.NewMockProcessor(ctrl)
	mockProcessor.EXPECT().
		Process(gomock.Any(), "Funil", gomock.Any()).
		Return(&domain.Envelope{
			Success:  true,
			Analysis: &domain.QuestionAnalysis{Type: domain.IntentFunnel},
		})

	counter := metrics.QuestionsProcessed.WithLabelValues("funnel", "true")
	before := testutil.ToFloat64(counter)

	rec := httptest.NewRecorder()
	ProcessQuestion(mockProcessor).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/process", strings.NewReader(`{"question": "Funil"}`)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestAnalyzeQuestion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProcessor := mocks.NewMockProcessor(ctrl)
	mockProcessor.EXPECT().
		Analyze("Ranking de vendedores").
		Return(domain.QuestionAnalysis{
			Type:              domain.IntentRanking,
			StatusFilter:      domain.StatusFilterAll,
			AdditionalFilters: map[string]any{},
			OriginalQuestion:  "Ranking de vendedores",
		})

	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(`{"question": "Ranking de vendedores"}`))
	rec := httptest.NewRecorder()

	AnalyzeQuestion(mockProcessor).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body AnalyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, domain.IntentRanking, body.Analysis.Type)
	assert.Nil(t, body.Analysis.Period)
	assert.Equal(t, "Ranking de vendedores", body.Analysis.OriginalQuestion)

	rec = httptest.NewRecorder()
	AnalyzeQuestion(mockProcessor).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(`{}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSmokeTest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProcessor := mocks.NewMockProcessor(ctrl)
	mockProcessor.EXPECT().
		SmokeTest(gomock.Any()).
		Return(&domain.SmokeTestReport{
			TestQuestion:  "Qual o valor vendido em junho de 2025?",
			TestDataCount: 3,
			Result:        &domain.Envelope{Success: true, Answer: "ok"},
		})

	rec := httptest.NewRecorder()
	SmokeTest(mockProcessor).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Qual o valor vendido em junho de 2025?", body["test_question"])
	assert.Equal(t, float64(3), body["test_data_count"])
	assert.Equal(t, true, body["result"].(map[string]any)["success"])
}

func TestHealthcheckHandler(t *testing.T) {
	rec := httptest.NewRecorder()

	HealthcheckHandler("Nalk AI Processor").ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy","service":"Nalk AI Processor"}`, rec.Body.String())
}
