// Package metrics registra as métricas Prometheus do processador de perguntas
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// UnknownIntent rotula perguntas que falharam antes da análise
const UnknownIntent = "unknown"

var (
	QuestionsProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nalk_questions_processed_total",
			Help: "Total de perguntas processadas por intenção e resultado",
		},
		[]string{"intent", "success"},
	)

	QuestionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "nalk_question_duration_seconds",
			Help:    "Duração do processamento de perguntas em segundos",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"intent"},
	)

	RecordsReceived = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "nalk_question_records",
			Help:    "Quantidade de registros de deals recebidos por pergunta",
			Buckets: prometheus.ExponentialBuckets(1, 10, 7),
		},
	)

	SmokeChecks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nalk_smoke_checks_total",
			Help: "Total de execuções do teste periódico com dados fixos",
		},
		[]string{"success"},
	)
)

// Handler expõe as métricas no formato Prometheus
func Handler() http.Handler {
	return promhttp.Handler()
}
