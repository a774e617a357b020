package handler

import (
	"net/http"

	"github.com/vfg2006/nalk-ai-api/internal/api/handler/router"
	"github.com/vfg2006/nalk-ai-api/internal/usecases/processing"
	"github.com/vfg2006/nalk-ai-api/pkg/metrics"
)

func Healthcheck(serviceName string) []router.Route {
	return []router.Route{
		{
			Path:    "/health",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(serviceName),
		},
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metrics.Handler(),
		},
	}
}

// Processing retorna as rotas do pipeline de perguntas
func Processing(service processing.Processor) []router.Route {
	return []router.Route{
		{
			Path:    "/process",
			Method:  http.MethodPost,
			Handler: ProcessQuestion(service),
		},
		{
			Path:    "/analyze",
			Method:  http.MethodPost,
			Handler: AnalyzeQuestion(service),
		},
		{
			Path:    "/test",
			Method:  http.MethodGet,
			Handler: SmokeTest(service),
		},
	}
}
