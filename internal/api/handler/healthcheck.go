package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
)

type HealthcheckResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

func HealthcheckHandler(serviceName string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		err := json.NewEncoder(w).Encode(HealthcheckResponse{
			Status:  "healthy",
			Service: serviceName,
		})
		if err != nil {
			logrus.WithError(err).Warn("error responding to healthcheck")
		}
	})
}
