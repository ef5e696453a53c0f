package apiclient

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	backendRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "autogestion",
		Subsystem: "backend",
		Name:      "requests_total",
		Help:      "Peticiones al backend REST por método y clase de status (0xx = error de transporte).",
	}, []string{"method", "status_class"})

	authFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "autogestion",
		Subsystem: "backend",
		Name:      "auth_failures_total",
		Help:      "Respuestas 401/403 que invalidaron la sesión.",
	}, []string{"status"})
)

func observe(method string, status int) {
	backendRequests.WithLabelValues(method, fmt.Sprintf("%dxx", status/100)).Inc()
}
