package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	applicationsSubmitted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "applications_submitted_total",
		Help: "Number of job applications accepted.",
	})

	contactDispatches = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "contact_dispatch_total",
		Help: "Number of contact-form mail dispatch attempts by outcome.",
	}, []string{"outcome"})
)

// IncApplicationSubmitted increments the accepted-applications counter.
func IncApplicationSubmitted() {
	applicationsSubmitted.Inc()
}

// IncContactDispatch records a mail dispatch attempt. Outcome is "ok" or "error".
func IncContactDispatch(outcome string) {
	contactDispatches.WithLabelValues(outcome).Inc()
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
