package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Counters for the core pipeline. Crisis detections and degraded analyses are
// the two signals worth alerting on; the rest exist for dashboard context.
var (
	MessagesProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mindcare_messages_processed_total",
		Help: "Number of chat messages run through the classification pipeline.",
	}, []string{"category"})

	CrisisDetected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mindcare_crisis_detected_total",
		Help: "Number of messages flagged as crisis, by trigger.",
	}, []string{"trigger"})

	AnalysisDegraded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mindcare_analysis_degraded_total",
		Help: "Number of sentiment analyses that fell back to a neutral score.",
	})

	ResponderFallback = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mindcare_responder_fallback_total",
		Help: "Number of replies served by the rule-based fallback because the generative responder failed.",
	})

	ResourceLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mindcare_resource_lookups_total",
		Help: "Number of resource directory lookups, by match tier.",
	}, []string{"tier"})

	NotificationsSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mindcare_notifications_total",
		Help: "Number of outbound crisis alerts, by outcome.",
	}, []string{"outcome"})
)

// Handler exposes the Prometheus registry as a Gin handler
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
