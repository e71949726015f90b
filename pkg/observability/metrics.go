package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// MetricsConfig holds metrics configuration.
type MetricsConfig struct {
	ServiceName string
}

// InitMetrics initializes the Prometheus metrics exporter.
// Returns the MeterProvider and the HTTP handler for the /metrics endpoint.
func InitMetrics(_ MetricsConfig) (*sdkmetric.MeterProvider, http.Handler, error) {
	exporter, err := promexporter.New()
	if err != nil {
		return nil, nil, err
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exporter),
	)

	return provider, promhttp.Handler(), nil
}

// UnderwritingMetrics counts evaluation outcomes for dashboards and alerting.
type UnderwritingMetrics struct {
	DecisionsTotal   *prometheus.CounterVec
	RuleFailuresTotal *prometheus.CounterVec
}

// NewUnderwritingMetrics registers the underwriting counters with the default
// Prometheus registry.
func NewUnderwritingMetrics() *UnderwritingMetrics {
	return NewUnderwritingMetricsWith(prometheus.DefaultRegisterer)
}

// NewUnderwritingMetricsWith registers the underwriting counters with the
// given registerer.
func NewUnderwritingMetricsWith(reg prometheus.Registerer) *UnderwritingMetrics {
	factory := promauto.With(reg)
	return &UnderwritingMetrics{
		DecisionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "underwriting_decisions_total",
			Help: "Total underwriting decisions by outcome",
		}, []string{"decision"}),
		RuleFailuresTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "underwriting_rule_failures_total",
			Help: "Total rule failures by rule name and criticality",
		}, []string{"rule", "critical"}),
	}
}

// RecordDecision increments the decision counter for the given outcome.
func (m *UnderwritingMetrics) RecordDecision(decision string) {
	m.DecisionsTotal.WithLabelValues(decision).Inc()
}

// RecordRuleFailure increments the failure counter for a rule.
func (m *UnderwritingMetrics) RecordRuleFailure(rule string, critical bool) {
	label := "false"
	if critical {
		label = "true"
	}
	m.RuleFailuresTotal.WithLabelValues(rule, label).Inc()
}
