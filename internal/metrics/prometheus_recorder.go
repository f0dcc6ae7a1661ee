package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	composeDuration prom.Histogram
	composeOutcome  *prom.CounterVec
	overrides       prom.Gauge
}

// NewPrometheusRecorder constructs the compose metrics and registers them on reg.
// A nil reg gets a private registry.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		composeDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: "blogbuilder",
			Name:      "compose_duration_seconds",
			Help:      "Duration of theme and site configuration composition",
			Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25},
		}),
		composeOutcome: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "blogbuilder",
			Name:      "compose_outcomes_total",
			Help:      "Compose outcomes by final status",
		}, []string{"outcome"}),
		overrides: prom.NewGauge(prom.GaugeOpts{
			Namespace: "blogbuilder",
			Name:      "site_overrides",
			Help:      "Theme values replaced by the site in the last composition",
		}),
	}
	reg.MustRegister(pr.composeDuration, pr.composeOutcome, pr.overrides)
	return pr
}

func (p *PrometheusRecorder) ObserveComposeDuration(d time.Duration) {
	p.composeDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncComposeOutcome(outcome Outcome) {
	p.composeOutcome.WithLabelValues(string(outcome)).Inc()
}

func (p *PrometheusRecorder) SetOverrides(n int) {
	p.overrides.Set(float64(n))
}
