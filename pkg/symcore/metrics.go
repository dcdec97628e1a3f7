package symcore

import (
	gometrics "github.com/hashicorp/go-metrics"
)

// metricsSink wraps a *gometrics.Metrics (hashicorp/go-metrics) that the
// engine reports its rewrite and fold counters through. Every method on a
// nil *metricsSink is a no-op, so an Engine built without WithMetrics pays
// no instrumentation cost.
type metricsSink struct {
	m *gometrics.Metrics
}

// NewMetrics wraps the global hashicorp/go-metrics instance (or one
// constructed by the caller via gometrics.New) for use with WithMetrics.
func NewMetrics(m *gometrics.Metrics) *metricsSink {
	return &metricsSink{m: m}
}

func (s *metricsSink) incr(key ...string) {
	if s == nil || s.m == nil {
		return
	}
	s.m.IncrCounter(key, 1)
}

func (s *metricsSink) stepApplied(ruleName string) {
	s.incr("symcore", "rewrite", "steps")
	if ruleName != "" {
		s.incr("symcore", "rewrite", "rule", ruleName)
	}
}

func (s *metricsSink) foldAttempt(name string) {
	s.incr("symcore", "fold", "attempts")
	_ = name
}

func (s *metricsSink) foldSuccess(name string) {
	s.incr("symcore", "fold", "success")
	_ = name
}

func (s *metricsSink) guardSkipped(ruleName string) {
	s.incr("symcore", "guard", "skipped")
	_ = ruleName
}

func (s *metricsSink) nonTermination() {
	s.incr("symcore", "nonTermination")
}
