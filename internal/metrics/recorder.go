package metrics

import "time"

// Outcome enumerates compose results for counters.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeFailed  Outcome = "failed"
)

// Recorder defines observability hooks for configuration composition.
type Recorder interface {
	ObserveComposeDuration(d time.Duration)
	IncComposeOutcome(outcome Outcome)
	SetOverrides(n int)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveComposeDuration(time.Duration) {}
func (NoopRecorder) IncComposeOutcome(Outcome)            {}
func (NoopRecorder) SetOverrides(int)                     {}
