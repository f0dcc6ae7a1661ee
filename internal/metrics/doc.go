// Package metrics records compose observability.
//
// Components take a Recorder and default to NoopRecorder, so metrics
// collection needs no nil checks. The watch command swaps in a
// PrometheusRecorder and exposes it through HTTPHandler.
package metrics
