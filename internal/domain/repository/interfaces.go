package repository

// Remote call outcomes reported to Metrics.
const (
	OutcomeOK        = "ok"
	OutcomeNotFound  = "not_found"
	OutcomeMalformed = "malformed"
	OutcomeError     = "error"
)

// Metrics records dashboard telemetry.
type Metrics interface {
	RecordRemoteCall(op, outcome string, seconds float64)
	RecordStaleResult(slot string)
	RecordPhase(phase string)
	RecordError(kind string)
}

// NopMetrics discards everything. Useful for tests and the terminal surface.
type NopMetrics struct{}

func (NopMetrics) RecordRemoteCall(string, string, float64) {}
func (NopMetrics) RecordStaleResult(string)                  {}
func (NopMetrics) RecordPhase(string)                        {}
func (NopMetrics) RecordError(string)                        {}
