package report

import "github.com/hirelens/hirelens/pkg/logger"

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithLogger sets a custom logger for the engine.
func WithLogger(log logger.Logger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

// WithHiredListLimit caps the hiredCandidates list.
func WithHiredListLimit(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.hiredListLimit = n
		}
	}
}

// WithTopRecruiterLimit caps the topHrByCandidates list.
func WithTopRecruiterLimit(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.topRecruiterLimit = n
		}
	}
}

// WithDegradedSchedules marks the schedule source as the no-op substitute
// so degraded reports are visible in metrics.
func WithDegradedSchedules() Option {
	return func(e *Engine) {
		e.degradedSchedules = true
	}
}
