package solenoid

import (
	log "github.com/sirupsen/logrus"
)

// Tracer receives the intermediate quantities of a model evaluation.
// Model accessors call Emit inline, so implementations should be cheap.
type Tracer interface {
	Emit(op string, values map[string]float64)
}

// TraceFunc adapts a plain function to the Tracer interface.
type TraceFunc func(op string, values map[string]float64)

func (f TraceFunc) Emit(op string, values map[string]float64) {
	f(op, values)
}

// NewLogTracer returns a Tracer that writes one structured debug entry per
// operation through logger.
func NewLogTracer(logger *log.Logger) Tracer {
	return TraceFunc(func(op string, values map[string]float64) {
		fields := make(log.Fields, len(values))
		for k, v := range values {
			fields[k] = v
		}
		logger.WithFields(fields).Debug(op)
	})
}

func (d Design) emit(op string, values map[string]float64) {
	if d.Trace != nil {
		d.Trace.Emit(op, values)
	}
}
