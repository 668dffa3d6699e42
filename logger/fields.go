package logger

import (
	"time"
)

// Standard field keys.
const (
	FieldComponent = "component"
	FieldRunID     = "run_id"
	FieldStage     = "stage"
	FieldMode      = "mode"
	FieldPart      = "part"
	FieldPath      = "path"
	FieldSeeds     = "seeds"
	FieldSegments  = "segments"
	FieldWorkers   = "workers"
	FieldResult    = "result"
	FieldOperation = "operation"
	FieldCode      = "code"
	FieldError     = "error"
	FieldDuration  = "duration_ms"
)

// Fields builds a map from alternating key-value pairs. Non-string keys and a
// trailing odd value are dropped.
//
//	log.Info("solved", logger.Fields(logger.FieldPart, 2, logger.FieldResult, 46))
func Fields(kvs ...any) map[string]any {
	m := make(map[string]any, len(kvs)/2)
	for i := 0; i < len(kvs)-1; i += 2 {
		if key, ok := kvs[i].(string); ok {
			m[key] = kvs[i+1]
		}
	}
	return m
}

// ErrorFields creates fields for an operation that failed. Application
// errors also contribute their code.
func ErrorFields(op string, err error) map[string]any {
	m := map[string]any{
		FieldOperation: op,
		FieldError:     err.Error(),
	}
	if appErr, ok := asCoded(err); ok {
		m[FieldCode] = appErr
	}
	return m
}

// DurationFields creates fields for a timed operation.
func DurationFields(op string, d time.Duration) map[string]any {
	return map[string]any{
		FieldOperation: op,
		FieldDuration:  d.Milliseconds(),
	}
}
