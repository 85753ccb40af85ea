package engine

import (
	"fmt"

	"github.com/shophq/opscore/internal/metrics"
	"github.com/shophq/opscore/internal/observability"
	"go.uber.org/zap"
)

// FaultKind classifies operation failures for presentation callers.
type FaultKind string

const (
	PermissionDenied FaultKind = "permission_denied"
	DuplicateRecord  FaultKind = "duplicate_record"
	ValidationError  FaultKind = "validation_error"
	SettingsMissing  FaultKind = "settings_missing"
	StorageError     FaultKind = "storage_error"
)

// Fault is a classified failure with a short user-facing message. The wrapped
// cause stays internal (logs, sentry); it is never shown to callers.
type Fault struct {
	Kind    FaultKind
	Message string
	cause   error
}

func (f *Fault) Error() string {
	if f.cause != nil {
		return fmt.Sprintf("%s: %s: %v", f.Kind, f.Message, f.cause)
	}
	return fmt.Sprintf("%s: %s", f.Kind, f.Message)
}

func (f *Fault) Unwrap() error { return f.cause }

// Result is the uniform shape every public engine operation returns.
// Operations never return a raw error: failures come back classified inside
// the result, successes may still carry a warning in Message.
type Result[T any] struct {
	Success bool
	Data    T
	Message string
	Err     *Fault
}

func ok[T any](data T, message string) Result[T] {
	return Result[T]{Success: true, Data: data, Message: message}
}

func fail[T any](kind FaultKind, message string, cause error) Result[T] {
	return Result[T]{Err: &Fault{Kind: kind, Message: message, cause: cause}}
}

// reject classifies a pre-write failure (authorization, validation, duplicate).
// Counted but not sent to sentry: these are expected outcomes, not faults in
// the engine.
func reject[T any](e *Engine, op string, kind FaultKind, message string, cause error) Result[T] {
	metrics.EngineOpErrors.WithLabelValues(op, string(kind)).Inc()
	e.log.Info("operation rejected",
		zap.String("op", op), zap.String("kind", string(kind)), zap.Error(cause))
	return fail[T](kind, message, cause)
}

// storageFail wraps an unexpected persistence error. These do go to sentry.
func storageFail[T any](e *Engine, op, message string, cause error) Result[T] {
	metrics.EngineOpErrors.WithLabelValues(op, string(StorageError)).Inc()
	e.log.Error("operation failed", zap.String("op", op), zap.Error(cause))
	observability.CaptureErr(cause)
	return fail[T](StorageError, message, cause)
}
