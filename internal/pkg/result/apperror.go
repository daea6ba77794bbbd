package result

import "time"

// AppError is the canonical error shape crossing every boundary. Code is a
// stable machine-readable taxonomy key, MessageKey indexes a localized user
// message, and ClientTimestamp is always stamped at construction time, never
// taken from a provider payload.
type AppError struct {
	Code             string              `json:"code"`
	MessageKey       string              `json:"messageKey"`
	Details          string              `json:"details,omitempty"`
	TraceID          string              `json:"traceId,omitempty"`
	HTTPStatus       int                 `json:"httpStatus,omitempty"`
	ClientTimestamp  string              `json:"clientTimestamp"`
	ValidationErrors map[string][]string `json:"validationErrors,omitempty"`
}

func (e *AppError) Error() string {
	if e.Details != "" {
		return e.Code + ": " + e.Details
	}
	return e.Code
}

// Option mutates an AppError during construction.
type Option func(*AppError)

func WithDetails(details string) Option {
	return func(e *AppError) { e.Details = details }
}

func WithStatus(status int) Option {
	return func(e *AppError) { e.HTTPStatus = status }
}

func WithTraceID(traceID string) Option {
	return func(e *AppError) { e.TraceID = traceID }
}

func WithValidationErrors(fieldErrors map[string][]string) Option {
	return func(e *AppError) { e.ValidationErrors = fieldErrors }
}

func NewAppError(code, messageKey string, opts ...Option) *AppError {
	e := &AppError{
		Code:            code,
		MessageKey:      messageKey,
		ClientTimestamp: time.Now().UTC().Format(time.RFC3339),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// FromException converts a low-level error into an AppError, carrying the
// error text as details.
func FromException(err error, code, messageKey string, status int) *AppError {
	details := ""
	if err != nil {
		details = err.Error()
	}
	return NewAppError(code, messageKey, WithDetails(details), WithStatus(status))
}

// Validation builds the field-level failure used by profile and input checks.
// Callers get a field->messages map, never just a generic message.
func Validation(fieldErrors map[string][]string) *AppError {
	return NewAppError(CodeValidationError, "errors.validation", WithValidationErrors(fieldErrors))
}

func NotImplemented(details string) *AppError {
	return NewAppError(CodeNotImplemented, "errors.notImplemented", WithDetails(details), WithStatus(501))
}
