// Package result defines the tagged success/failure envelope returned by every
// cross-boundary operation, together with the canonical AppError shape.
package result

// Unit is the payload for operations that succeed without data.
type Unit struct{}

// Result carries either a success value or an AppError, never both. It is
// always returned, never panicked; callers check OK() before touching either
// arm.
type Result[T any] struct {
	ok   bool
	data T
	err  *AppError
}

func Ok[T any](data T) Result[T] {
	return Result[T]{ok: true, data: data}
}

func Err[T any](err *AppError) Result[T] {
	if err == nil {
		err = NewAppError(CodeInternalError, "errors.internal")
	}
	return Result[T]{err: err}
}

func (r Result[T]) OK() bool {
	return r.ok
}

// Value returns the success payload. Only meaningful when OK() is true; the
// zero value of T is returned otherwise.
func (r Result[T]) Value() T {
	return r.data
}

// Err returns the failure payload, nil when OK() is true.
func (r Result[T]) Err() *AppError {
	if r.ok {
		return nil
	}
	return r.err
}

// MapErr rebuilds a failed Result under a different payload type, preserving
// the error. Used by adapters that fan a gateway failure out to their own
// return type.
func MapErr[T, U any](r Result[T]) Result[U] {
	return Err[U](r.Err())
}
