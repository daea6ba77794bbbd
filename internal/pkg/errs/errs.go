// Package errs wraps cockroachdb/errors for internal error plumbing. Expected
// failure modes cross boundaries as result.AppError values; errs is for
// wrapping low-level causes and for construction-time failures that callers
// cannot branch on.
package errs

import (
	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func New(msg string) error {
	return cr.New(msg)
}

func Newf(format string, args ...any) error {
	return cr.Newf(format, args...)
}

func Is(err, reference error) bool {
	return cr.Is(err, reference)
}
