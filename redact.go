// SPDX-License-Identifier: GPL-3.0-or-later

package clusterlog

import "errors"

// RedactedError marks an error whose display text must never reach an
// outbound log record, e.g. because the failing command carried
// authentication material (spec §6, glossary "Redacted error"). Wrap a
// failure with [NewRedactedError] when constructing a
// [CommandFailedEvent]; [CommandEventEmitter] checks for it with
// [IsRedacted] using [errors.As], the same pattern the teacher's
// x509-classification code uses for distinguishing error cases without
// a type switch.
type RedactedError struct {
	Err error
}

// NewRedactedError wraps err so [IsRedacted] reports true for it.
func NewRedactedError(err error) *RedactedError {
	return &RedactedError{Err: err}
}

// Error implements the error interface.
func (e *RedactedError) Error() string {
	return e.Err.Error()
}

// Unwrap supports [errors.Is]/[errors.As] traversal.
func (e *RedactedError) Unwrap() error {
	return e.Err
}

// IsRedacted reports whether err (or any error it wraps) is classified
// as redacted. All other error kinds render via their display form
// unchanged (spec §6).
func IsRedacted(err error) bool {
	var redacted *RedactedError
	return errors.As(err, &redacted)
}
