package provider

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a provider call failure so callers can branch on
// "retry vs. give up" explicitly instead of matching error strings.
type ErrorKind string

const (
	KindUnknownModel      ErrorKind = "unknown_model"
	KindMissingCredential ErrorKind = "missing_credential"
	KindRequestFailed     ErrorKind = "request_failed"
	KindBadStatus         ErrorKind = "bad_status"
	KindMalformedResponse ErrorKind = "malformed_response"
	KindEmptyResponse     ErrorKind = "empty_response"
	KindRetryExhausted    ErrorKind = "retry_exhausted"
)

// CallError is the typed failure of one provider invocation
type CallError struct {
	Kind  ErrorKind
	Model string
	Err   error
}

func (e *CallError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("provider call for model %s failed (%s): %v", e.Model, e.Kind, e.Err)
	}
	return fmt.Sprintf("provider call for model %s failed (%s)", e.Model, e.Kind)
}

func (e *CallError) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is a CallError of the given kind
func IsKind(err error, kind ErrorKind) bool {
	var callErr *CallError
	if errors.As(err, &callErr) {
		return callErr.Kind == kind
	}
	return false
}

// retryable reports whether a failure kind is worth another attempt.
// Configuration problems are terminal; transport and response-shape
// problems may be transient.
func retryable(kind ErrorKind) bool {
	switch kind {
	case KindUnknownModel, KindMissingCredential:
		return false
	default:
		return true
	}
}
