package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// Sentinel kinds. Use errors.Is against these to classify a failure.
var (
	ErrValidation = stderrors.New("validation failed")
	ErrNotFound   = stderrors.New("not found")
	ErrTransient  = stderrors.New("temporarily unavailable")
)

type kindError struct {
	kind error
	msg  string
	err  error
}

func (e *kindError) Error() string {
	switch {
	case e.msg != "" && e.err != nil:
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	default:
		return e.kind.Error()
	}
}

func (e *kindError) Is(target error) bool { return target == e.kind }

func (e *kindError) Unwrap() error { return e.err }

// Validation reports malformed input. The message is safe to show to users.
func Validation(msg string) error {
	return &kindError{kind: ErrValidation, msg: msg}
}

// Validationf is Validation with a format string.
func Validationf(format string, args ...interface{}) error {
	return Validation(fmt.Sprintf(format, args...))
}

// NotFound reports a missing record.
func NotFound(msg string) error {
	return &kindError{kind: ErrNotFound, msg: msg}
}

// Transient wraps a storage or network failure that may succeed on a later attempt.
func Transient(msg string, err error) error {
	if err == nil {
		return nil
	}
	return &kindError{kind: ErrTransient, msg: msg, err: err}
}

// HTTPStatus maps an error onto the status code the gateway answers with.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case stderrors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case stderrors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// FromHTTPStatus rebuilds a classified error from a gateway response.
func FromHTTPStatus(status int, msg string) error {
	switch {
	case status < 400:
		return nil
	case status == http.StatusBadRequest:
		return Validation(msg)
	case status == http.StatusNotFound:
		return NotFound(msg)
	default:
		return Transient(fmt.Sprintf("gateway returned %d", status), stderrors.New(msg))
	}
}

// PublicMessage returns the part of err that is safe to send to clients.
// Wrapped causes of transient errors are left out.
func PublicMessage(err error) string {
	var ke *kindError
	if stderrors.As(err, &ke) && ke.msg != "" {
		return ke.msg
	}
	if stderrors.Is(err, ErrValidation) || stderrors.Is(err, ErrNotFound) {
		return err.Error()
	}
	return "Internal server error"
}
