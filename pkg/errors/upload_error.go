package errors

import (
	stderrors "errors"
	"fmt"
)

const (
	CodeSourceNotFound   = "source_not_found"
	CodeTransportFailure = "transport_failure"
	CodeFallbackIO       = "fallback_io_failure"
	CodeInvalidRequest   = "invalid_request"
	CodeNotFound         = "not_found"
	CodeQueueUnavailable = "queue_unavailable"
	CodeInternal         = "internal_error"
)

type UploadError struct {
	Code    string
	Message string
	Err     error
}

func (e *UploadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *UploadError) Unwrap() error {
	return e.Err
}

var (
	ErrSourceNotFound = func(err error) *UploadError {
		return &UploadError{Code: CodeSourceNotFound, Message: "source file does not exist", Err: err}
	}
	ErrTransport = func(err error) *UploadError {
		return &UploadError{Code: CodeTransportFailure, Message: "remote upload failed", Err: err}
	}
	ErrFallbackIO = func(err error) *UploadError {
		return &UploadError{Code: CodeFallbackIO, Message: "could not store file locally", Err: err}
	}
	ErrInvalidRequest = func(err error) *UploadError {
		return &UploadError{Code: CodeInvalidRequest, Message: "invalid request", Err: err}
	}
	ErrNotFound = func(err error) *UploadError {
		return &UploadError{Code: CodeNotFound, Message: "media not found", Err: err}
	}
	ErrQueueUnavailable = func(err error) *UploadError {
		return &UploadError{Code: CodeQueueUnavailable, Message: "background queue is not configured", Err: err}
	}
	ErrInternal = func(err error) *UploadError {
		return &UploadError{Code: CodeInternal, Message: "internal error", Err: err}
	}
)

// HasCode reports whether err wraps an UploadError with the given code.
func HasCode(err error, code string) bool {
	var ue *UploadError
	return stderrors.As(err, &ue) && ue.Code == code
}
