// Package apperr defines classified failures: errors that carry the HTTP
// status and client-safe message they should be rendered with.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Client-facing messages
const (
	MsgBadRequest      = "bad request"
	MsgPathNotFound    = "path not found"
	MsgInternal        = "internal server error"
	MsgArticleNotFound = "article does not exist"
	MsgCommentNotFound = "comment does not exist"
	MsgTopicNotFound   = "topic doesn't exist"
)

// Error is a classified failure
type Error struct {
	Status int
	Msg    string
	Err    error // underlying cause, never shown to clients
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%d %s: %v", e.Status, e.Msg, e.Err)
	}
	return fmt.Sprintf("%d %s", e.Status, e.Msg)
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error with the same status and message
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Status == t.Status && e.Msg == t.Msg
}

// BadRequest classifies malformed, missing, or invalid-typed input
func BadRequest(cause error) *Error {
	return &Error{Status: http.StatusBadRequest, Msg: MsgBadRequest, Err: cause}
}

// NotFound classifies a well-formed reference to a missing resource
func NotFound(msg string) *Error {
	return &Error{Status: http.StatusNotFound, Msg: msg}
}

// Internal classifies an unexpected fault
func Internal(cause error) *Error {
	return &Error{Status: http.StatusInternalServerError, Msg: MsgInternal, Err: cause}
}

// Sentinel values for errors.Is checks
var (
	ErrBadRequest      = BadRequest(nil)
	ErrArticleNotFound = NotFound(MsgArticleNotFound)
	ErrCommentNotFound = NotFound(MsgCommentNotFound)
	ErrTopicNotFound   = NotFound(MsgTopicNotFound)
)

// From returns the classified failure in err's chain, if any
func From(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
