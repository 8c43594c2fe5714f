package recipeclip

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// These are meant to be generic and mappable to user-facing messages.
// Internal plumbing errors are wrapped with fmt.Errorf and surface as
// EINTERNAL at the boundary.
const (
	EBADURL      = "bad_url"      // import URL is not a valid URL
	EINTERNAL    = "internal"     // unexpected internal error
	EINVALID     = "invalid"      // validation failed
	ENOTFOUND    = "not_found"    // entity does not exist
	EPARSE       = "parse_error"  // page or metadata could not be parsed
	EUNREACHABLE = "unreachable"  // page could not be fetched
	EUNSUPPORTED = "unsupported"  // page has no usable recipe metadata
)

// Error represents an application-specific error. Errors carry a machine
// readable code and a human readable message.
type Error struct {
	// Code is one of the application error codes above.
	Code string

	// Message is a human readable description of the error.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("recipeclip error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return a generic message.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
