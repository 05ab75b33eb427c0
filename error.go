package polis

import (
	"errors"
	"fmt"
)

// Error codes classify failures for the extraction pipeline. Codes map
// machine-readable failure classes to the human-readable messages surfaced
// in PostRecord.ErrorMessage.
const (
	EINTERNAL    = "internal"     // unexpected internal fault
	EINVALID     = "invalid"      // URL fails platform validation
	EUNSUPPORTED = "unsupported"  // no extractor registered for the URL
	EACCESS      = "access"       // auth wall / blocked access
	ENOTFOUND    = "not_found"    // post deleted or private
	ENETWORK     = "network"      // timeout, connection failure, non-2xx
	EPARSE       = "parse"        // no strategy produced any usable field
	EPARTIAL     = "partial"      // non-fatal; some fields missing
	EDELEGATE    = "delegate"     // external subprocess/API call failed
	ERATELIMIT   = "rate_limit"   // rate-limit-class response
)

// Error represents an application-level error with a machine-readable code
// and a human-readable message.
type Error struct {
	// Code classifies the error for programmatic handling.
	Code string

	// Message is a human-readable description safe to surface to users.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("polis error: code=%s message=%s", e.Code, e.Message)
}

// Errorf constructs a new Error with the given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode unwraps err and returns its code. Non-application errors are
// reported as EINTERNAL; a nil error has no code.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	}
	if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps err and returns its message. Non-application errors
// return a generic message so internal details never leak to callers.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	}
	if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}
