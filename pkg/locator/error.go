package locator

import (
	"errors"
	"fmt"
)

const CodeDefaultResourceMissing = "DefaultResourceMissing"

var (
	ErrDefaultResourceMissing = errors.New("default resource missing")
	ErrResourceNotFound       = errors.New("resource not found")

	errEmptyResourceName = errors.New("empty resource name")
	errNoResourceLookup  = errors.New("no default resource lookup configured")
)

func ErrorDefaultResourceMissing(resource string, cause error) *Error {
	return &Error{
		Code:     CodeDefaultResourceMissing,
		Message:  "Default bundle not found in application package",
		Resource: resource,
		Err:      cause,
	}
}

type Error struct {
	Code     string
	Message  string
	Resource string
	Err      error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Code, e.Message)

	if e.Resource != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Resource)
	}

	if e.Err != nil {
		msg = fmt.Sprintf("%s: %s", msg, e.Err)
	}

	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	return target == ErrDefaultResourceMissing && e.Code == CodeDefaultResourceMissing
}
