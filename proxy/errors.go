package proxy

import (
	"encoding/json"
	"fmt"
)

type ErrorCode string

const (
	ErrorCodeConfiguration             ErrorCode = "configuration_error"
	ErrorCodeMissingInvocationMetadata ErrorCode = "missing_invocation_metadata"
	ErrorCodeMissingRequiredParameter  ErrorCode = "missing_required_parameter"
	ErrorCodeMarshalling               ErrorCode = "marshalling_error"
	ErrorCodeRemoteInvocationFailed    ErrorCode = "remote_invocation_failed"
	ErrorCodeAmbiguousImplementation   ErrorCode = "ambiguous_implementation"
	ErrorCodeUnresolvedServiceURL      ErrorCode = "unresolved_service_url"
	ErrorCodeNotInitialized            ErrorCode = "not_initialized"
)

func NewError(code ErrorCode, message string) error {
	return Error{
		Code:    code,
		Message: message,
	}
}

type Error struct {
	Code    ErrorCode `json:"code,omitempty"`
	Message string    `json:"message,omitempty"`
}

func (e Error) Error() string {
	bytes, _ := json.Marshal(e)
	return string(bytes)
}

// RemoteError reports a failed HTTP exchange along with the fully resolved
// URL of the call. Status is zero when the transport failed before any
// response was received; Body carries a structured error decoded from the
// response when the remote service provided one.
type RemoteError struct {
	URL    string
	Status int
	Body   *Error
	cause  error
}

func (e *RemoteError) Error() string {
	switch {
	case e.Body != nil:
		return fmt.Sprintf("error calling remote service URL %s: status %d: %s", e.URL, e.Status, e.Body.Error())
	case e.Status != 0:
		return fmt.Sprintf("error calling remote service URL %s: status %d", e.URL, e.Status)
	default:
		return fmt.Sprintf("error calling remote service URL %s: %v", e.URL, e.cause)
	}
}

func (e *RemoteError) Unwrap() error {
	return e.cause
}
