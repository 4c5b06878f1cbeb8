package errors

import (
	stderrors "errors"

	"connectrpc.com/connect"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
)

// Domain is the error domain attached to Connect error details.
const Domain = "github.com/nebaware/temariware"

// Error is the domain error type with structured metadata.
type Error struct {
	Code     Code              // Machine-readable error code
	Message  string            // Human-readable message, surfaced to callers verbatim
	Metadata map[string]string // Additional context (group id, amounts)
	Cause    error             // Wrapped underlying error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error by code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates a simple domain error with a code and message.
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// WithMetadata creates a domain error carrying metadata.
func WithMetadata(code Code, message string, metadata map[string]string) *Error {
	return &Error{
		Code:     code,
		Message:  message,
		Metadata: metadata,
	}
}

// Wrap creates a domain error that wraps an underlying cause.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// GetCode returns the code of the first domain error in err's chain,
// or CodeUnknown when there is none.
func GetCode(err error) Code {
	var domainErr *Error
	if stderrors.As(err, &domainErr) {
		return domainErr.Code
	}
	return CodeUnknown
}

// HasCode reports whether err carries a domain error with the given code.
func HasCode(err error, code Code) bool {
	return GetCode(err) == code
}

// errInternal replaces the text of errors that are not domain errors.
var errInternal = stderrors.New("internal error")

// ToConnectError converts err into a Connect error. Domain errors keep their
// code as an ErrorInfo detail so clients can recover the exact kind. Any other
// error becomes a bare Internal error; its text stays in the server logs.
func ToConnectError(err error) *connect.Error {
	var domainErr *Error
	if !stderrors.As(err, &domainErr) {
		return connect.NewError(connect.CodeInternal, errInternal)
	}

	connectErr := connect.NewError(domainErr.Code.ConnectCode(), stderrors.New(domainErr.Message))
	detail, detailErr := connect.NewErrorDetail(&errdetails.ErrorInfo{
		Reason:   string(domainErr.Code),
		Domain:   Domain,
		Metadata: domainErr.Metadata,
	})
	if detailErr == nil {
		connectErr.AddDetail(detail)
	}
	return connectErr
}

// CodeFromConnectError extracts the domain code from a Connect error produced
// by ToConnectError. It returns CodeUnknown when no detail is present.
func CodeFromConnectError(err error) Code {
	var connectErr *connect.Error
	if !stderrors.As(err, &connectErr) {
		return CodeUnknown
	}
	for _, detail := range connectErr.Details() {
		value, valueErr := detail.Value()
		if valueErr != nil {
			continue
		}
		if info, ok := value.(*errdetails.ErrorInfo); ok && info.GetDomain() == Domain {
			return Code(info.GetReason())
		}
	}
	return CodeUnknown
}
