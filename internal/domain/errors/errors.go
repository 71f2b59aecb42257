// Package errors defines the typed error taxonomy of the storefront client.
// Every failure an operation can surface falls into one of three kinds, and
// the kind decides who handles it: validation errors stay local to the
// caller, auth-expired errors are handled once at the top level, transport
// errors become transient user notices.
package errors

import (
	"storefront/internal/errors"
)

// Kind classifies an error for propagation policy.
type Kind string

const (
	// KindValidation marks missing or malformed client-side input.
	// The operation never reached the network.
	KindValidation Kind = "validation"
	// KindAuthExpired marks a locally detected credential expiry or a
	// server-reported unauthenticated request. Handled globally: local
	// session state is cleared and the visitor is sent to login.
	KindAuthExpired Kind = "auth_expired"
	// KindTransport marks everything else: unreachable host, non-2xx
	// response, malformed payload. Surfaced as a transient notice and
	// never retried automatically.
	KindTransport Kind = "transport"
)

// AppError is the interface every typed storefront error implements.
type AppError interface {
	error
	Kind() Kind        // Propagation class
	ErrorCode() string // Business error code
	Message() string   // User-facing error message
}

// BaseError is a basic error structure that implements the AppError interface.
type BaseError struct {
	kind      Kind
	errorCode string
	message   string
}

// NewBaseError creates a new base error.
func NewBaseError(kind Kind, errorCode, message string) *BaseError {
	return &BaseError{
		kind:      kind,
		errorCode: errorCode,
		message:   message,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	return e.message
}

// Kind returns the propagation class.
func (e *BaseError) Kind() Kind {
	return e.kind
}

// ErrorCode returns the business error code.
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-facing error message.
func (e *BaseError) Message() string {
	return e.message
}

// WrapMessage wraps the error with additional context message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// Predefined error types
var (
	// Validation errors are handled locally, no network call is made.
	ErrAddressRequired = NewBaseError(
		KindValidation,
		"ADDRESS_REQUIRED",
		"an address must be selected before checkout",
	)

	ErrUnknownPaymentMethod = NewBaseError(
		KindValidation,
		"UNKNOWN_PAYMENT_METHOD",
		"the chosen payment method is not supported",
	)

	ErrInvalidStatus = NewBaseError(
		KindValidation,
		"INVALID_STATUS",
		"the given order status is not a known status",
	)

	ErrCredentialsRequired = NewBaseError(
		KindValidation,
		"CREDENTIALS_REQUIRED",
		"username and password are required",
	)

	// Auth errors are consumed by the single top-level session handler.
	ErrSessionExpired = NewBaseError(
		KindAuthExpired,
		"SESSION_EXPIRED",
		"your session has ended, please log in again",
	)

	ErrLoginRequired = NewBaseError(
		KindAuthExpired,
		"LOGIN_REQUIRED",
		"this action requires a logged-in account",
	)

	ErrStaffOnly = NewBaseError(
		KindAuthExpired,
		"STAFF_ONLY",
		"this action requires a staff account",
	)

	ErrInvalidCredentials = NewBaseError(
		KindValidation,
		"INVALID_CREDENTIALS",
		"invalid username or password",
	)

	// Transport errors.
	ErrOrderNotFound = NewBaseError(
		KindTransport,
		"ORDER_NOT_FOUND",
		"order not found",
	)
)

// TransportError wraps a network or server failure, implementing AppError.
type TransportError struct {
	err     error
	details string
}

// NewTransportError creates a transport-kind error around an underlying failure.
func NewTransportError(err error, details string) AppError {
	return &TransportError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return errors.Wrap(e.err, "storefront api request failed").Error()
}

// Unwrap exposes the underlying failure to errors.Is/As.
func (e *TransportError) Unwrap() error {
	return e.err
}

// Kind returns the propagation class.
func (e *TransportError) Kind() Kind {
	return KindTransport
}

// ErrorCode returns the business error code.
func (e *TransportError) ErrorCode() string {
	return "API_REQUEST_FAILED"
}

// Message returns the user-facing error message.
func (e *TransportError) Message() string {
	if e.details != "" {
		return e.details
	}

	return "the storefront service is unavailable, please try again"
}

// IsAuthExpired reports whether err (anywhere in its tree) carries the
// auth-expired kind. The top-level handler keys off this.
func IsAuthExpired(err error) bool {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.Kind() == KindAuthExpired
	}

	return false
}

// IsValidation reports whether err carries the validation kind.
func IsValidation(err error) bool {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.Kind() == KindValidation
	}

	return false
}
