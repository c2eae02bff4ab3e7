package types

import "fmt"

// ErrorCode represents a specific error type
type ErrorCode string

const (
	// Local validation errors (raised before any network call)
	ErrInvalidAmount ErrorCode = "INVALID_AMOUNT"
	ErrInvalidPin    ErrorCode = "INVALID_PIN"
	ErrPinMismatch   ErrorCode = "PIN_MISMATCH"
	ErrMissingField  ErrorCode = "MISSING_FIELD"
	ErrInvalidState  ErrorCode = "INVALID_STATE"

	// Transport errors
	ErrNetworkError ErrorCode = "NETWORK_ERROR"

	// Auth errors (fatal for the session)
	ErrUnauthorized   ErrorCode = "UNAUTHORIZED"
	ErrSessionExpired ErrorCode = "SESSION_EXPIRED"
	ErrSignedOut      ErrorCode = "SIGNED_OUT"

	// Server business-rule rejections (message is the server's, verbatim)
	ErrBusinessRule ErrorCode = "BUSINESS_RULE"

	// Add-cash verification that could not be confirmed either way
	ErrVerifyUnconfirmed ErrorCode = "VERIFY_UNCONFIRMED"

	// System errors
	ErrInternalError ErrorCode = "INTERNAL_ERROR"
)

// WalletError represents a wallet operation error
type WalletError struct {
	Code    ErrorCode
	Message string
	Err     error // Underlying error, if any
}

// Error implements the error interface
func (e *WalletError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *WalletError) Unwrap() error {
	return e.Err
}

// NewWalletError creates a new WalletError
func NewWalletError(code ErrorCode, message string) *WalletError {
	return &WalletError{
		Code:    code,
		Message: message,
	}
}

// WrapError wraps an existing error in a WalletError
func WrapError(code ErrorCode, message string, err error) *WalletError {
	return &WalletError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsWalletError checks if an error is a WalletError and has a specific code
func IsWalletError(err error, code ErrorCode) bool {
	var walletErr *WalletError
	if err == nil {
		return false
	}
	if ok := As(err, &walletErr); !ok {
		return false
	}
	return walletErr.Code == code
}

// As is a helper function to safely type assert an error to a WalletError
func As(err error, target **WalletError) bool {
	if target == nil {
		return false
	}
	if walletErr, ok := err.(*WalletError); ok {
		*target = walletErr
		return true
	}
	return false
}

// IsValidation reports whether the error was raised locally, before any
// network call was made
func IsValidation(err error) bool {
	return IsWalletError(err, ErrInvalidAmount) ||
		IsWalletError(err, ErrInvalidPin) ||
		IsWalletError(err, ErrPinMismatch) ||
		IsWalletError(err, ErrMissingField) ||
		IsWalletError(err, ErrInvalidState)
}

// IsAuth reports whether the error invalidates the whole session
func IsAuth(err error) bool {
	return IsWalletError(err, ErrUnauthorized) ||
		IsWalletError(err, ErrSessionExpired) ||
		IsWalletError(err, ErrSignedOut)
}

// IsRetryable reports whether re-invoking the same operation without state
// loss is allowed. Only transport failures qualify.
func IsRetryable(err error) bool {
	return IsWalletError(err, ErrNetworkError)
}
