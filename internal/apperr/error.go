package apperr

import (
	"errors"
	"fmt"
)

// Error is a failure with a fixed code from the taxonomy.
type Error struct {
	Code Code
	Msg  string
	Data any

	cause error
}

// New returns an error for code with its standard message.
func New(code Code) *Error {
	return &Error{Code: code, Msg: code.Message()}
}

// Wrap returns an error for code that keeps cause for logging and errors.Is.
func Wrap(code Code, cause error) *Error {
	return &Error{Code: code, Msg: code.Message(), cause: cause}
}

// WithData returns a copy of e carrying data in the envelope.
func (e *Error) WithData(data any) *Error {
	cp := *e
	cp.Data = data

	return &cp
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.cause)
	}

	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Is matches any *Error with the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return t.Code == e.Code
}

// CodeOf returns the code carried by err, CodeSuccess for nil and CodeInternal
// for errors outside the taxonomy.
func CodeOf(err error) Code {
	if err == nil {
		return CodeSuccess
	}

	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}

	return CodeInternal
}

// Sentinels for errors.Is checks.
var (
	ErrInternal              = New(CodeInternal)
	ErrValidation            = New(CodeValidation)
	ErrUnauthorized          = New(CodeUnauthorized)
	ErrForbidden             = New(CodeForbidden)
	ErrAccessDenied          = New(CodeAccessDenied)
	ErrNotFound              = New(CodeNotFound)
	ErrHashingFailed         = New(CodeHashingFailed)
	ErrUserAlreadyExists     = New(CodeUserAlreadyExists)
	ErrUserNotFound          = New(CodeUserNotFound)
	ErrInvalidPassword       = New(CodeInvalidPassword)
	ErrResidentNotFound      = New(CodeResidentNotFound)
	ErrBuildingNotFound      = New(CodeBuildingNotFound)
	ErrApartmentNotFound     = New(CodeApartmentNotFound)
	ErrServiceNotFound       = New(CodeServiceNotFound)
	ErrSubscriptionNotFound  = New(CodeSubscriptionNotFound)
	ErrSubscriptionMismatch  = New(CodeSubscriptionMismatch)
	ErrInvoiceNotFound       = New(CodeInvoiceNotFound)
	ErrInvoiceDetailNotFound = New(CodeInvoiceDetailNotFound)
	ErrPaymentNotFound       = New(CodePaymentNotFound)
	ErrNotificationNotFound  = New(CodeNotificationNotFound)
	ErrContractNotFound      = New(CodeContractNotFound)
)

// Invalid returns a VALIDATION_ERROR whose data explains the rejected input.
func Invalid(reason string) *Error {
	return New(CodeValidation).WithData(map[string]string{"reason": reason})
}
