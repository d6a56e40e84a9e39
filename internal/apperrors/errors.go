package apperrors

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies a failure so the HTTP layer can choose a status code.
type Kind string

const (
	KindValidation         Kind = "ValidationError"
	KindPrecondition       Kind = "PreconditionFailed"
	KindSignatureMismatch  Kind = "SignatureMismatch"
	KindChainCommunication Kind = "ChainCommunicationError"
	KindChainRevert        Kind = "ChainRevert"
	KindInternal           Kind = "InternalError"
)

// Error is a classified failure. Reason carries the decoded revert reason for ChainRevert.
type Error struct {
	Kind    Kind
	Message string
	Reason  string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Message
	if e.Reason != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Reason)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

var (
	ErrInvalidListing   = &Error{Kind: KindPrecondition, Message: "invalid listing"}
	ErrListingSoldOut   = &Error{Kind: KindPrecondition, Message: "listing is sold out"}
	ErrNoFundsAvailable = &Error{Kind: KindPrecondition, Message: "no funds available"}
	ErrInvalidSignature = &Error{Kind: KindSignatureMismatch, Message: "invalid signature"}
)

// Validation returns a ValidationError with a formatted message.
func Validation(format string, args ...interface{}) error {
	return errors.WithStack(&Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)})
}

// ChainCommunication wraps an RPC or ABI failure.
func ChainCommunication(err error, format string, args ...interface{}) error {
	return errors.WithStack(&Error{Kind: KindChainCommunication, Message: fmt.Sprintf(format, args...), Err: err})
}

// ChainRevert reports a contract rejection. reason may be empty when it could not be decoded.
func ChainRevert(reason string, err error, format string, args ...interface{}) error {
	return errors.WithStack(&Error{Kind: KindChainRevert, Message: fmt.Sprintf(format, args...), Reason: reason, Err: err})
}

// KindOf returns the Kind of the first *Error in err's chain, or KindInternal.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// ReasonOf returns the revert reason carried by err, if any.
func ReasonOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Reason
	}
	return ""
}

// Is reports whether err has the given kind.
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}
