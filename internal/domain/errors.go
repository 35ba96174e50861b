package domain

import "errors"

var (
	// ErrInvalidQuantity is returned when the requested batch size is zero
	// or exceeds the per-call maximum
	ErrInvalidQuantity = errors.New("invalid quantity")

	// ErrOperationPaused is returned when issuance is administratively paused
	ErrOperationPaused = errors.New("operation paused")

	// ErrReentrantCall is returned when a mint call arrives while another
	// mint call holds the issuance lock
	ErrReentrantCall = errors.New("reentrant call")

	// ErrSupplyExceeded is returned when the requested batch would push the
	// issued count past the supply cap
	ErrSupplyExceeded = errors.New("supply exceeded")

	// ErrInsufficientPayment is returned when the attached value or token
	// balance does not cover the total due
	ErrInsufficientPayment = errors.New("insufficient payment")

	// ErrPaymentMethodDisabled is returned when the alternate payment path
	// is requested while disabled
	ErrPaymentMethodDisabled = errors.New("payment method disabled")

	// ErrArithmeticOverflow is returned when a payment total cannot be
	// represented without wrapping
	ErrArithmeticOverflow = errors.New("arithmetic overflow")

	// ErrPaymentTransferFailed is returned when the external currency
	// service reports a failed transfer
	ErrPaymentTransferFailed = errors.New("payment transfer failed")

	// ErrTreasuryTransferFailed is returned when forwarding proceeds to the
	// treasury fails
	ErrTreasuryTransferFailed = errors.New("treasury transfer failed")

	// ErrTokenNotFound is returned when a token is not found in the registry
	ErrTokenNotFound = errors.New("token not found")

	// ErrTokenAlreadyExists is returned when attempting to issue a token
	// number that is already registered
	ErrTokenAlreadyExists = errors.New("token already exists")

	// ErrReceiptNotFound is returned when a mint receipt is not found
	ErrReceiptNotFound = errors.New("mint receipt not found")
)
