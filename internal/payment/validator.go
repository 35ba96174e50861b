package payment

import (
	"context"
	"fmt"

	"github.com/holiman/uint256"

	"github.com/feral-file/ff-mint-engine/internal/domain"
)

//go:generate mockgen -source=validator.go -destination=../mocks/payment.go -package=mocks

// CurrencyService is the external service holding alternate-currency
// balances. Transfers are pull-based: the caller must have granted this
// module an allowance out of band.
type CurrencyService interface {
	BalanceOf(ctx context.Context, account string) (*uint256.Int, error)
	TransferFrom(ctx context.Context, from, to string, amount *uint256.Int) (bool, error)
}

// ProceedsForwarder moves collected primary-currency value to the treasury.
type ProceedsForwarder interface {
	Forward(ctx context.Context, treasury string, amount *uint256.Int) error
}

// Validator collects payment for a quote in either currency.
type Validator struct {
	currency  CurrencyService
	forwarder ProceedsForwarder
}

func NewValidator(currency CurrencyService, forwarder ProceedsForwarder) *Validator {
	return &Validator{
		currency:  currency,
		forwarder: forwarder,
	}
}

// CollectInput carries everything one collection attempt needs. Config
// values are snapshotted by the caller so a concurrent admin change cannot
// split a single attempt across two configurations.
type CollectInput struct {
	Caller        string
	Quote         *Quote
	AttachedValue *uint256.Int
	Treasury      string
	AltEnabled    bool
}

// Collect validates and settles payment for the quote. Attached value in
// excess of totalDue is kept, not refunded. On any failure no value moves.
func (v *Validator) Collect(ctx context.Context, in CollectInput) error {
	switch in.Quote.Currency {
	case domain.CurrencyPrimary:
		return v.collectPrimary(ctx, in)
	case domain.CurrencyAlternate:
		return v.collectAlternate(ctx, in)
	default:
		return fmt.Errorf("unknown currency %q", in.Quote.Currency)
	}
}

func (v *Validator) collectPrimary(ctx context.Context, in CollectInput) error {
	attached := in.AttachedValue
	if attached == nil {
		attached = uint256.NewInt(0)
	}

	if attached.Lt(in.Quote.TotalDue) {
		return domain.ErrInsufficientPayment
	}

	if err := v.forwarder.Forward(ctx, in.Treasury, attached); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrTreasuryTransferFailed, err)
	}

	return nil
}

func (v *Validator) collectAlternate(ctx context.Context, in CollectInput) error {
	if !in.AltEnabled {
		return domain.ErrPaymentMethodDisabled
	}

	balance, err := v.currency.BalanceOf(ctx, in.Caller)
	if err != nil {
		return fmt.Errorf("%w: balance query: %v", domain.ErrPaymentTransferFailed, err)
	}

	if balance.Lt(in.Quote.TotalDue) {
		return domain.ErrInsufficientPayment
	}

	ok, err := v.currency.TransferFrom(ctx, in.Caller, in.Treasury, in.Quote.TotalDue)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPaymentTransferFailed, err)
	}
	if !ok {
		return domain.ErrPaymentTransferFailed
	}

	return nil
}
