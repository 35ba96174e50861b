package payment

import (
	"github.com/holiman/uint256"

	"github.com/feral-file/ff-mint-engine/internal/domain"
)

// Quote is the computed price for one batch in a chosen currency.
// Amounts are 256-bit integers in the currency's smallest unit.
type Quote struct {
	Currency  domain.Currency
	UnitPrice *uint256.Int
	Quantity  uint64
	TotalDue  *uint256.Int
}

// NewQuote computes totalDue = unitPrice * quantity with checked
// multiplication. A product that cannot be represented in 256 bits fails
// with ErrArithmeticOverflow instead of wrapping.
func NewQuote(currency domain.Currency, unitPrice *uint256.Int, quantity uint64) (*Quote, error) {
	if unitPrice == nil {
		unitPrice = uint256.NewInt(0)
	}

	totalDue, overflow := new(uint256.Int).MulOverflow(unitPrice, uint256.NewInt(quantity))
	if overflow {
		return nil, domain.ErrArithmeticOverflow
	}

	return &Quote{
		Currency:  currency,
		UnitPrice: unitPrice.Clone(),
		Quantity:  quantity,
		TotalDue:  totalDue,
	}, nil
}
