package payment_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-mint-engine/internal/domain"
	"github.com/feral-file/ff-mint-engine/internal/mocks"
	"github.com/feral-file/ff-mint-engine/internal/payment"
)

const (
	testCaller   = "0x1111111111111111111111111111111111111111"
	testTreasury = "0x2222222222222222222222222222222222222222"
)

func TestNewQuote(t *testing.T) {
	t.Run("multiplies price by quantity", func(t *testing.T) {
		quote, err := payment.NewQuote(domain.CurrencyPrimary, uint256.NewInt(50_000_000_000_000_000), 5)
		require.NoError(t, err)

		want := uint256.MustFromDecimal("250000000000000000")
		assert.Equal(t, want, quote.TotalDue)
		assert.Equal(t, uint64(5), quote.Quantity)
	})

	t.Run("nil price means free", func(t *testing.T) {
		quote, err := payment.NewQuote(domain.CurrencyPrimary, nil, 3)
		require.NoError(t, err)
		assert.True(t, quote.TotalDue.IsZero())
	})

	t.Run("fails on 256-bit overflow", func(t *testing.T) {
		huge := new(uint256.Int).SetAllOne() // 2^256 - 1
		_, err := payment.NewQuote(domain.CurrencyPrimary, huge, 2)
		assert.ErrorIs(t, err, domain.ErrArithmeticOverflow)
	})
}

type validatorMocks struct {
	ctrl      *gomock.Controller
	currency  *mocks.MockCurrencyService
	forwarder *mocks.MockProceedsForwarder
	validator *payment.Validator
}

func setupValidator(t *testing.T) *validatorMocks {
	ctrl := gomock.NewController(t)
	vm := &validatorMocks{
		ctrl:      ctrl,
		currency:  mocks.NewMockCurrencyService(ctrl),
		forwarder: mocks.NewMockProceedsForwarder(ctrl),
	}
	vm.validator = payment.NewValidator(vm.currency, vm.forwarder)
	return vm
}

func primaryInput(t *testing.T, unitPrice uint64, quantity uint64, attached *uint256.Int) payment.CollectInput {
	t.Helper()
	quote, err := payment.NewQuote(domain.CurrencyPrimary, uint256.NewInt(unitPrice), quantity)
	require.NoError(t, err)
	return payment.CollectInput{
		Caller:        testCaller,
		Quote:         quote,
		AttachedValue: attached,
		Treasury:      testTreasury,
	}
}

func alternateInput(t *testing.T, unitPrice uint64, quantity uint64, enabled bool) payment.CollectInput {
	t.Helper()
	quote, err := payment.NewQuote(domain.CurrencyAlternate, uint256.NewInt(unitPrice), quantity)
	require.NoError(t, err)
	return payment.CollectInput{
		Caller:     testCaller,
		Quote:      quote,
		Treasury:   testTreasury,
		AltEnabled: enabled,
	}
}

func TestCollectPrimary(t *testing.T) {
	ctx := context.Background()

	t.Run("forwards exact payment to treasury", func(t *testing.T) {
		vm := setupValidator(t)
		vm.forwarder.EXPECT().
			Forward(ctx, testTreasury, uint256.NewInt(500)).
			Return(nil)

		err := vm.validator.Collect(ctx, primaryInput(t, 100, 5, uint256.NewInt(500)))
		assert.NoError(t, err)
	})

	t.Run("excess value is forwarded, not refunded", func(t *testing.T) {
		vm := setupValidator(t)
		vm.forwarder.EXPECT().
			Forward(ctx, testTreasury, uint256.NewInt(750)).
			Return(nil)

		err := vm.validator.Collect(ctx, primaryInput(t, 100, 5, uint256.NewInt(750)))
		assert.NoError(t, err)
	})

	t.Run("rejects short payment without moving value", func(t *testing.T) {
		vm := setupValidator(t)

		err := vm.validator.Collect(ctx, primaryInput(t, 100, 5, uint256.NewInt(499)))
		assert.ErrorIs(t, err, domain.ErrInsufficientPayment)
	})

	t.Run("missing attached value counts as zero", func(t *testing.T) {
		vm := setupValidator(t)

		err := vm.validator.Collect(ctx, primaryInput(t, 100, 5, nil))
		assert.ErrorIs(t, err, domain.ErrInsufficientPayment)
	})

	t.Run("zero price accepts zero attachment", func(t *testing.T) {
		vm := setupValidator(t)
		vm.forwarder.EXPECT().
			Forward(ctx, testTreasury, uint256.NewInt(0)).
			Return(nil)

		err := vm.validator.Collect(ctx, primaryInput(t, 0, 5, nil))
		assert.NoError(t, err)
	})

	t.Run("treasury failure surfaces as such", func(t *testing.T) {
		vm := setupValidator(t)
		vm.forwarder.EXPECT().
			Forward(ctx, testTreasury, gomock.Any()).
			Return(errors.New("rpc timeout"))

		err := vm.validator.Collect(ctx, primaryInput(t, 100, 5, uint256.NewInt(500)))
		assert.ErrorIs(t, err, domain.ErrTreasuryTransferFailed)
	})
}

func TestCollectAlternate(t *testing.T) {
	ctx := context.Background()

	t.Run("pulls the exact total due", func(t *testing.T) {
		vm := setupValidator(t)
		vm.currency.EXPECT().
			BalanceOf(ctx, testCaller).
			Return(uint256.NewInt(1000), nil)
		vm.currency.EXPECT().
			TransferFrom(ctx, testCaller, testTreasury, uint256.NewInt(300)).
			Return(true, nil)

		err := vm.validator.Collect(ctx, alternateInput(t, 100, 3, true))
		assert.NoError(t, err)
	})

	t.Run("rejected while disabled", func(t *testing.T) {
		vm := setupValidator(t)

		err := vm.validator.Collect(ctx, alternateInput(t, 100, 3, false))
		assert.ErrorIs(t, err, domain.ErrPaymentMethodDisabled)
	})

	t.Run("insufficient balance", func(t *testing.T) {
		vm := setupValidator(t)
		vm.currency.EXPECT().
			BalanceOf(ctx, testCaller).
			Return(uint256.NewInt(299), nil)

		err := vm.validator.Collect(ctx, alternateInput(t, 100, 3, true))
		assert.ErrorIs(t, err, domain.ErrInsufficientPayment)
	})

	t.Run("balance query failure", func(t *testing.T) {
		vm := setupValidator(t)
		vm.currency.EXPECT().
			BalanceOf(ctx, testCaller).
			Return(nil, errors.New("rpc timeout"))

		err := vm.validator.Collect(ctx, alternateInput(t, 100, 3, true))
		assert.ErrorIs(t, err, domain.ErrPaymentTransferFailed)
	})

	t.Run("transfer reverts", func(t *testing.T) {
		vm := setupValidator(t)
		vm.currency.EXPECT().
			BalanceOf(ctx, testCaller).
			Return(uint256.NewInt(1000), nil)
		vm.currency.EXPECT().
			TransferFrom(ctx, testCaller, testTreasury, uint256.NewInt(300)).
			Return(false, nil)

		err := vm.validator.Collect(ctx, alternateInput(t, 100, 3, true))
		assert.ErrorIs(t, err, domain.ErrPaymentTransferFailed)
	})

	t.Run("transfer errors", func(t *testing.T) {
		vm := setupValidator(t)
		vm.currency.EXPECT().
			BalanceOf(ctx, testCaller).
			Return(uint256.NewInt(1000), nil)
		vm.currency.EXPECT().
			TransferFrom(ctx, testCaller, testTreasury, uint256.NewInt(300)).
			Return(false, errors.New("nonce too low"))

		err := vm.validator.Collect(ctx, alternateInput(t, 100, 3, true))
		assert.ErrorIs(t, err, domain.ErrPaymentTransferFailed)
	})
}
