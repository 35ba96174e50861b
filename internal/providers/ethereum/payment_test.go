package ethereum_test

import (
	"context"
	"errors"
	"math/big"
	"os"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/golang/mock/gomock"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-mint-engine/internal/logger"
	"github.com/feral-file/ff-mint-engine/internal/mocks"
	"github.com/feral-file/ff-mint-engine/internal/providers/ethereum"
)

const (
	testTokenContract = "0x3333333333333333333333333333333333333333"
	testPayer         = "0x1111111111111111111111111111111111111111"
	testTreasury      = "0x2222222222222222222222222222222222222222"

	// Throwaway key for signing test transactions, never funded
	testOperatorKey = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
)

var testNow = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func newTestClient(t *testing.T) (*ethereum.PaymentClient, *mocks.MockEthClient, *mocks.MockClock) {
	t.Helper()

	ctrl := gomock.NewController(t)
	ethClient := mocks.NewMockEthClient(ctrl)
	clock := mocks.NewMockClock(ctrl)

	client, err := ethereum.NewPaymentClient(ethereum.Config{
		TokenContract: testTokenContract,
		OperatorKey:   testOperatorKey,
	}, ethClient, clock)
	require.NoError(t, err)

	return client, ethClient, clock
}

// expectTransaction wires the nonce, gas price, and chain ID lookups a
// signed submission always performs.
func expectTransaction(ethClient *mocks.MockEthClient, status uint64) {
	ethClient.EXPECT().PendingNonceAt(gomock.Any(), gomock.Any()).Return(uint64(7), nil)
	ethClient.EXPECT().SuggestGasPrice(gomock.Any()).Return(big.NewInt(1_000_000_000), nil)
	ethClient.EXPECT().ChainID(gomock.Any()).Return(big.NewInt(1), nil)
	ethClient.EXPECT().SendTransaction(gomock.Any(), gomock.Any()).Return(nil)
	ethClient.EXPECT().
		TransactionReceipt(gomock.Any(), gomock.Any()).
		Return(&types.Receipt{Status: status, TxHash: common.HexToHash("0xabc")}, nil)
}

func TestNewPaymentClient(t *testing.T) {
	ctrl := gomock.NewController(t)
	ethClient := mocks.NewMockEthClient(ctrl)
	clock := mocks.NewMockClock(ctrl)

	t.Run("rejects an invalid contract address", func(t *testing.T) {
		_, err := ethereum.NewPaymentClient(ethereum.Config{
			TokenContract: "not-an-address",
			OperatorKey:   testOperatorKey,
		}, ethClient, clock)
		assert.Error(t, err)
	})

	t.Run("rejects a malformed operator key", func(t *testing.T) {
		_, err := ethereum.NewPaymentClient(ethereum.Config{
			TokenContract: testTokenContract,
			OperatorKey:   "zzzz",
		}, ethClient, clock)
		assert.Error(t, err)
	})

	t.Run("accepts a 0x-prefixed operator key", func(t *testing.T) {
		_, err := ethereum.NewPaymentClient(ethereum.Config{
			TokenContract: testTokenContract,
			OperatorKey:   "0x" + testOperatorKey,
		}, ethClient, clock)
		assert.NoError(t, err)
	})
}

func TestBalanceOf(t *testing.T) {
	ctx := context.Background()

	t.Run("decodes the returned balance", func(t *testing.T) {
		client, ethClient, _ := newTestClient(t)

		balance := big.NewInt(1_500_000)
		ethClient.EXPECT().
			CallContract(gomock.Any(), gomock.Any(), nil).
			Return(common.LeftPadBytes(balance.Bytes(), 32), nil)

		got, err := client.BalanceOf(ctx, testPayer)
		require.NoError(t, err)
		assert.Equal(t, uint256.NewInt(1_500_000), got)
	})

	t.Run("propagates call failures", func(t *testing.T) {
		client, ethClient, _ := newTestClient(t)

		ethClient.EXPECT().
			CallContract(gomock.Any(), gomock.Any(), nil).
			Return(nil, errors.New("rpc unavailable"))

		_, err := client.BalanceOf(ctx, testPayer)
		assert.Error(t, err)
	})
}

func TestTransferFrom(t *testing.T) {
	ctx := context.Background()
	amount := uint256.NewInt(1_000_000)

	t.Run("successful transfer reports true", func(t *testing.T) {
		client, ethClient, clock := newTestClient(t)

		clock.EXPECT().Now().Return(testNow).AnyTimes()
		expectTransaction(ethClient, types.ReceiptStatusSuccessful)

		ok, err := client.TransferFrom(ctx, testPayer, testTreasury, amount)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("reverted transfer reports false without error", func(t *testing.T) {
		client, ethClient, clock := newTestClient(t)

		clock.EXPECT().Now().Return(testNow).AnyTimes()
		expectTransaction(ethClient, types.ReceiptStatusFailed)

		ok, err := client.TransferFrom(ctx, testPayer, testTreasury, amount)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("nonce failure aborts before sending", func(t *testing.T) {
		client, ethClient, _ := newTestClient(t)

		ethClient.EXPECT().
			PendingNonceAt(gomock.Any(), gomock.Any()).
			Return(uint64(0), errors.New("rpc unavailable"))

		_, err := client.TransferFrom(ctx, testPayer, testTreasury, amount)
		assert.Error(t, err)
	})
}

func TestForward(t *testing.T) {
	ctx := context.Background()
	amount := uint256.NewInt(50_000_000_000_000_000)

	t.Run("mined transfer succeeds", func(t *testing.T) {
		client, ethClient, clock := newTestClient(t)

		clock.EXPECT().Now().Return(testNow).AnyTimes()
		expectTransaction(ethClient, types.ReceiptStatusSuccessful)

		assert.NoError(t, client.Forward(ctx, testTreasury, amount))
	})

	t.Run("reverted transfer is an error", func(t *testing.T) {
		client, ethClient, clock := newTestClient(t)

		clock.EXPECT().Now().Return(testNow).AnyTimes()
		expectTransaction(ethClient, types.ReceiptStatusFailed)

		assert.Error(t, client.Forward(ctx, testTreasury, amount))
	})
}

func TestWaitForReceiptTimeout(t *testing.T) {
	ctx := context.Background()

	client, ethClient, clock := newTestClient(t)

	ethClient.EXPECT().PendingNonceAt(gomock.Any(), gomock.Any()).Return(uint64(7), nil)
	ethClient.EXPECT().SuggestGasPrice(gomock.Any()).Return(big.NewInt(1_000_000_000), nil)
	ethClient.EXPECT().ChainID(gomock.Any()).Return(big.NewInt(1), nil)
	ethClient.EXPECT().SendTransaction(gomock.Any(), gomock.Any()).Return(nil)

	// Receipt never appears and the clock jumps past the deadline
	ethClient.EXPECT().
		TransactionReceipt(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("not found"))
	clock.EXPECT().Now().Return(testNow)
	clock.EXPECT().Now().Return(testNow.Add(3 * time.Minute))

	err := client.Forward(ctx, testTreasury, uint256.NewInt(1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timed out")
}
