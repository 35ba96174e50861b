package ethereum

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"
	"go.uber.org/zap"

	"github.com/feral-file/ff-mint-engine/internal/adapter"
	"github.com/feral-file/ff-mint-engine/internal/logger"
)

const (
	defaultGasLimit       = uint64(90000)
	defaultReceiptTimeout = 2 * time.Minute
	receiptPollInterval   = 2 * time.Second
)

// Config holds the configuration for the Ethereum payment client
type Config struct {
	// TokenContract is the ERC-20 contract the alternate currency settles in
	TokenContract string
	// OperatorKey is the hex-encoded private key the client signs with.
	// The key's address must hold the allowances granted by minters.
	OperatorKey string
	// GasLimit caps gas per transaction, defaultGasLimit when zero
	GasLimit uint64
	// ReceiptTimeout bounds how long to wait for a transaction to mine
	ReceiptTimeout time.Duration
}

// PaymentClient settles payments on an Ethereum-compatible chain. It serves
// both payment paths: ERC-20 balance queries and transfers for the alternate
// currency, and native-value forwarding to the treasury for the primary one.
type PaymentClient struct {
	client         adapter.EthClient
	clock          adapter.Clock
	tokenContract  common.Address
	operatorKey    *ecdsa.PrivateKey
	operatorAddr   common.Address
	gasLimit       uint64
	receiptTimeout time.Duration
}

// NewPaymentClient creates a payment client over the given Ethereum client
func NewPaymentClient(cfg Config, client adapter.EthClient, clock adapter.Clock) (*PaymentClient, error) {
	if !common.IsHexAddress(cfg.TokenContract) {
		return nil, fmt.Errorf("invalid token contract address: %s", cfg.TokenContract)
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.OperatorKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse operator key: %w", err)
	}

	gasLimit := cfg.GasLimit
	if gasLimit == 0 {
		gasLimit = defaultGasLimit
	}

	receiptTimeout := cfg.ReceiptTimeout
	if receiptTimeout == 0 {
		receiptTimeout = defaultReceiptTimeout
	}

	return &PaymentClient{
		client:         client,
		clock:          clock,
		tokenContract:  common.HexToAddress(cfg.TokenContract),
		operatorKey:    key,
		operatorAddr:   crypto.PubkeyToAddress(key.PublicKey),
		gasLimit:       gasLimit,
		receiptTimeout: receiptTimeout,
	}, nil
}

// BalanceOf fetches the ERC-20 balance of an account
func (c *PaymentClient) BalanceOf(ctx context.Context, account string) (*uint256.Int, error) {
	// ERC-20 balanceOf function signature: balanceOf(address) returns (uint256)
	balanceOfABI, err := abi.JSON(strings.NewReader(`[{"constant":true,"inputs":[{"name":"account","type":"address"}],"name":"balanceOf","outputs":[{"name":"","type":"uint256"}],"payable":false,"stateMutability":"view","type":"function"}]`))
	if err != nil {
		return nil, fmt.Errorf("failed to parse ABI: %w", err)
	}

	data, err := balanceOfABI.Pack("balanceOf", common.HexToAddress(account))
	if err != nil {
		return nil, fmt.Errorf("failed to pack data: %w", err)
	}

	result, err := c.client.CallContract(ctx, ethereum.CallMsg{
		To:   &c.tokenContract,
		Data: data,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to call contract: %w", err)
	}

	balance := new(big.Int)
	if err := balanceOfABI.UnpackIntoInterface(&balance, "balanceOf", result); err != nil {
		return nil, fmt.Errorf("failed to unpack result: %w", err)
	}

	value, overflow := uint256.FromBig(balance)
	if overflow {
		return nil, fmt.Errorf("balance out of range: %s", balance)
	}

	return value, nil
}

// TransferFrom moves ERC-20 tokens from a payer to a recipient using the
// allowance granted to the operator. It returns the on-chain success flag.
func (c *PaymentClient) TransferFrom(ctx context.Context, from, to string, amount *uint256.Int) (bool, error) {
	// ERC-20 transferFrom function signature: transferFrom(address,address,uint256) returns (bool)
	transferFromABI, err := abi.JSON(strings.NewReader(`[{"constant":false,"inputs":[{"name":"from","type":"address"},{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],"name":"transferFrom","outputs":[{"name":"","type":"bool"}],"payable":false,"stateMutability":"nonpayable","type":"function"}]`))
	if err != nil {
		return false, fmt.Errorf("failed to parse ABI: %w", err)
	}

	data, err := transferFromABI.Pack("transferFrom", common.HexToAddress(from), common.HexToAddress(to), amount.ToBig())
	if err != nil {
		return false, fmt.Errorf("failed to pack data: %w", err)
	}

	receipt, err := c.sendAndWait(ctx, c.tokenContract, nil, data)
	if err != nil {
		return false, err
	}

	return receipt.Status == types.ReceiptStatusSuccessful, nil
}

// Forward moves native value to the treasury address
func (c *PaymentClient) Forward(ctx context.Context, treasury string, amount *uint256.Int) error {
	receipt, err := c.sendAndWait(ctx, common.HexToAddress(treasury), amount.ToBig(), nil)
	if err != nil {
		return err
	}

	if receipt.Status != types.ReceiptStatusSuccessful {
		return fmt.Errorf("treasury transfer reverted: %s", receipt.TxHash)
	}

	return nil
}

// sendAndWait signs a transaction, submits it, and blocks until it mines or
// the receipt timeout elapses
func (c *PaymentClient) sendAndWait(ctx context.Context, to common.Address, value *big.Int, data []byte) (*types.Receipt, error) {
	nonce, err := c.client.PendingNonceAt(ctx, c.operatorAddr)
	if err != nil {
		return nil, fmt.Errorf("failed to get nonce: %w", err)
	}

	gasPrice, err := c.client.SuggestGasPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get gas price: %w", err)
	}

	chainID, err := c.client.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get chain ID: %w", err)
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		To:       &to,
		Value:    value,
		Gas:      c.gasLimit,
		GasPrice: gasPrice,
		Data:     data,
	})

	signedTx, err := types.SignTx(tx, types.LatestSignerForChainID(chainID), c.operatorKey)
	if err != nil {
		return nil, fmt.Errorf("failed to sign transaction: %w", err)
	}

	if err := c.client.SendTransaction(ctx, signedTx); err != nil {
		return nil, fmt.Errorf("failed to send transaction: %w", err)
	}

	logger.Debug("submitted payment transaction",
		zap.String("tx_hash", signedTx.Hash().Hex()),
		zap.String("to", to.Hex()))

	return c.waitForReceipt(ctx, signedTx.Hash())
}

func (c *PaymentClient) waitForReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	deadline := c.clock.Now().Add(c.receiptTimeout)

	for {
		receipt, err := c.client.TransactionReceipt(ctx, txHash)
		if err == nil {
			return receipt, nil
		}

		if c.clock.Now().After(deadline) {
			return nil, fmt.Errorf("timed out waiting for receipt: %s", txHash)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-c.clock.After(receiptPollInterval):
		}
	}
}

// Close closes the underlying client connection
func (c *PaymentClient) Close() {
	c.client.Close()
}
