package mint

import (
	"context"
	"fmt"

	"github.com/holiman/uint256"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/feral-file/ff-mint-engine/internal/adapter"
	"github.com/feral-file/ff-mint-engine/internal/domain"
	"github.com/feral-file/ff-mint-engine/internal/logger"
	"github.com/feral-file/ff-mint-engine/internal/messaging"
	"github.com/feral-file/ff-mint-engine/internal/payment"
	"github.com/feral-file/ff-mint-engine/internal/registry"
	"github.com/feral-file/ff-mint-engine/internal/supply"
)

// PaymentCollector settles payment for a quoted batch
//
//go:generate mockgen -source=engine.go -destination=../mocks/engine.go -package=mocks -mock_names=PaymentCollector=MockPaymentCollector
type PaymentCollector interface {
	Collect(ctx context.Context, in payment.CollectInput) error
}

// MintRequest is one batch issuance request.
type MintRequest struct {
	Caller        string
	Quantity      uint64
	Currency      domain.Currency
	AttachedValue *uint256.Int
}

// MintResult is the outcome of a committed batch.
type MintResult struct {
	ReceiptID  string
	Records    []domain.TokenRecord
	Currency   domain.Currency
	AmountPaid string
}

// Engine runs the issuance state machine: pause gate, quantity bounds,
// reentrancy lock, supply reservation, payment collection, then durable
// registration. Every failure before registration leaves no trace.
type Engine struct {
	state     *State
	counter   *supply.Counter
	collector PaymentCollector
	registry  registry.TokenRegistry
	publisher messaging.Publisher
	clock     adapter.Clock
}

// NewEngine wires the issuance engine from its collaborators.
func NewEngine(
	state *State,
	counter *supply.Counter,
	collector PaymentCollector,
	reg registry.TokenRegistry,
	publisher messaging.Publisher,
	clock adapter.Clock,
) *Engine {
	return &Engine{
		state:     state,
		counter:   counter,
		collector: collector,
		registry:  reg,
		publisher: publisher,
		clock:     clock,
	}
}

// MintBatch issues quantity tokens to the caller, all or nothing.
//
// Checks run in a fixed order: pause, quantity bounds, reentrancy lock,
// supply reservation, payment. The first failing check wins, so a paused
// engine reports ErrOperationPaused even for an invalid quantity. Attached
// value beyond the total due is kept, never refunded.
func (e *Engine) MintBatch(ctx context.Context, req MintRequest) (*MintResult, error) {
	snapshot := e.state.Snapshot()

	if snapshot.Paused {
		return nil, domain.ErrOperationPaused
	}

	if req.Quantity == 0 || req.Quantity > snapshot.MaxPerCall {
		return nil, domain.ErrInvalidQuantity
	}

	if !domain.IsValidCurrency(req.Currency) {
		return nil, fmt.Errorf("unknown currency %q", req.Currency)
	}

	if !domain.IsValidAddress(req.Caller) {
		return nil, fmt.Errorf("invalid caller address: %s", req.Caller)
	}
	caller := domain.NormalizeAddress(req.Caller)

	if !e.state.TryLock() {
		return nil, domain.ErrReentrantCall
	}
	defer e.state.Unlock()

	start, err := e.counter.Reserve(req.Quantity)
	if err != nil {
		return nil, err
	}

	quote, err := payment.NewQuote(req.Currency, snapshot.UnitPrice(req.Currency), req.Quantity)
	if err != nil {
		e.counter.Rollback(req.Quantity)
		return nil, err
	}

	if err := e.collector.Collect(ctx, payment.CollectInput{
		Caller:        caller,
		Quote:         quote,
		AttachedValue: req.AttachedValue,
		Treasury:      snapshot.Treasury,
		AltEnabled:    snapshot.AltPaymentEnabled,
	}); err != nil {
		e.counter.Rollback(req.Quantity)
		return nil, err
	}

	now := e.clock.Now()
	records := make([]domain.TokenRecord, 0, req.Quantity)
	for i := uint64(0); i < req.Quantity; i++ {
		number := start + i
		records = append(records, domain.TokenRecord{
			TokenNumber: number,
			Owner:       caller,
			MetadataURI: domain.TokenMetadataURI(snapshot.BaseURI, number),
			MintedAt:    now,
		})
	}

	amountPaid := amountCollected(req.Currency, quote, req.AttachedValue)

	batch := registry.IssuedBatch{
		ReceiptID:  ulid.MustNewDefault(now).String(),
		Minter:     caller,
		Currency:   req.Currency,
		UnitPrice:  quote.UnitPrice.Dec(),
		AmountPaid: amountPaid,
		Records:    records,
	}

	if err := e.registry.IssueBatch(ctx, batch); err != nil {
		e.counter.Rollback(req.Quantity)
		// Payment already settled; it stays with the treasury. Reconcile
		// against the treasury ledger using the log below.
		logger.ErrorCtx(ctx, err,
			zap.String("message", "batch registration failed after payment settled"),
			zap.String("minter", caller),
			zap.String("amount_paid", amountPaid),
			zap.String("currency", string(req.Currency)))
		return nil, fmt.Errorf("failed to register batch: %w", err)
	}

	e.publishMintCompleted(ctx, &batch)

	return &MintResult{
		ReceiptID:  batch.ReceiptID,
		Records:    records,
		Currency:   req.Currency,
		AmountPaid: amountPaid,
	}, nil
}

// Supply returns the current issuance snapshot.
func (e *Engine) Supply() domain.SupplySnapshot {
	return domain.SupplySnapshot{
		Issued: e.counter.Issued(),
		Cap:    e.counter.Cap(),
		Paused: e.state.Paused(),
	}
}

// amountCollected reports what actually moved: the full attached value on
// the primary path (excess is kept), the exact total due on the alternate.
func amountCollected(currency domain.Currency, quote *payment.Quote, attached *uint256.Int) string {
	if currency == domain.CurrencyPrimary {
		if attached == nil {
			return "0"
		}
		return attached.Dec()
	}
	return quote.TotalDue.Dec()
}

func (e *Engine) publishMintCompleted(ctx context.Context, batch *registry.IssuedBatch) {
	numbers := make([]uint64, 0, len(batch.Records))
	uris := make([]string, 0, len(batch.Records))
	for _, record := range batch.Records {
		numbers = append(numbers, record.TokenNumber)
		uris = append(uris, record.MetadataURI)
	}

	event := &domain.MintCompletedEvent{
		ReceiptID:    batch.ReceiptID,
		Minter:       batch.Minter,
		TokenNumbers: numbers,
		MetadataURIs: uris,
		Currency:     batch.Currency,
		AmountPaid:   batch.AmountPaid,
		Timestamp:    batch.Records[0].MintedAt,
	}

	// The batch is committed; a publish failure must not undo it.
	if err := e.publisher.PublishMintCompleted(ctx, event); err != nil {
		logger.WarnCtx(ctx, "failed to publish mint event",
			zap.Error(err),
			zap.String("receipt_id", batch.ReceiptID))
	}
}
