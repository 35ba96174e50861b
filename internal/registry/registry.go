package registry

import (
	"context"
	"fmt"

	"github.com/feral-file/ff-mint-engine/internal/domain"
	"github.com/feral-file/ff-mint-engine/internal/store"
	"github.com/feral-file/ff-mint-engine/internal/store/schema"
)

// IssuedBatch is one committed batch: the receipt plus its token records.
type IssuedBatch struct {
	ReceiptID  string
	Minter     string
	Currency   domain.Currency
	UnitPrice  string
	AmountPaid string
	Records    []domain.TokenRecord
}

// Receipt is the domain view of a persisted mint receipt.
type Receipt struct {
	ID               string
	Minter           string
	Quantity         uint64
	Currency         domain.Currency
	UnitPrice        string
	AmountPaid       string
	FirstTokenNumber uint64
	LastTokenNumber  uint64
}

// TokenRegistry defines the durable record of issued tokens
//
//go:generate mockgen -source=registry.go -destination=../mocks/registry.go -package=mocks -mock_names=TokenRegistry=MockTokenRegistry
type TokenRegistry interface {
	// IssueBatch records a committed batch atomically
	IssueBatch(ctx context.Context, batch IssuedBatch) error
	// TokenByNumber retrieves one token record, ErrTokenNotFound when absent
	TokenByNumber(ctx context.Context, tokenNumber uint64) (*domain.TokenRecord, error)
	// TokensByOwner retrieves token records issued to an owner
	TokensByOwner(ctx context.Context, owner string, limit, offset int) ([]domain.TokenRecord, error)
	// IssuedCount returns how many tokens have been committed
	IssuedCount(ctx context.Context) (uint64, error)
	// ReceiptByID retrieves one mint receipt, ErrReceiptNotFound when absent
	ReceiptByID(ctx context.Context, id string) (*Receipt, error)
}

type registry struct {
	store store.Store
}

// New creates a TokenRegistry backed by the given store
func New(s store.Store) TokenRegistry {
	return &registry{store: s}
}

func (r *registry) IssueBatch(ctx context.Context, batch IssuedBatch) error {
	if len(batch.Records) == 0 {
		return fmt.Errorf("batch has no records")
	}

	tokens := make([]schema.Token, 0, len(batch.Records))
	for _, record := range batch.Records {
		tokens = append(tokens, schema.Token{
			TokenNumber: record.TokenNumber,
			Owner:       record.Owner,
			MetadataURI: record.MetadataURI,
			ReceiptID:   batch.ReceiptID,
			MintedAt:    record.MintedAt,
		})
	}

	input := store.CreateMintBatchInput{
		Receipt: schema.MintReceipt{
			ID:               batch.ReceiptID,
			Minter:           batch.Minter,
			Quantity:         uint64(len(batch.Records)),
			Currency:         string(batch.Currency),
			UnitPrice:        batch.UnitPrice,
			AmountPaid:       batch.AmountPaid,
			FirstTokenNumber: batch.Records[0].TokenNumber,
			LastTokenNumber:  batch.Records[len(batch.Records)-1].TokenNumber,
		},
		Tokens: tokens,
	}

	if err := r.store.CreateMintBatch(ctx, input); err != nil {
		return fmt.Errorf("failed to issue batch: %w", err)
	}

	return nil
}

func (r *registry) TokenByNumber(ctx context.Context, tokenNumber uint64) (*domain.TokenRecord, error) {
	token, err := r.store.GetTokenByNumber(ctx, tokenNumber)
	if err != nil {
		return nil, err
	}
	if token == nil {
		return nil, domain.ErrTokenNotFound
	}

	record := toDomainToken(token)
	return &record, nil
}

func (r *registry) TokensByOwner(ctx context.Context, owner string, limit, offset int) ([]domain.TokenRecord, error) {
	tokens, err := r.store.ListTokensByOwner(ctx, owner, limit, offset)
	if err != nil {
		return nil, err
	}

	records := make([]domain.TokenRecord, 0, len(tokens))
	for _, token := range tokens {
		records = append(records, toDomainToken(token))
	}

	return records, nil
}

func (r *registry) IssuedCount(ctx context.Context) (uint64, error) {
	return r.store.CountTokens(ctx)
}

func (r *registry) ReceiptByID(ctx context.Context, id string) (*Receipt, error) {
	receipt, err := r.store.GetReceipt(ctx, id)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, domain.ErrReceiptNotFound
	}

	return &Receipt{
		ID:               receipt.ID,
		Minter:           receipt.Minter,
		Quantity:         receipt.Quantity,
		Currency:         domain.Currency(receipt.Currency),
		UnitPrice:        receipt.UnitPrice,
		AmountPaid:       receipt.AmountPaid,
		FirstTokenNumber: receipt.FirstTokenNumber,
		LastTokenNumber:  receipt.LastTokenNumber,
	}, nil
}

func toDomainToken(token *schema.Token) domain.TokenRecord {
	return domain.TokenRecord{
		TokenNumber: token.TokenNumber,
		Owner:       token.Owner,
		MetadataURI: token.MetadataURI,
		MintedAt:    token.MintedAt,
	}
}
