package store

import (
	"context"

	"github.com/feral-file/ff-mint-engine/internal/store/schema"
)

// CreateMintBatchInput carries the receipt and its token rows. Both are
// written in a single transaction so a batch is never half-persisted.
type CreateMintBatchInput struct {
	Receipt schema.MintReceipt
	Tokens  []schema.Token
}

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// CreateMintBatch persists a committed batch atomically
	CreateMintBatch(ctx context.Context, input CreateMintBatchInput) error
	// GetTokenByNumber retrieves a token by its sequential number, nil when absent
	GetTokenByNumber(ctx context.Context, tokenNumber uint64) (*schema.Token, error)
	// ListTokensByOwner retrieves tokens issued to an owner, ordered by token number
	ListTokensByOwner(ctx context.Context, owner string, limit, offset int) ([]*schema.Token, error)
	// CountTokens returns the number of issued tokens on record
	CountTokens(ctx context.Context) (uint64, error)
	// GetReceipt retrieves a mint receipt by ULID, nil when absent
	GetReceipt(ctx context.Context, id string) (*schema.MintReceipt, error)
	// GetPauseState retrieves the persisted pause flag, false when unset
	GetPauseState(ctx context.Context) (bool, error)
	// SetPauseState persists the pause flag
	SetPauseState(ctx context.Context, paused bool) error
}
