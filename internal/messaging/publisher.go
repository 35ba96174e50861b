package messaging

import (
	"context"

	"github.com/feral-file/ff-mint-engine/internal/domain"
)

// Publisher defines the interface for publishing issuance events to the
// message broker
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishMintCompleted publishes a completed batch issuance
	PublishMintCompleted(ctx context.Context, event *domain.MintCompletedEvent) error
	// PublishPauseChanged publishes a pause-state transition
	PublishPauseChanged(ctx context.Context, event *domain.PauseChangedEvent) error
	// PublishConfigChanged publishes an administrative configuration change
	PublishConfigChanged(ctx context.Context, event *domain.ConfigChangedEvent) error
	// Close closes the connection
	Close()
}
