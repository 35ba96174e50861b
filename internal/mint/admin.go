package mint

import (
	"context"
	"fmt"
	"strconv"

	"github.com/holiman/uint256"
	"go.uber.org/zap"

	"github.com/feral-file/ff-mint-engine/internal/adapter"
	"github.com/feral-file/ff-mint-engine/internal/domain"
	"github.com/feral-file/ff-mint-engine/internal/logger"
	"github.com/feral-file/ff-mint-engine/internal/messaging"
	"github.com/feral-file/ff-mint-engine/internal/store"
)

// Admin is the capability handle for administrative operations. Holding a
// reference is the privilege; callers gate access before handing one out.
type Admin struct {
	state     *State
	store     store.Store
	publisher messaging.Publisher
	clock     adapter.Clock
}

// NewAdmin creates the administrative handle over the issuance state.
func NewAdmin(state *State, s store.Store, publisher messaging.Publisher, clock adapter.Clock) *Admin {
	return &Admin{
		state:     state,
		store:     s,
		publisher: publisher,
		clock:     clock,
	}
}

// Pause stops new issuance. Already paused is a no-op.
func (a *Admin) Pause(ctx context.Context) error {
	return a.setPaused(ctx, true)
}

// Resume re-enables issuance. Already running is a no-op.
func (a *Admin) Resume(ctx context.Context) error {
	return a.setPaused(ctx, false)
}

func (a *Admin) setPaused(ctx context.Context, paused bool) error {
	if a.state.Paused() == paused {
		return nil
	}

	// Persist before flipping so a restart never resurrects a stale value.
	if err := a.store.SetPauseState(ctx, paused); err != nil {
		return fmt.Errorf("failed to persist pause state: %w", err)
	}

	a.state.setPaused(paused)

	event := &domain.PauseChangedEvent{
		Paused:    paused,
		Timestamp: a.clock.Now(),
	}
	if err := a.publisher.PublishPauseChanged(ctx, event); err != nil {
		logger.WarnCtx(ctx, "failed to publish pause event", zap.Error(err), zap.Bool("paused", paused))
	}

	return nil
}

// SetPrimaryUnitPrice updates the per-token price on the primary path.
func (a *Admin) SetPrimaryUnitPrice(ctx context.Context, price *uint256.Int) error {
	if price == nil {
		return fmt.Errorf("price must not be nil")
	}

	a.state.setPrimaryUnitPrice(price)
	a.publishConfigChanged(ctx, domain.SettingPrimaryUnitPrice, price.Dec())
	return nil
}

// SetAlternateUnitPrice updates the per-token price on the alternate path.
func (a *Admin) SetAlternateUnitPrice(ctx context.Context, price *uint256.Int) error {
	if price == nil {
		return fmt.Errorf("price must not be nil")
	}

	a.state.setAlternateUnitPrice(price)
	a.publishConfigChanged(ctx, domain.SettingAlternateUnitPrice, price.Dec())
	return nil
}

// SetAltPaymentEnabled toggles the alternate payment path.
func (a *Admin) SetAltPaymentEnabled(ctx context.Context, enabled bool) error {
	a.state.setAltPaymentEnabled(enabled)
	a.publishConfigChanged(ctx, domain.SettingAltPaymentEnabled, strconv.FormatBool(enabled))
	return nil
}

// SetTreasury updates the proceeds destination.
func (a *Admin) SetTreasury(ctx context.Context, treasury string) error {
	if !domain.IsValidAddress(treasury) {
		return fmt.Errorf("invalid treasury address: %s", treasury)
	}

	normalized := domain.NormalizeAddress(treasury)
	a.state.setTreasury(normalized)
	a.publishConfigChanged(ctx, domain.SettingTreasury, normalized)
	return nil
}

// SetBaseURI updates the metadata URI prefix for future mints. Already
// issued tokens keep the URI they were minted with.
func (a *Admin) SetBaseURI(ctx context.Context, baseURI string) error {
	if baseURI == "" {
		return fmt.Errorf("base URI must not be empty")
	}

	a.state.setBaseURI(baseURI)
	a.publishConfigChanged(ctx, domain.SettingBaseURI, baseURI)
	return nil
}

func (a *Admin) publishConfigChanged(ctx context.Context, setting domain.ConfigSetting, value string) {
	event := &domain.ConfigChangedEvent{
		Setting:   setting,
		Value:     value,
		Timestamp: a.clock.Now(),
	}
	if err := a.publisher.PublishConfigChanged(ctx, event); err != nil {
		logger.WarnCtx(ctx, "failed to publish config event",
			zap.Error(err),
			zap.String("setting", string(setting)))
	}
}
