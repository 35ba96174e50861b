package mint_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-mint-engine/internal/domain"
	"github.com/feral-file/ff-mint-engine/internal/mint"
	"github.com/feral-file/ff-mint-engine/internal/mocks"
)

type testAdminMocks struct {
	ctrl      *gomock.Controller
	state     *mint.State
	store     *mocks.MockStore
	publisher *mocks.MockPublisher
	clock     *mocks.MockClock
	admin     *mint.Admin
}

func setupTestAdmin(t *testing.T) *testAdminMocks {
	ctrl := gomock.NewController(t)

	state, err := mint.NewState(mint.StateConfig{
		PrimaryUnitPrice:   uint256.NewInt(100),
		AlternateUnitPrice: uint256.NewInt(200),
		Treasury:           testTreasury,
		BaseURI:            testBaseURI,
	})
	require.NoError(t, err)

	tm := &testAdminMocks{
		ctrl:      ctrl,
		state:     state,
		store:     mocks.NewMockStore(ctrl),
		publisher: mocks.NewMockPublisher(ctrl),
		clock:     mocks.NewMockClock(ctrl),
	}
	tm.clock.EXPECT().Now().Return(testNow).AnyTimes()

	tm.admin = mint.NewAdmin(state, tm.store, tm.publisher, tm.clock)
	return tm
}

func TestAdminPause(t *testing.T) {
	ctx := context.Background()

	t.Run("persists then flips the gate", func(t *testing.T) {
		tm := setupTestAdmin(t)
		tm.store.EXPECT().SetPauseState(ctx, true).Return(nil)
		tm.publisher.EXPECT().
			PublishPauseChanged(ctx, &domain.PauseChangedEvent{Paused: true, Timestamp: testNow}).
			Return(nil)

		require.NoError(t, tm.admin.Pause(ctx))
		assert.True(t, tm.state.Paused())
	})

	t.Run("pausing twice is a no-op", func(t *testing.T) {
		tm := setupTestAdmin(t)
		tm.store.EXPECT().SetPauseState(ctx, true).Return(nil)
		tm.publisher.EXPECT().PublishPauseChanged(ctx, gomock.Any()).Return(nil)

		require.NoError(t, tm.admin.Pause(ctx))
		// No second store write, no second event
		require.NoError(t, tm.admin.Pause(ctx))
	})

	t.Run("gate stays untouched when persistence fails", func(t *testing.T) {
		tm := setupTestAdmin(t)
		tm.store.EXPECT().
			SetPauseState(ctx, true).
			Return(errors.New("connection reset"))

		err := tm.admin.Pause(ctx)
		assert.Error(t, err)
		assert.False(t, tm.state.Paused())
	})

	t.Run("resume reverses a pause", func(t *testing.T) {
		tm := setupTestAdmin(t)
		tm.store.EXPECT().SetPauseState(ctx, true).Return(nil)
		tm.store.EXPECT().SetPauseState(ctx, false).Return(nil)
		tm.publisher.EXPECT().PublishPauseChanged(ctx, gomock.Any()).Return(nil).Times(2)

		require.NoError(t, tm.admin.Pause(ctx))
		require.NoError(t, tm.admin.Resume(ctx))
		assert.False(t, tm.state.Paused())
	})

	t.Run("publish failure does not fail the operation", func(t *testing.T) {
		tm := setupTestAdmin(t)
		tm.store.EXPECT().SetPauseState(ctx, true).Return(nil)
		tm.publisher.EXPECT().
			PublishPauseChanged(ctx, gomock.Any()).
			Return(errors.New("nats: timeout"))

		require.NoError(t, tm.admin.Pause(ctx))
		assert.True(t, tm.state.Paused())
	})
}

func TestAdminConfig(t *testing.T) {
	ctx := context.Background()

	t.Run("updates primary price for later snapshots", func(t *testing.T) {
		tm := setupTestAdmin(t)
		tm.publisher.EXPECT().
			PublishConfigChanged(ctx, &domain.ConfigChangedEvent{
				Setting:   domain.SettingPrimaryUnitPrice,
				Value:     "500",
				Timestamp: testNow,
			}).
			Return(nil)

		require.NoError(t, tm.admin.SetPrimaryUnitPrice(ctx, uint256.NewInt(500)))
		assert.Equal(t, uint256.NewInt(500), tm.state.Snapshot().PrimaryUnitPrice)
	})

	t.Run("updates alternate price", func(t *testing.T) {
		tm := setupTestAdmin(t)
		tm.publisher.EXPECT().PublishConfigChanged(ctx, gomock.Any()).Return(nil)

		require.NoError(t, tm.admin.SetAlternateUnitPrice(ctx, uint256.NewInt(900)))
		assert.Equal(t, uint256.NewInt(900), tm.state.Snapshot().AlternateUnitPrice)
	})

	t.Run("rejects nil price", func(t *testing.T) {
		tm := setupTestAdmin(t)

		assert.Error(t, tm.admin.SetPrimaryUnitPrice(ctx, nil))
		assert.Error(t, tm.admin.SetAlternateUnitPrice(ctx, nil))
	})

	t.Run("toggles alternate payment", func(t *testing.T) {
		tm := setupTestAdmin(t)
		tm.publisher.EXPECT().
			PublishConfigChanged(ctx, &domain.ConfigChangedEvent{
				Setting:   domain.SettingAltPaymentEnabled,
				Value:     "true",
				Timestamp: testNow,
			}).
			Return(nil)

		require.NoError(t, tm.admin.SetAltPaymentEnabled(ctx, true))
		assert.True(t, tm.state.Snapshot().AltPaymentEnabled)
	})

	t.Run("rejects malformed treasury", func(t *testing.T) {
		tm := setupTestAdmin(t)

		err := tm.admin.SetTreasury(ctx, "not-an-address")
		assert.Error(t, err)
		assert.Equal(t, testTreasury, tm.state.Snapshot().Treasury)
	})

	t.Run("updates treasury", func(t *testing.T) {
		tm := setupTestAdmin(t)
		next := "0x3333333333333333333333333333333333333333"
		tm.publisher.EXPECT().PublishConfigChanged(ctx, gomock.Any()).Return(nil)

		require.NoError(t, tm.admin.SetTreasury(ctx, next))
		assert.Equal(t, next, tm.state.Snapshot().Treasury)
	})

	t.Run("rejects empty base URI", func(t *testing.T) {
		tm := setupTestAdmin(t)

		assert.Error(t, tm.admin.SetBaseURI(ctx, ""))
		assert.Equal(t, testBaseURI, tm.state.Snapshot().BaseURI)
	})

	t.Run("updates base URI for future mints only", func(t *testing.T) {
		tm := setupTestAdmin(t)
		tm.publisher.EXPECT().PublishConfigChanged(ctx, gomock.Any()).Return(nil)

		require.NoError(t, tm.admin.SetBaseURI(ctx, "ipfs://bafy/"))
		assert.Equal(t, "ipfs://bafy/", tm.state.Snapshot().BaseURI)
	})
}
