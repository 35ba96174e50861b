package mint

import (
	"fmt"
	"sync"

	"github.com/holiman/uint256"

	"github.com/feral-file/ff-mint-engine/internal/domain"
)

// DefaultMaxPerCall bounds how many tokens one request may mint.
const DefaultMaxPerCall = 10

// StateConfig seeds the mutable issuance state at startup.
type StateConfig struct {
	Paused             bool
	PrimaryUnitPrice   *uint256.Int
	AlternateUnitPrice *uint256.Int
	AltPaymentEnabled  bool
	Treasury           string
	BaseURI            string
	MaxPerCall         uint64
}

// ConfigSnapshot is a consistent read of the settings one mint attempt runs
// under. Admin changes landing mid-attempt affect only later attempts.
type ConfigSnapshot struct {
	Paused             bool
	PrimaryUnitPrice   *uint256.Int
	AlternateUnitPrice *uint256.Int
	AltPaymentEnabled  bool
	Treasury           string
	BaseURI            string
	MaxPerCall         uint64
}

// UnitPrice returns the per-token price for the given currency.
func (s ConfigSnapshot) UnitPrice(currency domain.Currency) *uint256.Int {
	if currency == domain.CurrencyAlternate {
		return s.AlternateUnitPrice
	}
	return s.PrimaryUnitPrice
}

// State owns the pause gate, the issuance lock, and the administratively
// mutable settings. All access goes through its methods; nothing here is
// package-level.
type State struct {
	mu                 sync.Mutex
	paused             bool
	locked             bool
	primaryUnitPrice   *uint256.Int
	alternateUnitPrice *uint256.Int
	altPaymentEnabled  bool
	treasury           string
	baseURI            string
	maxPerCall         uint64
}

// NewState creates the issuance state from its seed configuration.
func NewState(cfg StateConfig) (*State, error) {
	if !domain.IsValidAddress(cfg.Treasury) {
		return nil, fmt.Errorf("invalid treasury address: %s", cfg.Treasury)
	}
	if cfg.BaseURI == "" {
		return nil, fmt.Errorf("base URI must not be empty")
	}

	primary := cfg.PrimaryUnitPrice
	if primary == nil {
		primary = uint256.NewInt(0)
	}
	alternate := cfg.AlternateUnitPrice
	if alternate == nil {
		alternate = uint256.NewInt(0)
	}

	maxPerCall := cfg.MaxPerCall
	if maxPerCall == 0 {
		maxPerCall = DefaultMaxPerCall
	}

	return &State{
		paused:             cfg.Paused,
		primaryUnitPrice:   primary.Clone(),
		alternateUnitPrice: alternate.Clone(),
		altPaymentEnabled:  cfg.AltPaymentEnabled,
		treasury:           domain.NormalizeAddress(cfg.Treasury),
		baseURI:            cfg.BaseURI,
		maxPerCall:         maxPerCall,
	}, nil
}

// Snapshot returns a consistent copy of the current settings.
func (s *State) Snapshot() ConfigSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return ConfigSnapshot{
		Paused:             s.paused,
		PrimaryUnitPrice:   s.primaryUnitPrice.Clone(),
		AlternateUnitPrice: s.alternateUnitPrice.Clone(),
		AltPaymentEnabled:  s.altPaymentEnabled,
		Treasury:           s.treasury,
		BaseURI:            s.baseURI,
		MaxPerCall:         s.maxPerCall,
	}
}

// Paused reports the pause gate.
func (s *State) Paused() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.paused
}

// setPaused flips the pause gate, reporting whether the value changed.
func (s *State) setPaused(paused bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.paused == paused {
		return false
	}
	s.paused = paused
	return true
}

// TryLock attempts to take the issuance lock without blocking. A false
// return means another mint attempt is mid-flight.
func (s *State) TryLock() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.locked {
		return false
	}
	s.locked = true
	return true
}

// Unlock releases the issuance lock.
func (s *State) Unlock() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.locked = false
}

func (s *State) setPrimaryUnitPrice(price *uint256.Int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.primaryUnitPrice = price.Clone()
}

func (s *State) setAlternateUnitPrice(price *uint256.Int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.alternateUnitPrice = price.Clone()
}

func (s *State) setAltPaymentEnabled(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.altPaymentEnabled = enabled
}

func (s *State) setTreasury(treasury string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.treasury = treasury
}

func (s *State) setBaseURI(baseURI string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.baseURI = baseURI
}
