package domain

import "time"

// EventType identifies the kind of issuance event published to NATS
type EventType string

const (
	EventTypeMintCompleted EventType = "mint_completed"
	EventTypePauseChanged  EventType = "pause_changed"
	EventTypeConfigChanged EventType = "config_changed"
)

// ConfigSetting names an administratively mutable setting
type ConfigSetting string

const (
	SettingPrimaryUnitPrice   ConfigSetting = "primary_unit_price"
	SettingAlternateUnitPrice ConfigSetting = "alternate_unit_price"
	SettingAltPaymentEnabled  ConfigSetting = "alt_payment_enabled"
	SettingTreasury           ConfigSetting = "treasury"
	SettingBaseURI            ConfigSetting = "base_uri"
)

// MintCompletedEvent is published once per committed batch
type MintCompletedEvent struct {
	ReceiptID    string    `json:"receipt_id"`
	Minter       string    `json:"minter"`
	TokenNumbers []uint64  `json:"token_numbers"`
	MetadataURIs []string  `json:"metadata_uris"`
	Currency     Currency  `json:"currency"`
	AmountPaid   string    `json:"amount_paid"` // decimal string, smallest unit
	Timestamp    time.Time `json:"timestamp"`
}

// PauseChangedEvent is published when the pause gate is toggled
type PauseChangedEvent struct {
	Paused    bool      `json:"paused"`
	Timestamp time.Time `json:"timestamp"`
}

// ConfigChangedEvent is published when an administrative setting changes
type ConfigChangedEvent struct {
	Setting   ConfigSetting `json:"setting"`
	Value     string        `json:"value"`
	Timestamp time.Time     `json:"timestamp"`
}
