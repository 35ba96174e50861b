package schema

import (
	"time"
)

// MintReceipt represents the mint_receipts table - one row per committed batch
type MintReceipt struct {
	// ID is a ULID assigned when the batch commits
	ID string `gorm:"column:id;primaryKey;type:text"`
	// Minter is the address that requested the batch
	Minter string `gorm:"column:minter;not null;type:text;index:idx_mint_receipts_minter"`
	// Quantity is the number of tokens issued in the batch
	Quantity uint64 `gorm:"column:quantity;not null"`
	// Currency is the payment currency the batch settled in
	Currency string `gorm:"column:currency;not null;type:text"`
	// UnitPrice is the per-token price at settlement time, decimal string in the smallest unit
	UnitPrice string `gorm:"column:unit_price;not null;type:text"`
	// AmountPaid is the total value collected, decimal string in the smallest unit
	AmountPaid string `gorm:"column:amount_paid;not null;type:text"`
	// FirstTokenNumber is the lowest token number issued in the batch
	FirstTokenNumber uint64 `gorm:"column:first_token_number;not null"`
	// LastTokenNumber is the highest token number issued in the batch
	LastTokenNumber uint64 `gorm:"column:last_token_number;not null"`
	// CreatedAt is the timestamp when this record was written
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
}

// TableName specifies the table name for the MintReceipt model
func (MintReceipt) TableName() string {
	return "mint_receipts"
}

// KeyValueStore represents the key_value_store table for small operational state
type KeyValueStore struct {
	Key       string    `gorm:"column:key;primaryKey;type:text"`
	Value     string    `gorm:"column:value;not null;type:text"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now()"`
}

// TableName specifies the table name for the KeyValueStore model
func (KeyValueStore) TableName() string {
	return "key_value_store"
}
