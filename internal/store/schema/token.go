package schema

import (
	"time"
)

// Token represents the tokens table - one row per issued collectible
type Token struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// TokenNumber is the sequential identifier assigned at issuance, starting from 1
	TokenNumber uint64 `gorm:"column:token_number;not null;uniqueIndex"`
	// Owner is the recipient address the token was issued to
	Owner string `gorm:"column:owner;not null;type:text;index:idx_tokens_owner"`
	// MetadataURI is the immutable metadata pointer assigned at issuance
	MetadataURI string `gorm:"column:metadata_uri;not null;type:text"`
	// ReceiptID links the token to the batch receipt it was issued under
	ReceiptID string `gorm:"column:receipt_id;not null;type:text;index:idx_tokens_receipt"`
	// MintedAt is the issuance timestamp shared by every token in the batch
	MintedAt time.Time `gorm:"column:minted_at;not null"`
	// CreatedAt is the timestamp when this record was written
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
}

// TableName specifies the table name for the Token model
func (Token) TableName() string {
	return "tokens"
}
