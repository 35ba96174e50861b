package rest

import (
	"time"

	"github.com/feral-file/ff-mint-engine/internal/domain"
)

// MintRequest is the body of POST /api/v1/mint
type MintRequest struct {
	Caller        string `json:"caller" binding:"required"`
	Quantity      uint64 `json:"quantity" binding:"required"`
	Currency      string `json:"currency" binding:"required"`
	AttachedValue string `json:"attached_value,omitempty"` // decimal string, primary currency only
}

// TokenResponse is the API view of one issued token
type TokenResponse struct {
	TokenNumber uint64    `json:"token_number"`
	Owner       string    `json:"owner"`
	MetadataURI string    `json:"metadata_uri"`
	MintedAt    time.Time `json:"minted_at"`
}

// MintResponse is the body returned for a committed batch
type MintResponse struct {
	ReceiptID  string          `json:"receipt_id"`
	Tokens     []TokenResponse `json:"tokens"`
	Currency   string          `json:"currency"`
	AmountPaid string          `json:"amount_paid"`
}

// TokenListResponse wraps a page of tokens
type TokenListResponse struct {
	Tokens []TokenResponse `json:"tokens"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
}

// SupplyResponse reports the issuance state
type SupplyResponse struct {
	Issued    uint64 `json:"issued"`
	Cap       uint64 `json:"cap"`
	Remaining uint64 `json:"remaining"`
	Paused    bool   `json:"paused"`
}

// ReceiptResponse is the API view of a mint receipt
type ReceiptResponse struct {
	ID               string `json:"id"`
	Minter           string `json:"minter"`
	Quantity         uint64 `json:"quantity"`
	Currency         string `json:"currency"`
	UnitPrice        string `json:"unit_price"`
	AmountPaid       string `json:"amount_paid"`
	FirstTokenNumber uint64 `json:"first_token_number"`
	LastTokenNumber  uint64 `json:"last_token_number"`
}

// SetPriceRequest is the body of PUT /api/v1/admin/price
type SetPriceRequest struct {
	Currency  string `json:"currency" binding:"required"`
	UnitPrice string `json:"unit_price" binding:"required"` // decimal string, smallest unit
}

// SetAltPaymentRequest is the body of PUT /api/v1/admin/alt-payment
type SetAltPaymentRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

// SetTreasuryRequest is the body of PUT /api/v1/admin/treasury
type SetTreasuryRequest struct {
	Treasury string `json:"treasury" binding:"required"`
}

// SetBaseURIRequest is the body of PUT /api/v1/admin/base-uri
type SetBaseURIRequest struct {
	BaseURI string `json:"base_uri" binding:"required"`
}

func toTokenResponse(record domain.TokenRecord) TokenResponse {
	return TokenResponse{
		TokenNumber: record.TokenNumber,
		Owner:       record.Owner,
		MetadataURI: record.MetadataURI,
		MintedAt:    record.MintedAt,
	}
}
