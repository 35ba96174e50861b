package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Currency identifies the payment medium accepted for minting
type Currency string

const (
	// CurrencyPrimary is the native-value payment path: the caller attaches
	// value directly to the mint request
	CurrencyPrimary Currency = "primary"
	// CurrencyAlternate is the token payment path settled through the
	// external currency service (ERC-20 style balanceOf/transferFrom)
	CurrencyAlternate Currency = "alternate"
)

// IsValidCurrency checks if a currency is one of the two accepted media
func IsValidCurrency(c Currency) bool {
	return c == CurrencyPrimary || c == CurrencyAlternate
}

// TokenRecord represents a single issued collectible token.
// The id and metadata URI are immutable after mint; only the owner changes,
// and only through the external registry's transfer operation.
type TokenRecord struct {
	TokenNumber uint64    `json:"token_number"`
	Owner       string    `json:"owner"`
	MetadataURI string    `json:"metadata_uri"`
	MintedAt    time.Time `json:"minted_at"`
}

// SupplySnapshot is a read-only view of the issuance state
type SupplySnapshot struct {
	Issued uint64 `json:"issued"`
	Cap    uint64 `json:"cap"`
	Paused bool   `json:"paused"`
}

// TokenMetadataURI derives the metadata locator for a token number.
// The derivation is deterministic: base || number || ".json"
func TokenMetadataURI(baseURI string, tokenNumber uint64) string {
	return fmt.Sprintf("%s%d.json", baseURI, tokenNumber)
}

// IsValidAddress checks if an account identifier is a well-formed address
func IsValidAddress(address string) bool {
	return common.IsHexAddress(address)
}

// NormalizeAddress normalizes an account address to its checksummed form
func NormalizeAddress(address string) string {
	if strings.HasPrefix(address, "0x") || strings.HasPrefix(address, "0X") {
		return common.HexToAddress(address).String()
	}
	return address
}
