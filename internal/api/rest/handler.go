package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/holiman/uint256"

	"github.com/feral-file/ff-mint-engine/internal/domain"
	"github.com/feral-file/ff-mint-engine/internal/mint"
	"github.com/feral-file/ff-mint-engine/internal/registry"
)

const (
	defaultPageLimit = 50
	maxPageLimit     = 100
)

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// Mint issues a batch of tokens to the caller
	// POST /api/v1/mint
	Mint(c *gin.Context)

	// GetToken retrieves a single token by its number
	// GET /api/v1/tokens/:number
	GetToken(c *gin.Context)

	// ListTokens retrieves tokens owned by an address
	// GET /api/v1/tokens?owner=<address>&limit=<limit>&offset=<offset>
	ListTokens(c *gin.Context)

	// GetSupply reports the issuance state
	// GET /api/v1/supply
	GetSupply(c *gin.Context)

	// GetReceipt retrieves a mint receipt by ULID
	// GET /api/v1/receipts/:id
	GetReceipt(c *gin.Context)

	// Pause stops new issuance (requires authentication)
	// POST /api/v1/admin/pause
	Pause(c *gin.Context)

	// Resume re-enables issuance (requires authentication)
	// POST /api/v1/admin/resume
	Resume(c *gin.Context)

	// SetPrice updates a per-token price (requires authentication)
	// PUT /api/v1/admin/price
	SetPrice(c *gin.Context)

	// SetAltPayment toggles the alternate payment path (requires authentication)
	// PUT /api/v1/admin/alt-payment
	SetAltPayment(c *gin.Context)

	// SetTreasury updates the proceeds destination (requires authentication)
	// PUT /api/v1/admin/treasury
	SetTreasury(c *gin.Context)

	// SetBaseURI updates the metadata URI prefix (requires authentication)
	// PUT /api/v1/admin/base-uri
	SetBaseURI(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	engine   *mint.Engine
	admin    *mint.Admin
	registry registry.TokenRegistry
}

// NewHandler creates a new REST API handler
func NewHandler(engine *mint.Engine, admin *mint.Admin, reg registry.TokenRegistry) Handler {
	return &handler{
		engine:   engine,
		admin:    admin,
		registry: reg,
	}
}

// Mint issues a batch of tokens to the caller
func (h *handler) Mint(c *gin.Context) {
	var req MintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	currency := domain.Currency(req.Currency)
	if !domain.IsValidCurrency(currency) {
		respondBadRequest(c, "Unknown currency", req.Currency)
		return
	}

	if !domain.IsValidAddress(req.Caller) {
		respondBadRequest(c, "Invalid caller address", req.Caller)
		return
	}

	var attached *uint256.Int
	if req.AttachedValue != "" {
		if currency != domain.CurrencyPrimary {
			respondBadRequest(c, "Attached value is only accepted with the primary currency")
			return
		}

		value, err := uint256.FromDecimal(req.AttachedValue)
		if err != nil {
			respondBadRequest(c, "Invalid attached value", req.AttachedValue)
			return
		}
		attached = value
	}

	result, err := h.engine.MintBatch(c.Request.Context(), mint.MintRequest{
		Caller:        req.Caller,
		Quantity:      req.Quantity,
		Currency:      currency,
		AttachedValue: attached,
	})
	if err != nil {
		respondMintError(c, err)
		return
	}

	tokens := make([]TokenResponse, 0, len(result.Records))
	for _, record := range result.Records {
		tokens = append(tokens, toTokenResponse(record))
	}

	c.JSON(http.StatusCreated, MintResponse{
		ReceiptID:  result.ReceiptID,
		Tokens:     tokens,
		Currency:   string(result.Currency),
		AmountPaid: result.AmountPaid,
	})
}

// GetToken retrieves a single token by its number
func (h *handler) GetToken(c *gin.Context) {
	number, err := strconv.ParseUint(c.Param("number"), 10, 64)
	if err != nil || number == 0 {
		respondBadRequest(c, "Invalid token number", c.Param("number"))
		return
	}

	record, err := h.registry.TokenByNumber(c.Request.Context(), number)
	if err != nil {
		if errors.Is(err, domain.ErrTokenNotFound) {
			respondNotFound(c, "Token not found")
			return
		}
		respondInternalError(c, err, "Failed to get token")
		return
	}

	c.JSON(http.StatusOK, toTokenResponse(*record))
}

// ListTokens retrieves tokens owned by an address
func (h *handler) ListTokens(c *gin.Context) {
	owner := c.Query("owner")
	if owner == "" {
		respondBadRequest(c, "Owner is required")
		return
	}
	if !domain.IsValidAddress(owner) {
		respondBadRequest(c, "Invalid owner address", owner)
		return
	}

	limit, offset, err := parsePagination(c)
	if err != nil {
		respondBadRequest(c, "Invalid pagination", err.Error())
		return
	}

	records, err := h.registry.TokensByOwner(c.Request.Context(), domain.NormalizeAddress(owner), limit, offset)
	if err != nil {
		respondInternalError(c, err, "Failed to list tokens")
		return
	}

	tokens := make([]TokenResponse, 0, len(records))
	for _, record := range records {
		tokens = append(tokens, toTokenResponse(record))
	}

	c.JSON(http.StatusOK, TokenListResponse{
		Tokens: tokens,
		Limit:  limit,
		Offset: offset,
	})
}

// GetSupply reports the issuance state
func (h *handler) GetSupply(c *gin.Context) {
	snapshot := h.engine.Supply()

	c.JSON(http.StatusOK, SupplyResponse{
		Issued:    snapshot.Issued,
		Cap:       snapshot.Cap,
		Remaining: snapshot.Cap - snapshot.Issued,
		Paused:    snapshot.Paused,
	})
}

// GetReceipt retrieves a mint receipt by ULID
func (h *handler) GetReceipt(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		respondBadRequest(c, "Receipt ID is required")
		return
	}

	receipt, err := h.registry.ReceiptByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrReceiptNotFound) {
			respondNotFound(c, "Receipt not found")
			return
		}
		respondInternalError(c, err, "Failed to get receipt")
		return
	}

	c.JSON(http.StatusOK, ReceiptResponse{
		ID:               receipt.ID,
		Minter:           receipt.Minter,
		Quantity:         receipt.Quantity,
		Currency:         string(receipt.Currency),
		UnitPrice:        receipt.UnitPrice,
		AmountPaid:       receipt.AmountPaid,
		FirstTokenNumber: receipt.FirstTokenNumber,
		LastTokenNumber:  receipt.LastTokenNumber,
	})
}

// Pause stops new issuance
func (h *handler) Pause(c *gin.Context) {
	if err := h.admin.Pause(c.Request.Context()); err != nil {
		respondInternalError(c, err, "Failed to pause issuance")
		return
	}

	c.JSON(http.StatusOK, gin.H{"paused": true})
}

// Resume re-enables issuance
func (h *handler) Resume(c *gin.Context) {
	if err := h.admin.Resume(c.Request.Context()); err != nil {
		respondInternalError(c, err, "Failed to resume issuance")
		return
	}

	c.JSON(http.StatusOK, gin.H{"paused": false})
}

// SetPrice updates a per-token price
func (h *handler) SetPrice(c *gin.Context) {
	var req SetPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	currency := domain.Currency(req.Currency)
	if !domain.IsValidCurrency(currency) {
		respondBadRequest(c, "Unknown currency", req.Currency)
		return
	}

	price, err := uint256.FromDecimal(req.UnitPrice)
	if err != nil {
		respondBadRequest(c, "Invalid unit price", req.UnitPrice)
		return
	}

	if currency == domain.CurrencyPrimary {
		err = h.admin.SetPrimaryUnitPrice(c.Request.Context(), price)
	} else {
		err = h.admin.SetAlternateUnitPrice(c.Request.Context(), price)
	}
	if err != nil {
		respondInternalError(c, err, "Failed to set price")
		return
	}

	c.JSON(http.StatusOK, gin.H{"currency": req.Currency, "unit_price": req.UnitPrice})
}

// SetAltPayment toggles the alternate payment path
func (h *handler) SetAltPayment(c *gin.Context) {
	var req SetAltPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	if err := h.admin.SetAltPaymentEnabled(c.Request.Context(), *req.Enabled); err != nil {
		respondInternalError(c, err, "Failed to toggle alternate payment")
		return
	}

	c.JSON(http.StatusOK, gin.H{"enabled": *req.Enabled})
}

// SetTreasury updates the proceeds destination
func (h *handler) SetTreasury(c *gin.Context) {
	var req SetTreasuryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	if !domain.IsValidAddress(req.Treasury) {
		respondBadRequest(c, "Invalid treasury address", req.Treasury)
		return
	}

	if err := h.admin.SetTreasury(c.Request.Context(), req.Treasury); err != nil {
		respondInternalError(c, err, "Failed to set treasury")
		return
	}

	c.JSON(http.StatusOK, gin.H{"treasury": domain.NormalizeAddress(req.Treasury)})
}

// SetBaseURI updates the metadata URI prefix
func (h *handler) SetBaseURI(c *gin.Context) {
	var req SetBaseURIRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	if err := h.admin.SetBaseURI(c.Request.Context(), req.BaseURI); err != nil {
		respondInternalError(c, err, "Failed to set base URI")
		return
	}

	c.JSON(http.StatusOK, gin.H{"base_uri": req.BaseURI})
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "ff-mint-api",
	})
}

func parsePagination(c *gin.Context) (int, int, error) {
	limit := defaultPageLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return 0, 0, errors.New("limit must be a positive integer")
		}
		limit = min(parsed, maxPageLimit)
	}

	offset := 0
	if raw := c.Query("offset"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return 0, 0, errors.New("offset must be a non-negative integer")
		}
		offset = parsed
	}

	return limit, offset, nil
}
