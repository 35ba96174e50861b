package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/feral-file/ff-mint-engine/internal/domain"
	"github.com/feral-file/ff-mint-engine/internal/logger"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Client errors (4xx)
	errCodeBadRequest            ErrorCode = "bad_request"
	errCodeNotFound              ErrorCode = "not_found"
	errCodeValidationFailed      ErrorCode = "validation_failed"
	errCodeInvalidQuantity       ErrorCode = "invalid_quantity"
	errCodeOperationPaused       ErrorCode = "operation_paused"
	errCodeReentrantCall         ErrorCode = "reentrant_call"
	errCodeSupplyExceeded        ErrorCode = "supply_exceeded"
	errCodeInsufficientPayment   ErrorCode = "insufficient_payment"
	errCodePaymentMethodDisabled ErrorCode = "payment_method_disabled"
	errCodeArithmeticOverflow    ErrorCode = "arithmetic_overflow"

	// Server errors (5xx)
	errCodeInternalError          ErrorCode = "internal_error"
	errCodePaymentTransferFailed  ErrorCode = "payment_transfer_failed"
	errCodeTreasuryTransferFailed ErrorCode = "treasury_transfer_failed"
)

// errorResponse represents a standardized error response
type errorResponse struct {
	Error errorDetail `json:"error"`
}

// errorDetail contains error information
type errorDetail struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, statusCode int, code ErrorCode, message string, details ...string) {
	response := errorResponse{
		Error: errorDetail{
			Code:    code,
			Message: message,
		},
	}

	if len(details) > 0 {
		response.Error.Details = details[0]
	}

	c.JSON(statusCode, response)
}

// respondBadRequest sends a 400 Bad Request response
func respondBadRequest(c *gin.Context, message string, details ...string) {
	respondWithError(c, http.StatusBadRequest, errCodeBadRequest, message, details...)
}

// respondNotFound sends a 404 Not Found response
func respondNotFound(c *gin.Context, message string, details ...string) {
	respondWithError(c, http.StatusNotFound, errCodeNotFound, message, details...)
}

// respondValidationError sends a 400 Bad Request with validation error
func respondValidationError(c *gin.Context, details string) {
	respondWithError(c, http.StatusBadRequest, errCodeValidationFailed, "Validation failed", details)
}

// respondInternalError sends a 500 Internal Server Error response and logs the error
func respondInternalError(c *gin.Context, err error, message string, fields ...zap.Field) {
	logger.Error(err, fields...)
	respondWithError(c, http.StatusInternalServerError, errCodeInternalError, message)
}

// respondMintError maps an issuance failure to its HTTP status and code.
// Precondition failures are 4xx, transient contention is 409, and failures
// on the external payment rails surface as 502.
func respondMintError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidQuantity):
		respondWithError(c, http.StatusBadRequest, errCodeInvalidQuantity, "Quantity out of range", err.Error())
	case errors.Is(err, domain.ErrPaymentMethodDisabled):
		respondWithError(c, http.StatusBadRequest, errCodePaymentMethodDisabled, "Alternate payment is disabled", err.Error())
	case errors.Is(err, domain.ErrArithmeticOverflow):
		respondWithError(c, http.StatusBadRequest, errCodeArithmeticOverflow, "Payment total overflows", err.Error())
	case errors.Is(err, domain.ErrOperationPaused):
		respondWithError(c, http.StatusConflict, errCodeOperationPaused, "Issuance is paused", err.Error())
	case errors.Is(err, domain.ErrReentrantCall):
		respondWithError(c, http.StatusConflict, errCodeReentrantCall, "Another mint is in progress", err.Error())
	case errors.Is(err, domain.ErrSupplyExceeded):
		respondWithError(c, http.StatusConflict, errCodeSupplyExceeded, "Supply cap reached", err.Error())
	case errors.Is(err, domain.ErrInsufficientPayment):
		respondWithError(c, http.StatusPaymentRequired, errCodeInsufficientPayment, "Payment does not cover total due", err.Error())
	case errors.Is(err, domain.ErrPaymentTransferFailed):
		respondWithError(c, http.StatusBadGateway, errCodePaymentTransferFailed, "Payment transfer failed", err.Error())
	case errors.Is(err, domain.ErrTreasuryTransferFailed):
		respondWithError(c, http.StatusBadGateway, errCodeTreasuryTransferFailed, "Treasury transfer failed", err.Error())
	default:
		respondInternalError(c, err, "Mint failed")
	}
}
