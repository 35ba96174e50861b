package rest_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-mint-engine/internal/api/middleware"
	"github.com/feral-file/ff-mint-engine/internal/api/rest"
	"github.com/feral-file/ff-mint-engine/internal/domain"
	"github.com/feral-file/ff-mint-engine/internal/logger"
	"github.com/feral-file/ff-mint-engine/internal/mint"
	"github.com/feral-file/ff-mint-engine/internal/mocks"
	"github.com/feral-file/ff-mint-engine/internal/registry"
	"github.com/feral-file/ff-mint-engine/internal/supply"
)

const (
	testCaller   = "0x1111111111111111111111111111111111111111"
	testTreasury = "0x2222222222222222222222222222222222222222"
	testBaseURI  = "ipfs://QmTest/"
	testAPIKey   = "test-admin-key"

	testUnitPrice uint64 = 50_000_000_000_000_000
)

var testNow = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type apiMocks struct {
	collector *mocks.MockPaymentCollector
	registry  *mocks.MockTokenRegistry
	publisher *mocks.MockPublisher
	store     *mocks.MockStore
	router    *gin.Engine
}

type apiOption func(*mint.StateConfig)

func withPaused() apiOption {
	return func(cfg *mint.StateConfig) { cfg.Paused = true }
}

func newTestAPI(t *testing.T, supplyCap, issued uint64, opts ...apiOption) *apiMocks {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := &apiMocks{
		collector: mocks.NewMockPaymentCollector(ctrl),
		registry:  mocks.NewMockTokenRegistry(ctrl),
		publisher: mocks.NewMockPublisher(ctrl),
		store:     mocks.NewMockStore(ctrl),
	}

	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(testNow).AnyTimes()

	cfg := mint.StateConfig{
		PrimaryUnitPrice:   uint256.NewInt(testUnitPrice),
		AlternateUnitPrice: uint256.NewInt(testUnitPrice),
		AltPaymentEnabled:  true,
		Treasury:           testTreasury,
		BaseURI:            testBaseURI,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	state, err := mint.NewState(cfg)
	require.NoError(t, err)

	counter, err := supply.NewCounter(supplyCap, issued)
	require.NoError(t, err)

	engine := mint.NewEngine(state, counter, m.collector, m.registry, m.publisher, clock)
	admin := mint.NewAdmin(state, m.store, m.publisher, clock)

	m.router = gin.New()
	rest.SetupRoutes(m.router, rest.NewHandler(engine, admin, m.registry), middleware.AuthConfig{
		APIKeys: []string{testAPIKey},
	})

	return m
}

func (m *apiMocks) do(method, path string, body any, headers ...map[string]string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			panic(err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, h := range headers {
		for k, v := range h {
			req.Header.Set(k, v)
		}
	}

	w := httptest.NewRecorder()
	m.router.ServeHTTP(w, req)
	return w
}

func adminAuth() map[string]string {
	return map[string]string{"Authorization": "apikey " + testAPIKey}
}

func mintBody(quantity uint64) rest.MintRequest {
	attached := new(uint256.Int).Mul(uint256.NewInt(testUnitPrice), uint256.NewInt(quantity))
	return rest.MintRequest{
		Caller:        testCaller,
		Quantity:      quantity,
		Currency:      string(domain.CurrencyPrimary),
		AttachedValue: attached.Dec(),
	}
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	var resp struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Error.Code
}

func TestMint(t *testing.T) {
	t.Run("committed batch returns 201 with records", func(t *testing.T) {
		m := newTestAPI(t, 100, 0)

		m.collector.EXPECT().Collect(gomock.Any(), gomock.Any()).Return(nil)
		m.registry.EXPECT().IssueBatch(gomock.Any(), gomock.Any()).Return(nil)
		m.publisher.EXPECT().PublishMintCompleted(gomock.Any(), gomock.Any()).Return(nil)

		w := m.do(http.MethodPost, "/api/v1/mint", mintBody(3))
		require.Equal(t, http.StatusCreated, w.Code)

		var resp rest.MintResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.ReceiptID)
		assert.Equal(t, "primary", resp.Currency)
		require.Len(t, resp.Tokens, 3)
		assert.Equal(t, uint64(1), resp.Tokens[0].TokenNumber)
		assert.Equal(t, fmt.Sprintf("%s1.json", testBaseURI), resp.Tokens[0].MetadataURI)
	})

	t.Run("paused issuance returns 409", func(t *testing.T) {
		m := newTestAPI(t, 100, 0, withPaused())

		w := m.do(http.MethodPost, "/api/v1/mint", mintBody(1))
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "operation_paused", decodeError(t, w))
	})

	t.Run("quantity above the per-call limit returns 400", func(t *testing.T) {
		m := newTestAPI(t, 100, 0)

		w := m.do(http.MethodPost, "/api/v1/mint", mintBody(11))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "invalid_quantity", decodeError(t, w))
	})

	t.Run("exhausted supply returns 409", func(t *testing.T) {
		m := newTestAPI(t, 10, 8)

		w := m.do(http.MethodPost, "/api/v1/mint", mintBody(3))
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "supply_exceeded", decodeError(t, w))
	})

	t.Run("short payment returns 402", func(t *testing.T) {
		m := newTestAPI(t, 100, 0)

		m.collector.EXPECT().
			Collect(gomock.Any(), gomock.Any()).
			Return(domain.ErrInsufficientPayment)

		w := m.do(http.MethodPost, "/api/v1/mint", mintBody(2))
		assert.Equal(t, http.StatusPaymentRequired, w.Code)
		assert.Equal(t, "insufficient_payment", decodeError(t, w))
	})

	t.Run("treasury failure returns 502", func(t *testing.T) {
		m := newTestAPI(t, 100, 0)

		m.collector.EXPECT().
			Collect(gomock.Any(), gomock.Any()).
			Return(fmt.Errorf("%w: rpc timeout", domain.ErrTreasuryTransferFailed))

		w := m.do(http.MethodPost, "/api/v1/mint", mintBody(1))
		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Equal(t, "treasury_transfer_failed", decodeError(t, w))
	})

	t.Run("disabled alternate payment returns 400", func(t *testing.T) {
		m := newTestAPI(t, 100, 0)

		m.collector.EXPECT().
			Collect(gomock.Any(), gomock.Any()).
			Return(domain.ErrPaymentMethodDisabled)

		w := m.do(http.MethodPost, "/api/v1/mint", rest.MintRequest{
			Caller:   testCaller,
			Quantity: 1,
			Currency: string(domain.CurrencyAlternate),
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "payment_method_disabled", decodeError(t, w))
	})

	t.Run("attached value with alternate currency is rejected", func(t *testing.T) {
		m := newTestAPI(t, 100, 0)

		body := mintBody(1)
		body.Currency = string(domain.CurrencyAlternate)

		w := m.do(http.MethodPost, "/api/v1/mint", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "bad_request", decodeError(t, w))
	})

	t.Run("unknown currency is rejected before the engine runs", func(t *testing.T) {
		m := newTestAPI(t, 100, 0)

		body := mintBody(1)
		body.Currency = "doubloon"

		w := m.do(http.MethodPost, "/api/v1/mint", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed caller address is rejected", func(t *testing.T) {
		m := newTestAPI(t, 100, 0)

		body := mintBody(1)
		body.Caller = "not-an-address"

		w := m.do(http.MethodPost, "/api/v1/mint", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing fields fail validation", func(t *testing.T) {
		m := newTestAPI(t, 100, 0)

		w := m.do(http.MethodPost, "/api/v1/mint", gin.H{"caller": testCaller})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "validation_failed", decodeError(t, w))
	})
}

func TestGetToken(t *testing.T) {
	t.Run("found token is returned", func(t *testing.T) {
		m := newTestAPI(t, 100, 0)

		m.registry.EXPECT().
			TokenByNumber(gomock.Any(), uint64(7)).
			Return(&domain.TokenRecord{
				TokenNumber: 7,
				Owner:       testCaller,
				MetadataURI: testBaseURI + "7.json",
				MintedAt:    testNow,
			}, nil)

		w := m.do(http.MethodGet, "/api/v1/tokens/7", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp rest.TokenResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, uint64(7), resp.TokenNumber)
		assert.Equal(t, testCaller, resp.Owner)
	})

	t.Run("unknown token returns 404", func(t *testing.T) {
		m := newTestAPI(t, 100, 0)

		m.registry.EXPECT().
			TokenByNumber(gomock.Any(), uint64(404)).
			Return(nil, domain.ErrTokenNotFound)

		w := m.do(http.MethodGet, "/api/v1/tokens/404", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("non-numeric token number returns 400", func(t *testing.T) {
		m := newTestAPI(t, 100, 0)

		w := m.do(http.MethodGet, "/api/v1/tokens/abc", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestListTokens(t *testing.T) {
	t.Run("owner is required", func(t *testing.T) {
		m := newTestAPI(t, 100, 0)

		w := m.do(http.MethodGet, "/api/v1/tokens", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("pagination defaults apply", func(t *testing.T) {
		m := newTestAPI(t, 100, 0)

		m.registry.EXPECT().
			TokensByOwner(gomock.Any(), testCaller, 50, 0).
			Return([]domain.TokenRecord{
				{TokenNumber: 1, Owner: testCaller, MetadataURI: testBaseURI + "1.json", MintedAt: testNow},
			}, nil)

		w := m.do(http.MethodGet, "/api/v1/tokens?owner="+testCaller, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp rest.TokenListResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 50, resp.Limit)
		assert.Len(t, resp.Tokens, 1)
	})

	t.Run("limit is capped", func(t *testing.T) {
		m := newTestAPI(t, 100, 0)

		m.registry.EXPECT().
			TokensByOwner(gomock.Any(), testCaller, 100, 10).
			Return([]domain.TokenRecord{}, nil)

		w := m.do(http.MethodGet, "/api/v1/tokens?owner="+testCaller+"&limit=500&offset=10", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestGetSupply(t *testing.T) {
	m := newTestAPI(t, 75, 20)

	w := m.do(http.MethodGet, "/api/v1/supply", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp rest.SupplyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, uint64(20), resp.Issued)
	assert.Equal(t, uint64(75), resp.Cap)
	assert.Equal(t, uint64(55), resp.Remaining)
	assert.False(t, resp.Paused)
}

func TestGetReceipt(t *testing.T) {
	t.Run("found receipt is returned", func(t *testing.T) {
		m := newTestAPI(t, 100, 0)

		m.registry.EXPECT().
			ReceiptByID(gomock.Any(), "01J9ZK3V5N8Q2W4E6R8T0Y2U4I").
			Return(&registry.Receipt{
				ID:               "01J9ZK3V5N8Q2W4E6R8T0Y2U4I",
				Minter:           testCaller,
				Quantity:         3,
				Currency:         domain.CurrencyPrimary,
				UnitPrice:        "100",
				AmountPaid:       "300",
				FirstTokenNumber: 1,
				LastTokenNumber:  3,
			}, nil)

		w := m.do(http.MethodGet, "/api/v1/receipts/01J9ZK3V5N8Q2W4E6R8T0Y2U4I", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp rest.ReceiptResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, uint64(3), resp.Quantity)
		assert.Equal(t, uint64(1), resp.FirstTokenNumber)
	})

	t.Run("unknown receipt returns 404", func(t *testing.T) {
		m := newTestAPI(t, 100, 0)

		m.registry.EXPECT().
			ReceiptByID(gomock.Any(), "missing").
			Return(nil, domain.ErrReceiptNotFound)

		w := m.do(http.MethodGet, "/api/v1/receipts/missing", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestAdminEndpoints(t *testing.T) {
	t.Run("admin routes require authentication", func(t *testing.T) {
		m := newTestAPI(t, 100, 0)

		w := m.do(http.MethodPost, "/api/v1/admin/pause", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong api key is rejected", func(t *testing.T) {
		m := newTestAPI(t, 100, 0)

		w := m.do(http.MethodPost, "/api/v1/admin/pause", nil,
			map[string]string{"Authorization": "apikey wrong"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("pause persists and gates issuance", func(t *testing.T) {
		m := newTestAPI(t, 100, 0)

		m.store.EXPECT().SetPauseState(gomock.Any(), true).Return(nil)
		m.publisher.EXPECT().PublishPauseChanged(gomock.Any(), gomock.Any()).Return(nil)

		w := m.do(http.MethodPost, "/api/v1/admin/pause", nil, adminAuth())
		require.Equal(t, http.StatusOK, w.Code)

		w = m.do(http.MethodPost, "/api/v1/mint", mintBody(1))
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "operation_paused", decodeError(t, w))
	})

	t.Run("pause persistence failure surfaces as 500", func(t *testing.T) {
		m := newTestAPI(t, 100, 0)

		m.store.EXPECT().
			SetPauseState(gomock.Any(), true).
			Return(errors.New("database down"))

		w := m.do(http.MethodPost, "/api/v1/admin/pause", nil, adminAuth())
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("set price updates the quoted total", func(t *testing.T) {
		m := newTestAPI(t, 100, 0)

		m.publisher.EXPECT().PublishConfigChanged(gomock.Any(), gomock.Any()).Return(nil)

		w := m.do(http.MethodPut, "/api/v1/admin/price", rest.SetPriceRequest{
			Currency:  string(domain.CurrencyPrimary),
			UnitPrice: "123456",
		}, adminAuth())
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("set price rejects a malformed amount", func(t *testing.T) {
		m := newTestAPI(t, 100, 0)

		w := m.do(http.MethodPut, "/api/v1/admin/price", rest.SetPriceRequest{
			Currency:  string(domain.CurrencyPrimary),
			UnitPrice: "not-a-number",
		}, adminAuth())
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("alt payment toggle accepts explicit false", func(t *testing.T) {
		m := newTestAPI(t, 100, 0)

		m.publisher.EXPECT().PublishConfigChanged(gomock.Any(), gomock.Any()).Return(nil)

		enabled := false
		w := m.do(http.MethodPut, "/api/v1/admin/alt-payment", rest.SetAltPaymentRequest{
			Enabled: &enabled,
		}, adminAuth())
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("set treasury validates the address", func(t *testing.T) {
		m := newTestAPI(t, 100, 0)

		w := m.do(http.MethodPut, "/api/v1/admin/treasury", rest.SetTreasuryRequest{
			Treasury: "bogus",
		}, adminAuth())
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHealthCheck(t *testing.T) {
	m := newTestAPI(t, 100, 0)

	w := m.do(http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ff-mint-api")
}
