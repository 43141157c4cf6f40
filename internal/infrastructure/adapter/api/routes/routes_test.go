package routes_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/amirhossein-jamali/remitbridge/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/remitbridge/internal/domain/error"
	"github.com/amirhossein-jamali/remitbridge/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/remitbridge/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/remitbridge/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/remitbridge/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/remitbridge/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/remitbridge/internal/infrastructure/adapter/gateway"
	"github.com/amirhossein-jamali/remitbridge/internal/infrastructure/adapter/logger"
	mocks "github.com/amirhossein-jamali/remitbridge/mocks/port/usecase"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	principalHeader = "X-User-ID"
	adminSecret     = "admin-secret"
	gatewaySecret   = "gw-secret"
	partnerSecret   = "partner-secret"
)

type fixture struct {
	router       *gin.Engine
	quotes       *mocks.MockQuoteUseCase
	transactions *mocks.MockTransactionUseCase
	payments     *mocks.MockPaymentUseCase
	admin        *mocks.MockAdminUseCase
}

func newFixture(t *testing.T, limiter *middleware.LimiterStore) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	f := &fixture{
		router:       gin.New(),
		quotes:       mocks.NewMockQuoteUseCase(t),
		transactions: mocks.NewMockTransactionUseCase(t),
		payments:     mocks.NewMockPaymentUseCase(t),
		admin:        mocks.NewMockAdminUseCase(t),
	}
	log := logger.NewNoopLogger()

	routes.SetupMiddlewares(f.router, log, nil, []string{"*"}, principalHeader)
	routes.SetupRoutes(f.router, routes.Handlers{
		Quote:       handler.NewQuoteHandler(f.quotes, log),
		Transaction: handler.NewTransactionHandler(f.transactions, log),
		Claim:       handler.NewClaimHandler(f.transactions, log),
		Receiver:    handler.NewReceiverHandler(f.transactions, log),
		Webhook: handler.NewWebhookHandler(f.payments, f.transactions, handler.WebhookSecrets{
			Gateway: gatewaySecret,
			Partner: partnerSecret,
		}, log),
		Admin:  handler.NewAdminHandler(f.admin, log),
		Health: handler.NewHealthHandler(nil, time.Second),
	}, routes.Options{
		PrincipalHeader: principalHeader,
		AdminSecret:     adminSecret,
		RateLimiter:     limiter,
	}, log)
	return f
}

func (f *fixture) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func sampleTransaction() *entity.Transaction {
	return &entity.Transaction{
		ID:               7,
		ReferenceCode:    "RB-7K2M9Q",
		SenderID:         1,
		Status:           entity.StatusInitiated,
		DeliverySpeed:    entity.SpeedInstant,
		RoutingStrategy:  entity.RoutingInstantSepaInstant,
		FiatAmountIn:     decimal.NewFromInt(65596),
		TotalToPay:       decimal.NewFromInt(73078),
		StablecoinAmount: decimal.RequireFromString("103.000000"),
		ExpectedFiatOut:  decimal.NewFromInt(100),
		CreatedAt:        time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestGetQuote(t *testing.T) {
	f := newFixture(t, nil)
	f.quotes.EXPECT().GetQuote(mock.Anything, "65596", "XOF", "INSTANT").Return(&entity.Quote{
		RequestedAmount:  decimal.NewFromInt(65596),
		Currency:         entity.CurrencyXOF,
		Speed:            entity.SpeedInstant,
		TargetFiatOut:    decimal.NewFromInt(100),
		CommercialAmount: decimal.NewFromInt(71990),
		TotalToPay:       decimal.RequireFromString("73069.85"),
		StablecoinAmount: decimal.RequireFromString("103.4"),
		GatewayFee:       decimal.RequireFromString("1079.85"),
		RateCharged:      decimal.RequireFromString("719.9"),
		OfficialRate:     decimal.RequireFromString("655.96"),
		RoutingStrategy:  entity.RoutingInstantSepaInstant,
		PricingSource:    entity.PricingFallback,
	}, nil)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/api/v1/quotes?amount=65596&currency=XOF&speed=INSTANT", nil))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	resp := decode[dto.QuoteResponse](t, rec)
	assert.Equal(t, "100.00", resp.ExpectedFiatOut)
	assert.Equal(t, "73070", resp.TotalToPay)
	assert.Equal(t, "103.400000", resp.StablecoinAmount)
	assert.Equal(t, "fallback", resp.PricingSource)
	assert.Empty(t, resp.ProviderRate)
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
}

func TestGetQuote_Errors(t *testing.T) {
	f := newFixture(t, nil)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/api/v1/quotes?amount=100", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	f.quotes.EXPECT().GetQuote(mock.Anything, "-5", "XOF", "INSTANT").
		Return(nil, domainerr.ErrInvalidAmount)
	rec = f.do(httptest.NewRequest(http.MethodGet, "/api/v1/quotes?amount=-5&currency=XOF&speed=INSTANT", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, domainerr.CodeValidation, decode[dto.ErrorResponse](t, rec).Code)
}

func TestCreateTransaction(t *testing.T) {
	f := newFixture(t, nil)
	f.transactions.EXPECT().CreateTransaction(mock.Anything, uint64(1), mock.MatchedBy(func(r usecase.CreateTransactionRequest) bool {
		return r.ReceiverHandle == "@amina" && r.FiatAmountIn.Equal(decimal.NewFromInt(65596)) &&
			r.ExpectedFiatOut.Equal(decimal.NewFromInt(100)) && r.DeliverySpeed == "INSTANT"
	})).Return(sampleTransaction(), nil)

	body := `{"receiverHandle":"@amina","fiatAmountIn":"65596","expectedFiatOut":100,"deliverySpeed":"INSTANT"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(principalHeader, "1")

	rec := f.do(req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	resp := decode[dto.TransactionResponse](t, rec)
	assert.Equal(t, "RB-7K2M9Q", resp.ReferenceCode)
	assert.Equal(t, "INITIATED", resp.Status)
	assert.Equal(t, "100.00", resp.ExpectedFiatOut)
}

func TestCreateTransaction_RequiresPrincipal(t *testing.T) {
	f := newFixture(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions", strings.NewReader(`{}`))
	rec := f.do(req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/v1/transactions", strings.NewReader(`{}`))
	req.Header.Set(principalHeader, "abc")
	rec = f.do(req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateTransaction_StaleQuote(t *testing.T) {
	f := newFixture(t, nil)
	f.transactions.EXPECT().CreateTransaction(mock.Anything, uint64(1), mock.Anything).
		Return(nil, domainerr.ErrStaleQuote)

	body := `{"receiverHandle":"amina","fiatAmountIn":"65596","expectedFiatOut":"120","deliverySpeed":"INSTANT"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions", strings.NewReader(body))
	req.Header.Set(principalHeader, "1")

	rec := f.do(req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode[dto.ErrorResponse](t, rec).Message, "quote no longer valid")
}

func TestTransactionReads(t *testing.T) {
	f := newFixture(t, nil)
	f.transactions.EXPECT().ListBySender(mock.Anything, uint64(3), 10, 20).
		Return([]*entity.Transaction{sampleTransaction()}, nil)
	f.transactions.EXPECT().GetByID(mock.Anything, uint64(3), uint64(7)).
		Return(nil, domainerr.ErrTransactionNotFound)
	f.transactions.EXPECT().GetByReference(mock.Anything, uint64(3), "RB-7K2M9Q").
		Return(sampleTransaction(), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions/sent?limit=10&offset=20", nil)
	req.Header.Set(principalHeader, "3")
	rec := f.do(req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]dto.TransactionResponse](t, rec), 1)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/transactions/7", nil)
	req.Header.Set(principalHeader, "3")
	rec = f.do(req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, domainerr.CodeTransactionNotFound, decode[dto.ErrorResponse](t, rec).Code)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/transactions/reference/RB-7K2M9Q", nil)
	req.Header.Set(principalHeader, "3")
	rec = f.do(req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/transactions/zero", nil)
	req.Header.Set(principalHeader, "3")
	rec = f.do(req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestInitiatePayment_UpstreamFailureHidesCause(t *testing.T) {
	f := newFixture(t, nil)
	f.transactions.EXPECT().InitiatePayment(mock.Anything, uint64(1), uint64(7)).
		Return(nil, domainerr.NewUpstreamError("gateway", "initiate_payment", errors.New("dial tcp: refused")))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions/7/payment", nil)
	req.Header.Set(principalHeader, "1")
	rec := f.do(req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	resp := decode[dto.ErrorResponse](t, rec)
	assert.Equal(t, domainerr.CodeUpstreamUnavailable, resp.Code)
	assert.NotContains(t, resp.Message, "refused")
}

func TestClaimRoutes(t *testing.T) {
	f := newFixture(t, nil)
	f.transactions.EXPECT().ClaimPreview(mock.Anything, "RB-7K2M9Q").Return(&entity.ClaimPreview{
		ReferenceCode:   "RB-7K2M9Q",
		Status:          entity.StatusPayinSuccess,
		ExpectedFiatOut: decimal.NewFromInt(100),
		SenderFirstName: "Moussa",
	}, nil)
	f.transactions.EXPECT().Claim(mock.Anything, "RB-7K2M9Q", uint64(9)).Return(nil, domainerr.ErrAlreadyClaimed)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/api/v1/claims/RB-7K2M9Q", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Moussa", decode[dto.ClaimPreviewResponse](t, rec).SenderFirstName)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/claims/RB-7K2M9Q", nil)
	req.Header.Set(principalHeader, "9")
	rec = f.do(req)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAttachWallet(t *testing.T) {
	f := newFixture(t, nil)
	addr := "0x26c7c4473fefe6e9662f2ccfd9501d47c0fbce8b"
	f.transactions.EXPECT().AttachWalletAddress(mock.Anything, uint64(9), addr).
		Return(&entity.Receiver{ID: 4, Handle: "amina", WalletAddress: addr}, 2, nil)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/receivers/wallet", strings.NewReader(`{"walletAddress":"`+addr+`"}`))
	req.Header.Set(principalHeader, "9")
	rec := f.do(req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	resp := decode[dto.AttachWalletResponse](t, rec)
	assert.Equal(t, 2, resp.Released)
	assert.Equal(t, addr, resp.Receiver.WalletAddress)
}

func TestPaymentWebhook(t *testing.T) {
	f := newFixture(t, nil)
	body := []byte(`{"gatewayTransactionId":"gw_1","isSuccess":true,"amount":73078,"referenceCode":"RB-7K2M9Q"}`)
	f.payments.EXPECT().HandlePaymentNotification(mock.Anything, mock.MatchedBy(func(n usecase.PaymentNotification) bool {
		return n.GatewayTransactionID == "gw_1" && n.IsSuccess && n.Amount.Equal(decimal.NewFromInt(73078))
	})).Return(usecase.ResultSuccess)

	req := httptest.NewRequest(http.MethodPost, "/webhooks/payment", bytes.NewReader(body))
	req.Header.Set(gateway.SignatureHeader, "sha256="+gateway.SignPayload(gatewaySecret, body))
	rec := f.do(req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]string{"status": "success"}, decode[map[string]string](t, rec))
}

func TestPaymentWebhook_AlreadyProcessed(t *testing.T) {
	f := newFixture(t, nil)
	body := []byte(`{"gatewayTransactionId":"gw_1","isSuccess":true,"amount":73078,"referenceCode":"RB-7K2M9Q"}`)
	f.payments.EXPECT().HandlePaymentNotification(mock.Anything, mock.Anything).Return(usecase.ResultAlreadyProcessed)

	req := httptest.NewRequest(http.MethodPost, "/webhooks/payment", bytes.NewReader(body))
	req.Header.Set(gateway.SignatureHeader, gateway.SignPayload(gatewaySecret, body))
	rec := f.do(req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"already_processed"}`, rec.Body.String())
	assert.Equal(t, "already_processed", decode[dto.WebhookAck](t, rec).Status)
}

func TestPaymentWebhook_Rejections(t *testing.T) {
	f := newFixture(t, nil)
	body := []byte(`{"referenceCode":"RB-7K2M9Q","isSuccess":true}`)

	req := httptest.NewRequest(http.MethodPost, "/webhooks/payment", bytes.NewReader(body))
	req.Header.Set(gateway.SignatureHeader, gateway.SignPayload("wrong", body))
	assert.Equal(t, http.StatusUnauthorized, f.do(req).Code)

	malformed := []byte(`{"referenceCode":`)
	req = httptest.NewRequest(http.MethodPost, "/webhooks/payment", bytes.NewReader(malformed))
	req.Header.Set(gateway.SignatureHeader, gateway.SignPayload(gatewaySecret, malformed))
	rec := f.do(req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]string{"status": "error"}, decode[map[string]string](t, rec))
}

func TestOfframpWebhook(t *testing.T) {
	f := newFixture(t, nil)
	body := []byte(`{"referenceCode":"RB-7K2M9Q","isSuccess":false,"reason":"iban rejected"}`)
	f.transactions.EXPECT().HandleOfframpNotification(mock.Anything, usecase.OfframpNotification{
		ReferenceCode: "RB-7K2M9Q",
		Reason:        "iban rejected",
	}).Return(usecase.ResultFailedProcessed)

	req := httptest.NewRequest(http.MethodPost, "/webhooks/offramp", bytes.NewReader(body))
	req.Header.Set(handler.PartnerSignatureHeader, gateway.SignPayload(partnerSecret, body))
	rec := f.do(req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]string{"status": "failed_processed"}, decode[map[string]string](t, rec))

	req = httptest.NewRequest(http.MethodPost, "/webhooks/offramp", bytes.NewReader(body))
	req.Header.Set(handler.PartnerSignatureHeader, gateway.SignPayload(gatewaySecret, body))
	assert.Equal(t, http.StatusUnauthorized, f.do(req).Code)
}

func TestAdmin_RequiresSecret(t *testing.T) {
	f := newFixture(t, nil)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/admin/liquidity", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/admin/liquidity", nil)
	req.Header.Set(middleware.AdminSecretHeader, "guess")
	assert.Equal(t, http.StatusUnauthorized, f.do(req).Code)
}

func TestAdmin_RefundRecordsActor(t *testing.T) {
	f := newFixture(t, nil)
	refunded := sampleTransaction()
	refunded.Status = entity.StatusRefunded
	f.admin.EXPECT().Refund(mock.Anything, "ops@remitbridge", uint64(7)).Return(refunded, nil)
	f.admin.EXPECT().Refund(mock.Anything, "admin", uint64(8)).Return(nil, domainerr.ErrMissingGatewayID)

	req := httptest.NewRequest(http.MethodPost, "/admin/transactions/7/refund", nil)
	req.Header.Set(middleware.AdminSecretHeader, adminSecret)
	req.Header.Set(middleware.AdminActorHeader, "ops@remitbridge")
	rec := f.do(req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "REFUNDED", decode[dto.TransactionResponse](t, rec).Status)

	req = httptest.NewRequest(http.MethodPost, "/admin/transactions/8/refund", nil)
	req.Header.Set(middleware.AdminSecretHeader, adminSecret)
	assert.Equal(t, http.StatusBadRequest, f.do(req).Code)
}

func TestAdmin_UpdateRate(t *testing.T) {
	f := newFixture(t, nil)
	f.admin.EXPECT().UpdateRate(mock.Anything, "admin", entity.PairEURXOFInstant, mock.MatchedBy(func(u entity.RateUpdate) bool {
		return u.BaseRate != nil && u.BaseRate.Equal(decimal.RequireFromString("725")) && u.MarkupPercent == nil
	})).Return(&entity.ExchangeRate{
		Pair:          entity.PairEURXOFInstant,
		BaseRate:      decimal.RequireFromString("725"),
		MarkupPercent: decimal.Zero,
	}, nil)
	f.admin.EXPECT().UpdateRate(mock.Anything, "admin", "EUR_USD", mock.Anything).Return(nil, domainerr.ErrRateNotFound)

	req := httptest.NewRequest(http.MethodPatch, "/admin/rates/"+entity.PairEURXOFInstant, strings.NewReader(`{"baseRate":"725"}`))
	req.Header.Set(middleware.AdminSecretHeader, adminSecret)
	rec := f.do(req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "725", decode[dto.ExchangeRateResponse](t, rec).EffectiveRate)

	req = httptest.NewRequest(http.MethodPatch, "/admin/rates/EUR_USD", strings.NewReader(`{"baseRate":"1"}`))
	req.Header.Set(middleware.AdminSecretHeader, adminSecret)
	assert.Equal(t, http.StatusNotFound, f.do(req).Code)
}

func TestAdmin_Liquidity(t *testing.T) {
	f := newFixture(t, nil)
	token := decimal.RequireFromString("1500.25")
	f.admin.EXPECT().Liquidity(mock.Anything).Return(&usecase.LiquiditySnapshot{
		GatewayXOF:    usecase.BalanceReading{Error: "gateway balance: timeout"},
		TreasuryToken: usecase.BalanceReading{Amount: &token},
		EscrowCount:   2,
		EscrowTotal:   decimal.RequireFromString("206.8"),
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/admin/liquidity", nil)
	req.Header.Set(middleware.AdminSecretHeader, adminSecret)
	rec := f.do(req)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[dto.LiquidityResponse](t, rec)
	assert.Nil(t, resp.GatewayXOF.Amount)
	assert.Equal(t, "gateway balance: timeout", resp.GatewayXOF.Error)
	require.NotNil(t, resp.TreasuryToken.Amount)
	assert.Equal(t, "1500.25", *resp.TreasuryToken.Amount)
	assert.Equal(t, int64(2), resp.EscrowCount)
}

func TestAdmin_DeleteUserAndAudit(t *testing.T) {
	f := newFixture(t, nil)
	f.admin.EXPECT().DeleteUser(mock.Anything, "admin", uint64(5)).Return(nil)
	f.admin.EXPECT().AuditLogs(mock.Anything, 2, 10).Return(&entity.AuditPage{
		Entries:  []entity.AuditLogEntry{{ID: 1, Actor: "admin", Action: entity.AuditDeleteUser}},
		Total:    11,
		Page:     2,
		PageSize: 10,
	}, nil)

	req := httptest.NewRequest(http.MethodDelete, "/admin/users/5", nil)
	req.Header.Set(middleware.AdminSecretHeader, adminSecret)
	assert.Equal(t, http.StatusNoContent, f.do(req).Code)

	req = httptest.NewRequest(http.MethodGet, "/admin/audit-logs?page=2&pageSize=10", nil)
	req.Header.Set(middleware.AdminSecretHeader, adminSecret)
	rec := f.do(req)
	require.Equal(t, http.StatusOK, rec.Code)
	page := decode[dto.AuditPageResponse](t, rec)
	assert.Equal(t, int64(11), page.Total)
	assert.Equal(t, "DELETE_USER", page.Entries[0].Action)
}

func TestRateLimit(t *testing.T) {
	f := newFixture(t, middleware.NewLimiterStore(0.001, 2, time.Minute))
	f.quotes.EXPECT().GetQuote(mock.Anything, "100", "EUR", "STANDARD").
		Return(&entity.Quote{Currency: entity.CurrencyEUR, Speed: entity.SpeedStandard}, nil).Times(2)

	for i := 0; i < 2; i++ {
		rec := f.do(httptest.NewRequest(http.MethodGet, "/api/v1/quotes?amount=100&currency=EUR&speed=STANDARD", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := f.do(httptest.NewRequest(http.MethodGet, "/api/v1/quotes?amount=100&currency=EUR&speed=STANDARD", nil))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, domainerr.CodeRateLimited, decode[dto.ErrorResponse](t, rec).Code)
}

func TestHealthz(t *testing.T) {
	f := newFixture(t, nil)
	rec := f.do(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
