package dto

import (
	"time"

	"github.com/amirhossein-jamali/remitbridge/internal/domain/entity"
	"github.com/amirhossein-jamali/remitbridge/internal/domain/port/usecase"
	"github.com/shopspring/decimal"
)

// ForceStatusRequest overrides a transaction status
type ForceStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Reason string `json:"reason" binding:"required"`
}

// RateUpdateRequest is a partial rate update; absent fields are left untouched
type RateUpdateRequest struct {
	BaseRate      *decimal.Decimal `json:"baseRate"`
	MarkupPercent *decimal.Decimal `json:"markupPercent"`
}

// ToDomain converts the request into a rate update
func (r RateUpdateRequest) ToDomain() entity.RateUpdate {
	return entity.RateUpdate{BaseRate: r.BaseRate, MarkupPercent: r.MarkupPercent}
}

// BroadcastRequest is a push message sent to every user
type BroadcastRequest struct {
	Title string `json:"title" binding:"required,max=120"`
	Body  string `json:"body" binding:"required,max=1000"`
}

// AuditQuery pages the audit log
type AuditQuery struct {
	Page     int `form:"page"`
	PageSize int `form:"pageSize"`
}

// ExchangeRateResponse represents an exchange rate
type ExchangeRateResponse struct {
	Pair          string    `json:"pair"`
	BaseRate      string    `json:"baseRate"`
	MarkupPercent string    `json:"markupPercent"`
	EffectiveRate string    `json:"effectiveRate"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// NewExchangeRateResponse maps an exchange rate
func NewExchangeRateResponse(r *entity.ExchangeRate) ExchangeRateResponse {
	return ExchangeRateResponse{
		Pair:          r.Pair,
		BaseRate:      r.BaseRate.String(),
		MarkupPercent: r.MarkupPercent.String(),
		EffectiveRate: r.EffectiveRate().String(),
		UpdatedAt:     r.UpdatedAt,
	}
}

// BalanceReading is a best-effort balance; Amount is null when the lookup failed
type BalanceReading struct {
	Amount *string `json:"amount"`
	Error  string  `json:"error,omitempty"`
}

// LiquidityResponse is the funding snapshot of the pipeline
type LiquidityResponse struct {
	GatewayXOF      BalanceReading `json:"gatewayXof"`
	TreasuryToken   BalanceReading `json:"treasuryStablecoin"`
	TreasuryNative  BalanceReading `json:"treasuryNative"`
	EscrowCount     int64          `json:"escrowCount"`
	EscrowTotal     string         `json:"escrowStablecoin"`
	EscrowFiatOut   string         `json:"escrowFiatOut"`
	CompletedVolume string         `json:"completedVolumeXof"`
}

// NewLiquidityResponse maps a liquidity snapshot
func NewLiquidityResponse(s *usecase.LiquiditySnapshot) LiquidityResponse {
	return LiquidityResponse{
		GatewayXOF:      newBalanceReading(s.GatewayXOF),
		TreasuryToken:   newBalanceReading(s.TreasuryToken),
		TreasuryNative:  newBalanceReading(s.TreasuryNative),
		EscrowCount:     s.EscrowCount,
		EscrowTotal:     s.EscrowTotal.String(),
		EscrowFiatOut:   s.EscrowFiatOut.StringFixed(2),
		CompletedVolume: s.CompletedVolume.String(),
	}
}

func newBalanceReading(b usecase.BalanceReading) BalanceReading {
	out := BalanceReading{Error: b.Error}
	if b.Amount != nil {
		v := b.Amount.String()
		out.Amount = &v
	}
	return out
}

// TotalsResponse aggregates amounts over a set of transactions
type TotalsResponse struct {
	Count            int64  `json:"count"`
	FiatAmountIn     string `json:"fiatAmountIn"`
	TotalToPay       string `json:"totalToPay"`
	StablecoinAmount string `json:"stablecoinAmount"`
	ExpectedFiatOut  string `json:"expectedFiatOut"`
	GatewayFee       string `json:"gatewayFee"`
	PartnerFee       string `json:"partnerFee"`
	PlatformFee      string `json:"platformFee"`
	PlatformMargin   string `json:"platformMargin"`
	GasFeePaid       string `json:"gasFeePaid"`
}

func newTotalsResponse(t entity.TransactionTotals) TotalsResponse {
	return TotalsResponse{
		Count:            t.Count,
		FiatAmountIn:     t.FiatAmountIn.String(),
		TotalToPay:       t.TotalToPay.String(),
		StablecoinAmount: t.StablecoinAmount.String(),
		ExpectedFiatOut:  t.ExpectedFiatOut.String(),
		GatewayFee:       t.GatewayFee.String(),
		PartnerFee:       t.PartnerFee.String(),
		PlatformFee:      t.PlatformFee.String(),
		PlatformMargin:   t.PlatformMargin.String(),
		GasFeePaid:       t.GasFeePaid.String(),
	}
}

// AnalyticsResponse summarises transaction activity
type AnalyticsResponse struct {
	CountByStatus map[string]int64 `json:"countByStatus"`
	Completed     TotalsResponse   `json:"completed"`
	Refunded      TotalsResponse   `json:"refunded"`
}

// NewAnalyticsResponse maps analytics
func NewAnalyticsResponse(a *usecase.Analytics) AnalyticsResponse {
	counts := make(map[string]int64, len(a.CountByStatus))
	for status, n := range a.CountByStatus {
		counts[string(status)] = n
	}
	return AnalyticsResponse{
		CountByStatus: counts,
		Completed:     newTotalsResponse(a.Completed),
		Refunded:      newTotalsResponse(a.Refunded),
	}
}

// AuditEntryResponse is one audit log entry
type AuditEntryResponse struct {
	ID        uint64    `json:"id"`
	Actor     string    `json:"actor"`
	Action    string    `json:"action"`
	Detail    string    `json:"detail"`
	CreatedAt time.Time `json:"createdAt"`
}

// AuditPageResponse is a page of the audit log
type AuditPageResponse struct {
	Entries  []AuditEntryResponse `json:"entries"`
	Total    int64                `json:"total"`
	Page     int                  `json:"page"`
	PageSize int                  `json:"pageSize"`
}

// NewAuditPageResponse maps an audit page
func NewAuditPageResponse(p *entity.AuditPage) AuditPageResponse {
	entries := make([]AuditEntryResponse, 0, len(p.Entries))
	for _, e := range p.Entries {
		entries = append(entries, AuditEntryResponse{
			ID:        e.ID,
			Actor:     e.Actor,
			Action:    string(e.Action),
			Detail:    e.Detail,
			CreatedAt: e.CreatedAt,
		})
	}
	return AuditPageResponse{Entries: entries, Total: p.Total, Page: p.Page, PageSize: p.PageSize}
}
