package admin

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/remitbridge/internal/domain/entity"
	"github.com/amirhossein-jamali/remitbridge/internal/domain/port/usecase"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// Liquidity reads the gateway and treasury balances alongside the escrow backlog. A failing
// balance lookup is reported inside its reading; only database failures fail the snapshot.
func (s *Service) Liquidity(ctx context.Context) (*usecase.LiquiditySnapshot, error) {
	snapshot := &usecase.LiquiditySnapshot{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		snapshot.GatewayXOF = s.readBalance(gctx, "gateway", "balance", s.gateway.Balance)
		return nil
	})
	g.Go(func() error {
		snapshot.TreasuryToken = s.readBalance(gctx, "chain", "stablecoin_balance", s.chain.StablecoinBalance)
		return nil
	})
	g.Go(func() error {
		snapshot.TreasuryNative = s.readBalance(gctx, "chain", "native_balance", s.chain.NativeBalance)
		return nil
	})
	g.Go(func() error {
		escrow, err := s.uow.GetTransactionRepository(gctx).Totals(gctx, entity.StatusPayinSuccess)
		if err != nil {
			return fmt.Errorf("failed to total escrow: %w", err)
		}
		snapshot.EscrowCount = escrow.Count
		snapshot.EscrowTotal = escrow.StablecoinAmount
		snapshot.EscrowFiatOut = escrow.ExpectedFiatOut
		return nil
	})
	g.Go(func() error {
		completed, err := s.uow.GetTransactionRepository(gctx).Totals(gctx, entity.StatusCompleted)
		if err != nil {
			return fmt.Errorf("failed to total completed volume: %w", err)
		}
		snapshot.CompletedVolume = completed.FiatAmountIn
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return snapshot, nil
}

func (s *Service) readBalance(
	ctx context.Context,
	providerName, operation string,
	read func(context.Context) (decimal.Decimal, error),
) usecase.BalanceReading {
	callCtx, cancel := s.timer.WithTimeout(ctx, s.settings.ProviderTimeout)
	defer cancel()

	amount, err := read(callCtx)
	s.metrics.ProviderCall(providerName, operation, outcome(err))
	if err != nil {
		s.logger.Warn("Balance lookup failed", map[string]any{
			"provider":  providerName,
			"operation": operation,
			"error":     err.Error(),
		})
		return usecase.BalanceReading{Error: err.Error()}
	}
	return usecase.BalanceReading{Amount: &amount}
}

// Analytics counts transactions per status and totals completed and refunded volume
func (s *Service) Analytics(ctx context.Context) (*usecase.Analytics, error) {
	result := &usecase.Analytics{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		counts, err := s.uow.GetTransactionRepository(gctx).CountByStatus(gctx)
		if err != nil {
			return fmt.Errorf("failed to count transactions: %w", err)
		}
		result.CountByStatus = counts
		return nil
	})
	g.Go(func() error {
		totals, err := s.uow.GetTransactionRepository(gctx).Totals(gctx, entity.StatusCompleted)
		if err != nil {
			return fmt.Errorf("failed to total completed transactions: %w", err)
		}
		result.Completed = *totals
		return nil
	})
	g.Go(func() error {
		totals, err := s.uow.GetTransactionRepository(gctx).Totals(gctx, entity.StatusRefunded)
		if err != nil {
			return fmt.Errorf("failed to total refunded transactions: %w", err)
		}
		result.Refunded = *totals
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

// AuditLogs returns a page of the audit log, newest first
func (s *Service) AuditLogs(ctx context.Context, page, pageSize int) (*entity.AuditPage, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	entries, total, err := s.uow.GetAuditLogRepository(ctx).List(ctx, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit log: %w", err)
	}
	if entries == nil {
		entries = []entity.AuditLogEntry{}
	}

	return &entity.AuditPage{
		Entries:  entries,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}
