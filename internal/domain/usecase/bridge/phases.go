package bridge

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/remitbridge/internal/domain/entity"
	errs "github.com/amirhossein-jamali/remitbridge/internal/domain/error"
	"github.com/shopspring/decimal"
)

// Phase is one step of the on-chain choreography
type Phase string

// Phases in execution order
const (
	PhasePreflight      Phase = "preflight"
	PhaseNativeTransfer Phase = "native_transfer"
	PhaseNativeConfirm  Phase = "native_confirm"
	PhaseTokenTransfer  Phase = "token_transfer"
	PhaseTokenConfirm   Phase = "token_confirm"
	PhaseDone           Phase = "done"
)

// Native gas is confirmed before the token transfer is signed so the second nonce is assigned
// after the first is mined.
var phaseOrder = []Phase{
	PhasePreflight,
	PhaseNativeTransfer,
	PhaseNativeConfirm,
	PhaseTokenTransfer,
	PhaseTokenConfirm,
}

// attempt carries the state of one bridge execution across phases
type attempt struct {
	o  *Orchestrator
	tx *entity.Transaction
	to string

	phase       Phase
	gasTxHash   string
	tokenTxHash string
	gasFeePaid  decimal.Decimal
}

func newAttempt(o *Orchestrator, tx *entity.Transaction, to string) *attempt {
	return &attempt{o: o, tx: tx, to: to, phase: PhasePreflight, gasFeePaid: decimal.Zero}
}

// run executes the phases in order and stops at the first failure, which is attributed to the
// phase it happened in
func (a *attempt) run(ctx context.Context) error {
	for _, phase := range phaseOrder {
		a.phase = phase
		if err := a.step(ctx, phase); err != nil {
			return errs.NewBridgeError(a.tx.ID, string(phase), err)
		}
		a.o.logger.Debug("Bridge phase completed", map[string]any{
			"transaction_id": a.tx.ID,
			"phase":          phase,
		})
	}
	a.phase = PhaseDone
	return nil
}

func (a *attempt) step(ctx context.Context, phase Phase) error {
	chain := a.o.chain
	switch phase {
	case PhasePreflight:
		return a.preflight(ctx)

	case PhaseNativeTransfer:
		hash, err := chain.SendNative(ctx, a.to, a.o.settings.GasSponsorship)
		if err != nil {
			return err
		}
		a.gasTxHash = hash
		return nil

	case PhaseNativeConfirm:
		return a.confirm(ctx, a.gasTxHash)

	case PhaseTokenTransfer:
		hash, err := chain.SendStablecoin(ctx, a.to, a.tx.StablecoinAmount)
		if err != nil {
			return err
		}
		a.tokenTxHash = hash
		return nil

	case PhaseTokenConfirm:
		return a.confirm(ctx, a.tokenTxHash)
	}
	return fmt.Errorf("unknown bridge phase %q", phase)
}

// preflight aborts before any broadcast when the treasury cannot cover both transfers
func (a *attempt) preflight(ctx context.Context) error {
	chain := a.o.chain

	tokenBalance, err := chain.StablecoinBalance(ctx)
	if err != nil {
		return errs.NewUpstreamError("chain", "stablecoin_balance", err)
	}
	if tokenBalance.LessThan(a.tx.StablecoinAmount) {
		return errs.NewInsufficientFundsError("stablecoin", tokenBalance.String(), a.tx.StablecoinAmount.String())
	}

	nativeBalance, err := chain.NativeBalance(ctx)
	if err != nil {
		return errs.NewUpstreamError("chain", "native_balance", err)
	}
	if nativeBalance.LessThan(a.o.settings.GasSponsorship) {
		return errs.NewInsufficientFundsError("native", nativeBalance.String(), a.o.settings.GasSponsorship.String())
	}
	return nil
}

func (a *attempt) confirm(ctx context.Context, hash string) error {
	waitCtx, cancel := a.o.timer.WithTimeout(ctx, a.o.settings.ReceiptTimeout)
	defer cancel()

	receipt, err := a.o.chain.WaitForReceipt(waitCtx, hash)
	if err != nil {
		return fmt.Errorf("waiting for %s: %w", hash, err)
	}
	a.gasFeePaid = a.gasFeePaid.Add(receipt.GasFee)
	if !receipt.Success {
		return fmt.Errorf("transaction %s reverted", hash)
	}
	return nil
}

// outcome builds the status write recording whatever the attempt produced
func (a *attempt) outcome(to entity.TransactionStatus, failure error) entity.StatusChange {
	change := entity.StatusChange{
		From:       []entity.TransactionStatus{entity.StatusBridgeProcessing},
		To:         to,
		GasFeePaid: &a.gasFeePaid,
	}
	if a.gasTxHash != "" {
		change.GasTxHash = &a.gasTxHash
	}
	if a.tokenTxHash != "" {
		change.TokenTxHash = &a.tokenTxHash
	}
	if failure != nil {
		reason := entity.TruncateReason(failure.Error(), entity.MaxFailureReasonLength)
		change.FailureReason = &reason
	}
	return change
}
