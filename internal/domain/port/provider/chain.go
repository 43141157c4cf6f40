package provider

import (
	"context"

	"github.com/shopspring/decimal"
)

// Receipt is the outcome of a mined treasury transaction
type Receipt struct {
	TxHash      string
	Success     bool
	BlockNumber uint64
	GasFee      decimal.Decimal // native units
}

// TreasuryChain signs and broadcasts transfers from the custodial treasury
type TreasuryChain interface {
	// SignerKey identifies the signing account; transfers sharing a key must be serialized
	SignerKey() string

	// ValidAddress reports whether addr is a well-formed account address on this chain
	ValidAddress(addr string) bool

	StablecoinBalance(ctx context.Context) (decimal.Decimal, error)
	NativeBalance(ctx context.Context) (decimal.Decimal, error)

	// SendNative broadcasts a native-currency transfer and returns its hash without waiting
	SendNative(ctx context.Context, to string, amount decimal.Decimal) (string, error)

	// SendStablecoin broadcasts a token transfer and returns its hash without waiting
	SendStablecoin(ctx context.Context, to string, amount decimal.Decimal) (string, error)

	// WaitForReceipt blocks until the transaction is mined or ctx is done
	WaitForReceipt(ctx context.Context, txHash string) (*Receipt, error)
}
