package chain

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/remitbridge/internal/domain/error"
	coreport "github.com/amirhossein-jamali/remitbridge/internal/domain/port/core"
	"github.com/amirhossein-jamali/remitbridge/internal/domain/port/provider"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/shopspring/decimal"
)

const (
	providerName = "chain"

	nativeDecimals     = 18
	nativeTransferGas  = uint64(21000)
	defaultReceiptPoll = 1500 * time.Millisecond

	erc20ABI = `[
	{"constant":false,"inputs":[{"name":"_to","type":"address"},{"name":"_value","type":"uint256"}],"name":"transfer","outputs":[{"name":"","type":"bool"}],"stateMutability":"nonpayable","type":"function"},
	{"constant":true,"inputs":[{"name":"_owner","type":"address"}],"name":"balanceOf","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"}
]`
)

// Backend is the subset of the node RPC the treasury needs. *ethclient.Client satisfies it.
type Backend interface {
	ChainID(ctx context.Context) (*big.Int, error)
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasTipCap(ctx context.Context) (*big.Int, error)
	HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)
	EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

// Config contains the treasury account and token settings
type Config struct {
	ChainID            int64
	PrivateKey         string // hex, with or without 0x
	StablecoinAddress  string
	StablecoinDecimals int32
	ReceiptPoll        time.Duration
	CallTimeout        time.Duration
}

// Treasury signs and broadcasts transfers from the custodial EVM account
type Treasury struct {
	backend  Backend
	key      *ecdsa.PrivateKey
	from     common.Address
	token    common.Address
	decimals int32
	chainID  *big.Int
	signer   types.Signer
	erc20    abi.ABI
	poll     time.Duration
	timeout  time.Duration
	logger   coreport.Logger
}

var _ provider.TreasuryChain = (*Treasury)(nil)

// Dial connects to the node at rpcURL and builds a treasury on it
func Dial(ctx context.Context, rpcURL string, cfg Config, logger coreport.Logger) (*Treasury, *ethclient.Client, error) {
	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, nil, fmt.Errorf("dial chain rpc: %w", err)
	}

	remoteID, err := client.ChainID(ctx)
	if err != nil {
		client.Close()
		return nil, nil, fmt.Errorf("read chain id: %w", err)
	}
	if cfg.ChainID != 0 && remoteID.Int64() != cfg.ChainID {
		client.Close()
		return nil, nil, fmt.Errorf("chain id mismatch: configured %d, node reports %s", cfg.ChainID, remoteID)
	}
	cfg.ChainID = remoteID.Int64()

	treasury, err := NewTreasury(client, cfg, logger)
	if err != nil {
		client.Close()
		return nil, nil, err
	}
	return treasury, client, nil
}

// NewTreasury builds a treasury on an existing backend
func NewTreasury(backend Backend, cfg Config, logger coreport.Logger) (*Treasury, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.PrivateKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("parse treasury key: %w", err)
	}
	if !common.IsHexAddress(cfg.StablecoinAddress) {
		return nil, fmt.Errorf("invalid stablecoin address %q", cfg.StablecoinAddress)
	}
	parsed, err := abi.JSON(strings.NewReader(erc20ABI))
	if err != nil {
		return nil, fmt.Errorf("parse erc20 abi: %w", err)
	}

	poll := cfg.ReceiptPoll
	if poll <= 0 {
		poll = defaultReceiptPoll
	}
	chainID := big.NewInt(cfg.ChainID)

	return &Treasury{
		backend:  backend,
		key:      key,
		from:     crypto.PubkeyToAddress(key.PublicKey),
		token:    common.HexToAddress(cfg.StablecoinAddress),
		decimals: cfg.StablecoinDecimals,
		chainID:  chainID,
		signer:   types.LatestSignerForChainID(chainID),
		erc20:    parsed,
		poll:     poll,
		timeout:  cfg.CallTimeout,
		logger:   logger,
	}, nil
}

// Address returns the treasury account
func (t *Treasury) Address() common.Address {
	return t.from
}

// SignerKey identifies the signing account by its lower-case address
func (t *Treasury) SignerKey() string {
	return strings.ToLower(t.from.Hex())
}

// ValidAddress reports whether addr is a 20-byte hex account address
func (t *Treasury) ValidAddress(addr string) bool {
	return common.IsHexAddress(addr)
}

// StablecoinBalance returns the token balance of the treasury in whole units
func (t *Treasury) StablecoinBalance(ctx context.Context) (decimal.Decimal, error) {
	ctx, cancel := t.callContext(ctx)
	defer cancel()

	data, err := t.erc20.Pack("balanceOf", t.from)
	if err != nil {
		return decimal.Zero, fmt.Errorf("pack balanceOf: %w", err)
	}
	out, err := t.backend.CallContract(ctx, ethereum.CallMsg{To: &t.token, Data: data}, nil)
	if err != nil {
		return decimal.Zero, errs.NewUpstreamError(providerName, "stablecoin_balance", err)
	}

	values, err := t.erc20.Unpack("balanceOf", out)
	if err != nil || len(values) != 1 {
		return decimal.Zero, errs.NewUpstreamError(providerName, "stablecoin_balance", fmt.Errorf("unpack balanceOf: %v", err))
	}
	raw, ok := values[0].(*big.Int)
	if !ok {
		return decimal.Zero, errs.NewUpstreamError(providerName, "stablecoin_balance", fmt.Errorf("unexpected balanceOf type %T", values[0]))
	}
	return fromBaseUnits(raw, t.decimals), nil
}

// NativeBalance returns the gas-token balance of the treasury in whole units
func (t *Treasury) NativeBalance(ctx context.Context) (decimal.Decimal, error) {
	ctx, cancel := t.callContext(ctx)
	defer cancel()

	raw, err := t.backend.BalanceAt(ctx, t.from, nil)
	if err != nil {
		return decimal.Zero, errs.NewUpstreamError(providerName, "native_balance", err)
	}
	return fromBaseUnits(raw, nativeDecimals), nil
}

// SendNative broadcasts a gas-token transfer and returns its hash
func (t *Treasury) SendNative(ctx context.Context, to string, amount decimal.Decimal) (string, error) {
	if !common.IsHexAddress(to) {
		return "", errs.ErrInvalidWalletAddress
	}
	value := toBaseUnits(amount, nativeDecimals)
	if value.Sign() <= 0 {
		return "", fmt.Errorf("%w: native transfer of %s", errs.ErrInvalidAmount, amount)
	}

	recipient := common.HexToAddress(to)
	return t.send(ctx, "send_native", recipient, value, nil, nativeTransferGas)
}

// SendStablecoin broadcasts an ERC-20 transfer and returns its hash
func (t *Treasury) SendStablecoin(ctx context.Context, to string, amount decimal.Decimal) (string, error) {
	if !common.IsHexAddress(to) {
		return "", errs.ErrInvalidWalletAddress
	}
	units := toBaseUnits(amount, t.decimals)
	if units.Sign() <= 0 {
		return "", fmt.Errorf("%w: token transfer of %s", errs.ErrInvalidAmount, amount)
	}

	data, err := t.erc20.Pack("transfer", common.HexToAddress(to), units)
	if err != nil {
		return "", fmt.Errorf("pack transfer: %w", err)
	}
	return t.send(ctx, "send_stablecoin", t.token, big.NewInt(0), data, 0)
}

// WaitForReceipt polls until the transaction is mined or ctx is done
func (t *Treasury) WaitForReceipt(ctx context.Context, txHash string) (*provider.Receipt, error) {
	hash := common.HexToHash(txHash)
	ticker := time.NewTicker(t.poll)
	defer ticker.Stop()

	for {
		receipt, err := t.backend.TransactionReceipt(ctx, hash)
		switch {
		case err == nil:
			return toReceipt(receipt), nil
		case errors.Is(err, ethereum.NotFound):
		case ctx.Err() != nil:
			return nil, ctx.Err()
		default:
			t.logger.Warn("Receipt lookup failed, retrying", map[string]any{
				"tx_hash": txHash,
				"error":   err.Error(),
			})
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

// send signs a dynamic-fee transaction from the treasury and broadcasts it.
// A zero gasLimit is estimated and padded by a fifth.
func (t *Treasury) send(ctx context.Context, op string, to common.Address, value *big.Int, data []byte, gasLimit uint64) (string, error) {
	ctx, cancel := t.callContext(ctx)
	defer cancel()

	nonce, err := t.backend.PendingNonceAt(ctx, t.from)
	if err != nil {
		return "", errs.NewUpstreamError(providerName, op, fmt.Errorf("pending nonce: %w", err))
	}
	tipCap, err := t.backend.SuggestGasTipCap(ctx)
	if err != nil {
		return "", errs.NewUpstreamError(providerName, op, fmt.Errorf("gas tip: %w", err))
	}
	head, err := t.backend.HeaderByNumber(ctx, nil)
	if err != nil {
		return "", errs.NewUpstreamError(providerName, op, fmt.Errorf("latest header: %w", err))
	}
	baseFee := head.BaseFee
	if baseFee == nil {
		baseFee = big.NewInt(0)
	}
	feeCap := new(big.Int).Add(new(big.Int).Mul(baseFee, big.NewInt(2)), tipCap)

	if gasLimit == 0 {
		estimate, err := t.backend.EstimateGas(ctx, ethereum.CallMsg{
			From:  t.from,
			To:    &to,
			Value: value,
			Data:  data,
		})
		if err != nil {
			return "", errs.NewUpstreamError(providerName, op, fmt.Errorf("estimate gas: %w", err))
		}
		gasLimit = estimate + estimate/5
	}

	tx := types.NewTx(&types.DynamicFeeTx{
		ChainID:   t.chainID,
		Nonce:     nonce,
		GasTipCap: tipCap,
		GasFeeCap: feeCap,
		Gas:       gasLimit,
		To:        &to,
		Value:     value,
		Data:      data,
	})
	signed, err := types.SignTx(tx, t.signer, t.key)
	if err != nil {
		return "", fmt.Errorf("sign %s: %w", op, err)
	}
	if err := t.backend.SendTransaction(ctx, signed); err != nil {
		return "", errs.NewUpstreamError(providerName, op, fmt.Errorf("broadcast: %w", err))
	}

	hash := signed.Hash().Hex()
	t.logger.Info("Treasury transaction broadcast", map[string]any{
		"operation": op,
		"tx_hash":   hash,
		"nonce":     nonce,
		"to":        to.Hex(),
	})
	return hash, nil
}

func (t *Treasury) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if t.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, t.timeout)
}

func toReceipt(r *types.Receipt) *provider.Receipt {
	fee := decimal.Zero
	if r.EffectiveGasPrice != nil {
		wei := new(big.Int).Mul(new(big.Int).SetUint64(r.GasUsed), r.EffectiveGasPrice)
		fee = fromBaseUnits(wei, nativeDecimals)
	}
	var block uint64
	if r.BlockNumber != nil {
		block = r.BlockNumber.Uint64()
	}
	return &provider.Receipt{
		TxHash:      r.TxHash.Hex(),
		Success:     r.Status == types.ReceiptStatusSuccessful,
		BlockNumber: block,
		GasFee:      fee,
	}
}

func fromBaseUnits(v *big.Int, decimals int32) decimal.Decimal {
	return decimal.NewFromBigInt(v, 0).Shift(-decimals)
}

// toBaseUnits truncates sub-unit dust
func toBaseUnits(amount decimal.Decimal, decimals int32) *big.Int {
	return amount.Shift(decimals).Truncate(0).BigInt()
}
