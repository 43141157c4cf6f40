package chain

import (
	"context"
	"errors"
	"math/big"
	"strings"
	"sync"
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/remitbridge/internal/domain/error"
	"github.com/amirhossein-jamali/remitbridge/internal/infrastructure/adapter/logger"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToken = "0x41E94Eb019C0762f9Bfcf9Fb1E58725BfB0e7582"

type fakeBackend struct {
	mu          sync.Mutex
	tokenRaw    *big.Int
	nativeRaw   *big.Int
	sent        []*types.Transaction
	receipts    map[common.Hash]*types.Receipt
	misses      int
	sendErr     error
	estimateGas uint64
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		tokenRaw:    big.NewInt(0),
		nativeRaw:   big.NewInt(0),
		receipts:    map[common.Hash]*types.Receipt{},
		estimateGas: 50000,
	}
}

func (f *fakeBackend) ChainID(context.Context) (*big.Int, error) { return big.NewInt(80002), nil }

func (f *fakeBackend) BalanceAt(context.Context, common.Address, *big.Int) (*big.Int, error) {
	return f.nativeRaw, nil
}

func (f *fakeBackend) CallContract(_ context.Context, _ ethereum.CallMsg, _ *big.Int) ([]byte, error) {
	return common.LeftPadBytes(f.tokenRaw.Bytes(), 32), nil
}

func (f *fakeBackend) PendingNonceAt(context.Context, common.Address) (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return uint64(len(f.sent)), nil
}

func (f *fakeBackend) SuggestGasTipCap(context.Context) (*big.Int, error) {
	return big.NewInt(30_000_000_000), nil
}

func (f *fakeBackend) HeaderByNumber(context.Context, *big.Int) (*types.Header, error) {
	return &types.Header{BaseFee: big.NewInt(10_000_000_000)}, nil
}

func (f *fakeBackend) EstimateGas(context.Context, ethereum.CallMsg) (uint64, error) {
	return f.estimateGas, nil
}

func (f *fakeBackend) SendTransaction(_ context.Context, tx *types.Transaction) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, tx)
	return nil
}

func (f *fakeBackend) TransactionReceipt(_ context.Context, hash common.Hash) (*types.Receipt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.misses > 0 {
		f.misses--
		return nil, ethereum.NotFound
	}
	r, ok := f.receipts[hash]
	if !ok {
		return nil, ethereum.NotFound
	}
	return r, nil
}

func newTestTreasury(t *testing.T, backend Backend) *Treasury {
	t.Helper()
	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	treasury, err := NewTreasury(backend, Config{
		ChainID:            80002,
		PrivateKey:         common.Bytes2Hex(crypto.FromECDSA(key)),
		StablecoinAddress:  testToken,
		StablecoinDecimals: 6,
		ReceiptPoll:        time.Millisecond,
		CallTimeout:        time.Second,
	}, logger.NewNoopLogger())
	require.NoError(t, err)
	return treasury
}

func TestNewTreasury_RejectsBadConfig(t *testing.T) {
	_, err := NewTreasury(newFakeBackend(), Config{PrivateKey: "zz", StablecoinAddress: testToken}, logger.NewNoopLogger())
	assert.Error(t, err)

	key, _ := crypto.GenerateKey()
	_, err = NewTreasury(newFakeBackend(), Config{
		PrivateKey:        "0x" + common.Bytes2Hex(crypto.FromECDSA(key)),
		StablecoinAddress: "not-an-address",
	}, logger.NewNoopLogger())
	assert.Error(t, err)
}

func TestTreasury_SignerKeyAndAddressValidation(t *testing.T) {
	treasury := newTestTreasury(t, newFakeBackend())

	assert.Equal(t, strings.ToLower(treasury.Address().Hex()), treasury.SignerKey())
	assert.True(t, treasury.ValidAddress("0x26c7c4473fefe6e9662f2ccfd9501d47c0fbce8b"))
	assert.False(t, treasury.ValidAddress("0x26c7"))
	assert.False(t, treasury.ValidAddress("wallet"))
}

func TestTreasury_Balances(t *testing.T) {
	backend := newFakeBackend()
	backend.tokenRaw = big.NewInt(125_500_000)
	backend.nativeRaw, _ = new(big.Int).SetString("2500000000000000000", 10)
	treasury := newTestTreasury(t, backend)

	token, err := treasury.StablecoinBalance(context.Background())
	require.NoError(t, err)
	assert.True(t, token.Equal(decimal.RequireFromString("125.5")), token.String())

	native, err := treasury.NativeBalance(context.Background())
	require.NoError(t, err)
	assert.True(t, native.Equal(decimal.RequireFromString("2.5")), native.String())
}

func TestTreasury_SendStablecoin(t *testing.T) {
	backend := newFakeBackend()
	treasury := newTestTreasury(t, backend)
	to := "0x26c7c4473fefe6e9662f2ccfd9501d47c0fbce8b"

	hash, err := treasury.SendStablecoin(context.Background(), to, decimal.RequireFromString("12.3456789"))
	require.NoError(t, err)
	require.Len(t, backend.sent, 1)

	tx := backend.sent[0]
	assert.Equal(t, tx.Hash().Hex(), hash)
	assert.Equal(t, common.HexToAddress(testToken), *tx.To())
	assert.Zero(t, tx.Value().Sign())
	assert.Equal(t, uint64(60000), tx.Gas())

	values, err := treasury.erc20.Methods["transfer"].Inputs.Unpack(tx.Data()[4:])
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress(to), values[0])
	assert.Equal(t, big.NewInt(12_345_678), values[1])

	sender, err := types.Sender(treasury.signer, tx)
	require.NoError(t, err)
	assert.Equal(t, treasury.Address(), sender)
}

func TestTreasury_SendNative(t *testing.T) {
	backend := newFakeBackend()
	treasury := newTestTreasury(t, backend)

	_, err := treasury.SendNative(context.Background(), "0x26c7c4473fefe6e9662f2ccfd9501d47c0fbce8b", decimal.RequireFromString("0.0005"))
	require.NoError(t, err)
	require.Len(t, backend.sent, 1)

	tx := backend.sent[0]
	assert.Equal(t, nativeTransferGas, tx.Gas())
	assert.Equal(t, big.NewInt(500_000_000_000_000), tx.Value())
	assert.Equal(t, big.NewInt(50_000_000_000), tx.GasFeeCap())
}

func TestTreasury_SendRejectsBadInput(t *testing.T) {
	backend := newFakeBackend()
	treasury := newTestTreasury(t, backend)

	_, err := treasury.SendStablecoin(context.Background(), "bogus", decimal.NewFromInt(1))
	assert.ErrorIs(t, err, errs.ErrInvalidWalletAddress)

	_, err = treasury.SendStablecoin(context.Background(), "0x26c7c4473fefe6e9662f2ccfd9501d47c0fbce8b", decimal.RequireFromString("0.0000001"))
	assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	assert.Empty(t, backend.sent)
}

func TestTreasury_BroadcastFailureIsUpstream(t *testing.T) {
	backend := newFakeBackend()
	backend.sendErr = errors.New("nonce too low")
	treasury := newTestTreasury(t, backend)

	_, err := treasury.SendNative(context.Background(), "0x26c7c4473fefe6e9662f2ccfd9501d47c0fbce8b", decimal.RequireFromString("0.001"))
	assert.ErrorIs(t, err, errs.ErrUpstreamUnavailable)
}

func TestTreasury_WaitForReceipt(t *testing.T) {
	backend := newFakeBackend()
	hash := common.HexToHash("0xabc123")
	backend.misses = 2
	backend.receipts[hash] = &types.Receipt{
		TxHash:            hash,
		Status:            types.ReceiptStatusSuccessful,
		BlockNumber:       big.NewInt(42),
		GasUsed:           21000,
		EffectiveGasPrice: big.NewInt(40_000_000_000),
	}
	treasury := newTestTreasury(t, backend)

	receipt, err := treasury.WaitForReceipt(context.Background(), hash.Hex())
	require.NoError(t, err)
	assert.True(t, receipt.Success)
	assert.Equal(t, uint64(42), receipt.BlockNumber)
	assert.True(t, receipt.GasFee.Equal(decimal.RequireFromString("0.00084")), receipt.GasFee.String())
}

func TestTreasury_WaitForReceiptHonoursContext(t *testing.T) {
	treasury := newTestTreasury(t, newFakeBackend())
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := treasury.WaitForReceipt(ctx, "0xdead")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
