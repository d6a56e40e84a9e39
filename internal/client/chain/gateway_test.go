package chain

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cyphera/marketplace-api/internal/apperrors"
	"github.com/cyphera/marketplace-api/internal/logger"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKeyHex = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

var (
	testMarketplace = common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
	testToken       = common.HexToAddress("0xe7f1725E7734CE288F8367e1Bb143E90bb3F0512")
	testSeller      = common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
)

func init() {
	logger.InitLogger("local")
}

// revertError mimics the JSON-RPC error geth returns for a reverted call.
type revertError struct {
	data string
}

func (e *revertError) Error() string          { return "execution reverted" }
func (e *revertError) ErrorCode() int         { return 3 }
func (e *revertError) ErrorData() interface{} { return e.data }

func encodeRevert(t *testing.T, reason string) string {
	t.Helper()
	strType, err := abi.NewType("string", "", nil)
	require.NoError(t, err)
	packed, err := abi.Arguments{{Type: strType}}.Pack(reason)
	require.NoError(t, err)
	selector := crypto.Keccak256([]byte("Error(string)"))[:4]
	return hexutil.Encode(append(selector, packed...))
}

type fakeBackend struct {
	mu sync.Mutex

	chainID *big.Int
	baseFee *big.Int
	callFn  func(msg ethereum.CallMsg, block *big.Int) ([]byte, error)

	chainIDErr    error
	estimateErr   error
	sendErr       error
	receiptStatus uint64
	pendingPolls  int
	sendDelay     time.Duration

	sent        []*types.Transaction
	inflight    int32
	maxInflight int32
	closed      bool
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		chainID:       big.NewInt(31337),
		baseFee:       big.NewInt(1_000_000_000),
		receiptStatus: types.ReceiptStatusSuccessful,
	}
}

func (f *fakeBackend) CallContract(ctx context.Context, msg ethereum.CallMsg, block *big.Int) ([]byte, error) {
	if f.callFn == nil {
		return nil, errors.New("unexpected call")
	}
	return f.callFn(msg, block)
}

func (f *fakeBackend) EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error) {
	if f.estimateErr != nil {
		return 0, f.estimateErr
	}
	return 100_000, nil
}

func (f *fakeBackend) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	n := atomic.AddInt32(&f.inflight, 1)
	for {
		seen := atomic.LoadInt32(&f.maxInflight)
		if n <= seen || atomic.CompareAndSwapInt32(&f.maxInflight, seen, n) {
			break
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return uint64(len(f.sent)), nil
}

func (f *fakeBackend) HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error) {
	return &types.Header{Number: big.NewInt(10), BaseFee: f.baseFee}, nil
}

func (f *fakeBackend) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	return big.NewInt(2_000_000_000), nil
}

func (f *fakeBackend) SuggestGasTipCap(ctx context.Context) (*big.Int, error) {
	return big.NewInt(1_000_000_000), nil
}

func (f *fakeBackend) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	defer atomic.AddInt32(&f.inflight, -1)
	if f.sendDelay > 0 {
		time.Sleep(f.sendDelay)
	}
	if f.sendErr != nil {
		return f.sendErr
	}
	f.mu.Lock()
	f.sent = append(f.sent, tx)
	f.mu.Unlock()
	return nil
}

func (f *fakeBackend) TransactionReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.pendingPolls > 0 {
		f.pendingPolls--
		return nil, ethereum.NotFound
	}
	return &types.Receipt{
		Status:      f.receiptStatus,
		TxHash:      hash,
		BlockNumber: big.NewInt(11),
		GasUsed:     90_000,
	}, nil
}

func (f *fakeBackend) ChainID(ctx context.Context) (*big.Int, error) {
	if f.chainIDErr != nil {
		return nil, f.chainIDErr
	}
	return f.chainID, nil
}

func (f *fakeBackend) Close() {
	f.closed = true
}

func newTestGateway(t *testing.T, backend *fakeBackend) *Gateway {
	t.Helper()
	key, err := crypto.HexToECDSA(testKeyHex)
	require.NoError(t, err)

	gw, err := NewGateway(context.Background(), backend, Config{
		MarketplaceAddress:  testMarketplace,
		PrivateKey:          key,
		ReceiptTimeout:      time.Second,
		ReceiptPollInterval: time.Millisecond,
	})
	require.NoError(t, err)
	return gw
}

func methodOf(t *testing.T, contract abi.ABI, data []byte) *abi.Method {
	t.Helper()
	require.GreaterOrEqual(t, len(data), 4)
	m, err := contract.MethodById(data[:4])
	require.NoError(t, err)
	return m
}

func TestNewGateway(t *testing.T) {
	key, err := crypto.HexToECDSA(testKeyHex)
	require.NoError(t, err)

	t.Run("derives signer and chain id", func(t *testing.T) {
		gw := newTestGateway(t, newFakeBackend())
		assert.Equal(t, common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"), gw.SignerAddress())
		assert.Equal(t, testMarketplace, gw.MarketplaceAddress())
		assert.Equal(t, int64(31337), gw.ChainID().Int64())
	})

	t.Run("missing key", func(t *testing.T) {
		_, err := NewGateway(context.Background(), newFakeBackend(), Config{MarketplaceAddress: testMarketplace})
		assert.True(t, apperrors.Is(err, apperrors.KindValidation))
	})

	t.Run("missing marketplace", func(t *testing.T) {
		_, err := NewGateway(context.Background(), newFakeBackend(), Config{PrivateKey: key})
		assert.True(t, apperrors.Is(err, apperrors.KindValidation))
	})

	t.Run("chain id failure", func(t *testing.T) {
		backend := newFakeBackend()
		backend.chainIDErr = errors.New("connection refused")
		_, err := NewGateway(context.Background(), backend, Config{MarketplaceAddress: testMarketplace, PrivateKey: key})
		assert.True(t, apperrors.Is(err, apperrors.KindChainCommunication))
	})
}

func TestGateway_ReadListing(t *testing.T) {
	outputs := MarketplaceABI.Methods[MethodListings].Outputs

	tests := []struct {
		name      string
		callFn    func(msg ethereum.CallMsg, block *big.Int) ([]byte, error)
		wantFound bool
		wantKind  apperrors.Kind
	}{
		{
			name: "existing listing",
			callFn: func(msg ethereum.CallMsg, block *big.Int) ([]byte, error) {
				return outputs.Pack(testSeller, testToken, big.NewInt(500), big.NewInt(7))
			},
			wantFound: true,
		},
		{
			name: "zero seller is absent",
			callFn: func(msg ethereum.CallMsg, block *big.Int) ([]byte, error) {
				return outputs.Pack(common.Address{}, common.Address{}, big.NewInt(0), big.NewInt(0))
			},
		},
		{
			name: "revert is absent",
			callFn: func(msg ethereum.CallMsg, block *big.Int) ([]byte, error) {
				return nil, &revertError{data: "0x"}
			},
		},
		{
			name: "rpc failure",
			callFn: func(msg ethereum.CallMsg, block *big.Int) ([]byte, error) {
				return nil, errors.New("connection reset by peer")
			},
			wantKind: apperrors.KindChainCommunication,
		},
		{
			name: "abi mismatch",
			callFn: func(msg ethereum.CallMsg, block *big.Int) ([]byte, error) {
				return []byte{0x01}, nil
			},
			wantKind: apperrors.KindChainCommunication,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := newFakeBackend()
			backend.callFn = func(msg ethereum.CallMsg, block *big.Int) ([]byte, error) {
				assert.Equal(t, testMarketplace, *msg.To)
				assert.Equal(t, MethodListings, methodOf(t, MarketplaceABI, msg.Data).Name)
				return tt.callFn(msg, block)
			}
			gw := newTestGateway(t, backend)

			listing, found, err := gw.ReadListing(context.Background(), big.NewInt(4))

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, apperrors.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantFound, found)
			if tt.wantFound {
				require.NotNil(t, listing)
				assert.Equal(t, int64(4), listing.ID.Int64())
				assert.Equal(t, testSeller, listing.Seller)
				assert.Equal(t, testToken, listing.Token)
				assert.Equal(t, int64(500), listing.Amount.Int64())
				assert.Equal(t, int64(7), listing.Price.Int64())
			} else {
				assert.Nil(t, listing)
			}
		})
	}
}

func TestGateway_Reads(t *testing.T) {
	backend := newFakeBackend()
	backend.callFn = func(msg ethereum.CallMsg, block *big.Int) ([]byte, error) {
		if *msg.To == testMarketplace {
			m := methodOf(t, MarketplaceABI, msg.Data)
			switch m.Name {
			case MethodListingIDCounter:
				return m.Outputs.Pack(big.NewInt(3))
			case MethodEarnings:
				args, err := m.Inputs.Unpack(msg.Data[4:])
				require.NoError(t, err)
				assert.Equal(t, testSeller, args[0])
				return m.Outputs.Pack(big.NewInt(123))
			}
		}
		if *msg.To == testToken {
			m := methodOf(t, ERC20ABI, msg.Data)
			switch m.Name {
			case MethodDecimals:
				return m.Outputs.Pack(uint8(6))
			case MethodAllowance:
				args, err := m.Inputs.Unpack(msg.Data[4:])
				require.NoError(t, err)
				assert.Equal(t, testSeller, args[0])
				assert.Equal(t, testMarketplace, args[1])
				return m.Outputs.Pack(big.NewInt(99))
			}
		}
		return nil, nil
	}
	gw := newTestGateway(t, backend)
	ctx := context.Background()

	count, err := gw.ReadListingCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count.Int64())

	earnings, err := gw.ReadEarnings(ctx, testSeller)
	require.NoError(t, err)
	assert.Equal(t, int64(123), earnings.Int64())

	decimals, err := gw.ReadDecimals(ctx, testToken)
	require.NoError(t, err)
	assert.Equal(t, uint8(6), decimals)

	allowance, err := gw.ReadAllowance(ctx, testToken, testSeller, testMarketplace)
	require.NoError(t, err)
	assert.Equal(t, int64(99), allowance.Int64())

	_, err = gw.ReadDecimals(ctx, common.HexToAddress("0x1234"))
	assert.True(t, apperrors.Is(err, apperrors.KindValidation), "address without code is not a token")
}

func TestGateway_ReadDecimals_Revert(t *testing.T) {
	backend := newFakeBackend()
	backend.callFn = func(msg ethereum.CallMsg, block *big.Int) ([]byte, error) {
		return nil, &revertError{data: encodeRevert(t, "no decimals")}
	}
	gw := newTestGateway(t, backend)

	_, err := gw.ReadDecimals(context.Background(), testToken)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindChainRevert, apperrors.KindOf(err))
	assert.Equal(t, "no decimals", apperrors.ReasonOf(err))
}

func TestGateway_Populate(t *testing.T) {
	gw := newTestGateway(t, newFakeBackend())
	amount := new(big.Int).Exp(big.NewInt(10), big.NewInt(22), nil)
	price := big.NewInt(2_000_000_000_000_000_000)

	t.Run("approve", func(t *testing.T) {
		tx, err := gw.PopulateApprove(testToken, testSeller, testMarketplace, amount)
		require.NoError(t, err)
		assert.Equal(t, testToken, tx.To)
		require.NotNil(t, tx.From)
		assert.Equal(t, testSeller, *tx.From)
		assert.Nil(t, tx.Value)

		m := methodOf(t, ERC20ABI, tx.Data)
		assert.Equal(t, MethodApprove, m.Name)
		args, err := m.Inputs.Unpack(tx.Data[4:])
		require.NoError(t, err)
		assert.Equal(t, testMarketplace, args[0])
		assert.Equal(t, 0, amount.Cmp(args[1].(*big.Int)))
	})

	t.Run("list item", func(t *testing.T) {
		tx, err := gw.PopulateListItem(testToken, amount, price, testSeller)
		require.NoError(t, err)
		assert.Equal(t, testMarketplace, tx.To)
		assert.Equal(t, testSeller, *tx.From)

		m := methodOf(t, MarketplaceABI, tx.Data)
		assert.Equal(t, MethodListItem, m.Name)
		args, err := m.Inputs.Unpack(tx.Data[4:])
		require.NoError(t, err)
		assert.Equal(t, testToken, args[0])
		assert.Equal(t, 0, amount.Cmp(args[1].(*big.Int)))
		assert.Equal(t, 0, price.Cmp(args[2].(*big.Int)))
	})

	t.Run("purchase carries value", func(t *testing.T) {
		tx, err := gw.PopulatePurchase(big.NewInt(5), price)
		require.NoError(t, err)
		assert.Nil(t, tx.From)
		assert.Equal(t, 0, price.Cmp(tx.Value))
		assert.Equal(t, MethodPurchaseItem, methodOf(t, MarketplaceABI, tx.Data).Name)
	})

	t.Run("withdraw", func(t *testing.T) {
		tx, err := gw.PopulateWithdraw(testSeller)
		require.NoError(t, err)
		assert.Equal(t, testSeller, *tx.From)
		assert.Len(t, tx.Data, 4)
		assert.Equal(t, MethodWithdrawFunds, methodOf(t, MarketplaceABI, tx.Data).Name)
	})
}

func TestGateway_SubmitTransferWithSignature(t *testing.T) {
	backend := newFakeBackend()
	backend.pendingPolls = 2
	gw := newTestGateway(t, backend)
	sig := make([]byte, 65)

	receipt, err := gw.SubmitTransferWithSignature(context.Background(), testToken, testSeller, testMarketplace, big.NewInt(10), big.NewInt(1), sig)
	require.NoError(t, err)
	require.Len(t, backend.sent, 1)

	tx := backend.sent[0]
	assert.Equal(t, tx.Hash(), receipt.TxHash)
	assert.Equal(t, uint8(types.DynamicFeeTxType), tx.Type())
	assert.Equal(t, uint64(120_000), tx.Gas())
	assert.Equal(t, testMarketplace, *tx.To())
	assert.Equal(t, MethodTransferWithSignature, methodOf(t, MarketplaceABI, tx.Data()).Name)

	sender, err := types.Sender(types.LatestSignerForChainID(big.NewInt(31337)), tx)
	require.NoError(t, err)
	assert.Equal(t, gw.SignerAddress(), sender)
}

func TestGateway_SubmitLegacyWithoutBaseFee(t *testing.T) {
	backend := newFakeBackend()
	backend.baseFee = nil
	gw := newTestGateway(t, backend)

	_, err := gw.SubmitListItemBehalf(context.Background(), testToken, big.NewInt(1), big.NewInt(1), make([]byte, 65), testSeller)
	require.NoError(t, err)
	require.Len(t, backend.sent, 1)
	assert.Equal(t, uint8(types.LegacyTxType), backend.sent[0].Type())
	assert.Equal(t, MethodListItemBehalf, methodOf(t, MarketplaceABI, backend.sent[0].Data()).Name)
}

func TestGateway_SubmitFailures(t *testing.T) {
	tests := []struct {
		name       string
		setup      func(t *testing.T, b *fakeBackend)
		wantKind   apperrors.Kind
		wantReason string
		wantSent   int
	}{
		{
			name: "estimate gas revert",
			setup: func(t *testing.T, b *fakeBackend) {
				b.estimateErr = &revertError{data: encodeRevert(t, "Invalid signature")}
			},
			wantKind:   apperrors.KindChainRevert,
			wantReason: "Invalid signature",
		},
		{
			name: "estimate gas network failure",
			setup: func(t *testing.T, b *fakeBackend) {
				b.estimateErr = errors.New("i/o timeout")
			},
			wantKind: apperrors.KindChainCommunication,
		},
		{
			name: "broadcast failure",
			setup: func(t *testing.T, b *fakeBackend) {
				b.sendErr = errors.New("nonce too low")
			},
			wantKind: apperrors.KindChainCommunication,
		},
		{
			name: "mined but reverted",
			setup: func(t *testing.T, b *fakeBackend) {
				b.receiptStatus = types.ReceiptStatusFailed
				b.callFn = func(msg ethereum.CallMsg, block *big.Int) ([]byte, error) {
					assert.Equal(t, int64(11), block.Int64())
					return nil, &revertError{data: encodeRevert(t, "Nonce already used")}
				}
			},
			wantKind:   apperrors.KindChainRevert,
			wantReason: "Nonce already used",
			wantSent:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := newFakeBackend()
			tt.setup(t, backend)
			gw := newTestGateway(t, backend)

			_, err := gw.SubmitTransferWithSignature(context.Background(), testToken, testSeller, testMarketplace, big.NewInt(1), big.NewInt(0), make([]byte, 65))

			require.Error(t, err)
			assert.Equal(t, tt.wantKind, apperrors.KindOf(err))
			assert.Equal(t, tt.wantReason, apperrors.ReasonOf(err))
			assert.Len(t, backend.sent, tt.wantSent)
		})
	}
}

func TestGateway_ReceiptTimeout(t *testing.T) {
	backend := newFakeBackend()
	backend.pendingPolls = 1 << 30
	key, err := crypto.HexToECDSA(testKeyHex)
	require.NoError(t, err)
	gw, err := NewGateway(context.Background(), backend, Config{
		MarketplaceAddress:  testMarketplace,
		PrivateKey:          key,
		ReceiptTimeout:      20 * time.Millisecond,
		ReceiptPollInterval: time.Millisecond,
	})
	require.NoError(t, err)

	_, err = gw.SubmitListItemBehalf(context.Background(), testToken, big.NewInt(1), big.NewInt(1), make([]byte, 65), testSeller)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindChainCommunication, apperrors.KindOf(err))
	assert.Contains(t, err.Error(), "timed out waiting for receipt")
}

func TestGateway_SubmissionsAreSerialized(t *testing.T) {
	backend := newFakeBackend()
	backend.sendDelay = 5 * time.Millisecond
	gw := newTestGateway(t, backend)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := gw.SubmitTransferWithSignature(context.Background(), testToken, testSeller, testMarketplace, big.NewInt(int64(i+1)), big.NewInt(int64(i)), make([]byte, 65))
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&backend.maxInflight))
	require.Len(t, backend.sent, 8)

	nonces := make(map[uint64]bool)
	for _, tx := range backend.sent {
		assert.False(t, nonces[tx.Nonce()], "nonce %d reused", tx.Nonce())
		nonces[tx.Nonce()] = true
	}
}

func TestGateway_HealthCheckAndClose(t *testing.T) {
	backend := newFakeBackend()
	gw := newTestGateway(t, backend)

	assert.NoError(t, gw.HealthCheck(context.Background()))

	backend.chainIDErr = errors.New("down")
	assert.True(t, apperrors.Is(gw.HealthCheck(context.Background()), apperrors.KindChainCommunication))

	gw.Close()
	assert.True(t, backend.closed)
}

func TestRevertReason(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantReason   string
		wantReverted bool
	}{
		{name: "nil", err: nil},
		{name: "plain network error", err: errors.New("dial tcp: connection refused")},
		{name: "data error with reason", err: &revertError{data: encodeRevert(t, "Not enough tokens")}, wantReason: "Not enough tokens", wantReverted: true},
		{name: "data error without reason", err: &revertError{data: "0x"}, wantReverted: true},
		{name: "message only", err: errors.New("execution reverted: Listing not active"), wantReason: "Listing not active", wantReverted: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reason, reverted := revertReason(tt.err)
			assert.Equal(t, tt.wantReverted, reverted)
			assert.Equal(t, tt.wantReason, reason)
		})
	}
}
