package chain

import (
	"context"
	"crypto/ecdsa"
	"math/big"
	"net/http"
	"time"

	"github.com/cyphera/marketplace-api/internal/apperrors"
	"github.com/cyphera/marketplace-api/internal/logger"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"go.uber.org/zap"
)

// Backend is the subset of *ethclient.Client the gateway needs.
type Backend interface {
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	SuggestGasTipCap(ctx context.Context) (*big.Int, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	ChainID(ctx context.Context) (*big.Int, error)
	Close()
}

// Config configures a Gateway.
type Config struct {
	MarketplaceAddress  common.Address
	PrivateKey          *ecdsa.PrivateKey
	ReceiptTimeout      time.Duration
	ReceiptPollInterval time.Duration
}

const (
	defaultReceiptTimeout      = 2 * time.Minute
	defaultReceiptPollInterval = time.Second
)

// Gateway owns the RPC connection and the service's signing identity.
// Reads and populate calls are safe for concurrent use; submissions from
// the same signer are serialized from nonce lookup through broadcast.
type Gateway struct {
	backend     Backend
	marketplace common.Address
	key         *ecdsa.PrivateKey
	signer      common.Address
	chainID     *big.Int
	txSigner    types.Signer
	locks       *keyedMutex

	receiptTimeout      time.Duration
	receiptPollInterval time.Duration
	logger              *zap.Logger
}

// Dial connects to rpcURL through httpClient and returns a ready Gateway.
func Dial(ctx context.Context, rpcURL string, httpClient *http.Client, cfg Config) (*Gateway, error) {
	rpcClient, err := rpc.DialOptions(ctx, rpcURL, rpc.WithHTTPClient(httpClient))
	if err != nil {
		return nil, apperrors.ChainCommunication(err, "failed to dial RPC endpoint")
	}

	gw, err := NewGateway(ctx, ethclient.NewClient(rpcClient), cfg)
	if err != nil {
		rpcClient.Close()
		return nil, err
	}
	return gw, nil
}

// NewGateway wraps an existing backend. The chain id is fetched once.
func NewGateway(ctx context.Context, backend Backend, cfg Config) (*Gateway, error) {
	if cfg.PrivateKey == nil {
		return nil, apperrors.Validation("signing key is required")
	}
	if cfg.MarketplaceAddress == (common.Address{}) {
		return nil, apperrors.Validation("marketplace contract address is required")
	}
	if cfg.ReceiptTimeout <= 0 {
		cfg.ReceiptTimeout = defaultReceiptTimeout
	}
	if cfg.ReceiptPollInterval <= 0 {
		cfg.ReceiptPollInterval = defaultReceiptPollInterval
	}

	chainID, err := backend.ChainID(ctx)
	if err != nil {
		return nil, apperrors.ChainCommunication(err, "failed to fetch chain id")
	}

	gw := &Gateway{
		backend:             backend,
		marketplace:         cfg.MarketplaceAddress,
		key:                 cfg.PrivateKey,
		signer:              crypto.PubkeyToAddress(cfg.PrivateKey.PublicKey),
		chainID:             chainID,
		txSigner:            types.LatestSignerForChainID(chainID),
		locks:               newKeyedMutex(),
		receiptTimeout:      cfg.ReceiptTimeout,
		receiptPollInterval: cfg.ReceiptPollInterval,
		logger:              logger.Log,
	}

	gw.logger.Info("Chain gateway initialized",
		zap.String("chain_id", chainID.String()),
		zap.String("marketplace", gw.marketplace.Hex()),
		zap.String("signer", gw.signer.Hex()),
	)
	return gw, nil
}

func (g *Gateway) MarketplaceAddress() common.Address {
	return g.marketplace
}

func (g *Gateway) SignerAddress() common.Address {
	return g.signer
}

func (g *Gateway) ChainID() *big.Int {
	return new(big.Int).Set(g.chainID)
}

// HealthCheck verifies the RPC endpoint still answers.
func (g *Gateway) HealthCheck(ctx context.Context) error {
	if _, err := g.backend.ChainID(ctx); err != nil {
		return apperrors.ChainCommunication(err, "chain health check failed")
	}
	return nil
}

// Close releases the RPC connection.
func (g *Gateway) Close() {
	if g.backend != nil {
		g.backend.Close()
		g.logger.Info("Chain gateway closed")
	}
}
