package chain

import (
	"context"
	"errors"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/cyphera/marketplace-api/internal/apperrors"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/rpc"
	"go.uber.org/zap"
)

var errReceiptPending = errors.New("receipt not yet available")

const maxReceiptPollInterval = 5 * time.Second

// SubmitListItemBehalf lists token for owner using the service key and waits for the receipt.
func (g *Gateway) SubmitListItemBehalf(ctx context.Context, token common.Address, amount, price *big.Int, signature []byte, owner common.Address) (*types.Receipt, error) {
	data, err := MarketplaceABI.Pack(MethodListItemBehalf, token, amount, price, signature, owner)
	if err != nil {
		return nil, apperrors.ChainCommunication(err, "failed to encode %s", MethodListItemBehalf)
	}
	return g.submit(ctx, MethodListItemBehalf, data)
}

// SubmitTransferWithSignature relays a signed transfer and waits for the receipt.
func (g *Gateway) SubmitTransferWithSignature(ctx context.Context, token, from, to common.Address, amount, nonce *big.Int, signature []byte) (*types.Receipt, error) {
	data, err := MarketplaceABI.Pack(MethodTransferWithSignature, token, from, to, amount, nonce, signature)
	if err != nil {
		return nil, apperrors.ChainCommunication(err, "failed to encode %s", MethodTransferWithSignature)
	}
	return g.submit(ctx, MethodTransferWithSignature, data)
}

func (g *Gateway) submit(ctx context.Context, method string, data []byte) (*types.Receipt, error) {
	tx, err := g.signAndSend(ctx, method, data)
	if err != nil {
		return nil, err
	}

	receipt, err := g.waitForReceipt(ctx, tx.Hash())
	if err != nil {
		return nil, err
	}

	if receipt.Status != types.ReceiptStatusSuccessful {
		reason := g.replayRevertReason(ctx, data, receipt.BlockNumber)
		g.logger.Warn("Transaction reverted",
			zap.String("method", method),
			zap.String("tx_hash", tx.Hash().Hex()),
			zap.String("reason", reason))
		return receipt, apperrors.ChainRevert(reason, nil, "%s transaction %s reverted", method, tx.Hash().Hex())
	}

	g.logger.Info("Transaction confirmed",
		zap.String("method", method),
		zap.String("tx_hash", tx.Hash().Hex()),
		zap.Uint64("gas_used", receipt.GasUsed))
	return receipt, nil
}

// signAndSend holds the signer lock from nonce lookup until the
// transaction is accepted by the node.
func (g *Gateway) signAndSend(ctx context.Context, method string, data []byte) (*types.Transaction, error) {
	unlock := g.locks.Lock(g.signer.Hex())
	defer unlock()

	nonce, err := g.backend.PendingNonceAt(ctx, g.signer)
	if err != nil {
		return nil, apperrors.ChainCommunication(err, "failed to fetch nonce")
	}

	to := g.marketplace
	gas, err := g.backend.EstimateGas(ctx, ethereum.CallMsg{From: g.signer, To: &to, Data: data})
	if err != nil {
		if reason, reverted := revertReason(err); reverted {
			return nil, apperrors.ChainRevert(reason, err, "%s would revert", method)
		}
		return nil, apperrors.ChainCommunication(err, "failed to estimate gas for %s", method)
	}
	gas = gas * 12 / 10

	head, err := g.backend.HeaderByNumber(ctx, nil)
	if err != nil {
		return nil, apperrors.ChainCommunication(err, "failed to fetch latest header")
	}

	var txData types.TxData
	if head.BaseFee != nil {
		tip, err := g.backend.SuggestGasTipCap(ctx)
		if err != nil {
			return nil, apperrors.ChainCommunication(err, "failed to suggest gas tip")
		}
		feeCap := new(big.Int).Add(tip, new(big.Int).Mul(head.BaseFee, big.NewInt(2)))
		txData = &types.DynamicFeeTx{
			ChainID:   g.chainID,
			Nonce:     nonce,
			GasTipCap: tip,
			GasFeeCap: feeCap,
			Gas:       gas,
			To:        &to,
			Value:     big.NewInt(0),
			Data:      data,
		}
	} else {
		gasPrice, err := g.backend.SuggestGasPrice(ctx)
		if err != nil {
			return nil, apperrors.ChainCommunication(err, "failed to suggest gas price")
		}
		txData = &types.LegacyTx{
			Nonce:    nonce,
			GasPrice: gasPrice,
			Gas:      gas,
			To:       &to,
			Value:    big.NewInt(0),
			Data:     data,
		}
	}

	signed, err := types.SignNewTx(g.key, g.txSigner, txData)
	if err != nil {
		return nil, apperrors.ChainCommunication(err, "failed to sign %s transaction", method)
	}

	if err := g.backend.SendTransaction(ctx, signed); err != nil {
		if reason, reverted := revertReason(err); reverted {
			return nil, apperrors.ChainRevert(reason, err, "%s rejected", method)
		}
		return nil, apperrors.ChainCommunication(err, "failed to broadcast %s", method)
	}

	g.logger.Info("Transaction broadcast",
		zap.String("method", method),
		zap.String("tx_hash", signed.Hash().Hex()),
		zap.Uint64("nonce", nonce),
		zap.Uint64("gas", gas))
	return signed, nil
}

func (g *Gateway) waitForReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = g.receiptPollInterval
	expBackoff.MaxInterval = maxReceiptPollInterval
	if expBackoff.MaxInterval < g.receiptPollInterval {
		expBackoff.MaxInterval = g.receiptPollInterval
	}
	expBackoff.MaxElapsedTime = g.receiptTimeout
	expBackoff.Reset()

	operation := func() (*types.Receipt, error) {
		receipt, err := g.backend.TransactionReceipt(ctx, hash)
		if errors.Is(err, ethereum.NotFound) || (err == nil && receipt == nil) {
			return nil, errReceiptPending
		}
		if err != nil {
			return nil, backoff.Permanent(err)
		}
		return receipt, nil
	}

	receipt, err := backoff.RetryWithData(operation, backoff.WithContext(expBackoff, ctx))
	if err != nil {
		if errors.Is(err, errReceiptPending) {
			return nil, apperrors.ChainCommunication(err, "timed out waiting for receipt of %s", hash.Hex())
		}
		return nil, apperrors.ChainCommunication(err, "failed to fetch receipt of %s", hash.Hex())
	}
	return receipt, nil
}

// replayRevertReason re-executes a failed call at its block to recover the reason.
func (g *Gateway) replayRevertReason(ctx context.Context, data []byte, block *big.Int) string {
	to := g.marketplace
	_, err := g.backend.CallContract(ctx, ethereum.CallMsg{From: g.signer, To: &to, Data: data}, block)
	if err == nil {
		return ""
	}
	reason, _ := revertReason(err)
	return reason
}

// revertReason reports whether err is an execution revert and decodes its reason when present.
func revertReason(err error) (string, bool) {
	if err == nil {
		return "", false
	}

	var dataErr rpc.DataError
	if errors.As(err, &dataErr) {
		if encoded, ok := dataErr.ErrorData().(string); ok {
			if raw, decodeErr := hexutil.Decode(encoded); decodeErr == nil {
				if reason, unpackErr := abi.UnpackRevert(raw); unpackErr == nil {
					return reason, true
				}
				return "", true
			}
		}
	}

	msg := err.Error()
	const marker = "execution reverted"
	idx := strings.Index(msg, marker)
	if idx < 0 {
		return "", false
	}
	reason := strings.TrimSpace(strings.TrimPrefix(msg[idx+len(marker):], ":"))
	return reason, true
}

// keyedMutex hands out one mutex per key.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[string]*sync.Mutex)}
}

// Lock acquires the mutex for key and returns its unlock function.
func (k *keyedMutex) Lock(key string) func() {
	k.mu.Lock()
	l, ok := k.locks[key]
	if !ok {
		l = &sync.Mutex{}
		k.locks[key] = l
	}
	k.mu.Unlock()

	l.Lock()
	return l.Unlock
}
