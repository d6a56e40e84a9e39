package chain

import (
	"context"
	"math/big"

	"github.com/cyphera/marketplace-api/internal/apperrors"
	"github.com/cyphera/marketplace-api/internal/types/business"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

// call packs method, runs an eth_call against to and unpacks the outputs.
func (g *Gateway) call(ctx context.Context, contract abi.ABI, to common.Address, method string, args ...interface{}) ([]interface{}, error) {
	data, err := contract.Pack(method, args...)
	if err != nil {
		return nil, apperrors.ChainCommunication(err, "failed to encode %s call", method)
	}

	raw, err := g.backend.CallContract(ctx, ethereum.CallMsg{To: &to, Data: data}, nil)
	if err != nil {
		if reason, reverted := revertReason(err); reverted {
			return nil, apperrors.ChainRevert(reason, err, "%s call reverted", method)
		}
		return nil, apperrors.ChainCommunication(err, "failed to call %s", method)
	}

	out, err := contract.Unpack(method, raw)
	if err != nil {
		return nil, apperrors.ChainCommunication(err, "failed to decode %s result", method)
	}
	return out, nil
}

func (g *Gateway) callBigInt(ctx context.Context, contract abi.ABI, to common.Address, method string, args ...interface{}) (*big.Int, error) {
	out, err := g.call(ctx, contract, to, method, args...)
	if err != nil {
		return nil, err
	}
	if len(out) != 1 {
		return nil, apperrors.ChainCommunication(nil, "unexpected %s result length %d", method, len(out))
	}
	value, ok := out[0].(*big.Int)
	if !ok {
		return nil, apperrors.ChainCommunication(nil, "unexpected %s result type %T", method, out[0])
	}
	return value, nil
}

// ReadListingCount returns the next listing id the contract will assign.
func (g *Gateway) ReadListingCount(ctx context.Context) (*big.Int, error) {
	return g.callBigInt(ctx, MarketplaceABI, g.marketplace, MethodListingIDCounter)
}

// ReadListing returns the listing with the given id. A reverted call or a
// zero seller means the listing does not exist and is reported as found=false.
func (g *Gateway) ReadListing(ctx context.Context, id *big.Int) (*business.Listing, bool, error) {
	out, err := g.call(ctx, MarketplaceABI, g.marketplace, MethodListings, id)
	if err != nil {
		if apperrors.Is(err, apperrors.KindChainRevert) {
			g.logger.Debug("Listing lookup reverted, treating as absent",
				zap.String("listing_id", id.String()),
				zap.Error(err))
			return nil, false, nil
		}
		return nil, false, err
	}

	var decoded struct {
		Seller common.Address
		Token  common.Address
		Amount *big.Int
		Price  *big.Int
	}
	if err := MarketplaceABI.Methods[MethodListings].Outputs.Copy(&decoded, out); err != nil {
		return nil, false, apperrors.ChainCommunication(err, "failed to decode listing %s", id)
	}

	if decoded.Seller == (common.Address{}) {
		return nil, false, nil
	}

	return &business.Listing{
		ID:     new(big.Int).Set(id),
		Seller: decoded.Seller,
		Token:  decoded.Token,
		Amount: decoded.Amount,
		Price:  decoded.Price,
	}, true, nil
}

// ReadEarnings returns the withdrawable balance of account in wei.
func (g *Gateway) ReadEarnings(ctx context.Context, account common.Address) (*big.Int, error) {
	return g.callBigInt(ctx, MarketplaceABI, g.marketplace, MethodEarnings, account)
}

// ReadAllowance returns how much of token spender may move on behalf of owner.
func (g *Gateway) ReadAllowance(ctx context.Context, token, owner, spender common.Address) (*big.Int, error) {
	return g.callBigInt(ctx, ERC20ABI, token, MethodAllowance, owner, spender)
}

// ReadDecimals returns the token's decimals. An address without contract
// code answers with empty data, which is reported as a validation failure.
func (g *Gateway) ReadDecimals(ctx context.Context, token common.Address) (uint8, error) {
	data, err := ERC20ABI.Pack(MethodDecimals)
	if err != nil {
		return 0, apperrors.ChainCommunication(err, "failed to encode decimals call")
	}

	raw, err := g.backend.CallContract(ctx, ethereum.CallMsg{To: &token, Data: data}, nil)
	if err != nil {
		if reason, reverted := revertReason(err); reverted {
			return 0, apperrors.ChainRevert(reason, err, "decimals call reverted for token %s", token.Hex())
		}
		return 0, apperrors.ChainCommunication(err, "failed to read decimals of %s", token.Hex())
	}
	if len(raw) == 0 {
		return 0, apperrors.Validation("token %s is not an ERC-20 contract", token.Hex())
	}

	out, err := ERC20ABI.Unpack(MethodDecimals, raw)
	if err != nil || len(out) != 1 {
		return 0, apperrors.ChainCommunication(err, "failed to decode decimals of %s", token.Hex())
	}
	decimals, ok := out[0].(uint8)
	if !ok {
		return 0, apperrors.ChainCommunication(nil, "unexpected decimals type %T", out[0])
	}
	return decimals, nil
}
