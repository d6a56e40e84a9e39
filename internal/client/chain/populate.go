package chain

import (
	"math/big"

	"github.com/cyphera/marketplace-api/internal/apperrors"
	"github.com/cyphera/marketplace-api/internal/types/business"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// Populate* methods only encode calldata. They never touch the network or
// the signer's nonce, so they take no lock.

func populate(contract abi.ABI, to common.Address, from *common.Address, value *big.Int, method string, args ...interface{}) (*business.PendingTransaction, error) {
	data, err := contract.Pack(method, args...)
	if err != nil {
		return nil, apperrors.ChainCommunication(err, "failed to encode %s", method)
	}
	tx := &business.PendingTransaction{To: to, Data: data, Value: value}
	if from != nil {
		addr := *from
		tx.From = &addr
	}
	return tx, nil
}

// PopulateApprove builds approve(spender, amount) on token, to be signed by owner.
func (g *Gateway) PopulateApprove(token, owner, spender common.Address, amount *big.Int) (*business.PendingTransaction, error) {
	return populate(ERC20ABI, token, &owner, nil, MethodApprove, spender, amount)
}

// PopulateListItem builds listItem(token, amount, price) to be signed by owner.
func (g *Gateway) PopulateListItem(token common.Address, amount, price *big.Int, owner common.Address) (*business.PendingTransaction, error) {
	return populate(MarketplaceABI, g.marketplace, &owner, nil, MethodListItem, token, amount, price)
}

// PopulatePurchase builds purchaseItem(listingID) carrying value wei.
func (g *Gateway) PopulatePurchase(listingID, value *big.Int) (*business.PendingTransaction, error) {
	return populate(MarketplaceABI, g.marketplace, nil, value, MethodPurchaseItem, listingID)
}

// PopulateWithdraw builds withdrawFunds() to be signed by seller.
func (g *Gateway) PopulateWithdraw(seller common.Address) (*business.PendingTransaction, error) {
	return populate(MarketplaceABI, g.marketplace, &seller, nil, MethodWithdrawFunds)
}
