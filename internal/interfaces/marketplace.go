package interfaces

import (
	"context"
	"math/big"

	"github.com/cyphera/marketplace-api/internal/types/api/params"
	"github.com/cyphera/marketplace-api/internal/types/business"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

//go:generate mockgen -source=marketplace.go -destination=../mocks/mock_marketplace.go -package=mocks

// ChainGateway is the typed view of the marketplace and ERC-20 contracts.
type ChainGateway interface {
	MarketplaceAddress() common.Address
	SignerAddress() common.Address

	ReadListingCount(ctx context.Context) (*big.Int, error)
	ReadListing(ctx context.Context, id *big.Int) (*business.Listing, bool, error)
	ReadEarnings(ctx context.Context, account common.Address) (*big.Int, error)
	ReadAllowance(ctx context.Context, token, owner, spender common.Address) (*big.Int, error)
	ReadDecimals(ctx context.Context, token common.Address) (uint8, error)

	PopulateApprove(token, owner, spender common.Address, amount *big.Int) (*business.PendingTransaction, error)
	PopulateListItem(token common.Address, amount, price *big.Int, owner common.Address) (*business.PendingTransaction, error)
	PopulatePurchase(listingID, value *big.Int) (*business.PendingTransaction, error)
	PopulateWithdraw(seller common.Address) (*business.PendingTransaction, error)

	SubmitListItemBehalf(ctx context.Context, token common.Address, amount, price *big.Int, signature []byte, owner common.Address) (*types.Receipt, error)
	SubmitTransferWithSignature(ctx context.Context, token, from, to common.Address, amount, nonce *big.Int, signature []byte) (*types.Receipt, error)

	HealthCheck(ctx context.Context) error
	Close()
}

// MarketplaceService prepares and relays marketplace transactions.
type MarketplaceService interface {
	ListListings(ctx context.Context) ([]business.Listing, error)
	ListItem(ctx context.Context, p params.ListItemParams) ([]business.ResponseItem, error)
	ListItemBehalf(ctx context.Context, p params.ListItemBehalfParams) (business.Outcome, error)
	PurchaseItem(ctx context.Context, p params.PurchaseItemParams) (business.ResponseItem, error)
	WithdrawFunds(ctx context.Context, p params.WithdrawFundsParams) (business.ResponseItem, error)
	TransferWithSignature(ctx context.Context, p params.TransferParams) (business.Outcome, error)
	GetEarnings(ctx context.Context, address string) (*big.Int, error)
	HealthCheck(ctx context.Context) error
}
