package services

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/cyphera/marketplace-api/internal/apperrors"
	"github.com/cyphera/marketplace-api/internal/constants"
	"github.com/cyphera/marketplace-api/internal/helpers"
	"github.com/cyphera/marketplace-api/internal/interfaces"
	"github.com/cyphera/marketplace-api/internal/logger"
	"github.com/cyphera/marketplace-api/internal/types/api/params"
	"github.com/cyphera/marketplace-api/internal/types/business"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// MarketplaceService prepares unsigned marketplace transactions and relays
// the flows the service signs itself.
type MarketplaceService struct {
	gateway       interfaces.ChainGateway
	preconditions *PreconditionService
	allowances    *AllowanceService
	logger        *zap.Logger
}

// NewMarketplaceService creates a new marketplace service
func NewMarketplaceService(gateway interfaces.ChainGateway) *MarketplaceService {
	return &MarketplaceService{
		gateway:       gateway,
		preconditions: NewPreconditionService(gateway),
		allowances:    NewAllowanceService(gateway),
		logger:        logger.Log,
	}
}

// preparedListing holds a listing request after validation and scaling.
type preparedListing struct {
	token        common.Address
	owner        common.Address
	amount       decimal.Decimal
	scaledAmount *big.Int
	priceWei     *big.Int
}

// ListListings returns every existing listing in id order.
func (s *MarketplaceService) ListListings(ctx context.Context) ([]business.Listing, error) {
	count, err := s.gateway.ReadListingCount(ctx)
	if err != nil {
		return nil, err
	}

	listings := make([]business.Listing, 0)
	one := big.NewInt(1)
	for id := big.NewInt(0); id.Cmp(count) < 0; id = new(big.Int).Add(id, one) {
		listing, found, err := s.gateway.ReadListing(ctx, id)
		if err != nil {
			return nil, err
		}
		if !found {
			continue
		}
		listings = append(listings, *listing)
	}
	return listings, nil
}

func (s *MarketplaceService) prepareListing(ctx context.Context, rawToken, rawAmount, rawPrice, rawOwner string) (*preparedListing, error) {
	token, err := ParseAddress("token", rawToken)
	if err != nil {
		return nil, err
	}
	owner, err := ParseAddress("ownerAddress", rawOwner)
	if err != nil {
		return nil, err
	}
	amount, err := ParseAmount("amount", rawAmount)
	if err != nil {
		return nil, err
	}
	price, err := ParseAmount("price", rawPrice)
	if err != nil {
		return nil, err
	}
	priceWei, err := ToWei("price", price)
	if err != nil {
		return nil, err
	}

	decimals, err := s.gateway.ReadDecimals(ctx, token)
	if err != nil {
		return nil, err
	}
	scaled, err := ScaleAmount("amount", amount, decimals)
	if err != nil {
		return nil, err
	}

	return &preparedListing{
		token:        token,
		owner:        owner,
		amount:       amount,
		scaledAmount: scaled,
		priceWei:     priceWei,
	}, nil
}

func (s *MarketplaceService) listingAllowance(p *preparedListing) AllowanceRequest {
	return AllowanceRequest{
		Token:         p.token,
		Owner:         p.owner,
		Spender:       s.gateway.MarketplaceAddress(),
		Required:      p.scaledAmount,
		DisplayAmount: p.amount.String(),
	}
}

// ListItem returns the approval step, when the owner's allowance is short,
// followed by the listItem step. They must be signed in that order.
func (s *MarketplaceService) ListItem(ctx context.Context, p params.ListItemParams) ([]business.ResponseItem, error) {
	listing, err := s.prepareListing(ctx, p.Token, p.Amount, p.Price, p.Owner)
	if err != nil {
		return nil, err
	}

	items, _, err := s.allowances.EnsureAllowance(ctx, s.listingAllowance(listing), nil)
	if err != nil {
		return nil, err
	}

	tx, err := s.gateway.PopulateListItem(listing.token, listing.scaledAmount, listing.priceWei, listing.owner)
	if err != nil {
		return nil, err
	}
	items = append(items, helpers.NewResponseItem(tx,
		fmt.Sprintf(constants.MsgSignListing, listing.amount.String(), listing.priceWei.String())))

	return items, nil
}

// ListItemBehalf lists on the owner's behalf with the service key. When an
// approval is still needed only that step is returned and nothing is submitted.
func (s *MarketplaceService) ListItemBehalf(ctx context.Context, p params.ListItemBehalfParams) (business.Outcome, error) {
	signature, err := ParseSignature("signature", p.Signature)
	if err != nil {
		return business.Outcome{}, err
	}
	listing, err := s.prepareListing(ctx, p.Token, p.Amount, p.Price, p.Owner)
	if err != nil {
		return business.Outcome{}, err
	}

	items, needsApproval, err := s.allowances.EnsureAllowance(ctx, s.listingAllowance(listing), nil)
	if err != nil {
		return business.Outcome{}, err
	}
	if needsApproval {
		return business.PendingSignature(items...), nil
	}

	receipt, err := s.gateway.SubmitListItemBehalf(ctx, listing.token, listing.scaledAmount, listing.priceWei, signature, listing.owner)
	if err != nil {
		return business.Outcome{}, err
	}

	s.logger.Info("Relayed listing",
		zap.String("owner", listing.owner.Hex()),
		zap.String("token", listing.token.Hex()),
		zap.String("tx_hash", receipt.TxHash.Hex()))
	return business.Completed(receipt.TxHash), nil
}

// PurchaseItem returns the unsigned purchaseItem call carrying the
// caller-supplied wei value.
func (s *MarketplaceService) PurchaseItem(ctx context.Context, p params.PurchaseItemParams) (business.ResponseItem, error) {
	listing, value, err := s.preconditions.ValidatePurchase(ctx, p.ListingID, p.Value)
	if err != nil {
		return business.ResponseItem{}, err
	}

	tx, err := s.gateway.PopulatePurchase(listing.ID, value)
	if err != nil {
		return business.ResponseItem{}, err
	}
	return helpers.NewResponseItem(tx, fmt.Sprintf(constants.MsgSignPurchase, listing.ID.String())), nil
}

// WithdrawFunds returns the unsigned withdrawFunds call for a seller with earnings.
func (s *MarketplaceService) WithdrawFunds(ctx context.Context, p params.WithdrawFundsParams) (business.ResponseItem, error) {
	seller, err := ParseAddress("signerAddress", p.Signer)
	if err != nil {
		return business.ResponseItem{}, err
	}

	earnings, err := s.preconditions.ValidateWithdraw(ctx, seller)
	if err != nil {
		return business.ResponseItem{}, err
	}

	tx, err := s.gateway.PopulateWithdraw(seller)
	if err != nil {
		return business.ResponseItem{}, err
	}
	return helpers.NewResponseItem(tx, fmt.Sprintf(constants.MsgSignWithdraw, earnings.String())), nil
}

// TransferWithSignature verifies that p.From signed the canonical transfer
// message and relays the transfer with the service key. A mismatch aborts
// before anything is read from or sent to the chain.
func (s *MarketplaceService) TransferWithSignature(ctx context.Context, p params.TransferParams) (business.Outcome, error) {
	token, err := ParseAddress("token", p.Token)
	if err != nil {
		return business.Outcome{}, err
	}
	from, err := ParseAddress("from", p.From)
	if err != nil {
		return business.Outcome{}, err
	}
	to, err := ParseAddress("to", p.To)
	if err != nil {
		return business.Outcome{}, err
	}
	amount, err := ParseAmount("amount", p.Amount)
	if err != nil {
		return business.Outcome{}, err
	}
	rawPrice := p.Price
	if strings.TrimSpace(rawPrice) == "" {
		rawPrice = "0"
	}
	price, err := ParseNonNegativeAmount("price", rawPrice)
	if err != nil {
		return business.Outcome{}, err
	}
	signature, err := ParseSignature("signature", p.Signature)
	if err != nil {
		return business.Outcome{}, err
	}

	message, err := CanonicalTransferMessage(token, amount, price, p.Nonce)
	if err != nil {
		return business.Outcome{}, errors.Wrap(err, "failed to encode transfer message")
	}
	recovered, err := RecoverSigner(message, signature)
	if err != nil {
		s.logger.Warn("Unrecoverable transfer signature", zap.String("from", from.Hex()), zap.Error(err))
		return business.Outcome{}, errors.Wrap(apperrors.ErrInvalidSignature, err.Error())
	}
	if !strings.EqualFold(recovered.Hex(), from.Hex()) {
		s.logger.Warn("Transfer signature mismatch",
			zap.String("declared", from.Hex()),
			zap.String("recovered", recovered.Hex()))
		return business.Outcome{}, errors.Wrapf(apperrors.ErrInvalidSignature, "signer %s does not match %s", recovered.Hex(), from.Hex())
	}

	decimals, err := s.gateway.ReadDecimals(ctx, token)
	if err != nil {
		return business.Outcome{}, err
	}
	scaled, err := ScaleAmount("amount", amount, decimals)
	if err != nil {
		return business.Outcome{}, err
	}

	receipt, err := s.gateway.SubmitTransferWithSignature(ctx, token, from, to, scaled, new(big.Int).SetUint64(p.Nonce), signature)
	if err != nil {
		return business.Outcome{}, err
	}

	s.logger.Info("Relayed signed transfer",
		zap.String("from", from.Hex()),
		zap.String("to", to.Hex()),
		zap.String("tx_hash", receipt.TxHash.Hex()))
	return business.Completed(receipt.TxHash), nil
}

// GetEarnings returns the withdrawable balance of address in wei.
func (s *MarketplaceService) GetEarnings(ctx context.Context, address string) (*big.Int, error) {
	account, err := ParseAddress("address", address)
	if err != nil {
		return nil, err
	}
	return s.gateway.ReadEarnings(ctx, account)
}

// HealthCheck reports whether the chain is reachable.
func (s *MarketplaceService) HealthCheck(ctx context.Context) error {
	return s.gateway.HealthCheck(ctx)
}
