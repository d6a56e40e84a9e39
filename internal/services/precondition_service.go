package services

import (
	"context"
	"math/big"
	"strings"

	"github.com/cyphera/marketplace-api/internal/apperrors"
	"github.com/cyphera/marketplace-api/internal/helpers"
	"github.com/cyphera/marketplace-api/internal/interfaces"
	"github.com/cyphera/marketplace-api/internal/logger"
	"github.com/cyphera/marketplace-api/internal/types/business"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// PreconditionService checks on-chain state before a transaction is built
type PreconditionService struct {
	gateway interfaces.ChainGateway
	logger  *zap.Logger
}

// NewPreconditionService creates a new precondition service
func NewPreconditionService(gateway interfaces.ChainGateway) *PreconditionService {
	return &PreconditionService{
		gateway: gateway,
		logger:  logger.Log,
	}
}

// ValidatePurchase returns the listing and the wei value to send. The id and
// value are checked before the listing is read.
func (s *PreconditionService) ValidatePurchase(ctx context.Context, listingID int64, rawValue string) (*business.Listing, *big.Int, error) {
	if listingID < 0 {
		return nil, nil, apperrors.Validation("listingId must be a non-negative integer")
	}
	value, err := ParseWei("value", rawValue)
	if err != nil {
		return nil, nil, err
	}

	listing, found, err := s.gateway.ReadListing(ctx, big.NewInt(listingID))
	if err != nil {
		return nil, nil, err
	}
	if !found {
		return nil, nil, errors.Wrapf(apperrors.ErrInvalidListing, "listing %d does not exist", listingID)
	}
	if listing.SoldOut() {
		return nil, nil, errors.Wrapf(apperrors.ErrListingSoldOut, "listing %d", listingID)
	}
	return listing, value, nil
}

// ValidateWithdraw returns the seller's earnings, which must be positive.
func (s *PreconditionService) ValidateWithdraw(ctx context.Context, seller common.Address) (*big.Int, error) {
	earnings, err := s.gateway.ReadEarnings(ctx, seller)
	if err != nil {
		return nil, err
	}
	if earnings == nil || earnings.Sign() <= 0 {
		s.logger.Debug("Withdraw rejected, no earnings", zap.String("seller", seller.Hex()))
		return nil, errors.Wrapf(apperrors.ErrNoFundsAvailable, "address %s", seller.Hex())
	}
	return earnings, nil
}

// ParseAddress validates a non-zero hex address.
func ParseAddress(field, raw string) (common.Address, error) {
	raw = strings.TrimSpace(raw)
	if !helpers.IsAddressValid(raw) {
		return common.Address{}, apperrors.Validation("%s is not a valid address: %q", field, raw)
	}
	addr := common.HexToAddress(raw)
	if addr == (common.Address{}) {
		return common.Address{}, apperrors.Validation("%s must not be the zero address", field)
	}
	return addr, nil
}
