package services

import (
	"context"
	"fmt"
	"math/big"

	"github.com/cyphera/marketplace-api/internal/constants"
	"github.com/cyphera/marketplace-api/internal/helpers"
	"github.com/cyphera/marketplace-api/internal/interfaces"
	"github.com/cyphera/marketplace-api/internal/logger"
	"github.com/cyphera/marketplace-api/internal/types/business"
	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

// AllowanceService decides whether an ERC-20 approval must precede an action
type AllowanceService struct {
	gateway interfaces.ChainGateway
	logger  *zap.Logger
}

// AllowanceRequest describes the allowance an action depends on.
// DisplayAmount is the human-unit amount used in the instruction.
type AllowanceRequest struct {
	Token         common.Address
	Owner         common.Address
	Spender       common.Address
	Required      *big.Int
	DisplayAmount string
}

// NewAllowanceService creates a new allowance service
func NewAllowanceService(gateway interfaces.ChainGateway) *AllowanceService {
	return &AllowanceService{
		gateway: gateway,
		logger:  logger.Log,
	}
}

// EnsureAllowance reads the current allowance and, when it is below
// req.Required, appends an approve step to items. The returned flag reports
// whether a step was appended.
func (s *AllowanceService) EnsureAllowance(ctx context.Context, req AllowanceRequest, items []business.ResponseItem) ([]business.ResponseItem, bool, error) {
	allowance, err := s.gateway.ReadAllowance(ctx, req.Token, req.Owner, req.Spender)
	if err != nil {
		return items, false, err
	}

	if allowance.Cmp(req.Required) >= 0 {
		return items, false, nil
	}

	tx, err := s.gateway.PopulateApprove(req.Token, req.Owner, req.Spender, req.Required)
	if err != nil {
		return items, false, err
	}

	s.logger.Debug("Approval required",
		zap.String("token", req.Token.Hex()),
		zap.String("owner", req.Owner.Hex()),
		zap.String("allowance", allowance.String()),
		zap.String("required", req.Required.String()))

	items = append(items, helpers.NewResponseItem(tx, fmt.Sprintf(constants.MsgApproveBeforeListing, req.DisplayAmount)))
	return items, true, nil
}
