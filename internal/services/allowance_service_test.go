package services_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/cyphera/marketplace-api/internal/mocks"
	"github.com/cyphera/marketplace-api/internal/services"
	"github.com/cyphera/marketplace-api/internal/types/business"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var marketplaceAddr = common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")

func TestAllowanceService_EnsureAllowance(t *testing.T) {
	ctx := context.Background()
	required := new(big.Int).Mul(big.NewInt(100), pow10(18))
	req := services.AllowanceRequest{
		Token:         tokenAddr,
		Owner:         sellerAddr,
		Spender:       marketplaceAddr,
		Required:      required,
		DisplayAmount: "100",
	}

	tests := []struct {
		name      string
		allowance *big.Int
		wantStep  bool
	}{
		{name: "no allowance", allowance: big.NewInt(0), wantStep: true},
		{name: "one unit short", allowance: new(big.Int).Sub(required, big.NewInt(1)), wantStep: true},
		{name: "exactly enough", allowance: required},
		{name: "more than enough", allowance: new(big.Int).Mul(required, big.NewInt(2))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gateway := mocks.NewMockChainGatewayForTest(t)
			gateway.EXPECT().ReadAllowance(ctx, tokenAddr, sellerAddr, marketplaceAddr).Return(tt.allowance, nil)
			approve := &business.PendingTransaction{To: tokenAddr, Data: []byte{0x09, 0x5e, 0xa7, 0xb3}, From: &sellerAddr}
			if tt.wantStep {
				gateway.EXPECT().PopulateApprove(tokenAddr, sellerAddr, marketplaceAddr, bigInt(required)).Return(approve, nil)
			}

			existing := []business.ResponseItem{{Message: "earlier step"}}
			items, added, err := services.NewAllowanceService(gateway).EnsureAllowance(ctx, req, existing)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStep, added)

			if !tt.wantStep {
				assert.Len(t, items, 1)
				return
			}
			require.Len(t, items, 2)
			assert.Equal(t, "earlier step", items[0].Message)
			assert.Same(t, approve, items[1].UnsignedTx)
			assert.Contains(t, items[1].Message, "100 tokens")
		})
	}
}
