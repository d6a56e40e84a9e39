package mocks

import (
	"testing"

	"go.uber.org/mock/gomock"
)

// NewMockChainGatewayForTest creates a new mock ChainGateway for testing
func NewMockChainGatewayForTest(t *testing.T) *MockChainGateway {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockChainGateway(ctrl)
}

// NewMockMarketplaceServiceForTest creates a new mock MarketplaceService for testing
func NewMockMarketplaceServiceForTest(t *testing.T) *MockMarketplaceService {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockMarketplaceService(ctrl)
}
