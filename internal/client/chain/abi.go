package chain

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

const marketplaceABIJSON = `[
	{"type":"function","name":"listingIdCounter","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"listings","stateMutability":"view","inputs":[{"name":"","type":"uint256"}],"outputs":[
		{"name":"seller","type":"address"},
		{"name":"token","type":"address"},
		{"name":"amount","type":"uint256"},
		{"name":"price","type":"uint256"}
	]},
	{"type":"function","name":"listItem","stateMutability":"nonpayable","inputs":[
		{"name":"token","type":"address"},
		{"name":"amount","type":"uint256"},
		{"name":"price","type":"uint256"}
	],"outputs":[]},
	{"type":"function","name":"listItemBehalf","stateMutability":"nonpayable","inputs":[
		{"name":"token","type":"address"},
		{"name":"amount","type":"uint256"},
		{"name":"price","type":"uint256"},
		{"name":"signature","type":"bytes"},
		{"name":"owner","type":"address"}
	],"outputs":[]},
	{"type":"function","name":"purchaseItem","stateMutability":"payable","inputs":[{"name":"listingId","type":"uint256"}],"outputs":[]},
	{"type":"function","name":"withdrawFunds","stateMutability":"nonpayable","inputs":[],"outputs":[]},
	{"type":"function","name":"earnings","stateMutability":"view","inputs":[{"name":"","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"transferWithSignature","stateMutability":"nonpayable","inputs":[
		{"name":"token","type":"address"},
		{"name":"from","type":"address"},
		{"name":"to","type":"address"},
		{"name":"amount","type":"uint256"},
		{"name":"nonce","type":"uint256"},
		{"name":"signature","type":"bytes"}
	],"outputs":[]}
]`

const erc20ABIJSON = `[
	{"type":"function","name":"decimals","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint8"}]},
	{"type":"function","name":"allowance","stateMutability":"view","inputs":[
		{"name":"owner","type":"address"},
		{"name":"spender","type":"address"}
	],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"approve","stateMutability":"nonpayable","inputs":[
		{"name":"spender","type":"address"},
		{"name":"amount","type":"uint256"}
	],"outputs":[{"name":"","type":"bool"}]}
]`

// Contract method names.
const (
	MethodListingIDCounter      = "listingIdCounter"
	MethodListings              = "listings"
	MethodListItem              = "listItem"
	MethodListItemBehalf        = "listItemBehalf"
	MethodPurchaseItem          = "purchaseItem"
	MethodWithdrawFunds         = "withdrawFunds"
	MethodEarnings              = "earnings"
	MethodTransferWithSignature = "transferWithSignature"

	MethodDecimals  = "decimals"
	MethodAllowance = "allowance"
	MethodApprove   = "approve"
)

var (
	MarketplaceABI = mustParseABI(marketplaceABIJSON)
	ERC20ABI       = mustParseABI(erc20ABIJSON)
)

func mustParseABI(definition string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(definition))
	if err != nil {
		panic("failed to parse contract ABI: " + err.Error())
	}
	return parsed
}
