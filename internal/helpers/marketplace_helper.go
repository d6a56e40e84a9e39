package helpers

import (
	"fmt"
	"math/big"

	"github.com/cyphera/marketplace-api/internal/constants"
	"github.com/cyphera/marketplace-api/internal/types/api/responses"
	"github.com/cyphera/marketplace-api/internal/types/business"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// NewResponseItem wraps an unsigned transaction and its instruction.
func NewResponseItem(tx *business.PendingTransaction, message string) business.ResponseItem {
	return business.ResponseItem{UnsignedTx: tx, Message: message}
}

// NewCompletedItem describes a transaction the service already mined.
func NewCompletedItem(txHash common.Hash) business.ResponseItem {
	return business.ResponseItem{Message: fmt.Sprintf(constants.MsgTransactionConfirmed, txHash.Hex())}
}

// OutcomeToResponseItems flattens a relayer outcome into ordered response items.
func OutcomeToResponseItems(outcome business.Outcome) []business.ResponseItem {
	switch outcome.Kind {
	case business.OutcomeCompleted:
		return []business.ResponseItem{NewCompletedItem(outcome.TxHash)}
	case business.OutcomePendingSignature:
		return outcome.Items
	default:
		return nil
	}
}

// ToPendingTransactionResponse renders data as 0x-hex and omits a zero value.
func ToPendingTransactionResponse(tx *business.PendingTransaction) *responses.PendingTransactionResponse {
	if tx == nil {
		return nil
	}
	resp := &responses.PendingTransactionResponse{
		To:   tx.To.Hex(),
		Data: hexutil.Encode(tx.Data),
	}
	if tx.Value != nil && tx.Value.Sign() > 0 {
		resp.Value = tx.Value.String()
	}
	if tx.From != nil {
		resp.From = tx.From.Hex()
	}
	return resp
}

func ToResponseItem(item business.ResponseItem) responses.ResponseItem {
	return responses.ResponseItem{
		UnsignedTx: ToPendingTransactionResponse(item.UnsignedTx),
		Message:    item.Message,
	}
}

// ToResponseItems preserves the execution order of items.
func ToResponseItems(items []business.ResponseItem) []responses.ResponseItem {
	out := make([]responses.ResponseItem, 0, len(items))
	for _, item := range items {
		out = append(out, ToResponseItem(item))
	}
	return out
}

func ToListingResponse(listing business.Listing) responses.ListingResponse {
	return responses.ListingResponse{
		ID:     bigString(listing.ID),
		Seller: listing.Seller.Hex(),
		Token:  listing.Token.Hex(),
		Amount: bigString(listing.Amount),
		Price:  bigString(listing.Price),
	}
}

func ToListingResponses(listings []business.Listing) []responses.ListingResponse {
	out := make([]responses.ListingResponse, 0, len(listings))
	for _, l := range listings {
		out = append(out, ToListingResponse(l))
	}
	return out
}

func bigString(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return v.String()
}
