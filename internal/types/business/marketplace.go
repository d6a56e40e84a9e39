package business

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Listing is a marketplace listing as stored by the contract.
// Amount is in the token's smallest unit, Price in wei.
type Listing struct {
	ID     *big.Int
	Seller common.Address
	Token  common.Address
	Amount *big.Int
	Price  *big.Int
}

// SoldOut reports whether nothing remains to purchase.
func (l *Listing) SoldOut() bool {
	return l.Amount == nil || l.Amount.Sign() == 0
}

// PendingTransaction is an unsigned contract call for the caller to sign.
type PendingTransaction struct {
	To    common.Address
	Data  []byte
	Value *big.Int
	From  *common.Address
}

// ResponseItem pairs an unsigned transaction with an instruction.
// A nil UnsignedTx means the action already executed on-chain.
type ResponseItem struct {
	UnsignedTx *PendingTransaction
	Message    string
}

type OutcomeKind string

const (
	OutcomePendingSignature OutcomeKind = "PendingSignature"
	OutcomeCompleted        OutcomeKind = "Completed"
)

// Outcome is the result of a relayer flow: either steps the caller must
// sign first, or the hash of a transaction the service already mined.
type Outcome struct {
	Kind   OutcomeKind
	Items  []ResponseItem
	TxHash common.Hash
}

func PendingSignature(items ...ResponseItem) Outcome {
	return Outcome{Kind: OutcomePendingSignature, Items: items}
}

func Completed(txHash common.Hash) Outcome {
	return Outcome{Kind: OutcomeCompleted, TxHash: txHash}
}
