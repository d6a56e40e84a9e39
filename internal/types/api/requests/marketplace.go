package requests

import "encoding/json"

// Amounts and prices accept either a JSON number or a numeric string and are
// expressed in human units (token units and ether respectively).

// ListItemRequest represents the request body for listing tokens
type ListItemRequest struct {
	Token        string      `json:"token" binding:"required" example:"0xe7f1725E7734CE288F8367e1Bb143E90bb3F0512"`
	Amount       json.Number `json:"amount" binding:"required" swaggertype:"string" example:"10000"`
	Price        json.Number `json:"price" binding:"required" swaggertype:"string" example:"2"`
	OwnerAddress string      `json:"ownerAddress" binding:"required" example:"0x70997970C51812dc3A010C7d01b50e0d17dc79C8"`
}

// ListItemBehalfRequest represents the request body for a relayed listing
type ListItemBehalfRequest struct {
	Token        string      `json:"token" binding:"required"`
	Amount       json.Number `json:"amount" binding:"required" swaggertype:"string"`
	Price        json.Number `json:"price" binding:"required" swaggertype:"string"`
	Signature    string      `json:"signature" binding:"required"`
	OwnerAddress string      `json:"ownerAddress" binding:"required"`
}

// PurchaseItemRequest represents the request body for purchasing a listing.
// Value is in wei.
type PurchaseItemRequest struct {
	ListingID *int64      `json:"listingId" binding:"required" example:"0"`
	Value     json.Number `json:"value" binding:"required" swaggertype:"string" example:"2000000000000000000"`
}

// WithdrawFundsRequest represents the request body for withdrawing earnings
type WithdrawFundsRequest struct {
	SignerAddress string `json:"signerAddress" binding:"required"`
}

// TransferRequest represents the request body for a signature-gated transfer
type TransferRequest struct {
	Token     string      `json:"token" binding:"required"`
	From      string      `json:"from" binding:"required"`
	To        string      `json:"to" binding:"required"`
	Amount    json.Number `json:"amount" binding:"required" swaggertype:"string"`
	Price     json.Number `json:"price,omitempty" swaggertype:"string"`
	Nonce     *uint64     `json:"nonce" binding:"required"`
	Signature string      `json:"signature" binding:"required"`
}
