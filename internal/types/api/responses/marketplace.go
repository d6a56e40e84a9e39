package responses

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error         string `json:"error"`
	Kind          string `json:"kind,omitempty"`
	Reason        string `json:"reason,omitempty"`
	CorrelationID string `json:"correlation_id,omitempty"`
}

// HealthResponse represents the health check payload
type HealthResponse struct {
	Status  string `json:"status"`
	ChainID string `json:"chain_id,omitempty"`
}

// ListingResponse is a listing with integer amounts rendered as decimal strings
type ListingResponse struct {
	ID     string `json:"id"`
	Seller string `json:"seller"`
	Token  string `json:"token"`
	Amount string `json:"amount"`
	Price  string `json:"price"`
}

// PendingTransactionResponse is an unsigned transaction ready for a wallet
type PendingTransactionResponse struct {
	To    string `json:"to"`
	Data  string `json:"data"`
	Value string `json:"value,omitempty"`
	From  string `json:"from,omitempty"`
}

// ResponseItem is one step the caller must take, in order.
// UnsignedTx is null when the step already executed on-chain.
type ResponseItem struct {
	UnsignedTx *PendingTransactionResponse `json:"unsignedTx"`
	Message    string                      `json:"message"`
}

// EarningsResponse reports the withdrawable balance of an address in wei
type EarningsResponse struct {
	Address  string `json:"address"`
	Earnings string `json:"earnings"`
}
