package params

// ListItemParams lists Amount human-unit tokens at Price ether.
type ListItemParams struct {
	Token  string
	Amount string
	Price  string
	Owner  string
}

// ListItemBehalfParams is ListItemParams plus the owner's listing signature.
type ListItemBehalfParams struct {
	Token     string
	Amount    string
	Price     string
	Signature string
	Owner     string
}

// PurchaseItemParams carries Value in wei.
type PurchaseItemParams struct {
	ListingID int64
	Value     string
}

type WithdrawFundsParams struct {
	Signer string
}

// TransferParams is a signature-gated transfer. Price defaults to "0".
type TransferParams struct {
	Token     string
	From      string
	To        string
	Amount    string
	Price     string
	Nonce     uint64
	Signature string
}
