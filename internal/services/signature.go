package services

import (
	"encoding/json"
	"strings"

	"github.com/cyphera/marketplace-api/internal/apperrors"
	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// transferMessage field order is the signed byte order.
type transferMessage struct {
	Token  string `json:"token"`
	Amount string `json:"amount"`
	Price  string `json:"price"`
	Nonce  uint64 `json:"nonce"`
}

// CanonicalTransferMessage is the compact JSON a sender signs to authorize a
// transfer: {"token":<checksummed>,"amount":"<decimal>","price":"<decimal>","nonce":<int>}.
// Amounts use the normalized decimal form, so "1.50" is signed as "1.5".
func CanonicalTransferMessage(token common.Address, amount, price decimal.Decimal, nonce uint64) ([]byte, error) {
	return json.Marshal(transferMessage{
		Token:  token.Hex(),
		Amount: amount.String(),
		Price:  price.String(),
		Nonce:  nonce,
	})
}

// ParseSignature decodes a 65-byte 0x-hex signature.
func ParseSignature(field, raw string) ([]byte, error) {
	sig, err := hexutil.Decode(strings.TrimSpace(raw))
	if err != nil {
		return nil, apperrors.Validation("%s must be 0x-prefixed hex", field)
	}
	if len(sig) != crypto.SignatureLength {
		return nil, apperrors.Validation("%s must be %d bytes, got %d", field, crypto.SignatureLength, len(sig))
	}
	return sig, nil
}

// RecoverSigner returns the address that produced signature over message
// using personal_sign (EIP-191) hashing. Both v=0/1 and v=27/28 are accepted.
func RecoverSigner(message, signature []byte) (common.Address, error) {
	if len(signature) != crypto.SignatureLength {
		return common.Address{}, errors.Errorf("signature must be %d bytes", crypto.SignatureLength)
	}
	sig := make([]byte, len(signature))
	copy(sig, signature)
	if sig[crypto.RecoveryIDOffset] >= 27 {
		sig[crypto.RecoveryIDOffset] -= 27
	}

	pub, err := crypto.SigToPub(accounts.TextHash(message), sig)
	if err != nil {
		return common.Address{}, errors.Wrap(err, "failed to recover public key")
	}
	return crypto.PubkeyToAddress(*pub), nil
}
