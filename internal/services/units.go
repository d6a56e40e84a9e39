package services

import (
	"math/big"
	"strings"

	"github.com/cyphera/marketplace-api/internal/apperrors"
	"github.com/cyphera/marketplace-api/internal/constants"
	"github.com/shopspring/decimal"
)

const (
	// uint256Digits is the number of decimal digits in 2^256-1.
	uint256Digits = 78
	// maxFractionDigits bounds the scale of any input since token decimals
	// are a uint8.
	maxFractionDigits = 255
)

// ParseAmount parses a strictly positive decimal in human units.
func ParseAmount(field, raw string) (decimal.Decimal, error) {
	amount, err := parseDecimal(field, raw)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if !amount.IsPositive() {
		return decimal.Decimal{}, apperrors.Validation("%s must be greater than zero", field)
	}
	return amount, nil
}

// ParseNonNegativeAmount is ParseAmount that also accepts zero.
func ParseNonNegativeAmount(field, raw string) (decimal.Decimal, error) {
	amount, err := parseDecimal(field, raw)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if amount.IsNegative() {
		return decimal.Decimal{}, apperrors.Validation("%s must not be negative", field)
	}
	return amount, nil
}

func parseDecimal(field, raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Decimal{}, apperrors.Validation("%s is required", field)
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, apperrors.Validation("%s is not a valid number: %q", field, raw)
	}
	if amount.IsZero() {
		return decimal.Zero, nil
	}
	if integerDigits(amount, 0) > uint256Digits {
		return decimal.Decimal{}, apperrors.Validation("%s exceeds uint256", field)
	}
	if int64(amount.Exponent()) < -maxFractionDigits {
		return decimal.Decimal{}, apperrors.Validation("%s has more than %d decimal places", field, maxFractionDigits)
	}
	return amount, nil
}

// integerDigits is the number of integer digits of amount * 10^shift,
// computed from the coefficient so huge exponents are never expanded.
func integerDigits(amount decimal.Decimal, shift int64) int64 {
	return int64(amount.NumDigits()) + int64(amount.Exponent()) + shift
}

// ScaleAmount returns amount * 10^decimals exactly. Amounts with more
// fractional digits than the token supports are rejected.
func ScaleAmount(field string, amount decimal.Decimal, decimals uint8) (*big.Int, error) {
	if amount.IsZero() {
		return new(big.Int), nil
	}
	if integerDigits(amount, int64(decimals)) > uint256Digits {
		return nil, apperrors.Validation("%s exceeds uint256", field)
	}
	if int64(amount.Exponent()) < -maxFractionDigits {
		return nil, apperrors.Validation("%s has more than %d decimal places", field, decimals)
	}
	scaled := amount.Shift(int32(decimals))
	if !scaled.IsInteger() {
		return nil, apperrors.Validation("%s has more than %d decimal places", field, decimals)
	}
	value := scaled.BigInt()
	if value.BitLen() > 256 {
		return nil, apperrors.Validation("%s exceeds uint256", field)
	}
	return value, nil
}

// ToWei converts an ether amount to wei.
func ToWei(field string, amount decimal.Decimal) (*big.Int, error) {
	return ScaleAmount(field, amount, constants.NativeDecimals)
}

// ParseWei parses a strictly positive base-10 integer already in wei.
func ParseWei(field, raw string) (*big.Int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, apperrors.Validation("%s is required", field)
	}
	value, ok := new(big.Int).SetString(raw, 10)
	if !ok {
		return nil, apperrors.Validation("%s must be an integer amount of wei: %q", field, raw)
	}
	if value.Sign() <= 0 {
		return nil, apperrors.Validation("%s must be greater than zero", field)
	}
	if value.BitLen() > 256 {
		return nil, apperrors.Validation("%s exceeds uint256", field)
	}
	return value, nil
}
