// Package unit converts amounts between wei and the denominations shown to users.
//
// Amounts travel through the module as *big.Int counts of wei, the smallest unit.
// Conversions to and from gwei and ether go through [decimal.Decimal], so they are exact.
package unit

//go:generate go tool errtrace -w .

import (
	"math/big"

	"braces.dev/errtrace"
	"github.com/shopspring/decimal"

	"github.com/ghettovoice/qruri/internal/errorutil"
	"github.com/ghettovoice/qruri/internal/util"
)

// Denomination exponents relative to wei.
const (
	Wei   int32 = 0
	Gwei  int32 = 9
	Ether int32 = 18
)

// Error represents a unit conversion error.
// See [errorutil.Error].
type Error = errorutil.Error

// ErrInvalidAmount is returned when an amount string is not a non-negative whole number of wei.
const ErrInvalidAmount Error = "invalid amount"

// maxBits is the width of an EVM word; larger amounts cannot exist on chain.
const maxBits = 256

// maxExp bounds the decimal exponent accepted from input, 10^78 > 2^256.
const maxExp = 78

// ParseAmount parses a whole number of wei.
// Plain integers ("1000"), decimals ("1.0") and scientific notation ("1.5e18") are accepted
// as long as the value is a non-negative integer that fits 256 bits.
func ParseAmount(s string) (*big.Int, error) {
	return errtrace.Wrap2(ParseUnit(s, Wei))
}

// ParseUnit parses s as an amount expressed in the denomination exp and returns it in wei.
// For example ParseUnit("1.5", Gwei) returns 1500000000.
func ParseUnit(s string, exp int32) (*big.Int, error) {
	s = util.TrimSP(s)
	if s == "" {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidAmount, "empty string"))
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidAmount, err))
	}
	if e := d.Exponent(); e > maxExp || e < -maxExp {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidAmount, "%q is out of range", s))
	}
	if d.Sign() < 0 {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidAmount, "%q is negative", s))
	}

	d = d.Shift(exp)
	if !d.IsInteger() {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidAmount, "%q is not a whole number of wei", s))
	}
	v := d.BigInt()
	if v.BitLen() > maxBits {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidAmount, "%q is out of range", s))
	}
	return v, nil
}

// ToUnit expresses wei in the denomination exp.
// A nil wei is treated as zero.
func ToUnit(wei *big.Int, exp int32) decimal.Decimal {
	if wei == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(wei, -exp)
}

// FromUnit converts d expressed in the denomination exp to wei.
// Fractions of wei are truncated toward zero.
func FromUnit(d decimal.Decimal, exp int32) *big.Int {
	return d.Shift(exp).BigInt()
}

// FormatEther renders wei as a plain decimal number of ether without trailing zeros.
func FormatEther(wei *big.Int) string { return ToUnit(wei, Ether).String() }

// FormatGwei renders wei as a plain decimal number of gwei without trailing zeros.
func FormatGwei(wei *big.Int) string { return ToUnit(wei, Gwei).String() }
