// Package gas implements the arithmetic behind the transaction fee settings:
// gas price and gas limit bounds, validation of user input, the mapping between
// slider positions and values, and the resulting network fee.
//
// Prices are *big.Int counts of wei, limits are *big.Int counts of gas units.
package gas

//go:generate go tool errtrace -w .

import (
	"log/slog"
	"math/big"

	"braces.dev/errtrace"

	"github.com/ghettovoice/qruri/internal/errorutil"
	"github.com/ghettovoice/qruri/unit"
)

// Error represents a gas settings error.
// See [errorutil.Error].
type Error = errorutil.Error

const (
	// ErrInvalidNumber is returned by [ParsePriceGwei] and [ParseLimit] for unparsable input
	// and by [Limits.Validate] for incomplete settings.
	ErrInvalidNumber = errorutil.ErrInvalidArgument

	ErrPriceTooLow  Error = "gas price too low"
	ErrPriceTooHigh Error = "gas price too high"
	ErrLimitTooLow  Error = "gas limit too low"
	ErrLimitTooHigh Error = "gas limit too high"
)

// Default bounds.
const (
	DefaultPriceMin = 1_000_000_000          // 1 gwei
	DefaultLimitMin = 21_000                 // plain transfer
	DefaultLimitMax = 300_000
	DefaultFeeMax   = 20_000_000_000_000_000 // 0.02 ether
)

// limitStep is the granularity of the gas limit slider.
const limitStep = 100

// Limits holds the bounds applied to gas settings.
// Nil fields fall back to the Default* constants, so the zero value is ready to use.
type Limits struct {
	// PriceMin is the lowest accepted gas price in wei.
	PriceMin *big.Int
	// LimitMin is the lowest accepted gas limit.
	LimitMin *big.Int
	// LimitMax is the highest accepted gas limit.
	LimitMax *big.Int
	// FeeMax caps the network fee in wei, it derives the highest gas price.
	FeeMax *big.Int
}

// DefaultLimits returns limits populated with the Default* constants.
func DefaultLimits() Limits {
	return Limits{
		PriceMin: big.NewInt(DefaultPriceMin),
		LimitMin: big.NewInt(DefaultLimitMin),
		LimitMax: big.NewInt(DefaultLimitMax),
		FeeMax:   big.NewInt(DefaultFeeMax),
	}
}

func orDefault(v *big.Int, def int64) *big.Int {
	if v == nil {
		return big.NewInt(def)
	}
	return v
}

func (l Limits) priceMin() *big.Int { return orDefault(l.PriceMin, DefaultPriceMin) }

func (l Limits) limitMin() *big.Int { return orDefault(l.LimitMin, DefaultLimitMin) }

func (l Limits) limitMax() *big.Int { return orDefault(l.LimitMax, DefaultLimitMax) }

func (l Limits) feeMax() *big.Int { return orDefault(l.FeeMax, DefaultFeeMax) }

// MaxPrice returns the highest gas price in wei: the price at which a transaction
// with the highest gas limit costs exactly FeeMax.
func (l Limits) MaxPrice() *big.Int {
	lm := l.limitMax()
	if lm.Sign() <= 0 {
		return new(big.Int).Set(l.feeMax())
	}
	return new(big.Int).Quo(l.feeMax(), lm)
}

// MinPriceGwei returns the lowest gas price in whole gwei.
func (l Limits) MinPriceGwei() int64 { return unit.ToUnit(l.priceMin(), unit.Gwei).IntPart() }

// MaxPriceGwei returns the highest gas price in whole gwei.
func (l Limits) MaxPriceGwei() int64 { return unit.ToUnit(l.MaxPrice(), unit.Gwei).IntPart() }

// PriceSliderMax returns the number of gwei steps between the lowest and the highest price.
func (l Limits) PriceSliderMax() int {
	return max(int(l.MaxPriceGwei()-l.MinPriceGwei()), 0)
}

// PriceProgress maps a gas price to a price slider position.
// Prices outside of the bounds are clamped.
func (l Limits) PriceProgress(price *big.Int) int {
	p := new(big.Int).Sub(unit.ToUnit(price, unit.Gwei).BigInt(), big.NewInt(l.MinPriceGwei()))
	return clampBig(p, l.PriceSliderMax())
}

// PriceFromProgress maps a price slider position back to a gas price in wei.
func (l Limits) PriceFromProgress(progress int) *big.Int {
	progress = clamp(int64(progress), l.PriceSliderMax())
	gwei := big.NewInt(int64(progress) + l.MinPriceGwei())
	return gwei.Mul(gwei, big.NewInt(1_000_000_000))
}

// LimitSliderMax returns the width of the gas limit slider.
func (l Limits) LimitSliderMax() int {
	return max(int(new(big.Int).Sub(l.limitMax(), l.limitMin()).Int64()), 0)
}

// LimitProgress maps a gas limit to a limit slider position.
// Limits outside of the bounds are clamped.
func (l Limits) LimitProgress(limit *big.Int) int {
	if limit == nil {
		return 0
	}
	return clampBig(new(big.Int).Sub(limit, l.limitMin()), l.LimitSliderMax())
}

// LimitFromProgress maps a limit slider position to a gas limit.
// The position is rounded down to a multiple of 100.
func (l Limits) LimitFromProgress(progress int) *big.Int {
	progress = clamp(int64(progress), l.LimitSliderMax())
	progress = progress / limitStep * limitStep
	return new(big.Int).Add(big.NewInt(int64(progress)), l.limitMin())
}

func clampBig(v *big.Int, hi int) int {
	switch {
	case v.Sign() < 0:
		return 0
	case v.Cmp(big.NewInt(int64(hi))) > 0:
		return hi
	default:
		return int(v.Int64())
	}
}

func clamp(v int64, hi int) int {
	switch {
	case v < 0:
		return 0
	case v > int64(hi):
		return hi
	default:
		return int(v)
	}
}

// Validate checks s against the bounds.
// All violations are reported, joined into a single error.
func (l Limits) Validate(s Settings) error {
	if s.Price == nil || s.Limit == nil {
		return errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidNumber, "incomplete gas settings"))
	}

	var errs []error
	if s.Price.Cmp(l.priceMin()) < 0 {
		errs = append(errs, errorutil.NewWrapperError(ErrPriceTooLow, "%s gwei < %s gwei",
			unit.FormatGwei(s.Price), unit.FormatGwei(l.priceMin())))
	}
	if mp := l.MaxPrice(); s.Price.Cmp(mp) > 0 {
		errs = append(errs, errorutil.NewWrapperError(ErrPriceTooHigh, "%s gwei > %s gwei",
			unit.FormatGwei(s.Price), unit.FormatGwei(mp)))
	}
	if s.Limit.Cmp(l.limitMin()) < 0 {
		errs = append(errs, errorutil.NewWrapperError(ErrLimitTooLow, "%s < %s", s.Limit, l.limitMin()))
	}
	if s.Limit.Cmp(l.limitMax()) > 0 {
		errs = append(errs, errorutil.NewWrapperError(ErrLimitTooHigh, "%s > %s", s.Limit, l.limitMax()))
	}
	return errtrace.Wrap(errorutil.JoinPrefix("invalid gas settings", errs...))
}

// Settings is a gas price and limit pair.
type Settings struct {
	// Price is the gas price in wei.
	Price *big.Int
	// Limit is the gas limit in gas units.
	Limit *big.Int
}

// NetworkFee returns the maximal fee the transaction can cost: price * limit.
// Missing values count as zero.
func (s Settings) NetworkFee() *big.Int {
	if s.Price == nil || s.Limit == nil {
		return new(big.Int)
	}
	return new(big.Int).Mul(s.Price, s.Limit)
}

func (s Settings) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("price", s.Price),
		slog.Any("limit", s.Limit),
	)
}

// ParsePriceGwei parses a gas price typed in gwei and returns it in wei.
func ParsePriceGwei(s string) (*big.Int, error) {
	v, err := unit.ParseUnit(s, unit.Gwei)
	if err != nil {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidNumber, err))
	}
	return v, nil
}

// ParseLimit parses a gas limit.
func ParseLimit(s string) (*big.Int, error) {
	v, err := unit.ParseAmount(s)
	if err != nil {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidNumber, err))
	}
	return v, nil
}
