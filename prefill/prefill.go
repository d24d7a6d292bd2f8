// Package prefill pushes a scanned payment request into a transfer form.
package prefill

//go:generate go tool mockgen -destination=../internal/testutil/formmock/form.go -package=formmock github.com/ghettovoice/qruri/prefill Form

import (
	"context"
	"errors"
	"log/slog"
	"math/big"

	"braces.dev/errtrace"

	"github.com/ghettovoice/qruri/internal/log"
	"github.com/ghettovoice/qruri/uri"
)

// Form receives the fields recovered from a payment request.
// It is implemented by the presentation layer.
type Form interface {
	// SetAddress sets the recipient address.
	SetAddress(addr string)
	// SetProtocol sets the scheme label the request was issued for.
	SetProtocol(proto string)
	// SetAmount sets the transfer amount in wei.
	SetAmount(wei *big.Int)
}

// Options configures a [Filler].
type Options struct {
	// Log is the logger used by the filler.
	// If nil, the [log.Default] is used.
	Log *slog.Logger
}

func (o *Options) log() *slog.Logger {
	if o == nil || o.Log == nil {
		return log.Default()
	}
	return o.Log
}

// Filler parses scanned text and fills a [Form] with the result.
type Filler struct {
	log *slog.Logger
}

// NewFiller creates a new [Filler].
// Options are optional, default options are used if nil (see [Options]).
func NewFiller(opts *Options) *Filler {
	return &Filler{log: opts.log()}
}

// Fill parses text and, when it holds a payment request, sets the address,
// the protocol when present and the amount when the value parameter is a valid amount.
// A malformed value is logged and skipped. Nothing is set when parsing fails
// or ctx is done.
func (f *Filler) Fill(ctx context.Context, form Form, text string) (*uri.URI, error) {
	u, err := uri.Parse(text)
	if err != nil {
		f.log.LogAttrs(ctx, slog.LevelDebug, "scanned text rejected",
			slog.Any("text", log.StringValue(text)),
			slog.Any("error", err),
		)
		return nil, errtrace.Wrap(err)
	}
	if err := ctx.Err(); err != nil {
		return nil, errtrace.Wrap(err)
	}

	form.SetAddress(u.Address)
	if u.HasProtocol() {
		form.SetProtocol(u.Protocol)
	}

	switch amount, err := u.Value(); {
	case err == nil:
		form.SetAmount(amount)
	case errors.Is(err, uri.ErrNoValue):
		// nothing to set
	default:
		f.log.LogAttrs(ctx, slog.LevelWarn, "payment request value skipped",
			slog.Any("uri", u),
			slog.Any("error", err),
		)
	}

	f.log.LogAttrs(ctx, slog.LevelDebug, "form prefilled", slog.Any("uri", u))
	return u, nil
}
