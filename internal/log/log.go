// Package log provides logging utilities.
package log

import (
	"context"
	"io"
	"log/slog"
	"math/big"
	"sync/atomic"
	"time"

	"braces.dev/errtrace"
	"github.com/golang-cz/devslog"
	"github.com/phsym/console-slog"
	slogformatter "github.com/samber/slog-formatter"
	"github.com/shopspring/decimal"

	"github.com/ghettovoice/qruri/internal/constraints"
	"github.com/ghettovoice/qruri/internal/errorutil"
	"github.com/ghettovoice/qruri/internal/util"
)

var newHandler = slogformatter.NewFormatterHandler(
	slogformatter.ErrorFormatter("error"),
	slogformatter.FormatByType(func(v *big.Int) slog.Value {
		if v == nil {
			return slog.StringValue("<nil>")
		}
		return slog.StringValue(v.String())
	}),
	slogformatter.FormatByType(func(v decimal.Decimal) slog.Value {
		return slog.StringValue(v.String())
	}),
)

// Format selects the handler used to render records.
type Format string

const (
	// FormatConsole renders compact colored lines.
	FormatConsole Format = "console"
	// FormatDev renders verbose multi-line records, handy while debugging.
	FormatDev Format = "dev"
)

// ParseFormat parses a log format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(util.LCase(util.TrimSP(s))); f {
	case FormatConsole, FormatDev:
		return f, nil
	case "":
		return FormatConsole, nil
	default:
		return "", errtrace.Wrap(errorutil.NewInvalidArgumentError("unknown log format %q", s))
	}
}

// New creates a logger that writes records of at least the given level to w.
func New(w io.Writer, format Format, level slog.Leveler) *slog.Logger {
	var h slog.Handler
	switch format {
	case FormatDev:
		h = devslog.NewHandler(w, &devslog.Options{
			HandlerOptions: &slog.HandlerOptions{
				AddSource: true,
				Level:     level,
			},
			SortKeys:   true,
			TimeFormat: time.RFC3339Nano,
		})
	default:
		h = console.NewHandler(w, &console.HandlerOptions{
			Level:      level,
			TimeFormat: time.RFC3339Nano,
		})
	}
	return slog.New(newHandler(h))
}

var defLogger atomic.Pointer[slog.Logger]

// Default returns the package-wide logger.
// Until [SetDefault] is called it is [Noop].
func Default() *slog.Logger {
	if l := defLogger.Load(); l != nil {
		return l
	}
	return Noop
}

// SetDefault replaces the package-wide logger. A nil l restores [Noop].
func SetDefault(l *slog.Logger) {
	defLogger.Store(l)
}

type noopHandler struct{}

func (noopHandler) Enabled(context.Context, slog.Level) bool { return false }

func (noopHandler) Handle(context.Context, slog.Record) error { return nil }

func (h noopHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h noopHandler) WithGroup(string) slog.Handler { return h }

// Noop is a noop logger.
var Noop = slog.New(noopHandler{})

// maxStringValueLen is the number of runes of a string value kept in log records.
const maxStringValueLen = 128

type stringValue[T constraints.Byteseq] struct {
	v T
}

func (v stringValue[T]) LogValue() slog.Value {
	return slog.StringValue(util.Ellipsis(string(v.v), maxStringValueLen))
}

// StringValue returns a value logger that formats v as a possibly shortened string.
func StringValue[T constraints.Byteseq](v T) slog.LogValuer { return stringValue[T]{v} }
