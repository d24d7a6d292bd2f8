package uri

//go:generate go tool errtrace -w .

import (
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/qruri/internal/ioutil"
	"github.com/ghettovoice/qruri/internal/util"
	"github.com/ghettovoice/qruri/unit"
)

const (
	// AddressPrefix is the marker that starts an address.
	AddressPrefix = "0x"
	// AddressBodyLen is the number of characters following [AddressPrefix].
	AddressBodyLen = 40
	// AddressLen is the full length of an address.
	AddressLen = len(AddressPrefix) + AddressBodyLen
)

// ValueParam is the parameter carrying the transfer amount in wei.
const ValueParam = "value"

// URI is a payment request recovered from scanned text.
type URI struct {
	// Protocol is the label preceding the address, kept verbatim.
	// Empty when the text has no label.
	Protocol string
	// Address is "0x" followed by 40 lowercase letters or digits.
	Address string
	// Params holds the query parameters, never nil in a parse result.
	Params Params
}

// HasProtocol reports whether the request carries a protocol label.
func (u *URI) HasProtocol() bool { return u != nil && u.Protocol != "" }

// Value returns the amount carried by the value parameter, in wei.
// It returns [ErrNoValue] when the parameter is absent and [unit.ErrInvalidAmount]
// when it is not a whole non-negative number.
func (u *URI) Value() (*big.Int, error) {
	if u == nil {
		return nil, errtrace.Wrap(ErrNoValue)
	}
	v, ok := u.Params.Lookup(ValueParam)
	if !ok {
		return nil, errtrace.Wrap(ErrNoValue)
	}
	return errtrace.Wrap2(unit.ParseAmount(v))
}

// Clone returns a deep copy of the URI.
func (u *URI) Clone() *URI {
	if u == nil {
		return nil
	}
	u2 := *u
	u2.Params = u.Params.Clone()
	return &u2
}

// Equal compares this URI with another for equality.
// Protocols are compared exactly, addresses case-insensitively.
func (u *URI) Equal(val any) bool {
	var other *URI
	switch v := val.(type) {
	case URI:
		other = &v
	case *URI:
		other = v
	default:
		return false
	}

	if u == other {
		return true
	} else if u == nil || other == nil {
		return false
	}
	return u.Protocol == other.Protocol &&
		util.LowerASCII(u.Address) == util.LowerASCII(other.Address) &&
		u.Params.Equal(other.Params)
}

// IsValid checks whether the URI holds a well-formed address.
func (u *URI) IsValid() bool { return u != nil && IsAddress(u.Address) }

// RenderTo writes the URI in "protocol:address?params" form.
func (u *URI) RenderTo(w io.Writer) (num int, err error) {
	if u == nil {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)

	if u.Protocol != "" {
		cw.WriteString(u.Protocol).WriteString(":")
	}
	cw.WriteString(u.Address)
	if len(u.Params) > 0 {
		cw.WriteString("?").Call(u.Params.RenderTo)
	}
	return errtrace.Wrap2(cw.Result())
}

// Render returns the string representation of the URI.
func (u *URI) Render() string {
	if u == nil {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	u.RenderTo(sb) //nolint:errcheck
	return sb.String()
}

// String returns the string representation of the URI.
func (u *URI) String() string { return u.Render() }

// Format implements fmt.Formatter for custom formatting of the URI.
func (u *URI) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		if f.Flag('+') {
			u.RenderTo(f) //nolint:errcheck
			return
		}
		fmt.Fprint(f, u.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(u.String()))
		return
	default:
		type hideMethods URI
		type URI hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*URI)(u))
		return
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (u *URI) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (u *URI) UnmarshalText(text []byte) error {
	u1, err := Parse(text)
	if err != nil {
		*u = URI{}
		return errtrace.Wrap(err)
	}
	*u = *u1
	return nil
}

func (u *URI) LogValue() slog.Value {
	if u == nil {
		return slog.Value{}
	}
	return slog.GroupValue(
		slog.String("protocol", u.Protocol),
		slog.String("address", u.Address),
		slog.Any("params", u.Params),
	)
}
