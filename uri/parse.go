package uri

import (
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/qruri/internal/constraints"
	"github.com/ghettovoice/qruri/internal/errorutil"
	"github.com/ghettovoice/qruri/internal/util"
)

// Parse extracts a payment request from the given input s (string or []byte).
//
// It never panics. Any input yields either a complete [URI] or an error:
//   - [ErrEmptyInput] for empty input;
//   - [ErrMalformedInput] together with [ErrNoAddress], [ErrShortAddress]
//     or [ErrAmbiguousProtocol] otherwise.
//
// See the package documentation for the accepted grammar.
func Parse[T constraints.Byteseq](s T) (*URI, error) {
	if len(s) == 0 {
		return nil, errtrace.Wrap(ErrEmptyInput)
	}
	src := string(s)

	anchor := indexAddressPrefix(src)
	if anchor < 0 {
		return nil, errtrace.Wrap(newMalformedInputErr(ErrNoAddress))
	}

	end := scanAddress(src, anchor)
	if n := end - anchor - len(AddressPrefix); n < AddressBodyLen {
		return nil, errtrace.Wrap(newMalformedInputErr(
			newShortAddressErr("got %d of %d characters", n, AddressBodyLen),
		))
	}

	proto, ok := parseProtocol(src[:anchor])
	if !ok {
		return nil, errtrace.Wrap(newMalformedInputErr(
			newAmbiguousProtocolErr("%q has more than one \":\"", src[:anchor]),
		))
	}

	return &URI{
		Protocol: proto,
		Address:  util.LowerASCII(src[anchor:end]),
		Params:   parseQuery(src[end:]),
	}, nil
}

// Extract is like [Parse] but returns nil instead of an error.
func Extract(s string) *URI {
	u, err := Parse(s)
	if err != nil {
		return nil
	}
	return u
}

// IsAddress reports whether s is exactly one address: [AddressPrefix] in any case
// followed by [AddressBodyLen] ASCII letters or digits.
func IsAddress(s string) bool {
	return len(s) == AddressLen &&
		util.HasPrefixFold(s, 0, AddressPrefix) &&
		scanAddress(s, 0) == AddressLen
}

// indexAddressPrefix returns the index of the first "0x" or "0X" in s, or -1.
func indexAddressPrefix(s string) int {
	for i := 0; i+len(AddressPrefix) <= len(s); i++ {
		if util.HasPrefixFold(s, i, AddressPrefix) {
			return i
		}
	}
	return -1
}

// scanAddress consumes the address body that starts after the prefix at anchor
// and returns the end index of the token. It stops at the first byte that is not
// an ASCII letter or digit, or after [AddressBodyLen] characters.
func scanAddress(s string, anchor int) int {
	end := anchor + len(AddressPrefix)
	limit := min(len(s), end+AddressBodyLen)
	for end < limit && util.IsAlnum(s[end]) {
		end++
	}
	return end
}

// parseProtocol derives the protocol from the text preceding the address.
// It returns false when the head is ambiguous.
func parseProtocol(head string) (string, bool) {
	if strings.Count(head, ":") > 1 {
		return "", false
	}
	return strings.TrimSuffix(head, ":"), true
}

// parseQuery parses the parameters of the first query section in rest.
// The result is never nil.
func parseQuery(rest string) Params {
	params := make(Params)
	_, query, ok := strings.Cut(rest, "?")
	if !ok {
		return params
	}
	for seg := range strings.SplitSeq(query, "&") {
		if seg == "" {
			continue
		}
		k, v, _ := strings.Cut(seg, "=")
		params[k] = v
	}
	return params
}

func newShortAddressErr(args ...any) error {
	return errorutil.NewWrapperError(ErrShortAddress, args...) //errtrace:skip
}

func newAmbiguousProtocolErr(args ...any) error {
	return errorutil.NewWrapperError(ErrAmbiguousProtocol, args...) //errtrace:skip
}
