// Package uri extracts payment requests from scanned text.
//
// # Overview
//
// Wallets receive payment requests as free-form text: the result of a QR code scan or
// something the user pasted. The text usually looks like
//
//	ethereum:0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed?value=1.5e18
//
// but may just as well be a bare address, carry an unknown scheme label, upper case letters,
// trailing junk or a dangling "&". The package recovers as much of it as is unambiguous and
// refuses the rest. It is a lenient extractor, not an RFC 3986 parser.
//
// # Grammar
//
// A request consists of three parts:
//
//	[protocol ":"] address [junk] ["?" param *("&" param)]
//
//   - address: "0x" (any case) followed by exactly [AddressBodyLen] ASCII letters or digits.
//     The first "0x" in the text anchors the address. Extra letters or digits after the
//     fortieth character are ignored. The address is lowercased.
//   - protocol: everything before the anchor, with a single trailing ":" removed.
//     It is kept verbatim, including spaces and case. An empty head means no protocol.
//     A head with more than one ":" is ambiguous and the text is refused.
//   - params: the text after the first "?" that follows the address, split on "&".
//     Each segment is split on the first "=", a segment without "=" is a key with an
//     empty value. Empty segments are skipped. The last duplicate key wins.
//     Keys and values are taken as is, without percent-decoding.
//
// # Parsing
//
// [Parse] reports why the text was refused:
//
//	u, err := uri.Parse("ethereum:0x0000000000000000000000000000000000000000?value=0")
//	if err != nil {
//	    // errors.Is(err, uri.ErrMalformedInput), errors.Is(err, uri.ErrShortAddress), ...
//	}
//	fmt.Println(u.Protocol, u.Address, u.Params.Get("value"))
//
// [Extract] is the same but returns nil instead of an error, for callers that only
// need a yes or no answer.
//
// # Rendering
//
// [URI] renders back to the canonical "protocol:address?k=v" form with parameters sorted
// by key. Parsing the rendered text yields an equal [URI] as long as the protocol has no ":".
// A protocol with an inner ":" (text "a:b0x...") renders with a second ":" and is refused
// when parsed again.
//
// # Thread Safety
//
// Parsing is a pure function and safe for concurrent use. [URI] values are not modified
// by any method; share them freely or [URI.Clone] them before mutating fields.
package uri
