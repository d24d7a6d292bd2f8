package uri_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/qruri/uri"
)

const zeroAddr = "0x0000000000000000000000000000000000000000"

func TestParse(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		in      string
		want    *uri.URI
		wantErr error
	}{
		{
			"scheme and value",
			"ethereum:" + zeroAddr + "?value=0",
			&uri.URI{Protocol: "ethereum", Address: zeroAddr, Params: uri.Params{"value": "0"}},
			nil,
		},
		{
			"protocol with spaces",
			"NG node:" + zeroAddr + "?value=0",
			&uri.URI{Protocol: "NG node", Address: zeroAddr, Params: uri.Params{"value": "0"}},
			nil,
		},
		{
			"upper case protocol",
			"PROTOCOL:" + zeroAddr + "?value=0",
			&uri.URI{Protocol: "PROTOCOL", Address: zeroAddr, Params: uri.Params{"value": "0"}},
			nil,
		},
		{
			"inner colon protocol",
			"a:b" + zeroAddr,
			&uri.URI{Protocol: "a:b", Address: zeroAddr, Params: uri.Params{}},
			nil,
		},
		{
			"rendered inner colon protocol",
			"a:b:" + zeroAddr,
			nil,
			uri.ErrAmbiguousProtocol,
		},
		{
			"no params",
			"ethereum:" + zeroAddr,
			&uri.URI{Protocol: "ethereum", Address: zeroAddr, Params: uri.Params{}},
			nil,
		},
		{
			"lower case address",
			"ethereum:0xabcdef0000000000000000000000000000000000",
			&uri.URI{Protocol: "ethereum", Address: "0xabcdef0000000000000000000000000000000000", Params: uri.Params{}},
			nil,
		},
		{
			"upper case address",
			"ethereum:0xABC0000000000000000000000000000000000000",
			&uri.URI{Protocol: "ethereum", Address: "0xabc0000000000000000000000000000000000000", Params: uri.Params{}},
			nil,
		},
		{
			"mixed case address",
			"ethereum:0xABCdef0000000000000000000000000000000000",
			&uri.URI{Protocol: "ethereum", Address: "0xabcdef0000000000000000000000000000000000", Params: uri.Params{}},
			nil,
		},
		{
			"upper case marker",
			"0XABCDEF0000000000000000000000000000000000",
			&uri.URI{Address: "0xabcdef0000000000000000000000000000000000", Params: uri.Params{}},
			nil,
		},
		{
			"bare address",
			zeroAddr,
			&uri.URI{Address: zeroAddr, Params: uri.Params{}},
			nil,
		},
		{
			"bare address with value",
			zeroAddr + "?value=0",
			&uri.URI{Address: zeroAddr, Params: uri.Params{"value": "0"}},
			nil,
		},
		{
			"other protocol",
			"OMG:" + zeroAddr,
			&uri.URI{Protocol: "OMG", Address: zeroAddr, Params: uri.Params{}},
			nil,
		},
		{
			"longer address is cut",
			zeroAddr + "123",
			&uri.URI{Address: zeroAddr, Params: uri.Params{}},
			nil,
		},
		{
			"trailing junk before query",
			zeroAddr + "123/-!?k=v",
			&uri.URI{Address: zeroAddr, Params: uri.Params{"k": "v"}},
			nil,
		},
		{
			"two params",
			"notethereum:0x0000000000000000000000000000000000000abc?value=0&symbol=USD",
			&uri.URI{
				Protocol: "notethereum",
				Address:  "0x0000000000000000000000000000000000000abc",
				Params:   uri.Params{"value": "0", "symbol": "USD"},
			},
			nil,
		},
		{
			"empty protocol",
			":0x0000000000000000000000000000000000000abc?value=0invalid",
			&uri.URI{Address: "0x0000000000000000000000000000000000000abc", Params: uri.Params{"value": "0invalid"}},
			nil,
		},
		{
			"duplicate keys",
			"ethereum:0x0000000000000000000000000000000000000123?key=value1&key=value2",
			&uri.URI{
				Protocol: "ethereum",
				Address:  "0x0000000000000000000000000000000000000123",
				Params:   uri.Params{"key": "value2"},
			},
			nil,
		},
		{
			"dangling ampersand",
			"ethereum:0x0000000000000000000000000000000000000123?key=value&key=value&",
			&uri.URI{
				Protocol: "ethereum",
				Address:  "0x0000000000000000000000000000000000000123",
				Params:   uri.Params{"key": "value"},
			},
			nil,
		},
		{
			"letters beyond hex",
			"ethereum:0x0000000000000000000000000000000000000XyZ?value=0invalid",
			&uri.URI{
				Protocol: "ethereum",
				Address:  "0x0000000000000000000000000000000000000xyz",
				Params:   uri.Params{"value": "0invalid"},
			},
			nil,
		},
		{
			"empty query",
			"protocol:0x0000000000000000000000000000000000000XyZ?",
			&uri.URI{Protocol: "protocol", Address: "0x0000000000000000000000000000000000000xyz", Params: uri.Params{}},
			nil,
		},
		{
			"key without value",
			zeroAddr + "?flag&k=v=w&&",
			&uri.URI{Address: zeroAddr, Params: uri.Params{"flag": "", "k": "v=w"}},
			nil,
		},
		{
			"keys keep case",
			zeroAddr + "?Value=1&value=2",
			&uri.URI{Address: zeroAddr, Params: uri.Params{"Value": "1", "value": "2"}},
			nil,
		},
		{
			"protocol without separator",
			"pay" + zeroAddr,
			&uri.URI{Protocol: "pay", Address: zeroAddr, Params: uri.Params{}},
			nil,
		},
		{
			"colons in params are ignored",
			"ethereum:" + zeroAddr + "?label=a:b:c",
			&uri.URI{Protocol: "ethereum", Address: zeroAddr, Params: uri.Params{"label": "a:b:c"}},
			nil,
		},
		{"empty", "", nil, uri.ErrEmptyInput},
		{"no marker", "ethereum:abc?value=1", nil, uri.ErrNoAddress},
		{"marker only", "0x", nil, uri.ErrShortAddress},
		{"short address", "ethereum:0x0000000000000000abc?value=0invalid", nil, uri.ErrShortAddress},
		{"short address before query", "ethereum:0x0000000000000018abc?value=0invalid", nil, uri.ErrShortAddress},
		{"address broken by symbol", "0x00000000000000000000-00000000000000000000", nil, uri.ErrShortAddress},
		{
			"too many colons",
			"something:coin:0x0000000000000000000000000000000000000XyZ?k1=v1&k2=v2",
			nil,
			uri.ErrAmbiguousProtocol,
		},
		{"double separator", "eth::" + zeroAddr, nil, uri.ErrAmbiguousProtocol},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := uri.Parse(c.in)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("uri.Parse(%q) error = %v, want %v\ndiff (-got +want):\n%v", c.in, err, c.wantErr, diff)
			}
			if c.wantErr != nil && c.wantErr != uri.ErrEmptyInput && !errors.Is(err, uri.ErrMalformedInput) {
				t.Errorf("uri.Parse(%q) error = %v, want to match %v", c.in, err, uri.ErrMalformedInput)
			}
			if diff := cmp.Diff(got, c.want); diff != "" {
				t.Errorf("uri.Parse(%q) = %+v, want %+v\ndiff (-got +want):\n%v", c.in, got, c.want, diff)
			}
			ex := uri.Extract(c.in)
			if c.want == nil && ex != nil || c.want != nil && !c.want.Equal(ex) {
				t.Errorf("uri.Extract(%q) = %+v, want %+v", c.in, ex, c.want)
			}
		})
	}
}

func TestParse_Bytes(t *testing.T) {
	t.Parallel()

	got, err := uri.Parse([]byte("ethereum:" + zeroAddr))
	if err != nil {
		t.Fatalf("uri.Parse(bytes) error = %v, want nil", err)
	}
	if got.Address != zeroAddr {
		t.Errorf("uri.Parse(bytes).Address = %q, want %q", got.Address, zeroAddr)
	}
}

func TestParse_AddressContract(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"ethereum:0xABCDEFABCDEFABCDEFABCDEFABCDEFABCDEFABCD",
		"0XaBcDeF0123456789aBcDeF0123456789aBcDeF01ffff",
		"Pay To:0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed?value=1",
	}
	for _, in := range inputs {
		got := uri.Extract(in)
		if got == nil {
			t.Fatalf("uri.Extract(%q) = nil, want result", in)
		}
		if len(got.Address) != uri.AddressLen {
			t.Errorf("len(uri.Extract(%q).Address) = %d, want %d", in, len(got.Address), uri.AddressLen)
		}
		if got.Address != strings.ToLower(got.Address) {
			t.Errorf("uri.Extract(%q).Address = %q, want lower case", in, got.Address)
		}
		if !got.IsValid() {
			t.Errorf("uri.Extract(%q).IsValid() = false, want true", in)
		}
	}
}

func TestIsAddress(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want bool
	}{
		{zeroAddr, true},
		{"0X5AAEB6053F3E94C9B9A09F33669435E7EF1BEAED", true},
		{"0x0000000000000000000000000000000000000xyz", true},
		{"", false},
		{"0x", false},
		{zeroAddr + "0", false},
		{zeroAddr[:41], false},
		{"1x0000000000000000000000000000000000000000", false},
		{"0x000000000000000000000000000000000000000-", false},
	}

	for _, c := range cases {
		if got := uri.IsAddress(c.in); got != c.want {
			t.Errorf("uri.IsAddress(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func FuzzParse(f *testing.F) {
	for _, s := range []string{
		"",
		"0x",
		zeroAddr,
		"ethereum:" + zeroAddr + "?value=0&symbol=USD&",
		"something:coin:0x0000000000000000000000000000000000000XyZ?k1=v1&k2=v2",
		"\x00\xff0x\x80",
		"a:b" + zeroAddr,
	} {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, s string) {
		u, err := uri.Parse(s)
		if (u == nil) == (err == nil) {
			t.Fatalf("uri.Parse(%q) = (%v, %v), want exactly one of result and error", s, u, err)
		}
		if err != nil {
			return
		}
		if !u.IsValid() || u.Address != strings.ToLower(u.Address) {
			t.Fatalf("uri.Parse(%q).Address = %q, want a lower case address", s, u.Address)
		}
		if u.Params == nil {
			t.Fatalf("uri.Parse(%q).Params = nil, want non-nil", s)
		}
		if strings.Contains(u.Protocol, ":") {
			if _, err := uri.Parse(u.String()); !errors.Is(err, uri.ErrAmbiguousProtocol) {
				t.Fatalf("uri.Parse(%q) error = %v, want %v", u.String(), err, uri.ErrAmbiguousProtocol)
			}
			return
		}
		u2, err := uri.Parse(u.String())
		if err != nil {
			t.Fatalf("uri.Parse(%q) error = %v, want nil", u.String(), err)
		}
		if !u2.Equal(u) {
			t.Fatalf("uri.Parse(%q) = %+v, want %+v", u.String(), u2, u)
		}
	})
}
