package uri

import (
	"io"
	"log/slog"
	"maps"
	"slices"

	"braces.dev/errtrace"

	"github.com/ghettovoice/qruri/internal/ioutil"
	"github.com/ghettovoice/qruri/internal/util"
)

// Params maps query parameter keys to values.
// Keys are case-sensitive. A nil Params is an empty, read-only set.
type Params map[string]string

// Get returns the value associated with key or an empty string.
func (p Params) Get(key string) string { return p[key] }

// Lookup returns the value associated with key and whether the key is present.
func (p Params) Lookup(key string) (string, bool) {
	v, ok := p[key]
	return v, ok
}

// Has checks whether key is present.
func (p Params) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// Keys returns the keys in sorted order.
func (p Params) Keys() []string { return slices.Sorted(maps.Keys(p)) }

// Clone returns a copy of the map. Cloning nil returns nil.
func (p Params) Clone() Params { return maps.Clone(p) }

// Equal reports whether p and other hold the same pairs.
// A nil map equals an empty one.
func (p Params) Equal(other Params) bool { return maps.Equal(p, other) }

// RenderTo writes the parameters as "k1=v1&k2=v2" with keys in sorted order.
// Keys with an empty value are written without "=", unless the key is empty too.
func (p Params) RenderTo(w io.Writer) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	for i, k := range p.Keys() {
		if i > 0 {
			cw.WriteString("&")
		}
		cw.WriteString(k)
		if v := p[k]; v != "" || k == "" {
			cw.WriteString("=").WriteString(v)
		}
	}
	return errtrace.Wrap2(cw.Result())
}

// String returns the rendered parameters.
func (p Params) String() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	p.RenderTo(sb) //nolint:errcheck
	return sb.String()
}

func (p Params) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(p))
	for _, k := range p.Keys() {
		attrs = append(attrs, slog.String(k, p[k]))
	}
	return slog.GroupValue(attrs...)
}
