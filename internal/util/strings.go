// Package util provides small string helpers shared across packages.
package util

import (
	"strings"
	"sync"
)

func LCase[T ~string](s T) T { return T(strings.ToLower(string(s))) }

func TrimSP[T ~string](s T) T { return T(strings.TrimSpace(string(s))) }

// IsAlnum reports whether c is an ASCII letter or digit.
func IsAlnum(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

// LowerASCII lowercases ASCII letters of s and leaves every other byte as is.
// Unlike [strings.ToLower] it never changes the byte length of s.
func LowerASCII[T ~string | ~[]byte](s T) string {
	b := make([]byte, len(s))
	for i := range len(s) {
		c := s[i]
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		b[i] = c
	}
	return string(b)
}

// HasPrefixFold reports whether s[i:] starts with the ASCII prefix p, ignoring case.
func HasPrefixFold[T ~string | ~[]byte](s T, i int, p string) bool {
	if i < 0 || len(s)-i < len(p) {
		return false
	}
	for j := range len(p) {
		c := s[i+j]
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		if c != p[j] {
			return false
		}
	}
	return true
}

var strBldrPool = &sync.Pool{
	New: func() any {
		sb := new(strings.Builder)
		sb.Grow(128)
		return sb
	},
}

func GetStringBuilder() *strings.Builder {
	return strBldrPool.Get().(*strings.Builder) //nolint:forcetypeassert
}

func FreeStringBuilder(sb *strings.Builder) {
	sb.Reset()
	strBldrPool.Put(sb)
}

// Ellipsis cuts s to maxLen runes and marks the cut with "...".
func Ellipsis(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[0:maxLen]) + "..."
}
