package uri

import "github.com/ghettovoice/qruri/internal/errorutil"

// Error represents a URI error.
// See [errorutil.Error].
type Error = errorutil.Error

// Parsing errors.
// Every error returned by [Parse] for non-empty input matches [ErrMalformedInput]
// and one of the specific errors below.
const (
	ErrEmptyInput     Error = "empty input"
	ErrMalformedInput Error = "malformed input"

	// ErrNoAddress is returned when the text has no "0x" marker.
	ErrNoAddress Error = "no address marker"
	// ErrShortAddress is returned when fewer than [AddressBodyLen] characters follow the marker.
	ErrShortAddress Error = "address too short"
	// ErrAmbiguousProtocol is returned when the text before the address has more than one ":".
	ErrAmbiguousProtocol Error = "ambiguous protocol"
)

// ErrNoValue is returned by [URI.Value] when the request has no value parameter.
const ErrNoValue Error = "no value parameter"

func newMalformedInputErr(args ...any) error {
	return errorutil.NewWrapperError(ErrMalformedInput, args...) //errtrace:skip
}
