package exchange

import "errors"

// Per-date failure taxonomy. Every failure a fetch can produce wraps exactly
// one of these sentinels, so callers can classify with errors.Is instead of
// string matching.
var (
	// ErrConnection marks a transport-level failure to reach the remote host.
	ErrConnection = errors.New("exchange: connection failure")

	// ErrRemoteStatus marks a non-success HTTP status from the remote host.
	ErrRemoteStatus = errors.New("exchange: remote error")

	// ErrMalformedResponse marks a response body that could not be decoded
	// or is missing expected fields.
	ErrMalformedResponse = errors.New("exchange: malformed response")
)

// FailureKind reduces a classified fetch error to a short stable label,
// used in result failure maps and metric labels.
func FailureKind(err error) string {
	switch {
	case errors.Is(err, ErrConnection):
		return "connection"
	case errors.Is(err, ErrRemoteStatus):
		return "remote"
	case errors.Is(err, ErrMalformedResponse):
		return "malformed"
	default:
		return "unknown"
	}
}
