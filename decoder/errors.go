package decoder

import (
	"errors"
	"fmt"
)

// Error taxonomy of the decode pipeline. Callers classify failures with
// errors.Is; the original cause stays wrapped underneath each sentinel, so
// context.Canceled and friends remain matchable too.
var (
	// ErrMalformedCalldata tags calldata too short to carry a selector.
	ErrMalformedCalldata = errors.New("malformed calldata")

	// ErrLookupUnavailable tags signature directory failures: transport
	// errors, timeouts, non-200 statuses.
	ErrLookupUnavailable = errors.New("signature directory unavailable")

	// ErrLookupMalformed tags signature directory responses that could not
	// be decoded into the expected shape.
	ErrLookupMalformed = errors.New("signature directory response malformed")

	// ErrSignatureSyntax tags signature texts that don't parse. Expected and
	// frequent for directory candidates; the trial loop skips these.
	ErrSignatureSyntax = errors.New("invalid signature syntax")

	// ErrABIUnavailable tags verified-ABI service failures: transport
	// errors, timeouts.
	ErrABIUnavailable = errors.New("verified ABI service unavailable")

	// ErrABIRejected tags verified-ABI requests the service answered but
	// refused: unverified contract, bad API key, rate limit.
	ErrABIRejected = errors.New("verified ABI request rejected")

	// ErrABIMalformed tags fetched ABI documents that could not be parsed.
	ErrABIMalformed = errors.New("verified ABI malformed")

	// ErrFunctionNotFound tags a verified ABI with no function under the
	// requested selector.
	ErrFunctionNotFound = errors.New("function not found in verified ABI")
)

// ExhaustedError is the terminal failure of a decode: every candidate
// signature failed and no verified ABI was available to fall back to.
type ExhaustedError struct {
	Selector Selector
	Tried    int // number of ranked candidates attempted
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf(
		"all %d candidate signatures failed to decode calldata with selector %s",
		e.Tried, e.Selector,
	)
}
