package decoder

import (
	"context"
	"strings"
	"sync"

	"github.com/tranvictor/decipher/common"
)

// SignatureSource yields candidate signature texts for a selector.
// fourbyte.Client is the production implementation.
type SignatureSource interface {
	LookupSelector(ctx context.Context, sel Selector) ([]string, error)
}

// ABISource yields the descriptor of a contract function by selector.
// VerifiedABIClient is the production implementation.
type ABISource interface {
	FunctionBySelector(ctx context.Context, address string, sel Selector) (*FunctionDescriptor, error)
}

// wellKnownNames are the method families that dominate real calldata.
// Candidates bearing one of these exact names are tried before the rest, so
// a colliding junk entry can't shadow an ERC-20 transfer.
var wellKnownNames = []string{"transfer", "approve", "transferFrom", "mint", "burn", "swap"}

// Decoder resolves calldata through the tiered pipeline: ranked signature
// directory candidates first, then the contract's verified ABI when one is
// reachable.
//
// A Decoder memoizes directory answers per selector, so a batch decoding
// many calls to the same function hits the directory once. Safe for
// concurrent use.
type Decoder struct {
	directory SignatureSource
	abis      ABISource // nil disables the verified-ABI fallback

	mu   sync.RWMutex
	memo map[Selector][]string
}

// NewDecoder builds a Decoder on the given sources. abis may be nil, which
// disables the verified-ABI fallback entirely.
func NewDecoder(directory SignatureSource, abis ABISource) *Decoder {
	return &Decoder{
		directory: directory,
		abis:      abis,
		memo:      map[Selector][]string{},
	}
}

// Decode resolves calldata into a decoded function call. contract is the
// destination address; it may be empty when unknown, in which case only the
// signature directory tier runs.
//
// The first ranked candidate that parses, matches the extracted selector,
// and structurally decodes the parameter bytes wins. Candidates that fail
// any of those steps are skipped silently; when all of them fail, the
// verified ABI of the contract gets one attempt, whose outcome (good or bad)
// is final.
func (d *Decoder) Decode(ctx context.Context, calldata []byte, contract string) (*Result, error) {
	sel, err := ExtractSelector(calldata)
	if err != nil {
		return nil, err
	}
	argdata := calldata[4:]

	canFallback := d.abis != nil && contract != ""

	candidates, err := d.candidatesFor(ctx, sel)
	if err != nil {
		if !canFallback {
			return nil, err
		}
		// the fallback path doesn't depend on the directory, keep going
		common.DebugPrintf("signature lookup for %s failed: %s\n", sel, err)
		candidates = nil
	}

	ranked := rankCandidates(candidates)
	for _, text := range ranked {
		descriptor, err := ParseSignature(text)
		if err != nil {
			// junk entries are routine in a crowd-sourced database
			common.DebugPrintf("skipping candidate %q: %s\n", text, err)
			continue
		}
		if descriptor.Selector != sel {
			common.DebugPrintf("skipping candidate %q: selector %s doesn't match %s\n",
				text, descriptor.Selector, sel)
			continue
		}
		values, err := descriptor.DecodeArgs(argdata)
		if err != nil {
			common.DebugPrintf("skipping candidate %q: %s\n", text, err)
			continue
		}
		return &Result{
			Descriptor: descriptor,
			Values:     values,
			Source:     SourceDirectory,
			Candidates: len(ranked),
		}, nil
	}

	if canFallback {
		descriptor, err := d.abis.FunctionBySelector(ctx, contract, sel)
		if err != nil {
			return nil, err
		}
		values, err := descriptor.DecodeArgs(argdata)
		if err != nil {
			return nil, err
		}
		return &Result{
			Descriptor: descriptor,
			Values:     values,
			Source:     SourceVerifiedABI,
			Candidates: len(ranked),
		}, nil
	}

	return nil, &ExhaustedError{Selector: sel, Tried: len(ranked)}
}

// candidatesFor serves the selector's candidate list from the memo, asking
// the directory only on the first request.
func (d *Decoder) candidatesFor(ctx context.Context, sel Selector) ([]string, error) {
	d.mu.RLock()
	cached, found := d.memo[sel]
	d.mu.RUnlock()
	if found {
		return cached, nil
	}

	texts, err := d.directory.LookupSelector(ctx, sel)
	if err != nil {
		return nil, err
	}

	d.mu.Lock()
	d.memo[sel] = texts
	d.mu.Unlock()
	return texts, nil
}

// candidateName returns the function name of a candidate signature text.
func candidateName(text string) string {
	if idx := strings.Index(text, "("); idx >= 0 {
		return strings.TrimSpace(text[:idx])
	}
	return strings.TrimSpace(text)
}

func isWellKnownName(name string) bool {
	for _, known := range wellKnownNames {
		if name == known {
			return true
		}
	}
	return false
}

// rankCandidates stable-partitions candidates: well-known method names
// first, everything else after, preserving directory order within each
// group.
func rankCandidates(candidates []string) []string {
	preferred := []string{}
	rest := []string{}
	for _, c := range candidates {
		if isWellKnownName(candidateName(c)) {
			preferred = append(preferred, c)
		} else {
			rest = append(rest, c)
		}
	}
	return append(preferred, rest...)
}
