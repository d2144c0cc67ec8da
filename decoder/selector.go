package decoder

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"golang.org/x/crypto/sha3"
)

// Selector is the first 4 bytes of the Keccak256 hash of a function's
// canonical signature. It is what calldata starts with and what signature
// databases are keyed on.
type Selector [4]byte

// String renders the selector as 0x-prefixed hex, e.g. "0xa9059cbb".
func (s Selector) String() string {
	return hexutil.Encode(s[:])
}

// SelectorOf derives the selector of a canonical signature text.
func SelectorOf(canonical string) Selector {
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(canonical))
	var sel Selector
	copy(sel[:], h.Sum(nil)[:4])
	return sel
}

// ExtractSelector returns the leading 4-byte selector of calldata.
// Calldata shorter than 4 bytes carries no selector.
func ExtractSelector(data []byte) (Selector, error) {
	if len(data) < 4 {
		return Selector{}, fmt.Errorf(
			"%w: got %d bytes, need at least 4 for a selector",
			ErrMalformedCalldata, len(data),
		)
	}
	var sel Selector
	copy(sel[:], data[:4])
	return sel, nil
}
