package decoder

import (
	"github.com/ethereum/go-ethereum/accounts/abi"
)

// DecodedValue is one decoded parameter: its declared name (may be empty),
// its resolved type, and the native Go value produced for it, e.g.
// common.Address, *big.Int, []byte, bool, slices, anonymous tuple structs.
type DecodedValue struct {
	Name  string
	Type  abi.Type
	Value interface{}
}

// Source identifies which tier of the pipeline produced the winning
// descriptor.
type Source uint8

const (
	// SourceDirectory means a crowd-sourced signature database candidate won.
	SourceDirectory Source = iota
	// SourceVerifiedABI means the contract's verified ABI resolved the call.
	SourceVerifiedABI
)

func (s Source) String() string {
	switch s {
	case SourceVerifiedABI:
		return "verified ABI"
	default:
		return "signature directory"
	}
}

// Result is a successful decode: the winning descriptor, the decoded values
// positionally aligned with its parameters, which tier produced it, and how
// many ranked directory candidates were considered along the way.
type Result struct {
	Descriptor *FunctionDescriptor
	Values     []DecodedValue
	Source     Source
	Candidates int
}
