package util

import "github.com/tranvictor/decipher/ui"

// ParamDisplay is the human-readable view-model for a single decoded ABI
// parameter. Each value is a StyledText: the plain text serializes cleanly
// to JSON while the Severity annotation drives terminal coloring via u.Style.
type ParamDisplay struct {
	Name   string          `json:"name"`
	Type   string          `json:"type"`
	Values []ui.StyledText `json:"values,omitempty"` // serializes as []string
	Tuples []TupleDisplay  `json:"tuples,omitempty"`
	Arrays []ParamDisplay  `json:"arrays,omitempty"`
}

// TupleDisplay represents one struct/tuple instance with its decoded fields.
type TupleDisplay struct {
	Name   string         `json:"name"`
	Type   string         `json:"type"`
	Fields []ParamDisplay `json:"fields"`
}

// DecodeDisplay is the complete human-readable view-model for one decoded
// input. StyledText fields carry Severity annotations used only by the
// terminal print phase; JSON consumers receive clean plain strings.
type DecodeDisplay struct {
	Input   string `json:"input"`             // the tx hash or raw calldata as the user gave it
	Hash    string `json:"hash,omitempty"`    // set when the input was a transaction hash
	Network string `json:"network,omitempty"` // network the transaction was fetched from

	Contract *ui.StyledText `json:"contract,omitempty"` // destination contract, when known
	Value    string         `json:"value,omitempty"`    // native token amount, tx inputs only
	Pending  bool           `json:"pending,omitempty"`  // transaction not mined yet

	Method    string         `json:"method,omitempty"`
	Signature string         `json:"signature,omitempty"`
	Selector  string         `json:"selector,omitempty"`
	Source    string         `json:"source,omitempty"` // "signature directory" or "verified ABI"
	Params    []ParamDisplay `json:"params,omitempty"`
	Error     string         `json:"error,omitempty"`
}
