package common

// DisplayKind classifies how a decoded ABI value should be rendered by the
// display layer. Producers (the value converter) choose the kind from the
// ABI type; consumers (printer, display) never re-inspect ABI types.
type DisplayKind uint8

const (
	DisplayRaw     DisplayKind = iota // strings, bools, hashes, hex bytes: rendered verbatim
	DisplayAddress                    // 20-byte addresses: annotated via the address book
	DisplayInteger                    // uint/int of any width: digit-grouped for humans
)

// Address pairs a raw hex address with its address-book annotation. Decimal
// is non-zero only for known ERC20 token contracts so the display layer can
// render "USDC - 6" style suffixes.
type Address struct {
	Address string
	Desc    string
	Decimal int64
}

// Value is a single decoded scalar. Raw always carries the canonical text
// form (decimal for integers, 0x-hex for bytes, hex address for addresses);
// Address is set only when Kind == DisplayAddress.
type Value struct {
	Kind    DisplayKind
	Raw     string
	Address *Address
}

// TupleResult is one struct/tuple instance with its decoded fields.
type TupleResult struct {
	Name   string
	Type   string
	Values []ParamResult
}

// ParamResult is the decoded form of a single ABI parameter. Exactly one of
// Values, Tuples, Arrays is populated: scalars (including scalar arrays)
// land in Values, tuples and tuple arrays in Tuples, arrays of complex
// elements in Arrays.
type ParamResult struct {
	Name   string
	Type   string
	Values []Value
	Tuples []TupleResult
	Arrays []ParamResult
}
