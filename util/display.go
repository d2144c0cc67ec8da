package util

import (
	"fmt"

	"github.com/tranvictor/decipher/common"
	"github.com/tranvictor/decipher/decoder"
	"github.com/tranvictor/decipher/ui"
	"github.com/tranvictor/decipher/util/addrbook"
)

// ── Severity helpers ─────────────────────────────────────────────────────────

// StyledAddress wraps a common.Address in a StyledText.
// Known addresses (non-empty, non-"unknown" description) are Success (green);
// unknown ones are Warn (yellow) so they stand out without being alarming.
func StyledAddress(addr common.Address) ui.StyledText {
	text := common.PlainAddress(addr)
	if addr.Desc == "" || addr.Desc == "unknown" {
		return ui.StyledText{Text: text, Severity: ui.SeverityWarn}
	}
	return ui.StyledText{Text: text, Severity: ui.SeveritySuccess}
}

// styledValue wraps a common.Value in a StyledText.
// Address values inherit their severity from StyledAddress; all other values
// are SeverityInfo (plain).
func styledValue(v common.Value) ui.StyledText {
	if v.Kind == common.DisplayAddress && v.Address != nil {
		return StyledAddress(*v.Address)
	}
	return ui.StyledText{Text: common.PlainValue(v), Severity: ui.SeverityInfo}
}

// ── Build phase (pure: no UI side-effects) ──────────────────────────────────

func buildParamDisplay(param common.ParamResult) ParamDisplay {
	d := ParamDisplay{Name: param.Name, Type: param.Type}
	switch {
	case param.Values != nil:
		for _, v := range param.Values {
			d.Values = append(d.Values, styledValue(v))
		}
	case param.Tuples != nil:
		for _, tuple := range param.Tuples {
			td := TupleDisplay{Name: tuple.Name, Type: tuple.Type}
			for _, field := range tuple.Values {
				td.Fields = append(td.Fields, buildParamDisplay(field))
			}
			d.Tuples = append(d.Tuples, td)
		}
	case param.Arrays != nil:
		for _, arr := range param.Arrays {
			d.Arrays = append(d.Arrays, buildParamDisplay(arr))
		}
	}
	return d
}

// BuildDecodeDisplay converts a decode outcome into its view-model. Context
// fields (Input, Hash, Contract, Network, Value) are left for the caller to
// fill in, since only it knows where the calldata came from.
func BuildDecodeDisplay(result *decoder.Result, decodeErr error, resolver addrbook.AddressResolver) *DecodeDisplay {
	if decodeErr != nil {
		return &DecodeDisplay{Error: decodeErr.Error()}
	}
	d := &DecodeDisplay{
		Method:    result.Descriptor.Name,
		Signature: result.Descriptor.Signature,
		Selector:  result.Descriptor.Selector.String(),
		Source:    result.Source.String(),
	}
	for _, p := range DecodeResultToParams(result.Values, resolver) {
		d.Params = append(d.Params, buildParamDisplay(p))
	}
	return d
}

// ── Print phase (reads only from the display struct, colours via u.Style) ────

// paramRows flattens one parameter into [Parameter, Type, Value] table rows.
// Scalars take one row; scalar arrays one row per element; tuples a header
// row followed by indented field rows.
func paramRows(u ui.UI, d ParamDisplay, indent string) [][]string {
	name := indent + d.Name
	switch {
	case d.Values != nil:
		if len(d.Values) == 1 {
			return [][]string{{name, d.Type, u.Style(d.Values[0])}}
		}
		rows := [][]string{}
		for i, v := range d.Values {
			rows = append(rows, []string{fmt.Sprintf("%s[%d]", name, i), d.Type, u.Style(v)})
		}
		return rows
	case d.Tuples != nil:
		rows := [][]string{{name, d.Type, ""}}
		if len(d.Tuples) == 1 {
			for _, field := range d.Tuples[0].Fields {
				rows = append(rows, paramRows(u, field, indent+"  ")...)
			}
			return rows
		}
		for _, tuple := range d.Tuples {
			rows = append(rows, []string{indent + "  " + tuple.Name, tuple.Type, ""})
			for _, field := range tuple.Fields {
				rows = append(rows, paramRows(u, field, indent+"    ")...)
			}
		}
		return rows
	case d.Arrays != nil:
		rows := [][]string{{name, d.Type, ""}}
		for _, arr := range d.Arrays {
			rows = append(rows, paramRows(u, arr, indent+"  ")...)
		}
		return rows
	}
	// a zero-parameter placeholder should never happen, render it visibly
	return [][]string{{name, d.Type, ""}}
}

func printDecodeDisplay(u ui.UI, d *DecodeDisplay) {
	if d.Error != "" {
		u.Section("Decoding failed")
		if d.Input != "" {
			u.KeyValue([][2]string{{"Input", d.Input}})
		}
		u.Error("%s", d.Error)
		return
	}

	u.Section(fmt.Sprintf("Function: %s", d.Method))

	if d.Pending {
		u.Warn("transaction is still pending, its calldata may yet be replaced")
	}

	meta := [][2]string{}
	if d.Hash != "" {
		meta = append(meta, [2]string{"Tx", d.Hash})
	}
	if d.Network != "" {
		meta = append(meta, [2]string{"Network", d.Network})
	}
	if d.Contract != nil {
		meta = append(meta, [2]string{"Contract", u.Style(*d.Contract)})
	}
	if d.Value != "" {
		meta = append(meta, [2]string{"Value", d.Value})
	}
	meta = append(meta,
		[2]string{"Signature", d.Signature},
		[2]string{"Selector", d.Selector},
		[2]string{"Source", d.Source},
	)
	u.KeyValue(meta)

	var rows [][]string
	for _, p := range d.Params {
		rows = append(rows, paramRows(u, p, "")...)
	}
	if len(rows) > 0 {
		u.Table([]string{"Parameter", "Type", "Value"}, rows)
	} else {
		u.Info("no parameters")
	}
}

// ── Public API ───────────────────────────────────────────────────────────────

// DisplayDecode writes a decode view-model to u: a section per input, the
// call metadata as key/value pairs, then one Parameter | Type | Value table
// for all parameters.
func DisplayDecode(u ui.UI, d *DecodeDisplay) {
	printDecodeDisplay(u, d)
}

// DisplayParams builds the view-models for already-converted parameters and
// writes them to u as a single table. Used by callers that decode outside
// the standard pipeline.
func DisplayParams(u ui.UI, params []common.ParamResult) []ParamDisplay {
	displays := []ParamDisplay{}
	var rows [][]string
	for _, p := range params {
		d := buildParamDisplay(p)
		displays = append(displays, d)
		rows = append(rows, paramRows(u, d, "")...)
	}
	if len(rows) > 0 {
		u.Table([]string{"Parameter", "Type", "Value"}, rows)
	}
	return displays
}
