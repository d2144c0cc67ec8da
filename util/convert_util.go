package util

import (
	"fmt"
	"reflect"

	"github.com/ethereum/go-ethereum/accounts/abi"
	gethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/tranvictor/decipher/common"
	"github.com/tranvictor/decipher/decoder"
	"github.com/tranvictor/decipher/util/addrbook"
)

// DecodeResultToParams converts decoded calldata values into display-ready
// parameter results, resolving addresses through the given resolver. Unnamed
// parameters get positional param0, param1, ... names.
func DecodeResultToParams(values []decoder.DecodedValue, resolver addrbook.AddressResolver) []common.ParamResult {
	if resolver == nil {
		resolver = addrbook.Map{}
	}
	params := []common.ParamResult{}
	for i, v := range values {
		name := v.Name
		if name == "" {
			name = fmt.Sprintf("param%d", i)
		}
		params = append(params, paramAsResult(name, v.Type, v.Value, resolver))
	}
	return params
}

func paramAsResult(name string, t abi.Type, value interface{}, resolver addrbook.AddressResolver) common.ParamResult {
	switch t.T {
	case abi.TupleTy:
		return common.ParamResult{
			Name:   name,
			Type:   tupleTypeLabel(t),
			Tuples: []common.TupleResult{tupleAsResult(name, t, value, resolver)},
		}
	case abi.SliceTy, abi.ArrayTy:
		if t.Elem.T == abi.TupleTy {
			realVal := reflect.ValueOf(value)
			tuples := []common.TupleResult{}
			for i := 0; i < realVal.Len(); i++ {
				tuples = append(tuples, tupleAsResult(
					fmt.Sprintf("%s[%d]", name, i),
					*t.Elem,
					realVal.Index(i).Interface(),
					resolver,
				))
			}
			return common.ParamResult{Name: name, Type: t.String(), Tuples: tuples}
		}
		if containsTuple(*t.Elem) {
			realVal := reflect.ValueOf(value)
			arrays := []common.ParamResult{}
			for i := 0; i < realVal.Len(); i++ {
				arrays = append(arrays, paramAsResult(
					fmt.Sprintf("%s[%d]", name, i),
					*t.Elem,
					realVal.Index(i).Interface(),
					resolver,
				))
			}
			return common.ParamResult{Name: name, Type: t.String(), Arrays: arrays}
		}
		return common.ParamResult{Name: name, Type: t.String(), Values: paramAsValues(t, value, resolver)}
	default:
		return common.ParamResult{Name: name, Type: t.String(), Values: []common.Value{scalarAsValue(t, value, resolver)}}
	}
}

func tupleAsResult(name string, t abi.Type, value interface{}, resolver addrbook.AddressResolver) common.TupleResult {
	result := common.TupleResult{Name: name, Type: tupleTypeLabel(t)}
	realVal := reflect.Indirect(reflect.ValueOf(value))
	for i, field := range t.TupleElems {
		fieldName := t.TupleRawNames[i]
		if fieldName == "" {
			fieldName = fmt.Sprintf("arg%d", i)
		}
		result.Values = append(result.Values, paramAsResult(
			fieldName,
			*field,
			realVal.Field(i).Interface(),
			resolver,
		))
	}
	return result
}

// paramAsValues flattens a (possibly nested) scalar array into a flat value
// list. Non-array types yield exactly one value.
func paramAsValues(t abi.Type, value interface{}, resolver addrbook.AddressResolver) []common.Value {
	switch t.T {
	case abi.SliceTy, abi.ArrayTy:
		realVal := reflect.ValueOf(value)
		result := []common.Value{}
		for i := 0; i < realVal.Len(); i++ {
			result = append(result, paramAsValues(*t.Elem, realVal.Index(i).Interface(), resolver)...)
		}
		return result
	default:
		return []common.Value{scalarAsValue(t, value, resolver)}
	}
}

func scalarAsValue(t abi.Type, value interface{}, resolver addrbook.AddressResolver) common.Value {
	switch t.T {
	case abi.AddressTy:
		hex := value.(gethcommon.Address).Hex()
		resolved := resolver.Resolve(hex)
		return common.Value{Kind: common.DisplayAddress, Raw: hex, Address: &resolved}
	case abi.IntTy, abi.UintTy:
		return common.Value{Kind: common.DisplayInteger, Raw: fmt.Sprintf("%d", value)}
	case abi.BoolTy:
		return common.Value{Kind: common.DisplayRaw, Raw: fmt.Sprintf("%t", value.(bool))}
	case abi.StringTy:
		return common.Value{Kind: common.DisplayRaw, Raw: value.(string)}
	case abi.BytesTy:
		return common.Value{Kind: common.DisplayRaw, Raw: formatBytes(value.([]byte))}
	case abi.FixedBytesTy, abi.FunctionTy:
		word := make([]byte, reflect.TypeOf(value).Size())
		reflect.Copy(reflect.ValueOf(word), reflect.ValueOf(value))
		return common.Value{Kind: common.DisplayRaw, Raw: hexutil.Encode(word)}
	case abi.HashTy:
		return common.Value{Kind: common.DisplayRaw, Raw: value.(gethcommon.Hash).Hex()}
	default:
		return common.Value{Kind: common.DisplayRaw, Raw: fmt.Sprintf("%v", value)}
	}
}

// formatBytes renders a dynamic bytes value, truncating anything longer than
// 32 bytes so an embedded payload doesn't flood the table.
func formatBytes(b []byte) string {
	if len(b) <= 32 {
		return hexutil.Encode(b)
	}
	return fmt.Sprintf("%s... (%d bytes)", hexutil.Encode(b[:32]), len(b))
}

// containsTuple reports whether the base element type behind any number of
// array layers is a tuple.
func containsTuple(t abi.Type) bool {
	for t.T == abi.SliceTy || t.T == abi.ArrayTy {
		t = *t.Elem
	}
	return t.T == abi.TupleTy
}

// tupleTypeLabel prefers the struct name from the ABI's internalType when
// the document carried one; signatures parsed from text fall back to the
// positional (type,type,...) rendering.
func tupleTypeLabel(t abi.Type) string {
	if t.TupleRawName != "" {
		return t.TupleRawName
	}
	return t.String()
}
