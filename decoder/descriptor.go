package decoder

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// FunctionDescriptor is a parsed function: its name, its ordered parameter
// list, and the selector derived from its canonical signature. A descriptor
// only ever decodes calldata whose extracted selector equals the derived one.
type FunctionDescriptor struct {
	Name      string        // bare function name, e.g. "transfer"
	Inputs    abi.Arguments // declared parameters in order
	Signature string        // canonical signature, e.g. "transfer(address,uint256)"
	Selector  Selector      // first 4 bytes of keccak256(Signature)
}

// DescriptorFromMethod builds a descriptor from one method of a parsed
// contract ABI.
func DescriptorFromMethod(m abi.Method) *FunctionDescriptor {
	var sel Selector
	copy(sel[:], m.ID)
	return &FunctionDescriptor{
		Name:      m.RawName,
		Inputs:    m.Inputs,
		Signature: m.Sig,
		Selector:  sel,
	}
}

// abiArgumentMarshaling and abiFunctionMarshaling are the JSON ABI shapes
// this package emits, for cache files and for the reparse below. geth's own
// marshaling structs carry no JSON tags and would serialize with capitalized
// keys.
type abiArgumentMarshaling struct {
	Name       string                  `json:"name"`
	Type       string                  `json:"type"`
	Components []abiArgumentMarshaling `json:"components,omitempty"`
}

type abiFunctionMarshaling struct {
	Type   string                  `json:"type"`
	Name   string                  `json:"name"`
	Inputs []abiArgumentMarshaling `json:"inputs"`
}

// descriptorFromFunctionJSON turns a function's name and parameter list into
// a descriptor by round-tripping them through a single-function JSON ABI
// document, which is where geth resolves the declared types.
func descriptorFromFunctionJSON(name string, inputs []abiArgumentMarshaling) (*FunctionDescriptor, error) {
	abidata, err := json.Marshal([]abiFunctionMarshaling{{Type: "function", Name: name, Inputs: inputs}})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSignatureSyntax, err)
	}
	contractABI, err := abi.JSON(bytes.NewReader(abidata))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSignatureSyntax, err)
	}
	method, found := contractABI.Methods[name]
	if !found {
		return nil, fmt.Errorf("%w: no method %q after reparse", ErrSignatureSyntax, name)
	}
	return DescriptorFromMethod(method), nil
}

// DecodeArgs decodes the parameter region of calldata (everything after the
// selector) against the declared inputs. The decoded values are re-encoded
// and compared byte for byte with the input, which rejects encodings stuffed
// with extra bytes as well as truncated ones.
func (d *FunctionDescriptor) DecodeArgs(argdata []byte) ([]DecodedValue, error) {
	if len(argdata)%32 != 0 {
		return nil, fmt.Errorf(
			"invalid calldata for %s: parameter region should be a multiple of 32 bytes (was %d)",
			d.Signature, len(argdata),
		)
	}
	values, err := d.Inputs.UnpackValues(argdata)
	if err != nil {
		return nil, fmt.Errorf("couldn't decode parameters as %s: %w", d.Signature, err)
	}
	encoded, err := d.Inputs.PackValues(values)
	if err != nil {
		return nil, fmt.Errorf("couldn't re-encode parameters of %s: %w", d.Signature, err)
	}
	if !bytes.Equal(encoded, argdata) {
		return nil, fmt.Errorf("calldata carries extra bytes beyond the parameters of %s", d.Signature)
	}
	res := make([]DecodedValue, 0, len(d.Inputs))
	for i, input := range d.Inputs {
		res = append(res, DecodedValue{Name: input.Name, Type: input.Type, Value: values[i]})
	}
	return res, nil
}

// ParseABI parses a JSON ABI document, as served by block explorers or
// stored in the cache, into descriptors for its functions, ordered by
// signature so listings and cache files are deterministic.
func ParseABI(abiJSON string) ([]*FunctionDescriptor, error) {
	contractABI, err := abi.JSON(strings.NewReader(abiJSON))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrABIMalformed, err)
	}
	descriptors := []*FunctionDescriptor{}
	for _, m := range contractABI.Methods {
		descriptors = append(descriptors, DescriptorFromMethod(m))
	}
	sort.Slice(descriptors, func(i, j int) bool {
		return descriptors[i].Signature < descriptors[j].Signature
	})
	return descriptors, nil
}

// MarshalDescriptors serializes descriptors as a standard JSON ABI array,
// functions only, indent-formatted so cache files are readable by hand.
func MarshalDescriptors(descriptors []*FunctionDescriptor) (string, error) {
	functions := make([]abiFunctionMarshaling, 0, len(descriptors))
	for _, d := range descriptors {
		inputs := make([]abiArgumentMarshaling, 0, len(d.Inputs))
		for _, input := range d.Inputs {
			inputs = append(inputs, typeToMarshaling(input.Name, input.Type))
		}
		functions = append(functions, abiFunctionMarshaling{
			Type:   "function",
			Name:   d.Name,
			Inputs: inputs,
		})
	}
	content, err := json.MarshalIndent(functions, "", "  ")
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// typeToMarshaling converts a resolved abi.Type back into its JSON ABI
// form. Tuples need the recursive treatment: their JSON type is "tuple"
// plus array suffixes, with element types listed as components.
func typeToMarshaling(name string, t abi.Type) abiArgumentMarshaling {
	suffix := ""
	elem := t
	for elem.T == abi.SliceTy || elem.T == abi.ArrayTy {
		if elem.T == abi.SliceTy {
			suffix = "[]" + suffix
		} else {
			suffix = fmt.Sprintf("[%d]", elem.Size) + suffix
		}
		elem = *elem.Elem
	}
	if elem.T == abi.TupleTy {
		components := make([]abiArgumentMarshaling, 0, len(elem.TupleElems))
		for i, sub := range elem.TupleElems {
			componentName := elem.TupleRawNames[i]
			if componentName == "" {
				componentName = fmt.Sprintf("arg%d", i)
			}
			components = append(components, typeToMarshaling(componentName, *sub))
		}
		return abiArgumentMarshaling{
			Name:       name,
			Type:       "tuple" + suffix,
			Components: components,
		}
	}
	return abiArgumentMarshaling{Name: name, Type: t.String()}
}
