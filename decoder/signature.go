package decoder

import (
	"fmt"
	"strings"
)

// typeAliases maps Solidity shorthand type names to their canonical forms.
// Signatures must be canonicalized before hashing: transfer(address,uint)
// and transfer(address,uint256) denote the same function but hash to
// different selectors.
var typeAliases = map[string]string{
	"uint": "uint256",
	"int":  "int256",
	"byte": "bytes1",
}

// dataLocations are parameter modifiers that show up in human-written
// signatures and are irrelevant to the canonical form.
var dataLocations = map[string]bool{
	"memory":   true,
	"calldata": true,
	"storage":  true,
	"indexed":  true,
	"payable":  true,
}

// param is one parsed parameter declaration.
type param struct {
	elem       string  // canonical elementary type, empty for tuples
	components []param // tuple components when elem is empty
	arrays     string  // array suffixes, e.g. "[2][]"
	name       string  // declared name, may be empty
}

// marshaling renders the parameter in JSON ABI form. Tuple components can't
// stay anonymous there (geth builds struct fields from their names), so
// unnamed nested parameters get positional argN names; unnamed top-level
// parameters keep their empty name.
func (p param) marshaling(position int, nested bool) abiArgumentMarshaling {
	name := p.name
	if name == "" && nested {
		name = fmt.Sprintf("arg%d", position)
	}
	if p.elem != "" {
		return abiArgumentMarshaling{Name: name, Type: p.elem + p.arrays}
	}
	components := make([]abiArgumentMarshaling, 0, len(p.components))
	for i, c := range p.components {
		components = append(components, c.marshaling(i, true))
	}
	return abiArgumentMarshaling{Name: name, Type: "tuple" + p.arrays, Components: components}
}

// ParseSignature parses a human-readable function signature like
//
//	transfer(address,uint256)
//	transfer(address to, uint256 amount)
//	fill((address,uint96)[] orders, bytes data)
//
// into a FunctionDescriptor. Parameter names and data-location keywords are
// tolerated. Type aliases (uint, int, byte) are canonicalized before the
// selector is derived. Anything outside that grammar fails with
// ErrSignatureSyntax.
func ParseSignature(text string) (*FunctionDescriptor, error) {
	name, params, err := parseSignatureText(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSignatureSyntax, err)
	}
	inputs := make([]abiArgumentMarshaling, 0, len(params))
	for i, p := range params {
		inputs = append(inputs, p.marshaling(i, false))
	}
	return descriptorFromFunctionJSON(name, inputs)
}

// parseSignatureText splits "name(params)" and parses the parameter list.
func parseSignatureText(text string) (string, []param, error) {
	text = strings.TrimSpace(text)
	open := strings.Index(text, "(")
	if open < 0 {
		return "", nil, fmt.Errorf("missing parameter list in %q", text)
	}
	name := strings.TrimSpace(text[:open])
	if !isIdentifier(name) {
		return "", nil, fmt.Errorf("invalid function name %q", name)
	}
	if !strings.HasSuffix(text, ")") {
		return "", nil, fmt.Errorf("unterminated parameter list in %q", text)
	}
	params, err := parseParams(text[open+1 : len(text)-1])
	if err != nil {
		return "", nil, err
	}
	return name, params, nil
}

func parseParams(list string) ([]param, error) {
	list = strings.TrimSpace(list)
	if list == "" {
		return nil, nil
	}
	parts, err := splitTopLevel(list)
	if err != nil {
		return nil, err
	}
	params := make([]param, 0, len(parts))
	for _, part := range parts {
		p, err := parseParam(part)
		if err != nil {
			return nil, err
		}
		params = append(params, p)
	}
	return params, nil
}

// splitTopLevel splits a parameter list on commas that are not nested inside
// parentheses, keeping tuple types intact.
func splitTopLevel(params string) ([]string, error) {
	parts := []string{}
	depth := 0
	start := 0
	for i, r := range params {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return nil, fmt.Errorf("unbalanced parentheses in %q", params)
			}
		case ',':
			if depth == 0 {
				parts = append(parts, params[start:i])
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, fmt.Errorf("unbalanced parentheses in %q", params)
	}
	return append(parts, params[start:]), nil
}

// parseParam handles one parameter declaration: a type, optionally followed
// by data-location keywords and a parameter name.
func parseParam(text string) (param, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return param{}, fmt.Errorf("empty parameter")
	}
	if strings.HasPrefix(text, "(") {
		return parseTupleParam(text)
	}
	fields := strings.Fields(text)
	token := fields[0]
	elem := token
	arrays := ""
	if idx := strings.Index(token, "["); idx >= 0 {
		elem = token[:idx]
		arrays = token[idx:]
	}
	if canonical, found := typeAliases[elem]; found {
		elem = canonical
	}
	if !isIdentifier(elem) {
		return param{}, fmt.Errorf("invalid type %q", token)
	}
	if err := validateArraySuffix(arrays, token); err != nil {
		return param{}, err
	}
	name, err := paramName(fields[1:])
	if err != nil {
		return param{}, err
	}
	return param{elem: elem, arrays: arrays, name: name}, nil
}

func parseTupleParam(text string) (param, error) {
	closing := matchingParen(text)
	if closing < 0 {
		return param{}, fmt.Errorf("unbalanced parentheses in %q", text)
	}
	components, err := parseParams(text[1:closing])
	if err != nil {
		return param{}, err
	}
	rest := text[closing+1:]
	arrays := ""
	for strings.HasPrefix(rest, "[") {
		end := strings.Index(rest, "]")
		if end < 0 {
			return param{}, fmt.Errorf("unterminated array suffix in %q", text)
		}
		if !isArraySize(rest[1:end]) {
			return param{}, fmt.Errorf("invalid array size %q in %q", rest[1:end], text)
		}
		arrays += rest[:end+1]
		rest = rest[end+1:]
	}
	name, err := paramName(strings.Fields(rest))
	if err != nil {
		return param{}, err
	}
	return param{components: components, arrays: arrays, name: name}, nil
}

// matchingParen returns the index of the parenthesis closing the one that s
// starts with, or -1.
func matchingParen(s string) int {
	depth := 0
	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// paramName extracts the declared parameter name from the tokens following a
// type, dropping data-location keywords.
func paramName(tokens []string) (string, error) {
	remaining := []string{}
	for _, tok := range tokens {
		if dataLocations[tok] {
			continue
		}
		remaining = append(remaining, tok)
	}
	switch len(remaining) {
	case 0:
		return "", nil
	case 1:
		if !isIdentifier(remaining[0]) {
			return "", fmt.Errorf("invalid parameter name %q", remaining[0])
		}
		return remaining[0], nil
	default:
		return "", fmt.Errorf("unexpected tokens %v after parameter type", remaining)
	}
}

func validateArraySuffix(suffix, token string) error {
	for suffix != "" {
		end := strings.Index(suffix, "]")
		if !strings.HasPrefix(suffix, "[") || end < 0 {
			return fmt.Errorf("invalid array suffix in %q", token)
		}
		if !isArraySize(suffix[1:end]) {
			return fmt.Errorf("invalid array size %q in %q", suffix[1:end], token)
		}
		suffix = suffix[end+1:]
	}
	return nil
}

// isArraySize accepts decimal digits or the empty string (dynamic arrays).
func isArraySize(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_', r == '$':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
