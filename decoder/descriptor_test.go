package decoder_test

import (
	"errors"
	"math/big"
	"strings"
	"testing"

	gethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/tranvictor/decipher/decoder"
)

const transferArgsHex = "0x" +
	"0000000000000000000000000742d35cc6634c0532925a3b844bc9e7595f0beb" +
	"00000000000000000000000000000000000000000000000000000000000f4240"

func mustParse(t *testing.T, text string) *decoder.FunctionDescriptor {
	t.Helper()
	desc, err := decoder.ParseSignature(text)
	if err != nil {
		t.Fatalf("ParseSignature(%q): %s", text, err)
	}
	return desc
}

func TestDecodeArgs(t *testing.T) {
	desc := mustParse(t, "transfer(address to, uint256 amount)")
	values, err := desc.DecodeArgs(hexutil.MustDecode(transferArgsHex))
	if err != nil {
		t.Fatalf("DecodeArgs: %s", err)
	}
	if len(values) != 2 {
		t.Fatalf("decoded %d values, want 2", len(values))
	}
	if values[0].Name != "to" || values[1].Name != "amount" {
		t.Errorf("value names = %q, %q", values[0].Name, values[1].Name)
	}
	to, ok := values[0].Value.(gethcommon.Address)
	if !ok {
		t.Fatalf("first value is %T, want common.Address", values[0].Value)
	}
	if to != gethcommon.HexToAddress("0x742d35Cc6634C0532925a3b844Bc9e7595f0bEb") {
		t.Errorf("to = %s", to.Hex())
	}
	amount, ok := values[1].Value.(*big.Int)
	if !ok {
		t.Fatalf("second value is %T, want *big.Int", values[1].Value)
	}
	if amount.Cmp(big.NewInt(1000000)) != 0 {
		t.Errorf("amount = %s, want 1000000", amount)
	}
}

func TestDecodeArgsRejectsTruncatedRegion(t *testing.T) {
	desc := mustParse(t, "transfer(address,uint256)")
	onlyOneWord := hexutil.MustDecode(transferArgsHex)[:32]
	if _, err := desc.DecodeArgs(onlyOneWord); err == nil {
		t.Error("expected an error for a single-word parameter region")
	}
}

func TestDecodeArgsRejectsUnalignedRegion(t *testing.T) {
	desc := mustParse(t, "transfer(address,uint256)")
	_, err := desc.DecodeArgs(hexutil.MustDecode(transferArgsHex)[:63])
	if err == nil || !strings.Contains(err.Error(), "multiple of 32") {
		t.Errorf("expected a 32-byte alignment error, got %v", err)
	}
}

func TestDecodeArgsRejectsExtraWords(t *testing.T) {
	desc := mustParse(t, "transfer(address,uint256)")
	stuffed := append(hexutil.MustDecode(transferArgsHex), make([]byte, 32)...)
	_, err := desc.DecodeArgs(stuffed)
	if err == nil || !strings.Contains(err.Error(), "extra bytes") {
		t.Errorf("expected an extra-bytes error, got %v", err)
	}
}

func TestDecodeArgsDynamicRoundTrip(t *testing.T) {
	desc := mustParse(t, "sweep(uint256[] amounts, address to)")
	packed, err := desc.Inputs.PackValues([]interface{}{
		[]*big.Int{big.NewInt(5), big.NewInt(42)},
		gethcommon.HexToAddress("0x742d35Cc6634C0532925a3b844Bc9e7595f0bEb"),
	})
	if err != nil {
		t.Fatalf("PackValues: %s", err)
	}
	values, err := desc.DecodeArgs(packed)
	if err != nil {
		t.Fatalf("DecodeArgs: %s", err)
	}
	amounts, ok := values[0].Value.([]*big.Int)
	if !ok || len(amounts) != 2 || amounts[1].Cmp(big.NewInt(42)) != 0 {
		t.Errorf("amounts = %v", values[0].Value)
	}
}

func TestMarshalParseRoundTrip(t *testing.T) {
	descriptors := []*decoder.FunctionDescriptor{
		mustParse(t, "transfer(address to, uint256 amount)"),
		mustParse(t, "fill((address maker, uint96 value)[] orders, bytes data)"),
	}
	content, err := decoder.MarshalDescriptors(descriptors)
	if err != nil {
		t.Fatalf("MarshalDescriptors: %s", err)
	}
	if !strings.Contains(content, `"type": "function"`) {
		t.Errorf("marshaled document lacks function entries:\n%s", content)
	}

	parsed, err := decoder.ParseABI(content)
	if err != nil {
		t.Fatalf("ParseABI: %s", err)
	}
	if len(parsed) != 2 {
		t.Fatalf("reparsed %d descriptors, want 2", len(parsed))
	}
	// ParseABI orders by signature, fill(...) sorts before transfer(...)
	if parsed[0].Signature != "fill((address,uint96)[],bytes)" {
		t.Errorf("first signature = %q", parsed[0].Signature)
	}
	if parsed[0].Inputs[0].Name != "orders" {
		t.Errorf("first input named %q, want %q", parsed[0].Inputs[0].Name, "orders")
	}
	if parsed[1].Signature != "transfer(address,uint256)" {
		t.Errorf("second signature = %q", parsed[1].Signature)
	}
	if parsed[1].Selector != decoder.SelectorOf("transfer(address,uint256)") {
		t.Errorf("second selector = %s", parsed[1].Selector)
	}
}

func TestParseABIKeepsFunctionsOnly(t *testing.T) {
	abiJSON := `[
		{"type": "constructor", "inputs": [{"name": "owner", "type": "address"}]},
		{"type": "event", "name": "Transfer", "inputs": []},
		{"type": "function", "name": "transfer", "inputs": [
			{"name": "to", "type": "address"},
			{"name": "amount", "type": "uint256"}
		]},
		{"type": "function", "name": "balanceOf", "stateMutability": "view",
			"inputs": [{"name": "owner", "type": "address"}],
			"outputs": [{"name": "", "type": "uint256"}]}
	]`
	descriptors, err := decoder.ParseABI(abiJSON)
	if err != nil {
		t.Fatalf("ParseABI: %s", err)
	}
	if len(descriptors) != 2 {
		t.Fatalf("parsed %d descriptors, want 2", len(descriptors))
	}
	if descriptors[0].Signature != "balanceOf(address)" || descriptors[1].Signature != "transfer(address,uint256)" {
		t.Errorf("signatures = %q, %q", descriptors[0].Signature, descriptors[1].Signature)
	}
	if descriptors[0].Selector != (decoder.Selector{0x70, 0xa0, 0x82, 0x31}) {
		t.Errorf("balanceOf selector = %s", descriptors[0].Selector)
	}
}

func TestParseABIMalformed(t *testing.T) {
	if _, err := decoder.ParseABI("oops, not json"); !errors.Is(err, decoder.ErrABIMalformed) {
		t.Errorf("expected ErrABIMalformed, got %v", err)
	}
}
