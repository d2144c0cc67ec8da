package decoder_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tranvictor/decipher/decoder"
	"github.com/tranvictor/decipher/util/cache"
	"github.com/tranvictor/decipher/util/explorers"
)

const usdtAddress = "0xdAC17F958D2ee523a2206206994597C13D831ec7"

const erc20ABI = `[
	{"type": "function", "name": "transfer", "inputs": [
		{"name": "dst", "type": "address"},
		{"name": "rawAmount", "type": "uint256"}
	]},
	{"type": "function", "name": "approve", "inputs": [
		{"name": "spender", "type": "address"},
		{"name": "rawAmount", "type": "uint256"}
	]},
	{"type": "event", "name": "Transfer", "inputs": []}
]`

// newABIServer serves an etherscan-style getabi envelope and counts requests.
func newABIServer(t *testing.T, status, result string) (*httptest.Server, *int) {
	t.Helper()
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		resp, err := json.Marshal(map[string]string{
			"status":  status,
			"message": "OK",
			"result":  result,
		})
		if err != nil {
			t.Errorf("marshaling response: %s", err)
		}
		w.Write(resp)
	}))
	t.Cleanup(server.Close)
	return server, &calls
}

func newVerifiedClient(serverURL string, root string) *decoder.VerifiedABIClient {
	return decoder.NewVerifiedABIClient(
		explorers.NewEtherscanLikeExplorer(serverURL, "testkey"),
		cache.NewStore(root),
	)
}

func TestFunctionBySelectorFetchesOnce(t *testing.T) {
	server, calls := newABIServer(t, "1", erc20ABI)
	client := newVerifiedClient(server.URL, t.TempDir())
	sel := decoder.SelectorOf("transfer(address,uint256)")

	desc, err := client.FunctionBySelector(context.Background(), usdtAddress, sel)
	if err != nil {
		t.Fatalf("FunctionBySelector: %s", err)
	}
	if desc.Name != "transfer" || desc.Inputs[0].Name != "dst" {
		t.Errorf("descriptor = %q with first input %q", desc.Name, desc.Inputs[0].Name)
	}
	if *calls != 1 {
		t.Fatalf("explorer asked %d times, want 1", *calls)
	}

	// second resolution is served by the cache
	desc, err = client.FunctionBySelector(context.Background(), usdtAddress, decoder.SelectorOf("approve(address,uint256)"))
	if err != nil {
		t.Fatalf("cached FunctionBySelector: %s", err)
	}
	if desc.Name != "approve" {
		t.Errorf("descriptor = %q, want %q", desc.Name, "approve")
	}
	if *calls != 1 {
		t.Errorf("explorer asked %d times after a cache hit, want 1", *calls)
	}
}

func TestFunctionsServedFromCacheWithoutNetwork(t *testing.T) {
	server, calls := newABIServer(t, "1", erc20ABI)
	root := t.TempDir()

	store := cache.NewStore(root)
	content, err := decoder.MarshalDescriptors([]*decoder.FunctionDescriptor{
		mustParse(t, "transfer(address dst, uint256 rawAmount)"),
	})
	if err != nil {
		t.Fatalf("MarshalDescriptors: %s", err)
	}
	if err := store.Set(usdtAddress, content); err != nil {
		t.Fatalf("Set: %s", err)
	}

	client := newVerifiedClient(server.URL, root)
	descriptors, err := client.Functions(context.Background(), usdtAddress)
	if err != nil {
		t.Fatalf("Functions: %s", err)
	}
	if len(descriptors) != 1 || descriptors[0].Signature != "transfer(address,uint256)" {
		t.Errorf("descriptors = %+v", descriptors)
	}
	if *calls != 0 {
		t.Errorf("explorer asked %d times despite a warm cache, want 0", *calls)
	}
}

func TestCorruptCacheEntryRepaired(t *testing.T) {
	server, calls := newABIServer(t, "1", erc20ABI)
	root := t.TempDir()

	store := cache.NewStore(root)
	if err := store.Set(usdtAddress, "{ not an abi"); err != nil {
		t.Fatalf("Set: %s", err)
	}

	client := newVerifiedClient(server.URL, root)
	descriptors, err := client.Functions(context.Background(), usdtAddress)
	if err != nil {
		t.Fatalf("Functions: %s", err)
	}
	if len(descriptors) != 2 {
		t.Fatalf("got %d descriptors, want 2", len(descriptors))
	}
	if *calls != 1 {
		t.Errorf("explorer asked %d times, want 1", *calls)
	}

	// the refetch must have replaced the corrupt entry
	content, found := store.Get(usdtAddress)
	if !found {
		t.Fatal("cache entry disappeared")
	}
	if _, err := decoder.ParseABI(content); err != nil {
		t.Errorf("cache entry still corrupt: %s", err)
	}
}

func TestUnverifiedContractRejected(t *testing.T) {
	server, _ := newABIServer(t, "0", "Contract source code not verified")
	client := newVerifiedClient(server.URL, t.TempDir())

	_, err := client.FunctionBySelector(
		context.Background(), usdtAddress, decoder.SelectorOf("transfer(address,uint256)"))
	if !errors.Is(err, decoder.ErrABIRejected) {
		t.Fatalf("expected ErrABIRejected, got %v", err)
	}
	if !errors.Is(err, explorers.ErrRejected) {
		t.Errorf("explorer rejection cause lost: %v", err)
	}
}

func TestMalformedABIDocument(t *testing.T) {
	server, _ := newABIServer(t, "1", "oops, not an abi")
	client := newVerifiedClient(server.URL, t.TempDir())

	_, err := client.Functions(context.Background(), usdtAddress)
	if !errors.Is(err, decoder.ErrABIMalformed) {
		t.Fatalf("expected ErrABIMalformed, got %v", err)
	}
}

func TestUnknownSelectorRefetchesBeforeGivingUp(t *testing.T) {
	server, calls := newABIServer(t, "1", erc20ABI)
	client := newVerifiedClient(server.URL, t.TempDir())
	sel := decoder.SelectorOf("mint(address,uint256)")

	_, err := client.FunctionBySelector(context.Background(), usdtAddress, sel)
	if !errors.Is(err, decoder.ErrFunctionNotFound) {
		t.Fatalf("expected ErrFunctionNotFound, got %v", err)
	}
	if *calls != 1 {
		t.Errorf("explorer asked %d times, want 1", *calls)
	}

	// the cached ABI lacks the selector, so the next resolution refetches in
	// case the contract was upgraded since the cache write
	_, err = client.FunctionBySelector(context.Background(), usdtAddress, sel)
	if !errors.Is(err, decoder.ErrFunctionNotFound) {
		t.Fatalf("expected ErrFunctionNotFound, got %v", err)
	}
	if *calls != 2 {
		t.Errorf("explorer asked %d times, want 2", *calls)
	}
}

func TestExplorerUnreachable(t *testing.T) {
	server, _ := newABIServer(t, "1", erc20ABI)
	server.Close()
	client := newVerifiedClient(server.URL, t.TempDir())

	_, err := client.Functions(context.Background(), usdtAddress)
	if !errors.Is(err, decoder.ErrABIUnavailable) {
		t.Fatalf("expected ErrABIUnavailable, got %v", err)
	}
}
