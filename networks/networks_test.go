package networks_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/tranvictor/decipher/networks"
)

func TestGetNetworkByNameAndAlternativeName(t *testing.T) {
	tests := []struct {
		query     string
		wantChain uint64
	}{
		{"mainnet", 1},
		{"eth", 1},
		{"ethereum", 1},
		{"bsc", 56},
		{"binance", 56},
		{"polygon", 137},
		{"arbitrum", 42161},
		{"sepolia", 11155111},
	}
	for _, tc := range tests {
		n, err := networks.GetNetwork(tc.query)
		if err != nil {
			t.Errorf("GetNetwork(%q): %s", tc.query, err)
			continue
		}
		if n.GetChainID() != tc.wantChain {
			t.Errorf("GetNetwork(%q).GetChainID() = %d, want %d", tc.query, n.GetChainID(), tc.wantChain)
		}
	}
}

func TestGetNetworkUnknownName(t *testing.T) {
	_, err := networks.GetNetwork("no-such-chain")
	if !errors.Is(err, networks.ErrNetworkNotFound) {
		t.Errorf("expected ErrNetworkNotFound, got %v", err)
	}
}

func TestGetNetworkByID(t *testing.T) {
	n, err := networks.GetNetworkByID(8453)
	if err != nil {
		t.Fatalf("GetNetworkByID(8453): %s", err)
	}
	if n.GetName() != "base" {
		t.Errorf("GetNetworkByID(8453).GetName() = %q, want %q", n.GetName(), "base")
	}
}

func TestGetSupportedNetworksOrderedByChainID(t *testing.T) {
	all := networks.GetSupportedNetworks()
	if len(all) < 10 {
		t.Fatalf("expected at least 10 supported networks, got %d", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].GetChainID() >= all[i].GetChainID() {
			t.Errorf("networks not ordered by chain id: %d before %d",
				all[i-1].GetChainID(), all[i].GetChainID())
		}
	}
}

func TestSuggestNetworks(t *testing.T) {
	suggestions := networks.SuggestNetworks("mainet")
	if len(suggestions) == 0 {
		t.Fatalf("expected suggestions for %q", "mainet")
	}
	found := false
	for _, s := range suggestions {
		if s == "mainnet" {
			found = true
		}
	}
	if !found {
		t.Errorf("suggestions for %q = %v, want to include %q", "mainet", suggestions, "mainnet")
	}
}

func TestSetNetworkUnknownKeepsCurrent(t *testing.T) {
	before := networks.CurrentNetwork().GetName()
	err := networks.SetNetwork("optimsm")
	if err == nil {
		t.Fatalf("expected error for unknown network name")
	}
	if !strings.Contains(err.Error(), "did you mean") {
		t.Errorf("error should carry suggestions, got: %s", err)
	}
	if got := networks.CurrentNetwork().GetName(); got != before {
		t.Errorf("current network changed to %q on a failed SetNetwork", got)
	}
}

func TestSetNetworkSwitches(t *testing.T) {
	if err := networks.SetNetwork("bsc"); err != nil {
		t.Fatalf("SetNetwork(bsc): %s", err)
	}
	if got := networks.CurrentNetwork().GetChainID(); got != 56 {
		t.Errorf("CurrentNetwork chain id = %d, want 56", got)
	}
	if err := networks.SetNetwork("mainnet"); err != nil {
		t.Fatalf("SetNetwork(mainnet): %s", err)
	}
}

func TestNewNetworkFromJSON(t *testing.T) {
	content := []byte(`{
		"name": "gnosis",
		"alternative_names": ["xdai"],
		"chain_id": 100,
		"native_token_symbol": "XDAI",
		"native_token_decimal": 18,
		"node_variable_name": "GNOSIS_MAINNET_NODE",
		"default_nodes": {"public-gnosis": "https://rpc.gnosischain.com"},
		"block_explorer_api_key_variable_name": "ETHERSCAN_API_KEY",
		"block_explorer_api_url": "https://api.etherscan.io/v2"
	}`)
	n, err := networks.NewNetworkFromJSON(content)
	if err != nil {
		t.Fatalf("NewNetworkFromJSON: %s", err)
	}
	if n.GetName() != "gnosis" {
		t.Errorf("GetName = %q, want gnosis", n.GetName())
	}
	if n.GetChainID() != 100 {
		t.Errorf("GetChainID = %d, want 100", n.GetChainID())
	}
	if n.GetNativeTokenSymbol() != "XDAI" {
		t.Errorf("GetNativeTokenSymbol = %q, want XDAI", n.GetNativeTokenSymbol())
	}
}
