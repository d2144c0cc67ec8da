package networks

import (
	"encoding/json"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"sort"

	"github.com/sahilm/fuzzy"
)

// Insert more Network implementation here to support
// more chains
var supportedNetworks = []Network{
	EthereumMainnet,
	BSCMainnet,
	Matic,
	Avalanche,
	Fantom,
	OptimismMainnet,
	ArbitrumMainnet,
	BaseMainnet,
	ScrollMainnet,
	LineaMainnet,
	Sepolia,
}

var globalSupportedNetworks = newSupportedNetworks()
var ErrNetworkNotFound = fmt.Errorf("network not found")

type networkRegistry struct {
	networks     map[string]Network
	networksByID map[uint64]Network
}

func (n *networkRegistry) getSupportedNetworkNames() []string {
	res := []string{}
	for _, n := range n.networks {
		res = append(res, n.GetName())
		res = append(res, n.GetAlternativeNames()...)
	}
	sort.Strings(res)
	return res
}

func (n *networkRegistry) getNetworkByID(id uint64) (Network, error) {
	res, found := n.networksByID[id]
	if !found {
		return nil, fmt.Errorf("network id %d is not supported", id)
	}
	return res, nil
}

func (n *networkRegistry) getNetwork(name string) (Network, error) {
	res, found := n.networks[name]
	if !found {
		return nil, fmt.Errorf("network name '%s': %w", name, ErrNetworkNotFound)
	}
	return res, nil
}

func newSupportedNetworks() *networkRegistry {
	result := networkRegistry{
		map[string]Network{},
		map[uint64]Network{},
	}
	for _, n := range supportedNetworks {
		if _, found := result.networks[n.GetName()]; found {
			panic(
				fmt.Errorf(
					"network with name or alternative name of '%s' already exists",
					n.GetName(),
				),
			)
		}
		result.networks[n.GetName()] = n
		result.networksByID[n.GetChainID()] = n
		for _, an := range n.GetAlternativeNames() {
			if _, found := result.networks[an]; found {
				panic(
					fmt.Errorf("network with name or alternative name of '%s' already exists", an),
				)
			}
			result.networks[an] = n
		}
	}

	// load custom networks from ~/.decipher/networks/
	customNetworks, err := loadCustomNetworks()
	if err != nil {
		fmt.Printf("WARNING: Failed to load custom networks: %s. Ignore and continue with built-in networks.\n", err)
		return &result
	}

	for _, n := range customNetworks {
		_, nameFound := result.networks[n.GetName()]
		if nameFound {
			fmt.Printf("Network with name '%s' already exists. Using custom network.\n", n.GetName())
		}
		_, idFound := result.networksByID[n.GetChainID()]
		if idFound {
			fmt.Printf("Network with id '%d' already exists. Using custom network.\n", n.GetChainID())
		}
		result.networks[n.GetName()] = n
		result.networksByID[n.GetChainID()] = n
	}
	return &result
}

func loadCustomNetworks() ([]Network, error) {
	usr, err := user.Current()
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}

	customNetworksDir := filepath.Join(usr.HomeDir, ".decipher", "networks")
	files, err := filepath.Glob(filepath.Join(customNetworksDir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to glob between json files in ~/.decipher/networks: %w", err)
	}

	networks := []Network{}

	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read file %s: %w", file, err)
		}

		network, err := NewNetworkFromJSON(content)
		if err != nil {
			fmt.Printf("failed to parse network from file %s: %s. Ignore and continue with other custom networks.\n", file, err)
			continue
		}

		networks = append(networks, network)
	}

	return networks, nil
}

// NewNetworkFromJSON builds an etherscan-backed network from a JSON config,
// used to support chains that are not built in.
func NewNetworkFromJSON(content []byte) (Network, error) {
	networkConfig := GenericEtherscanNetworkConfig{}
	err := json.Unmarshal(content, &networkConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal network config: %w", err)
	}

	return NewGenericEtherscanNetwork(networkConfig), nil
}

// GetSupportedNetworks returns one entry per supported chain, ordered by
// chain id so listings are deterministic.
func GetSupportedNetworks() []Network {
	res := []Network{}
	for _, n := range globalSupportedNetworks.networksByID {
		res = append(res, n)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].GetChainID() < res[j].GetChainID() })
	return res
}

func GetNetwork(name string) (Network, error) {
	return globalSupportedNetworks.getNetwork(name)
}

func GetNetworkByID(id uint64) (Network, error) {
	return globalSupportedNetworks.getNetworkByID(id)
}

func GetSupportedNetworkNames() []string {
	return globalSupportedNetworks.getSupportedNetworkNames()
}

// SuggestNetworks returns up to three supported network names fuzzy matching
// name, best match first. Used for "did you mean" hints on typos.
func SuggestNetworks(name string) []string {
	matches := fuzzy.Find(name, GetSupportedNetworkNames())
	res := []string{}
	for i, m := range matches {
		if i == 3 {
			break
		}
		res = append(res, m.Str)
	}
	return res
}
