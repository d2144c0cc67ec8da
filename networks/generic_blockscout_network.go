package networks

import (
	"os"
	"strings"

	"github.com/tranvictor/decipher/util/explorers"
)

type GenericBlockscoutNetworkConfig struct {
	Name                            string            `json:"name"`
	AlternativeNames                []string          `json:"alternative_names"`
	ChainID                         uint64            `json:"chain_id"`
	NativeTokenSymbol               string            `json:"native_token_symbol"`
	NativeTokenDecimal              uint64            `json:"native_token_decimal"`
	NodeVariableName                string            `json:"node_variable_name"`
	DefaultNodes                    map[string]string `json:"default_nodes"`
	BlockExplorerAPIKeyVariableName string            `json:"block_explorer_api_key_variable_name"`
	BlockExplorerAPIURL             string            `json:"block_explorer_api_url"`
}

// GenericBlockscoutNetwork is a generic implementation of a network whose
// official explorer runs Blockscout instead of an Etherscan deployment.
type GenericBlockscoutNetwork struct {
	*explorers.BlockscoutExplorer
	config GenericBlockscoutNetworkConfig
}

func NewGenericBlockscoutNetwork(config GenericBlockscoutNetworkConfig) *GenericBlockscoutNetwork {
	return &GenericBlockscoutNetwork{
		BlockscoutExplorer: explorers.NewBlockscoutExplorer(
			config.BlockExplorerAPIURL,
			strings.Trim(os.Getenv(config.BlockExplorerAPIKeyVariableName), " "),
		),
		config: config,
	}
}

func (gn *GenericBlockscoutNetwork) GetName() string {
	return gn.config.Name
}

func (gn *GenericBlockscoutNetwork) GetChainID() uint64 {
	return gn.config.ChainID
}

func (gn *GenericBlockscoutNetwork) GetAlternativeNames() []string {
	return gn.config.AlternativeNames
}

func (gn *GenericBlockscoutNetwork) GetNativeTokenSymbol() string {
	return gn.config.NativeTokenSymbol
}

func (gn *GenericBlockscoutNetwork) GetNativeTokenDecimal() uint64 {
	return gn.config.NativeTokenDecimal
}

func (gn *GenericBlockscoutNetwork) GetNodeVariableName() string {
	return gn.config.NodeVariableName
}

func (gn *GenericBlockscoutNetwork) GetDefaultNodes() map[string]string {
	return gn.config.DefaultNodes
}

func (gn *GenericBlockscoutNetwork) GetBlockExplorerAPIKeyVariableName() string {
	return gn.config.BlockExplorerAPIKeyVariableName
}

func (gn *GenericBlockscoutNetwork) GetBlockExplorerAPIURL() string {
	return gn.config.BlockExplorerAPIURL
}

func (gn *GenericBlockscoutNetwork) SetBlockExplorerAPIKey(key string) {
	gn.BlockscoutExplorer.APIKey = key
}
