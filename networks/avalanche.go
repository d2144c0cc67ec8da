package networks

var Avalanche Network = NewAvalanche()

type avalanche struct {
	*GenericEtherscanNetwork
}

func NewAvalanche() *avalanche {
	return &avalanche{
		GenericEtherscanNetwork: NewGenericEtherscanNetwork(GenericEtherscanNetworkConfig{
			Name:               "avalanche",
			AlternativeNames:   []string{"avax"},
			ChainID:            43114,
			NativeTokenSymbol:  "AVAX",
			NativeTokenDecimal: 18,
			NodeVariableName:   "AVALANCHE_MAINNET_NODE",
			DefaultNodes: map[string]string{
				"public-avalanche": "https://api.avax.network/ext/bc/C/rpc",
			},
			BlockExplorerAPIKeyVariableName: "ETHERSCAN_API_KEY",
			BlockExplorerAPIURL:             "https://api.etherscan.io/v2",
		}),
	}
}
