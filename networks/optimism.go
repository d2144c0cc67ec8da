package networks

var OptimismMainnet Network = NewOptimismMainnet()

type optimismMainnet struct {
	*GenericEtherscanNetwork
}

func NewOptimismMainnet() *optimismMainnet {
	return &optimismMainnet{
		GenericEtherscanNetwork: NewGenericEtherscanNetwork(GenericEtherscanNetworkConfig{
			Name:               "optimism",
			ChainID:            10,
			NativeTokenSymbol:  "ETH",
			NativeTokenDecimal: 18,
			NodeVariableName:   "OPTIMISM_MAINNET_NODE",
			DefaultNodes: map[string]string{
				"public-optimism": "https://mainnet.optimism.io",
			},
			BlockExplorerAPIKeyVariableName: "ETHERSCAN_API_KEY",
			BlockExplorerAPIURL:             "https://api.etherscan.io/v2",
		}),
	}
}
