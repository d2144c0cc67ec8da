package networks

var ArbitrumMainnet Network = NewArbitrumMainnet()

type arbitrumMainnet struct {
	*GenericEtherscanNetwork
}

func NewArbitrumMainnet() *arbitrumMainnet {
	return &arbitrumMainnet{
		GenericEtherscanNetwork: NewGenericEtherscanNetwork(GenericEtherscanNetworkConfig{
			Name:               "arbitrum",
			ChainID:            42161,
			NativeTokenSymbol:  "ETH",
			NativeTokenDecimal: 18,
			NodeVariableName:   "ARBITRUM_MAINNET_NODE",
			DefaultNodes: map[string]string{
				"public-arbitrum": "https://arb1.arbitrum.io/rpc",
			},
			BlockExplorerAPIKeyVariableName: "ETHERSCAN_API_KEY",
			BlockExplorerAPIURL:             "https://api.etherscan.io/v2",
		}),
	}
}
