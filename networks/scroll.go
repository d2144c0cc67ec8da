package networks

var ScrollMainnet Network = NewScrollMainnet()

type scrollMainnet struct {
	*GenericEtherscanNetwork
}

func NewScrollMainnet() *scrollMainnet {
	return &scrollMainnet{
		GenericEtherscanNetwork: NewGenericEtherscanNetwork(GenericEtherscanNetworkConfig{
			Name:               "scroll",
			AlternativeNames:   []string{},
			ChainID:            534352,
			NativeTokenSymbol:  "ETH",
			NativeTokenDecimal: 18,
			NodeVariableName:   "SCROLL_MAINNET_NODE",
			DefaultNodes: map[string]string{
				"public-scroll": "https://rpc.scroll.io",
			},
			BlockExplorerAPIKeyVariableName: "ETHERSCAN_API_KEY",
			BlockExplorerAPIURL:             "https://api.etherscan.io/v2",
		}),
	}
}
