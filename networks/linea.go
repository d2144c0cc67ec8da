package networks

var LineaMainnet Network = NewLineaMainnet()

type lineaMainnet struct {
	*GenericEtherscanNetwork
}

func NewLineaMainnet() *lineaMainnet {
	return &lineaMainnet{
		GenericEtherscanNetwork: NewGenericEtherscanNetwork(GenericEtherscanNetworkConfig{
			Name:               "linea",
			AlternativeNames:   []string{},
			ChainID:            59144,
			NativeTokenSymbol:  "ETH",
			NativeTokenDecimal: 18,
			NodeVariableName:   "LINEA_MAINNET_NODE",
			DefaultNodes: map[string]string{
				"public-linea": "https://rpc.linea.build",
			},
			BlockExplorerAPIKeyVariableName: "ETHERSCAN_API_KEY",
			BlockExplorerAPIURL:             "https://api.etherscan.io/v2",
		}),
	}
}
