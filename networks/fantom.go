package networks

var Fantom Network = NewFantom()

type fantom struct {
	*GenericEtherscanNetwork
}

func NewFantom() *fantom {
	return &fantom{
		GenericEtherscanNetwork: NewGenericEtherscanNetwork(GenericEtherscanNetworkConfig{
			Name:               "fantom",
			AlternativeNames:   []string{"ftm"},
			ChainID:            250,
			NativeTokenSymbol:  "FTM",
			NativeTokenDecimal: 18,
			NodeVariableName:   "FANTOM_MAINNET_NODE",
			DefaultNodes: map[string]string{
				"public-fantom": "https://rpc.ftm.tools",
			},
			BlockExplorerAPIKeyVariableName: "ETHERSCAN_API_KEY",
			BlockExplorerAPIURL:             "https://api.etherscan.io/v2",
		}),
	}
}
