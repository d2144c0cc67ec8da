package networks

var Matic Network = NewMatic()

type matic struct {
	*GenericEtherscanNetwork
}

func NewMatic() *matic {
	return &matic{
		GenericEtherscanNetwork: NewGenericEtherscanNetwork(GenericEtherscanNetworkConfig{
			Name:               "matic",
			AlternativeNames:   []string{"polygon"},
			ChainID:            137,
			NativeTokenSymbol:  "POL",
			NativeTokenDecimal: 18,
			NodeVariableName:   "MATIC_MAINNET_NODE",
			DefaultNodes: map[string]string{
				"public-polygon": "https://polygon-rpc.com",
			},
			BlockExplorerAPIKeyVariableName: "ETHERSCAN_API_KEY",
			BlockExplorerAPIURL:             "https://api.etherscan.io/v2",
		}),
	}
}
