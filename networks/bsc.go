package networks

var BSCMainnet Network = NewBSCMainnet()

type bscMainnet struct {
	*GenericEtherscanNetwork
}

func NewBSCMainnet() *bscMainnet {
	return &bscMainnet{
		GenericEtherscanNetwork: NewGenericEtherscanNetwork(GenericEtherscanNetworkConfig{
			Name:               "bsc",
			AlternativeNames:   []string{"binance"},
			ChainID:            56,
			NativeTokenSymbol:  "BNB",
			NativeTokenDecimal: 18,
			NodeVariableName:   "BSC_MAINNET_NODE",
			DefaultNodes: map[string]string{
				"public-binance":    "https://bsc-dataseed.binance.org",
				"public-publicnode": "https://bsc-rpc.publicnode.com",
			},
			BlockExplorerAPIKeyVariableName: "ETHERSCAN_API_KEY",
			BlockExplorerAPIURL:             "https://api.etherscan.io/v2",
		}),
	}
}
