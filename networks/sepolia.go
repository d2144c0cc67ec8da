package networks

var Sepolia Network = NewSepolia()

type sepolia struct {
	*GenericBlockscoutNetwork
}

func NewSepolia() *sepolia {
	return &sepolia{
		GenericBlockscoutNetwork: NewGenericBlockscoutNetwork(GenericBlockscoutNetworkConfig{
			Name:               "sepolia",
			AlternativeNames:   []string{"ethereum-sepolia"},
			ChainID:            11155111,
			NativeTokenSymbol:  "ETH",
			NativeTokenDecimal: 18,
			NodeVariableName:   "ETHEREUM_SEPOLIA_NODE",
			DefaultNodes: map[string]string{
				"public-sepolia":    "https://rpc.sepolia.org",
				"public-publicnode": "https://ethereum-sepolia-rpc.publicnode.com",
			},
			BlockExplorerAPIKeyVariableName: "SEPOLIA_BLOCKSCOUT_API_KEY",
			BlockExplorerAPIURL:             "https://eth-sepolia.blockscout.com/api/v2",
		}),
	}
}
