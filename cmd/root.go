// Copyright © 2024 Victor Tran
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package cmd

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tranvictor/decipher/config"
	"github.com/tranvictor/decipher/networks"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "decipher",
	Short: "Decode ethereum calldata and transactions into readable function calls",
	Long: `Decipher turns raw ethereum calldata into human readable function calls.

Give it a transaction hash or a hex calldata blob and it will:

	1. Extract the 4-byte selector and look it up in the 4byte.directory
	signature database, trying the candidate signatures in a ranked order
	until one structurally matches the payload.

	2. When the candidates fail and the destination contract is known, fall
	back to the contract's verified ABI from the network's block explorer,
	cached locally so repeated decodes don't touch the network.

	3. Render the decoded parameters with address book annotations so known
	contracts and tokens show up by name.

Decipher supports ethereum mainnet and the major EVM chains out of the box
(run "decipher network list" to see them, or drop your own network config
json into ~/.decipher/networks/). Each network reads a custom RPC endpoint
from its node env var (for example ETHEREUM_MAINNET_NODE for mainnet), and
explorer lookups read an API key from ETHERSCAN_API_KEY.

For more information or support, reach me at https://github.com/tranvictor.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := networks.SetNetwork(config.Network); err != nil {
			return err
		}
		if config.EtherscanAPIKey != "" {
			networks.CurrentNetwork().SetBlockExplorerAPIKey(config.EtherscanAPIKey)
		}
		return nil
	},
}

func defaultCacheDir() string {
	usr, err := user.Current()
	if err != nil {
		return filepath.Join(".decipher", "abis")
	}
	return filepath.Join(usr.HomeDir, ".decipher", "abis")
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.PersistentFlags().StringVarP(&config.Network, "network", "k", "mainnet", "ethereum network to operate on, by name or alias. Run \"decipher network list\" for valid values.")
	rootCmd.PersistentFlags().StringVarP(&config.NodeURL, "rpc", "r", "", "RPC endpoint to use instead of the network's default nodes.")
	rootCmd.PersistentFlags().StringVar(&config.EtherscanAPIKey, "etherscan-key", "", "block explorer API key, overriding the env var and the built-in shared key.")
	rootCmd.PersistentFlags().StringVar(&config.CacheDir, "cache-dir", defaultCacheDir(), "directory for the verified ABI cache.")
	rootCmd.PersistentFlags().BoolVar(&config.NoFallback, "no-fallback", false, "decode from the signature directory only, never fetching verified ABIs.")
	rootCmd.PersistentFlags().BoolVar(&config.Debug, "debug", false, "print debug logs.")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
