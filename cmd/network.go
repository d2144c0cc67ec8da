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
	"strings"

	"github.com/spf13/cobra"

	"github.com/tranvictor/decipher/networks"
	"github.com/tranvictor/decipher/ui"
)

var listNetworkCmd = &cobra.Command{
	Use:   "list",
	Short: "Show all supported networks",
	Long:  ``,
	Run: func(cmd *cobra.Command, args []string) {
		u := ui.NewTerminalUI()
		for i, n := range networks.GetSupportedNetworks() {
			names := n.GetName()
			if alts := n.GetAlternativeNames(); len(alts) > 0 {
				names = fmt.Sprintf("%s (%s)", names, strings.Join(alts, ", "))
			}
			u.Info("%d. %s, chain ID %d, native token %s", i+1, names, n.GetChainID(), n.GetNativeTokenSymbol())
			child := u.Indent()
			child.Info("custom node env var: %s", n.GetNodeVariableName())
			for name, node := range n.GetDefaultNodes() {
				child.Info("- %s: %s", name, node)
			}
		}
		u.Info("")
		u.Info("To support another network, drop its config json into ~/.decipher/networks/.")
		u.Info("To remove one again, delete the corresponding json file there.")
	},
}

var networkCmd = &cobra.Command{
	Use:   "network",
	Short: "Inspect the networks decipher supports",
	Long:  ``,
}

func init() {
	networkCmd.AddCommand(listNetworkCmd)
	rootCmd.AddCommand(networkCmd)
}
