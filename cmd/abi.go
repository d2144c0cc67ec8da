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
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tranvictor/decipher/config"
	"github.com/tranvictor/decipher/decoder"
	"github.com/tranvictor/decipher/networks"
	"github.com/tranvictor/decipher/ui"
	"github.com/tranvictor/decipher/util"
	"github.com/tranvictor/decipher/util/addrbook"
	"github.com/tranvictor/decipher/util/cache"
)

var abiCmd = &cobra.Command{
	Use:   "abi <address | name>",
	Short: "List the functions of a contract from its verified ABI",
	Long: `Abi fetches the verified ABI of a contract from the network's block
explorer and lists its functions with their selectors and canonical
signatures. The contract can be given as a hex address or as an address book
name ("usdt", "uniswap router"); ambiguous names prompt for a choice.

Fetched ABIs land in the local cache, so a later decode of a transaction
against the same contract won't touch the explorer again.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		u := ui.NewTerminalUI()
		network := networks.CurrentNetwork()
		book := addrbook.DefaultBook()

		address, err := resolveContract(u, book, args[0])
		if err != nil {
			return err
		}

		client := decoder.NewVerifiedABIClient(network, cache.NewStore(config.CacheDir))
		stop := u.Spinner(fmt.Sprintf("Fetching verified ABI of %s on %s...", address, network.GetName()))
		descriptors, err := client.Functions(cmd.Context(), address)
		stop()
		if err != nil {
			return err
		}

		sort.Slice(descriptors, func(i, j int) bool {
			if descriptors[i].Name != descriptors[j].Name {
				return descriptors[i].Name < descriptors[j].Name
			}
			return descriptors[i].Signature < descriptors[j].Signature
		})

		rows := make([][]string, 0, len(descriptors))
		for _, desc := range descriptors {
			rows = append(rows, []string{desc.Name, desc.Selector.String(), desc.Signature})
		}
		u.Table([]string{"Method", "Selector", "Signature"}, rows)
		u.Success("%d functions", len(rows))
		return nil
	},
}

// resolveContract turns a user-given contract reference into a hex address,
// going through the address book when it isn't one already.
func resolveContract(u ui.UI, book *addrbook.Book, input string) (string, error) {
	if util.IsAddress(input) {
		address := strings.TrimSpace(input)
		u.Interpret(util.VerboseAddress(address))
		return address, nil
	}

	matches := book.Search(input)
	if len(matches) == 0 {
		return "", fmt.Errorf("no address book entry matches %q", input)
	}
	if len(matches) == 1 {
		u.Interpret(fmt.Sprintf("%s (%s)", matches[0].Address, matches[0].Desc))
		return matches[0].Address, nil
	}

	options := make([]string, 0, len(matches))
	for _, m := range matches {
		options = append(options, fmt.Sprintf("%s (%s)", m.Desc, m.Address))
	}
	choice := u.Choose(fmt.Sprintf("%d address book entries match %q", len(matches), input), options)
	return matches[choice].Address, nil
}

func init() {
	rootCmd.AddCommand(abiCmd)
}
