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
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tranvictor/decipher/common"
	"github.com/tranvictor/decipher/config"
	"github.com/tranvictor/decipher/decoder"
	"github.com/tranvictor/decipher/networks"
	"github.com/tranvictor/decipher/ui"
	"github.com/tranvictor/decipher/util"
	"github.com/tranvictor/decipher/util/addrbook"
	"github.com/tranvictor/decipher/util/reader"
)

var DecodeContract string

var decodeCmd = &cobra.Command{
	Use:   "decode <tx hash | calldata> ...",
	Short: "Decode transactions or raw calldata into readable function calls",
	Long: `Decode takes any mix of transaction hashes and hex calldata blobs and
resolves each one into a readable function call.

Transaction hashes are fetched from the selected network's RPC nodes, so the
output also shows the destination contract, the attached native token value
and whether the transaction is still pending. Raw calldata is decoded as-is;
pass --contract to name its destination so the verified ABI fallback and the
address book annotations can kick in.

Inputs are decoded in parallel and printed in the order they were given.
The command fails only when every input failed.

Examples:

	decipher decode 0x37cca373a9b98e4c636e3d93f60aafa4704bbb9bdab80aa5d98b62cfcd2a48e4
	decipher decode 0xa9059cbb00000000000000000000000012345678901234567890123456789012345678900000000000000000000000000000000000000000000000000000000000000001
	decipher decode --network bsc --json decoded.json 0x37cca373... 0x52b5a073...`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		u := ui.NewTerminalUI()
		network := networks.CurrentNetwork()
		dec := util.NewDecoder(network)
		ethReader := reader.NewEthReader(network)
		book := addrbook.DefaultBook()

		displays := make([]*util.DecodeDisplay, len(args))
		jobs := make([]func() error, 0, len(args))
		for i := range args {
			i := i
			jobs = append(jobs, func() error {
				displays[i] = decodeOneInput(cmd.Context(), dec, ethReader, network, book, args[i])
				if displays[i].Error != "" {
					return fmt.Errorf("%s: %s", args[i], displays[i].Error)
				}
				return nil
			})
		}

		stop := u.Spinner(fmt.Sprintf("Decoding %d input(s) on %s...", len(args), network.GetName()))
		_, failures := common.RunParallel(jobs...)
		stop()

		for _, d := range displays {
			util.DisplayDecode(u, d)
		}

		if config.JSONOutputFile != "" {
			if err := writeJSONResults(displays, config.JSONOutputFile); err != nil {
				u.Error("couldn't write %s: %s", config.JSONOutputFile, err)
			} else {
				u.Success("Results written to %s", config.JSONOutputFile)
			}
		}

		if failures == len(args) {
			return fmt.Errorf("all %d input(s) failed to decode", len(args))
		}
		return nil
	},
}

func decodeOneInput(
	ctx context.Context,
	dec *decoder.Decoder,
	ethReader *reader.EthReader,
	network networks.Network,
	book *addrbook.Book,
	input string,
) *util.DecodeDisplay {
	if util.IsTxHash(input) {
		return decodeTx(ctx, dec, ethReader, network, book, input)
	}
	return decodeCalldata(ctx, dec, network, book, input)
}

func decodeTx(
	ctx context.Context,
	dec *decoder.Decoder,
	ethReader *reader.EthReader,
	network networks.Network,
	book *addrbook.Book,
	input string,
) *util.DecodeDisplay {
	hash := util.NormalizeHash(input)
	tx, isPending, err := ethReader.TransactionByHash(hash)
	if err != nil {
		return &util.DecodeDisplay{
			Input:   input,
			Hash:    hash,
			Network: network.GetName(),
			Error:   fmt.Sprintf("fetching transaction: %s", err),
		}
	}
	if tx.To() == nil {
		return &util.DecodeDisplay{
			Input:   input,
			Hash:    hash,
			Network: network.GetName(),
			Error:   "contract creation transaction: the payload is init code, not calldata",
		}
	}

	contract := tx.To().Hex()
	result, err := dec.Decode(ctx, tx.Data(), contract)
	d := util.BuildDecodeDisplay(result, err, book)
	d.Input = input
	d.Hash = hash
	d.Network = network.GetName()
	d.Pending = isPending
	styled := util.StyledAddress(book.Resolve(contract))
	d.Contract = &styled
	if tx.Value().Sign() > 0 {
		d.Value = fmt.Sprintf(
			"%s %s",
			common.BigToFloatString(tx.Value(), network.GetNativeTokenDecimal()),
			network.GetNativeTokenSymbol(),
		)
	}
	return d
}

func decodeCalldata(
	ctx context.Context,
	dec *decoder.Decoder,
	network networks.Network,
	book *addrbook.Book,
	input string,
) *util.DecodeDisplay {
	data, err := util.ParseCalldata(input)
	if err != nil {
		return &util.DecodeDisplay{Input: input, Error: err.Error()}
	}

	contract := ""
	if util.IsAddress(DecodeContract) {
		contract = DecodeContract
	} else if DecodeContract != "" {
		desc, err := book.GetAddress(DecodeContract)
		if err != nil {
			return &util.DecodeDisplay{Input: input, Error: err.Error()}
		}
		contract = desc.Address
	}

	result, err := dec.Decode(ctx, data, contract)
	d := util.BuildDecodeDisplay(result, err, book)
	d.Input = input
	d.Network = network.GetName()
	if contract != "" {
		styled := util.StyledAddress(book.Resolve(contract))
		d.Contract = &styled
	}
	return d
}

func writeJSONResults(displays []*util.DecodeDisplay, path string) error {
	content, err := json.MarshalIndent(displays, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, content, 0644)
}

func init() {
	decodeCmd.PersistentFlags().StringVarP(&DecodeContract, "contract", "c", "", "destination contract of raw calldata inputs, as an address or an address book name.")
	decodeCmd.PersistentFlags().StringVarP(&config.JSONOutputFile, "json", "j", "", "file to additionally write the decode results to, as JSON.")
	rootCmd.AddCommand(decodeCmd)
}
