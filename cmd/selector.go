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
	"regexp"

	"github.com/spf13/cobra"

	"github.com/tranvictor/decipher/decoder"
	"github.com/tranvictor/decipher/fourbyte"
	"github.com/tranvictor/decipher/ui"
	"github.com/tranvictor/decipher/util"
)

var selectorHexRe = regexp.MustCompile(`^(0x)?[0-9a-fA-F]{8}$`)

var selectorCmd = &cobra.Command{
	Use:   "selector <signature | selector> ...",
	Short: "Compute 4-byte selectors from signatures, or look selectors up in the signature directory",
	Long: `Selector works in both directions. Given a function signature it prints
the canonical form and its 4-byte selector:

	decipher selector "transfer(address to, uint amount)"

Given a 4-byte hex selector it asks the 4byte.directory signature database
which known signatures hash to it:

	decipher selector 0xa9059cbb`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		u := ui.NewTerminalUI()

		failures := 0
		for _, arg := range args {
			var err error
			if selectorHexRe.MatchString(arg) {
				err = lookupSelector(cmd, u, arg)
			} else {
				err = printSelector(u, arg)
			}
			if err != nil {
				u.Error("%s: %s", arg, err)
				failures++
			}
		}

		if failures == len(args) {
			return fmt.Errorf("all %d input(s) failed", len(args))
		}
		return nil
	},
}

func printSelector(u ui.UI, signature string) error {
	desc, err := decoder.ParseSignature(signature)
	if err != nil {
		return err
	}
	u.KeyValue([][2]string{
		{"Method", desc.Name},
		{"Signature", desc.Signature},
		{"Selector", desc.Selector.String()},
	})
	return nil
}

func lookupSelector(cmd *cobra.Command, u ui.UI, arg string) error {
	data, err := util.ParseCalldata(arg)
	if err != nil {
		return err
	}
	sel, err := decoder.ExtractSelector(data)
	if err != nil {
		return err
	}

	stop := u.Spinner(fmt.Sprintf("Looking up %s in the signature directory...", sel))
	texts, err := fourbyte.NewClient().LookupSelector(cmd.Context(), sel)
	stop()
	if err != nil {
		return err
	}
	if len(texts) == 0 {
		u.Warn("no signature directory entries for %s", sel)
		return nil
	}

	rows := make([][]string, 0, len(texts))
	for _, text := range texts {
		if desc, err := decoder.ParseSignature(text); err == nil {
			rows = append(rows, []string{desc.Name, desc.Signature})
		} else {
			rows = append(rows, []string{"?", text})
		}
	}
	u.Info("%d signature directory entries for %s:", len(rows), sel)
	u.Table([]string{"Method", "Signature"}, rows)
	return nil
}

func init() {
	rootCmd.AddCommand(selectorCmd)
}
