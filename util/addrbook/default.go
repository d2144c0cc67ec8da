package addrbook

import (
	"encoding/json"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"sync"

	"github.com/sahilm/fuzzy"

	"github.com/tranvictor/decipher/common"
)

// AddressDesc is one address book entry. Decimal is non-zero only for ERC20
// tokens so the display layer can render "Tether USD - 6" style suffixes.
type AddressDesc struct {
	Address string `json:"address"`
	Desc    string `json:"name"`
	Decimal int64  `json:"decimal,omitempty"`
}

// builtinEntries covers the addresses that show up in calldata all the time:
// sentinel addresses, blue-chip ERC20 tokens and the routers that move them.
var builtinEntries = []AddressDesc{
	{Address: "0x0000000000000000000000000000000000000000", Desc: "Zero Address"},
	{Address: "0x000000000000000000000000000000000000dEaD", Desc: "Burn Address"},
	{Address: "0xEeeeeEeeeEeEeeEeEeEeeEEEeeeeEeeeeeeeEEeE", Desc: "Native Token Placeholder"},
	{Address: "0xdAC17F958D2ee523a2206206994597C13D831ec7", Desc: "Tether USD", Decimal: 6},
	{Address: "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48", Desc: "USD Coin", Decimal: 6},
	{Address: "0x6B175474E89094C44Da98b954EedeAC495271d0F", Desc: "Dai Stablecoin", Decimal: 18},
	{Address: "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2", Desc: "Wrapped Ether", Decimal: 18},
	{Address: "0x2260FAC5E5542a773Aa44fBCfeDf7C193bc2C599", Desc: "Wrapped BTC", Decimal: 8},
	{Address: "0x514910771AF9Ca656af840dff83E8264EcF986CA", Desc: "ChainLink Token", Decimal: 18},
	{Address: "0x1f9840a85d5aF5bf1D1762F925BDADdC4201F984", Desc: "Uniswap Token", Decimal: 18},
	{Address: "0xdeFA4e8a7bcBA345F687a2f1456F5Edd9CE97202", Desc: "Kyber Network Crystal v2", Decimal: 18},
	{Address: "0x7a250d5630B4cF539739dF2C5dAcb4c659F2488D", Desc: "Uniswap V2 Router"},
	{Address: "0xE592427A0AEce92De3Edee1F18E0157C05861564", Desc: "Uniswap V3 Router"},
	{Address: "0x68b3465833fb72A70ecDF485E0e4C7bD8665Fc45", Desc: "Uniswap V3 Router 2"},
	{Address: "0x1111111254EEB25477B68fb85Ed929f73A960582", Desc: "1inch V5 Router"},
	{Address: "0xDef1C0ded9bec7F1a1670819833240f027b25EfF", Desc: "0x Exchange Proxy"},
}

// Book is the production AddressResolver: the builtin entries plus whatever
// the user keeps in ~/.decipher/addresses.json.
type Book struct {
	entries map[string]AddressDesc // keyed by lower-cased hex address
}

// NewBook builds a Book from the builtin entries and the user's custom
// address file. A missing or broken custom file is ignored: the builtin book
// still works.
func NewBook() *Book {
	b := &Book{entries: map[string]AddressDesc{}}
	for _, e := range builtinEntries {
		b.add(e)
	}
	if path, err := defaultCustomFile(); err == nil {
		// WARNING: swallow error here
		b.LoadCustomFile(path)
	}
	return b
}

func defaultCustomFile() (string, error) {
	usr, err := user.Current()
	if err != nil {
		return "", err
	}
	return filepath.Join(usr.HomeDir, ".decipher", "addresses.json"), nil
}

func (b *Book) add(e AddressDesc) {
	b.entries[strings.ToLower(e.Address)] = e
}

// LoadCustomFile merges entries from a JSON file into the book. Custom
// entries override builtin ones with the same address.
func (b *Book) LoadCustomFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var entries []AddressDesc
	if err := json.Unmarshal(content, &entries); err != nil {
		return fmt.Errorf("couldn't parse address book file %s: %w", path, err)
	}
	for _, e := range entries {
		b.add(e)
	}
	return nil
}

// Resolve implements AddressResolver.
func (b *Book) Resolve(addr string) common.Address {
	if e, found := b.entries[strings.ToLower(addr)]; found {
		return common.Address{Address: addr, Desc: e.Desc, Decimal: e.Decimal}
	}
	return common.Address{Address: addr, Desc: "unknown"}
}

// fuzzySource adapts the book's entries for fuzzy matching on
// "name_0xaddress" strings, so queries can hit either part.
type fuzzySource []AddressDesc

func (s fuzzySource) Len() int {
	return len(s)
}

func (s fuzzySource) String(i int) string {
	return fmt.Sprintf("%s_%s", strings.Replace(s[i].Desc, " ", "_", -1), strings.ToLower(s[i].Address))
}

// Search returns up to 10 entries matching the query by name or address,
// best match first.
func (b *Book) Search(input string) []AddressDesc {
	source := make(fuzzySource, 0, len(b.entries))
	for _, e := range b.entries {
		source = append(source, e)
	}
	matches := fuzzy.FindFrom(strings.Replace(input, " ", "_", -1), source)
	result := []AddressDesc{}
	for i := 0; i < 10 && i < len(matches); i++ {
		result = append(result, source[matches[i].Index])
	}
	return result
}

// GetAddress returns the best match for a name or address query.
func (b *Book) GetAddress(input string) (AddressDesc, error) {
	matches := b.Search(input)
	if len(matches) == 0 {
		return AddressDesc{}, fmt.Errorf("no address found with %q", input)
	}
	return matches[0], nil
}

var (
	defaultBook     *Book
	defaultBookOnce sync.Once
)

// DefaultBook returns the shared production book, built once per process.
func DefaultBook() *Book {
	defaultBookOnce.Do(func() {
		defaultBook = NewBook()
	})
	return defaultBook
}
