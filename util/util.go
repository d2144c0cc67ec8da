package util

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/tranvictor/decipher/common"
	"github.com/tranvictor/decipher/config"
	"github.com/tranvictor/decipher/decoder"
	"github.com/tranvictor/decipher/fourbyte"
	"github.com/tranvictor/decipher/networks"
	"github.com/tranvictor/decipher/util/addrbook"
	"github.com/tranvictor/decipher/util/cache"
)

var (
	txHashRe   = regexp.MustCompile("^(0x)?[0-9a-fA-F]{64}$")
	addressRe  = regexp.MustCompile("^(0x)?[0-9a-fA-F]{40}$")
	calldataRe = regexp.MustCompile("^(0x)?([0-9a-fA-F][0-9a-fA-F])+$")
)

// ScanForTxs extracts every 32-byte hex string (tx hash) found in para.
func ScanForTxs(para string) []string {
	re := regexp.MustCompile("(0x)?[0-9a-fA-F]{64}")
	result := re.FindAllString(para, -1)
	if result == nil {
		return []string{}
	}
	return result
}

// ScanForAddresses extracts every 20-byte hex string (address) found in para.
func ScanForAddresses(para string) []string {
	re := regexp.MustCompile("0x[0-9a-fA-F]{40}([^0-9a-fA-F]|$)")
	result := re.FindAllString(para, -1)
	if result == nil {
		return []string{}
	}
	for i := 0; i < len(result); i++ {
		result[i] = result[i][0:42]
	}
	return result
}

// IsTxHash reports whether str is exactly one tx hash, with or without the
// 0x prefix.
func IsTxHash(str string) bool {
	return txHashRe.MatchString(strings.TrimSpace(str))
}

// IsAddress reports whether str is exactly one address, with or without the
// 0x prefix.
func IsAddress(str string) bool {
	return addressRe.MatchString(strings.TrimSpace(str))
}

// ParseCalldata parses a hex calldata string into bytes. The 0x prefix is
// optional; anything that is not whole hex bytes is rejected.
func ParseCalldata(str string) ([]byte, error) {
	str = strings.TrimSpace(str)
	if !calldataRe.MatchString(str) {
		return nil, fmt.Errorf("%q is not valid hex calldata", str)
	}
	if !strings.HasPrefix(str, "0x") {
		str = "0x" + str
	}
	return hexutil.Decode(str)
}

// NormalizeHash returns the 0x-prefixed form of a tx hash string.
func NormalizeHash(str string) string {
	str = strings.TrimSpace(str)
	if !strings.HasPrefix(str, "0x") {
		return "0x" + str
	}
	return str
}

// VerboseAddress renders an address with its address book annotation.
func VerboseAddress(addr string) string {
	return common.PlainAddress(addrbook.DefaultBook().Resolve(addr))
}

// NewDecoder wires the production decode pipeline for a network: the 4byte
// signature directory first, the network's block explorer behind the local
// ABI cache as the fallback. config.NoFallback disables the fallback tier.
func NewDecoder(network networks.Network) *decoder.Decoder {
	var abis decoder.ABISource
	if !config.NoFallback {
		abis = decoder.NewVerifiedABIClient(network, cache.NewStore(config.CacheDir))
	}
	return decoder.NewDecoder(fourbyte.NewClient(), abis)
}
