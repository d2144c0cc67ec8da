// Package addrbook maps raw Ethereum hex addresses to human-readable names.
//
// Production code uses [Book], which combines a curated set of well-known
// mainnet addresses with user-defined entries from ~/.decipher/addresses.json.
// Tests inject [Map], a plain map that resolves to deterministic names
// without touching the filesystem.
package addrbook

import (
	"github.com/tranvictor/decipher/common"
)

// AddressResolver maps a raw Ethereum hex address to a common.Address (hex +
// optional name + optional ERC20 decimal). Abstracting this behind an
// interface lets any component that enriches addresses be tested
// deterministically.
//
// Contract: if the address is not known, Desc must be set to "unknown".
type AddressResolver interface {
	Resolve(addr string) common.Address
}
