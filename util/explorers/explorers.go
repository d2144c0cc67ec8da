package explorers

import (
	"context"
	"errors"
)

// ErrRejected is returned when an explorer API answered the request but
// refused to serve an ABI: unverified contract, invalid API key, rate limit.
// Callers use errors.Is to tell this apart from transport failures.
var ErrRejected = errors.New("explorer rejected the request")

type BlockExplorer interface {
	GetABIString(ctx context.Context, address string) (string, error)
}

// NewEtherscanV2 returns an explorer for Etherscan's unified v2 API, which
// serves all supported chains from a single domain selected by chainid.
// The baked-in key is a shared public key with the free-tier rate limit;
// networks override it from their API key environment variable.
func NewEtherscanV2() *EtherscanLikeExplorer {
	return NewEtherscanLikeExplorer(
		"https://api.etherscan.io/v2",
		"UBB257TI824FC7HUSPT66KZUMGBPRN3IWV",
	)
}
