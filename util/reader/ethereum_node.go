package reader

import (
	"github.com/tranvictor/decipher/common"
)

// EthereumNode is the slice of the JSON-RPC surface the decode pipeline
// needs from a node: fetching transactions whose calldata will be decoded.
type EthereumNode interface {
	NodeName() string
	NodeURL() string
	TransactionByHash(txHash string) (tx *common.Transaction, isPending bool, err error)
}
