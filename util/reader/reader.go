package reader

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/tranvictor/decipher/common"
	"github.com/tranvictor/decipher/config"
	"github.com/tranvictor/decipher/networks"
)

// EthReader fans a request out to a set of nodes concurrently and returns
// the first successful answer. Only when every node fails does it return an
// error, joining each node's failure under its name.
type EthReader struct {
	nodes map[string]EthereumNode
}

func NewEthReaderGeneric(nodes map[string]string) *EthReader {
	ns := map[string]EthereumNode{}
	for name, c := range nodes {
		ns[name] = NewOneNodeReader(name, c)
	}
	return &EthReader{
		nodes: ns,
	}
}

// NewEthReader builds a reader over the network's default nodes. An endpoint
// set in the network's node env var joins the set as "custom-node"; an
// endpoint given via the --rpc flag replaces the set entirely.
func NewEthReader(network networks.Network) *EthReader {
	if config.NodeURL != "" {
		return NewEthReaderGeneric(map[string]string{"rpc-flag-node": config.NodeURL})
	}
	nodes := map[string]string{}
	for name, url := range network.GetDefaultNodes() {
		nodes[name] = url
	}
	customNode := strings.Trim(os.Getenv(network.GetNodeVariableName()), " ")
	if customNode != "" {
		nodes["custom-node"] = customNode
	}
	return NewEthReaderGeneric(nodes)
}

func wrapError(e error, name string) error {
	if e == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", name, e)
}

type transactionByHashResponse struct {
	Tx        *common.Transaction
	IsPending bool
	Error     error
}

func (er *EthReader) TransactionByHash(
	txHash string,
) (tx *common.Transaction, isPending bool, err error) {
	resCh := make(chan transactionByHashResponse, len(er.nodes))
	for i := range er.nodes {
		n := er.nodes[i]
		go func() {
			tx, ispending, err := n.TransactionByHash(txHash)
			resCh <- transactionByHashResponse{
				Tx:        tx,
				IsPending: ispending,
				Error:     wrapError(err, n.NodeName()),
			}
		}()
	}

	errs := []error{}
	for i := 0; i < len(er.nodes); i++ {
		result := <-resCh
		if result.Error == nil {
			return result.Tx, result.IsPending, result.Error
		}
		errs = append(errs, result.Error)
	}
	return nil, false, fmt.Errorf("couldn't read from any nodes: %w", errors.Join(errs...))
}
