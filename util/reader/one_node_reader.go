package reader

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum"
	gethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rpc"

	"github.com/tranvictor/decipher/common"
)

const TIMEOUT time.Duration = 4 * time.Second

// OneNodeReader reads from a single RPC endpoint. The connection is dialed
// lazily on first use so building readers for a network's whole node set
// costs nothing until a request actually goes out.
type OneNodeReader struct {
	nodeName string
	nodeURL  string
	client   *rpc.Client
	mu       sync.Mutex
}

func NewOneNodeReader(name, url string) *OneNodeReader {
	return &OneNodeReader{
		nodeName: name,
		nodeURL:  url,
		client:   nil,
		mu:       sync.Mutex{},
	}
}

func (onr *OneNodeReader) NodeName() string {
	return onr.nodeName
}

func (onr *OneNodeReader) NodeURL() string {
	return onr.nodeURL
}

func (onr *OneNodeReader) initConnection() error {
	onr.mu.Lock()
	defer onr.mu.Unlock()
	client, err := rpc.Dial(onr.NodeURL())
	if err != nil {
		return fmt.Errorf("couldn't connect to %s: %w", onr.nodeName, err)
	}
	onr.client = client
	return nil
}

func (onr *OneNodeReader) Client() (*rpc.Client, error) {
	if onr.client != nil {
		return onr.client, nil
	}
	err := onr.initConnection()
	return onr.client, err
}

// transactionByHashOnNode keeps the raw JSON-RPC call instead of going
// through ethclient because the response envelope carries the sender and
// block fields that types.Transaction alone doesn't retain.
func (onr *OneNodeReader) transactionByHashOnNode(ctx context.Context, hash gethcommon.Hash) (tx *common.Transaction, isPending bool, err error) {
	var json *common.Transaction
	cli, err := onr.Client()
	if err != nil {
		return nil, false, err
	}
	err = cli.CallContext(ctx, &json, "eth_getTransactionByHash", hash)
	if err != nil {
		return nil, false, err
	} else if json == nil {
		return nil, false, ethereum.NotFound
	} else if _, r, _ := json.RawSignatureValues(); r == nil {
		return nil, false, fmt.Errorf("server returned transaction without signature")
	}
	return json, json.Extra.BlockNumber == nil, nil
}

func (onr *OneNodeReader) TransactionByHash(txHash string) (tx *common.Transaction, isPending bool, err error) {
	hash := gethcommon.HexToHash(txHash)
	timeout, cancel := context.WithTimeout(context.Background(), TIMEOUT)
	defer cancel()
	return onr.transactionByHashOnNode(timeout, hash)
}
