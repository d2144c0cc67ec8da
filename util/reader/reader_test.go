package reader_test

import (
	"encoding/json"
	"errors"
	"math/big"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum"
	gethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/tranvictor/decipher/config"
	"github.com/tranvictor/decipher/networks"
	"github.com/tranvictor/decipher/util/reader"
)

const (
	sampleTxHash   = "0x8f54b7c1a45cbf36a6dfd2384a8bd7647bac6bb0e9019184c4a4ec0b17649eb1"
	sampleBlock    = "0xe064e1"
	sampleCalldata = "0xa9059cbb" +
		"0000000000000000000000000742d35cc6634c0532925a3b844bc9e7595f0beb" +
		"00000000000000000000000000000000000000000000000000000000000f4240"
)

// sampleTxJSON builds an eth_getTransactionByHash result for a mined legacy
// transaction; pass mined=false to strip the block fields the way nodes
// report pending transactions.
func sampleTxJSON(mined bool) map[string]interface{} {
	tx := map[string]interface{}{
		"hash":     sampleTxHash,
		"nonce":    "0x5",
		"from":     "0x28c6c06298d514db089934071355e5743bf21d60",
		"to":       "0xdac17f958d2ee523a2206206994597c13d831ec7",
		"value":    "0x0",
		"gas":      "0x13880",
		"gasPrice": "0x2e90edd000",
		"input":    sampleCalldata,
		"type":     "0x0",
		"v":        "0x25",
		"r":        "0x6b1e0b3f38a06b4d84e5ef2e93428f36dcbbc584e6ca40bd40c2a1ed5cbcd468",
		"s":        "0x2c5d6b2a38ed0bb8e1d505af2e2e7e204a775b373f8a8f9dc7a9a0ccbaedc4f1",
	}
	if mined {
		tx["blockNumber"] = sampleBlock
		tx["blockHash"] = "0xbf1c2133e90f4237d51a5dbbc788136e51ed9fd1207dd11ac13e815b0a9dd8a7"
	}
	return tx
}

// newRPCServer serves eth_getTransactionByHash with a fixed result. A nil
// result answers null, which is how nodes report unknown hashes.
func newRPCServer(t *testing.T, result interface{}) (*httptest.Server, *int) {
	t.Helper()
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		var req struct {
			ID     json.RawMessage `json:"id"`
			Method string          `json:"method"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"jsonrpc": "2.0",
			"id":      req.ID,
			"result":  result,
		})
	}))
	t.Cleanup(server.Close)
	return server, &calls
}

func TestOneNodeReaderFetchesTransaction(t *testing.T) {
	server, calls := newRPCServer(t, sampleTxJSON(true))

	node := reader.NewOneNodeReader("stub-node", server.URL)
	if node.NodeName() != "stub-node" {
		t.Errorf("NodeName() = %q, want %q", node.NodeName(), "stub-node")
	}
	if node.NodeURL() != server.URL {
		t.Errorf("NodeURL() = %q, want %q", node.NodeURL(), server.URL)
	}

	tx, isPending, err := node.TransactionByHash(sampleTxHash)
	if err != nil {
		t.Fatalf("TransactionByHash: %v", err)
	}
	if isPending {
		t.Errorf("mined transaction reported as pending")
	}
	if *calls != 1 {
		t.Errorf("node received %d requests, want 1", *calls)
	}

	wantTo := gethcommon.HexToAddress("0xdAC17F958D2ee523a2206206994597C13D831ec7")
	if tx.To() == nil || *tx.To() != wantTo {
		t.Errorf("tx.To() = %v, want %s", tx.To(), wantTo.Hex())
	}
	if got := hexutil.Encode(tx.Data()); got != sampleCalldata {
		t.Errorf("tx.Data() = %s, want %s", got, sampleCalldata)
	}
	if tx.Value().Cmp(big.NewInt(0)) != 0 {
		t.Errorf("tx.Value() = %s, want 0", tx.Value())
	}
	if tx.Extra.From == nil {
		t.Fatalf("envelope sender missing")
	}
	wantFrom := gethcommon.HexToAddress("0x28c6c06298d514db089934071355e5743bf21d60")
	if *tx.Extra.From != wantFrom {
		t.Errorf("envelope sender = %s, want %s", tx.Extra.From.Hex(), wantFrom.Hex())
	}
	if tx.Extra.BlockNumber == nil || *tx.Extra.BlockNumber != sampleBlock {
		t.Errorf("envelope block = %v, want %s", tx.Extra.BlockNumber, sampleBlock)
	}
}

func TestOneNodeReaderPendingTransaction(t *testing.T) {
	server, _ := newRPCServer(t, sampleTxJSON(false))

	node := reader.NewOneNodeReader("stub-node", server.URL)
	tx, isPending, err := node.TransactionByHash(sampleTxHash)
	if err != nil {
		t.Fatalf("TransactionByHash: %v", err)
	}
	if !isPending {
		t.Errorf("transaction without a block reported as mined")
	}
	if tx.Extra.BlockNumber != nil {
		t.Errorf("pending transaction carries block number %s", *tx.Extra.BlockNumber)
	}
}

func TestOneNodeReaderUnknownHash(t *testing.T) {
	server, _ := newRPCServer(t, nil)

	node := reader.NewOneNodeReader("stub-node", server.URL)
	_, _, err := node.TransactionByHash(sampleTxHash)
	if !errors.Is(err, ethereum.NotFound) {
		t.Fatalf("TransactionByHash error = %v, want ethereum.NotFound", err)
	}
}

func TestEthReaderFirstHealthyNodeWins(t *testing.T) {
	good, _ := newRPCServer(t, sampleTxJSON(true))
	dead := httptest.NewServer(http.NotFoundHandler())
	deadURL := dead.URL
	dead.Close()

	r := reader.NewEthReaderGeneric(map[string]string{
		"dead-node": deadURL,
		"good-node": good.URL,
	})
	tx, isPending, err := r.TransactionByHash(sampleTxHash)
	if err != nil {
		t.Fatalf("TransactionByHash: %v", err)
	}
	if isPending {
		t.Errorf("mined transaction reported as pending")
	}
	if got := hexutil.Encode(tx.Data()); got != sampleCalldata {
		t.Errorf("tx.Data() = %s, want %s", got, sampleCalldata)
	}
}

func TestEthReaderAllNodesFailing(t *testing.T) {
	first := httptest.NewServer(http.NotFoundHandler())
	firstURL := first.URL
	first.Close()
	second := httptest.NewServer(http.NotFoundHandler())
	secondURL := second.URL
	second.Close()

	r := reader.NewEthReaderGeneric(map[string]string{
		"node-a": firstURL,
		"node-b": secondURL,
	})
	_, _, err := r.TransactionByHash(sampleTxHash)
	if err == nil {
		t.Fatalf("expected an error when every node is down")
	}
	msg := err.Error()
	if !strings.Contains(msg, "couldn't read from any nodes") {
		t.Errorf("error = %q, want it to mention node exhaustion", msg)
	}
	for _, name := range []string{"node-a", "node-b"} {
		if !strings.Contains(msg, name) {
			t.Errorf("error %q does not name failing node %s", msg, name)
		}
	}
}

func TestEthReaderNotFoundPropagates(t *testing.T) {
	server, _ := newRPCServer(t, nil)

	r := reader.NewEthReaderGeneric(map[string]string{"stub-node": server.URL})
	_, _, err := r.TransactionByHash(sampleTxHash)
	if !errors.Is(err, ethereum.NotFound) {
		t.Fatalf("TransactionByHash error = %v, want ethereum.NotFound in its chain", err)
	}
}

func TestNewEthReaderRPCFlagReplacesNodes(t *testing.T) {
	server, calls := newRPCServer(t, sampleTxJSON(true))

	config.NodeURL = server.URL
	defer func() { config.NodeURL = "" }()

	network, err := networks.GetNetwork("mainnet")
	if err != nil {
		t.Fatalf("GetNetwork: %v", err)
	}
	r := reader.NewEthReader(network)
	if _, _, err := r.TransactionByHash(sampleTxHash); err != nil {
		t.Fatalf("TransactionByHash: %v", err)
	}
	if *calls != 1 {
		t.Errorf("flag node received %d requests, want exactly 1", *calls)
	}
}
