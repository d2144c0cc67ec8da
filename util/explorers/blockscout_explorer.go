package explorers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// BlockscoutExplorer reads verified-contract ABIs from a Blockscout v2 API,
// used by chains that are not covered by Etherscan's unified endpoint.
type BlockscoutExplorer struct {
	Domain string
	APIKey string

	client *http.Client
}

func NewBlockscoutExplorer(domain string, apiKey string) *BlockscoutExplorer {
	return &BlockscoutExplorer{
		Domain: domain,
		APIKey: apiKey,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

type smartContractResponse struct {
	Name       string          `json:"name"`
	IsVerified bool            `json:"is_verified"`
	ABI        json.RawMessage `json:"abi"`
}

// GetABIString returns the verified ABI JSON for address, or ErrRejected when
// Blockscout has no verified source for it.
func (be *BlockscoutExplorer) GetABIString(ctx context.Context, address string) (string, error) {
	url := fmt.Sprintf("%s/smart-contracts/%s", be.Domain, address)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	if be.APIKey != "" {
		req.Header.Set("api-key", be.APIKey)
	}
	resp, err := be.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	contract := smartContractResponse{}
	err = json.Unmarshal(body, &contract)
	if err != nil {
		return "", fmt.Errorf("couldn't unmarshal smart contract response %q: %w", string(body), err)
	}
	if len(contract.ABI) == 0 {
		return "", fmt.Errorf("%w: no verified ABI for %s", ErrRejected, address)
	}
	return string(contract.ABI), nil
}
