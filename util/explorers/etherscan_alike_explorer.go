package explorers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

type EtherscanLikeExplorer struct {
	ChainID uint64

	Domain string
	APIKey string

	client *http.Client
}

func NewEtherscanLikeExplorer(domain string, apiKey string) *EtherscanLikeExplorer {
	return &EtherscanLikeExplorer{
		Domain: domain,
		APIKey: apiKey,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (ee *EtherscanLikeExplorer) GetABIStringAPIURL(address string) string {
	return fmt.Sprintf(
		"%s/api?chainid=%d&module=contract&action=getabi&address=%s&apikey=%s",
		ee.Domain,
		ee.ChainID,
		address,
		ee.APIKey,
	)
}

type abiresponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Result  string `json:"result"`
}

func (ar *abiresponse) IsOK() bool {
	return ar.Status == "1"
}

// GetABIString returns the verified ABI JSON for address, or ErrRejected when
// the API answered with a non-OK status (unverified contract, bad key).
func (ee *EtherscanLikeExplorer) GetABIString(ctx context.Context, address string) (string, error) {
	url := ee.GetABIStringAPIURL(address)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	resp, err := ee.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	abiresp := abiresponse{}
	err = json.Unmarshal(body, &abiresp)
	if err != nil {
		return "", fmt.Errorf("couldn't unmarshal abi response %q: %w", string(body), err)
	}
	if !abiresp.IsOK() {
		return "", fmt.Errorf("%w: %s (%s)", ErrRejected, abiresp.Message, abiresp.Result)
	}
	return abiresp.Result, nil
}
