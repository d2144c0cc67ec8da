// Package fourbyte looks up function signatures on a 4byte.directory
// compatible signature database.
package fourbyte

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/tranvictor/decipher/decoder"
)

const DefaultBaseURL = "https://www.4byte.directory"

// Client implements decoder.SignatureSource against the 4byte.directory
// HTTP API. Each lookup is bounded by a 5 second timeout; results come back
// in the order the directory lists them, which the decoder re-ranks.
type Client struct {
	BaseURL string
	client  *http.Client
}

func NewClient() *Client {
	return &Client{
		BaseURL: DefaultBaseURL,
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

type signatureEntry struct {
	TextSignature string `json:"text_signature"`
}

type signaturesResponse struct {
	Results []signatureEntry `json:"results"`
}

// LookupSelector returns the candidate signature texts registered for sel.
// An empty list is a successful answer: the selector is simply unknown.
func (c *Client) LookupSelector(ctx context.Context, sel decoder.Selector) ([]string, error) {
	query := url.Values{}
	query.Set("hex_signature", sel.String())
	lookupURL := fmt.Sprintf("%s/api/v1/signatures/?%s", c.BaseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, lookupURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", decoder.ErrLookupUnavailable, err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", decoder.ErrLookupUnavailable, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf(
			"%w: %s answered with status %d",
			decoder.ErrLookupUnavailable, c.BaseURL, resp.StatusCode,
		)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", decoder.ErrLookupUnavailable, err)
	}

	parsed := signaturesResponse{}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("%w: %w", decoder.ErrLookupMalformed, err)
	}
	texts := []string{}
	for _, entry := range parsed.Results {
		texts = append(texts, entry.TextSignature)
	}
	return texts, nil
}
