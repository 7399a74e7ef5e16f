package embedding

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/kurt-labs/kurt/pkg/config"
)

const voyageEndpoint = "https://api.voyageai.com/v1/embeddings"

// VoyageClient calls the Voyage embeddings REST API.
type VoyageClient struct {
	apiKey     string
	model      string
	dimensions int
	httpClient *http.Client
}

// NewVoyageClient creates a client from embedding config.
func NewVoyageClient(cfg config.EmbeddingConfig) *VoyageClient {
	return &VoyageClient{
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		dimensions: cfg.Dimensions,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

// Dimensions returns the configured vector width.
func (c *VoyageClient) Dimensions() int { return c.dimensions }

type voyageRequest struct {
	Input           []string `json:"input"`
	Model           string   `json:"model"`
	OutputDimension int      `json:"output_dimension,omitempty"`
}

type voyageResponse struct {
	Data []struct {
		Embedding []float32 `json:"embedding"`
		Index     int       `json:"index"`
	} `json:"data"`
}

// Embed embeds a batch of texts, retrying transient failures with
// exponential backoff.
func (c *VoyageClient) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	body, err := json.Marshal(voyageRequest{
		Input:           texts,
		Model:           c.model,
		OutputDimension: c.dimensions,
	})
	if err != nil {
		return nil, fmt.Errorf("marshaling embedding request: %w", err)
	}

	var resp voyageResponse
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, voyageEndpoint, bytes.NewReader(body))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+c.apiKey)

		httpResp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer func() { _ = httpResp.Body.Close() }()

		data, err := io.ReadAll(io.LimitReader(httpResp.Body, 32<<20))
		if err != nil {
			return err
		}
		switch {
		case httpResp.StatusCode == http.StatusOK:
		case httpResp.StatusCode == http.StatusTooManyRequests || httpResp.StatusCode >= 500:
			return fmt.Errorf("embedding API status %d", httpResp.StatusCode)
		default:
			return backoff.Permanent(fmt.Errorf("embedding API status %d: %s", httpResp.StatusCode, truncate(data, 200)))
		}
		if err := json.Unmarshal(data, &resp); err != nil {
			return backoff.Permanent(fmt.Errorf("decoding embedding response: %w", err))
		}
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return nil, err
	}

	if len(resp.Data) != len(texts) {
		return nil, fmt.Errorf("embedding API returned %d vectors for %d inputs", len(resp.Data), len(texts))
	}

	// The API may reorder; index restores input order.
	out := make([][]float32, len(texts))
	for _, d := range resp.Data {
		if d.Index < 0 || d.Index >= len(out) {
			return nil, fmt.Errorf("embedding API returned out-of-range index %d", d.Index)
		}
		out[d.Index] = d.Embedding
	}
	return out, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
