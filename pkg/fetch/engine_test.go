package fetch

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kurt-labs/kurt/pkg/config"
)

func TestBatchTimeout(t *testing.T) {
	assert.Equal(t, 65*time.Second, BatchTimeout(1))
	assert.Equal(t, 160*time.Second, BatchTimeout(20))
	assert.Equal(t, 60*time.Second, BatchTimeout(0))
}

func TestNewEngine(t *testing.T) {
	tests := []struct {
		name    string
		engine  string
		cfg     config.FetchConfig
		wantErr string
	}{
		{name: "trafilatura", engine: "trafilatura"},
		{name: "httpx", engine: "httpx"},
		{
			name:   "firecrawl with key",
			engine: "firecrawl",
			cfg:    config.FetchConfig{FirecrawlAPIKey: "fc-abc"},
		},
		{
			name:    "firecrawl without key",
			engine:  "firecrawl",
			wantErr: "firecrawl_api_key",
		},
		{
			name:    "tavily with placeholder key",
			engine:  "tavily",
			cfg:     config.FetchConfig{TavilyAPIKey: "YOUR_TAVILY_KEY"},
			wantErr: "tavily_api_key",
		},
		{
			name:    "unknown engine",
			engine:  "lynx",
			wantErr: `unknown fetch engine "lynx"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, err := NewEngine(tt.engine, tt.cfg)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.engine, engine.Name())
		})
	}
}

func TestChunkBatches(t *testing.T) {
	urls := func(n int) []string {
		if n == 0 {
			return nil
		}
		out := make([]string, n)
		for i := range out {
			out[i] = fmt.Sprintf("https://example.com/p%d", i)
		}
		return out
	}

	tests := []struct {
		name      string
		n         int
		maxBatch  int
		batchSize int
		wantSizes []int
	}{
		{
			name:      "tavily 21 urls splits 20 plus 1",
			n:         21,
			maxBatch:  TavilyMaxBatch,
			wantSizes: []int{20, 1},
		},
		{
			name:      "exact multiple",
			n:         40,
			maxBatch:  TavilyMaxBatch,
			wantSizes: []int{20, 20},
		},
		{
			name:      "configured batch size below engine cap wins",
			n:         25,
			maxBatch:  TavilyMaxBatch,
			batchSize: 10,
			wantSizes: []int{10, 10, 5},
		},
		{
			name:      "batch size above engine cap is clamped",
			n:         21,
			maxBatch:  TavilyMaxBatch,
			batchSize: 100,
			wantSizes: []int{20, 1},
		},
		{
			name:      "per-url engine gets singletons",
			n:         3,
			maxBatch:  0,
			wantSizes: []int{1, 1, 1},
		},
		{
			name:      "empty input",
			n:         0,
			maxBatch:  TavilyMaxBatch,
			wantSizes: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := urls(tt.n)
			batches := chunkBatches(input, tt.maxBatch, tt.batchSize)

			var sizes []int
			var flat []string
			for _, b := range batches {
				sizes = append(sizes, len(b))
				flat = append(flat, b...)
			}
			assert.Equal(t, tt.wantSizes, sizes)
			assert.Equal(t, input, flat, "every url appears exactly once, in order")
		})
	}
}
