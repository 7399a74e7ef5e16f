package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// roundTripFunc stubs the Tavily HTTP transport.
type roundTripFunc func(req *http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) { return f(req) }

func stubClient(status int, body string) *http.Client {
	return &http.Client{Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: status,
			Body:       io.NopCloser(strings.NewReader(body)),
			Header:     http.Header{"Content-Type": []string{"application/json"}},
		}, nil
	})}
}

func TestTavilyFetch(t *testing.T) {
	body := `{
		"results": [
			{"url": "https://example.com/a", "raw_content": "# Page A"},
			{"url": "https://example.com/b", "raw_content": "# Page B"}
		],
		"failed_results": [
			{"url": "https://example.com/c", "error": "paywall"}
		]
	}`
	engine := NewTavily("tvly-key", stubClient(http.StatusOK, body))

	urls := []string{"https://example.com/a", "https://example.com/b", "https://example.com/c", "https://example.com/d"}
	out := engine.Fetch(context.Background(), urls)

	require.Len(t, out, 4)
	assert.Equal(t, "# Page A", out["https://example.com/a"].Content)
	assert.NoError(t, out["https://example.com/a"].Err)
	assert.Equal(t, "# Page B", out["https://example.com/b"].Content)

	require.Error(t, out["https://example.com/c"].Err)
	assert.Contains(t, out["https://example.com/c"].Err.Error(), "paywall")

	// URLs the API returned nothing for still get an entry.
	require.Error(t, out["https://example.com/d"].Err)
	assert.Contains(t, out["https://example.com/d"].Err.Error(), "no result")
}

func TestTavilyFetch_OversizedBatchRejected(t *testing.T) {
	called := false
	client := &http.Client{Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
		called = true
		return nil, fmt.Errorf("should not be reached")
	})}
	engine := NewTavily("tvly-key", client)

	urls := make([]string, TavilyMaxBatch+1)
	for i := range urls {
		urls[i] = fmt.Sprintf("https://example.com/p%d", i)
	}

	out := engine.Fetch(context.Background(), urls)
	assert.False(t, called, "oversized batch must not hit the API")
	require.Len(t, out, TavilyMaxBatch+1)
	for _, o := range out {
		require.Error(t, o.Err)
		assert.Contains(t, o.Err.Error(), "exceeds cap")
	}
}

func TestTavilyFetch_APIErrorFansOutPerURL(t *testing.T) {
	engine := NewTavily("tvly-bad", stubClient(http.StatusUnauthorized, `{"error": "invalid key"}`))

	urls := []string{"https://example.com/a", "https://example.com/b"}
	out := engine.Fetch(context.Background(), urls)

	require.Len(t, out, 2)
	for _, u := range urls {
		require.Error(t, out[u].Err)
		assert.Contains(t, out[u].Err.Error(), "status 401")
	}
}

func TestTavilyFetch_MalformedResponse(t *testing.T) {
	engine := NewTavily("tvly-key", stubClient(http.StatusOK, `not json`))

	out := engine.Fetch(context.Background(), []string{"https://example.com/a"})
	require.Error(t, out["https://example.com/a"].Err)
	assert.Contains(t, out["https://example.com/a"].Err.Error(), "decoding tavily response")
}

func TestTavilyFetch_SendsAuthAndBody(t *testing.T) {
	var gotAuth, gotBody string
	client := &http.Client{Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
		gotAuth = req.Header.Get("Authorization")
		data, _ := io.ReadAll(req.Body)
		gotBody = string(data)
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(`{"results": []}`)),
		}, nil
	})}
	engine := NewTavily("tvly-secret", client)

	engine.Fetch(context.Background(), []string{"https://example.com/a"})

	assert.Equal(t, "Bearer tvly-secret", gotAuth)
	assert.Contains(t, gotBody, `"urls":["https://example.com/a"]`)
}
