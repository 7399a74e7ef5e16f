// Package config loads and validates kurt.toml, the single configuration
// file for paths, engines, models, concurrency limits, and integration
// credentials.
package config

import "time"

// Config is the umbrella configuration object returned by Initialize()
// and passed through the application. The core reads specific keys;
// unknown keys pass through in Raw so integrations self-register.
type Config struct {
	configPath string

	Paths     PathsConfig
	Fetch     FetchConfig
	Indexing  IndexingConfig
	Answer    AnswerConfig
	LLM       LLMConfig
	Embedding EmbeddingConfig
	Research  map[string]string
	CMS       map[string]CMSConfig
	Analytics map[string]AnalyticsConfig
	Queue     *QueueConfig
	Server    ServerConfig
	Retention *RetentionConfig

	// Raw is the full decoded file, used for MODULE.STEP.KEY setting
	// resolution and for keys the core does not model.
	Raw map[string]interface{}
}

// ConfigPath returns the path the configuration was loaded from.
func (c *Config) ConfigPath() string {
	return c.configPath
}

// PathsConfig declares the filesystem roots.
type PathsConfig struct {
	Sources  string `toml:"sources"`
	Projects string `toml:"projects"`
	Rules    string `toml:"rules"`
}

// FetchConfig tunes the fetch pipeline.
type FetchConfig struct {
	Engine      string `toml:"engine"`
	BatchSize   int    `toml:"batch_size"`
	Concurrency int    `toml:"concurrency"`

	// EmbedChars caps how much of each document is embedded.
	EmbedChars int `toml:"embed_chars"`

	// EmbedBatch is how many documents go into one embedding call.
	EmbedBatch int `toml:"embed_batch"`

	FirecrawlAPIKey string `toml:"firecrawl_api_key"`
	TavilyAPIKey    string `toml:"tavily_api_key"`
}

// IndexingConfig tunes knowledge extraction.
type IndexingConfig struct {
	Model               string  `toml:"model"`
	SimilarityThreshold float64 `toml:"similarity_threshold"`
	SectionMinChars     int     `toml:"section_min_chars"`
	SectionMaxChars     int     `toml:"section_max_chars"`
	SectionOverlap      int     `toml:"section_overlap"`
	ReprocessUnchanged  bool    `toml:"reprocess_unchanged"`
}

// AnswerConfig tunes answer synthesis.
type AnswerConfig struct {
	Model string `toml:"model"`
}

// LLMConfig holds global LLM provider settings.
type LLMConfig struct {
	DefaultModel string `toml:"default_model"`
	APIKey       string `toml:"api_key"`
	MaxTokens    int    `toml:"max_tokens"`
	Timeout      string `toml:"timeout"`
}

// TimeoutDuration parses the configured LLM call timeout, falling back to
// the built-in default on absence or parse failure.
func (c LLMConfig) TimeoutDuration() time.Duration {
	if c.Timeout != "" {
		if d, err := time.ParseDuration(c.Timeout); err == nil {
			return d
		}
	}
	return 2 * time.Minute
}

// EmbeddingConfig holds embedding provider settings. An empty APIKey
// disables embeddings silently.
type EmbeddingConfig struct {
	APIKey     string `toml:"api_key"`
	Model      string `toml:"model"`
	Dimensions int    `toml:"dimensions"`
}

// CMSConfig holds per-platform CMS credentials.
type CMSConfig struct {
	Platform string `toml:"platform"`
	BaseURL  string `toml:"base_url"`
	Token    string `toml:"token"`
	Project  string `toml:"project"`
	Dataset  string `toml:"dataset"`
}

// AnalyticsConfig holds per-provider analytics credentials.
type AnalyticsConfig struct {
	APIKey string `toml:"api_key"`
	SiteID string `toml:"site_id"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr             string   `toml:"addr"`
	AllowedWSOrigins []string `toml:"allowed_ws_origins"`
}
