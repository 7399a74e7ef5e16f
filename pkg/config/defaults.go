package config

// Built-in defaults applied before the user's kurt.toml is merged on top.

// DefaultModel is used when neither a module nor a step names one.
const DefaultModel = "claude-sonnet-4-5"

// DefaultSimilarityThreshold is the claim clustering cosine threshold.
const DefaultSimilarityThreshold = 0.88

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Paths: PathsConfig{
			Sources:  "./sources",
			Projects: "./projects",
			Rules:    "./rules",
		},
		Fetch: FetchConfig{
			Engine:      "trafilatura",
			BatchSize:   100,
			Concurrency: 5,
			EmbedChars:  1000,
			EmbedBatch:  100,
		},
		Indexing: IndexingConfig{
			Model:               DefaultModel,
			SimilarityThreshold: DefaultSimilarityThreshold,
			SectionMinChars:     500,
			SectionMaxChars:     5000,
			SectionOverlap:      200,
		},
		Answer: AnswerConfig{
			Model: DefaultModel,
		},
		LLM: LLMConfig{
			DefaultModel: DefaultModel,
			MaxTokens:    8192,
		},
		Embedding: EmbeddingConfig{
			Model:      "voyage-3-lite",
			Dimensions: 512,
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
		Queue:     DefaultQueueConfig(),
		Retention: DefaultRetentionConfig(),
		Research:  map[string]string{},
		CMS:       map[string]CMSConfig{},
		Analytics: map[string]AnalyticsConfig{},
	}
}
