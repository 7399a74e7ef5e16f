package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"dario.cat/mergo"
	"github.com/BurntSushi/toml"
)

// fileConfig mirrors the kurt.toml layout. Durations arrive as strings and
// are parsed during resolution.
type fileConfig struct {
	Paths     *PathsConfig               `toml:"paths"`
	Fetch     *FetchConfig               `toml:"fetch"`
	Indexing  *IndexingConfig            `toml:"indexing"`
	Answer    *AnswerConfig              `toml:"answer"`
	LLM       *LLMConfig                 `toml:"llm"`
	Embedding *EmbeddingConfig           `toml:"embedding"`
	Research  map[string]string          `toml:"research"`
	CMS       map[string]CMSConfig       `toml:"cms"`
	Analytics map[string]AnalyticsConfig `toml:"analytics"`
	Queue     *fileQueueConfig           `toml:"queue"`
	Server    *ServerConfig              `toml:"server"`
	Retention *fileRetentionConfig       `toml:"retention"`
}

// fileQueueConfig is the TOML shape of QueueConfig (durations as strings).
type fileQueueConfig struct {
	WorkerCount             int    `toml:"worker_count"`
	MaxConcurrentRuns       int    `toml:"max_concurrent_runs"`
	PollInterval            string `toml:"poll_interval"`
	PollIntervalJitter      string `toml:"poll_interval_jitter"`
	RunTimeout              string `toml:"run_timeout"`
	GracefulShutdownTimeout string `toml:"graceful_shutdown_timeout"`
	OrphanDetectionInterval string `toml:"orphan_detection_interval"`
	OrphanThreshold         string `toml:"orphan_threshold"`
	OrphanMaxRequeues       int    `toml:"orphan_max_requeues"`
	HeartbeatInterval       string `toml:"heartbeat_interval"`
}

// fileRetentionConfig is the TOML shape of RetentionConfig.
type fileRetentionConfig struct {
	RunRetentionDays     int    `toml:"run_retention_days"`
	EventRetentionDays   int    `toml:"event_retention_days"`
	StagingRetentionDays int    `toml:"staging_retention_days"`
	CleanupInterval      string `toml:"cleanup_interval"`
}

// Initialize loads, merges, and validates configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Read kurt.toml (a missing file yields built-in defaults)
//  2. Expand environment variables ({{.VAR}} template syntax)
//  3. Parse TOML into structs plus the raw key tree
//  4. Merge user values over built-in defaults
//  5. Validate (placeholder credentials, engine names, ranges)
func Initialize(_ context.Context, configPath string) (*Config, error) {
	log := slog.With("config_path", configPath)

	cfg := DefaultConfig()
	cfg.configPath = configPath

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			log.Info("No configuration file found, using built-in defaults")
			return cfg, nil
		}
		return nil, NewLoadError(configPath, err)
	}

	// Expand environment variables using {{.VAR}} template syntax.
	// Note: ExpandEnv passes through original data on parse/execution errors,
	// allowing the TOML parser to handle the content (or fail with a clearer
	// error message).
	data = ExpandEnv(data)

	var file fileConfig
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, NewLoadError(configPath, fmt.Errorf("%w: %v", ErrInvalidTOML, err))
	}

	// Keep the full key tree for MODULE.STEP.KEY setting resolution and for
	// sections the core does not model.
	var raw map[string]interface{}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, NewLoadError(configPath, fmt.Errorf("%w: %v", ErrInvalidTOML, err))
	}
	cfg.Raw = raw

	if err := mergeFile(cfg, &file); err != nil {
		return nil, NewLoadError(configPath, err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	log.Info("Configuration initialized successfully",
		"engine", cfg.Fetch.Engine,
		"indexing_model", cfg.Indexing.Model,
		"cms_platforms", len(cfg.CMS),
		"research_providers", len(cfg.Research))

	return cfg, nil
}

// mergeFile merges parsed file sections over built-in defaults.
// Non-zero user values override; unset values keep their defaults.
func mergeFile(cfg *Config, file *fileConfig) error {
	sections := []struct {
		name string
		dst  interface{}
		src  interface{}
	}{
		{"paths", &cfg.Paths, file.Paths},
		{"fetch", &cfg.Fetch, file.Fetch},
		{"indexing", &cfg.Indexing, file.Indexing},
		{"answer", &cfg.Answer, file.Answer},
		{"llm", &cfg.LLM, file.LLM},
		{"embedding", &cfg.Embedding, file.Embedding},
		{"server", &cfg.Server, file.Server},
	}
	for _, s := range sections {
		if isNil(s.src) {
			continue
		}
		if err := mergo.Merge(s.dst, s.src, mergo.WithOverride); err != nil {
			return fmt.Errorf("merging [%s]: %w", s.name, err)
		}
	}

	// ReprocessUnchanged is a bool; mergo cannot distinguish "false" from
	// "unset", so carry it explicitly.
	if file.Indexing != nil {
		cfg.Indexing.ReprocessUnchanged = file.Indexing.ReprocessUnchanged
	}

	for k, v := range file.Research {
		cfg.Research[k] = v
	}
	for k, v := range file.CMS {
		cfg.CMS[k] = v
	}
	for k, v := range file.Analytics {
		cfg.Analytics[k] = v
	}

	if file.Queue != nil {
		resolveQueue(cfg.Queue, file.Queue)
	}
	if file.Retention != nil {
		resolveRetention(cfg.Retention, file.Retention)
	}
	return nil
}

func resolveQueue(dst *QueueConfig, src *fileQueueConfig) {
	if src.WorkerCount > 0 {
		dst.WorkerCount = src.WorkerCount
	}
	if src.MaxConcurrentRuns > 0 {
		dst.MaxConcurrentRuns = src.MaxConcurrentRuns
	}
	if src.OrphanMaxRequeues > 0 {
		dst.OrphanMaxRequeues = src.OrphanMaxRequeues
	}
	setDuration(&dst.PollInterval, src.PollInterval, "queue.poll_interval")
	setDuration(&dst.PollIntervalJitter, src.PollIntervalJitter, "queue.poll_interval_jitter")
	setDuration(&dst.RunTimeout, src.RunTimeout, "queue.run_timeout")
	setDuration(&dst.GracefulShutdownTimeout, src.GracefulShutdownTimeout, "queue.graceful_shutdown_timeout")
	setDuration(&dst.OrphanDetectionInterval, src.OrphanDetectionInterval, "queue.orphan_detection_interval")
	setDuration(&dst.OrphanThreshold, src.OrphanThreshold, "queue.orphan_threshold")
	setDuration(&dst.HeartbeatInterval, src.HeartbeatInterval, "queue.heartbeat_interval")
}

func resolveRetention(dst *RetentionConfig, src *fileRetentionConfig) {
	if src.RunRetentionDays > 0 {
		dst.RunRetentionDays = src.RunRetentionDays
	}
	if src.EventRetentionDays > 0 {
		dst.EventRetentionDays = src.EventRetentionDays
	}
	if src.StagingRetentionDays > 0 {
		dst.StagingRetentionDays = src.StagingRetentionDays
	}
	setDuration(&dst.CleanupInterval, src.CleanupInterval, "retention.cleanup_interval")
}

// setDuration parses a duration string into dst, keeping the default and
// warning on parse failure.
func setDuration(dst *time.Duration, raw, key string) {
	if raw == "" {
		return
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		slog.Warn("Invalid duration in config, using default",
			"key", key, "value", raw, "default", *dst, "error", err)
		return
	}
	*dst = d
}

func isNil(v interface{}) bool {
	switch s := v.(type) {
	case *PathsConfig:
		return s == nil
	case *FetchConfig:
		return s == nil
	case *IndexingConfig:
		return s == nil
	case *AnswerConfig:
		return s == nil
	case *LLMConfig:
		return s == nil
	case *EmbeddingConfig:
		return s == nil
	case *ServerConfig:
		return s == nil
	}
	return v == nil
}

// validate performs comprehensive validation on loaded configuration
func validate(cfg *Config) error {
	validator := NewValidator(cfg)
	return validator.ValidateAll()
}
