package config

import "time"

// RetentionConfig controls background cleanup of old data.
type RetentionConfig struct {
	// RunRetentionDays is how long terminal workflow runs are kept.
	RunRetentionDays int `toml:"run_retention_days"`

	// EventRetentionDays is how long step_events rows are kept; events age
	// out faster than runs since their value is live observability.
	EventRetentionDays int `toml:"event_retention_days"`

	// StagingRetentionDays is how long per-workflow staging rows
	// (discoveries, fetch_documents, section extractions, claim groups,
	// resolutions) are kept after their workflow reached a terminal state.
	StagingRetentionDays int `toml:"staging_retention_days"`

	// CleanupInterval is how often the cleanup pass runs.
	CleanupInterval time.Duration `toml:"cleanup_interval"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		RunRetentionDays:     90,
		EventRetentionDays:   7,
		StagingRetentionDays: 30,
		CleanupInterval:      6 * time.Hour,
	}
}
