package config

import (
	"fmt"
	"strings"
)

// validEngines are the fetch engines the pipeline knows how to drive.
var validEngines = map[string]bool{
	"trafilatura": true,
	"httpx":       true,
	"firecrawl":   true,
	"tavily":      true,
}

// Validator validates configuration comprehensively with clear error messages
type Validator struct {
	cfg *Config
}

// NewValidator creates a validator for the given configuration
func NewValidator(cfg *Config) *Validator {
	return &Validator{cfg: cfg}
}

// ValidateAll performs comprehensive validation (fail-fast - stops at first error)
func (v *Validator) ValidateAll() error {
	if err := v.validatePaths(); err != nil {
		return err
	}
	if err := v.validateFetch(); err != nil {
		return err
	}
	if err := v.validateIndexing(); err != nil {
		return err
	}
	if err := v.validateCredentials(); err != nil {
		return err
	}
	return nil
}

func (v *Validator) validatePaths() error {
	if v.cfg.Paths.Sources == "" {
		return NewValidationError("paths", "sources", ErrMissingRequiredField)
	}
	return nil
}

func (v *Validator) validateFetch() error {
	f := v.cfg.Fetch
	if !validEngines[f.Engine] {
		return NewValidationError("fetch", "engine",
			fmt.Errorf("%w: %q (valid: trafilatura, httpx, firecrawl, tavily)", ErrInvalidValue, f.Engine))
	}
	if f.Concurrency < 1 {
		return NewValidationError("fetch", "concurrency",
			fmt.Errorf("%w: must be at least 1", ErrInvalidValue))
	}
	if f.BatchSize < 1 {
		return NewValidationError("fetch", "batch_size",
			fmt.Errorf("%w: must be at least 1", ErrInvalidValue))
	}
	return nil
}

func (v *Validator) validateIndexing() error {
	i := v.cfg.Indexing
	if i.SimilarityThreshold <= 0 || i.SimilarityThreshold > 1 {
		return NewValidationError("indexing", "similarity_threshold",
			fmt.Errorf("%w: must be in (0, 1]", ErrInvalidValue))
	}
	if i.SectionMinChars < 1 || i.SectionMaxChars < i.SectionMinChars {
		return NewValidationError("indexing", "section_max_chars",
			fmt.Errorf("%w: need 1 <= section_min_chars <= section_max_chars", ErrInvalidValue))
	}
	return nil
}

// validateCredentials rejects placeholder values. A credential left at its
// YOUR_* template value means the section is unconfigured; failing here beats
// a confusing 401 mid-workflow.
func (v *Validator) validateCredentials() error {
	if isPlaceholder(v.cfg.LLM.APIKey) {
		return NewValidationError("llm", "api_key", ErrPlaceholderCredential)
	}
	if isPlaceholder(v.cfg.Embedding.APIKey) {
		return NewValidationError("embedding", "api_key", ErrPlaceholderCredential)
	}
	if isPlaceholder(v.cfg.Fetch.FirecrawlAPIKey) {
		return NewValidationError("fetch", "firecrawl_api_key", ErrPlaceholderCredential)
	}
	if isPlaceholder(v.cfg.Fetch.TavilyAPIKey) {
		return NewValidationError("fetch", "tavily_api_key", ErrPlaceholderCredential)
	}

	for provider, key := range v.cfg.Research {
		if isPlaceholder(key) {
			return NewValidationError("research", provider, ErrPlaceholderCredential)
		}
	}
	for platform, cms := range v.cfg.CMS {
		if isPlaceholder(cms.Token) {
			return NewValidationError("cms", platform+".token", ErrPlaceholderCredential)
		}
	}
	for provider, a := range v.cfg.Analytics {
		if isPlaceholder(a.APIKey) {
			return NewValidationError("analytics", provider+".api_key", ErrPlaceholderCredential)
		}
	}
	return nil
}

// isPlaceholder reports whether a credential still holds a YOUR_* template value.
func isPlaceholder(value string) bool {
	return strings.HasPrefix(strings.ToUpper(value), "YOUR_")
}

// IsConfigured reports whether a credential is present and not a placeholder.
func IsConfigured(value string) bool {
	return value != "" && !isPlaceholder(value)
}
