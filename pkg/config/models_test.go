package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func configWithRaw(raw map[string]interface{}) *Config {
	cfg := DefaultConfig()
	cfg.Raw = raw
	return cfg
}

func TestSetting_Precedence(t *testing.T) {
	cfg := configWithRaw(map[string]interface{}{
		"model": "global-model",
		"indexing": map[string]interface{}{
			"model": "module-model",
			"cluster_claims": map[string]interface{}{
				"model": "step-model",
			},
		},
	})

	tests := []struct {
		name   string
		module string
		step   string
		want   string
	}{
		{"step override wins", "indexing", "cluster_claims", "step-model"},
		{"module override when step has none", "indexing", "extract_sections", "module-model"},
		{"module override with empty step", "indexing", "", "module-model"},
		{"global when module unknown", "answer", "synthesize", "global-model"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cfg.Setting(tt.module, tt.step, "model", "builtin"))
		})
	}
}

func TestSetting_DefaultWhenUnset(t *testing.T) {
	cfg := configWithRaw(map[string]interface{}{})
	assert.Equal(t, "builtin", cfg.Setting("indexing", "step", "model", "builtin"))

	cfg.Raw = nil
	assert.Equal(t, "builtin", cfg.Setting("indexing", "step", "model", "builtin"))
}

func TestSetting_TablesAreNotValues(t *testing.T) {
	cfg := configWithRaw(map[string]interface{}{
		"indexing": map[string]interface{}{
			// "model" here is a sub-table, not a value; it must not resolve.
			"model": map[string]interface{}{"provider": "x"},
		},
	})
	assert.Equal(t, "builtin", cfg.Setting("indexing", "", "model", "builtin"))
}

func TestSetting_NonStringScalarsStringified(t *testing.T) {
	cfg := configWithRaw(map[string]interface{}{
		"indexing": map[string]interface{}{"max_tokens": int64(4096)},
	})
	assert.Equal(t, "4096", cfg.Setting("indexing", "", "max_tokens", ""))
}

func TestModelFor(t *testing.T) {
	cfg := configWithRaw(map[string]interface{}{
		"indexing": map[string]interface{}{"model": "module-model"},
	})
	assert.Equal(t, "module-model", cfg.ModelFor("indexing", "any_step"))

	// Falls back to the configured LLM default, then the built-in.
	cfg = configWithRaw(map[string]interface{}{})
	cfg.LLM.DefaultModel = "configured-default"
	assert.Equal(t, "configured-default", cfg.ModelFor("indexing", ""))

	cfg.LLM.DefaultModel = ""
	assert.Equal(t, DefaultModel, cfg.ModelFor("indexing", ""))
}
