package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandEnv(t *testing.T) {
	t.Setenv("KURT_TEST_KEY", "tvly-secret")
	t.Setenv("KURT_TEST_HOST", "db.internal")

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "single variable",
			input: `api_key = "{{.KURT_TEST_KEY}}"`,
			want:  `api_key = "tvly-secret"`,
		},
		{
			name:  "multiple variables in one value",
			input: `url = "{{.KURT_TEST_HOST}}:{{.KURT_TEST_KEY}}"`,
			want:  `url = "db.internal:tvly-secret"`,
		},
		{
			name:  "missing variable becomes empty",
			input: `key = "{{.KURT_TEST_DOES_NOT_EXIST}}"`,
			want:  `key = ""`,
		},
		{
			name:  "literal dollar untouched",
			input: `pattern = "^secret.*$" # costs $5`,
			want:  `pattern = "^secret.*$" # costs $5`,
		},
		{
			name:  "shell-style vars untouched",
			input: `path = "$PATH and ${ARRAY[0]}"`,
			want:  `path = "$PATH and ${ARRAY[0]}"`,
		},
		{
			name:  "no template syntax passes through",
			input: `engine = "trafilatura"`,
			want:  `engine = "trafilatura"`,
		},
		{
			name:  "malformed template returns original",
			input: `key = "{{.Broken"`,
			want:  `key = "{{.Broken"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, string(ExpandEnv([]byte(tt.input))))
		})
	}
}
