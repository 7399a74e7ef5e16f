package fetch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedupImages(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "consecutive duplicates collapsed",
			input: "![hero](a.png)\n![hero](a.png)\n![hero](a.png)",
			want:  "![hero](a.png)",
		},
		{
			name:  "different urls kept",
			input: "![a](a.png)\n![b](b.png)",
			want:  "![a](a.png)\n![b](b.png)",
		},
		{
			name:  "text between repeats breaks the run",
			input: "![a](a.png)\nSome caption.\n![a](a.png)",
			want:  "![a](a.png)\nSome caption.\n![a](a.png)",
		},
		{
			name:  "blank line does not break the run",
			input: "![a](a.png)\n\n![a](a.png)",
			want:  "![a](a.png)\n",
		},
		{
			name:  "alt text differences ignored when url matches",
			input: "![small](a.png)\n![large](a.png)",
			want:  "![small](a.png)",
		},
		{
			name:  "inline image in prose not touched",
			input: "See ![icon](i.png) here\nSee ![icon](i.png) here",
			want:  "See ![icon](i.png) here\nSee ![icon](i.png) here",
		},
		{
			name:  "no images",
			input: "# Title\n\nJust text.",
			want:  "# Title\n\nJust text.",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DedupImages(tt.input))
		})
	}
}
