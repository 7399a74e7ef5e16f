package fetch

import (
	"regexp"
	"strings"
)

var markdownImage = regexp.MustCompile(`!\[[^\]]*\]\(([^)\s]+)[^)]*\)`)

// DedupImages removes consecutive duplicate markdown images from fetched
// content, keeping the first occurrence of each run. Some publishers emit the
// same image for every responsive breakpoint; only adjacent repeats are
// collapsed so legitimately repeated images elsewhere survive.
func DedupImages(markdown string) string {
	lines := strings.Split(markdown, "\n")
	out := lines[:0]

	lastImageURL := ""
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		m := markdownImage.FindStringSubmatch(trimmed)

		// Only lines that are purely an image participate in the run.
		if m != nil && markdownImage.ReplaceAllString(trimmed, "") == "" {
			if m[1] == lastImageURL {
				continue
			}
			lastImageURL = m[1]
		} else if trimmed != "" {
			lastImageURL = ""
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
