package bot

import (
	"regexp"
	"strings"
)

var (
	punctRuns = regexp.MustCompile(`[?!.]+`)
	spaceRuns = regexp.MustCompile(`\s+`)
)

// Normalize prepares text for matching: lowercase, runs of sentence
// punctuation become a single space, whitespace collapses, edges trim.
// Pure and total; empty in, empty out.
func Normalize(text string) string {
	text = strings.ToLower(text)
	text = punctRuns.ReplaceAllString(text, " ")
	text = spaceRuns.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
