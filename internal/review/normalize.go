package review

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Review text arrives with stray control characters and decorative
// symbols. Keep letters, Hangul, digits and whitespace; everything else
// becomes a space and whitespace runs collapse.
var (
	disallowedRunes = regexp.MustCompile(`[^a-zA-Z가-힣0-9\s]`)
	whitespaceRuns  = regexp.MustCompile(`\s+`)
)

// CleanText is the best-effort cleanup pass for free-text fields going
// into the summarization prompt. It never fails: composed-form
// normalization, newline removal, symbol stripping, whitespace
// collapsing and trimming, in that order.
func CleanText(s string) string {
	s = norm.NFC.String(s)
	s = strings.ReplaceAll(s, "\n", " ")
	s = disallowedRunes.ReplaceAllString(s, " ")
	s = whitespaceRuns.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
