package domain

import (
	"regexp"
	"strings"
)

var (
	// sentenceBoundary matches runs of terminal punctuation.
	sentenceBoundary = regexp.MustCompile(`[.!?]+`)

	// wordLetter matches ASCII letters plus the Latin-1 accented range,
	// which covers Dutch diacritics (ë, é, ï, ...).
	wordLetter = regexp.MustCompile(`[A-Za-zÀ-ÿ]`)
)

// SplitSentences breaks text into sentence segments on terminal punctuation
// (. ! ?). Segments are trimmed; segments that are empty or contain no letter
// are dropped. Source order is preserved, and a trailing fragment without
// terminal punctuation is kept if it is a valid segment.
func SplitSentences(text string) []string {
	var sentences []string
	for _, part := range sentenceBoundary.Split(text, -1) {
		part = strings.TrimSpace(part)
		if part == "" || !wordLetter.MatchString(part) {
			continue
		}
		sentences = append(sentences, part)
	}
	return sentences
}
