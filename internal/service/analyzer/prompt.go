package analyzer

import "fmt"

// buildPrompt creates the analysis prompt for a single Dutch sentence.
// The embedded example anchors the JSON shape the model must return.
// The sentence is interpolated verbatim.
func buildPrompt(sentence string) string {
	return fmt.Sprintf(`Analyze this Dutch sentence and extract grammatical components in JSON format.

Sentence: "%s"

For each word or phrase, identify its grammatical role. Return a JSON object with:
- "sentence_translation": the English translation of the entire sentence
- "components": JSON array with objects containing:
  - "word": the word or phrase
  - "type": the grammatical type (subject, verb, object, adjective, article, noun, adverb, preposition, conjunction, etc.)
  - "position": the starting character position in the sentence
  - "translation": the English translation of the word or phrase
  - "details": additional relevant grammatical information, for example verb infinitive form and verb tense used, make sure to check separable verbs and multi-word expressions.


Format expected:
{
  "sentence_translation": "The cat sits on the table.",
  "components": [
    {"word": "De", "type": "article", "position": 0, "translation": "The", "details": {"article-type": "definite"}},
    {"word": "kat", "type": "noun", "position": 3, "translation": "cat", "details": {"noun-gender": "feminine", "de-or-het": "de"}},
    {"word": "zit", "type": "verb", "position": 7, "translation": "sits", "details": {"verb-tense": "present", "infinitive": "zitten"}},
    {"word": "op", "type": "preposition", "position": 11, "translation": "on", "details": {"preposition-type": "directional"}},
    {"word": "de", "type": "article", "position": 14, "translation": "the", "details": {"article-type": "definite"}},
    {"word": "tafel", "type": "noun", "position": 17, "translation": "table", "details": {"noun-gender": "feminine", "de-or-het": "de"}}
  ]
}

Return only the JSON object, no other text. Make sure JSON is properly formatted.`, sentence)
}
