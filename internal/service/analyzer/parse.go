package analyzer

import (
	"encoding/json"
	"strings"

	"github.com/heartmarshall/dutchhelper-backend/internal/domain"
)

// parseReply extracts the grammatical components and sentence translation
// from a raw LLM reply. Models wrap the JSON in prose or code fences, so the
// candidate object is the substring between the first '{' and the last '}'.
//
// Every failure mode is a soft failure: missing braces, invalid JSON, or an
// unexpected shape all yield (nil, nil) rather than an error. Component items
// are accepted only if they carry both "word" and "type"; anything else is
// dropped without salvaging partial fields.
func parseReply(raw string) ([]domain.SentenceComponent, *string) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end <= start {
		return nil, nil
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(raw[start:end+1]), &payload); err != nil {
		return nil, nil
	}

	var translation *string
	if s, ok := payload["sentence_translation"].(string); ok {
		translation = &s
	}

	items, _ := payload["components"].([]any)
	var components []domain.SentenceComponent
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		word, wordOK := obj["word"].(string)
		typ, typeOK := obj["type"].(string)
		if !wordOK || !typeOK {
			continue
		}

		comp := domain.SentenceComponent{
			Type:  typ,
			Value: word,
		}
		if pos, ok := obj["position"].(float64); ok {
			comp.Position = int(pos)
		}
		if tr, ok := obj["translation"].(string); ok {
			comp.Translation = &tr
		}
		comp.Details = stringDetails(obj["details"])

		components = append(components, comp)
	}

	return components, translation
}

// stringDetails converts a decoded "details" value into a string map,
// keeping only string-valued entries. Returns nil for anything else.
func stringDetails(v any) map[string]string {
	obj, ok := v.(map[string]any)
	if !ok || len(obj) == 0 {
		return nil
	}
	details := make(map[string]string, len(obj))
	for k, val := range obj {
		if s, ok := val.(string); ok {
			details[k] = s
		}
	}
	if len(details) == 0 {
		return nil
	}
	return details
}
