package llm

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
)

var ErrNoJSON = errors.New("no JSON found in model output")

var (
	arrayRe       = regexp.MustCompile(`(?s)\[.*\]`)
	namedObjectRe = regexp.MustCompile(`(?s)\{[^{}]*"name"[^{}]*\}`)
)

// DecodeArray unmarshals the outermost [...] span of text into out
func DecodeArray(text string, out any) error {
	span := arrayRe.FindString(text)
	if span == "" {
		return ErrNoJSON
	}
	return json.Unmarshal([]byte(span), out)
}

// DecodeObject unmarshals the span between the first '{' and the last '}'
func DecodeObject(text string, out any) error {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end < start {
		return ErrNoJSON
	}
	return json.Unmarshal([]byte(text[start:end+1]), out)
}

// SalvageNamed decodes every flat object mentioning "name"; objects that fail to parse are skipped
func SalvageNamed[T any](text string) []T {
	matches := namedObjectRe.FindAllString(text, -1)
	res := make([]T, 0, len(matches))
	for _, m := range matches {
		var v T
		if err := json.Unmarshal([]byte(m), &v); err != nil {
			continue
		}
		res = append(res, v)
	}
	return res
}
