package gemini

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// decodeResponse recovers a JSON object from raw model output and decodes it into
// target. Numbers sent as strings and single values in place of lists are accepted.
func decodeResponse(raw string, target any) error {
	data, err := parseObject(raw)
	if err != nil {
		return err
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           target,
		TagName:          "mapstructure",
	})
	if err != nil {
		return fmt.Errorf("create response decoder: %w", err)
	}

	if err := decoder.Decode(data); err != nil {
		return fmt.Errorf("decode gemini response: %w", err)
	}

	return nil
}

// parseObject tries progressively more forgiving readings of raw: as is, without
// markdown fences, the outermost {...} span, and finally with raw line breaks
// inside string literals escaped.
func parseObject(raw string) (map[string]any, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, errors.New("parse gemini response: empty output")
	}

	stripped := extractJSON(raw)
	candidates := []string{raw, stripped}
	if span, ok := outermostObject(stripped); ok {
		candidates = append(candidates, span, escapeControlInStrings(span))
	}

	var lastErr error
	for _, candidate := range candidates {
		var data map[string]any
		err := json.Unmarshal([]byte(candidate), &data)
		if err == nil && data != nil {
			return data, nil
		}
		if err == nil {
			err = errors.New("response is not a JSON object")
		}
		lastErr = err
	}

	return nil, fmt.Errorf("parse gemini response: %w", lastErr)
}

func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	return strings.TrimSpace(raw)
}

func outermostObject(s string) (string, bool) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return "", false
	}
	return s[start : end+1], true
}

// escapeControlInStrings escapes literal newlines, carriage returns and tabs that
// appear inside JSON string literals.
func escapeControlInStrings(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	inString, escaped := false, false
	for _, r := range s {
		if inString {
			switch {
			case escaped:
				escaped = false
			case r == '\\':
				escaped = true
			case r == '"':
				inString = false
			case r == '\n':
				b.WriteString(`\n`)
				continue
			case r == '\r':
				b.WriteString(`\r`)
				continue
			case r == '\t':
				b.WriteString(`\t`)
				continue
			}
		} else if r == '"' {
			inString = true
		}
		b.WriteRune(r)
	}

	return b.String()
}
