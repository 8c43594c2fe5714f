package jsonld

import "strings"

// stringField returns the string value at key, or def when the value is
// absent or not a string.
func stringField(obj map[string]any, key, def string) string {
	if s, ok := obj[key].(string); ok {
		return s
	}
	return def
}

// intField returns the numeric value at key truncated to an int, or 0 when
// the value is absent or not a JSON number.
func intField(obj map[string]any, key string) int {
	if f, ok := obj[key].(float64); ok {
		return int(f)
	}
	return 0
}

// stringList returns the value as a sequence of strings. Non-string
// entries are skipped; a non-array value yields an empty sequence.
func stringList(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// textList applies the polymorphic list rule used by recipeInstructions
// and tool: a single string becomes a one-element sequence; a sequence of
// strings is used as-is; a sequence of objects (the HowToStep convention)
// contributes each object's "text" field, skipping objects without one.
// Any other shape yields an empty sequence.
func textList(v any) []string {
	switch val := v.(type) {
	case string:
		return []string{val}
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			switch entry := item.(type) {
			case string:
				out = append(out, entry)
			case map[string]any:
				if text, ok := entry["text"].(string); ok {
					out = append(out, text)
				}
			}
		}
		return out
	}
	return []string{}
}

// keywordList normalizes the keywords field: a string array is used as-is,
// a single comma-joined string is split into its parts.
func keywordList(v any) []string {
	switch val := v.(type) {
	case string:
		if val == "" {
			return []string{}
		}
		parts := strings.Split(val, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		return out
	case []any:
		return stringList(val)
	}
	return []string{}
}

// stringMap returns the value's string-valued entries, skipping the JSON-LD
// "@"-prefixed marker keys so the map carries nutrients only.
func stringMap(v any) map[string]string {
	obj, ok := v.(map[string]any)
	if !ok {
		return map[string]string{}
	}
	out := make(map[string]string, len(obj))
	for k, val := range obj {
		if strings.HasPrefix(k, "@") {
			continue
		}
		if s, ok := val.(string); ok {
			out[k] = s
		}
	}
	return out
}
