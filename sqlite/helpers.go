package sqlite

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// parseRFC3339 parses an RFC3339 formatted timestamp string.
// Returns an error if parsing fails with a descriptive message including the field name.
func parseRFC3339(value, fieldName string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", fieldName, err)
	}
	return t, nil
}

// appendPagination appends LIMIT and OFFSET clauses to a query builder if values are > 0.
func appendPagination(query *strings.Builder, args *[]any, limit, offset int) {
	if limit > 0 {
		query.WriteString(" LIMIT ?")
		*args = append(*args, limit)
	}
	if offset > 0 {
		query.WriteString(" OFFSET ?")
		*args = append(*args, offset)
	}
}

// encodeStrings encodes a string slice as a JSON TEXT column value.
// A nil slice encodes as an empty list.
func encodeStrings(values []string) string {
	if values == nil {
		values = []string{}
	}
	b, _ := json.Marshal(values)
	return string(b)
}

// decodeStrings decodes a JSON TEXT column into a string slice.
func decodeStrings(value, fieldName string) ([]string, error) {
	out := []string{}
	if err := json.Unmarshal([]byte(value), &out); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", fieldName, err)
	}
	return out, nil
}

// encodeStringMap encodes a string map as a JSON TEXT column value.
func encodeStringMap(values map[string]string) string {
	if values == nil {
		values = map[string]string{}
	}
	b, _ := json.Marshal(values)
	return string(b)
}

// decodeStringMap decodes a JSON TEXT column into a string map.
func decodeStringMap(value, fieldName string) (map[string]string, error) {
	out := map[string]string{}
	if err := json.Unmarshal([]byte(value), &out); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", fieldName, err)
	}
	return out, nil
}
