package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// fieldSet records which top-level JSON keys a request body carried.
type fieldSet map[string]bool

func (f fieldSet) has(name string) bool {
	if f == nil {
		return true
	}
	return f[name]
}

func decodeTracked(data []byte, v any) (fieldSet, error) {
	if err := json.Unmarshal(data, v); err != nil {
		return nil, err
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return nil, err
	}

	fields := make(fieldSet, len(keys))
	for key := range keys {
		fields[key] = true
	}
	return fields, nil
}

var eventDateLayouts = []string{
	time.DateOnly,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
}

// ParseEventDate accepts a calendar date (2006-01-02) or an RFC 3339 timestamp.
func ParseEventDate(value string) (time.Time, error) {
	for _, layout := range eventDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid event date %q", value)
}
