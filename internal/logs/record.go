package logs

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strings"

	"wallview/internal/logging"
)

// Record is one decoded JSON log line.
type Record struct {
	Time      string
	Level     string
	Component string
	Message   string
	EventType string
	Fields    map[string]any
}

// ParseRecord decodes a line written by the JSON log handler.
func ParseRecord(line string) (Record, error) {
	var raw map[string]any
	if err := json.Unmarshal([]byte(line), &raw); err != nil {
		return Record{}, fmt.Errorf("decode log record: %w", err)
	}
	rec := Record{
		Time:      takeString(raw, "ts"),
		Level:     strings.ToLower(takeString(raw, "level")),
		Component: takeString(raw, logging.FieldComponent),
		Message:   takeString(raw, "msg"),
		EventType: takeString(raw, logging.FieldEventType),
		Fields:    raw,
	}
	return rec, nil
}

var levelRank = map[string]int{"debug": 0, "info": 1, "warn": 2, "error": 3}

// AtLeast reports whether the record's level is min or more severe.
// Unknown levels always pass.
func (r Record) AtLeast(min string) bool {
	have, ok := levelRank[r.Level]
	if !ok {
		return true
	}
	want, ok := levelRank[strings.ToLower(strings.TrimSpace(min))]
	if !ok {
		return true
	}
	return have >= want
}

// Format renders the record on one line for terminal display.
func (r Record) Format() string {
	var b strings.Builder
	b.WriteString(r.Time)
	b.WriteByte(' ')
	b.WriteString(strings.ToUpper(r.Level))
	if r.Component != "" {
		fmt.Fprintf(&b, " [%s]", r.Component)
	}
	b.WriteString(" ")
	b.WriteString(r.Message)
	if r.EventType != "" {
		fmt.Fprintf(&b, " event_type=%s", r.EventType)
	}
	for _, key := range slices.Sorted(maps.Keys(r.Fields)) {
		fmt.Fprintf(&b, " %s=%v", key, r.Fields[key])
	}
	return b.String()
}

func takeString(raw map[string]any, key string) string {
	value, ok := raw[key]
	if !ok {
		return ""
	}
	delete(raw, key)
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}
