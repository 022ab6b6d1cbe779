package models

import (
	"fmt"

	json "github.com/goccy/go-json"
)

type LogType string

const (
	LogTypePanic   LogType = "panic"
	LogTypeRelapse LogType = "relapse"
)

func ParseLogType(s string) (LogType, error) {
	switch LogType(s) {
	case LogTypePanic, LogTypeRelapse:
		return LogType(s), nil
	}
	return "", fmt.Errorf("%w: unknown log type %q", ErrInvalidInput, s)
}

func (t *LogType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseLogType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// LogEntry is append-only. The stored list is kept newest-first.
type LogEntry struct {
	ID        string  `json:"id"`
	Timestamp int64   `json:"timestamp"`
	Trigger   string  `json:"trigger"`
	Type      LogType `json:"type"`
}
