package models

import "time"

// QuitState holds the sobriety start. A nil timestamp means no timer is
// running, which is a normal state rather than a failure.
type QuitState struct {
	QuitTimestamp *int64 `json:"quitTimestamp"`
}

func NewQuitState(ts int64) QuitState {
	return QuitState{QuitTimestamp: &ts}
}

func (q QuitState) Running() bool {
	return q.QuitTimestamp != nil
}

// Elapsed returns now minus the quit timestamp in milliseconds, or 0 when
// no timer runs. The result may be negative if the clock went backwards.
func (q QuitState) Elapsed(now time.Time) int64 {
	if q.QuitTimestamp == nil {
		return 0
	}
	return now.UnixMilli() - *q.QuitTimestamp
}
