package coping

import (
	"context"
	"fmt"
	"respire/internal/models"
	"strings"
	"sync"
	"time"
)

type State string

const (
	StateMenu     State = "menu"
	StateBreathe  State = "breathe"
	StateDistract State = "distract"
	StateLog      State = "log"
	StateClosed   State = "closed"
)

type Event string

const (
	EventChooseBreathe  Event = "choose_breathe"
	EventChooseDistract Event = "choose_distract"
	EventStable         Event = "stable"
	EventTap            Event = "tap"
	EventArchive        Event = "archive"
	EventClose          Event = "close"
)

func ParseEvent(s string) (Event, error) {
	switch e := Event(s); e {
	case EventChooseBreathe, EventChooseDistract, EventStable, EventTap, EventArchive, EventClose:
		return e, nil
	}
	return "", fmt.Errorf("%w: unknown panic event %q", models.ErrInvalidInput, s)
}

// transitions lists the target state per (state, event). Archive and
// close are handled separately because they may write to the journal.
var transitions = map[State]map[Event]State{
	StateMenu: {
		EventChooseBreathe:  StateBreathe,
		EventChooseDistract: StateDistract,
	},
	StateBreathe: {
		EventStable: StateLog,
	},
	StateDistract: {
		EventTap:    StateDistract,
		EventStable: StateLog,
	},
}

// Journal receives the trigger written when a session is archived.
type Journal interface {
	Append(ctx context.Context, trigger string, logType models.LogType) (models.LogEntry, error)
}

type View struct {
	ID       string      `json:"id"`
	State    State       `json:"state"`
	Phase    BreathPhase `json:"phase,omitempty"`
	Taps     int         `json:"taps"`
	OpenedAt int64       `json:"openedAt"`
}

type Session struct {
	mu       sync.Mutex
	id       string
	state    State
	phase    BreathPhase
	taps     int
	openedAt time.Time
	unit     time.Duration
	journal  Journal

	breathGen    int
	breathCancel context.CancelFunc
}

func newSession(id string, openedAt time.Time, unit time.Duration, journal Journal) *Session {
	return &Session{
		id:       id,
		state:    StateMenu,
		openedAt: openedAt,
		unit:     unit,
		journal:  journal,
	}
}

func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view()
}

func (s *Session) view() View {
	return View{ID: s.id, State: s.state, Phase: s.phase, Taps: s.taps, OpenedAt: s.openedAt.UnixMilli()}
}

// Fire applies one event. Archive writes a panic entry only when text is
// not blank; close never writes.
func (s *Session) Fire(ctx context.Context, event Event, text string) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateClosed {
		return s.view(), fmt.Errorf("%w: session is closed", models.ErrInvalidTransition)
	}

	switch event {
	case EventClose:
		s.enter(StateClosed)
		return s.view(), nil
	case EventArchive:
		if s.state != StateLog {
			return s.view(), fmt.Errorf("%w: %s from %s", models.ErrInvalidTransition, event, s.state)
		}
		if strings.TrimSpace(text) != "" {
			if _, err := s.journal.Append(ctx, text, models.LogTypePanic); err != nil {
				return s.view(), err
			}
		}
		s.enter(StateClosed)
		return s.view(), nil
	}

	next, ok := transitions[s.state][event]
	if !ok {
		return s.view(), fmt.Errorf("%w: %s from %s", models.ErrInvalidTransition, event, s.state)
	}
	if event == EventTap {
		s.taps++
	}
	s.enter(next)
	return s.view(), nil
}

// enter must be called with mu held.
func (s *Session) enter(next State) {
	if s.state == next {
		return
	}
	if s.state == StateBreathe {
		s.stopBreathing()
	}
	s.state = next
	if next == StateBreathe {
		s.startBreathing()
	}
}

func (s *Session) startBreathing() {
	s.breathGen++
	gen := s.breathGen
	ctx, cancel := context.WithCancel(context.Background())
	s.breathCancel = cancel
	s.phase = BreathCycle[0].Phase

	go RunBreathing(ctx, s.unit, func(step BreathStep) {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.breathGen == gen && s.state == StateBreathe {
			s.phase = step.Phase
		}
	})
}

func (s *Session) stopBreathing() {
	if s.breathCancel != nil {
		s.breathCancel()
		s.breathCancel = nil
	}
	s.breathGen++
	s.phase = PhaseNone
}

// shutdown closes the session without writing anything.
func (s *Session) shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateClosed {
		s.enter(StateClosed)
	}
}
