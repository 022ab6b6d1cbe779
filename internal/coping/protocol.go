package coping

import (
	"context"
	"fmt"
	"respire/internal/models"
	"respire/internal/providers"
	"respire/internal/structures"
	"sync"
	"time"

	"github.com/google/uuid"
)

type ProtocolInterface interface {
	Open() (View, error)
	Current() (View, bool)
	Fire(ctx context.Context, id string, event Event, text string) (View, error)
	CloseAll()
}

// Protocol holds at most one open panic session, like the modal it backs.
type Protocol struct {
	mu      sync.Mutex
	active  *Session
	unit    time.Duration
	journal Journal
	logger  providers.Logger
	now     func() time.Time
}

func NewProtocol(conf *structures.Config, journal Journal, logger providers.Logger) ProtocolInterface {
	return &Protocol{
		unit:    conf.Panic.BreathUnit,
		journal: journal,
		logger:  logger,
		now:     time.Now,
	}
}

// Open starts a fresh session in the menu state, closing any previous one.
func (p *Protocol) Open() (View, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return View{}, fmt.Errorf("generate session id: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.active != nil {
		p.active.shutdown()
	}
	p.active = newSession(id.String(), p.now(), p.unit, p.journal)
	p.logger.Infof(providers.TypeApp, "Panic protocol opened (%s)", id)
	return p.active.View(), nil
}

func (p *Protocol) Current() (View, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.active == nil {
		return View{}, false
	}
	return p.active.View(), true
}

func (p *Protocol) Fire(ctx context.Context, id string, event Event, text string) (View, error) {
	p.mu.Lock()
	session := p.active
	p.mu.Unlock()

	if session == nil || session.id != id {
		return View{}, fmt.Errorf("%w: panic session %s", models.ErrNotFound, id)
	}

	view, err := session.Fire(ctx, event, text)
	if err != nil {
		return view, err
	}

	if view.State == StateClosed {
		p.mu.Lock()
		if p.active == session {
			p.active = nil
		}
		p.mu.Unlock()
		p.logger.Infof(providers.TypeApp, "Panic protocol closed (%s) after %s", id, event)
	}
	return view, nil
}

func (p *Protocol) CloseAll() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.active != nil {
		p.active.shutdown()
		p.active = nil
	}
}
