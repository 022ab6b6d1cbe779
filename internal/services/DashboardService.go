package services

import (
	"context"
	"respire/internal/models"
	"respire/internal/structures"
	"time"
)

// Dashboard is what the main screen renders on every tick.
type Dashboard struct {
	Running          bool            `json:"running"`
	QuitTimestamp    *int64          `json:"quitTimestamp"`
	Stats            models.Snapshot `json:"stats"`
	Settings         models.Settings `json:"settings"`
	SpentCredits     float64         `json:"spentCredits"`
	AvailableCredits float64         `json:"availableCredits"`
}

type BountyBoard struct {
	Bounties         []models.Bounty `json:"bounties"`
	CreditsEarned    int64           `json:"creditsEarned"`
	AvailableCredits float64         `json:"availableCredits"`
}

type DashboardServiceInterface interface {
	Dashboard(ctx context.Context) Dashboard
	Milestones(ctx context.Context) []models.MilestoneStatus
	BountyBoard(ctx context.Context) BountyBoard
	Redeem(ctx context.Context, id string) (models.RedeemResult, error)
	Stream(ctx context.Context, emit func(Dashboard) error) error
	CurrentCredits() (earned int64, available float64)
}

type DashboardService struct {
	clock        Clock
	quitClock    QuitClockServiceInterface
	settings     SettingsServiceInterface
	bounties     BountyLedgerServiceInterface
	tickInterval time.Duration
}

func NewDashboardService(conf *structures.Config, clock Clock, quitClock QuitClockServiceInterface, settings SettingsServiceInterface, bounties BountyLedgerServiceInterface) DashboardServiceInterface {
	return &DashboardService{
		clock:        clock,
		quitClock:    quitClock,
		settings:     settings,
		bounties:     bounties,
		tickInterval: conf.Ledger.TickInterval,
	}
}

// ledgerState is the in-memory copy a ticker derives from without going
// back to the store.
type ledgerState struct {
	quit     models.QuitState
	settings models.Settings
	bounties []models.Bounty
}

func (s *DashboardService) load(ctx context.Context) ledgerState {
	return ledgerState{
		quit:     s.quitClock.Load(ctx),
		settings: s.settings.Load(ctx),
		bounties: s.bounties.All(ctx),
	}
}

func (st ledgerState) at(now time.Time) Dashboard {
	snapshot := models.DeriveStats(st.quit.Elapsed(now), st.settings)
	return Dashboard{
		Running:          st.quit.Running(),
		QuitTimestamp:    st.quit.QuitTimestamp,
		Stats:            snapshot,
		Settings:         st.settings,
		SpentCredits:     models.SpentCredits(st.bounties),
		AvailableCredits: models.AvailableCredits(snapshot.CreditsEarned, st.bounties),
	}
}

func (s *DashboardService) Dashboard(ctx context.Context) Dashboard {
	return s.load(ctx).at(s.clock.Now())
}

func (s *DashboardService) Milestones(ctx context.Context) []models.MilestoneStatus {
	return models.EvaluateMilestones(s.quitClock.CurrentElapsed(ctx, s.clock.Now()))
}

func (s *DashboardService) BountyBoard(ctx context.Context) BountyBoard {
	d := s.load(ctx).at(s.clock.Now())
	return BountyBoard{
		Bounties:         s.bounties.List(ctx),
		CreditsEarned:    d.Stats.CreditsEarned,
		AvailableCredits: d.AvailableCredits,
	}
}

func (s *DashboardService) Redeem(ctx context.Context, id string) (models.RedeemResult, error) {
	earned := models.DeriveStats(s.quitClock.CurrentElapsed(ctx, s.clock.Now()), s.settings.Load(ctx)).CreditsEarned
	return s.bounties.Redeem(ctx, id, earned)
}

// Stream loads the ledger once and pushes a recomputed dashboard every
// tick until ctx ends. Ticks never touch the store.
func (s *DashboardService) Stream(ctx context.Context, emit func(Dashboard) error) error {
	state := s.load(ctx)
	return RunTicker(ctx, s.clock, s.tickInterval, func(now time.Time) error {
		return emit(state.at(now))
	})
}

func (s *DashboardService) CurrentCredits() (int64, float64) {
	d := s.Dashboard(context.Background())
	return d.Stats.CreditsEarned, d.AvailableCredits
}
