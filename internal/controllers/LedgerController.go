package controllers

import (
	"fmt"
	"net/http"
	"respire/internal/models"
	"respire/internal/providers"
	"respire/internal/services"

	json "github.com/goccy/go-json"
)

type LedgerController struct {
	logger    providers.Logger
	quitClock services.QuitClockServiceInterface
	settings  services.SettingsServiceInterface
	bounties  services.BountyLedgerServiceInterface
	journal   services.TriggerLogServiceInterface
	dashboard services.DashboardServiceInterface
	reset     services.ResetServiceInterface
	cache     providers.CacheProviderInterface
}

func NewLedgerController(
	logger providers.Logger,
	quitClock services.QuitClockServiceInterface,
	settings services.SettingsServiceInterface,
	bounties services.BountyLedgerServiceInterface,
	journal services.TriggerLogServiceInterface,
	dashboard services.DashboardServiceInterface,
	reset services.ResetServiceInterface,
	cache providers.CacheProviderInterface,
) *LedgerController {
	return &LedgerController{
		logger:    logger,
		quitClock: quitClock,
		settings:  settings,
		bounties:  bounties,
		journal:   journal,
		dashboard: dashboard,
		reset:     reset,
		cache:     cache,
	}
}

type startRequest struct {
	Timestamp *int64 `json:"timestamp"`
	Days      int    `json:"days"`
	Hours     int    `json:"hours"`
}

type relapseRequest struct {
	Trigger string `json:"trigger"`
}

type settingsRequest struct {
	UnitsPerDay    *float64 `json:"unitsPerDay"`
	ConversionRate *float64 `json:"conversionRate"`
}

type bountyRequest struct {
	Title string   `json:"title" validate:"required"`
	Cost  *float64 `json:"cost"`
}

type bountyIDRequest struct {
	ID string `json:"id" validate:"required"`
}

type logRequest struct {
	Trigger string `json:"trigger"`
	Type    string `json:"type" validate:"required|in:panic,relapse"`
}

// serveFromCacheOrCompute caches only values read from a healthy store.
// A fallback produced by a failed read is served once and not cached.
func (lc *LedgerController) serveFromCacheOrCompute(w http.ResponseWriter, r *http.Request, cacheKey string, compute func() (any, error)) {
	if data, ok := lc.cache.Get(cacheKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}

	value, readErr := compute()
	gson, err := json.Marshal(value)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if readErr != nil {
		lc.logger.Errorf(providers.GetLogTypeByRequestType(r.Method), "Serving fallback for %s: %s", r.URL.Path, readErr)
	} else {
		lc.cache.Set(cacheKey, gson)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

func (lc *LedgerController) GetQuit(w http.ResponseWriter, r *http.Request) {
	lc.serveFromCacheOrCompute(w, r, cacheKeyQuit, func() (any, error) {
		return lc.quitClock.Fetch(r.Context())
	})
}

func (lc *LedgerController) StartQuit(w http.ResponseWriter, r *http.Request) {
	var req startRequest
	if err := decodePayload(w, r, &req); err != nil {
		writeError(w, lc.logger, r, err)
		return
	}

	var ts int64
	var err error
	if req.Timestamp != nil {
		ts, err = *req.Timestamp, lc.quitClock.Start(r.Context(), *req.Timestamp)
	} else {
		ts, err = lc.quitClock.StartWithOffset(r.Context(), req.Days, req.Hours)
	}
	if err != nil {
		writeError(w, lc.logger, r, err)
		return
	}
	lc.cache.Del(cacheKeyQuit)
	writeJSON(w, http.StatusCreated, models.NewQuitState(ts))
}

func (lc *LedgerController) ResetQuit(w http.ResponseWriter, r *http.Request) {
	if err := lc.quitClock.Reset(r.Context()); err != nil {
		writeError(w, lc.logger, r, err)
		return
	}
	lc.cache.Del(cacheKeyQuit)
	writeJSON(w, http.StatusOK, models.QuitState{})
}

func (lc *LedgerController) Relapse(w http.ResponseWriter, r *http.Request) {
	var req relapseRequest
	if err := decodePayload(w, r, &req); err != nil {
		writeError(w, lc.logger, r, err)
		return
	}
	err := lc.quitClock.Relapse(r.Context(), req.Trigger)
	lc.cache.Del(cacheKeyQuit, cacheKeyLogs)
	if err != nil {
		writeError(w, lc.logger, r, err)
		return
	}
	writeJSON(w, http.StatusOK, models.QuitState{})
}

func (lc *LedgerController) GetSettings(w http.ResponseWriter, r *http.Request) {
	lc.serveFromCacheOrCompute(w, r, cacheKeySettings, func() (any, error) {
		return lc.settings.Fetch(r.Context())
	})
}

func (lc *LedgerController) SaveSettings(w http.ResponseWriter, r *http.Request) {
	var req settingsRequest
	if err := decodePayload(w, r, &req); err != nil {
		writeError(w, lc.logger, r, err)
		return
	}
	if req.UnitsPerDay == nil || req.ConversionRate == nil {
		writeError(w, lc.logger, r, fmt.Errorf("%w: unitsPerDay and conversionRate are required", models.ErrInvalidInput))
		return
	}

	settings := models.Settings{UnitsPerDay: *req.UnitsPerDay, ConversionRate: *req.ConversionRate}
	if err := lc.settings.Save(r.Context(), settings); err != nil {
		writeError(w, lc.logger, r, err)
		return
	}
	lc.cache.Del(cacheKeySettings)
	writeJSON(w, http.StatusOK, settings)
}

func (lc *LedgerController) GetStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, lc.dashboard.Dashboard(r.Context()))
}

// StreamStats pushes a dashboard as a server-sent event on every tick
// until the client goes away.
func (lc *LedgerController) StreamStats(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	err := lc.dashboard.Stream(r.Context(), func(d services.Dashboard) error {
		gson, err := json.Marshal(d)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "data: %s\n\n", gson); err != nil {
			return err
		}
		flusher.Flush()
		return nil
	})
	if err != nil {
		lc.logger.Debugf(providers.TypeGet, "Stats stream ended: %s", err)
	}
}

func (lc *LedgerController) GetMilestones(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, lc.dashboard.Milestones(r.Context()))
}

func (lc *LedgerController) GetBounties(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, lc.dashboard.BountyBoard(r.Context()))
}

func (lc *LedgerController) AddBounty(w http.ResponseWriter, r *http.Request) {
	var req bountyRequest
	if err := decodePayload(w, r, &req); err != nil {
		writeError(w, lc.logger, r, err)
		return
	}
	if req.Cost == nil {
		writeError(w, lc.logger, r, fmt.Errorf("%w: cost is required", models.ErrInvalidInput))
		return
	}

	bounty, err := lc.bounties.Add(r.Context(), req.Title, *req.Cost)
	if err != nil {
		writeError(w, lc.logger, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, bounty)
}

func (lc *LedgerController) RedeemBounty(w http.ResponseWriter, r *http.Request) {
	var req bountyIDRequest
	if err := decodePayload(w, r, &req); err != nil {
		writeError(w, lc.logger, r, err)
		return
	}

	result, err := lc.dashboard.Redeem(r.Context(), req.ID)
	if err != nil {
		writeError(w, lc.logger, r, err)
		return
	}
	// a denied redemption is a normal answer, the UI shows it locked
	writeJSON(w, http.StatusOK, result)
}

func (lc *LedgerController) DeleteBounty(w http.ResponseWriter, r *http.Request) {
	var req bountyIDRequest
	if err := decodePayload(w, r, &req); err != nil {
		writeError(w, lc.logger, r, err)
		return
	}
	if err := lc.bounties.Delete(r.Context(), req.ID); err != nil {
		writeError(w, lc.logger, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (lc *LedgerController) GetLogs(w http.ResponseWriter, r *http.Request) {
	lc.serveFromCacheOrCompute(w, r, cacheKeyLogs, func() (any, error) {
		return lc.journal.Fetch(r.Context())
	})
}

func (lc *LedgerController) AppendLog(w http.ResponseWriter, r *http.Request) {
	var req logRequest
	if err := decodePayload(w, r, &req); err != nil {
		writeError(w, lc.logger, r, err)
		return
	}
	logType, err := models.ParseLogType(req.Type)
	if err != nil {
		writeError(w, lc.logger, r, err)
		return
	}

	entry, err := lc.journal.Append(r.Context(), req.Trigger, logType)
	if err != nil {
		writeError(w, lc.logger, r, err)
		return
	}
	lc.cache.Del(cacheKeyLogs)
	writeJSON(w, http.StatusCreated, entry)
}

func (lc *LedgerController) FactoryReset(w http.ResponseWriter, r *http.Request) {
	err := lc.reset.FactoryReset(r.Context())
	lc.cache.Del(cacheKeyQuit, cacheKeySettings, cacheKeyLogs)
	if err != nil {
		writeError(w, lc.logger, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
