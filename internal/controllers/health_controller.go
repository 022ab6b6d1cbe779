package controllers

import (
	"fmt"
	"net/http"
	"respire/internal/coping"
	"respire/internal/services"
	"respire/internal/structures"
	"time"
)

type HealthController struct {
	quitClock services.QuitClockServiceInterface
	protocol  coping.ProtocolInterface
	version   string
	startTime time.Time
}

type healthResponse struct {
	Status        string  `json:"status"`
	Version       string  `json:"version"`
	Uptime        string  `json:"uptime"`
	UptimeSeconds float64 `json:"uptime_seconds"`
	TimerRunning  bool    `json:"timer_running"`
	PanicOpen     bool    `json:"panic_open"`
}

func (hc *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	uptime := time.Since(hc.startTime)
	_, panicOpen := hc.protocol.Current()
	writeJSON(w, http.StatusOK, healthResponse{
		Status:        "ok",
		Version:       hc.version,
		Uptime:        formatDuration(uptime),
		UptimeSeconds: uptime.Seconds(),
		TimerRunning:  hc.quitClock.Load(r.Context()).Running(),
		PanicOpen:     panicOpen,
	})
}

func formatDuration(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%dh%dm%ds", hours, minutes, seconds)
}

func NewHealthController(conf *structures.Config, quitClock services.QuitClockServiceInterface, protocol coping.ProtocolInterface) *HealthController {
	return &HealthController{
		quitClock: quitClock,
		protocol:  protocol,
		version:   conf.Version,
		startTime: time.Now(),
	}
}
