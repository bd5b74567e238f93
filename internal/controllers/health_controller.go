package controllers

import (
	"fmt"
	"net/http"
	"time"

	json "github.com/goccy/go-json"

	"atd/internal/services"
)

type HealthController struct {
	service   services.TrackingServiceInterface
	startTime time.Time
}

type healthResponse struct {
	Status             string  `json:"status"`
	Uptime             string  `json:"uptime"`
	UptimeSeconds      float64 `json:"uptime_seconds"`
	TrackedFiles       int     `json:"tracked_files"`
	TrackedDays        int     `json:"tracked_days"`
	TotalActiveSeconds float64 `json:"total_active_seconds"`
}

func (hc *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	uptime := time.Since(hc.startTime)
	summary := hc.service.Summarize()
	resp := healthResponse{
		Status:             "ok",
		Uptime:             formatDuration(uptime),
		UptimeSeconds:      uptime.Seconds(),
		TrackedFiles:       summary.FileCount,
		TrackedDays:        summary.DayCount,
		TotalActiveSeconds: summary.TotalActiveSeconds,
	}

	gson, err := json.Marshal(resp)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

func formatDuration(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%dh%dm%ds", hours, minutes, seconds)
}

func NewHealthController(service services.TrackingServiceInterface) *HealthController {
	return &HealthController{
		service:   service,
		startTime: time.Now(),
	}
}
