package controllers

import (
	"net/http"

	json "github.com/goccy/go-json"

	"atd/internal/providers"
	"atd/internal/services"
	"atd/internal/tracking/interfaces"
)

type ApiController struct {
	logger  providers.Logger
	service services.TrackingServiceInterface
	cache   providers.CacheProviderInterface
	tracker interfaces.TrackerInterface
}

func NewApiController(logger providers.Logger, service services.TrackingServiceInterface, cache providers.CacheProviderInterface, tracker interfaces.TrackerInterface) *ApiController {
	return &ApiController{
		logger:  logger,
		service: service,
		cache:   cache,
		tracker: tracker,
	}
}

func (ac *ApiController) serveFromCacheOrCompute(w http.ResponseWriter, cacheKey string, compute func() (any, error)) {
	if data, ok := ac.cache.Get(cacheKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}

	result, err := compute()
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	gson, err := json.Marshal(result)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ac.cache.Set(cacheKey, gson)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

// GetSummary returns the aggregate store view.
func (ac *ApiController) GetSummary(w http.ResponseWriter, r *http.Request) {
	ac.serveFromCacheOrCompute(w, "summary", func() (any, error) {
		return ac.service.Summarize(), nil
	})
}

// GetReport returns the flattened report rows, newest day first.
func (ac *ApiController) GetReport(w http.ResponseWriter, r *http.Request) {
	ac.serveFromCacheOrCompute(w, "report", func() (any, error) {
		return ac.service.GetRows(), nil
	})
}

// TriggerExport writes the report file on demand, outside the shutdown
// drain. Export failures are reported, never fatal.
func (ac *ApiController) TriggerExport(w http.ResponseWriter, r *http.Request) {
	if err := ac.tracker.ExportReport(); err != nil {
		ac.logger.Errorf(providers.TypeHttp, "On-demand export failed: %s", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}
