// AngelaMos | 2026
// handler.go

package health

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler serves liveness and readiness probes. Readiness fans out to
// postgres and redis in parallel; liveness only reports process state.
type Handler struct {
	db       Pinger
	redis    Pinger
	started  time.Time
	ready    atomic.Bool
	shutdown atomic.Bool
}

func NewHandler(db, redis Pinger) *Handler {
	h := &Handler{
		db:      db,
		redis:   redis,
		started: time.Now(),
	}
	h.ready.Store(true)
	return h
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/healthz", h.Liveness)
	r.Get("/livez", h.Liveness)
	r.Get("/readyz", h.Readiness)
}

type livenessResponse struct {
	Status string `json:"status"`
	Uptime string `json:"uptime"`
}

type readinessResponse struct {
	Status string            `json:"status"`
	Checks map[string]*Check `json:"checks"`
}

type Check struct {
	Healthy bool   `json:"healthy"`
	Latency string `json:"latency,omitempty"`
	Message string `json:"message,omitempty"`
}

func (h *Handler) Liveness(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	code := http.StatusOK
	if h.shutdown.Load() {
		status = "shutting_down"
		code = http.StatusServiceUnavailable
	}

	h.write(w, code, livenessResponse{
		Status: status,
		Uptime: time.Since(h.started).Round(time.Second).String(),
	})
}

func (h *Handler) Readiness(w http.ResponseWriter, r *http.Request) {
	if h.shutdown.Load() {
		h.write(w, http.StatusServiceUnavailable, readinessResponse{
			Status: "shutting_down",
		})
		return
	}

	if !h.ready.Load() {
		h.write(w, http.StatusServiceUnavailable, readinessResponse{
			Status: "not_ready",
		})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var dbCheck, redisCheck *Check

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		dbCheck = runCheck(ctx, h.db)
	}()
	go func() {
		defer wg.Done()
		redisCheck = runCheck(ctx, h.redis)
	}()
	wg.Wait()

	checks := map[string]*Check{
		"database": dbCheck,
		"redis":    redisCheck,
	}

	status := "ok"
	code := http.StatusOK
	for _, check := range checks {
		if !check.Healthy {
			status = "degraded"
			code = http.StatusServiceUnavailable
			break
		}
	}

	h.write(w, code, readinessResponse{
		Status: status,
		Checks: checks,
	})
}

func runCheck(ctx context.Context, p Pinger) *Check {
	if p == nil {
		return &Check{Healthy: false, Message: "not configured"}
	}

	start := time.Now()
	err := p.Ping(ctx)
	check := &Check{
		Healthy: err == nil,
		Latency: time.Since(start).String(),
	}
	if err != nil {
		check.Message = "ping failed"
	}

	return check
}

func (h *Handler) SetReady(ready bool) {
	h.ready.Store(ready)
}

func (h *Handler) SetShutdown(shutdown bool) {
	h.shutdown.Store(shutdown)
}

func (h *Handler) write(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.WriteHeader(status)
	//nolint:errcheck // best-effort response
	_ = json.NewEncoder(w).Encode(data)
}
