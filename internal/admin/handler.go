// AngelaMos | 2026
// handler.go

package admin

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"runtime"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"

	"github.com/bite-platform/bite-backend/internal/core"
)

// Handler exposes the operator surface: platform signup numbers plus
// pool and runtime stats.
type Handler struct {
	db         core.DBTX
	dbStats    func() sql.DBStats
	redisStats func() *redis.PoolStats
}

type HandlerConfig struct {
	DB         core.DBTX
	DBStats    func() sql.DBStats
	RedisStats func() *redis.PoolStats
}

func NewHandler(cfg HandlerConfig) *Handler {
	return &Handler{
		db:         cfg.DB,
		dbStats:    cfg.DBStats,
		redisStats: cfg.RedisStats,
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/stats", h.GetPlatformStats)
	r.Get("/stats/system", h.GetSystemStats)
}

type roleCount struct {
	Role  string `db:"role"  json:"role"`
	Tier  string `db:"tier"  json:"tier"`
	Count int    `db:"count" json:"count"`
}

type platformStatsResponse struct {
	TotalUsers int         `json:"total_users"`
	Breakdown  []roleCount `json:"breakdown"`
}

// GetPlatformStats aggregates live signups per role and tier. Soft
// deleted accounts are excluded.
func (h *Handler) GetPlatformStats(w http.ResponseWriter, r *http.Request) {
	breakdown, total, err := h.countUsers(r.Context())
	if err != nil {
		core.JSONError(w, err)
		return
	}

	core.OK(w, platformStatsResponse{
		TotalUsers: total,
		Breakdown:  breakdown,
	})
}

func (h *Handler) countUsers(ctx context.Context) ([]roleCount, int, error) {
	query := `
		SELECT role, tier, COUNT(*) AS count
		FROM users
		WHERE deleted_at IS NULL
		GROUP BY role, tier
		ORDER BY role, tier`

	var breakdown []roleCount
	if err := h.db.SelectContext(ctx, &breakdown, query); err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	total := 0
	for _, rc := range breakdown {
		total += rc.Count
	}

	return breakdown, total, nil
}

type systemStatsResponse struct {
	Database *dbPoolStats     `json:"database,omitempty"`
	Redis    *redis.PoolStats `json:"redis,omitempty"`
	Runtime  runtimeStats     `json:"runtime"`
}

type dbPoolStats struct {
	MaxOpenConnections int   `json:"max_open_connections"`
	OpenConnections    int   `json:"open_connections"`
	InUse              int   `json:"in_use"`
	Idle               int   `json:"idle"`
	WaitCount          int64 `json:"wait_count"`
}

type runtimeStats struct {
	GoVersion    string `json:"go_version"`
	NumGoroutine int    `json:"num_goroutine"`
	NumCPU       int    `json:"num_cpu"`
	MemAlloc     uint64 `json:"mem_alloc"`
	MemSys       uint64 `json:"mem_sys"`
	NumGC        uint32 `json:"num_gc"`
}

func (h *Handler) GetSystemStats(w http.ResponseWriter, r *http.Request) {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	resp := systemStatsResponse{
		Runtime: runtimeStats{
			GoVersion:    runtime.Version(),
			NumGoroutine: runtime.NumGoroutine(),
			NumCPU:       runtime.NumCPU(),
			MemAlloc:     memStats.Alloc,
			MemSys:       memStats.Sys,
			NumGC:        memStats.NumGC,
		},
	}

	if h.dbStats != nil {
		stats := h.dbStats()
		resp.Database = &dbPoolStats{
			MaxOpenConnections: stats.MaxOpenConnections,
			OpenConnections:    stats.OpenConnections,
			InUse:              stats.InUse,
			Idle:               stats.Idle,
			WaitCount:          stats.WaitCount,
		}
	}

	if h.redisStats != nil {
		resp.Redis = h.redisStats()
	}

	core.OK(w, resp)
}
