package handler

import (
	"context"
	"net/http"
	"time"

	"clinic-queue/pkg/response"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const healthTimeout = 2 * time.Second

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Redis    string `json:"redis"`
}

// HealthHandler reports the reachability of the database and, when
// configured, Redis. Only a database outage makes the service unhealthy.
type HealthHandler struct {
	db    *gorm.DB
	redis redis.Cmdable
}

func NewHealthHandler(db *gorm.DB, redisClient redis.Cmdable) *HealthHandler {
	return &HealthHandler{
		db:    db,
		redis: redisClient,
	}
}

func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	result := HealthResponse{Status: "ok", Database: "up", Redis: "disabled"}
	status := http.StatusOK

	if err := h.pingDatabase(ctx); err != nil {
		result.Status = "unavailable"
		result.Database = "down"
		status = http.StatusServiceUnavailable
	}

	if h.redis != nil {
		result.Redis = "up"
		if err := h.redis.Ping(ctx).Err(); err != nil {
			result.Redis = "down"
			if status == http.StatusOK {
				result.Status = "degraded"
			}
		}
	}

	response.JSON(w, status, result)
}

func (h *HealthHandler) pingDatabase(ctx context.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
