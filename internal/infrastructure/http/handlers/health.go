package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthHandler handles GET /health — liveness probe.
// Returns 200 immediately; confirms the process is alive.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// HealthDependenciesHandler handles GET /health/ready — readiness probe.
// Checks the credential store and session registry connectivity before
// declaring the service ready.
type HealthDependenciesHandler struct {
	mongo *mongo.Database
	redis *redis.Client
}

func NewHealthDependenciesHandler(db *mongo.Database, rdb *redis.Client) *HealthDependenciesHandler {
	return &HealthDependenciesHandler{
		mongo: db,
		redis: rdb,
	}
}

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
}

func (h *HealthDependenciesHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	deps := map[string]dependencyStatus{
		"mongo": h.checkMongo(ctx),
		"redis": h.checkRedis(ctx),
	}

	status := "ok"
	code := http.StatusOK
	for _, d := range deps {
		if d.Status != "ok" {
			status = "degraded"
			code = http.StatusServiceUnavailable
			break
		}
	}

	return c.JSON(code, readinessResponse{Status: status, Dependencies: deps})
}

func (h *HealthDependenciesHandler) checkMongo(ctx context.Context) dependencyStatus {
	if err := h.mongo.RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
		return dependencyStatus{Status: "error", Error: err.Error()}
	}
	return dependencyStatus{Status: "ok"}
}

func (h *HealthDependenciesHandler) checkRedis(ctx context.Context) dependencyStatus {
	if err := h.redis.Ping(ctx).Err(); err != nil {
		return dependencyStatus{Status: "error", Error: err.Error()}
	}
	return dependencyStatus{Status: "ok"}
}
