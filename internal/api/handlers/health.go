package handlers

import (
	"context"
	"net/http"
	"time"

	"aircraft-production-backend/internal/registry"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const healthCheckTimeout = 2 * time.Second

// ReferenceData is the part of the registry the readiness check depends on
type ReferenceData interface {
	Snapshot(ctx context.Context) (*registry.Snapshot, error)
}

// HealthHandler handles health check endpoints
type HealthHandler struct {
	db      *gorm.DB
	refData ReferenceData
	version string
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *gorm.DB, refData ReferenceData, version string) *HealthHandler {
	return &HealthHandler{
		db:      db,
		refData: refData,
		version: version,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Services  map[string]string `json:"services"`
}

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error  string              `json:"error" example:"error message"`
	Fields map[string][]string `json:"fields,omitempty"`
}

// Health returns the health status of the application
// @Summary Health check
// @Description Get the overall health status of the application including database connectivity and reference data
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse "Application is healthy"
// @Failure 503 {object} HealthResponse "Application is unhealthy"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Version:   h.version,
		Services:  h.checkServices(c.Request.Context(), "healthy"),
	}
	for _, state := range response.Services {
		if state != "healthy" {
			response.Status = "unhealthy"
		}
	}

	statusCode := http.StatusOK
	if response.Status == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, response)
}

// Ready returns the readiness status of the application
// @Summary Readiness check
// @Description Check if the database answers and the catalog has been loaded
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Application is ready"
// @Failure 503 {object} map[string]interface{} "Application is not ready"
// @Router /health/ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	services := h.checkServices(c.Request.Context(), "ready")

	ready := true
	for _, state := range services {
		if state != "ready" {
			ready = false
		}
	}

	statusCode := http.StatusOK
	if !ready {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, gin.H{
		"ready":     ready,
		"timestamp": time.Now().UTC(),
		"services":  services,
	})
}

// Live returns the liveness status of the application
// @Summary Liveness check
// @Description Check if the application is alive and responding
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Application is alive"
// @Router /health/live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"alive":     true,
		"timestamp": time.Now().UTC(),
	})
}

// checkServices pings the database and the reference data snapshot, reporting ok for each one that answers
func (h *HealthHandler) checkServices(ctx context.Context, ok string) map[string]string {
	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	services := make(map[string]string, 2)

	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		services["database"] = "error: " + err.Error()
	} else {
		services["database"] = ok
	}

	if h.refData != nil {
		if _, err := h.refData.Snapshot(ctx); err != nil {
			services["catalog"] = "error: " + err.Error()
		} else {
			services["catalog"] = ok
		}
	}

	return services
}
