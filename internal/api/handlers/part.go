package handlers

import (
	"net/http"

	"aircraft-production-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PartHandler handles HTTP requests for the part ledger
type PartHandler struct {
	partService service.PartServiceInterface
}

// NewPartHandler creates a new part handler
func NewPartHandler(partService service.PartServiceInterface) *PartHandler {
	return &PartHandler{
		partService: partService,
	}
}

// ListParts handles GET /parts
// @Summary List parts
// @Description List parts with optional filters, newest first
// @Tags parts
// @Produce json
// @Param part_type query string false "Part type code" Enums(WING, FUSELAGE, TAIL, AVIONICS)
// @Param status query string false "Part status" Enums(IN_STOCK, IN_USE, RECYCLED)
// @Param produced_by_team query string false "Producing team code"
// @Param aircraft_model query string false "Aircraft model code" Enums(TB2, TB3, AKINCI, KIZILELMA)
// @Param serial_number query string false "Exact serial number"
// @Param search query string false "Serial number substring"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.PartListResponse
// @Failure 400 {object} ErrorResponse "Invalid filters"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /parts [get]
func (h *PartHandler) ListParts(c *gin.Context) {
	var query service.PartListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	parts, err := h.partService.List(c.Request.Context(), &query)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, parts)
}

// ProducePart handles POST /parts
// @Summary Produce a part
// @Description Records a new part in stock. Only the production team responsible for the part type may produce it.
// @Tags parts
// @Accept json
// @Produce json
// @Param part body service.ProducePartRequest true "Part data"
// @Success 201 {object} service.PartResponse
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Team may not produce this part type"
// @Failure 409 {object} ErrorResponse "Serial number already exists"
// @Security BearerAuth
// @Router /parts [post]
func (h *PartHandler) ProducePart(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req service.ProducePartRequest
	if !bindJSON(c, &req) {
		return
	}

	part, err := h.partService.Produce(c.Request.Context(), actor, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, part)
}

// GetPart handles GET /parts/:id
// @Summary Get part by ID
// @Tags parts
// @Produce json
// @Param id path string true "Part ID (UUID)"
// @Success 200 {object} service.PartResponse
// @Failure 400 {object} ErrorResponse "Invalid part ID"
// @Failure 404 {object} ErrorResponse "Part not found"
// @Security BearerAuth
// @Router /parts/{id} [get]
func (h *PartHandler) GetPart(c *gin.Context) {
	id, ok := parseID(c, "id", "part")
	if !ok {
		return
	}

	part, err := h.partService.GetByID(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, part)
}

// RecyclePart handles POST /parts/:id/recycle
// @Summary Recycle a part
// @Description Only the producing team may recycle. Parts installed in an aircraft must be removed first. Recycling an already recycled part succeeds without change.
// @Tags parts
// @Produce json
// @Param id path string true "Part ID (UUID)"
// @Success 200 {object} service.RecycleResult
// @Failure 400 {object} ErrorResponse "Part is installed in an aircraft"
// @Failure 403 {object} ErrorResponse "Not the producing team"
// @Failure 404 {object} ErrorResponse "Part not found"
// @Security BearerAuth
// @Router /parts/{id}/recycle [post]
func (h *PartHandler) RecyclePart(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "part")
	if !ok {
		return
	}

	result, err := h.partService.Recycle(c.Request.Context(), actor, id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// DeletePart handles DELETE /parts/:id
// @Summary Delete a part
// @Description Admin only. Rejected while an aircraft slot references the part.
// @Tags parts
// @Param id path string true "Part ID (UUID)"
// @Success 204 "Part deleted"
// @Failure 403 {object} ErrorResponse "Administrative privilege required"
// @Failure 404 {object} ErrorResponse "Part not found"
// @Failure 409 {object} ErrorResponse "Part is installed in an aircraft"
// @Security BearerAuth
// @Router /parts/{id} [delete]
func (h *PartHandler) DeletePart(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "part")
	if !ok {
		return
	}

	if err := h.partService.Delete(c.Request.Context(), actor, id); err != nil {
		handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
