package handlers

import (
	"net/http"

	"aircraft-production-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CatalogHandler handles HTTP requests for part types and aircraft models
type CatalogHandler struct {
	catalogService service.CatalogServiceInterface
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService service.CatalogServiceInterface) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// ListPartTypes handles GET /part-types
// @Summary List part types
// @Tags catalog
// @Produce json
// @Success 200 {array} service.CatalogEntryResponse
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /part-types [get]
func (h *CatalogHandler) ListPartTypes(c *gin.Context) {
	entries, err := h.catalogService.ListPartTypes(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// GetPartType handles GET /part-types/:id
// @Summary Get part type by ID
// @Tags catalog
// @Produce json
// @Param id path string true "Part type ID (UUID)"
// @Success 200 {object} service.CatalogEntryResponse
// @Failure 400 {object} ErrorResponse "Invalid part type ID"
// @Failure 404 {object} ErrorResponse "Part type not found"
// @Security BearerAuth
// @Router /part-types/{id} [get]
func (h *CatalogHandler) GetPartType(c *gin.Context) {
	id, ok := parseID(c, "id", "part type")
	if !ok {
		return
	}

	entry, err := h.catalogService.GetPartType(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// CreatePartType handles POST /part-types
// @Summary Create a part type
// @Description Admin only. The code must be one of the known part type codes.
// @Tags catalog
// @Accept json
// @Produce json
// @Param partType body service.CreatePartTypeRequest true "Part type"
// @Success 201 {object} service.CatalogEntryResponse
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Administrative privilege required"
// @Failure 409 {object} ErrorResponse "Part type already exists"
// @Security BearerAuth
// @Router /part-types [post]
func (h *CatalogHandler) CreatePartType(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req service.CreatePartTypeRequest
	if !bindJSON(c, &req) {
		return
	}

	entry, err := h.catalogService.CreatePartType(c.Request.Context(), actor, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// UpdatePartType handles PUT /part-types/:id
// @Summary Update a part type label
// @Description Admin only. Rejected while parts or teams reference the part type.
// @Tags catalog
// @Accept json
// @Produce json
// @Param id path string true "Part type ID (UUID)"
// @Param label body service.UpdateLabelRequest true "New label"
// @Success 200 {object} service.CatalogEntryResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Part type not found"
// @Failure 409 {object} ErrorResponse "Part type is referenced"
// @Security BearerAuth
// @Router /part-types/{id} [put]
func (h *CatalogHandler) UpdatePartType(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "part type")
	if !ok {
		return
	}
	var req service.UpdateLabelRequest
	if !bindJSON(c, &req) {
		return
	}

	entry, err := h.catalogService.UpdatePartTypeLabel(c.Request.Context(), actor, id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// DeletePartType handles DELETE /part-types/:id
// @Summary Delete a part type
// @Tags catalog
// @Param id path string true "Part type ID (UUID)"
// @Success 204 "Deleted"
// @Failure 404 {object} ErrorResponse "Part type not found"
// @Failure 409 {object} ErrorResponse "Part type is referenced"
// @Security BearerAuth
// @Router /part-types/{id} [delete]
func (h *CatalogHandler) DeletePartType(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "part type")
	if !ok {
		return
	}

	if err := h.catalogService.DeletePartType(c.Request.Context(), actor, id); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListAircraftModels handles GET /aircraft-models
// @Summary List aircraft models
// @Tags catalog
// @Produce json
// @Success 200 {array} service.CatalogEntryResponse
// @Security BearerAuth
// @Router /aircraft-models [get]
func (h *CatalogHandler) ListAircraftModels(c *gin.Context) {
	entries, err := h.catalogService.ListAircraftModels(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// GetAircraftModel handles GET /aircraft-models/:id
// @Summary Get aircraft model by ID
// @Tags catalog
// @Produce json
// @Param id path string true "Aircraft model ID (UUID)"
// @Success 200 {object} service.CatalogEntryResponse
// @Failure 404 {object} ErrorResponse "Aircraft model not found"
// @Security BearerAuth
// @Router /aircraft-models/{id} [get]
func (h *CatalogHandler) GetAircraftModel(c *gin.Context) {
	id, ok := parseID(c, "id", "aircraft model")
	if !ok {
		return
	}

	entry, err := h.catalogService.GetAircraftModel(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// CreateAircraftModel handles POST /aircraft-models
// @Summary Create an aircraft model
// @Tags catalog
// @Accept json
// @Produce json
// @Param aircraftModel body service.CreateAircraftModelRequest true "Aircraft model"
// @Success 201 {object} service.CatalogEntryResponse
// @Failure 409 {object} ErrorResponse "Aircraft model already exists"
// @Security BearerAuth
// @Router /aircraft-models [post]
func (h *CatalogHandler) CreateAircraftModel(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req service.CreateAircraftModelRequest
	if !bindJSON(c, &req) {
		return
	}

	entry, err := h.catalogService.CreateAircraftModel(c.Request.Context(), actor, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// UpdateAircraftModel handles PUT /aircraft-models/:id
// @Summary Update an aircraft model label
// @Tags catalog
// @Accept json
// @Produce json
// @Param id path string true "Aircraft model ID (UUID)"
// @Param label body service.UpdateLabelRequest true "New label"
// @Success 200 {object} service.CatalogEntryResponse
// @Failure 409 {object} ErrorResponse "Aircraft model is referenced"
// @Security BearerAuth
// @Router /aircraft-models/{id} [put]
func (h *CatalogHandler) UpdateAircraftModel(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "aircraft model")
	if !ok {
		return
	}
	var req service.UpdateLabelRequest
	if !bindJSON(c, &req) {
		return
	}

	entry, err := h.catalogService.UpdateAircraftModelLabel(c.Request.Context(), actor, id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// DeleteAircraftModel handles DELETE /aircraft-models/:id
// @Summary Delete an aircraft model
// @Tags catalog
// @Param id path string true "Aircraft model ID (UUID)"
// @Success 204 "Deleted"
// @Failure 409 {object} ErrorResponse "Aircraft model is referenced"
// @Security BearerAuth
// @Router /aircraft-models/{id} [delete]
func (h *CatalogHandler) DeleteAircraftModel(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "aircraft model")
	if !ok {
		return
	}

	if err := h.catalogService.DeleteAircraftModel(c.Request.Context(), actor, id); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
