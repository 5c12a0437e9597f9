package handlers

import (
	"net/http"
	"strings"

	"aircraft-production-backend/internal/database/models"
	"aircraft-production-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AircraftHandler handles HTTP requests for the assembly engine and stock queries
type AircraftHandler struct {
	assemblyService service.AssemblyServiceInterface
	stockService    service.StockServiceInterface
}

// NewAircraftHandler creates a new aircraft handler
func NewAircraftHandler(assemblyService service.AssemblyServiceInterface, stockService service.StockServiceInterface) *AircraftHandler {
	return &AircraftHandler{
		assemblyService: assemblyService,
		stockService:    stockService,
	}
}

// AvailabilityResponse is the stock report for one aircraft model
type AvailabilityResponse struct {
	*service.AvailabilityReport
	CanAssemble bool `json:"can_assemble"`
}

// ListAircraft handles GET /aircraft
// @Summary List assembled aircraft
// @Tags aircraft
// @Produce json
// @Param aircraft_model query string false "Aircraft model code" Enums(TB2, TB3, AKINCI, KIZILELMA)
// @Param assembled_by_team query string false "Assembling team code"
// @Param search query string false "Tail number substring"
// @Param assembled_from query string false "Earliest assembly date (RFC3339 or YYYY-MM-DD)"
// @Param assembled_to query string false "Latest assembly date (RFC3339 or YYYY-MM-DD)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.AircraftListResponse
// @Failure 400 {object} ErrorResponse "Invalid filters"
// @Security BearerAuth
// @Router /aircraft [get]
func (h *AircraftHandler) ListAircraft(c *gin.Context) {
	var query service.AircraftListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	aircraft, err := h.assemblyService.List(c.Request.Context(), &query)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, aircraft)
}

// AssembleAircraft handles POST /aircraft
// @Summary Assemble an aircraft
// @Description Assembly team only. Every slot is checked and all findings are returned together, keyed by slot.
// @Tags aircraft
// @Accept json
// @Produce json
// @Param aircraft body service.AssembleRequest true "Tail number, model and one part per slot"
// @Success 201 {object} service.AircraftResponse
// @Failure 400 {object} ErrorResponse "Slot validation failed"
// @Failure 403 {object} ErrorResponse "Not the assembly team"
// @Failure 409 {object} ErrorResponse "Tail number already exists"
// @Security BearerAuth
// @Router /aircraft [post]
func (h *AircraftHandler) AssembleAircraft(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req service.AssembleRequest
	if !bindJSON(c, &req) {
		return
	}

	aircraft, err := h.assemblyService.Assemble(c.Request.Context(), actor, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, aircraft)
}

// GetAircraft handles GET /aircraft/:id
// @Summary Get aircraft by ID
// @Tags aircraft
// @Produce json
// @Param id path string true "Aircraft ID (UUID)"
// @Success 200 {object} service.AircraftResponse
// @Failure 400 {object} ErrorResponse "Invalid aircraft ID"
// @Failure 404 {object} ErrorResponse "Aircraft not found"
// @Security BearerAuth
// @Router /aircraft/{id} [get]
func (h *AircraftHandler) GetAircraft(c *gin.Context) {
	id, ok := parseID(c, "id", "aircraft")
	if !ok {
		return
	}

	aircraft, err := h.assemblyService.GetByID(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, aircraft)
}

// UpdateAircraft handles PUT /aircraft/:id
// @Summary Update an aircraft
// @Description Assembly team only. Changes the tail number and reassigns any number of slots in one atomic step.
// @Tags aircraft
// @Accept json
// @Produce json
// @Param id path string true "Aircraft ID (UUID)"
// @Param aircraft body service.UpdateAircraftRequest true "Fields to change"
// @Success 200 {object} service.AircraftResponse
// @Failure 400 {object} ErrorResponse "Slot validation failed"
// @Failure 404 {object} ErrorResponse "Aircraft not found"
// @Failure 409 {object} ErrorResponse "Tail number already exists"
// @Security BearerAuth
// @Router /aircraft/{id} [put]
func (h *AircraftHandler) UpdateAircraft(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "aircraft")
	if !ok {
		return
	}
	var req service.UpdateAircraftRequest
	if !bindJSON(c, &req) {
		return
	}

	aircraft, err := h.assemblyService.UpdateAircraft(c.Request.Context(), actor, id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, aircraft)
}

// ReassignSlot handles PUT /aircraft/:id/slots/:slot
// @Summary Reassign one slot
// @Description Assembly team only. The displaced part returns to stock.
// @Tags aircraft
// @Accept json
// @Produce json
// @Param id path string true "Aircraft ID (UUID)"
// @Param slot path string true "Slot" Enums(wing, fuselage, tail, avionics)
// @Param part body service.ReassignSlotRequest true "Replacement part"
// @Success 200 {object} service.AircraftResponse
// @Failure 400 {object} ErrorResponse "Slot validation failed"
// @Failure 404 {object} ErrorResponse "Aircraft not found"
// @Security BearerAuth
// @Router /aircraft/{id}/slots/{slot} [put]
func (h *AircraftHandler) ReassignSlot(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "aircraft")
	if !ok {
		return
	}
	var req service.ReassignSlotRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.PartID == uuid.Nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:  "validation error: part_id - this field is required",
			Fields: map[string][]string{"part_id": {"this field is required"}},
		})
		return
	}

	aircraft, err := h.assemblyService.ReassignSlot(c.Request.Context(), actor, id, models.Slot(c.Param("slot")), req.PartID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, aircraft)
}

// DisassembleAircraft handles DELETE /aircraft/:id
// @Summary Disassemble an aircraft
// @Description Assembly team only. All four parts return to stock and the aircraft is removed.
// @Tags aircraft
// @Param id path string true "Aircraft ID (UUID)"
// @Success 204 "Aircraft disassembled"
// @Failure 403 {object} ErrorResponse "Not the assembly team"
// @Failure 404 {object} ErrorResponse "Aircraft not found"
// @Security BearerAuth
// @Router /aircraft/{id} [delete]
func (h *AircraftHandler) DisassembleAircraft(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "aircraft")
	if !ok {
		return
	}

	if err := h.assemblyService.Disassemble(c.Request.Context(), actor, id); err != nil {
		handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// CheckAvailability handles GET /aircraft/availability/:model
// @Summary Check part availability for a model
// @Description Counts in-stock parts of each required type for the model and warns about any shortage
// @Tags aircraft
// @Produce json
// @Param model path string true "Aircraft model code" Enums(TB2, TB3, AKINCI, KIZILELMA)
// @Success 200 {object} AvailabilityResponse
// @Failure 404 {object} ErrorResponse "Aircraft model not found"
// @Security BearerAuth
// @Router /aircraft/availability/{model} [get]
func (h *AircraftHandler) CheckAvailability(c *gin.Context) {
	report, err := h.stockService.CheckAvailability(c.Request.Context(), models.AircraftModelCode(strings.ToUpper(c.Param("model"))))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, AvailabilityResponse{AvailabilityReport: report, CanAssemble: report.CanAssemble()})
}
