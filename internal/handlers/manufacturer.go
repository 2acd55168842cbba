// internal/handlers/manufacturer.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/elnet/electronics-network/internal/services"
	"github.com/elnet/electronics-network/internal/utils"
)

const resourceManufacturer = "manufacturer"

type ManufacturerHandler struct {
	manufacturerService *services.ManufacturerService
	paginator           utils.Paginator
}

func NewManufacturerHandler(manufacturerService *services.ManufacturerService, paginator utils.Paginator) *ManufacturerHandler {
	return &ManufacturerHandler{
		manufacturerService: manufacturerService,
		paginator:           paginator,
	}
}

// GET /v1/manufacturers
func (h *ManufacturerHandler) List(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}

	params := h.paginator.Params(c)
	records, total, err := h.manufacturerService.ListManufacturers(caller, params)
	if err != nil {
		respondError(c, err, resourceManufacturer)
		return
	}

	views := make([]services.PartyView, 0, len(records))
	for i := range records {
		views = append(views, services.ManufacturerView(&records[i]))
	}
	utils.PaginatedResponse(c, utils.CreatePaginationResult(views, total, params))
}

// POST /v1/manufacturers
func (h *ManufacturerHandler) Create(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}

	var req services.ManufacturerRequest
	if !bindJSON(c, &req) {
		return
	}

	manufacturer, err := h.manufacturerService.CreateManufacturer(caller, &req)
	if err != nil {
		respondError(c, err, resourceManufacturer)
		return
	}

	utils.CreatedResponse(c, services.ManufacturerView(manufacturer))
}

// GET /v1/manufacturers/:id
func (h *ManufacturerHandler) Get(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	manufacturer, err := h.manufacturerService.GetManufacturer(caller, id)
	if err != nil {
		respondError(c, err, resourceManufacturer)
		return
	}

	utils.SuccessResponse(c, services.ManufacturerView(manufacturer))
}

// PUT /v1/manufacturers/:id
func (h *ManufacturerHandler) Update(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req services.ManufacturerRequest
	if !bindJSON(c, &req) {
		return
	}

	manufacturer, err := h.manufacturerService.UpdateManufacturer(caller, id, &req)
	if err != nil {
		respondError(c, err, resourceManufacturer)
		return
	}

	utils.SuccessResponse(c, services.ManufacturerView(manufacturer))
}

// DELETE /v1/manufacturers/:id
func (h *ManufacturerHandler) Delete(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.manufacturerService.DeleteManufacturer(caller, id); err != nil {
		respondError(c, err, resourceManufacturer)
		return
	}

	utils.NoContentResponse(c)
}
