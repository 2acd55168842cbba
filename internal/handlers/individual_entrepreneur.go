// internal/handlers/individual_entrepreneur.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/elnet/electronics-network/internal/services"
	"github.com/elnet/electronics-network/internal/utils"
)

const resourceEntrepreneur = "individual_entrepreneur"

type EntrepreneurHandler struct {
	entrepreneurService *services.EntrepreneurService
	paginator           utils.Paginator
}

func NewEntrepreneurHandler(entrepreneurService *services.EntrepreneurService, paginator utils.Paginator) *EntrepreneurHandler {
	return &EntrepreneurHandler{
		entrepreneurService: entrepreneurService,
		paginator:           paginator,
	}
}

// GET /v1/individual_entrepreneurs
func (h *EntrepreneurHandler) List(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}

	params := h.paginator.Params(c)
	records, total, err := h.entrepreneurService.ListEntrepreneurs(caller, params)
	if err != nil {
		respondError(c, err, resourceEntrepreneur)
		return
	}

	views := make([]services.PartyView, 0, len(records))
	for i := range records {
		views = append(views, services.IndividualEntrepreneurView(&records[i]))
	}
	utils.PaginatedResponse(c, utils.CreatePaginationResult(views, total, params))
}

// POST /v1/individual_entrepreneurs
func (h *EntrepreneurHandler) Create(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}

	var req services.EntrepreneurRequest
	if !bindJSON(c, &req) {
		return
	}

	entrepreneur, err := h.entrepreneurService.CreateEntrepreneur(caller, &req)
	if err != nil {
		respondError(c, err, resourceEntrepreneur)
		return
	}

	utils.CreatedResponse(c, services.IndividualEntrepreneurView(entrepreneur))
}

// GET /v1/individual_entrepreneurs/:id
func (h *EntrepreneurHandler) Get(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	entrepreneur, err := h.entrepreneurService.GetEntrepreneur(caller, id)
	if err != nil {
		respondError(c, err, resourceEntrepreneur)
		return
	}

	utils.SuccessResponse(c, services.IndividualEntrepreneurView(entrepreneur))
}

// PUT /v1/individual_entrepreneurs/:id
func (h *EntrepreneurHandler) Update(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req services.EntrepreneurRequest
	if !bindJSON(c, &req) {
		return
	}

	entrepreneur, err := h.entrepreneurService.UpdateEntrepreneur(caller, id, &req)
	if err != nil {
		respondError(c, err, resourceEntrepreneur)
		return
	}

	utils.SuccessResponse(c, services.IndividualEntrepreneurView(entrepreneur))
}

// DELETE /v1/individual_entrepreneurs/:id
func (h *EntrepreneurHandler) Delete(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.entrepreneurService.DeleteEntrepreneur(caller, id); err != nil {
		respondError(c, err, resourceEntrepreneur)
		return
	}

	utils.NoContentResponse(c)
}
