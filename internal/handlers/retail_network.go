// internal/handlers/retail_network.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/elnet/electronics-network/internal/services"
	"github.com/elnet/electronics-network/internal/utils"
)

const resourceRetailNetwork = "retail_network"

type RetailNetworkHandler struct {
	retailNetworkService *services.RetailNetworkService
	paginator            utils.Paginator
}

func NewRetailNetworkHandler(retailNetworkService *services.RetailNetworkService, paginator utils.Paginator) *RetailNetworkHandler {
	return &RetailNetworkHandler{
		retailNetworkService: retailNetworkService,
		paginator:            paginator,
	}
}

// GET /v1/retail_networks
func (h *RetailNetworkHandler) List(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}

	params := h.paginator.Params(c)
	records, total, err := h.retailNetworkService.ListRetailNetworks(caller, params)
	if err != nil {
		respondError(c, err, resourceRetailNetwork)
		return
	}

	views := make([]services.PartyView, 0, len(records))
	for i := range records {
		views = append(views, services.RetailNetworkView(&records[i]))
	}
	utils.PaginatedResponse(c, utils.CreatePaginationResult(views, total, params))
}

// POST /v1/retail_networks
func (h *RetailNetworkHandler) Create(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}

	var req services.RetailNetworkRequest
	if !bindJSON(c, &req) {
		return
	}

	network, err := h.retailNetworkService.CreateRetailNetwork(caller, &req)
	if err != nil {
		respondError(c, err, resourceRetailNetwork)
		return
	}

	utils.CreatedResponse(c, services.RetailNetworkView(network))
}

// GET /v1/retail_networks/:id
func (h *RetailNetworkHandler) Get(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	network, err := h.retailNetworkService.GetRetailNetwork(caller, id)
	if err != nil {
		respondError(c, err, resourceRetailNetwork)
		return
	}

	utils.SuccessResponse(c, services.RetailNetworkView(network))
}

// PUT /v1/retail_networks/:id
func (h *RetailNetworkHandler) Update(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req services.RetailNetworkRequest
	if !bindJSON(c, &req) {
		return
	}

	network, err := h.retailNetworkService.UpdateRetailNetwork(caller, id, &req)
	if err != nil {
		respondError(c, err, resourceRetailNetwork)
		return
	}

	utils.SuccessResponse(c, services.RetailNetworkView(network))
}

// DELETE /v1/retail_networks/:id
func (h *RetailNetworkHandler) Delete(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.retailNetworkService.DeleteRetailNetwork(caller, id); err != nil {
		respondError(c, err, resourceRetailNetwork)
		return
	}

	utils.NoContentResponse(c)
}
