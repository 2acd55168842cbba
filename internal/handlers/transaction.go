// internal/handlers/transaction.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/elnet/electronics-network/internal/services"
	"github.com/elnet/electronics-network/internal/utils"
)

const resourceTransaction = "transaction"

type TransactionHandler struct {
	transactionService *services.TransactionService
	paginator          utils.Paginator
}

func NewTransactionHandler(transactionService *services.TransactionService, paginator utils.Paginator) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
		paginator:          paginator,
	}
}

// GET /v1/transactions
func (h *TransactionHandler) List(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}

	params := h.paginator.Params(c)
	records, total, err := h.transactionService.ListTransactions(caller, params)
	if err != nil {
		respondError(c, err, resourceTransaction)
		return
	}

	views := make([]services.TransactionView, 0, len(records))
	for i := range records {
		views = append(views, services.NewTransactionView(&records[i]))
	}
	utils.PaginatedResponse(c, utils.CreatePaginationResult(views, total, params))
}

// POST /v1/transactions
func (h *TransactionHandler) Create(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}

	var req services.TransactionRequest
	if !bindJSON(c, &req) {
		return
	}

	transaction, err := h.transactionService.CreateTransaction(caller, &req)
	if err != nil {
		respondError(c, err, resourceTransaction)
		return
	}

	utils.CreatedResponse(c, services.NewTransactionView(transaction))
}

// GET /v1/transactions/:id
func (h *TransactionHandler) Get(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	transaction, err := h.transactionService.GetTransaction(caller, id)
	if err != nil {
		respondError(c, err, resourceTransaction)
		return
	}

	utils.SuccessResponse(c, services.NewTransactionView(transaction))
}

// PUT /v1/transactions/:id
func (h *TransactionHandler) Update(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req services.TransactionRequest
	if !bindJSON(c, &req) {
		return
	}

	transaction, err := h.transactionService.UpdateTransaction(caller, id, &req)
	if err != nil {
		respondError(c, err, resourceTransaction)
		return
	}

	utils.SuccessResponse(c, services.NewTransactionView(transaction))
}

// DELETE /v1/transactions/:id
func (h *TransactionHandler) Delete(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.transactionService.DeleteTransaction(caller, id); err != nil {
		respondError(c, err, resourceTransaction)
		return
	}

	utils.NoContentResponse(c)
}
