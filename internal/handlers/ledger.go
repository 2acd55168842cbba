// internal/handlers/ledger.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/elnet/electronics-network/internal/i18n"
	"github.com/elnet/electronics-network/internal/models"
	"github.com/elnet/electronics-network/internal/services"
	"github.com/elnet/electronics-network/internal/utils"
)

// LedgerHandler serves debt and supplier queries for every party kind.
type LedgerHandler struct {
	ledgerService   *services.LedgerService
	supplierService *services.SupplierService
}

type ClearDebtRequest struct {
	Parties []models.PartyRef `json:"parties" validate:"required,min=1,dive"`
}

func NewLedgerHandler(ledgerService *services.LedgerService, supplierService *services.SupplierService) *LedgerHandler {
	return &LedgerHandler{
		ledgerService:   ledgerService,
		supplierService: supplierService,
	}
}

// GET /v1/{kind}/:id/debt
func (h *LedgerHandler) TotalDebt(kind models.PartyKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := callerFrom(c)
		if !ok {
			return
		}
		id, ok := pathID(c)
		if !ok {
			return
		}

		debt, err := h.ledgerService.DebtOf(caller, models.PartyRef{Kind: kind, ID: id})
		if err != nil {
			respondError(c, err, string(kind))
			return
		}

		utils.SuccessResponse(c, debt)
	}
}

// GET /v1/{kind}/:id/supplier
func (h *LedgerHandler) Supplier(kind models.PartyKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := callerFrom(c)
		if !ok {
			return
		}
		id, ok := pathID(c)
		if !ok {
			return
		}

		supplier, err := h.supplierService.SupplierOf(caller, models.PartyRef{Kind: kind, ID: id})
		if err != nil {
			respondError(c, err, string(kind))
			return
		}

		// data is null when the party has no supplier
		utils.SuccessResponse(c, models.SummaryOf(supplier))
	}
}

// POST /v1/debts/clear
func (h *LedgerHandler) ClearDebt(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	caller, ok := callerFrom(c)
	if !ok {
		return
	}

	var req ClearDebtRequest
	if !bindJSON(c, &req) {
		return
	}

	cleared, err := h.ledgerService.ClearDebt(caller, req.Parties)
	if err != nil {
		respondError(c, err, "transaction")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"cleared": cleared,
		"message": i18n.T(lang, i18n.KeyDebtCleared, cleared),
	})
}
