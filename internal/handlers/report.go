// internal/handlers/report.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/elnet/electronics-network/internal/i18n"
	"github.com/elnet/electronics-network/internal/services"
	"github.com/elnet/electronics-network/internal/utils"
)

type ReportHandler struct {
	reportService *services.ReportService
}

func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// POST /v1/reports/debts
func (h *ReportHandler) DebtReport(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	caller, ok := callerFrom(c)
	if !ok {
		return
	}

	report, err := h.reportService.GenerateDebtReport(caller)
	if err != nil {
		respondError(c, err, "report")
		return
	}

	utils.SuccessResponseWithMeta(c, report, gin.H{
		"message": i18n.T(lang, i18n.KeyReportGenerated),
	})
}
