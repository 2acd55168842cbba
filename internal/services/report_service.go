// internal/services/report_service.go
package services

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/elnet/electronics-network/internal/metrics"
	"github.com/elnet/electronics-network/internal/models"
)

// reportLinkTTL bounds how long the presigned download link stays valid.
const reportLinkTTL = 24 * time.Hour

// ReportService builds debt reports across the whole ledger.
type ReportService struct {
	db      *gorm.DB
	storage *StorageService
}

type DebtReportEntry struct {
	Party     models.PartySummary `json:"party"`
	TotalDebt string              `json:"total_debt"`

	debt decimal.Decimal
}

type DebtReport struct {
	GeneratedAt time.Time         `json:"generated_at"`
	Entries     []DebtReportEntry `json:"entries"`
	TotalDebt   string            `json:"total_debt"`
	URL         string            `json:"url,omitempty"`
	DownloadURL string            `json:"download_url,omitempty"`
	Key         string            `json:"key,omitempty"`
}

func NewReportService(db *gorm.DB, storage *StorageService) *ReportService {
	return &ReportService{db: db, storage: storage}
}

// GenerateDebtReport totals outstanding debt per buyer, largest first. When
// object storage is configured the report is also uploaded as JSON and a
// time-limited download link is returned with it.
func (s *ReportService) GenerateDebtReport(caller models.Caller) (*DebtReport, error) {
	if !caller.Superuser {
		return nil, ErrForbidden
	}

	rows, err := s.db.Model(&models.Transaction{}).
		Select("buyer_manufacturer_id, buyer_retail_network_id, buyer_individual_entrepreneur_id, COALESCE(SUM(debt), 0)").
		Group("buyer_manufacturer_id, buyer_retail_network_id, buyer_individual_entrepreneur_id").
		Rows()
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate debt: %w", err)
	}
	defer rows.Close()

	report := &DebtReport{GeneratedAt: time.Now().UTC(), Entries: []DebtReportEntry{}}
	var refs []models.PartyRef
	var totals []decimal.Decimal
	for rows.Next() {
		var m, r, e uuid.NullUUID
		var total decimal.Decimal
		if err := rows.Scan(&m, &r, &e, &total); err != nil {
			return nil, fmt.Errorf("failed to scan debt row: %w", err)
		}
		ref, ok := models.PartyFromFields(nullable(m), nullable(r), nullable(e))
		if !ok {
			continue
		}
		refs = append(refs, ref)
		totals = append(totals, total.Round(2))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read debt rows: %w", err)
	}
	rows.Close()

	grandTotal := decimal.Zero
	for i, ref := range refs {
		summary := models.PartySummary{Kind: ref.Kind, ID: &refs[i].ID, Name: models.UnknownBuyer}
		if party, err := loadParty(s.db, ref); err == nil {
			summary = *models.SummaryOf(party)
		}
		report.Entries = append(report.Entries, DebtReportEntry{
			Party:     summary,
			TotalDebt: totals[i].StringFixed(2),
			debt:      totals[i],
		})
		grandTotal = grandTotal.Add(totals[i])
	}
	report.TotalDebt = grandTotal.StringFixed(2)

	sort.SliceStable(report.Entries, func(i, j int) bool {
		return report.Entries[i].debt.GreaterThan(report.Entries[j].debt)
	})

	if s.storage.Enabled() {
		body, err := json.Marshal(report)
		if err != nil {
			return nil, fmt.Errorf("failed to encode report: %w", err)
		}
		key := fmt.Sprintf("reports/debts/%s.json", report.GeneratedAt.Format("20060102T150405Z"))
		upload, err := s.storage.Upload(key, body, "application/json")
		if err != nil {
			return nil, err
		}
		download, err := s.storage.PresignedURL(upload.Key, reportLinkTTL)
		if err != nil {
			return nil, err
		}
		report.URL = upload.URL
		report.Key = upload.Key
		report.DownloadURL = download
	}

	metrics.RecordDebtReport()
	logrus.WithFields(logrus.Fields{
		"user_id": caller.UserID,
		"buyers":  len(report.Entries),
		"total":   report.TotalDebt,
	}).Info("Debt report generated")

	return report, nil
}

func nullable(id uuid.NullUUID) *uuid.UUID {
	if !id.Valid {
		return nil
	}
	return &id.UUID
}
