// Package report orchestrates the calculator family over the data-access
// stores to assemble a per-tenant dashboard report.
package report

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rentworks/erp-metrics/internal/store"
	"github.com/rentworks/erp-metrics/pkg/aging"
	"github.com/rentworks/erp-metrics/pkg/constants"
	"github.com/rentworks/erp-metrics/pkg/datetime"
	"github.com/rentworks/erp-metrics/pkg/equipment"
	"github.com/rentworks/erp-metrics/pkg/expiration"
	"github.com/rentworks/erp-metrics/pkg/revenue"
	"go.uber.org/zap"
)

// Dashboard aggregates the outputs of all four calculators for one tenant.
type Dashboard struct {
	ID                   string                                        `json:"id"`
	TenantID             string                                        `json:"tenantId"`
	GeneratedAt          time.Time                                     `json:"generatedAt"`
	Equipment            []equipment.Result                            `json:"equipment"`
	Aging                aging.Report                                  `json:"aging"`
	Notifications        []expiration.Notification                     `json:"notifications"`
	NotificationsByLevel map[expiration.Level][]expiration.Notification `json:"notificationsByLevel"`
	Forecasts            []revenue.Result                              `json:"forecasts"`
}

// Options carries the already-clamped report parameters. The configuration
// layer is responsible for clamping; the builder trusts its input.
type Options struct {
	// PartnerFilter restricts the aging report to one partner when set.
	PartnerFilter string

	// TopDebtors caps the aging report's debtor ranking.
	TopDebtors int

	// TargetMonth is the first month to forecast.
	TargetMonth time.Time

	// ForecastMonths is how many consecutive months to forecast, starting at
	// TargetMonth. Zero or negative falls back to a single month.
	ForecastMonths int
}

// Builder assembles dashboards from injected stores. It holds no state
// between calls; any number of Build calls may run concurrently.
type Builder struct {
	equipmentStore store.EquipmentStore
	invoiceStore   store.InvoiceStore
	rentalStore    store.RentalStore
	revenueStore   store.RevenueStore
	logger         *zap.Logger
}

// NewBuilder creates a new dashboard builder with the given stores and
// logger. If logger is nil, it will use a no-op logger to prevent panics.
func NewBuilder(equipmentStore store.EquipmentStore, invoiceStore store.InvoiceStore, rentalStore store.RentalStore, revenueStore store.RevenueStore, logger *zap.Logger) *Builder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{
		equipmentStore: equipmentStore,
		invoiceStore:   invoiceStore,
		rentalStore:    rentalStore,
		revenueStore:   revenueStore,
		logger:         logger,
	}
}

// tenantAggregateSource binds an EquipmentStore to one tenant so the profit
// calculator can resolve aggregates by equipment ID alone.
type tenantAggregateSource struct {
	store    store.EquipmentStore
	tenantID string
}

func (s tenantAggregateSource) EquipmentAggregate(equipmentID string) (*equipment.Aggregate, error) {
	return s.store.EquipmentAggregate(s.tenantID, equipmentID)
}

// Build runs all four calculators for the tenant at the given reference time.
// Store failures surface as errors; calculator-level failures are folded into
// the result structs per the calculators' own contracts.
func (b *Builder) Build(tenantID string, now time.Time, opts Options) (*Dashboard, error) {
	dashboard := &Dashboard{
		ID:          uuid.NewString(),
		TenantID:    tenantID,
		GeneratedAt: now,
	}

	profitCalc := equipment.NewProfitCalculator(tenantAggregateSource{store: b.equipmentStore, tenantID: tenantID}, b.logger)
	equipmentIDs, err := b.equipmentStore.EquipmentIDs(tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list equipment for tenant %s: %w", tenantID, err)
	}
	dashboard.Equipment = make([]equipment.Result, 0, len(equipmentIDs))
	for _, id := range equipmentIDs {
		dashboard.Equipment = append(dashboard.Equipment, profitCalc.CalculateProfit(id))
	}

	invoices, err := b.invoiceStore.UnpaidInvoices(tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load unpaid invoices for tenant %s: %w", tenantID, err)
	}
	agingClassifier := aging.NewClassifier(b.logger)
	dashboard.Aging = agingClassifier.Classify(invoices, now, aging.Options{
		PartnerFilter: opts.PartnerFilter,
		DebtorLimit:   opts.TopDebtors,
	})

	rentals, err := b.rentalStore.ActiveRentals(tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load active rentals for tenant %s: %w", tenantID, err)
	}
	expirationClassifier := expiration.NewClassifier(b.logger)
	dashboard.Notifications = expirationClassifier.CheckExpirations(rentals, now)
	dashboard.NotificationsByLevel = expiration.GroupByLevel(dashboard.Notifications)

	months := opts.ForecastMonths
	if months <= 0 {
		months = constants.DefaultForecastMonths
	}
	aggregator := revenue.NewAggregator(b.logger)
	dashboard.Forecasts = make([]revenue.Result, 0, months)
	for offset := 0; offset < months; offset++ {
		month := datetime.OffsetMonth(opts.TargetMonth, offset)
		forecast, err := b.buildForecast(aggregator, tenantID, month, now)
		if err != nil {
			return nil, err
		}
		dashboard.Forecasts = append(dashboard.Forecasts, forecast)
	}

	b.logger.Info("built dashboard",
		zap.String("op", "report.Build"),
		zap.String("tenantId", tenantID),
		zap.Int("equipment", len(dashboard.Equipment)),
		zap.Int("notifications", len(dashboard.Notifications)),
		zap.Int("forecasts", len(dashboard.Forecasts)),
	)

	return dashboard, nil
}

func (b *Builder) buildForecast(aggregator *revenue.Aggregator, tenantID string, month, now time.Time) (revenue.Result, error) {
	monthKey := datetime.FormatMonth(month)

	var lines [3][]revenue.Line
	for i, source := range []revenue.SourceType{revenue.SourceRental, revenue.SourceContract, revenue.SourceService} {
		sourceLines, err := b.revenueStore.RevenueLines(tenantID, source, monthKey)
		if err != nil {
			return revenue.Result{}, fmt.Errorf("failed to load %s revenue lines for tenant %s month %s: %w", source, tenantID, monthKey, err)
		}
		lines[i] = sourceLines
	}

	previousMonth := datetime.FormatMonth(datetime.OffsetMonth(month, -1))
	previousActual, err := b.revenueStore.MonthlyActual(tenantID, previousMonth)
	if err != nil {
		return revenue.Result{}, fmt.Errorf("failed to load monthly actual for tenant %s month %s: %w", tenantID, previousMonth, err)
	}

	return aggregator.Aggregate(lines[0], lines[1], lines[2], previousActual, month, now), nil
}
