package report

import (
	"testing"
	"time"

	"github.com/rentworks/erp-metrics/internal/store"
	"github.com/rentworks/erp-metrics/pkg/aging"
	"github.com/rentworks/erp-metrics/pkg/equipment"
	"github.com/rentworks/erp-metrics/pkg/expiration"
	"github.com/rentworks/erp-metrics/pkg/revenue"
)

var testNow = time.Date(2026, time.August, 15, 10, 0, 0, 0, time.UTC)

func floatPtr(v float64) *float64 {
	return &v
}

func testStore() *store.JSONStore {
	return store.NewJSONStore(store.Dataset{
		Tenants: []store.TenantData{
			{
				TenantID: "t-1",
				Equipment: []store.EquipmentAggregate{
					{EquipmentID: "EQ-1", PurchasePrice: floatPtr(500000), TotalRentalRevenue: 800000, TotalServiceCost: 150000},
					{EquipmentID: "EQ-2", PurchasePrice: floatPtr(600000), TotalRentalRevenue: 300000, TotalServiceCost: 100000},
					{EquipmentID: "EQ-3", TotalRentalRevenue: 50000},
				},
				Invoices: []aging.Invoice{
					{ID: "1", PartnerID: "P-1", PartnerName: "Alfa Kft", DueDate: testNow.AddDate(0, 0, -15), BalanceDue: 245000},
					{ID: "2", PartnerID: "P-2", PartnerName: "Beta Bt", DueDate: testNow.AddDate(0, 0, -45), BalanceDue: 128500},
				},
				Rentals: []expiration.Rental{
					{ID: "R-1", PartnerID: "P-1", PartnerName: "Alfa Kft", EndDate: testNow.AddDate(0, 0, 3), EquipmentName: "Bobcat S70"},
					{ID: "R-2", PartnerID: "P-2", PartnerName: "Beta Bt", EndDate: testNow.AddDate(0, 0, 30), EquipmentName: "Manitou MT 625"},
				},
				RevenueLines: []store.RevenueLine{
					{Month: "2026-08", Type: revenue.SourceRental, Amount: 300000},
					{Month: "2026-08", Type: revenue.SourceContract, Amount: 150000},
					{Month: "2026-08", Type: revenue.SourceService, Amount: 50000},
					{Month: "2026-09", Type: revenue.SourceRental, Amount: 400000},
				},
				MonthlyActuals: []store.MonthlyActual{
					{Month: "2026-07", Amount: 450000},
					{Month: "2026-08", Amount: 500000},
				},
			},
		},
	})
}

func TestBuild(t *testing.T) {
	s := testStore()
	builder := NewBuilder(s, s, s, s, nil)

	dashboard, err := builder.Build("t-1", testNow, Options{
		TargetMonth:    time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC),
		ForecastMonths: 2,
		TopDebtors:     5,
	})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if dashboard.ID == "" {
		t.Errorf("dashboard ID is empty")
	}
	if dashboard.TenantID != "t-1" {
		t.Errorf("TenantID = %s, expected t-1", dashboard.TenantID)
	}
	if !dashboard.GeneratedAt.Equal(testNow) {
		t.Errorf("GeneratedAt = %v, expected %v", dashboard.GeneratedAt, testNow)
	}

	// One profit result per equipment, calculator-level failures folded in.
	if len(dashboard.Equipment) != 3 {
		t.Fatalf("Equipment = %d results, expected 3", len(dashboard.Equipment))
	}
	statuses := map[string]equipment.Status{}
	for _, result := range dashboard.Equipment {
		statuses[result.EquipmentID] = result.Status
	}
	if statuses["EQ-1"] != equipment.StatusProfitable {
		t.Errorf("EQ-1 status = %s, expected PROFITABLE", statuses["EQ-1"])
	}
	if statuses["EQ-2"] != equipment.StatusLosing {
		t.Errorf("EQ-2 status = %s, expected LOSING", statuses["EQ-2"])
	}
	if statuses["EQ-3"] != equipment.StatusIncomplete {
		t.Errorf("EQ-3 status = %s, expected INCOMPLETE", statuses["EQ-3"])
	}

	if dashboard.Aging.TotalReceivables != 373500 {
		t.Errorf("Aging.TotalReceivables = %.2f, expected 373500.00", dashboard.Aging.TotalReceivables)
	}

	// R-2 is 30 days out and emits nothing; R-1 at 3 days is a WARNING.
	if len(dashboard.Notifications) != 1 {
		t.Fatalf("Notifications = %d, expected 1", len(dashboard.Notifications))
	}
	if dashboard.Notifications[0].Level != expiration.LevelWarning {
		t.Errorf("notification level = %s, expected WARNING", dashboard.Notifications[0].Level)
	}
	if dashboard.Notifications[0].DaysUntilExpiry != 3 {
		t.Errorf("daysUntilExpiry = %d, expected 3", dashboard.Notifications[0].DaysUntilExpiry)
	}
	if len(dashboard.NotificationsByLevel[expiration.LevelWarning]) != 1 {
		t.Errorf("WARNING group = %d, expected 1", len(dashboard.NotificationsByLevel[expiration.LevelWarning]))
	}

	if len(dashboard.Forecasts) != 2 {
		t.Fatalf("Forecasts = %d, expected 2", len(dashboard.Forecasts))
	}

	august := dashboard.Forecasts[0]
	if august.ForecastMonth != "2026-08" {
		t.Errorf("Forecasts[0].ForecastMonth = %s, expected 2026-08", august.ForecastMonth)
	}
	if august.TotalForecast != 500000 {
		t.Errorf("Forecasts[0].TotalForecast = %.2f, expected 500000.00", august.TotalForecast)
	}
	// 500000 vs the 450000 July actual is an 11.11% increase.
	if august.Comparison.Trend != revenue.TrendUp {
		t.Errorf("Forecasts[0].Trend = %s, expected up", august.Comparison.Trend)
	}
	if august.Comparison.ChangePercent != 11.11 {
		t.Errorf("Forecasts[0].ChangePercent = %.2f, expected 11.11", august.Comparison.ChangePercent)
	}

	september := dashboard.Forecasts[1]
	if september.ForecastMonth != "2026-09" {
		t.Errorf("Forecasts[1].ForecastMonth = %s, expected 2026-09", september.ForecastMonth)
	}
	if september.TotalForecast != 400000 {
		t.Errorf("Forecasts[1].TotalForecast = %.2f, expected 400000.00", september.TotalForecast)
	}
	// Compared against the 500000 August actual.
	if september.Comparison.Trend != revenue.TrendDown {
		t.Errorf("Forecasts[1].Trend = %s, expected down", september.Comparison.Trend)
	}
}

func TestBuildUnknownTenant(t *testing.T) {
	s := testStore()
	builder := NewBuilder(s, s, s, s, nil)

	if _, err := builder.Build("t-404", testNow, Options{TargetMonth: testNow}); err == nil {
		t.Errorf("Build() = nil error, expected error for unknown tenant")
	}
}

func TestBuildPartnerFilter(t *testing.T) {
	s := testStore()
	builder := NewBuilder(s, s, s, s, nil)

	dashboard, err := builder.Build("t-1", testNow, Options{
		TargetMonth:   time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC),
		PartnerFilter: "P-2",
	})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if dashboard.Aging.TotalReceivables != 128500 {
		t.Errorf("filtered TotalReceivables = %.2f, expected 128500.00", dashboard.Aging.TotalReceivables)
	}
	if len(dashboard.Aging.TopDebtors) != 1 || dashboard.Aging.TopDebtors[0].PartnerID != "P-2" {
		t.Errorf("filtered TopDebtors = %+v, expected only P-2", dashboard.Aging.TopDebtors)
	}
}
