// Package output provides utilities for formatting and displaying dashboard
// reports.
package output

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/rentworks/erp-metrics/internal/report"
	"github.com/rentworks/erp-metrics/pkg/constants"
	"github.com/rentworks/erp-metrics/pkg/equipment"
	"github.com/rentworks/erp-metrics/pkg/expiration"
	"github.com/rentworks/erp-metrics/pkg/format"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable rather than machine-readable report.
func PrettyFormat(dashboard *report.Dashboard) {
	p := message.NewPrinter(language.Hungarian)

	fmt.Printf("--- Dashboard for tenant %s (generated %s) ---\n",
		dashboard.TenantID, dashboard.GeneratedAt.Format(constants.DateLayout))

	fmt.Printf("\nEquipment profitability:\n")
	for _, result := range dashboard.Equipment {
		if result.Status == equipment.StatusIncomplete {
			fmt.Printf("  %s | %s | %s\n", result.EquipmentID, result.Status, result.Error)
			continue
		}
		_, _ = p.Printf("  %s | %s | profit %s | ROI %.2f%%\n",
			result.EquipmentID, result.Status, format.Forint(*result.Profit), *result.ROI)
	}

	fmt.Printf("\nReceivables aging (total %s):\n", format.Forint(dashboard.Aging.TotalReceivables))
	for _, bucket := range dashboard.Aging.Buckets {
		fmt.Printf("  %-5s | %3d invoices | %s\n", bucket.Label, bucket.Count, format.Forint(bucket.TotalAmount))
	}
	if len(dashboard.Aging.TopDebtors) > 0 {
		fmt.Printf("\nTop debtors:\n")
		for i, debtor := range dashboard.Aging.TopDebtors {
			fmt.Printf("  %d. %s | %s | %d invoices | oldest due %s\n",
				i+1, debtor.PartnerName, format.Forint(debtor.TotalDebt),
				debtor.InvoiceCount, debtor.OldestDueDate.Format(constants.DateLayout))
		}
	}

	fmt.Printf("\nRental expirations (%d notifications):\n", len(dashboard.Notifications))
	for _, level := range []expiration.Level{expiration.LevelUrgent, expiration.LevelWarning, expiration.LevelInfo} {
		for _, notification := range dashboard.NotificationsByLevel[level] {
			fmt.Printf("  [%s] %s\n", notification.Level, expiration.NotificationMessage(notification))
		}
	}

	for _, forecast := range dashboard.Forecasts {
		fmt.Printf("\nRevenue forecast %s (total %s, trend %s):\n",
			forecast.ForecastMonth, format.Forint(forecast.TotalForecast), forecast.Comparison.Trend)
		for _, source := range forecast.Sources {
			fmt.Printf("  %-12s | %3d%% | %s\n", source.Label, source.Percentage, format.Forint(source.Amount))
		}
	}
}

// CsvFormat outputs in comma-separated value format, one section per
// calculator.
func CsvFormat(dashboard *report.Dashboard) {
	fmt.Printf("\"section\",\"key\",\"status\",\"amount\",\"detail\"\n")
	for _, result := range dashboard.Equipment {
		if result.Status == equipment.StatusIncomplete {
			fmt.Printf("\"equipment\",\"%s\",\"%s\",\"\",\"%s\"\n", result.EquipmentID, result.Status, result.Error)
			continue
		}
		fmt.Printf("\"equipment\",\"%s\",\"%s\",\"%.2f\",\"roi=%.2f\"\n",
			result.EquipmentID, result.Status, *result.Profit, *result.ROI)
	}
	for _, bucket := range dashboard.Aging.Buckets {
		fmt.Printf("\"aging\",\"%s\",\"\",\"%.2f\",\"count=%d\"\n", bucket.Label, bucket.TotalAmount, bucket.Count)
	}
	for _, debtor := range dashboard.Aging.TopDebtors {
		fmt.Printf("\"debtor\",\"%s\",\"\",\"%.2f\",\"invoices=%d\"\n", debtor.PartnerID, debtor.TotalDebt, debtor.InvoiceCount)
	}
	for _, notification := range dashboard.Notifications {
		fmt.Printf("\"expiration\",\"%s\",\"%s\",\"\",\"daysUntilExpiry=%d\"\n",
			notification.RentalID, notification.Level, notification.DaysUntilExpiry)
	}
	for _, forecast := range dashboard.Forecasts {
		fmt.Printf("\"forecast\",\"%s\",\"%s\",\"%.2f\",\"change=%.2f\"\n",
			forecast.ForecastMonth, forecast.Comparison.Trend, forecast.TotalForecast, forecast.Comparison.ChangeAmount)
	}
}

// JSONFormat outputs the dashboard as indented JSON on stdout.
func JSONFormat(dashboard *report.Dashboard) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(dashboard)
}
