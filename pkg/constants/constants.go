// Package constants provides shared constants for the erp-metrics application.
package constants

// MonthLayout is the format used for forecast months in config files and output.
const MonthLayout = "2006-01"

// DateLayout is the format used for calendar dates in datasets and output.
const DateLayout = "2006-01-02"

// Financial constants
const (
	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// TrendDeadbandPercent is the band around zero within which a
	// month-over-month change is reported as stable rather than up/down.
	TrendDeadbandPercent = 1.0
)

// Receivables aging bucket bounds in whole days overdue (inclusive upper bounds).
const (
	AgingBucketFirstMaxDays  = 30
	AgingBucketSecondMaxDays = 60
	AgingBucketThirdMaxDays  = 90
)

// Rental expiration notification thresholds in whole days until expiry
// (inclusive upper bounds, evaluated urgent-first).
const (
	ExpiryUrgentMaxDays  = 0
	ExpiryWarningMaxDays = 3
	ExpiryInfoMaxDays    = 7
)

// Report parameter bounds applied by the configuration layer before any
// calculator is called.
const (
	// DefaultTopDebtors is the number of debtors reported when no limit is configured
	DefaultTopDebtors = 5

	// MinTopDebtors is the lower clamp bound for the top-debtor limit
	MinTopDebtors = 1

	// MaxTopDebtors is the upper clamp bound for the top-debtor limit
	MaxTopDebtors = 20

	// DefaultForecastMonths is the number of forecast months when none is configured
	DefaultForecastMonths = 1

	// MinForecastMonths is the lower clamp bound for the forecast month count
	MinForecastMonths = 1

	// MaxForecastMonths is the upper clamp bound for the forecast month count
	MaxForecastMonths = 24
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the machine-readable JSON output format
	OutputFormatJSON = "json"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"
)
