// Package revenue aggregates revenue-source line items into a monthly
// forecast with a per-source breakdown and a month-over-month trend.
package revenue

import (
	"math"
	"time"

	"github.com/rentworks/erp-metrics/pkg/constants"
	"github.com/rentworks/erp-metrics/pkg/datetime"
	"github.com/rentworks/erp-metrics/pkg/mathutil"
	"go.uber.org/zap"
)

// SourceType identifies where a forecast line item originates.
type SourceType string

const (
	SourceRental   SourceType = "rental"
	SourceContract SourceType = "contract"
	SourceService  SourceType = "service"
)

// Trend classifies the direction of the month-over-month change.
type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// Line is a single revenue line item attributed to one source.
type Line struct {
	Type   SourceType `json:"type"`
	Amount float64    `json:"amount"`
}

// SourceSummary is the aggregated contribution of one revenue source.
// Percentage is rounded to the nearest whole percent independently per
// source, so the three percentages need not sum to exactly 100.
type SourceSummary struct {
	Type       SourceType `json:"type"`
	Label      string     `json:"label"`
	Amount     float64    `json:"amount"`
	Percentage int        `json:"percentage"`
	Count      int        `json:"count"`
}

// Comparison relates the forecast total to the previous month's actual.
type Comparison struct {
	PreviousMonth float64 `json:"previousMonth"`
	ChangeAmount  float64 `json:"changeAmount"`
	ChangePercent float64 `json:"changePercent"`
	Trend         Trend   `json:"trend"`
}

// Result is a complete revenue forecast for one target month.
type Result struct {
	GeneratedAt   time.Time       `json:"generatedAt"`
	ForecastMonth string          `json:"forecastMonth"`
	TotalForecast float64         `json:"totalForecast"`
	Sources       []SourceSummary `json:"sources"`
	Comparison    Comparison      `json:"comparison"`
}

// Hungarian display labels for the revenue sources.
var sourceLabels = map[SourceType]string{
	SourceRental:   "Bérbeadás",
	SourceContract: "Szerződések",
	SourceService:  "Szerviz",
}

// Aggregator combines per-source revenue lines into forecast results.
type Aggregator struct {
	logger *zap.Logger
}

// NewAggregator creates a new revenue aggregator with the given logger.
// If logger is nil, it will use a no-op logger to prevent panics.
func NewAggregator(logger *zap.Logger) *Aggregator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Aggregator{logger: logger}
}

// Aggregate sums the three revenue sources for the target month and compares
// the total against the previous month's actual revenue. Zero totals and a
// zero previous actual are short-circuited so no division by zero can occur.
func (a *Aggregator) Aggregate(rentalLines, contractLines, serviceLines []Line, previousMonthActual float64, targetMonth, now time.Time) Result {
	sources := []SourceSummary{
		summarize(SourceRental, rentalLines),
		summarize(SourceContract, contractLines),
		summarize(SourceService, serviceLines),
	}

	total := 0.0
	for _, source := range sources {
		total += source.Amount
	}
	total = mathutil.Round(total)

	for i := range sources {
		sources[i].Percentage = mathutil.WholePercentage(sources[i].Amount, total)
	}

	result := Result{
		GeneratedAt:   now,
		ForecastMonth: datetime.FormatMonth(targetMonth),
		TotalForecast: total,
		Sources:       sources,
		Comparison:    compare(total, previousMonthActual),
	}

	a.logger.Debug("aggregated revenue forecast",
		zap.String("op", "revenue.Aggregate"),
		zap.String("forecastMonth", result.ForecastMonth),
		zap.Float64("totalForecast", result.TotalForecast),
		zap.String("trend", string(result.Comparison.Trend)),
	)

	return result
}

// summarize sums one source's line amounts, rounding the sum to two decimals.
func summarize(sourceType SourceType, lines []Line) SourceSummary {
	amount := 0.0
	for _, line := range lines {
		amount += line.Amount
	}
	return SourceSummary{
		Type:   sourceType,
		Label:  sourceLabels[sourceType],
		Amount: mathutil.Round(amount),
		Count:  len(lines),
	}
}

// compare classifies the month-over-month change. Changes within the 1-point
// deadband around zero report as stable so small fluctuations do not register
// as a trend.
func compare(totalForecast, previousMonthActual float64) Comparison {
	if previousMonthActual == 0 {
		return Comparison{Trend: TrendStable}
	}

	change := totalForecast - previousMonthActual
	changePercent := mathutil.Round(change / previousMonthActual * constants.PercentageMultiplier)

	trend := TrendStable
	if math.Abs(changePercent) >= constants.TrendDeadbandPercent {
		if changePercent > 0 {
			trend = TrendUp
		} else {
			trend = TrendDown
		}
	}

	return Comparison{
		PreviousMonth: previousMonthActual,
		ChangeAmount:  mathutil.Round(change),
		ChangePercent: changePercent,
		Trend:         trend,
	}
}
