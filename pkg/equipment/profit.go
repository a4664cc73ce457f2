// Package equipment computes profitability metrics for rental equipment from
// accumulated revenue and cost aggregates.
package equipment

import (
	"strings"

	"github.com/rentworks/erp-metrics/pkg/mathutil"
	"go.uber.org/zap"
)

// Status classifies the profitability of a piece of equipment.
type Status string

const (
	StatusProfitable Status = "PROFITABLE"
	StatusLosing     Status = "LOSING"
	StatusBreakEven  Status = "BREAK_EVEN"
	StatusIncomplete Status = "INCOMPLETE"
)

// Validation error messages surfaced on incomplete results.
const (
	ErrEquipmentIDRequired   = "equipment id required"
	ErrEquipmentNotFound     = "equipment not found"
	ErrPurchasePriceMissing  = "purchase price missing or zero"
	ErrPurchasePriceNegative = "purchase price must be positive"
)

// Aggregate holds the accumulated figures for one piece of equipment.
// PurchasePrice is nil when the acquisition cost was never recorded.
type Aggregate struct {
	EquipmentID        string
	PurchasePrice      *float64
	TotalRentalRevenue float64
	TotalServiceCost   float64
}

// Result is the outcome of a profit calculation. Profit and ROI are nil
// exactly when Status is INCOMPLETE, in which case Error carries a
// human-readable reason.
type Result struct {
	EquipmentID        string   `json:"equipmentId"`
	PurchasePrice      *float64 `json:"purchasePrice"`
	TotalRentalRevenue float64  `json:"totalRentalRevenue"`
	TotalServiceCost   float64  `json:"totalServiceCost"`
	Profit             *float64 `json:"profit"`
	ROI                *float64 `json:"roi"`
	Status             Status   `json:"status"`
	Error              string   `json:"error,omitempty"`
}

// AggregateSource resolves equipment aggregates by ID. A nil aggregate with a
// nil error means the equipment does not exist.
type AggregateSource interface {
	EquipmentAggregate(equipmentID string) (*Aggregate, error)
}

// ProfitCalculator computes profit, ROI and profitability status for
// equipment resolved through an injected aggregate source.
type ProfitCalculator struct {
	source AggregateSource
	logger *zap.Logger
}

// NewProfitCalculator creates a new profit calculator with the given source
// and logger. If logger is nil, it will use a no-op logger to prevent panics.
func NewProfitCalculator(source AggregateSource, logger *zap.Logger) *ProfitCalculator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProfitCalculator{source: source, logger: logger}
}

// CalculateProfit resolves the aggregate for the given equipment ID and
// evaluates it. Every failure path returns a well-formed INCOMPLETE result;
// this method never returns an error and never panics.
func (pc *ProfitCalculator) CalculateProfit(equipmentID string) Result {
	id := strings.TrimSpace(equipmentID)
	if id == "" {
		return incomplete(Aggregate{}, ErrEquipmentIDRequired)
	}

	agg, err := pc.source.EquipmentAggregate(id)
	if err != nil {
		pc.logger.Warn("failed to resolve equipment aggregate",
			zap.String("op", "equipment.CalculateProfit"),
			zap.String("equipmentId", id),
			zap.Error(err),
		)
		return incomplete(Aggregate{EquipmentID: id}, ErrEquipmentNotFound)
	}
	if agg == nil {
		return incomplete(Aggregate{EquipmentID: id}, ErrEquipmentNotFound)
	}

	return Evaluate(*agg)
}

// Evaluate computes the profit result for an already-resolved aggregate.
// ROI is derived from the unrounded raw profit rather than the rounded
// reported profit, so a second rounding step cannot compound the error.
func Evaluate(agg Aggregate) Result {
	if agg.PurchasePrice == nil || *agg.PurchasePrice == 0 {
		return incomplete(agg, ErrPurchasePriceMissing)
	}
	if *agg.PurchasePrice < 0 {
		return incomplete(agg, ErrPurchasePriceNegative)
	}

	rawProfit := agg.TotalRentalRevenue - *agg.PurchasePrice - agg.TotalServiceCost
	profit := mathutil.Round(rawProfit)
	roi := mathutil.Round(rawProfit / *agg.PurchasePrice * 100)

	status := StatusBreakEven
	switch {
	case profit > 0:
		status = StatusProfitable
	case profit < 0:
		status = StatusLosing
	}

	return Result{
		EquipmentID:        agg.EquipmentID,
		PurchasePrice:      agg.PurchasePrice,
		TotalRentalRevenue: agg.TotalRentalRevenue,
		TotalServiceCost:   agg.TotalServiceCost,
		Profit:             &profit,
		ROI:                &roi,
		Status:             status,
	}
}

func incomplete(agg Aggregate, reason string) Result {
	return Result{
		EquipmentID:        agg.EquipmentID,
		PurchasePrice:      agg.PurchasePrice,
		TotalRentalRevenue: agg.TotalRentalRevenue,
		TotalServiceCost:   agg.TotalServiceCost,
		Status:             StatusIncomplete,
		Error:              reason,
	}
}
