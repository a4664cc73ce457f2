// Package store defines the data-access contracts the report builder depends
// on, plus a JSON-file-backed implementation for datasets exported from the
// ERP database.
package store

import (
	"github.com/rentworks/erp-metrics/pkg/aging"
	"github.com/rentworks/erp-metrics/pkg/equipment"
	"github.com/rentworks/erp-metrics/pkg/expiration"
	"github.com/rentworks/erp-metrics/pkg/revenue"
)

// EquipmentStore provides equipment aggregates keyed by tenant.
type EquipmentStore interface {
	// EquipmentIDs lists the equipment IDs of a tenant in a stable order.
	EquipmentIDs(tenantID string) ([]string, error)

	// EquipmentAggregate resolves one equipment aggregate. A nil aggregate
	// with a nil error means the equipment does not exist for the tenant.
	EquipmentAggregate(tenantID, equipmentID string) (*equipment.Aggregate, error)
}

// InvoiceStore provides the unpaid invoices of a tenant.
type InvoiceStore interface {
	UnpaidInvoices(tenantID string) ([]aging.Invoice, error)
}

// RentalStore provides the active rentals of a tenant.
type RentalStore interface {
	ActiveRentals(tenantID string) ([]expiration.Rental, error)
}

// RevenueStore provides revenue line items and historical monthly actuals.
type RevenueStore interface {
	// RevenueLines returns the line items of one source type for the given
	// YYYY-MM month.
	RevenueLines(tenantID string, source revenue.SourceType, month string) ([]revenue.Line, error)

	// MonthlyActual returns the booked revenue total for the given YYYY-MM
	// month, or 0 when no history exists for it.
	MonthlyActual(tenantID, month string) (float64, error)
}
