package store

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/rentworks/erp-metrics/pkg/aging"
	"github.com/rentworks/erp-metrics/pkg/equipment"
	"github.com/rentworks/erp-metrics/pkg/expiration"
	"github.com/rentworks/erp-metrics/pkg/revenue"
)

// Dataset is the on-disk shape of an exported ERP snapshot.
type Dataset struct {
	Tenants []TenantData `json:"tenants"`
}

// TenantData holds one tenant's rows of the snapshot.
type TenantData struct {
	TenantID       string               `json:"tenantId"`
	Equipment      []EquipmentAggregate `json:"equipment"`
	Invoices       []aging.Invoice      `json:"invoices"`
	Rentals        []expiration.Rental  `json:"rentals"`
	RevenueLines   []RevenueLine        `json:"revenueLines"`
	MonthlyActuals []MonthlyActual      `json:"monthlyActuals"`
}

// EquipmentAggregate mirrors equipment.Aggregate with JSON tags for decoding.
type EquipmentAggregate struct {
	EquipmentID        string   `json:"equipmentId"`
	PurchasePrice      *float64 `json:"purchasePrice"`
	TotalRentalRevenue float64  `json:"totalRentalRevenue"`
	TotalServiceCost   float64  `json:"totalServiceCost"`
}

// RevenueLine is one revenue line item attributed to a month and source.
type RevenueLine struct {
	Month  string             `json:"month"`
	Type   revenue.SourceType `json:"type"`
	Amount float64            `json:"amount"`
}

// MonthlyActual is the booked revenue total of one historical month.
type MonthlyActual struct {
	Month  string  `json:"month"`
	Amount float64 `json:"amount"`
}

// JSONStore serves the store interfaces from an in-memory dataset decoded
// from a JSON snapshot file. It is read-only after loading.
type JSONStore struct {
	tenants map[string]*TenantData
}

// LoadJSONStore reads and decodes a dataset file.
func LoadJSONStore(path string) (*JSONStore, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset %s: %w", path, err)
	}

	var dataset Dataset
	if err := json.Unmarshal(raw, &dataset); err != nil {
		return nil, fmt.Errorf("failed to decode dataset %s: %w", path, err)
	}

	return NewJSONStore(dataset), nil
}

// NewJSONStore builds a store from an already-decoded dataset.
func NewJSONStore(dataset Dataset) *JSONStore {
	tenants := make(map[string]*TenantData, len(dataset.Tenants))
	for i := range dataset.Tenants {
		tenant := &dataset.Tenants[i]
		// Rentals inherit the tenant ID of their snapshot section unless the
		// export set one explicitly.
		for j := range tenant.Rentals {
			if tenant.Rentals[j].TenantID == "" {
				tenant.Rentals[j].TenantID = tenant.TenantID
			}
		}
		tenants[tenant.TenantID] = tenant
	}
	return &JSONStore{tenants: tenants}
}

// TenantIDs lists the tenants present in the dataset.
func (s *JSONStore) TenantIDs() []string {
	ids := make([]string, 0, len(s.tenants))
	for id := range s.tenants {
		ids = append(ids, id)
	}
	return ids
}

func (s *JSONStore) tenant(tenantID string) (*TenantData, error) {
	tenant, ok := s.tenants[tenantID]
	if !ok {
		return nil, fmt.Errorf("unknown tenant %s", tenantID)
	}
	return tenant, nil
}

// EquipmentIDs implements EquipmentStore.
func (s *JSONStore) EquipmentIDs(tenantID string) ([]string, error) {
	tenant, err := s.tenant(tenantID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(tenant.Equipment))
	for _, agg := range tenant.Equipment {
		ids = append(ids, agg.EquipmentID)
	}
	return ids, nil
}

// EquipmentAggregate implements EquipmentStore.
func (s *JSONStore) EquipmentAggregate(tenantID, equipmentID string) (*equipment.Aggregate, error) {
	tenant, err := s.tenant(tenantID)
	if err != nil {
		return nil, err
	}
	for _, agg := range tenant.Equipment {
		if agg.EquipmentID == equipmentID {
			return &equipment.Aggregate{
				EquipmentID:        agg.EquipmentID,
				PurchasePrice:      agg.PurchasePrice,
				TotalRentalRevenue: agg.TotalRentalRevenue,
				TotalServiceCost:   agg.TotalServiceCost,
			}, nil
		}
	}
	return nil, nil
}

// UnpaidInvoices implements InvoiceStore.
func (s *JSONStore) UnpaidInvoices(tenantID string) ([]aging.Invoice, error) {
	tenant, err := s.tenant(tenantID)
	if err != nil {
		return nil, err
	}
	return tenant.Invoices, nil
}

// ActiveRentals implements RentalStore. Rentals whose end date was never set
// are excluded, matching the ERP's definition of an active rental row.
func (s *JSONStore) ActiveRentals(tenantID string) ([]expiration.Rental, error) {
	tenant, err := s.tenant(tenantID)
	if err != nil {
		return nil, err
	}
	rentals := make([]expiration.Rental, 0, len(tenant.Rentals))
	for _, rental := range tenant.Rentals {
		if rental.EndDate.IsZero() {
			continue
		}
		rentals = append(rentals, rental)
	}
	return rentals, nil
}

// RevenueLines implements RevenueStore.
func (s *JSONStore) RevenueLines(tenantID string, source revenue.SourceType, month string) ([]revenue.Line, error) {
	tenant, err := s.tenant(tenantID)
	if err != nil {
		return nil, err
	}
	lines := make([]revenue.Line, 0)
	for _, line := range tenant.RevenueLines {
		if line.Type == source && line.Month == month {
			lines = append(lines, revenue.Line{Type: line.Type, Amount: line.Amount})
		}
	}
	return lines, nil
}

// MonthlyActual implements RevenueStore.
func (s *JSONStore) MonthlyActual(tenantID, month string) (float64, error) {
	tenant, err := s.tenant(tenantID)
	if err != nil {
		return 0, err
	}
	for _, actual := range tenant.MonthlyActuals {
		if actual.Month == month {
			return actual.Amount, nil
		}
	}
	return 0, nil
}

// Interface conformance checks.
var (
	_ EquipmentStore = (*JSONStore)(nil)
	_ InvoiceStore   = (*JSONStore)(nil)
	_ RentalStore    = (*JSONStore)(nil)
	_ RevenueStore   = (*JSONStore)(nil)
)
