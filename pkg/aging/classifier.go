// Package aging classifies unpaid invoices into overdue buckets and ranks the
// largest debtors for receivables reporting.
package aging

import (
	"sort"
	"time"

	"github.com/rentworks/erp-metrics/pkg/constants"
	"github.com/rentworks/erp-metrics/pkg/datetime"
	"github.com/rentworks/erp-metrics/pkg/mathutil"
	"go.uber.org/zap"
)

// BucketLabel identifies one of the four fixed aging buckets.
type BucketLabel string

const (
	BucketCurrent    BucketLabel = "0-30"
	BucketThirtyPlus BucketLabel = "31-60"
	BucketSixtyPlus  BucketLabel = "61-90"
	BucketNinetyPlus BucketLabel = "90+"
)

// BucketLabels lists the buckets in their fixed report order.
var BucketLabels = [4]BucketLabel{BucketCurrent, BucketThirtyPlus, BucketSixtyPlus, BucketNinetyPlus}

// Invoice is one unpaid invoice with an outstanding balance.
type Invoice struct {
	ID            string    `json:"id"`
	InvoiceNumber string    `json:"invoiceNumber"`
	PartnerID     string    `json:"partnerId"`
	PartnerName   string    `json:"partnerName"`
	DueDate       time.Time `json:"dueDate"`
	BalanceDue    float64   `json:"balanceDue"`
}

// BucketInvoice is an invoice annotated with its computed days overdue.
type BucketInvoice struct {
	Invoice
	DaysOverdue int `json:"daysOverdue"`
}

// Bucket accumulates the invoices whose days overdue fall within its range.
type Bucket struct {
	Label       BucketLabel     `json:"label"`
	Count       int             `json:"count"`
	TotalAmount float64         `json:"totalAmount"`
	Invoices    []BucketInvoice `json:"invoices"`
}

// TopDebtor summarizes the outstanding debt of one partner.
type TopDebtor struct {
	PartnerID     string    `json:"partnerId"`
	PartnerName   string    `json:"partnerName"`
	TotalDebt     float64   `json:"totalDebt"`
	InvoiceCount  int       `json:"invoiceCount"`
	OldestDueDate time.Time `json:"oldestDueDate"`
}

// Report is a complete receivables aging report.
type Report struct {
	GeneratedAt      time.Time   `json:"generatedAt"`
	TotalReceivables float64     `json:"totalReceivables"`
	Buckets          [4]Bucket   `json:"buckets"`
	TopDebtors       []TopDebtor `json:"topDebtors"`
}

// Options adjusts a classification run. A zero value requests the defaults.
type Options struct {
	// PartnerFilter restricts the report to invoices of one partner when set.
	PartnerFilter string

	// DebtorLimit caps the top-debtor ranking; zero or negative selects the
	// default of 5. The configuration layer clamps configured values before
	// they reach the classifier.
	DebtorLimit int
}

// Classifier buckets invoices by days overdue relative to a caller-supplied
// reference time.
type Classifier struct {
	logger *zap.Logger
}

// NewClassifier creates a new aging classifier with the given logger.
// If logger is nil, it will use a no-op logger to prevent panics.
func NewClassifier(logger *zap.Logger) *Classifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Classifier{logger: logger}
}

// Classify assigns every invoice to exactly one aging bucket and ranks the
// partners with the largest outstanding debt. Invoices not yet due count as
// zero days overdue and land in the 0-30 bucket.
func (c *Classifier) Classify(invoices []Invoice, now time.Time, opts Options) Report {
	report := Report{GeneratedAt: now}
	for i, label := range BucketLabels {
		report.Buckets[i].Label = label
	}

	filtered := invoices
	if opts.PartnerFilter != "" {
		filtered = make([]Invoice, 0, len(invoices))
		for _, inv := range invoices {
			if inv.PartnerID == opts.PartnerFilter {
				filtered = append(filtered, inv)
			}
		}
	}

	for _, inv := range filtered {
		days := datetime.DaysOverdue(inv.DueDate, now)
		idx := bucketIndex(days)
		bucket := &report.Buckets[idx]
		bucket.Count++
		bucket.TotalAmount += inv.BalanceDue
		bucket.Invoices = append(bucket.Invoices, BucketInvoice{Invoice: inv, DaysOverdue: days})
	}

	total := 0.0
	for i := range report.Buckets {
		report.Buckets[i].TotalAmount = mathutil.Round(report.Buckets[i].TotalAmount)
		total += report.Buckets[i].TotalAmount
	}
	report.TotalReceivables = mathutil.Round(total)
	report.TopDebtors = topDebtors(filtered, opts.DebtorLimit)

	c.logger.Debug("classified receivables",
		zap.String("op", "aging.Classify"),
		zap.Int("invoices", len(filtered)),
		zap.Float64("totalReceivables", report.TotalReceivables),
	)

	return report
}

// bucketIndex maps days overdue onto a bucket using inclusive upper bounds.
func bucketIndex(daysOverdue int) int {
	switch {
	case daysOverdue <= constants.AgingBucketFirstMaxDays:
		return 0
	case daysOverdue <= constants.AgingBucketSecondMaxDays:
		return 1
	case daysOverdue <= constants.AgingBucketThirdMaxDays:
		return 2
	default:
		return 3
	}
}

// topDebtors groups invoices by partner, sums debt and counts, tracks the
// oldest due date, and returns up to limit partners sorted descending by
// total debt. Ties keep the order in which partners first appeared.
func topDebtors(invoices []Invoice, limit int) []TopDebtor {
	if limit <= 0 {
		limit = constants.DefaultTopDebtors
	}

	index := make(map[string]int)
	debtors := make([]TopDebtor, 0)
	for _, inv := range invoices {
		i, seen := index[inv.PartnerID]
		if !seen {
			index[inv.PartnerID] = len(debtors)
			debtors = append(debtors, TopDebtor{
				PartnerID:     inv.PartnerID,
				PartnerName:   inv.PartnerName,
				TotalDebt:     inv.BalanceDue,
				InvoiceCount:  1,
				OldestDueDate: inv.DueDate,
			})
			continue
		}
		debtors[i].TotalDebt += inv.BalanceDue
		debtors[i].InvoiceCount++
		if inv.DueDate.Before(debtors[i].OldestDueDate) {
			debtors[i].OldestDueDate = inv.DueDate
		}
	}

	sort.SliceStable(debtors, func(i, j int) bool {
		return debtors[i].TotalDebt > debtors[j].TotalDebt
	})

	for i := range debtors {
		debtors[i].TotalDebt = mathutil.Round(debtors[i].TotalDebt)
	}

	if len(debtors) > limit {
		debtors = debtors[:limit]
	}
	return debtors
}
