// Package expiration evaluates active rentals against their end dates and
// produces leveled notification content for those nearing or past expiry.
// It produces content and classification only; delivery is someone else's job.
package expiration

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rentworks/erp-metrics/pkg/constants"
	"github.com/rentworks/erp-metrics/pkg/datetime"
	"go.uber.org/zap"
)

// Level grades how pressing an expiration notification is.
type Level string

const (
	LevelInfo    Level = "INFO"
	LevelWarning Level = "WARNING"
	LevelUrgent  Level = "URGENT"
)

// Levels lists the notification levels in ascending severity.
var Levels = [3]Level{LevelInfo, LevelWarning, LevelUrgent}

// Rental is one active rental considered for expiration notification.
type Rental struct {
	ID             string    `json:"id"`
	TenantID       string    `json:"tenantId"`
	PartnerID      string    `json:"partnerId"`
	PartnerName    string    `json:"partnerName"`
	PartnerPhone   string    `json:"partnerPhone,omitempty"`
	EndDate        time.Time `json:"endDate"`
	EquipmentName  string    `json:"equipmentName"`
	AssignedUserID string    `json:"assignedUserId,omitempty"`
}

// Notification is the classified outcome for one rental inside the
// notification window. IsOverdue holds exactly when DaysUntilExpiry is
// negative.
type Notification struct {
	ID              string    `json:"id"`
	RentalID        string    `json:"rentalId"`
	TenantID        string    `json:"tenantId"`
	Level           Level     `json:"level"`
	DaysUntilExpiry int       `json:"daysUntilExpiry"`
	IsOverdue       bool      `json:"isOverdue"`
	PartnerName     string    `json:"partnerName"`
	PartnerPhone    string    `json:"partnerPhone,omitempty"`
	EquipmentName   string    `json:"equipmentName"`
	ExpiryDate      time.Time `json:"expiryDate"`
	AssignedUserID  string    `json:"assignedUserId,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// Classifier determines notification levels for rentals relative to a
// caller-supplied reference time.
type Classifier struct {
	logger *zap.Logger
}

// NewClassifier creates a new expiration classifier with the given logger.
// If logger is nil, it will use a no-op logger to prevent panics.
func NewClassifier(logger *zap.Logger) *Classifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Classifier{logger: logger}
}

// CheckExpirations returns one notification per rental that falls within the
// notification window. Rentals with more than 7 whole days remaining are
// silently omitted; downstream consumers rely on the result length as the
// notification count.
func (c *Classifier) CheckExpirations(rentals []Rental, now time.Time) []Notification {
	notifications := make([]Notification, 0, len(rentals))
	for _, rental := range rentals {
		days := datetime.WholeDaysBetween(now, rental.EndDate)
		level, ok := determineLevel(days)
		if !ok {
			continue
		}
		notifications = append(notifications, Notification{
			ID:              uuid.NewString(),
			RentalID:        rental.ID,
			TenantID:        rental.TenantID,
			Level:           level,
			DaysUntilExpiry: days,
			IsOverdue:       days < 0,
			PartnerName:     rental.PartnerName,
			PartnerPhone:    rental.PartnerPhone,
			EquipmentName:   rental.EquipmentName,
			ExpiryDate:      rental.EndDate,
			AssignedUserID:  rental.AssignedUserID,
			CreatedAt:       now,
		})
	}

	c.logger.Debug("checked rental expirations",
		zap.String("op", "expiration.CheckExpirations"),
		zap.Int("rentals", len(rentals)),
		zap.Int("notifications", len(notifications)),
	)

	return notifications
}

// determineLevel maps days until expiry onto a notification level, evaluated
// urgent-first. The second return value is false when the rental is outside
// the notification window and no notification should be emitted.
func determineLevel(daysUntilExpiry int) (Level, bool) {
	switch {
	case daysUntilExpiry <= constants.ExpiryUrgentMaxDays:
		return LevelUrgent, true
	case daysUntilExpiry <= constants.ExpiryWarningMaxDays:
		return LevelWarning, true
	case daysUntilExpiry <= constants.ExpiryInfoMaxDays:
		return LevelInfo, true
	default:
		return "", false
	}
}

// NotificationMessage renders the Hungarian message body for a notification.
// URGENT distinguishes a rental expiring today from one already overdue.
func NotificationMessage(n Notification) string {
	date := n.ExpiryDate.Format(constants.DateLayout)
	switch n.Level {
	case LevelUrgent:
		if n.IsOverdue {
			overdueDays := -n.DaysUntilExpiry
			return fmt.Sprintf("Tisztelt %s! A(z) %s bérlése %d napja lejárt (%s). Azonnali intézkedés szükséges.",
				n.PartnerName, n.EquipmentName, overdueDays, date)
		}
		return fmt.Sprintf("Tisztelt %s! A(z) %s bérlése ma jár le (%s). Azonnali intézkedés szükséges.",
			n.PartnerName, n.EquipmentName, date)
	case LevelWarning:
		return fmt.Sprintf("Tisztelt %s! Sürgős: a(z) %s bérlése %d nap múlva lejár (%s). Kérjük, egyeztessen a hosszabbításról vagy a visszavételről.",
			n.PartnerName, n.EquipmentName, n.DaysUntilExpiry, date)
	default:
		return fmt.Sprintf("Tisztelt %s! A(z) %s bérlése %d nap múlva lejár (%s).",
			n.PartnerName, n.EquipmentName, n.DaysUntilExpiry, date)
	}
}

// GroupByLevel partitions notifications into the three level buckets,
// preserving the relative order within each bucket.
func GroupByLevel(notifications []Notification) map[Level][]Notification {
	groups := make(map[Level][]Notification, len(Levels))
	for _, n := range notifications {
		groups[n.Level] = append(groups[n.Level], n)
	}
	return groups
}
