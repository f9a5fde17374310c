package domain

import "time"

// BookingStatus tracks the lifecycle of a strategy call booking.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCompleted BookingStatus = "COMPLETED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

// StrategyCallBooking is a request for a strategy call made from the
// public booking form. Reference is the customer-facing identifier.
type StrategyCallBooking struct {
	ID            string
	Reference     string
	Name          string
	Email         string
	Company       string
	Phone         string
	PreferredDate string
	PreferredTime string
	Notes         string
	Status        BookingStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
