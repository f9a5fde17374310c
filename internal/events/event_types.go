package events

import (
	"time"

	"github.com/rushikeshwankhede/admaxify-admin-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventSubmissionReceived   EventType = "submission_received"
	EventBookingReceived      EventType = "booking_received"
	EventBookingStatusChanged EventType = "booking_status_changed"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	SubjectID string      `json:"subject_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// SubmissionReceivedPayload payload.
type SubmissionReceivedPayload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company,omitempty"`
}

// BookingReceivedPayload payload.
type BookingReceivedPayload struct {
	Reference     string `json:"reference"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	PreferredDate string `json:"preferred_date"`
	PreferredTime string `json:"preferred_time"`
}

// BookingStatusChangedPayload payload.
type BookingStatusChangedPayload struct {
	Reference string               `json:"reference"`
	OldStatus domain.BookingStatus `json:"old_status"`
	NewStatus domain.BookingStatus `json:"new_status"`
}
