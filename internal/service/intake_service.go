package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rushikeshwankhede/admaxify-admin-service/internal/domain"
	"github.com/rushikeshwankhede/admaxify-admin-service/internal/events"
	"github.com/rushikeshwankhede/admaxify-admin-service/internal/repository"
	apperrors "github.com/rushikeshwankhede/admaxify-admin-service/pkg/util"
)

// IntakeService handles the public contact form and strategy call
// bookings, plus the admin screens that triage them.
type IntakeService struct {
	submissions repository.SubmissionRepository
	bookings    repository.BookingRepository
	dispatcher  events.Dispatcher
}

// IntakeDependencies bundles what the intake service needs.
type IntakeDependencies struct {
	SubmissionRepo repository.SubmissionRepository
	BookingRepo    repository.BookingRepository
	Dispatcher     events.Dispatcher
}

// NewIntakeService constructs the service.
func NewIntakeService(deps IntakeDependencies) *IntakeService {
	return &IntakeService{
		submissions: deps.SubmissionRepo,
		bookings:    deps.BookingRepo,
		dispatcher:  deps.Dispatcher,
	}
}

// SubmissionInput describes a contact form payload.
type SubmissionInput struct {
	Name    string
	Email   string
	Company string
	Message string
}

// SubmitContactForm records a public contact form submission.
func (s *IntakeService) SubmitContactForm(ctx context.Context, input SubmissionInput) (*domain.FormSubmission, error) {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Email) == "" || strings.TrimSpace(input.Message) == "" {
		return nil, apperrors.NewValidationError("name, email, message required", nil)
	}

	submission := &domain.FormSubmission{
		Name:    input.Name,
		Email:   input.Email,
		Company: input.Company,
		Message: input.Message,
		Status:  domain.SubmissionStatusNew,
	}
	if err := s.submissions.Create(ctx, submission); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventSubmissionReceived,
		SubjectID: submission.ID,
		Timestamp: time.Now(),
		Payload: events.SubmissionReceivedPayload{
			Name:    submission.Name,
			Email:   submission.Email,
			Company: submission.Company,
		},
	})
	return submission, nil
}

// ListSubmissions returns submissions for the admin inbox.
func (s *IntakeService) ListSubmissions(ctx context.Context, status *domain.SubmissionStatus, limit, offset int) ([]domain.FormSubmission, error) {
	result, err := s.submissions.List(ctx, repository.SubmissionFilter{Status: status, Limit: limit, Offset: offset})
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return result, nil
}

// GetSubmission fetches one submission.
func (s *IntakeService) GetSubmission(ctx context.Context, id string) (*domain.FormSubmission, error) {
	submission, err := s.submissions.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return submission, nil
}

// UpdateSubmissionStatus moves a submission through triage.
func (s *IntakeService) UpdateSubmissionStatus(ctx context.Context, id string, status domain.SubmissionStatus) (*domain.FormSubmission, error) {
	switch status {
	case domain.SubmissionStatusNew, domain.SubmissionStatusRead, domain.SubmissionStatusArchived:
	default:
		return nil, apperrors.NewValidationError("invalid submission status", map[string]any{"status": status})
	}
	if err := s.submissions.UpdateStatus(ctx, id, status); err != nil {
		return nil, apperrors.MapError(err)
	}
	return s.GetSubmission(ctx, id)
}

// DeleteSubmission removes a submission permanently.
func (s *IntakeService) DeleteSubmission(ctx context.Context, id string) error {
	if err := s.submissions.Delete(ctx, id); err != nil {
		return apperrors.MapError(err)
	}
	return nil
}

// BookingInput describes a strategy call booking payload.
type BookingInput struct {
	Name          string
	Email         string
	Company       string
	Phone         string
	PreferredDate string
	PreferredTime string
	Notes         string
}

// CreateBooking records a public strategy call booking.
func (s *IntakeService) CreateBooking(ctx context.Context, input BookingInput) (*domain.StrategyCallBooking, error) {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Email) == "" {
		return nil, apperrors.NewValidationError("name and email required", nil)
	}
	if strings.TrimSpace(input.PreferredDate) == "" || strings.TrimSpace(input.PreferredTime) == "" {
		return nil, apperrors.NewValidationError("preferred date and time required", nil)
	}

	booking := &domain.StrategyCallBooking{
		Reference:     uuid.NewString(),
		Name:          input.Name,
		Email:         input.Email,
		Company:       input.Company,
		Phone:         input.Phone,
		PreferredDate: input.PreferredDate,
		PreferredTime: input.PreferredTime,
		Notes:         input.Notes,
		Status:        domain.BookingStatusPending,
	}
	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventBookingReceived,
		SubjectID: booking.ID,
		Timestamp: time.Now(),
		Payload: events.BookingReceivedPayload{
			Reference:     booking.Reference,
			Name:          booking.Name,
			Email:         booking.Email,
			PreferredDate: booking.PreferredDate,
			PreferredTime: booking.PreferredTime,
		},
	})
	return booking, nil
}

// ListBookings returns bookings for the admin screen.
func (s *IntakeService) ListBookings(ctx context.Context, status *domain.BookingStatus, limit, offset int) ([]domain.StrategyCallBooking, error) {
	result, err := s.bookings.List(ctx, repository.BookingFilter{Status: status, Limit: limit, Offset: offset})
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return result, nil
}

// GetBooking fetches one booking.
func (s *IntakeService) GetBooking(ctx context.Context, id string) (*domain.StrategyCallBooking, error) {
	booking, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return booking, nil
}

// UpdateBookingStatus moves a booking through its lifecycle.
func (s *IntakeService) UpdateBookingStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.StrategyCallBooking, error) {
	switch status {
	case domain.BookingStatusPending, domain.BookingStatusConfirmed, domain.BookingStatusCompleted, domain.BookingStatusCancelled:
	default:
		return nil, apperrors.NewValidationError("invalid booking status", map[string]any{"status": status})
	}

	booking, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	oldStatus := booking.Status
	if err := s.bookings.UpdateStatus(ctx, id, status); err != nil {
		return nil, apperrors.MapError(err)
	}
	booking.Status = status

	if oldStatus != status {
		s.publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventBookingStatusChanged,
			SubjectID: booking.ID,
			Timestamp: time.Now(),
			Payload: events.BookingStatusChangedPayload{
				Reference: booking.Reference,
				OldStatus: oldStatus,
				NewStatus: status,
			},
		})
	}
	return booking, nil
}

// DeleteBooking removes a booking permanently.
func (s *IntakeService) DeleteBooking(ctx context.Context, id string) error {
	if err := s.bookings.Delete(ctx, id); err != nil {
		return apperrors.MapError(err)
	}
	return nil
}

func (s *IntakeService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, event)
}
