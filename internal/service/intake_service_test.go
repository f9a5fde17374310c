package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rushikeshwankhede/admaxify-admin-service/internal/domain"
	"github.com/rushikeshwankhede/admaxify-admin-service/internal/events"
	"github.com/rushikeshwankhede/admaxify-admin-service/internal/repository"
	apperrors "github.com/rushikeshwankhede/admaxify-admin-service/pkg/util"
)

type fakeSubmissionRepo struct {
	byID map[string]*domain.FormSubmission
	seq  int
}

func newFakeSubmissionRepo() *fakeSubmissionRepo {
	return &fakeSubmissionRepo{byID: map[string]*domain.FormSubmission{}}
}

func (r *fakeSubmissionRepo) Create(_ context.Context, s *domain.FormSubmission) error {
	r.seq++
	s.ID = "sub-" + string(rune('0'+r.seq))
	copied := *s
	r.byID[s.ID] = &copied
	return nil
}

func (r *fakeSubmissionRepo) UpdateStatus(_ context.Context, id string, status domain.SubmissionStatus) error {
	s, ok := r.byID[id]
	if !ok {
		return pgxNoRows()
	}
	s.Status = status
	return nil
}

func (r *fakeSubmissionRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return pgxNoRows()
	}
	delete(r.byID, id)
	return nil
}

func (r *fakeSubmissionRepo) GetByID(_ context.Context, id string) (*domain.FormSubmission, error) {
	s, ok := r.byID[id]
	if !ok {
		return nil, pgxNoRows()
	}
	copied := *s
	return &copied, nil
}

func (r *fakeSubmissionRepo) List(_ context.Context, filter repository.SubmissionFilter) ([]domain.FormSubmission, error) {
	var result []domain.FormSubmission
	for _, s := range r.byID {
		if filter.Status != nil && s.Status != *filter.Status {
			continue
		}
		result = append(result, *s)
	}
	return result, nil
}

type fakeBookingRepo struct {
	byID map[string]*domain.StrategyCallBooking
	seq  int
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{byID: map[string]*domain.StrategyCallBooking{}}
}

func (r *fakeBookingRepo) Create(_ context.Context, b *domain.StrategyCallBooking) error {
	r.seq++
	b.ID = "bk-" + string(rune('0'+r.seq))
	copied := *b
	r.byID[b.ID] = &copied
	return nil
}

func (r *fakeBookingRepo) UpdateStatus(_ context.Context, id string, status domain.BookingStatus) error {
	b, ok := r.byID[id]
	if !ok {
		return pgxNoRows()
	}
	b.Status = status
	return nil
}

func (r *fakeBookingRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return pgxNoRows()
	}
	delete(r.byID, id)
	return nil
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id string) (*domain.StrategyCallBooking, error) {
	b, ok := r.byID[id]
	if !ok {
		return nil, pgxNoRows()
	}
	copied := *b
	return &copied, nil
}

func (r *fakeBookingRepo) List(_ context.Context, filter repository.BookingFilter) ([]domain.StrategyCallBooking, error) {
	var result []domain.StrategyCallBooking
	for _, b := range r.byID {
		if filter.Status != nil && b.Status != *filter.Status {
			continue
		}
		result = append(result, *b)
	}
	return result, nil
}

type recordingDispatcher struct {
	published []events.Event
}

func (d *recordingDispatcher) Publish(_ context.Context, event events.Event) error {
	d.published = append(d.published, event)
	return nil
}

func (d *recordingDispatcher) Subscribe(events.EventType, events.EventHandler) {}

func newIntakeFixture() (*IntakeService, *fakeSubmissionRepo, *fakeBookingRepo, *recordingDispatcher) {
	submissions := newFakeSubmissionRepo()
	bookings := newFakeBookingRepo()
	dispatcher := &recordingDispatcher{}
	svc := NewIntakeService(IntakeDependencies{
		SubmissionRepo: submissions,
		BookingRepo:    bookings,
		Dispatcher:     dispatcher,
	})
	return svc, submissions, bookings, dispatcher
}

func TestSubmitContactForm(t *testing.T) {
	svc, repo, _, dispatcher := newIntakeFixture()

	submission, err := svc.SubmitContactForm(context.Background(), SubmissionInput{
		Name:    "Jamie",
		Email:   "jamie@example.com",
		Message: "We need a campaign",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.SubmissionStatusNew, submission.Status)
	assert.Len(t, repo.byID, 1)
	require.Len(t, dispatcher.published, 1)
	assert.Equal(t, events.EventSubmissionReceived, dispatcher.published[0].Type)
}

func TestSubmitContactFormValidation(t *testing.T) {
	svc, repo, _, dispatcher := newIntakeFixture()

	_, err := svc.SubmitContactForm(context.Background(), SubmissionInput{
		Name:  "Jamie",
		Email: "jamie@example.com",
	})

	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
	assert.Empty(t, repo.byID)
	assert.Empty(t, dispatcher.published)
}

func TestUpdateSubmissionStatus(t *testing.T) {
	svc, _, _, _ := newIntakeFixture()
	submission, err := svc.SubmitContactForm(context.Background(), SubmissionInput{
		Name: "Jamie", Email: "jamie@example.com", Message: "hi",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateSubmissionStatus(context.Background(), submission.ID, domain.SubmissionStatusRead)
	require.NoError(t, err)
	assert.Equal(t, domain.SubmissionStatusRead, updated.Status)

	_, err = svc.UpdateSubmissionStatus(context.Background(), submission.ID, domain.SubmissionStatus("SPAM"))
	assert.Error(t, err)
}

func TestUpdateSubmissionStatusNotFound(t *testing.T) {
	svc, _, _, _ := newIntakeFixture()

	_, err := svc.UpdateSubmissionStatus(context.Background(), "missing", domain.SubmissionStatusRead)

	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
}

func TestCreateBooking(t *testing.T) {
	svc, _, repo, dispatcher := newIntakeFixture()

	booking, err := svc.CreateBooking(context.Background(), BookingInput{
		Name:          "Jamie",
		Email:         "jamie@example.com",
		PreferredDate: "2026-09-15",
		PreferredTime: "14:00",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, booking.Reference)
	assert.Equal(t, domain.BookingStatusPending, booking.Status)
	assert.Len(t, repo.byID, 1)
	require.Len(t, dispatcher.published, 1)
	assert.Equal(t, events.EventBookingReceived, dispatcher.published[0].Type)
}

func TestCreateBookingRequiresSchedule(t *testing.T) {
	svc, _, _, _ := newIntakeFixture()

	_, err := svc.CreateBooking(context.Background(), BookingInput{
		Name:  "Jamie",
		Email: "jamie@example.com",
	})
	assert.Error(t, err)
}

func TestUpdateBookingStatusPublishesOnChangeOnly(t *testing.T) {
	svc, _, _, dispatcher := newIntakeFixture()
	booking, err := svc.CreateBooking(context.Background(), BookingInput{
		Name: "Jamie", Email: "jamie@example.com", PreferredDate: "2026-09-15", PreferredTime: "14:00",
	})
	require.NoError(t, err)
	dispatcher.published = nil

	updated, err := svc.UpdateBookingStatus(context.Background(), booking.ID, domain.BookingStatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, updated.Status)
	require.Len(t, dispatcher.published, 1)
	assert.Equal(t, events.EventBookingStatusChanged, dispatcher.published[0].Type)

	// Re-applying the same status is a no-op for notifications.
	dispatcher.published = nil
	_, err = svc.UpdateBookingStatus(context.Background(), booking.ID, domain.BookingStatusConfirmed)
	require.NoError(t, err)
	assert.Empty(t, dispatcher.published)
}
