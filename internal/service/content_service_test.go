package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rushikeshwankhede/admaxify-admin-service/internal/domain"
	"github.com/rushikeshwankhede/admaxify-admin-service/internal/repository"
	apperrors "github.com/rushikeshwankhede/admaxify-admin-service/pkg/util"
)

func pgxNoRows() error { return pgx.ErrNoRows }

type fakeServiceRepo struct {
	byID map[string]*domain.Service
	seq  int
}

func newFakeServiceRepo() *fakeServiceRepo {
	return &fakeServiceRepo{byID: map[string]*domain.Service{}}
}

func (r *fakeServiceRepo) Create(_ context.Context, s *domain.Service) error {
	r.seq++
	s.ID = fmt.Sprintf("svc-%d", r.seq)
	copied := *s
	r.byID[s.ID] = &copied
	return nil
}

func (r *fakeServiceRepo) Update(_ context.Context, s *domain.Service) error {
	if _, ok := r.byID[s.ID]; !ok {
		return pgxNoRows()
	}
	copied := *s
	r.byID[s.ID] = &copied
	return nil
}

func (r *fakeServiceRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return pgxNoRows()
	}
	delete(r.byID, id)
	return nil
}

func (r *fakeServiceRepo) GetByID(_ context.Context, id string) (*domain.Service, error) {
	s, ok := r.byID[id]
	if !ok {
		return nil, pgxNoRows()
	}
	copied := *s
	return &copied, nil
}

func (r *fakeServiceRepo) List(_ context.Context, filter repository.ContentFilter) ([]domain.Service, error) {
	var result []domain.Service
	for _, s := range r.byID {
		if filter.Published != nil && s.Published != *filter.Published {
			continue
		}
		result = append(result, *s)
	}
	return result, nil
}

type fakeTestimonialRepo struct {
	byID map[string]*domain.Testimonial
	seq  int
}

func newFakeTestimonialRepo() *fakeTestimonialRepo {
	return &fakeTestimonialRepo{byID: map[string]*domain.Testimonial{}}
}

func (r *fakeTestimonialRepo) Create(_ context.Context, t *domain.Testimonial) error {
	r.seq++
	t.ID = fmt.Sprintf("tst-%d", r.seq)
	copied := *t
	r.byID[t.ID] = &copied
	return nil
}

func (r *fakeTestimonialRepo) Update(_ context.Context, t *domain.Testimonial) error {
	if _, ok := r.byID[t.ID]; !ok {
		return pgxNoRows()
	}
	copied := *t
	r.byID[t.ID] = &copied
	return nil
}

func (r *fakeTestimonialRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return pgxNoRows()
	}
	delete(r.byID, id)
	return nil
}

func (r *fakeTestimonialRepo) GetByID(_ context.Context, id string) (*domain.Testimonial, error) {
	t, ok := r.byID[id]
	if !ok {
		return nil, pgxNoRows()
	}
	copied := *t
	return &copied, nil
}

func (r *fakeTestimonialRepo) List(_ context.Context, filter repository.ContentFilter) ([]domain.Testimonial, error) {
	var result []domain.Testimonial
	for _, t := range r.byID {
		if filter.Published != nil && t.Published != *filter.Published {
			continue
		}
		result = append(result, *t)
	}
	return result, nil
}

func newContentFixture() (*ContentService, *fakeServiceRepo, *fakeTestimonialRepo) {
	services := newFakeServiceRepo()
	testimonials := newFakeTestimonialRepo()
	svc := NewContentService(ContentDependencies{
		ServiceRepo:     services,
		TestimonialRepo: testimonials,
	})
	return svc, services, testimonials
}

func TestCreateService(t *testing.T) {
	svc, repo, _ := newContentFixture()

	created, err := svc.CreateService(context.Background(), ServiceInput{
		Title:     "SEO",
		Slug:      "seo",
		Published: true,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Len(t, repo.byID, 1)
}

func TestCreateServiceValidation(t *testing.T) {
	svc, _, _ := newContentFixture()

	_, err := svc.CreateService(context.Background(), ServiceInput{Title: "SEO"})

	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
}

func TestUpdateServiceNotFound(t *testing.T) {
	svc, _, _ := newContentFixture()

	_, err := svc.UpdateService(context.Background(), "missing", ServiceInput{Title: "SEO", Slug: "seo"})

	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
}

func TestListServicesPublishedOnly(t *testing.T) {
	svc, _, _ := newContentFixture()
	_, err := svc.CreateService(context.Background(), ServiceInput{Title: "SEO", Slug: "seo", Published: true})
	require.NoError(t, err)
	_, err = svc.CreateService(context.Background(), ServiceInput{Title: "PPC", Slug: "ppc"})
	require.NoError(t, err)

	all, err := svc.ListServices(context.Background(), false, 50, 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	published, err := svc.ListServices(context.Background(), true, 50, 0)
	require.NoError(t, err)
	require.Len(t, published, 1)
	assert.Equal(t, "seo", published[0].Slug)
}

func TestCreateTestimonialRatingBounds(t *testing.T) {
	svc, _, _ := newContentFixture()

	for _, rating := range []int{0, 6, -1} {
		_, err := svc.CreateTestimonial(context.Background(), TestimonialInput{
			ClientName: "Jamie",
			Quote:      "Great work",
			Rating:     rating,
		})
		assert.Error(t, err, "rating %d should be rejected", rating)
	}

	created, err := svc.CreateTestimonial(context.Background(), TestimonialInput{
		ClientName: "Jamie",
		Quote:      "Great work",
		Rating:     5,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, created.Rating)
}

func TestDeleteService(t *testing.T) {
	svc, repo, _ := newContentFixture()
	created, err := svc.CreateService(context.Background(), ServiceInput{Title: "SEO", Slug: "seo"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteService(context.Background(), created.ID))
	assert.Empty(t, repo.byID)

	err = svc.DeleteService(context.Background(), created.ID)
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
}
