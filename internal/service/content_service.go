package service

import (
	"context"
	"strings"
	"time"

	"github.com/rushikeshwankhede/admaxify-admin-service/internal/domain"
	"github.com/rushikeshwankhede/admaxify-admin-service/internal/repository"
	apperrors "github.com/rushikeshwankhede/admaxify-admin-service/pkg/util"
)

// ContentService manages the marketing site entities the admin panel edits.
type ContentService struct {
	services     repository.ServiceRepository
	testimonials repository.TestimonialRepository
	team         repository.TeamMemberRepository
	awards       repository.AwardRepository
}

// ContentDependencies bundles repositories for the content service.
type ContentDependencies struct {
	ServiceRepo     repository.ServiceRepository
	TestimonialRepo repository.TestimonialRepository
	TeamMemberRepo  repository.TeamMemberRepository
	AwardRepo       repository.AwardRepository
}

// NewContentService constructs the service.
func NewContentService(deps ContentDependencies) *ContentService {
	return &ContentService{
		services:     deps.ServiceRepo,
		testimonials: deps.TestimonialRepo,
		team:         deps.TeamMemberRepo,
		awards:       deps.AwardRepo,
	}
}

// ServiceInput describes a create/update payload for a service offering.
type ServiceInput struct {
	Title        string
	Slug         string
	Summary      string
	Description  string
	Icon         string
	Features     []string
	DisplayOrder int
	Published    bool
}

func (in ServiceInput) validate() error {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Slug) == "" {
		return apperrors.NewValidationError("title and slug required", nil)
	}
	return nil
}

// CreateService persists a new offering.
func (s *ContentService) CreateService(ctx context.Context, input ServiceInput) (*domain.Service, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	svc := &domain.Service{
		Title:        input.Title,
		Slug:         input.Slug,
		Summary:      input.Summary,
		Description:  input.Description,
		Icon:         input.Icon,
		Features:     input.Features,
		DisplayOrder: input.DisplayOrder,
		Published:    input.Published,
	}
	if err := s.services.Create(ctx, svc); err != nil {
		return nil, apperrors.MapError(err)
	}
	return svc, nil
}

// UpdateService replaces an offering's fields.
func (s *ContentService) UpdateService(ctx context.Context, id string, input ServiceInput) (*domain.Service, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	svc, err := s.services.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	svc.Title = input.Title
	svc.Slug = input.Slug
	svc.Summary = input.Summary
	svc.Description = input.Description
	svc.Icon = input.Icon
	svc.Features = input.Features
	svc.DisplayOrder = input.DisplayOrder
	svc.Published = input.Published
	if err := s.services.Update(ctx, svc); err != nil {
		return nil, apperrors.MapError(err)
	}
	return svc, nil
}

// DeleteService removes an offering.
func (s *ContentService) DeleteService(ctx context.Context, id string) error {
	if err := s.services.Delete(ctx, id); err != nil {
		return apperrors.MapError(err)
	}
	return nil
}

// GetService fetches one offering.
func (s *ContentService) GetService(ctx context.Context, id string) (*domain.Service, error) {
	svc, err := s.services.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return svc, nil
}

// ListServices returns offerings; publishedOnly restricts to live content.
func (s *ContentService) ListServices(ctx context.Context, publishedOnly bool, limit, offset int) ([]domain.Service, error) {
	filter := repository.ContentFilter{Limit: limit, Offset: offset}
	if publishedOnly {
		published := true
		filter.Published = &published
	}
	result, err := s.services.List(ctx, filter)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return result, nil
}

// TestimonialInput describes a create/update payload for a testimonial.
type TestimonialInput struct {
	ClientName string
	Company    string
	Quote      string
	Rating     int
	ImageURL   string
	Published  bool
}

func (in TestimonialInput) validate() error {
	if strings.TrimSpace(in.ClientName) == "" || strings.TrimSpace(in.Quote) == "" {
		return apperrors.NewValidationError("client name and quote required", nil)
	}
	if in.Rating < 1 || in.Rating > 5 {
		return apperrors.NewValidationError("rating must be between 1 and 5", map[string]any{"rating": in.Rating})
	}
	return nil
}

// CreateTestimonial persists a new testimonial.
func (s *ContentService) CreateTestimonial(ctx context.Context, input TestimonialInput) (*domain.Testimonial, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	t := &domain.Testimonial{
		ClientName: input.ClientName,
		Company:    input.Company,
		Quote:      input.Quote,
		Rating:     input.Rating,
		ImageURL:   input.ImageURL,
		Published:  input.Published,
	}
	if err := s.testimonials.Create(ctx, t); err != nil {
		return nil, apperrors.MapError(err)
	}
	return t, nil
}

// UpdateTestimonial replaces a testimonial's fields.
func (s *ContentService) UpdateTestimonial(ctx context.Context, id string, input TestimonialInput) (*domain.Testimonial, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	t, err := s.testimonials.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	t.ClientName = input.ClientName
	t.Company = input.Company
	t.Quote = input.Quote
	t.Rating = input.Rating
	t.ImageURL = input.ImageURL
	t.Published = input.Published
	if err := s.testimonials.Update(ctx, t); err != nil {
		return nil, apperrors.MapError(err)
	}
	return t, nil
}

// DeleteTestimonial removes a testimonial.
func (s *ContentService) DeleteTestimonial(ctx context.Context, id string) error {
	if err := s.testimonials.Delete(ctx, id); err != nil {
		return apperrors.MapError(err)
	}
	return nil
}

// ListTestimonials returns testimonials; publishedOnly restricts to live content.
func (s *ContentService) ListTestimonials(ctx context.Context, publishedOnly bool, limit, offset int) ([]domain.Testimonial, error) {
	filter := repository.ContentFilter{Limit: limit, Offset: offset}
	if publishedOnly {
		published := true
		filter.Published = &published
	}
	result, err := s.testimonials.List(ctx, filter)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return result, nil
}

// TeamMemberInput describes a create/update payload for a team member.
type TeamMemberInput struct {
	Name         string
	Position     string
	Bio          string
	ImageURL     string
	DisplayOrder int
}

func (in TeamMemberInput) validate() error {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Position) == "" {
		return apperrors.NewValidationError("name and position required", nil)
	}
	return nil
}

// CreateTeamMember persists a new team member.
func (s *ContentService) CreateTeamMember(ctx context.Context, input TeamMemberInput) (*domain.TeamMember, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	m := &domain.TeamMember{
		Name:         input.Name,
		Position:     input.Position,
		Bio:          input.Bio,
		ImageURL:     input.ImageURL,
		DisplayOrder: input.DisplayOrder,
	}
	if err := s.team.Create(ctx, m); err != nil {
		return nil, apperrors.MapError(err)
	}
	return m, nil
}

// UpdateTeamMember replaces a team member's fields.
func (s *ContentService) UpdateTeamMember(ctx context.Context, id string, input TeamMemberInput) (*domain.TeamMember, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	m, err := s.team.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	m.Name = input.Name
	m.Position = input.Position
	m.Bio = input.Bio
	m.ImageURL = input.ImageURL
	m.DisplayOrder = input.DisplayOrder
	if err := s.team.Update(ctx, m); err != nil {
		return nil, apperrors.MapError(err)
	}
	return m, nil
}

// DeleteTeamMember removes a team member.
func (s *ContentService) DeleteTeamMember(ctx context.Context, id string) error {
	if err := s.team.Delete(ctx, id); err != nil {
		return apperrors.MapError(err)
	}
	return nil
}

// ListTeamMembers returns team members in display order.
func (s *ContentService) ListTeamMembers(ctx context.Context, limit, offset int) ([]domain.TeamMember, error) {
	result, err := s.team.List(ctx, repository.ContentFilter{Limit: limit, Offset: offset})
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return result, nil
}

// AwardInput describes a create/update payload for an award.
type AwardInput struct {
	Title    string
	Issuer   string
	Year     int
	ImageURL string
}

func (in AwardInput) validate() error {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Issuer) == "" {
		return apperrors.NewValidationError("title and issuer required", nil)
	}
	if in.Year < 2000 || in.Year > time.Now().Year()+1 {
		return apperrors.NewValidationError("year out of range", map[string]any{"year": in.Year})
	}
	return nil
}

// CreateAward persists a new award.
func (s *ContentService) CreateAward(ctx context.Context, input AwardInput) (*domain.Award, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	a := &domain.Award{
		Title:    input.Title,
		Issuer:   input.Issuer,
		Year:     input.Year,
		ImageURL: input.ImageURL,
	}
	if err := s.awards.Create(ctx, a); err != nil {
		return nil, apperrors.MapError(err)
	}
	return a, nil
}

// UpdateAward replaces an award's fields.
func (s *ContentService) UpdateAward(ctx context.Context, id string, input AwardInput) (*domain.Award, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	a, err := s.awards.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	a.Title = input.Title
	a.Issuer = input.Issuer
	a.Year = input.Year
	a.ImageURL = input.ImageURL
	if err := s.awards.Update(ctx, a); err != nil {
		return nil, apperrors.MapError(err)
	}
	return a, nil
}

// DeleteAward removes an award.
func (s *ContentService) DeleteAward(ctx context.Context, id string) error {
	if err := s.awards.Delete(ctx, id); err != nil {
		return apperrors.MapError(err)
	}
	return nil
}

// ListAwards returns awards, newest year first.
func (s *ContentService) ListAwards(ctx context.Context, limit, offset int) ([]domain.Award, error) {
	result, err := s.awards.List(ctx, repository.ContentFilter{Limit: limit, Offset: offset})
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return result, nil
}
