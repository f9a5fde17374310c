package domain

import "time"

// Service is a marketing service offering shown on the public site and
// managed from the admin panel.
type Service struct {
	ID           string
	Title        string
	Slug         string
	Summary      string
	Description  string
	Icon         string
	Features     []string
	DisplayOrder int
	Published    bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Testimonial is a client quote displayed on the marketing site.
type Testimonial struct {
	ID         string
	ClientName string
	Company    string
	Quote      string
	Rating     int
	ImageURL   string
	Published  bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TeamMember appears on the about page.
type TeamMember struct {
	ID           string
	Name         string
	Position     string
	Bio          string
	ImageURL     string
	DisplayOrder int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Award is an accolade listed on the marketing site.
type Award struct {
	ID        string
	Title     string
	Issuer    string
	Year      int
	ImageURL  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
