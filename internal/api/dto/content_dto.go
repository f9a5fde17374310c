package dto

// ServiceRequest payload for creating/updating a service offering.
type ServiceRequest struct {
	Title        string   `json:"title"`
	Slug         string   `json:"slug"`
	Summary      string   `json:"summary"`
	Description  string   `json:"description"`
	Icon         string   `json:"icon"`
	Features     []string `json:"features"`
	DisplayOrder int      `json:"display_order"`
	Published    bool     `json:"published"`
}

// TestimonialRequest payload for creating/updating a testimonial.
type TestimonialRequest struct {
	ClientName string `json:"client_name"`
	Company    string `json:"company"`
	Quote      string `json:"quote"`
	Rating     int    `json:"rating"`
	ImageURL   string `json:"image_url"`
	Published  bool   `json:"published"`
}

// TeamMemberRequest payload for creating/updating a team member.
type TeamMemberRequest struct {
	Name         string `json:"name"`
	Position     string `json:"position"`
	Bio          string `json:"bio"`
	ImageURL     string `json:"image_url"`
	DisplayOrder int    `json:"display_order"`
}

// AwardRequest payload for creating/updating an award.
type AwardRequest struct {
	Title    string `json:"title"`
	Issuer   string `json:"issuer"`
	Year     int    `json:"year"`
	ImageURL string `json:"image_url"`
}
