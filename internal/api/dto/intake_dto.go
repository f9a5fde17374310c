package dto

// ContactFormRequest payload for the public contact form.
type ContactFormRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
	Message string `json:"message"`
}

// BookingRequest payload for the public strategy call form.
type BookingRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Company       string `json:"company"`
	Phone         string `json:"phone"`
	PreferredDate string `json:"preferred_date"`
	PreferredTime string `json:"preferred_time"`
	Notes         string `json:"notes"`
}

// StatusUpdateRequest payload for triage status changes.
type StatusUpdateRequest struct {
	Status string `json:"status"`
}
