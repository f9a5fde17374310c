package domain

import "time"

// SubmissionStatus tracks triage state of a contact form submission.
type SubmissionStatus string

const (
	SubmissionStatusNew      SubmissionStatus = "NEW"
	SubmissionStatusRead     SubmissionStatus = "READ"
	SubmissionStatusArchived SubmissionStatus = "ARCHIVED"
)

// FormSubmission is a message sent through the public contact form.
type FormSubmission struct {
	ID        string
	Name      string
	Email     string
	Company   string
	Message   string
	Status    SubmissionStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}
