package models

import "time"

// Submission is one journaled form submission: the full payload as JSON
// plus the columns the back office filters and exports on.
type Submission struct {
	ID          int64     `json:"id"`
	FormID      string    `json:"form_id"`
	Title       string    `json:"title"`
	Vertical    string    `json:"vertical"`
	ItemCount   int       `json:"item_count"`
	GrandTotal  float64   `json:"grand_total"`
	Payload     string    `json:"payload"` // full form.Payload as JSON
	SubmittedAt time.Time `json:"submitted_at"`
	CreatedAt   time.Time `json:"created_at"`
}
