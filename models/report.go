package models

// ReportCount is one row of the admin moderation view: how many attendees
// flagged an event.
type ReportCount struct {
	EventID int64 `json:"eventId"`
	Count   int   `json:"count"`
}
