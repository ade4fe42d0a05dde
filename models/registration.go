package models

// RegistrationStatus values are stored verbatim in the registrations table.
type RegistrationStatus string

const (
	StatusRegistered RegistrationStatus = "REGISTERED"
	StatusCancelled  RegistrationStatus = "CANCELLED"
	StatusCheckedIn  RegistrationStatus = "CHECKED_IN"
)

// Registration tracks one user's participation in one event. There is at
// most one row per (event, user) pair; registering again after a cancel
// toggles the status on the existing row instead of inserting a new one.
type Registration struct {
	ID      int64              `json:"id"`
	EventID int64              `json:"eventId"`
	UserID  int64              `json:"userId"`
	Status  RegistrationStatus `json:"status"`
}
