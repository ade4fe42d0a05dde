package models

import "time"

// Event is an organizer-owned occasion with a fixed capacity. A non-nil
// Price marks a paid event; the distinction lives in the data, not the type.
type Event struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	DateTime    time.Time `json:"dateTime" binding:"required"`
	Venue       string    `json:"venue" binding:"required"`
	Capacity    int       `json:"capacity" binding:"required,gt=0"`
	OrganizerID int64     `json:"organizerId"`
	Price       *float64  `json:"price,omitempty"`
}

func (e Event) IsPaid() bool { return e.Price != nil }

// IsUpcoming reports whether the event starts strictly after now.
func (e Event) IsUpcoming(now time.Time) bool { return e.DateTime.After(now) }
