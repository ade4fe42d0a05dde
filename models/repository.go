package models

import "errors"

// ErrNotFound is returned by lookups when no row matches.
var ErrNotFound = errors.New("not found")

// ErrDuplicateRegistration is returned by RegistrationRepository.Insert when
// the (event, user) pair already has a row. The UNIQUE constraint is the
// storage-layer backstop against double registration; callers decide what
// the duplicate means.
var ErrDuplicateRegistration = errors.New("registration already exists")

// ErrDuplicateReport is returned when an attendee flags the same event twice.
var ErrDuplicateReport = errors.New("report already exists")

// ErrDuplicateUser is returned on signup when the username is taken.
var ErrDuplicateUser = errors.New("username already exists")

type UserRepository interface {
	Create(u *User) error
	FindByUsername(username string) (User, error)
	FindByID(id int64) (User, error)
	ListAll() ([]User, error)
	CountAll() (int, error)
	DeleteByID(id int64) error
	UpdateUsername(id int64, username string) error
	UpdatePassword(id int64, hash string) error
	EmailNotifications(id int64) (bool, error)
	SetEmailNotifications(id int64, enabled bool) error
}

type EventRepository interface {
	Create(e *Event) error
	Update(e *Event) error
	Delete(id int64) error
	FindByID(id int64) (Event, error)
	FindAll() ([]Event, error)
	FindUpcoming() ([]Event, error)
	FindByOrganizer(organizerID int64) ([]Event, error)
	CountAll() (int, error)
}

type RegistrationRepository interface {
	// Insert creates the first row for the pair with status REGISTERED.
	Insert(eventID, userID int64) (int64, error)
	// UpdateStatus toggles the existing row; it reports whether a row was hit.
	UpdateStatus(eventID, userID int64, status RegistrationStatus) (bool, error)
	Find(eventID, userID int64) (Registration, error)
	// CountRegistered counts rows with status REGISTERED only.
	CountRegistered(eventID int64) (int, error)
	// IsRegistered matches status REGISTERED exactly.
	IsRegistered(eventID, userID int64) (bool, error)
	// FindEventsByUser lists events the user is REGISTERED for, soonest first.
	FindEventsByUser(userID int64) ([]Event, error)
	ListByEvent(eventID int64) ([]Registration, error)
	CountAll() (int, error)
}

type ReportRepository interface {
	Add(eventID, attendeeID int64) error
	HasReported(eventID, attendeeID int64) (bool, error)
	// CountsByEvent returns report totals grouped by event, most reported first.
	CountsByEvent() ([]ReportCount, error)
}
