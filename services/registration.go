package services

import (
	"errors"
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"popin/models"
)

// RegistrationService enforces the registration protocol and the capacity
// invariant: an event never holds more REGISTERED rows than its capacity.
//
// The capacity check and the following insert/update are not atomic at the
// storage layer, so the whole check-then-act sequence runs under a mutex
// keyed by event id. Registrations for different events do not block each
// other; the UNIQUE(event_id, user_id) constraint stays as the backstop for
// duplicate rows.
type RegistrationService struct {
	events models.EventRepository
	regs   models.RegistrationRepository

	mu    sync.Mutex
	locks map[int64]*sync.Mutex

	// now is swappable in tests.
	now func() time.Time
}

func NewRegistrationService(events models.EventRepository, regs models.RegistrationRepository) *RegistrationService {
	return &RegistrationService{
		events: events,
		regs:   regs,
		locks:  make(map[int64]*sync.Mutex),
		now:    time.Now,
	}
}

// eventLock returns the mutex for one event id. Locks are kept for the life
// of the process; the map is bounded by the number of distinct events seen.
func (s *RegistrationService) eventLock(eventID int64) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[eventID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[eventID] = l
	}
	return l
}

// RegisterUser registers userID for eventID. The first registration inserts
// a row; registering again after a cancel reactivates the existing row.
func (s *RegistrationService) RegisterUser(eventID, userID int64) error {
	l := s.eventLock(eventID)
	l.Lock()
	defer l.Unlock()

	registered, err := s.regs.IsRegistered(eventID, userID)
	if err != nil {
		return fmt.Errorf("check registration for event %d, user %d: %w", eventID, userID, err)
	}
	if registered {
		return ErrAlreadyRegistered
	}

	event, err := s.events.FindByID(eventID)
	if errors.Is(err, models.ErrNotFound) {
		return ErrEventNotFound
	}
	if err != nil {
		return fmt.Errorf("resolve event %d: %w", eventID, err)
	}
	// Past events are closed for registration and treated as absent.
	if !event.IsUpcoming(s.now()) {
		return ErrEventNotFound
	}

	count, err := s.regs.CountRegistered(eventID)
	if err != nil {
		return fmt.Errorf("count registrations for event %d: %w", eventID, err)
	}
	if count >= event.Capacity {
		log.WithFields(log.Fields{"event": eventID, "user": userID, "capacity": event.Capacity}).
			Warn("registration rejected, event full")
		return ErrEventFull
	}

	// A prior CANCELLED (or CHECKED_IN) row is reactivated in place.
	reactivated, err := s.regs.UpdateStatus(eventID, userID, models.StatusRegistered)
	if err != nil {
		return fmt.Errorf("reactivate registration for event %d, user %d: %w", eventID, userID, err)
	}
	if reactivated {
		return nil
	}

	if _, err := s.regs.Insert(eventID, userID); err != nil {
		// The constraint exists exactly to catch the duplicate race.
		if errors.Is(err, models.ErrDuplicateRegistration) {
			return ErrAlreadyRegistered
		}
		return fmt.Errorf("insert registration for event %d, user %d: %w", eventID, userID, err)
	}
	return nil
}

// CancelRegistration sets the pair's row to CANCELLED. Any existing row can
// be cancelled; cancelling an already-CANCELLED row is a no-op transition.
// Only a missing row fails.
func (s *RegistrationService) CancelRegistration(eventID, userID int64) error {
	l := s.eventLock(eventID)
	l.Lock()
	defer l.Unlock()

	updated, err := s.regs.UpdateStatus(eventID, userID, models.StatusCancelled)
	if err != nil {
		return fmt.Errorf("cancel registration for event %d, user %d: %w", eventID, userID, err)
	}
	if !updated {
		return ErrNotRegistered
	}
	return nil
}

// CheckInUser sets the pair's row to CHECKED_IN. Any existing row qualifies.
func (s *RegistrationService) CheckInUser(eventID, userID int64) error {
	l := s.eventLock(eventID)
	l.Lock()
	defer l.Unlock()

	updated, err := s.regs.UpdateStatus(eventID, userID, models.StatusCheckedIn)
	if err != nil {
		return fmt.Errorf("check in user %d for event %d: %w", userID, eventID, err)
	}
	if !updated {
		return ErrNotRegistered
	}
	return nil
}

// IsEventFull reports whether the event has no free capacity. An event that
// cannot be resolved (missing or already started) reads as full rather than
// open.
func (s *RegistrationService) IsEventFull(eventID int64) bool {
	event, err := s.events.FindByID(eventID)
	if err != nil || !event.IsUpcoming(s.now()) {
		return true
	}
	count, err := s.regs.CountRegistered(eventID)
	if err != nil {
		log.WithError(err).WithField("event", eventID).Warn("capacity count failed")
		return true
	}
	return count >= event.Capacity
}

// IsUserRegistered reports whether the pair's row exists with status exactly
// REGISTERED. CANCELLED and CHECKED_IN rows do not count.
func (s *RegistrationService) IsUserRegistered(eventID, userID int64) bool {
	registered, err := s.regs.IsRegistered(eventID, userID)
	if err != nil {
		log.WithError(err).WithFields(log.Fields{"event": eventID, "user": userID}).
			Warn("registration lookup failed")
		return false
	}
	return registered
}
