package services

import "errors"

// The registration protocol reports each failure condition as a distinct
// value so the presentation layer can render a specific message. Anything
// else coming out of the service is a storage failure.
var (
	ErrAlreadyRegistered = errors.New("already registered for this event")
	ErrEventNotFound     = errors.New("event not found")
	ErrEventFull         = errors.New("event is full")
	ErrNotRegistered     = errors.New("not registered for this event")
)
