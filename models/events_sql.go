package models

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// timeLayout is how date_time is stored. UTC RFC3339 keeps the column
// readable by sqlite's datetime() for range checks and ordering.
const timeLayout = time.RFC3339

type sqlEventRepo struct{ db *sql.DB }

func NewSQLEventRepository(db *sql.DB) EventRepository { return &sqlEventRepo{db} }

var _ EventRepository = (*sqlEventRepo)(nil)

const eventColumns = `id, title, description, date_time, venue, capacity, organizer_id, price`

func scanEvent(scanner interface{ Scan(...any) error }) (Event, error) {
	var (
		e           Event
		description sql.NullString
		dateTime    string
		price       sql.NullFloat64
	)
	err := scanner.Scan(&e.ID, &e.Title, &description, &dateTime, &e.Venue, &e.Capacity, &e.OrganizerID, &price)
	if err != nil {
		return Event{}, err
	}
	e.Description = description.String
	if price.Valid {
		p := price.Float64
		e.Price = &p
	}
	e.DateTime, err = time.Parse(timeLayout, dateTime)
	if err != nil {
		return Event{}, fmt.Errorf("parse event %d date_time: %w", e.ID, err)
	}
	return e, nil
}

func (r *sqlEventRepo) queryEvents(query string, args ...any) ([]Event, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *sqlEventRepo) Create(e *Event) error {
	var price any
	if e.Price != nil {
		price = *e.Price
	}
	res, err := r.db.Exec(
		`INSERT INTO events (title, description, date_time, venue, capacity, organizer_id, price)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.Title, e.Description, e.DateTime.UTC().Format(timeLayout), e.Venue, e.Capacity, e.OrganizerID, price,
	)
	if err != nil {
		return err
	}
	e.ID, err = res.LastInsertId()
	return err
}

func (r *sqlEventRepo) Update(e *Event) error {
	var price any
	if e.Price != nil {
		price = *e.Price
	}
	res, err := r.db.Exec(
		`UPDATE events SET title = ?, description = ?, date_time = ?, venue = ?, capacity = ?, organizer_id = ?, price = ?
		 WHERE id = ?`,
		e.Title, e.Description, e.DateTime.UTC().Format(timeLayout), e.Venue, e.Capacity, e.OrganizerID, price, e.ID,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *sqlEventRepo) Delete(id int64) error {
	res, err := r.db.Exec(`DELETE FROM events WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *sqlEventRepo) FindByID(id int64) (Event, error) {
	row := r.db.QueryRow(`SELECT `+eventColumns+` FROM events WHERE id = ?`, id)
	e, err := scanEvent(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Event{}, ErrNotFound
	}
	return e, err
}

func (r *sqlEventRepo) FindAll() ([]Event, error) {
	return r.queryEvents(`SELECT ` + eventColumns + ` FROM events ORDER BY datetime(date_time) DESC`)
}

func (r *sqlEventRepo) FindUpcoming() ([]Event, error) {
	return r.queryEvents(
		`SELECT ` + eventColumns + ` FROM events
		 WHERE datetime(date_time) > datetime('now')
		 ORDER BY datetime(date_time) ASC`)
}

func (r *sqlEventRepo) FindByOrganizer(organizerID int64) ([]Event, error) {
	return r.queryEvents(
		`SELECT `+eventColumns+` FROM events WHERE organizer_id = ? ORDER BY datetime(date_time) DESC`,
		organizerID)
}

func (r *sqlEventRepo) CountAll() (int, error) {
	var n int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM events`).Scan(&n)
	return n, err
}
