package models

import (
	"database/sql"
	"errors"
	"strings"
)

type sqlRegistrationRepo struct{ db *sql.DB }

func NewSQLRegistrationRepository(db *sql.DB) RegistrationRepository {
	return &sqlRegistrationRepo{db}
}

var _ RegistrationRepository = (*sqlRegistrationRepo)(nil)

// isUniqueViolation matches the sqlite constraint error for the
// UNIQUE(event_id, user_id) backstop.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func (r *sqlRegistrationRepo) Insert(eventID, userID int64) (int64, error) {
	res, err := r.db.Exec(
		`INSERT INTO registrations (event_id, user_id, status) VALUES (?, ?, ?)`,
		eventID, userID, StatusRegistered,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, ErrDuplicateRegistration
		}
		return 0, err
	}
	return res.LastInsertId()
}

func (r *sqlRegistrationRepo) UpdateStatus(eventID, userID int64, status RegistrationStatus) (bool, error) {
	res, err := r.db.Exec(
		`UPDATE registrations SET status = ? WHERE event_id = ? AND user_id = ?`,
		status, eventID, userID,
	)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *sqlRegistrationRepo) Find(eventID, userID int64) (Registration, error) {
	var reg Registration
	err := r.db.QueryRow(
		`SELECT id, event_id, user_id, status FROM registrations WHERE event_id = ? AND user_id = ?`,
		eventID, userID,
	).Scan(&reg.ID, &reg.EventID, &reg.UserID, &reg.Status)
	if errors.Is(err, sql.ErrNoRows) {
		return Registration{}, ErrNotFound
	}
	return reg, err
}

func (r *sqlRegistrationRepo) CountRegistered(eventID int64) (int, error) {
	var n int
	err := r.db.QueryRow(
		`SELECT COUNT(*) FROM registrations WHERE event_id = ? AND status = ?`,
		eventID, StatusRegistered,
	).Scan(&n)
	return n, err
}

func (r *sqlRegistrationRepo) IsRegistered(eventID, userID int64) (bool, error) {
	var one int
	err := r.db.QueryRow(
		`SELECT 1 FROM registrations WHERE event_id = ? AND user_id = ? AND status = ?`,
		eventID, userID, StatusRegistered,
	).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	return err == nil, err
}

func (r *sqlRegistrationRepo) FindEventsByUser(userID int64) ([]Event, error) {
	rows, err := r.db.Query(
		`SELECT e.id, e.title, e.description, e.date_time, e.venue, e.capacity, e.organizer_id, e.price
		 FROM registrations r
		 JOIN events e ON r.event_id = e.id
		 WHERE r.user_id = ? AND r.status = ?
		 ORDER BY datetime(e.date_time) ASC`,
		userID, StatusRegistered,
	)
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

func (r *sqlRegistrationRepo) ListByEvent(eventID int64) ([]Registration, error) {
	rows, err := r.db.Query(
		`SELECT id, event_id, user_id, status FROM registrations WHERE event_id = ?`,
		eventID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var regs []Registration
	for rows.Next() {
		var reg Registration
		if err := rows.Scan(&reg.ID, &reg.EventID, &reg.UserID, &reg.Status); err != nil {
			return nil, err
		}
		regs = append(regs, reg)
	}
	return regs, rows.Err()
}

func (r *sqlRegistrationRepo) CountAll() (int, error) {
	var n int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM registrations`).Scan(&n)
	return n, err
}
