package models

import (
	"database/sql"
	"errors"
)

type sqlUserRepo struct{ db *sql.DB }

func NewSQLUserRepository(db *sql.DB) UserRepository { return &sqlUserRepo{db} }

var _ UserRepository = (*sqlUserRepo)(nil)

const userColumns = `id, username, password_hash, role_name, email_notifications`

func scanUser(scanner interface{ Scan(...any) error }) (User, error) {
	var (
		u             User
		notifications int
	)
	err := scanner.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &notifications)
	if err != nil {
		return User{}, err
	}
	u.EmailNotifications = notifications != 0
	return u, nil
}

func (r *sqlUserRepo) Create(u *User) error {
	res, err := r.db.Exec(
		`INSERT INTO users (username, password_hash, role_name) VALUES (?, ?, ?)`,
		u.Username, u.PasswordHash, u.Role,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateUser
		}
		return err
	}
	u.ID, err = res.LastInsertId()
	return err
}

func (r *sqlUserRepo) FindByUsername(username string) (User, error) {
	row := r.db.QueryRow(`SELECT `+userColumns+` FROM users WHERE username = ?`, username)
	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrNotFound
	}
	return u, err
}

func (r *sqlUserRepo) FindByID(id int64) (User, error) {
	row := r.db.QueryRow(`SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrNotFound
	}
	return u, err
}

func (r *sqlUserRepo) ListAll() ([]User, error) {
	rows, err := r.db.Query(`SELECT ` + userColumns + ` FROM users`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *sqlUserRepo) CountAll() (int, error) {
	var n int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&n)
	return n, err
}

func (r *sqlUserRepo) DeleteByID(id int64) error {
	res, err := r.db.Exec(`DELETE FROM users WHERE id = ?`, id)
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

func (r *sqlUserRepo) UpdateUsername(id int64, username string) error {
	return r.updateOne(`UPDATE users SET username = ? WHERE id = ?`, username, id)
}

func (r *sqlUserRepo) UpdatePassword(id int64, hash string) error {
	return r.updateOne(`UPDATE users SET password_hash = ? WHERE id = ?`, hash, id)
}

func (r *sqlUserRepo) EmailNotifications(id int64) (bool, error) {
	var enabled int
	err := r.db.QueryRow(`SELECT email_notifications FROM users WHERE id = ?`, id).Scan(&enabled)
	if errors.Is(err, sql.ErrNoRows) {
		return false, ErrNotFound
	}
	return enabled != 0, err
}

func (r *sqlUserRepo) SetEmailNotifications(id int64, enabled bool) error {
	v := 0
	if enabled {
		v = 1
	}
	return r.updateOne(`UPDATE users SET email_notifications = ? WHERE id = ?`, v, id)
}

func (r *sqlUserRepo) updateOne(query string, args ...any) error {
	res, err := r.db.Exec(query, args...)
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
