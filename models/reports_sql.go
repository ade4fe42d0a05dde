package models

import "database/sql"

type sqlReportRepo struct{ db *sql.DB }

func NewSQLReportRepository(db *sql.DB) ReportRepository { return &sqlReportRepo{db} }

var _ ReportRepository = (*sqlReportRepo)(nil)

func (r *sqlReportRepo) Add(eventID, attendeeID int64) error {
	_, err := r.db.Exec(
		`INSERT INTO reports (event_id, attendee_id) VALUES (?, ?)`,
		eventID, attendeeID,
	)
	if isUniqueViolation(err) {
		return ErrDuplicateReport
	}
	return err
}

func (r *sqlReportRepo) HasReported(eventID, attendeeID int64) (bool, error) {
	var n int
	err := r.db.QueryRow(
		`SELECT COUNT(*) FROM reports WHERE event_id = ? AND attendee_id = ?`,
		eventID, attendeeID,
	).Scan(&n)
	return n > 0, err
}

func (r *sqlReportRepo) CountsByEvent() ([]ReportCount, error) {
	rows, err := r.db.Query(
		`SELECT event_id, COUNT(*) AS report_count
		 FROM reports
		 GROUP BY event_id
		 ORDER BY report_count DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []ReportCount
	for rows.Next() {
		var rc ReportCount
		if err := rows.Scan(&rc.EventID, &rc.Count); err != nil {
			return nil, err
		}
		counts = append(counts, rc)
	}
	return counts, rows.Err()
}
