package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"court-reservation-api/internal/model"
)

const reservationCols = `r.reservation_id, r.account_id, r.court_id, r.reservation_date,
	r.start_datetime, r.end_datetime, r.status, r.remark, r.created_at, r.updated_at`

func scanReservation(row pgx.Row, extra ...any) (*model.Reservation, error) {
	r := &model.Reservation{}
	var status string
	dest := append([]any{&r.ID, &r.AccountID, &r.CourtID, &r.Date,
		&r.Start, &r.End, &status, &r.Remark, &r.CreatedAt, &r.UpdatedAt}, extra...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	st, err := model.ParseStatus(status)
	if err != nil {
		return nil, fmt.Errorf("reservation %d: %v", r.ID, err)
	}
	r.Status = st
	r.Date = model.DateOf(r.Date)
	return r, nil
}

func (s *Store) ActiveReservations(ctx context.Context, courtID int64, date time.Time) ([]model.Reservation, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+reservationCols+`
		 FROM reservation r
		 WHERE r.court_id = $1
		   AND r.reservation_date = $2::date
		   AND r.status <> 'Cancelled'
		 ORDER BY r.start_datetime`,
		courtID, date.Format(time.DateOnly),
	)
	if err != nil {
		return nil, fail("load reservations", "reservation", nil, err)
	}
	defer rows.Close()

	var out []model.Reservation
	for rows.Next() {
		r, err := scanReservation(rows)
		if err != nil {
			return nil, &model.PersistenceError{Op: "load reservations", Err: err}
		}
		out = append(out, *r)
	}
	if err := rows.Err(); err != nil {
		return nil, fail("load reservations", "reservation", nil, err)
	}
	return out, nil
}

// InsertReservation relies on the reservation_no_overlap exclusion
// constraint; a 23P01 comes back as model.ErrConflict.
func (s *Store) InsertReservation(ctx context.Context, r *model.Reservation) error {
	err := s.pool.QueryRow(ctx,
		`INSERT INTO reservation (account_id, court_id, reservation_date, start_datetime, end_datetime,
		                          status, remark, created_at, updated_at)
		 VALUES ($1,$2,$3::date,$4,$5,$6,$7,$8,$9)
		 RETURNING reservation_id`,
		r.AccountID, r.CourtID, r.Date.Format(time.DateOnly), r.Start, r.End,
		string(r.Status), r.Remark, r.CreatedAt, r.UpdatedAt,
	).Scan(&r.ID)
	if err != nil {
		if code, pgErr := pgCode(err); code == codeForeignKey {
			if strings.Contains(pgErr.ConstraintName, "account") {
				return &model.NotFoundError{Entity: "account", ID: r.AccountID}
			}
			return &model.NotFoundError{Entity: "court", ID: r.CourtID}
		}
		return fail("insert reservation", "reservation", nil, err)
	}
	return nil
}

func (s *Store) ReservationByID(ctx context.Context, id int64) (*model.Reservation, error) {
	r, err := scanReservation(s.pool.QueryRow(ctx,
		`SELECT `+reservationCols+` FROM reservation r WHERE r.reservation_id = $1`, id))
	if err != nil {
		return nil, fail("load reservation", "reservation", id, err)
	}
	return r, nil
}

// UpdateReservationStatus is a compare-and-set on the current status.
func (s *Store) UpdateReservationStatus(ctx context.Context, id int64, from, to model.Status, at time.Time) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE reservation SET status = $1, updated_at = $2
		 WHERE reservation_id = $3 AND status = $4`,
		string(to), at, id, string(from),
	)
	if err != nil {
		return fail("update reservation status", "reservation", id, err)
	}
	if tag.RowsAffected() == 1 {
		return nil
	}

	var exists bool
	if err := s.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM reservation WHERE reservation_id = $1)`, id,
	).Scan(&exists); err != nil {
		return fail("update reservation status", "reservation", id, err)
	}
	if !exists {
		return &model.NotFoundError{Entity: "reservation", ID: id}
	}
	return model.ErrStale
}

func (s *Store) ListReservations(ctx context.Context, q model.ReservationQuery) ([]model.ReservationDetail, error) {
	query := `SELECT ` + reservationCols + `,
		COALESCE(a.username, ''), COALESCE(a.fn, ''), COALESCE(a.ln, ''),
		COALESCE(c.description, ''), COALESCE(ct.description, ''), COALESCE(d.name, '')
	 FROM reservation r
	 LEFT JOIN account a ON a.account_id = r.account_id
	 LEFT JOIN court c ON c.court_id = r.court_id
	 LEFT JOIN court_type ct ON ct.court_type_id = c.court_type_id
	 LEFT JOIN department d ON d.department_id = a.department_id
	 WHERE TRUE`

	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	switch q.Scope {
	case model.ScopeAccount:
		query += ` AND r.account_id = ` + arg(q.AccountID)
	case model.ScopeDate:
		query += ` AND r.reservation_date = ` + arg(q.Date.Format(time.DateOnly)) + `::date AND r.status <> 'Cancelled'`
	}
	if q.Status != "" {
		query += ` AND r.status = ` + arg(string(q.Status))
	}

	switch q.Scope {
	case model.ScopeAccount:
		query += ` ORDER BY r.reservation_date DESC, r.start_datetime ASC`
	case model.ScopeDate:
		query += ` ORDER BY r.court_id, r.start_datetime`
	default:
		query += ` ORDER BY r.created_at DESC, r.reservation_id DESC`
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fail("list reservations", "reservation", nil, err)
	}
	defer rows.Close()

	var out []model.ReservationDetail
	for rows.Next() {
		var d model.ReservationDetail
		var fn, ln string
		r, err := scanReservation(rows, &d.Username, &fn, &ln, &d.CourtName, &d.CourtType, &d.Department)
		if err != nil {
			return nil, &model.PersistenceError{Op: "list reservations", Err: err}
		}
		d.Reservation = *r
		d.UserFullName = strings.TrimSpace(fn + " " + ln)
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fail("list reservations", "reservation", nil, err)
	}
	return out, nil
}
