package store

import (
	"context"

	"court-reservation-api/internal/model"
)

func (s *Store) CreateCourtType(ctx context.Context, ct *model.CourtType) error {
	err := s.pool.QueryRow(ctx,
		`INSERT INTO court_type (description) VALUES ($1) RETURNING court_type_id`, ct.Description,
	).Scan(&ct.ID)
	if err != nil {
		return fail("create court type", "court type", ct.Description, err)
	}
	return nil
}

func (s *Store) ListCourtTypes(ctx context.Context) ([]model.CourtType, error) {
	rows, err := s.pool.Query(ctx, `SELECT court_type_id, description FROM court_type ORDER BY court_type_id`)
	if err != nil {
		return nil, fail("list court types", "court type", nil, err)
	}
	defer rows.Close()

	var out []model.CourtType
	for rows.Next() {
		var ct model.CourtType
		if err := rows.Scan(&ct.ID, &ct.Description); err != nil {
			return nil, fail("list court types", "court type", nil, err)
		}
		out = append(out, ct)
	}
	if err := rows.Err(); err != nil {
		return nil, fail("list court types", "court type", nil, err)
	}
	return out, nil
}

func (s *Store) CourtByID(ctx context.Context, id int64) (*model.Court, error) {
	c := &model.Court{}
	err := s.pool.QueryRow(ctx,
		`SELECT court_id, court_type_id, description FROM court WHERE court_id = $1`, id,
	).Scan(&c.ID, &c.CourtTypeID, &c.Description)
	if err != nil {
		return nil, fail("load court", "court", id, err)
	}
	return c, nil
}

func (s *Store) ListCourts(ctx context.Context, typeID int64) ([]model.Court, error) {
	q := `SELECT court_id, court_type_id, description FROM court`
	var args []any
	if typeID > 0 {
		q += ` WHERE court_type_id = $1`
		args = append(args, typeID)
	}
	q += ` ORDER BY court_id`

	rows, err := s.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, fail("list courts", "court", nil, err)
	}
	defer rows.Close()

	var out []model.Court
	for rows.Next() {
		var c model.Court
		if err := rows.Scan(&c.ID, &c.CourtTypeID, &c.Description); err != nil {
			return nil, fail("list courts", "court", nil, err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fail("list courts", "court", nil, err)
	}
	return out, nil
}

func (s *Store) CreateCourt(ctx context.Context, c *model.Court) error {
	err := s.pool.QueryRow(ctx,
		`INSERT INTO court (court_type_id, description) VALUES ($1,$2) RETURNING court_id`,
		c.CourtTypeID, c.Description,
	).Scan(&c.ID)
	if err != nil {
		if code, _ := pgCode(err); code == codeForeignKey {
			return &model.NotFoundError{Entity: "court type", ID: c.CourtTypeID}
		}
		return fail("create court", "court", c.Description, err)
	}
	return nil
}

func (s *Store) UpdateCourt(ctx context.Context, c *model.Court) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE court SET court_type_id = $1, description = $2 WHERE court_id = $3`,
		c.CourtTypeID, c.Description, c.ID,
	)
	if err != nil {
		if code, _ := pgCode(err); code == codeForeignKey {
			return &model.NotFoundError{Entity: "court type", ID: c.CourtTypeID}
		}
		return fail("update court", "court", c.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return &model.NotFoundError{Entity: "court", ID: c.ID}
	}
	return nil
}

// DeleteCourt refuses while reservations reference the court. The FK is
// ON DELETE RESTRICT as well, so a concurrent insert still cannot orphan.
func (s *Store) DeleteCourt(ctx context.Context, id int64) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fail("delete court", "court", id, err)
	}
	defer tx.Rollback(ctx)

	var refs int
	if err := tx.QueryRow(ctx,
		`SELECT COUNT(*) FROM reservation WHERE court_id = $1`, id,
	).Scan(&refs); err != nil {
		return fail("delete court", "court", id, err)
	}
	if refs > 0 {
		return model.ErrCourtInUse
	}

	tag, err := tx.Exec(ctx, `DELETE FROM court WHERE court_id = $1`, id)
	if err != nil {
		if code, _ := pgCode(err); code == codeForeignKey {
			return model.ErrCourtInUse
		}
		return fail("delete court", "court", id, err)
	}
	if tag.RowsAffected() == 0 {
		return &model.NotFoundError{Entity: "court", ID: id}
	}
	if err := tx.Commit(ctx); err != nil {
		return fail("delete court", "court", id, err)
	}
	return nil
}
