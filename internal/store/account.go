package store

import (
	"context"

	"github.com/jackc/pgx/v5"

	"court-reservation-api/internal/model"
)

const accountCols = `account_id, type_id, COALESCE(department_id, 0), fn, ln, email, phone, username, password, status`

func scanAccount(row pgx.Row) (*model.Account, error) {
	a := &model.Account{}
	var status string
	if err := row.Scan(&a.ID, &a.TypeCode, &a.DepartmentID, &a.FirstName, &a.LastName,
		&a.Email, &a.Phone, &a.Username, &a.PasswordHash, &status); err != nil {
		return nil, err
	}
	// legacy rows may carry any casing
	if st, err := model.ParseAccountStatus(status); err == nil {
		a.Status = st
	} else {
		a.Status = model.AccountStatus(status)
	}
	return a, nil
}

func (s *Store) CreateDepartment(ctx context.Context, d *model.Department) error {
	err := s.pool.QueryRow(ctx,
		`INSERT INTO department (name) VALUES ($1) RETURNING department_id`, d.Name,
	).Scan(&d.ID)
	if err != nil {
		return fail("create department", "department", d.Name, err)
	}
	return nil
}

func (s *Store) CreateAccount(ctx context.Context, a *model.Account) error {
	if a.Status == "" {
		a.Status = model.AccountActive
	}
	var dept any
	if a.DepartmentID != 0 {
		dept = a.DepartmentID
	}
	err := s.pool.QueryRow(ctx,
		`INSERT INTO account (type_id, department_id, fn, ln, email, phone, username, password, status)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9) RETURNING account_id`,
		a.TypeCode, dept, a.FirstName, a.LastName, a.Email, a.Phone, a.Username, a.PasswordHash, string(a.Status),
	).Scan(&a.ID)
	if err != nil {
		switch code, _ := pgCode(err); code {
		case codeUnique:
			return &model.ValidationError{Field: "username", Reason: "already taken"}
		case codeForeignKey:
			return &model.NotFoundError{Entity: "department", ID: a.DepartmentID}
		}
		return fail("create account", "account", a.Username, err)
	}
	return nil
}

func (s *Store) AccountByID(ctx context.Context, id int64) (*model.Account, error) {
	a, err := scanAccount(s.pool.QueryRow(ctx,
		`SELECT `+accountCols+` FROM account WHERE account_id = $1`, id))
	if err != nil {
		return nil, fail("load account", "account", id, err)
	}
	return a, nil
}

func (s *Store) AccountByUsername(ctx context.Context, username string) (*model.Account, error) {
	a, err := scanAccount(s.pool.QueryRow(ctx,
		`SELECT `+accountCols+` FROM account WHERE username = $1`, username))
	if err != nil {
		return nil, fail("load account", "account", username, err)
	}
	return a, nil
}

func (s *Store) ListAccounts(ctx context.Context) ([]model.Account, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+accountCols+` FROM account ORDER BY account_id`)
	if err != nil {
		return nil, fail("list accounts", "account", nil, err)
	}
	defer rows.Close()

	var out []model.Account
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, fail("list accounts", "account", nil, err)
		}
		out = append(out, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fail("list accounts", "account", nil, err)
	}
	return out, nil
}

// SetAccountStatus reports whether the stored status actually changed.
func (s *Store) SetAccountStatus(ctx context.Context, id int64, st model.AccountStatus) (bool, error) {
	tag, err := s.pool.Exec(ctx,
		`UPDATE account SET status = $1 WHERE account_id = $2 AND status IS DISTINCT FROM $1`,
		string(st), id,
	)
	if err != nil {
		return false, fail("set account status", "account", id, err)
	}
	if tag.RowsAffected() > 0 {
		return true, nil
	}
	// no row touched: unchanged or missing
	if _, err := s.AccountByID(ctx, id); err != nil {
		return false, err
	}
	return false, nil
}
