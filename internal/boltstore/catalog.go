package boltstore

import (
	"context"
	"strings"

	bolt "go.etcd.io/bbolt"

	"court-reservation-api/internal/model"
)

func (s *Store) CreateDepartment(ctx context.Context, d *model.Department) error {
	return s.update(ctx, "create department", func(tx *bolt.Tx) error {
		id, err := nextID(tx, bucketDepartments)
		if err != nil {
			return err
		}
		d.ID = id
		return put(tx, bucketDepartments, id, d)
	})
}

func (s *Store) CreateAccount(ctx context.Context, a *model.Account) error {
	return s.update(ctx, "create account", func(tx *bolt.Tx) error {
		err := each(tx, bucketAccounts, func(o *model.Account) error {
			if strings.EqualFold(o.Username, a.Username) {
				return &model.ValidationError{Field: "username", Reason: "already taken"}
			}
			return nil
		})
		if err != nil {
			return err
		}
		if a.DepartmentID != 0 {
			if _, err := get[model.Department](tx, bucketDepartments, a.DepartmentID, "department"); err != nil {
				return err
			}
		}
		if a.Status == "" {
			a.Status = model.AccountActive
		}
		id, err := nextID(tx, bucketAccounts)
		if err != nil {
			return err
		}
		a.ID = id
		return put(tx, bucketAccounts, id, a)
	})
}

func normalizeAccount(a *model.Account) {
	if st, err := model.ParseAccountStatus(string(a.Status)); err == nil {
		a.Status = st
	}
}

func (s *Store) AccountByID(ctx context.Context, id int64) (*model.Account, error) {
	var a *model.Account
	err := s.view(ctx, "load account", func(tx *bolt.Tx) error {
		var err error
		a, err = get[model.Account](tx, bucketAccounts, id, "account")
		return err
	})
	if err != nil {
		return nil, err
	}
	normalizeAccount(a)
	return a, nil
}

func (s *Store) AccountByUsername(ctx context.Context, username string) (*model.Account, error) {
	var found *model.Account
	err := s.view(ctx, "load account", func(tx *bolt.Tx) error {
		return each(tx, bucketAccounts, func(a *model.Account) error {
			if found == nil && a.Username == username {
				found = a
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, &model.NotFoundError{Entity: "account", ID: username}
	}
	normalizeAccount(found)
	return found, nil
}

func (s *Store) ListAccounts(ctx context.Context) ([]model.Account, error) {
	var out []model.Account
	err := s.view(ctx, "list accounts", func(tx *bolt.Tx) error {
		return each(tx, bucketAccounts, func(a *model.Account) error {
			normalizeAccount(a)
			out = append(out, *a)
			return nil
		})
	})
	return out, err
}

func (s *Store) SetAccountStatus(ctx context.Context, id int64, st model.AccountStatus) (bool, error) {
	changed := false
	err := s.update(ctx, "set account status", func(tx *bolt.Tx) error {
		a, err := get[model.Account](tx, bucketAccounts, id, "account")
		if err != nil {
			return err
		}
		normalizeAccount(a)
		if a.Status == st {
			return nil
		}
		a.Status = st
		changed = true
		return put(tx, bucketAccounts, id, a)
	})
	return changed, err
}

func (s *Store) CreateCourtType(ctx context.Context, ct *model.CourtType) error {
	return s.update(ctx, "create court type", func(tx *bolt.Tx) error {
		id, err := nextID(tx, bucketCourtTypes)
		if err != nil {
			return err
		}
		ct.ID = id
		return put(tx, bucketCourtTypes, id, ct)
	})
}

func (s *Store) ListCourtTypes(ctx context.Context) ([]model.CourtType, error) {
	var out []model.CourtType
	err := s.view(ctx, "list court types", func(tx *bolt.Tx) error {
		return each(tx, bucketCourtTypes, func(ct *model.CourtType) error {
			out = append(out, *ct)
			return nil
		})
	})
	return out, err
}

func (s *Store) CourtByID(ctx context.Context, id int64) (*model.Court, error) {
	var c *model.Court
	err := s.view(ctx, "load court", func(tx *bolt.Tx) error {
		var err error
		c, err = get[model.Court](tx, bucketCourts, id, "court")
		return err
	})
	return c, err
}

// ListCourts returns all courts, or those of one type when typeID > 0.
func (s *Store) ListCourts(ctx context.Context, typeID int64) ([]model.Court, error) {
	var out []model.Court
	err := s.view(ctx, "list courts", func(tx *bolt.Tx) error {
		return each(tx, bucketCourts, func(c *model.Court) error {
			if typeID == 0 || c.CourtTypeID == typeID {
				out = append(out, *c)
			}
			return nil
		})
	})
	return out, err
}

func (s *Store) CreateCourt(ctx context.Context, c *model.Court) error {
	return s.update(ctx, "create court", func(tx *bolt.Tx) error {
		if _, err := get[model.CourtType](tx, bucketCourtTypes, c.CourtTypeID, "court type"); err != nil {
			return err
		}
		id, err := nextID(tx, bucketCourts)
		if err != nil {
			return err
		}
		c.ID = id
		return put(tx, bucketCourts, id, c)
	})
}

func (s *Store) UpdateCourt(ctx context.Context, c *model.Court) error {
	return s.update(ctx, "update court", func(tx *bolt.Tx) error {
		if _, err := get[model.Court](tx, bucketCourts, c.ID, "court"); err != nil {
			return err
		}
		if _, err := get[model.CourtType](tx, bucketCourtTypes, c.CourtTypeID, "court type"); err != nil {
			return err
		}
		return put(tx, bucketCourts, c.ID, c)
	})
}

// DeleteCourt refuses while any reservation, in any status, references it.
func (s *Store) DeleteCourt(ctx context.Context, id int64) error {
	return s.update(ctx, "delete court", func(tx *bolt.Tx) error {
		if _, err := get[model.Court](tx, bucketCourts, id, "court"); err != nil {
			return err
		}
		err := each(tx, bucketReservations, func(r *model.Reservation) error {
			if r.CourtID == id {
				return model.ErrCourtInUse
			}
			return nil
		})
		if err != nil {
			return err
		}
		return tx.Bucket([]byte(bucketCourts)).Delete(itob(id))
	})
}
