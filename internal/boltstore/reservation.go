package boltstore

import (
	"context"
	"fmt"
	"sort"
	"time"

	bolt "go.etcd.io/bbolt"

	"court-reservation-api/internal/model"
)

// decodeStatus canonicalizes a stored status. A value outside the closed
// set is treated as corrupt data, not caller error.
func decodeStatus(r *model.Reservation) error {
	st, err := model.ParseStatus(string(r.Status))
	if err != nil {
		return fmt.Errorf("reservation %d has unreadable status %q", r.ID, r.Status)
	}
	r.Status = st
	return nil
}

func getReservation(tx *bolt.Tx, id int64) (*model.Reservation, error) {
	r, err := get[model.Reservation](tx, bucketReservations, id, "reservation")
	if err != nil {
		return nil, err
	}
	if err := decodeStatus(r); err != nil {
		return nil, err
	}
	return r, nil
}

func eachReservation(tx *bolt.Tx, fn func(r *model.Reservation) error) error {
	return each(tx, bucketReservations, func(r *model.Reservation) error {
		if err := decodeStatus(r); err != nil {
			return err
		}
		return fn(r)
	})
}

func (s *Store) ActiveReservations(ctx context.Context, courtID int64, date time.Time) ([]model.Reservation, error) {
	var out []model.Reservation
	err := s.view(ctx, "load reservations", func(tx *bolt.Tx) error {
		return eachReservation(tx, func(r *model.Reservation) error {
			if r.CourtID == courtID && model.SameDate(r.Date, date) && r.Active() {
				out = append(out, *r)
			}
			return nil
		})
	})
	return out, err
}

// InsertReservation enforces the no-overlap rule inside the write txn,
// mirroring the exclusion constraint of the postgres schema.
func (s *Store) InsertReservation(ctx context.Context, r *model.Reservation) error {
	return s.update(ctx, "insert reservation", func(tx *bolt.Tx) error {
		if _, err := get[model.Account](tx, bucketAccounts, r.AccountID, "account"); err != nil {
			return err
		}
		if _, err := get[model.Court](tx, bucketCourts, r.CourtID, "court"); err != nil {
			return err
		}
		err := eachReservation(tx, func(o *model.Reservation) error {
			if o.CourtID == r.CourtID && o.Active() && model.SameDate(o.Date, r.Date) &&
				o.Start.Before(r.End) && r.Start.Before(o.End) {
				return &model.ConflictError{CourtID: r.CourtID, Date: r.Date, Start: r.Start, End: r.End}
			}
			return nil
		})
		if err != nil {
			return err
		}
		id, err := nextID(tx, bucketReservations)
		if err != nil {
			return err
		}
		r.ID = id
		return put(tx, bucketReservations, id, r)
	})
}

func (s *Store) ReservationByID(ctx context.Context, id int64) (*model.Reservation, error) {
	var r *model.Reservation
	err := s.view(ctx, "load reservation", func(tx *bolt.Tx) error {
		var err error
		r, err = getReservation(tx, id)
		return err
	})
	return r, err
}

func (s *Store) UpdateReservationStatus(ctx context.Context, id int64, from, to model.Status, at time.Time) error {
	return s.update(ctx, "update reservation status", func(tx *bolt.Tx) error {
		r, err := getReservation(tx, id)
		if err != nil {
			return err
		}
		if r.Status != from {
			return model.ErrStale
		}
		r.Status = to
		r.UpdatedAt = at
		return put(tx, bucketReservations, id, r)
	})
}

func (s *Store) ListReservations(ctx context.Context, q model.ReservationQuery) ([]model.ReservationDetail, error) {
	var out []model.ReservationDetail
	err := s.view(ctx, "list reservations", func(tx *bolt.Tx) error {
		return eachReservation(tx, func(r *model.Reservation) error {
			switch q.Scope {
			case model.ScopeAccount:
				if r.AccountID != q.AccountID {
					return nil
				}
			case model.ScopeDate:
				if !model.SameDate(r.Date, q.Date) || !r.Active() {
					return nil
				}
			}
			if q.Status != "" && r.Status != q.Status {
				return nil
			}
			out = append(out, detail(tx, *r))
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		switch q.Scope {
		case model.ScopeAccount:
			if !a.Date.Equal(b.Date) {
				return a.Date.After(b.Date)
			}
			return a.Start.Before(b.Start)
		case model.ScopeDate:
			if a.CourtID != b.CourtID {
				return a.CourtID < b.CourtID
			}
			return a.Start.Before(b.Start)
		default:
			if !a.CreatedAt.Equal(b.CreatedAt) {
				return a.CreatedAt.After(b.CreatedAt)
			}
			return a.ID > b.ID
		}
	})
	return out, nil
}

// detail joins display fields; dangling references leave them empty.
func detail(tx *bolt.Tx, r model.Reservation) model.ReservationDetail {
	d := model.ReservationDetail{Reservation: r}
	if a, err := get[model.Account](tx, bucketAccounts, r.AccountID, "account"); err == nil {
		d.Username = a.Username
		d.UserFullName = a.FullName()
		if dep, err := get[model.Department](tx, bucketDepartments, a.DepartmentID, "department"); err == nil {
			d.Department = dep.Name
		}
	}
	if c, err := get[model.Court](tx, bucketCourts, r.CourtID, "court"); err == nil {
		d.CourtName = c.Description
		if ct, err := get[model.CourtType](tx, bucketCourtTypes, c.CourtTypeID, "court type"); err == nil {
			d.CourtType = ct.Description
		}
	}
	return d
}
