package reservation

import (
	"context"
	"errors"
	"time"

	"court-reservation-api/internal/model"
)

type CourtFinder interface {
	CourtByID(ctx context.Context, id int64) (*model.Court, error)
}

type ActiveFinder interface {
	// ActiveReservations returns every reservation on court and date whose
	// status is not Cancelled.
	ActiveReservations(ctx context.Context, courtID int64, date time.Time) ([]model.Reservation, error)
}

// Overlaps reports whether [s1,e1) and [s2,e2) share any instant.
// Touching endpoints do not overlap.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && s2.Before(e1)
}

type Checker struct {
	courts CourtFinder
	res    ActiveFinder
	loc    *time.Location
}

func NewChecker(courts CourtFinder, res ActiveFinder, loc *time.Location) *Checker {
	if loc == nil {
		loc = time.Local
	}
	return &Checker{courts: courts, res: res, loc: loc}
}

// IsAvailable is true iff no active reservation on the court and date
// overlaps [start, end). An error means availability is unknown.
func (c *Checker) IsAvailable(ctx context.Context, courtID int64, date, start, end time.Time) (bool, error) {
	if err := checkInterval(date, start, end, c.loc); err != nil {
		return false, err
	}
	conflicts, err := c.conflicts(ctx, courtID, model.DateOf(date), start, end)
	if err != nil {
		return false, err
	}
	return len(conflicts) == 0, nil
}

func (c *Checker) conflicts(ctx context.Context, courtID int64, date, start, end time.Time) ([]model.Reservation, error) {
	if _, err := c.courts.CourtByID(ctx, courtID); err != nil {
		return nil, storeErr("resolve court", err)
	}
	active, err := c.res.ActiveReservations(ctx, courtID, date)
	if err != nil {
		return nil, storeErr("load reservations", err)
	}

	var out []model.Reservation
	for _, r := range active {
		if r.Active() && Overlaps(r.Start, r.End, start, end) {
			out = append(out, r)
		}
	}
	return out, nil
}

// storeErr keeps taxonomy errors as they are and turns anything else
// (driver errors, deadlines) into a PersistenceError.
func storeErr(op string, err error) error {
	var pe *model.PersistenceError
	switch {
	case errors.As(err, &pe),
		errors.Is(err, model.ErrNotFound),
		errors.Is(err, model.ErrConflict),
		errors.Is(err, model.ErrValidation):
		return err
	}
	return &model.PersistenceError{Op: op, Err: err}
}
