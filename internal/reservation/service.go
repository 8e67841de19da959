package reservation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"court-reservation-api/internal/model"
)

type Repository interface {
	CourtFinder
	ActiveFinder
	// InsertReservation assigns r.ID. It must return an error matching
	// model.ErrConflict when a persistence-level overlap rule rejects r.
	InsertReservation(ctx context.Context, r *model.Reservation) error
	ReservationByID(ctx context.Context, id int64) (*model.Reservation, error)
	// UpdateReservationStatus sets status to `to` only while it is still
	// `from`; otherwise it returns model.ErrStale.
	UpdateReservationStatus(ctx context.Context, id int64, from, to model.Status, at time.Time) error
	ListReservations(ctx context.Context, q model.ReservationQuery) ([]model.ReservationDetail, error)
}

// Locker serializes creates for one (court, date) key.
type Locker interface {
	Lock(ctx context.Context, key string) (unlock func(), err error)
}

type CreateRequest struct {
	AccountID int64
	CourtID   int64
	Date      time.Time
	Start     time.Time
	End       time.Time
	Remark    string
}

type Service struct {
	repo    Repository
	checker *Checker
	locks   Locker
	policy  Policy
	timeout time.Duration
	now     func() time.Time
	log     *zap.Logger
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithTimeout bounds every persistence round trip of an operation.
func WithTimeout(d time.Duration) Option {
	return func(s *Service) { s.timeout = d }
}

func NewService(repo Repository, locks Locker, policy Policy, log *zap.Logger, opts ...Option) *Service {
	s := &Service{
		repo:   repo,
		locks:  locks,
		policy: policy,
		now:    time.Now,
		log:    log,
	}
	for _, o := range opts {
		o(s)
	}
	s.checker = NewChecker(repo, repo, policy.loc())
	return s
}

func (s *Service) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *Service) CheckAvailability(ctx context.Context, courtID int64, date, start, end time.Time) (bool, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()
	return s.checker.IsAvailable(ctx, courtID, date, start, end)
}

// Create books a slot in Pending state. The availability check and the
// insert run under the (court, date) lock so two callers cannot both pass
// the check; stores with their own exclusion rule are a second line.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*model.Reservation, error) {
	now := s.now()
	if req.AccountID <= 0 {
		return nil, invalid("account", "required")
	}
	if req.CourtID <= 0 {
		return nil, invalid("court", "required")
	}
	if err := s.policy.Validate(now, req); err != nil {
		return nil, err
	}

	ctx, cancel := s.bound(ctx)
	defer cancel()

	date := model.DateOf(req.Date)
	key := fmt.Sprintf("court:%d:%s", req.CourtID, date.Format(time.DateOnly))
	unlock, err := s.locks.Lock(ctx, key)
	if err != nil {
		return nil, &model.PersistenceError{Op: "acquire booking lock", Err: err}
	}
	defer unlock()

	conflict := &model.ConflictError{CourtID: req.CourtID, Date: date, Start: req.Start, End: req.End}

	existing, err := s.checker.conflicts(ctx, req.CourtID, date, req.Start, req.End)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		s.log.Debug("slot taken",
			zap.Int64("court_id", req.CourtID),
			zap.Time("start", req.Start),
			zap.Int64("blocking_id", existing[0].ID))
		return nil, conflict
	}

	r := &model.Reservation{
		AccountID: req.AccountID,
		CourtID:   req.CourtID,
		Date:      date,
		Start:     req.Start,
		End:       req.End,
		Status:    model.StatusPending,
		Remark:    strings.TrimSpace(req.Remark),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.InsertReservation(ctx, r); err != nil {
		if errors.Is(err, model.ErrConflict) {
			// overlap rule in the store caught a race
			s.log.Warn("insert rejected by overlap constraint", zap.Int64("court_id", req.CourtID))
			return nil, conflict
		}
		return nil, storeErr("insert reservation", err)
	}

	s.log.Info("reservation created",
		zap.Int64("id", r.ID),
		zap.Int64("account_id", r.AccountID),
		zap.Int64("court_id", r.CourtID),
		zap.Time("start", r.Start),
		zap.Time("end", r.End))
	return r, nil
}

// ChangeStatus moves a reservation to status (any casing). It reports
// false with an error matching model.ErrNoChange when nothing would change.
func (s *Service) ChangeStatus(ctx context.Context, id int64, status string) (bool, error) {
	to, err := model.ParseStatus(status)
	if err != nil {
		return false, err
	}

	ctx, cancel := s.bound(ctx)
	defer cancel()

	cur, err := s.repo.ReservationByID(ctx, id)
	if err != nil {
		return false, storeErr("load reservation", err)
	}
	if cur.Status == to || !cur.Status.CanTransitionTo(to) {
		return false, &model.StateTransitionError{From: cur.Status, To: to}
	}

	if err := s.repo.UpdateReservationStatus(ctx, id, cur.Status, to, s.now()); err != nil {
		if !errors.Is(err, model.ErrStale) {
			return false, storeErr("update status", err)
		}
		latest, lerr := s.repo.ReservationByID(ctx, id)
		if lerr != nil {
			return false, storeErr("reload reservation", lerr)
		}
		return false, &model.StateTransitionError{From: latest.Status, To: to}
	}

	s.log.Info("reservation status changed",
		zap.Int64("id", id),
		zap.String("from", string(cur.Status)),
		zap.String("to", string(to)))
	return true, nil
}

// Cancel is ChangeStatus(id, Cancelled) where an already cancelled
// reservation is a plain no-op.
func (s *Service) Cancel(ctx context.Context, id int64) (bool, error) {
	changed, err := s.ChangeStatus(ctx, id, string(model.StatusCancelled))
	if errors.Is(err, model.ErrNoChange) {
		return false, nil
	}
	return changed, err
}

func (s *Service) Get(ctx context.Context, id int64) (*model.Reservation, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()
	r, err := s.repo.ReservationByID(ctx, id)
	if err != nil {
		return nil, storeErr("load reservation", err)
	}
	return r, nil
}

func (s *Service) List(ctx context.Context, q model.ReservationQuery) ([]model.ReservationDetail, error) {
	switch q.Scope {
	case model.ScopeAccount:
		if q.AccountID <= 0 {
			return nil, invalid("account", "required")
		}
	case model.ScopeDate:
		if q.Date.IsZero() {
			return nil, invalid("date", "required")
		}
		q.Date = model.DateOf(q.Date)
	}

	ctx, cancel := s.bound(ctx)
	defer cancel()
	out, err := s.repo.ListReservations(ctx, q)
	if err != nil {
		return nil, storeErr("list reservations", err)
	}
	return out, nil
}

// CompleteElapsed marks approved reservations that have ended as Completed
// and returns how many it moved.
func (s *Service) CompleteElapsed(ctx context.Context) (int, error) {
	approved, err := s.List(ctx, model.ReservationQuery{Scope: model.ScopeAll, Status: model.StatusApproved})
	if err != nil {
		return 0, err
	}
	now := s.now()
	n := 0
	for _, r := range approved {
		if r.End.After(now) {
			continue
		}
		ok, err := s.ChangeStatus(ctx, r.ID, string(model.StatusCompleted))
		if errors.Is(err, model.ErrStateTransition) {
			continue // changed underneath us
		}
		if err != nil {
			return n, err
		}
		if ok {
			n++
		}
	}
	return n, nil
}
