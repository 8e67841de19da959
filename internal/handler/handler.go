package handler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "court-reservation-api/api/reservation/v1"
	"court-reservation-api/internal/auth"
	"court-reservation-api/internal/middleware"
	"court-reservation-api/internal/model"
	"court-reservation-api/internal/reservation"
)

// Catalog is the court and account administration surface of a store.
type Catalog interface {
	CreateDepartment(ctx context.Context, d *model.Department) error
	CreateCourtType(ctx context.Context, ct *model.CourtType) error
	ListCourtTypes(ctx context.Context) ([]model.CourtType, error)
	ListCourts(ctx context.Context, typeID int64) ([]model.Court, error)
	CreateCourt(ctx context.Context, c *model.Court) error
	UpdateCourt(ctx context.Context, c *model.Court) error
	DeleteCourt(ctx context.Context, id int64) error
	CreateAccount(ctx context.Context, a *model.Account) error
	AccountByID(ctx context.Context, id int64) (*model.Account, error)
	ListAccounts(ctx context.Context) ([]model.Account, error)
	SetAccountStatus(ctx context.Context, id int64, st model.AccountStatus) (bool, error)
}

type Handler struct {
	pb.UnimplementedReservationServiceServer
	svc      *reservation.Service
	auth     *auth.Authenticator
	catalog  Catalog
	validate *validator.Validate
	log      *zap.Logger
	timeout  time.Duration
}

type Option func(*Handler)

// WithStoreTimeout bounds catalog and account calls that do not go
// through the reservation service.
func WithStoreTimeout(d time.Duration) Option {
	return func(h *Handler) { h.timeout = d }
}

func New(svc *reservation.Service, a *auth.Authenticator, catalog Catalog, log *zap.Logger, opts ...Option) *Handler {
	h := &Handler{
		svc:      svc,
		auth:     a,
		catalog:  catalog,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		log:      log,
	}
	for _, o := range opts {
		o(h)
	}
	return h
}

func (h *Handler) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, h.timeout)
}

func (h *Handler) check(req any) error {
	err := h.validate.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return status.Error(codes.InvalidArgument, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
	}
	return status.Error(codes.InvalidArgument, err.Error())
}

// caller is only ever called behind the auth interceptor.
func caller(ctx context.Context) (int64, model.Role, error) {
	id, role, ok := middleware.Caller(ctx)
	if !ok {
		return 0, model.RoleUnknown, status.Error(codes.Unauthenticated, "not signed in")
	}
	return id, role, nil
}

func parseDate(s string) (time.Time, error) {
	d, err := time.ParseInLocation(time.DateOnly, s, time.UTC)
	if err != nil {
		return time.Time{}, status.Error(codes.InvalidArgument, "date must be YYYY-MM-DD")
	}
	return d, nil
}

// toStatus maps the domain error taxonomy onto grpc codes.
func (h *Handler) toStatus(ctx context.Context, err error) error {
	var ve *model.ValidationError
	switch {
	case errors.As(err, &ve):
		return status.Error(codes.InvalidArgument, ve.Error())
	case errors.Is(err, model.ErrCourtInUse):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, model.ErrConflict):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, model.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, model.ErrStateTransition):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, model.ErrUnavailable), errors.Is(err, context.DeadlineExceeded):
		h.log.Warn("persistence unavailable",
			zap.String("request_id", middleware.RequestID(ctx)), zap.Error(err))
		return status.Error(codes.Unavailable, "service temporarily unavailable, try again")
	case errors.Is(err, auth.ErrBadCredentials):
		return status.Error(codes.Unauthenticated, "invalid credentials")
	case errors.Is(err, auth.ErrAccountInactive):
		return status.Error(codes.PermissionDenied, "account is inactive")
	case errors.Is(err, auth.ErrUnknownRole):
		return status.Error(codes.PermissionDenied, "account type is not permitted to sign in")
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	h.log.Error("unhandled error",
		zap.String("request_id", middleware.RequestID(ctx)), zap.Error(err))
	return status.Error(codes.Internal, "internal error")
}
