package middleware

import (
	"context"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	pb "court-reservation-api/api/reservation/v1"
	"court-reservation-api/internal/auth"
	"court-reservation-api/internal/model"
)

type ctxKey string

const (
	AccountIDKey ctxKey = "aid"
	RoleKey      ctxKey = "role"
)

// skip auth for these
var open = map[string]bool{
	pb.ReservationService_Login_FullMethodName: true,
}

var adminOnly = map[string]bool{
	pb.ReservationService_ChangeReservationStatus_FullMethodName: true,
	pb.ReservationService_CreateCourt_FullMethodName:             true,
	pb.ReservationService_UpdateCourt_FullMethodName:             true,
	pb.ReservationService_DeleteCourt_FullMethodName:             true,
	pb.ReservationService_ListAccounts_FullMethodName:            true,
	pb.ReservationService_SetAccountStatus_FullMethodName:        true,
	pb.ReservationService_CreateAccount_FullMethodName:           true,
	pb.ReservationService_CreateCourtType_FullMethodName:         true,
	pb.ReservationService_CreateDepartment_FullMethodName:        true,
}

func Auth(secret string) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
		if open[info.FullMethod] {
			return next(ctx, req)
		}

		md, ok := metadata.FromIncomingContext(ctx)
		if !ok {
			return nil, status.Error(codes.Unauthenticated, "missing metadata")
		}

		// token from Authorization: Bearer <jwt>
		raw := ""
		if vals := md.Get("authorization"); len(vals) > 0 {
			raw = strings.TrimPrefix(vals[0], "Bearer ")
		}
		if raw == "" {
			return nil, status.Error(codes.Unauthenticated, "no token")
		}

		claims, err := auth.ParseToken(raw, secret)
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, "bad token")
		}
		role := model.ParseRole(claims.Role)
		if role == model.RoleUnknown {
			return nil, status.Error(codes.PermissionDenied, "unknown role")
		}
		if adminOnly[info.FullMethod] && role != model.RoleAdmin {
			return nil, status.Error(codes.PermissionDenied, "admin only")
		}

		return next(WithAccount(ctx, claims.AccountID, role), req)
	}
}

// WithAccount stores the caller identity the way Auth does.
func WithAccount(ctx context.Context, id int64, role model.Role) context.Context {
	ctx = context.WithValue(ctx, AccountIDKey, id)
	return context.WithValue(ctx, RoleKey, role)
}

// Caller returns the authenticated account id and role.
func Caller(ctx context.Context) (int64, model.Role, bool) {
	id, ok := ctx.Value(AccountIDKey).(int64)
	if !ok {
		return 0, model.RoleUnknown, false
	}
	role, _ := ctx.Value(RoleKey).(model.Role)
	return id, role, true
}
