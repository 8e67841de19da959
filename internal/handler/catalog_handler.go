package handler

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "court-reservation-api/api/reservation/v1"
	"court-reservation-api/internal/auth"
	"court-reservation-api/internal/model"
)

func courtProto(c *model.Court) *pb.Court {
	return &pb.Court{Id: c.ID, CourtTypeId: c.CourtTypeID, Description: c.Description}
}

func accountProto(a *model.Account) *pb.Account {
	return &pb.Account{
		Id:           a.ID,
		Username:     a.Username,
		FirstName:    a.FirstName,
		LastName:     a.LastName,
		Email:        a.Email,
		Phone:        a.Phone,
		Role:         a.Role().String(),
		Status:       string(a.Status),
		DepartmentId: a.DepartmentID,
	}
}

func (h *Handler) CreateDepartment(ctx context.Context, req *pb.Department) (*pb.Department, error) {
	if err := h.check(req); err != nil {
		return nil, err
	}
	d := &model.Department{Name: strings.TrimSpace(req.Name)}
	ctx, cancel := h.bound(ctx)
	defer cancel()
	if err := h.catalog.CreateDepartment(ctx, d); err != nil {
		return nil, h.toStatus(ctx, err)
	}
	return &pb.Department{Id: d.ID, Name: d.Name}, nil
}

func (h *Handler) CreateCourtType(ctx context.Context, req *pb.CourtType) (*pb.CourtType, error) {
	if err := h.check(req); err != nil {
		return nil, err
	}
	ct := &model.CourtType{Description: strings.TrimSpace(req.Description)}
	ctx, cancel := h.bound(ctx)
	defer cancel()
	if err := h.catalog.CreateCourtType(ctx, ct); err != nil {
		return nil, h.toStatus(ctx, err)
	}
	return &pb.CourtType{Id: ct.ID, Description: ct.Description}, nil
}

func (h *Handler) ListCourtTypes(ctx context.Context, _ *pb.Empty) (*pb.ListCourtTypesResponse, error) {
	ctx, cancel := h.bound(ctx)
	defer cancel()
	types, err := h.catalog.ListCourtTypes(ctx)
	if err != nil {
		return nil, h.toStatus(ctx, err)
	}
	out := make([]*pb.CourtType, len(types))
	for i, ct := range types {
		out[i] = &pb.CourtType{Id: ct.ID, Description: ct.Description}
	}
	return &pb.ListCourtTypesResponse{CourtTypes: out}, nil
}

func (h *Handler) ListCourts(ctx context.Context, req *pb.ListCourtsRequest) (*pb.ListCourtsResponse, error) {
	if err := h.check(req); err != nil {
		return nil, err
	}
	ctx, cancel := h.bound(ctx)
	defer cancel()
	courts, err := h.catalog.ListCourts(ctx, req.CourtTypeId)
	if err != nil {
		return nil, h.toStatus(ctx, err)
	}
	out := make([]*pb.Court, len(courts))
	for i := range courts {
		out[i] = courtProto(&courts[i])
	}
	return &pb.ListCourtsResponse{Courts: out}, nil
}

func (h *Handler) CreateCourt(ctx context.Context, req *pb.Court) (*pb.Court, error) {
	if err := h.check(req); err != nil {
		return nil, err
	}
	c := &model.Court{CourtTypeID: req.CourtTypeId, Description: req.Description}
	ctx, cancel := h.bound(ctx)
	defer cancel()
	if err := h.catalog.CreateCourt(ctx, c); err != nil {
		return nil, h.toStatus(ctx, err)
	}
	return courtProto(c), nil
}

func (h *Handler) UpdateCourt(ctx context.Context, req *pb.Court) (*pb.Court, error) {
	if err := h.check(req); err != nil {
		return nil, err
	}
	if req.Id == 0 {
		return nil, h.toStatus(ctx, &model.ValidationError{Field: "id", Reason: "required"})
	}
	c := &model.Court{ID: req.Id, CourtTypeID: req.CourtTypeId, Description: req.Description}
	ctx, cancel := h.bound(ctx)
	defer cancel()
	if err := h.catalog.UpdateCourt(ctx, c); err != nil {
		return nil, h.toStatus(ctx, err)
	}
	return courtProto(c), nil
}

func (h *Handler) DeleteCourt(ctx context.Context, req *pb.DeleteCourtRequest) (*pb.Empty, error) {
	if err := h.check(req); err != nil {
		return nil, err
	}
	ctx, cancel := h.bound(ctx)
	defer cancel()
	if err := h.catalog.DeleteCourt(ctx, req.Id); err != nil {
		return nil, h.toStatus(ctx, err)
	}
	return &pb.Empty{}, nil
}

func (h *Handler) ListAccounts(ctx context.Context, _ *pb.Empty) (*pb.ListAccountsResponse, error) {
	ctx, cancel := h.bound(ctx)
	defer cancel()
	accounts, err := h.catalog.ListAccounts(ctx)
	if err != nil {
		return nil, h.toStatus(ctx, err)
	}
	out := make([]*pb.Account, len(accounts))
	for i := range accounts {
		out[i] = accountProto(&accounts[i])
	}
	return &pb.ListAccountsResponse{Accounts: out}, nil
}

func (h *Handler) SetAccountStatus(ctx context.Context, req *pb.SetAccountStatusRequest) (*pb.ChangeReply, error) {
	if err := h.check(req); err != nil {
		return nil, err
	}
	st, err := model.ParseAccountStatus(req.Status)
	if err != nil {
		return nil, h.toStatus(ctx, err)
	}
	ctx, cancel := h.bound(ctx)
	defer cancel()
	changed, err := h.catalog.SetAccountStatus(ctx, req.AccountId, st)
	if err != nil {
		return nil, h.toStatus(ctx, err)
	}
	return &pb.ChangeReply{Changed: changed}, nil
}

// CreateAccount is how users get onto the system; there is no self sign-up.
func (h *Handler) CreateAccount(ctx context.Context, req *pb.CreateAccountRequest) (*pb.Account, error) {
	if err := h.check(req); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		h.log.Error("hash password", zap.Error(err))
		return nil, status.Error(codes.Internal, "internal error")
	}

	typeCode := 1
	if model.ParseRole(req.Role) == model.RoleAdmin {
		typeCode = 0
	}
	a := &model.Account{
		TypeCode:     typeCode,
		DepartmentID: req.DepartmentId,
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Email:        strings.TrimSpace(req.Email),
		Phone:        strings.TrimSpace(req.Phone),
		Username:     strings.TrimSpace(req.Username),
		PasswordHash: hash,
		Status:       model.AccountActive,
	}
	ctx, cancel := h.bound(ctx)
	defer cancel()
	if err := h.catalog.CreateAccount(ctx, a); err != nil {
		return nil, h.toStatus(ctx, err)
	}
	return accountProto(a), nil
}

func (h *Handler) GetMyAccount(ctx context.Context, _ *pb.Empty) (*pb.Account, error) {
	id, _, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	ctx, cancel := h.bound(ctx)
	defer cancel()
	a, err := h.catalog.AccountByID(ctx, id)
	if err != nil {
		return nil, h.toStatus(ctx, err)
	}
	return accountProto(a), nil
}
