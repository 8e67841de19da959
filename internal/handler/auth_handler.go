package handler

import (
	"context"

	pb "court-reservation-api/api/reservation/v1"
)

func (h *Handler) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {
	if err := h.check(req); err != nil {
		return nil, err
	}

	s, err := h.auth.Login(ctx, req.Username, req.Password)
	if err != nil {
		return nil, h.toStatus(ctx, err)
	}

	return &pb.LoginResponse{
		Token:     s.Token,
		AccountId: s.Account.ID,
		Role:      s.Account.Role().String(),
		FullName:  s.Account.FullName(),
		ExpiresAt: pb.Timestamp(s.ExpiresAt),
	}, nil
}
