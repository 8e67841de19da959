package handler

import (
	"context"
	"errors"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "court-reservation-api/api/reservation/v1"
	"court-reservation-api/internal/model"
	"court-reservation-api/internal/reservation"
)

func toProto(r *model.Reservation) *pb.Reservation {
	return &pb.Reservation{
		Id:        r.ID,
		AccountId: r.AccountID,
		CourtId:   r.CourtID,
		Date:      r.Date.Format(time.DateOnly),
		StartTime: pb.Timestamp(r.Start),
		EndTime:   pb.Timestamp(r.End),
		Status:    string(r.Status),
		Remark:    r.Remark,
		CreatedAt: pb.Timestamp(r.CreatedAt),
		UpdatedAt: pb.Timestamp(r.UpdatedAt),
	}
}

func detailProto(d *model.ReservationDetail) *pb.Reservation {
	out := toProto(&d.Reservation)
	out.Username = d.Username
	out.UserFullName = d.UserFullName
	out.CourtName = d.CourtName
	out.CourtType = d.CourtType
	out.Department = d.Department
	return out
}

func slot(s *pb.Slot) (date, start, end time.Time, err error) {
	date, err = parseDate(s.Date)
	return date, pb.Time(s.StartTime), pb.Time(s.EndTime), err
}

func (h *Handler) CheckAvailability(ctx context.Context, req *pb.CheckAvailabilityRequest) (*pb.CheckAvailabilityResponse, error) {
	if err := h.check(req); err != nil {
		return nil, err
	}
	date, start, end, err := slot(&req.Slot)
	if err != nil {
		return nil, err
	}

	ok, err := h.svc.CheckAvailability(ctx, req.CourtId, date, start, end)
	if err != nil {
		return nil, h.toStatus(ctx, err)
	}
	return &pb.CheckAvailabilityResponse{Available: ok}, nil
}

func (h *Handler) CreateReservation(ctx context.Context, req *pb.CreateReservationRequest) (*pb.ReservationReply, error) {
	accountID, _, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	if err := h.check(req); err != nil {
		return nil, err
	}
	date, start, end, err := slot(&req.Slot)
	if err != nil {
		return nil, err
	}

	r, err := h.svc.Create(ctx, reservation.CreateRequest{
		AccountID: accountID,
		CourtID:   req.CourtId,
		Date:      date,
		Start:     start,
		End:       end,
		Remark:    req.Remark,
	})
	if err != nil {
		return nil, h.toStatus(ctx, err)
	}
	return &pb.ReservationReply{Reservation: toProto(r)}, nil
}

func (h *Handler) ChangeReservationStatus(ctx context.Context, req *pb.ChangeStatusRequest) (*pb.ChangeReply, error) {
	if err := h.check(req); err != nil {
		return nil, err
	}
	changed, err := h.svc.ChangeStatus(ctx, req.Id, req.Status)
	if errors.Is(err, model.ErrNoChange) {
		return &pb.ChangeReply{Changed: false}, nil
	}
	if err != nil {
		return nil, h.toStatus(ctx, err)
	}
	return &pb.ChangeReply{Changed: changed}, nil
}

// owned loads a reservation the caller may see. Other users' reservations
// read as not found so other accounts' ids cannot be enumerated.
func (h *Handler) owned(ctx context.Context, id int64) (*model.Reservation, error) {
	accountID, role, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	r, err := h.svc.Get(ctx, id)
	if err != nil {
		return nil, h.toStatus(ctx, err)
	}
	if role != model.RoleAdmin && r.AccountID != accountID {
		return nil, status.Error(codes.NotFound, "reservation not found")
	}
	return r, nil
}

func (h *Handler) CancelReservation(ctx context.Context, req *pb.ReservationRef) (*pb.ChangeReply, error) {
	if err := h.check(req); err != nil {
		return nil, err
	}
	if _, err := h.owned(ctx, req.Id); err != nil {
		return nil, err
	}
	changed, err := h.svc.Cancel(ctx, req.Id)
	if err != nil {
		return nil, h.toStatus(ctx, err)
	}
	return &pb.ChangeReply{Changed: changed}, nil
}

func (h *Handler) GetReservation(ctx context.Context, req *pb.ReservationRef) (*pb.ReservationReply, error) {
	if err := h.check(req); err != nil {
		return nil, err
	}
	r, err := h.owned(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	return &pb.ReservationReply{Reservation: toProto(r)}, nil
}

func (h *Handler) ListReservations(ctx context.Context, req *pb.ListReservationsRequest) (*pb.ListReservationsResponse, error) {
	accountID, role, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	if err := h.check(req); err != nil {
		return nil, err
	}
	admin := role == model.RoleAdmin

	q := model.ReservationQuery{}
	switch req.Scope {
	case "", "account":
		q.Scope = model.ScopeAccount
		q.AccountID = accountID
		if req.AccountId != 0 && req.AccountId != accountID {
			if !admin {
				return nil, status.Error(codes.PermissionDenied, "admin only")
			}
			q.AccountID = req.AccountId
		}
	case "date":
		q.Scope = model.ScopeDate
		if req.Date == "" {
			return nil, status.Error(codes.InvalidArgument, "date required")
		}
		if q.Date, err = parseDate(req.Date); err != nil {
			return nil, err
		}
	case "all":
		if !admin {
			return nil, status.Error(codes.PermissionDenied, "admin only")
		}
		q.Scope = model.ScopeAll
	}
	if req.Status != "" {
		if q.Status, err = model.ParseStatus(req.Status); err != nil {
			return nil, h.toStatus(ctx, err)
		}
	}

	list, err := h.svc.List(ctx, q)
	if err != nil {
		return nil, h.toStatus(ctx, err)
	}

	out := make([]*pb.Reservation, len(list))
	for i := range list {
		out[i] = detailProto(&list[i])
		// by-date lists show who holds a slot only to admins and the holder
		if !admin && list[i].AccountID != accountID {
			out[i].AccountId = 0
			out[i].Username = ""
			out[i].UserFullName = ""
			out[i].Department = ""
			out[i].Remark = ""
		}
	}
	return &pb.ListReservationsResponse{Reservations: out}, nil
}
