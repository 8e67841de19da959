package reservationv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "court.reservation.v1.ReservationService"

const (
	ReservationService_Login_FullMethodName                   = "/" + ServiceName + "/Login"
	ReservationService_CheckAvailability_FullMethodName       = "/" + ServiceName + "/CheckAvailability"
	ReservationService_CreateReservation_FullMethodName       = "/" + ServiceName + "/CreateReservation"
	ReservationService_ChangeReservationStatus_FullMethodName = "/" + ServiceName + "/ChangeReservationStatus"
	ReservationService_CancelReservation_FullMethodName       = "/" + ServiceName + "/CancelReservation"
	ReservationService_GetReservation_FullMethodName          = "/" + ServiceName + "/GetReservation"
	ReservationService_ListReservations_FullMethodName        = "/" + ServiceName + "/ListReservations"
	ReservationService_ListCourtTypes_FullMethodName          = "/" + ServiceName + "/ListCourtTypes"
	ReservationService_ListCourts_FullMethodName              = "/" + ServiceName + "/ListCourts"
	ReservationService_CreateCourt_FullMethodName             = "/" + ServiceName + "/CreateCourt"
	ReservationService_UpdateCourt_FullMethodName             = "/" + ServiceName + "/UpdateCourt"
	ReservationService_DeleteCourt_FullMethodName             = "/" + ServiceName + "/DeleteCourt"
	ReservationService_ListAccounts_FullMethodName            = "/" + ServiceName + "/ListAccounts"
	ReservationService_SetAccountStatus_FullMethodName        = "/" + ServiceName + "/SetAccountStatus"
	ReservationService_CreateAccount_FullMethodName           = "/" + ServiceName + "/CreateAccount"
	ReservationService_GetMyAccount_FullMethodName            = "/" + ServiceName + "/GetMyAccount"
	ReservationService_CreateCourtType_FullMethodName         = "/" + ServiceName + "/CreateCourtType"
	ReservationService_CreateDepartment_FullMethodName        = "/" + ServiceName + "/CreateDepartment"
)

type ReservationServiceServer interface {
	Login(context.Context, *LoginRequest) (*LoginResponse, error)
	CheckAvailability(context.Context, *CheckAvailabilityRequest) (*CheckAvailabilityResponse, error)
	CreateReservation(context.Context, *CreateReservationRequest) (*ReservationReply, error)
	ChangeReservationStatus(context.Context, *ChangeStatusRequest) (*ChangeReply, error)
	CancelReservation(context.Context, *ReservationRef) (*ChangeReply, error)
	GetReservation(context.Context, *ReservationRef) (*ReservationReply, error)
	ListReservations(context.Context, *ListReservationsRequest) (*ListReservationsResponse, error)
	ListCourtTypes(context.Context, *Empty) (*ListCourtTypesResponse, error)
	ListCourts(context.Context, *ListCourtsRequest) (*ListCourtsResponse, error)
	CreateCourt(context.Context, *Court) (*Court, error)
	UpdateCourt(context.Context, *Court) (*Court, error)
	DeleteCourt(context.Context, *DeleteCourtRequest) (*Empty, error)
	ListAccounts(context.Context, *Empty) (*ListAccountsResponse, error)
	SetAccountStatus(context.Context, *SetAccountStatusRequest) (*ChangeReply, error)
	CreateAccount(context.Context, *CreateAccountRequest) (*Account, error)
	GetMyAccount(context.Context, *Empty) (*Account, error)
	CreateCourtType(context.Context, *CourtType) (*CourtType, error)
	CreateDepartment(context.Context, *Department) (*Department, error)
}

// UnimplementedReservationServiceServer answers Unimplemented for every
// method; embed it to stay forward compatible.
type UnimplementedReservationServiceServer struct{}

func unimplemented(method string) error {
	return status.Errorf(codes.Unimplemented, "method %s not implemented", method)
}

func (UnimplementedReservationServiceServer) Login(context.Context, *LoginRequest) (*LoginResponse, error) {
	return nil, unimplemented("Login")
}
func (UnimplementedReservationServiceServer) CheckAvailability(context.Context, *CheckAvailabilityRequest) (*CheckAvailabilityResponse, error) {
	return nil, unimplemented("CheckAvailability")
}
func (UnimplementedReservationServiceServer) CreateReservation(context.Context, *CreateReservationRequest) (*ReservationReply, error) {
	return nil, unimplemented("CreateReservation")
}
func (UnimplementedReservationServiceServer) ChangeReservationStatus(context.Context, *ChangeStatusRequest) (*ChangeReply, error) {
	return nil, unimplemented("ChangeReservationStatus")
}
func (UnimplementedReservationServiceServer) CancelReservation(context.Context, *ReservationRef) (*ChangeReply, error) {
	return nil, unimplemented("CancelReservation")
}
func (UnimplementedReservationServiceServer) GetReservation(context.Context, *ReservationRef) (*ReservationReply, error) {
	return nil, unimplemented("GetReservation")
}
func (UnimplementedReservationServiceServer) ListReservations(context.Context, *ListReservationsRequest) (*ListReservationsResponse, error) {
	return nil, unimplemented("ListReservations")
}
func (UnimplementedReservationServiceServer) ListCourtTypes(context.Context, *Empty) (*ListCourtTypesResponse, error) {
	return nil, unimplemented("ListCourtTypes")
}
func (UnimplementedReservationServiceServer) ListCourts(context.Context, *ListCourtsRequest) (*ListCourtsResponse, error) {
	return nil, unimplemented("ListCourts")
}
func (UnimplementedReservationServiceServer) CreateCourt(context.Context, *Court) (*Court, error) {
	return nil, unimplemented("CreateCourt")
}
func (UnimplementedReservationServiceServer) UpdateCourt(context.Context, *Court) (*Court, error) {
	return nil, unimplemented("UpdateCourt")
}
func (UnimplementedReservationServiceServer) DeleteCourt(context.Context, *DeleteCourtRequest) (*Empty, error) {
	return nil, unimplemented("DeleteCourt")
}
func (UnimplementedReservationServiceServer) ListAccounts(context.Context, *Empty) (*ListAccountsResponse, error) {
	return nil, unimplemented("ListAccounts")
}
func (UnimplementedReservationServiceServer) SetAccountStatus(context.Context, *SetAccountStatusRequest) (*ChangeReply, error) {
	return nil, unimplemented("SetAccountStatus")
}
func (UnimplementedReservationServiceServer) CreateAccount(context.Context, *CreateAccountRequest) (*Account, error) {
	return nil, unimplemented("CreateAccount")
}
func (UnimplementedReservationServiceServer) GetMyAccount(context.Context, *Empty) (*Account, error) {
	return nil, unimplemented("GetMyAccount")
}
func (UnimplementedReservationServiceServer) CreateCourtType(context.Context, *CourtType) (*CourtType, error) {
	return nil, unimplemented("CreateCourtType")
}
func (UnimplementedReservationServiceServer) CreateDepartment(context.Context, *Department) (*Department, error) {
	return nil, unimplemented("CreateDepartment")
}

// unary adapts a typed server method to grpc's MethodHandler.
func unary[Req, Resp any](fullMethod string, call func(ReservationServiceServer, context.Context, *Req) (*Resp, error)) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(ReservationServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
			return call(srv.(ReservationServiceServer), ctx, req.(*Req))
		})
	}
}

func method[Req, Resp any](name string, call func(ReservationServiceServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{MethodName: name, Handler: unary("/"+ServiceName+"/"+name, call)}
}

var ReservationService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ReservationServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		method("Login", ReservationServiceServer.Login),
		method("CheckAvailability", ReservationServiceServer.CheckAvailability),
		method("CreateReservation", ReservationServiceServer.CreateReservation),
		method("ChangeReservationStatus", ReservationServiceServer.ChangeReservationStatus),
		method("CancelReservation", ReservationServiceServer.CancelReservation),
		method("GetReservation", ReservationServiceServer.GetReservation),
		method("ListReservations", ReservationServiceServer.ListReservations),
		method("ListCourtTypes", ReservationServiceServer.ListCourtTypes),
		method("ListCourts", ReservationServiceServer.ListCourts),
		method("CreateCourt", ReservationServiceServer.CreateCourt),
		method("UpdateCourt", ReservationServiceServer.UpdateCourt),
		method("DeleteCourt", ReservationServiceServer.DeleteCourt),
		method("ListAccounts", ReservationServiceServer.ListAccounts),
		method("SetAccountStatus", ReservationServiceServer.SetAccountStatus),
		method("CreateAccount", ReservationServiceServer.CreateAccount),
		method("GetMyAccount", ReservationServiceServer.GetMyAccount),
		method("CreateCourtType", ReservationServiceServer.CreateCourtType),
		method("CreateDepartment", ReservationServiceServer.CreateDepartment),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "court/reservation/v1/reservation.proto",
}

// RegisterReservationServiceServer registers srv on s. The server must be
// built with grpc.ForceServerCodec(Codec{}).
func RegisterReservationServiceServer(s grpc.ServiceRegistrar, srv ReservationServiceServer) {
	s.RegisterService(&ReservationService_ServiceDesc, srv)
}

type ReservationServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewReservationServiceClient(cc grpc.ClientConnInterface) *ReservationServiceClient {
	return &ReservationServiceClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in Message, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.ForceCodec(Codec{})}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ReservationServiceClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error) {
	return invoke[LoginResponse](ctx, c.cc, ReservationService_Login_FullMethodName, in, opts)
}

func (c *ReservationServiceClient) CheckAvailability(ctx context.Context, in *CheckAvailabilityRequest, opts ...grpc.CallOption) (*CheckAvailabilityResponse, error) {
	return invoke[CheckAvailabilityResponse](ctx, c.cc, ReservationService_CheckAvailability_FullMethodName, in, opts)
}

func (c *ReservationServiceClient) CreateReservation(ctx context.Context, in *CreateReservationRequest, opts ...grpc.CallOption) (*ReservationReply, error) {
	return invoke[ReservationReply](ctx, c.cc, ReservationService_CreateReservation_FullMethodName, in, opts)
}

func (c *ReservationServiceClient) ChangeReservationStatus(ctx context.Context, in *ChangeStatusRequest, opts ...grpc.CallOption) (*ChangeReply, error) {
	return invoke[ChangeReply](ctx, c.cc, ReservationService_ChangeReservationStatus_FullMethodName, in, opts)
}

func (c *ReservationServiceClient) CancelReservation(ctx context.Context, in *ReservationRef, opts ...grpc.CallOption) (*ChangeReply, error) {
	return invoke[ChangeReply](ctx, c.cc, ReservationService_CancelReservation_FullMethodName, in, opts)
}

func (c *ReservationServiceClient) GetReservation(ctx context.Context, in *ReservationRef, opts ...grpc.CallOption) (*ReservationReply, error) {
	return invoke[ReservationReply](ctx, c.cc, ReservationService_GetReservation_FullMethodName, in, opts)
}

func (c *ReservationServiceClient) ListReservations(ctx context.Context, in *ListReservationsRequest, opts ...grpc.CallOption) (*ListReservationsResponse, error) {
	return invoke[ListReservationsResponse](ctx, c.cc, ReservationService_ListReservations_FullMethodName, in, opts)
}

func (c *ReservationServiceClient) ListCourtTypes(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ListCourtTypesResponse, error) {
	return invoke[ListCourtTypesResponse](ctx, c.cc, ReservationService_ListCourtTypes_FullMethodName, in, opts)
}

func (c *ReservationServiceClient) ListCourts(ctx context.Context, in *ListCourtsRequest, opts ...grpc.CallOption) (*ListCourtsResponse, error) {
	return invoke[ListCourtsResponse](ctx, c.cc, ReservationService_ListCourts_FullMethodName, in, opts)
}

func (c *ReservationServiceClient) CreateCourt(ctx context.Context, in *Court, opts ...grpc.CallOption) (*Court, error) {
	return invoke[Court](ctx, c.cc, ReservationService_CreateCourt_FullMethodName, in, opts)
}

func (c *ReservationServiceClient) UpdateCourt(ctx context.Context, in *Court, opts ...grpc.CallOption) (*Court, error) {
	return invoke[Court](ctx, c.cc, ReservationService_UpdateCourt_FullMethodName, in, opts)
}

func (c *ReservationServiceClient) DeleteCourt(ctx context.Context, in *DeleteCourtRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, ReservationService_DeleteCourt_FullMethodName, in, opts)
}

func (c *ReservationServiceClient) ListAccounts(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ListAccountsResponse, error) {
	return invoke[ListAccountsResponse](ctx, c.cc, ReservationService_ListAccounts_FullMethodName, in, opts)
}

func (c *ReservationServiceClient) SetAccountStatus(ctx context.Context, in *SetAccountStatusRequest, opts ...grpc.CallOption) (*ChangeReply, error) {
	return invoke[ChangeReply](ctx, c.cc, ReservationService_SetAccountStatus_FullMethodName, in, opts)
}

func (c *ReservationServiceClient) CreateAccount(ctx context.Context, in *CreateAccountRequest, opts ...grpc.CallOption) (*Account, error) {
	return invoke[Account](ctx, c.cc, ReservationService_CreateAccount_FullMethodName, in, opts)
}

func (c *ReservationServiceClient) GetMyAccount(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*Account, error) {
	return invoke[Account](ctx, c.cc, ReservationService_GetMyAccount_FullMethodName, in, opts)
}

func (c *ReservationServiceClient) CreateCourtType(ctx context.Context, in *CourtType, opts ...grpc.CallOption) (*CourtType, error) {
	return invoke[CourtType](ctx, c.cc, ReservationService_CreateCourtType_FullMethodName, in, opts)
}

func (c *ReservationServiceClient) CreateDepartment(ctx context.Context, in *Department, opts ...grpc.CallOption) (*Department, error) {
	return invoke[Department](ctx, c.cc, ReservationService_CreateDepartment_FullMethodName, in, opts)
}
