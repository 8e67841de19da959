package handler_test

import (
	"context"
	"net"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	pb "court-reservation-api/api/reservation/v1"
	"court-reservation-api/internal/auth"
	"court-reservation-api/internal/boltstore"
	"court-reservation-api/internal/handler"
	"court-reservation-api/internal/locks"
	"court-reservation-api/internal/middleware"
	"court-reservation-api/internal/model"
	"court-reservation-api/internal/reservation"
)

const secret = "handler-test-secret"

var day = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

type clock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *clock) now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *clock) advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

type env struct {
	client *pb.ReservationServiceClient
	clock  *clock
	court  int64
}

func setup(t *testing.T) *env {
	t.Helper()
	ctx := context.Background()
	st, err := boltstore.Open(filepath.Join(t.TempDir(), "handler.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	dep := &model.Department{Name: "Athletics"}
	if err := st.CreateDepartment(ctx, dep); err != nil {
		t.Fatalf("department: %v", err)
	}
	for _, a := range []struct {
		user   string
		code   int
		status model.AccountStatus
	}{
		{"admin", 0, model.AccountActive},
		{"alice", 1, model.AccountActive},
		{"bob", 1, model.AccountActive},
		{"carol", 1, model.AccountInactive},
	} {
		hash, err := auth.HashPassword("password1")
		if err != nil {
			t.Fatalf("hash: %v", err)
		}
		acct := &model.Account{TypeCode: a.code, DepartmentID: dep.ID, FirstName: a.user, LastName: "Test",
			Username: a.user, PasswordHash: hash, Status: a.status}
		if err := st.CreateAccount(ctx, acct); err != nil {
			t.Fatalf("account %s: %v", a.user, err)
		}
	}
	ct := &model.CourtType{Description: "Badminton"}
	if err := st.CreateCourtType(ctx, ct); err != nil {
		t.Fatalf("court type: %v", err)
	}
	court := &model.Court{CourtTypeID: ct.ID, Description: "Court 1"}
	if err := st.CreateCourt(ctx, court); err != nil {
		t.Fatalf("court: %v", err)
	}

	log := zap.NewNop()
	clk := &clock{t: time.Date(2024, 5, 20, 8, 0, 0, 0, time.UTC)}
	policy := reservation.DefaultPolicy()
	policy.Location = time.UTC
	svc := reservation.NewService(st, locks.NewKeyedMutex(), policy, log, reservation.WithClock(clk.now))
	authn := auth.NewAuthenticator(auth.NewBcryptVerifier(st), secret, time.Hour, log)
	h := handler.New(svc, authn, st, log)

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer(
		grpc.ForceServerCodec(pb.Codec{}),
		grpc.ChainUnaryInterceptor(middleware.Logging(log), middleware.Auth(secret)),
	)
	pb.RegisterReservationServiceServer(srv, h)
	go srv.Serve(lis)
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return &env{client: pb.NewReservationServiceClient(conn), clock: clk, court: court.ID}
}

func (e *env) as(t *testing.T, user string) context.Context {
	t.Helper()
	lr, err := e.client.Login(context.Background(), &pb.LoginRequest{Username: user, Password: "password1"})
	if err != nil {
		t.Fatalf("login %s: %v", user, err)
	}
	return metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer "+lr.Token)
}

func hour(h, m int) time.Time {
	return day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
}

func slot(court int64, from, to time.Time) pb.Slot {
	return pb.Slot{CourtId: court, Date: "2024-06-01", StartTime: pb.Timestamp(from), EndTime: pb.Timestamp(to)}
}

func (e *env) book(ctx context.Context, from, to time.Time) (*pb.Reservation, error) {
	r, err := e.client.CreateReservation(ctx, &pb.CreateReservationRequest{
		Slot:   slot(e.court, from, to),
		Remark: "evening doubles session",
	})
	if err != nil {
		return nil, err
	}
	return r.Reservation, nil
}

func code(err error) codes.Code {
	s, _ := status.FromError(err)
	return s.Code()
}

// ----- auth -----

func TestLogin(t *testing.T) {
	e := setup(t)
	ctx := context.Background()

	lr, err := e.client.Login(ctx, &pb.LoginRequest{Username: "admin", Password: "password1"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if lr.Token == "" || lr.Role != "admin" || lr.ExpiresAt == nil {
		t.Errorf("unexpected login response: %+v", lr)
	}

	tests := []struct {
		name     string
		user, pw string
		want     codes.Code
	}{
		{"wrong password", "alice", "nope", codes.Unauthenticated},
		{"unknown user", "zed", "password1", codes.Unauthenticated},
		{"inactive", "carol", "password1", codes.PermissionDenied},
		{"empty", "", "", codes.InvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.client.Login(ctx, &pb.LoginRequest{Username: tt.user, Password: tt.pw})
			if got := code(err); got != tt.want {
				t.Errorf("expected %v, got %v (%v)", tt.want, got, err)
			}
		})
	}
}

func TestRequiresToken(t *testing.T) {
	e := setup(t)
	_, err := e.client.ListCourts(context.Background(), &pb.ListCourtsRequest{})
	if code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", err)
	}
}

// ----- reservations -----

func TestBookingScenario(t *testing.T) {
	e := setup(t)
	ctx := e.as(t, "alice")

	first, err := e.book(ctx, hour(9, 0), hour(10, 0))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if first.Status != "Pending" {
		t.Errorf("status: got %s", first.Status)
	}
	if first.Date != "2024-06-01" {
		t.Errorf("date: got %s", first.Date)
	}

	avail, err := e.client.CheckAvailability(ctx, &pb.CheckAvailabilityRequest{Slot: slot(e.court, hour(9, 30), hour(10, 30))})
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if avail.Available {
		t.Error("09:30-10:30 should be taken")
	}

	if _, err := e.book(ctx, hour(9, 30), hour(10, 30)); code(err) != codes.AlreadyExists {
		t.Errorf("expected AlreadyExists, got %v", err)
	}

	avail, err = e.client.CheckAvailability(ctx, &pb.CheckAvailabilityRequest{Slot: slot(e.court, hour(10, 0), hour(11, 0))})
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !avail.Available {
		t.Error("10:00-11:00 touches the first booking and should be free")
	}
	if _, err := e.book(ctx, hour(10, 0), hour(11, 0)); err != nil {
		t.Errorf("create touching slot: %v", err)
	}
}

func TestCreateValidation(t *testing.T) {
	e := setup(t)
	ctx := e.as(t, "alice")

	tests := []struct {
		name string
		req  *pb.CreateReservationRequest
		want codes.Code
	}{
		{"short remark", &pb.CreateReservationRequest{Slot: slot(e.court, hour(9, 0), hour(10, 0)), Remark: "fun"}, codes.InvalidArgument},
		{"missing start", &pb.CreateReservationRequest{
			Slot: pb.Slot{CourtId: e.court, Date: "2024-06-01", EndTime: pb.Timestamp(hour(10, 0))}, Remark: "evening doubles session"}, codes.InvalidArgument},
		{"bad date", &pb.CreateReservationRequest{
			Slot:   pb.Slot{CourtId: e.court, Date: "06/01/2024", StartTime: pb.Timestamp(hour(9, 0)), EndTime: pb.Timestamp(hour(10, 0))},
			Remark: "evening doubles session"}, codes.InvalidArgument},
		{"five hours", &pb.CreateReservationRequest{Slot: slot(e.court, hour(9, 0), hour(14, 0)), Remark: "evening doubles session"}, codes.InvalidArgument},
		{"after closing", &pb.CreateReservationRequest{Slot: slot(e.court, hour(19, 0), hour(21, 0)), Remark: "evening doubles session"}, codes.InvalidArgument},
		{"unknown court", &pb.CreateReservationRequest{Slot: slot(404, hour(9, 0), hour(10, 0)), Remark: "evening doubles session"}, codes.NotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.client.CreateReservation(ctx, tt.req)
			if got := code(err); got != tt.want {
				t.Errorf("expected %v, got %v (%v)", tt.want, got, err)
			}
		})
	}
}

func TestStatusLifecycle(t *testing.T) {
	e := setup(t)
	alice := e.as(t, "alice")
	bob := e.as(t, "bob")
	admin := e.as(t, "admin")

	r, err := e.book(alice, hour(9, 0), hour(10, 0))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := e.client.ChangeReservationStatus(alice, &pb.ChangeStatusRequest{Id: r.Id, Status: "Approved"}); code(err) != codes.PermissionDenied {
		t.Errorf("user approving: expected PermissionDenied, got %v", err)
	}

	e.clock.advance(time.Hour)
	cr, err := e.client.ChangeReservationStatus(admin, &pb.ChangeStatusRequest{Id: r.Id, Status: "approved"})
	if err != nil || !cr.Changed {
		t.Fatalf("approve: %v %+v", err, cr)
	}
	got, err := e.client.GetReservation(alice, &pb.ReservationRef{Id: r.Id})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Reservation.Status != "Approved" {
		t.Errorf("status: got %s", got.Reservation.Status)
	}
	if !pb.Time(got.Reservation.UpdatedAt).After(pb.Time(got.Reservation.CreatedAt)) {
		t.Error("updated_at did not advance")
	}

	cr, err = e.client.ChangeReservationStatus(admin, &pb.ChangeStatusRequest{Id: r.Id, Status: "APPROVED"})
	if err != nil || cr.Changed {
		t.Errorf("same status should be a no-op: %v %+v", err, cr)
	}

	if _, err := e.client.ChangeReservationStatus(admin, &pb.ChangeStatusRequest{Id: r.Id, Status: "Pending"}); code(err) != codes.FailedPrecondition {
		t.Errorf("approved->pending: expected FailedPrecondition, got %v", err)
	}
	if _, err := e.client.ChangeReservationStatus(admin, &pb.ChangeStatusRequest{Id: r.Id, Status: "maybe"}); code(err) != codes.InvalidArgument {
		t.Errorf("unknown status: expected InvalidArgument, got %v", err)
	}

	// other users cannot see or cancel it
	if _, err := e.client.GetReservation(bob, &pb.ReservationRef{Id: r.Id}); code(err) != codes.NotFound {
		t.Errorf("bob get: expected NotFound, got %v", err)
	}
	if _, err := e.client.CancelReservation(bob, &pb.ReservationRef{Id: r.Id}); code(err) != codes.NotFound {
		t.Errorf("bob cancel: expected NotFound, got %v", err)
	}

	cr, err = e.client.CancelReservation(alice, &pb.ReservationRef{Id: r.Id})
	if err != nil || !cr.Changed {
		t.Fatalf("cancel: %v %+v", err, cr)
	}
	cr, err = e.client.CancelReservation(alice, &pb.ReservationRef{Id: r.Id})
	if err != nil || cr.Changed {
		t.Errorf("second cancel should be a no-op: %v %+v", err, cr)
	}

	if _, err := e.client.ChangeReservationStatus(admin, &pb.ChangeStatusRequest{Id: r.Id, Status: "Approved"}); code(err) != codes.FailedPrecondition {
		t.Errorf("cancelled->approved: expected FailedPrecondition, got %v", err)
	}
}

func TestListReservations(t *testing.T) {
	e := setup(t)
	alice := e.as(t, "alice")
	bob := e.as(t, "bob")
	admin := e.as(t, "admin")

	for _, h := range []int{9, 11} {
		if _, err := e.book(alice, hour(h, 0), hour(h+1, 0)); err != nil {
			t.Fatalf("alice create: %v", err)
		}
	}
	if _, err := e.book(bob, hour(14, 0), hour(15, 0)); err != nil {
		t.Fatalf("bob create: %v", err)
	}

	mine, err := e.client.ListReservations(alice, &pb.ListReservationsRequest{})
	if err != nil {
		t.Fatalf("list own: %v", err)
	}
	if len(mine.Reservations) != 2 {
		t.Errorf("expected 2 own reservations, got %d", len(mine.Reservations))
	}

	if _, err := e.client.ListReservations(alice, &pb.ListReservationsRequest{Scope: "all"}); code(err) != codes.PermissionDenied {
		t.Errorf("user all: expected PermissionDenied, got %v", err)
	}
	if _, err := e.client.ListReservations(bob, &pb.ListReservationsRequest{Scope: "account", AccountId: mine.Reservations[0].AccountId}); code(err) != codes.PermissionDenied {
		t.Errorf("user other account: expected PermissionDenied, got %v", err)
	}

	all, err := e.client.ListReservations(admin, &pb.ListReservationsRequest{Scope: "all"})
	if err != nil {
		t.Fatalf("admin all: %v", err)
	}
	if len(all.Reservations) != 3 {
		t.Fatalf("expected 3, got %d", len(all.Reservations))
	}
	if all.Reservations[0].Username == "" || all.Reservations[0].CourtType != "Badminton" || all.Reservations[0].Department != "Athletics" {
		t.Errorf("missing joined fields: %+v", all.Reservations[0])
	}

	byDate, err := e.client.ListReservations(bob, &pb.ListReservationsRequest{Scope: "date", Date: "2024-06-01"})
	if err != nil {
		t.Fatalf("by date: %v", err)
	}
	if len(byDate.Reservations) != 3 {
		t.Fatalf("expected 3 on the day, got %d", len(byDate.Reservations))
	}
	for _, r := range byDate.Reservations {
		if r.Username != "" && r.Username != "bob" {
			t.Errorf("bob can see %s's booking details", r.Username)
		}
	}

	pending, err := e.client.ListReservations(admin, &pb.ListReservationsRequest{Scope: "all", Status: "pending"})
	if err != nil {
		t.Fatalf("status filter: %v", err)
	}
	if len(pending.Reservations) != 3 {
		t.Errorf("expected 3 pending, got %d", len(pending.Reservations))
	}
}

func TestConcurrentBooking(t *testing.T) {
	e := setup(t)
	users := []string{"alice", "bob", "admin"}
	ctxs := make([]context.Context, len(users))
	for i, u := range users {
		ctxs[i] = e.as(t, u)
	}

	const n = 12
	var wg sync.WaitGroup
	results := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(ctx context.Context) {
			defer wg.Done()
			_, err := e.book(ctx, hour(17, 0), hour(19, 0))
			results <- err
		}(ctxs[i%len(ctxs)])
	}
	wg.Wait()
	close(results)

	ok, conflicts := 0, 0
	for err := range results {
		switch code(err) {
		case codes.OK:
			ok++
		case codes.AlreadyExists:
			conflicts++
		default:
			t.Errorf("unexpected: %v", err)
		}
	}
	if ok != 1 || conflicts != n-1 {
		t.Errorf("expected 1 success and %d conflicts, got %d and %d", n-1, ok, conflicts)
	}
}

// ----- administration -----

func TestCourtAdmin(t *testing.T) {
	e := setup(t)
	admin := e.as(t, "admin")
	alice := e.as(t, "alice")

	types, err := e.client.ListCourtTypes(alice, &pb.Empty{})
	if err != nil || len(types.CourtTypes) != 1 {
		t.Fatalf("court types: %v %+v", err, types)
	}
	typeID := types.CourtTypes[0].Id

	if _, err := e.client.CreateCourt(alice, &pb.Court{CourtTypeId: typeID, Description: "Court 2"}); code(err) != codes.PermissionDenied {
		t.Errorf("user create court: expected PermissionDenied, got %v", err)
	}

	c, err := e.client.CreateCourt(admin, &pb.Court{CourtTypeId: typeID, Description: "Court 2"})
	if err != nil {
		t.Fatalf("create court: %v", err)
	}
	if _, err := e.client.CreateCourt(admin, &pb.Court{CourtTypeId: 99, Description: "Court X"}); code(err) != codes.NotFound {
		t.Errorf("unknown type: expected NotFound, got %v", err)
	}

	c.Description = "Court Two"
	if _, err := e.client.UpdateCourt(admin, c); err != nil {
		t.Fatalf("update court: %v", err)
	}
	courts, err := e.client.ListCourts(alice, &pb.ListCourtsRequest{CourtTypeId: typeID})
	if err != nil {
		t.Fatalf("list courts: %v", err)
	}
	if len(courts.Courts) != 2 || courts.Courts[1].Description != "Court Two" {
		t.Errorf("unexpected courts: %+v", courts.Courts)
	}

	if _, err := e.book(alice, hour(9, 0), hour(10, 0)); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := e.client.DeleteCourt(admin, &pb.DeleteCourtRequest{Id: e.court}); code(err) != codes.FailedPrecondition {
		t.Errorf("delete court in use: expected FailedPrecondition, got %v", err)
	}
	if _, err := e.client.DeleteCourt(admin, &pb.DeleteCourtRequest{Id: c.Id}); err != nil {
		t.Errorf("delete unused court: %v", err)
	}
}

func TestAccountAdmin(t *testing.T) {
	e := setup(t)
	admin := e.as(t, "admin")

	accounts, err := e.client.ListAccounts(admin, &pb.Empty{})
	if err != nil {
		t.Fatalf("list accounts: %v", err)
	}
	var bobID int64
	for _, a := range accounts.Accounts {
		if a.Username == "bob" {
			bobID = a.Id
		}
	}
	if bobID == 0 {
		t.Fatal("bob not listed")
	}

	cr, err := e.client.SetAccountStatus(admin, &pb.SetAccountStatusRequest{AccountId: bobID, Status: "inactive"})
	if err != nil || !cr.Changed {
		t.Fatalf("deactivate: %v %+v", err, cr)
	}
	_, err = e.client.Login(context.Background(), &pb.LoginRequest{Username: "bob", Password: "password1"})
	if code(err) != codes.PermissionDenied {
		t.Errorf("inactive login: expected PermissionDenied, got %v", err)
	}

	if _, err := e.client.SetAccountStatus(admin, &pb.SetAccountStatusRequest{AccountId: bobID, Status: "suspended"}); code(err) != codes.InvalidArgument {
		t.Errorf("bad status: expected InvalidArgument, got %v", err)
	}
	if _, err := e.client.SetAccountStatus(admin, &pb.SetAccountStatusRequest{AccountId: 999, Status: "Active"}); code(err) != codes.NotFound {
		t.Errorf("unknown account: expected NotFound, got %v", err)
	}
}

func TestProvisioning(t *testing.T) {
	e := setup(t)
	admin := e.as(t, "admin")
	alice := e.as(t, "alice")

	dep, err := e.client.CreateDepartment(admin, &pb.Department{Name: "Engineering"})
	if err != nil || dep.Id == 0 {
		t.Fatalf("create department: %v %+v", err, dep)
	}
	ct, err := e.client.CreateCourtType(admin, &pb.CourtType{Description: "Tennis"})
	if err != nil || ct.Id == 0 {
		t.Fatalf("create court type: %v %+v", err, ct)
	}
	if _, err := e.client.CreateCourt(admin, &pb.Court{CourtTypeId: ct.Id, Description: "Tennis 1"}); err != nil {
		t.Fatalf("create court on new type: %v", err)
	}

	acct, err := e.client.CreateAccount(admin, &pb.CreateAccountRequest{
		Username: "dave", Password: "password1", FirstName: "Dave", LastName: "Lim",
		Email: "dave@example.com", Phone: "0123456789", Role: "user", DepartmentId: dep.Id,
	})
	if err != nil {
		t.Fatalf("create account: %v", err)
	}
	if acct.Id == 0 || acct.Role != "user" || acct.Status != "Active" {
		t.Errorf("new account: %+v", acct)
	}

	// the new user can sign in and read their own profile
	me, err := e.client.GetMyAccount(e.as(t, "dave"), &pb.Empty{})
	if err != nil {
		t.Fatalf("get my account: %v", err)
	}
	if me.Id != acct.Id || me.Email != "dave@example.com" || me.Phone != "0123456789" || me.DepartmentId != dep.Id {
		t.Errorf("profile: %+v", me)
	}
	if me, err := e.client.GetMyAccount(alice, &pb.Empty{}); err != nil || me.Username != "alice" {
		t.Errorf("alice profile: %v %+v", err, me)
	}

	tests := []struct {
		name string
		call func() error
		want codes.Code
	}{
		{"user creates department", func() error {
			_, err := e.client.CreateDepartment(alice, &pb.Department{Name: "Sales"})
			return err
		}, codes.PermissionDenied},
		{"user creates court type", func() error {
			_, err := e.client.CreateCourtType(alice, &pb.CourtType{Description: "Squash"})
			return err
		}, codes.PermissionDenied},
		{"user creates account", func() error {
			_, err := e.client.CreateAccount(alice, &pb.CreateAccountRequest{Username: "eve", Password: "password1", FirstName: "Eve", Role: "admin"})
			return err
		}, codes.PermissionDenied},
		{"duplicate username", func() error {
			_, err := e.client.CreateAccount(admin, &pb.CreateAccountRequest{Username: "Dave", Password: "password1", FirstName: "Dave", Role: "user"})
			return err
		}, codes.InvalidArgument},
		{"short password", func() error {
			_, err := e.client.CreateAccount(admin, &pb.CreateAccountRequest{Username: "frank", Password: "short", FirstName: "Frank", Role: "user"})
			return err
		}, codes.InvalidArgument},
		{"unknown role", func() error {
			_, err := e.client.CreateAccount(admin, &pb.CreateAccountRequest{Username: "frank", Password: "password1", FirstName: "Frank", Role: "owner"})
			return err
		}, codes.InvalidArgument},
		{"unknown department", func() error {
			_, err := e.client.CreateAccount(admin, &pb.CreateAccountRequest{Username: "frank", Password: "password1", FirstName: "Frank", Role: "user", DepartmentId: 999})
			return err
		}, codes.NotFound},
		{"empty court type", func() error {
			_, err := e.client.CreateCourtType(admin, &pb.CourtType{})
			return err
		}, codes.InvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := code(tt.call()); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

// stalledCatalog never answers until its context ends.
type stalledCatalog struct {
	handler.Catalog
}

func (stalledCatalog) ListCourtTypes(ctx context.Context) ([]model.CourtType, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (stalledCatalog) AccountByID(ctx context.Context, _ int64) (*model.Account, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestStoreTimeout(t *testing.T) {
	h := handler.New(nil, nil, stalledCatalog{}, zap.NewNop(), handler.WithStoreTimeout(50*time.Millisecond))

	start := time.Now()
	_, err := h.ListCourtTypes(context.Background(), &pb.Empty{})
	if code(err) != codes.Unavailable {
		t.Errorf("list court types: expected Unavailable, got %v", err)
	}
	if time.Since(start) > 2*time.Second {
		t.Errorf("call was not bounded: took %v", time.Since(start))
	}

	ctx := middleware.WithAccount(context.Background(), 7, model.RoleUser)
	if _, err := h.GetMyAccount(ctx, &pb.Empty{}); code(err) != codes.Unavailable {
		t.Errorf("get my account: expected Unavailable, got %v", err)
	}
}
