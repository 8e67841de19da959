package grpcweb

import (
	"bytes"
	"context"
	"encoding/binary"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/test/bufconn"

	pb "court-reservation-api/api/reservation/v1"
	"court-reservation-api/internal/middleware"
)

type courtTypes struct {
	pb.UnimplementedReservationServiceServer
}

func (courtTypes) ListCourtTypes(context.Context, *pb.Empty) (*pb.ListCourtTypesResponse, error) {
	return &pb.ListCourtTypesResponse{CourtTypes: []*pb.CourtType{{Id: 1, Description: "Badminton"}}}, nil
}

func bridge(t *testing.T) *Bridge {
	t.Helper()
	lis := bufconn.Listen(1 << 16)
	srv := grpc.NewServer(grpc.ForceServerCodec(pb.Codec{}))
	pb.RegisterReservationServiceServer(srv, courtTypes{})
	go srv.Serve(lis)
	t.Cleanup(srv.Stop)

	b, err := New("passthrough:///bufnet", zap.NewNop(),
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}))
	require.NoError(t, err)
	t.Cleanup(func() { b.Close() })
	return b
}

type webFrame struct {
	flag byte
	data []byte
}

func frames(t *testing.T, body []byte) []webFrame {
	t.Helper()
	var out []webFrame
	for len(body) > 0 {
		require.GreaterOrEqual(t, len(body), 5)
		n := int(binary.BigEndian.Uint32(body[1:5]))
		out = append(out, webFrame{flag: body[0], data: body[5 : 5+n]})
		body = body[5+n:]
	}
	return out
}

func post(b *Bridge, path string, body []byte) *httptest.ResponseRecorder {
	return postFrom(b, path, body, "192.0.2.1:1234")
}

func postFrom(b *Bridge, path string, body []byte, remote string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/grpc-web+proto")
	req.RemoteAddr = remote
	rec := httptest.NewRecorder()
	b.Handler().ServeHTTP(rec, req)
	return rec
}

func TestForward(t *testing.T) {
	b := bridge(t)

	rec := post(b, pb.ReservationService_ListCourtTypes_FullMethodName, frame(0x00, nil))
	require.Equal(t, http.StatusOK, rec.Code)
	fs := frames(t, rec.Body.Bytes())
	require.Len(t, fs, 2)
	assert.Equal(t, byte(0x00), fs[0].flag)
	assert.Equal(t, "grpc-status:0\r\n", string(fs[1].data))

	var resp pb.ListCourtTypesResponse
	require.NoError(t, pb.Codec{}.Unmarshal(fs[0].data, &resp))
	require.Len(t, resp.CourtTypes, 1)
	assert.Equal(t, "Badminton", resp.CourtTypes[0].Description)
}

func TestForwardError(t *testing.T) {
	b := bridge(t)

	rec := post(b, pb.ReservationService_ListCourts_FullMethodName, frame(0x00, nil))
	fs := frames(t, rec.Body.Bytes())
	require.Len(t, fs, 1)
	assert.Equal(t, byte(0x80), fs[0].flag)
	assert.Contains(t, string(fs[0].data), "grpc-status:12\r\n")

	rec = post(b, pb.ReservationService_ListCourts_FullMethodName, []byte{0, 0})
	fs = frames(t, rec.Body.Bytes())
	require.Len(t, fs, 1)
	assert.Contains(t, string(fs[0].data), "grpc-status:3\r\n")
}

func TestRejectsNonGrpcWeb(t *testing.T) {
	b := bridge(t)

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	b.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(nil))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	b.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	rec = httptest.NewRecorder()
	b.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestLoginLimitedPerBrowser(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	rl := middleware.NewRateLimiter(0.001, 1)
	defer rl.Close()
	srv := grpc.NewServer(grpc.ForceServerCodec(pb.Codec{}), grpc.UnaryInterceptor(middleware.RateLimit(rl)))
	pb.RegisterReservationServiceServer(srv, courtTypes{})
	go srv.Serve(lis)
	defer srv.Stop()

	b, err := New(lis.Addr().String(), zap.NewNop())
	require.NoError(t, err)
	defer b.Close()

	login := func(remote string) string {
		rec := postFrom(b, pb.ReservationService_Login_FullMethodName, frame(0x00, nil), remote)
		fs := frames(t, rec.Body.Bytes())
		require.NotEmpty(t, fs)
		return string(fs[len(fs)-1].data)
	}

	// Login is not implemented by the stub, so an admitted call ends in 12
	assert.Contains(t, login("203.0.113.1:40000"), "grpc-status:12\r\n")
	assert.Contains(t, login("203.0.113.1:40001"), "grpc-status:8\r\n")
	assert.Contains(t, login("198.51.100.7:40000"), "grpc-status:12\r\n")
}
