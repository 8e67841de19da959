package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	pb "court-reservation-api/api/reservation/v1"
	"court-reservation-api/db"
	"court-reservation-api/internal/auth"
	"court-reservation-api/internal/boltstore"
	"court-reservation-api/internal/config"
	gweb "court-reservation-api/internal/grpcweb"
	"court-reservation-api/internal/handler"
	"court-reservation-api/internal/locks"
	"court-reservation-api/internal/logging"
	"court-reservation-api/internal/middleware"
	"court-reservation-api/internal/reservation"
	"court-reservation-api/internal/store"
)

// backend is what both store implementations provide.
type backend interface {
	reservation.Repository
	handler.Catalog
	auth.AccountStore
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat, cfg.LogFile)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx := context.Background()

	policy, err := cfg.Policy()
	if err != nil {
		return err
	}

	// database
	st, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	if cfg.AdminUsername != "" {
		created, err := auth.EnsureAdmin(ctx, st, cfg.AdminUsername, cfg.AdminPassword)
		if err != nil {
			return fmt.Errorf("bootstrap admin: %w", err)
		}
		if created {
			logger.Info("admin account created", zap.String("username", cfg.AdminUsername))
		}
	}

	// reservation locks: redis when shared across replicas, else in-process
	var locker reservation.Locker = locks.NewKeyedMutex()
	if cfg.RedisURL != "" {
		rdb, err := locks.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			return err
		}
		defer rdb.Close()
		locker = locks.NewRedisLocker(rdb, "reservation-lock:", 30*time.Second)
		logger.Info("using redis reservation locks")
	}

	svc := reservation.NewService(st, locker, policy, logger, reservation.WithTimeout(cfg.StoreTimeout))
	authn := auth.NewAuthenticator(auth.NewBcryptVerifier(st), cfg.JWTSecret, cfg.TokenTTL, logger,
		auth.WithTimeout(cfg.StoreTimeout))
	h := handler.New(svc, authn, st, logger, handler.WithStoreTimeout(cfg.StoreTimeout))

	// grpc server
	rl := middleware.NewRateLimiter(cfg.LoginRPS, cfg.LoginBurst)
	defer rl.Close()
	srv := grpc.NewServer(
		grpc.ForceServerCodec(pb.Codec{}),
		grpc.ChainUnaryInterceptor(
			middleware.Logging(logger),
			middleware.RateLimit(rl),
			middleware.Auth(cfg.JWTSecret),
		),
	)
	pb.RegisterReservationServiceServer(srv, h)

	// start grpc on TCP
	lis, err := net.Listen("tcp", ":"+cfg.Port)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	go func() {
		logger.Info("grpc listening", zap.String("port", cfg.Port))
		if err := srv.Serve(lis); err != nil {
			logger.Error("grpc", zap.Error(err))
		}
	}()

	// grpc-web bridge -> forwards browser requests to grpc on localhost
	bridge, err := gweb.New("localhost:"+cfg.Port, logger)
	if err != nil {
		return err
	}
	defer bridge.Close()

	httpSrv := &http.Server{
		Addr:              ":" + cfg.WebPort,
		Handler:           bridge.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logger.Info("grpc-web listening", zap.String("port", cfg.WebPort))
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http", zap.Error(err))
		}
	}()

	// approved reservations past their end time become Completed
	if cfg.CompletionCron != "" {
		c := cron.New()
		_, err := c.AddFunc(cfg.CompletionCron, func() {
			n, err := svc.CompleteElapsed(context.Background())
			if err != nil {
				logger.Error("complete elapsed", zap.Error(err))
				return
			}
			if n > 0 {
				logger.Info("reservations completed", zap.Int("count", n))
			}
		})
		if err != nil {
			return fmt.Errorf("COMPLETION_CRON: %w", err)
		}
		c.Start()
		defer func() { <-c.Stop().Done() }()
	}

	// graceful shutdown
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("http shutdown", zap.Error(err))
	}
	srv.GracefulStop()
	return nil
}

func openStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (backend, func(), error) {
	if cfg.Store == "bolt" {
		bs, err := boltstore.Open(cfg.BoltPath)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("opened bolt store", zap.String("path", cfg.BoltPath))
		return bs, func() { bs.Close() }, nil
	}

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("db: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("db ping: %w", err)
	}
	logger.Info("connected to postgres")

	// run migrations
	if _, err := pool.Exec(ctx, db.Schema); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("migration: %w", err)
	}
	logger.Info("migration applied")

	return store.New(pool), pool.Close, nil
}
