package app

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	"github.com/ValoreSposi/crm-backend/internal/config"
	"github.com/ValoreSposi/crm-backend/internal/transport/http/health"
	crmmw "github.com/ValoreSposi/crm-backend/internal/transport/http/middleware"
	"github.com/ValoreSposi/crm-backend/platform/closer"
	"github.com/ValoreSposi/crm-backend/platform/logger"
)

type app struct {
	di     *di
	server *http.Server
}

func New(ctx context.Context) (*app, error) {
	a := &app{}

	if err := a.init(ctx); err != nil {
		return nil, err
	}

	return a, nil
}

func (a *app) Run(ctx context.Context) error { return a.run(ctx) }

func (a *app) init(ctx context.Context) error {
	inits := []func(context.Context) error{
		a.initConfig,
		a.initLogger,
		a.initCloser,
		a.initDI,
		a.initServer,
		a.initGRPCServer,
	}

	for _, initFn := range inits {
		if err := initFn(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) initConfig(_ context.Context) error {
	return config.Load()
}

func (a *app) initLogger(_ context.Context) error {
	return logger.Init(
		config.C().Logger.Level(),
		config.C().Logger.AsJSON(),
	)
}

func (a *app) initCloser(_ context.Context) error {
	closer.SetLogger(logger.L())
	return nil
}

func (a *app) initDI(_ context.Context) error {
	a.di = NewDI()
	return nil
}

func (a *app) initServer(ctx context.Context) error {
	cfg := config.C()

	r := a.di.Router(ctx)
	r.Use(
		middleware.RequestID,
		crmmw.RequestLogContext,
		middleware.Recoverer,
		middleware.Logger,
		crmmw.CORS(cfg.CORS.AllowedOrigins(), cfg.CORS.Strict()),
	)

	hh := a.di.HealthHandler(ctx)
	r.Get("/", hh.Status)
	r.Get("/api/health", hh.Health)
	r.HandleFunc("/health", health.HealthCheck)

	r.Mount("/api", a.di.ReportHandler(ctx).Routes())

	a.server = &http.Server{
		Addr:              cfg.Server.Address(),
		Handler:           r,
		ReadHeaderTimeout: cfg.Server.ReadTimeout(),
	}
	closer.AddNamed("HTTP Server", a.server.Shutdown)

	return nil
}

func (a *app) initGRPCServer(ctx context.Context) error {
	s := a.di.GRPCServer(ctx)
	closer.AddNamed("gRPC Server", func(context.Context) error {
		s.GracefulStop()
		return nil
	})
	return nil
}

func (a *app) run(ctx context.Context) error {
	defer gracefulShutdown()

	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		logger.Info(egCtx,
			"🚀 report server listening",
			logger.String("address", config.C().Server.Address()),
			logger.String("environment", config.C().App.Environment()),
			logger.Bool("database_configured", config.C().Mongo.Configured()),
		)
		err := a.server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	})

	eg.Go(func() error {
		lis, err := net.Listen("tcp", config.C().GRPC.Address())
		if err != nil {
			return err
		}

		logger.Info(egCtx,
			"🚀 gRPC admin server listening",
			logger.String("address", config.C().GRPC.Address()),
		)
		err = a.di.GRPCServer(egCtx).Serve(lis)
		if err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return err
		}

		return nil
	})

	eg.Go(func() error {
		return a.di.HealthProbe(egCtx).Run(egCtx)
	})

	eg.Go(func() error {
		<-egCtx.Done()
		gracefulShutdown()
		return nil
	})

	if err := eg.Wait(); err != nil {
		return err
	}
	return nil
}

//nolint:contextcheck
func gracefulShutdown() {
	ctx, cancel := context.WithTimeout(
		context.Background(), // do not inherit cancellation from ctx
		config.C().Server.ShutdownTimeout(),
	)
	defer cancel()

	err := closer.CloseAll(ctx)
	if err != nil {
		logger.Error(ctx, "❌ Error during server shutdown", logger.ErrorF(err))
		logger.Error(ctx, "❌😵‍💫 Server stopped")
		return
	}
	logger.Info(ctx, "✅ Server stopped")
}
