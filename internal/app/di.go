package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"google.golang.org/grpc"
	grpchealth "google.golang.org/grpc/health"
	"google.golang.org/grpc/reflection"

	"github.com/ValoreSposi/crm-backend/internal/config"
	repository "github.com/ValoreSposi/crm-backend/internal/repository/mongo"
	healthsvc "github.com/ValoreSposi/crm-backend/internal/service/health"
	service "github.com/ValoreSposi/crm-backend/internal/service/report"
	"github.com/ValoreSposi/crm-backend/internal/transport/grpc/interceptors"
	"github.com/ValoreSposi/crm-backend/internal/transport/http/health"
	thttp "github.com/ValoreSposi/crm-backend/internal/transport/http/report/v1"
	"github.com/ValoreSposi/crm-backend/platform/closer"
	platformhealth "github.com/ValoreSposi/crm-backend/platform/grpc/health"
)

type Store interface {
	service.Store
	health.Pinger
}

type HealthHandler interface {
	Status(w http.ResponseWriter, r *http.Request)
	Health(w http.ResponseWriter, r *http.Request)
}

type ReportHandler interface {
	Routes() chi.Router
}

type HealthProbe interface {
	Run(ctx context.Context) error
}

type di struct {
	mongo *mongo.Client
	store Store

	service       thttp.ReportService
	reportHandler ReportHandler
	healthHandler HealthHandler

	router *chi.Mux

	grpcServer   *grpc.Server
	healthServer *grpchealth.Server
	probe        HealthProbe
}

func NewDI() *di { return &di{} }

func (d *di) MongoDB(_ context.Context) *mongo.Client {
	if d.mongo == nil {
		cfg := config.C()

		mongoClient, err := mongo.Connect(
			options.Client().
				ApplyURI(cfg.Mongo.DSN()).
				SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true}),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create mongodb client: %v\n", err))
		}
		closer.AddNamed("Mongo Client",
			func(ctx context.Context) error {
				return mongoClient.Disconnect(ctx)
			})

		d.mongo = mongoClient
	}

	return d.mongo
}

func (d *di) Store(ctx context.Context) Store {
	if d.store == nil {
		d.store = repository.NewStore(d.MongoDB(ctx), config.C().Mongo.DatabaseName())
	}

	return d.store
}

func (d *di) ReportService(ctx context.Context) thttp.ReportService {
	if d.service == nil {
		d.service = service.NewReportService(
			d.Store(ctx),
			config.C().Collections.Collections(),
			config.C().Server.BDEReadTimeout(),
		)
	}

	return d.service
}

func (d *di) ReportHandler(ctx context.Context) ReportHandler {
	if d.reportHandler == nil {
		d.reportHandler = thttp.NewReportHandler(
			d.ReportService(ctx),
			config.C().App.ExposeErrors(),
		)
	}

	return d.reportHandler
}

func (d *di) HealthHandler(ctx context.Context) HealthHandler {
	if d.healthHandler == nil {
		d.healthHandler = health.NewHealthHandler(d.Store(ctx), health.Info{
			Environment:        config.C().App.Environment(),
			DatabaseConfigured: config.C().Mongo.Configured(),
		})
	}

	return d.healthHandler
}

func (d *di) Router(_ context.Context) *chi.Mux {
	if d.router == nil {
		d.router = chi.NewRouter()
	}

	return d.router
}

func (d *di) GRPCServer(_ context.Context) *grpc.Server {
	if d.grpcServer == nil {
		d.grpcServer = grpc.NewServer(
			grpc.UnaryInterceptor(interceptors.UnaryLogging()),
		)

		reflection.Register(d.grpcServer)

		d.healthServer = platformhealth.RegisterService(d.grpcServer)
	}

	return d.grpcServer
}

func (d *di) HealthServer(ctx context.Context) *grpchealth.Server {
	if d.healthServer == nil {
		d.GRPCServer(ctx)
	}

	return d.healthServer
}

func (d *di) HealthProbe(ctx context.Context) HealthProbe {
	if d.probe == nil {
		d.probe = healthsvc.NewProbe(
			d.Store(ctx),
			d.HealthServer(ctx),
			config.C().GRPC.HealthProbeInterval(),
		)
	}

	return d.probe
}
