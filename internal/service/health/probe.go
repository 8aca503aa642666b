package health

import (
	"context"
	"time"

	"google.golang.org/grpc/health/grpc_health_v1"

	"github.com/ValoreSposi/crm-backend/platform/logger"
)

// ServiceName is the gRPC health service name of the report API.
const ServiceName = "crm.report.v1.ReportService"

type Pinger interface {
	Ping(ctx context.Context) error
}

type StatusSetter interface {
	SetServingStatus(service string, status grpc_health_v1.HealthCheckResponse_ServingStatus)
}

type probe struct {
	pinger   Pinger
	status   StatusSetter
	interval time.Duration
	timeout  time.Duration
}

func NewProbe(pinger Pinger, status StatusSetter, interval time.Duration) *probe {
	timeout := interval / 2
	if timeout <= 0 || timeout > 5*time.Second {
		timeout = 5 * time.Second
	}
	return &probe{pinger: pinger, status: status, interval: interval, timeout: timeout}
}

// Run checks the database right away and then on every tick until ctx is
// done. A failed check marks the report service NOT_SERVING; it never stops
// the loop.
func (p *probe) Run(ctx context.Context) error {
	up := p.check(ctx)
	if up {
		logger.Info(ctx, "database connection succeeded")
	} else {
		logger.Warn(ctx, "database unreachable at startup, reports will fail until it recovers")
	}

	if p.interval <= 0 {
		<-ctx.Done()
		return nil
	}

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.status.SetServingStatus(ServiceName, grpc_health_v1.HealthCheckResponse_NOT_SERVING)
			return nil
		case <-ticker.C:
			now := p.check(ctx)
			if now != up {
				logger.Info(ctx, "database status changed", logger.Bool("up", now))
			}
			up = now
		}
	}
}

func (p *probe) check(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	if err := p.pinger.Ping(ctx); err != nil {
		logger.Debug(ctx, "database ping failed", logger.ErrorF(err))
		p.status.SetServingStatus(ServiceName, grpc_health_v1.HealthCheckResponse_NOT_SERVING)
		return false
	}

	p.status.SetServingStatus(ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)
	return true
}
