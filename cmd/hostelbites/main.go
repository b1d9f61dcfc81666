package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"hostelbites/config"
	"hostelbites/internal/delivery"
	"hostelbites/internal/delivery/api"
	"hostelbites/internal/delivery/api/middleware"
	"hostelbites/internal/delivery/api/router/handler"
	"hostelbites/internal/domain/service"
	"hostelbites/internal/infra/auth"
	"hostelbites/internal/infra/cache"
	logs "hostelbites/internal/infra/log"
	"hostelbites/internal/infra/payment"
	"hostelbites/internal/infra/persistence"
	"hostelbites/internal/infra/pubsub"
	"hostelbites/internal/infra/qrcode"
	"hostelbites/internal/usecase/impl"

	"github.com/getsentry/sentry-go"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const sentryFlushTimeout = 2 * time.Second

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			initSentry,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		cache.New,
		pubsub.NewEventPublisher,
		payment.NewGateway,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			persistence.New,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			newIdentityVerifier,
			newQRCodeService,
		),
	)
}

// newIdentityVerifier returns nil when Firebase is not configured.
func newIdentityVerifier(ctx context.Context, cfg *config.Config) (service.IdentityVerifier, error) {
	if cfg.Firebase == nil {
		return nil, nil
	}

	verifier, err := auth.NewFirebaseVerifier(ctx, cfg.Firebase)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firebase identity verifier")
	}

	return verifier, nil
}

// newQRCodeService signs tickets with the access token secret.
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return qrcode.NewQRCodeService(0, "", cfg.SecretKey.Access)
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.SecretKey.Access)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewCatalogService,
			impl.NewPaymentService,
			impl.NewSubscriptionService,
			impl.NewMealRequestService,
			impl.NewReviewService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewCatalogHandler,
			handler.NewPaymentHandler,
			handler.NewReviewHandler,
			handler.NewMealRequestHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// initSentry enables error reporting when a DSN is configured and flushes buffered events on stop.
func initSentry(lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger) error {
	if cfg.Sentry == nil || cfg.Sentry.DSN == "" {
		return nil
	}

	environment := cfg.Sentry.Environment
	if environment == "" {
		environment = cfg.Env.Env
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.Sentry.DSN,
		Environment:      environment,
		ServerName:       cfg.Env.ServiceName,
		EnableTracing:    cfg.Sentry.TracesSampleRate > 0,
		TracesSampleRate: cfg.Sentry.TracesSampleRate,
	}); err != nil {
		return errors.Wrap(err, "failed to initialize sentry")
	}

	logger.Info("Sentry error reporting enabled", slog.String("environment", environment))

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			sentry.Flush(sentryFlushTimeout)

			return nil
		},
	})

	return nil
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
