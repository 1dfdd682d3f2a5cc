package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"agrinet/config"
	"agrinet/internal/delivery"
	"agrinet/internal/delivery/api"
	"agrinet/internal/delivery/api/middleware"
	"agrinet/internal/delivery/api/router/handler"
	"agrinet/internal/domain/service"
	"agrinet/internal/infra/auth"
	"agrinet/internal/infra/cache"
	logs "agrinet/internal/infra/log"
	"agrinet/internal/infra/metrics"
	"agrinet/internal/infra/persistence/postgres"
	"agrinet/internal/infra/pubsub"
	"agrinet/internal/infra/qrcode"
	"agrinet/internal/infra/ratelimit"
	"agrinet/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

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
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		metrics.New,
		func(m *metrics.Metrics) service.MetricsRecorder { return m },
		fx.Annotate(
			func(m *metrics.Metrics) http.Handler { return m.Handler() },
			fx.ResultTags(`name:"metrics"`),
		),
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewProfileRepository,
			postgres.NewFollowRepository,
			postgres.NewConversationRepository,
			postgres.NewMessageRepository,
			postgres.NewNotificationRepository,
			postgres.NewSubmissionRepository,
			postgres.NewDeviceRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			qrcode.NewQRCodeService,
			pubsub.NewEventPublisher,
			cache.NewUnreadCounter,
			ratelimit.NewSendLimiter,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewProfileService,
			impl.NewFollowService,
			impl.NewNotificationService,
			impl.NewConversationService,
			impl.NewReviewService,
			impl.NewDeviceService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewProfileHandler,
			handler.NewFollowHandler,
			handler.NewConversationHandler,
			handler.NewNotificationHandler,
			handler.NewSubmissionHandler,
			handler.NewDeviceHandler,
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

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
