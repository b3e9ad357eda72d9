package main

import (
	"context"
	"log/slog"
	"os"

	"sweets/config"
	"sweets/internal/delivery"
	"sweets/internal/delivery/api"
	"sweets/internal/delivery/api/middleware"
	"sweets/internal/delivery/api/router/handler"
	"sweets/internal/infra/auth"
	logs "sweets/internal/infra/log"
	"sweets/internal/infra/persistence/postgres"
	"sweets/internal/infra/pubsub"
	"sweets/internal/infra/qrcode"
	"sweets/internal/infra/storage"
	"sweets/internal/usecase"
	"sweets/internal/usecase/impl"

	"go.uber.org/fx"
)

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
			ensureAdmin,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewAuthRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewTransactionManager,
			postgres.NewDeviceRepository,
			postgres.NewCatalogRepository,
			postgres.NewCartRepository,
			postgres.NewOrderRepository,
			postgres.NewPaymentProofRepository,
			postgres.NewSecureLinkRepository,
			postgres.NewReviewRepository,
			postgres.NewComplaintRepository,
			postgres.NewChatRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			qrcode.NewQRCodeServiceFromConfig,
			storage.NewBlobStorage,
			pubsub.NewEventPublisher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAccessGate,
			impl.NewUserService,
			impl.NewCatalogService,
			impl.NewCartService,
			impl.NewOrderService,
			impl.NewPaymentService,
			impl.NewSecureLinkService,
			impl.NewReviewService,
			impl.NewComplaintService,
			impl.NewChatService,
			impl.NewAdminService,
			impl.NewDeviceService,
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
			handler.NewCartHandler,
			handler.NewOrderHandler,
			handler.NewPaymentHandler,
			handler.NewSecureLinkHandler,
			handler.NewReviewHandler,
			handler.NewComplaintHandler,
			handler.NewChatHandler,
			handler.NewAdminHandler,
			handler.NewDeviceHandler,
			handler.NewMediaHandler,
			handler.NewTestHandler,
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

// ensureAdmin creates the configured administrator before the API accepts traffic.
func ensureAdmin(lc fx.Lifecycle, userUC usecase.UserUsecase) {
	lc.Append(fx.Hook{
		OnStart: userUC.EnsureAdmin,
	})
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
