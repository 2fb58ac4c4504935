package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"fixly/config"
	"fixly/internal/delivery"
	"fixly/internal/delivery/http"
	"fixly/internal/delivery/http/middleware"
	"fixly/internal/delivery/http/router/handler"
	"fixly/internal/domain/service"
	"fixly/internal/infra/identity"
	logs "fixly/internal/infra/log"
	"fixly/internal/infra/persistence/postgres"
	"fixly/internal/infra/pubsub"
	"fixly/internal/infra/qrcode"
	"fixly/internal/usecase/impl"

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
			postgres.NewClientRepository,
			postgres.NewWorkerRepository,
			postgres.NewServiceRepository,
			postgres.NewFeedbackRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newIdentityProvider,
			pubsub.NewEventPublisher,
			newQRCodeService,
		),
	)
}

// newIdentityProvider creates the Firebase-backed identity provider
func newIdentityProvider(ctx context.Context, cfg *config.Config) (service.IdentityProvider, error) {
	provider, err := identity.NewFirebaseProvider(ctx, cfg.Firebase)
	if err != nil {
		return nil, fmt.Errorf("failed to create identity provider: %w", err)
	}

	return provider, nil
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M", "")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewRegistrationService,
			impl.NewProfileService,
			impl.NewFeedbackService,
			impl.NewCatalogService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewCategoryHandler,
			handler.NewWorkerHandler,
			handler.NewAdminHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
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
				os.Exit(1)
			}
		}()
	}
}
