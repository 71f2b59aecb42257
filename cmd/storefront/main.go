package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"storefront/config"
	"storefront/internal/delivery"
	"storefront/internal/delivery/http"
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/domain/service"
	"storefront/internal/infra/api"
	"storefront/internal/infra/auth"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/persistence/localfile"
	"storefront/internal/infra/qrcode"
	"storefront/internal/usecase"
	"storefront/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	command, args := os.Args[1], os.Args[2:]

	if command == "listen" {
		runListener()

		return
	}

	runCommand(command, args)
}

// runListener serves the payment-return endpoints until interrupted.
func runListener() {
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

// runCommand builds the application graph, runs one storefront operation,
// and tears the graph down again.
func runCommand(command string, args []string) {
	var app cliApp
	fxApp := fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		fx.NopLogger,
		fx.Populate(
			&app.cfg,
			&app.logger,
			&app.users,
			&app.session,
			&app.cart,
			&app.catalog,
			&app.checkout,
			&app.orders,
		),
	)

	ctx := context.Background()

	startCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()
	if err := fxApp.Start(startCtx); err != nil {
		fmt.Fprintln(os.Stderr, "storefront:", err)
		os.Exit(1)
	}
	defer func() {
		stopCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
		defer cancel()
		_ = fxApp.Stop(stopCtx)
	}()

	if err := app.dispatch(ctx, command, args); err != nil {
		app.report(ctx, err)
		os.Exit(1)
	}
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		api.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			localfile.NewGuestCartRepository,
			localfile.NewCredentialRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTDecoder,
			newQRCodeService,
			api.NewAuthGateway,
			api.NewCatalogGateway,
			api.NewCartGateway,
			api.NewAddressGateway,
			api.NewCheckoutGateway,
			api.NewOrderGateway,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewUserService,
			impl.NewCartService,
			impl.NewCatalogService,
			impl.NewCheckoutService,
			impl.NewOrderService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPaymentHandler,
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

// cliApp carries everything a single command dispatch needs.
type cliApp struct {
	cfg      *config.Config
	logger   *slog.Logger
	users    usecase.UserUsecase
	session  usecase.SessionUsecase
	cart     usecase.CartUsecase
	catalog  usecase.CatalogUsecase
	checkout usecase.CheckoutUsecase
	orders   usecase.OrderUsecase
}
