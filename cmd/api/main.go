package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/stripe/stripe-go/v82"

	"donation/internal/http/handlers"
	httpapi "donation/internal/http/httpapi"
	"donation/internal/infra"
	"donation/internal/providers/checkout"
)

func main() {
	// Load .env (optional)
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	// Stripe client holds the credential; nothing writes the package-global key.
	sc := stripe.NewClient(cfg.StripeSecretKey)
	checkoutClient, err := checkout.NewClient(checkout.Options{
		Sessions:   sc.V1CheckoutSessions,
		SuccessURL: cfg.SuccessURL,
		CancelURL:  cfg.CancelURL,
		Logger:     &logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build checkout client")
	}

	app := handlers.NewApp(checkoutClient, &logger)
	router := httpapi.NewRouter(app, cfg, logger)
	server := infra.NewHTTPServer(cfg, router)

	// Start async
	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && err != os.ErrClosed {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
