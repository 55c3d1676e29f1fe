package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/frostal/pkg/clientip"
	"github.com/dmitrymomot/frostal/pkg/config"
	"github.com/dmitrymomot/frostal/pkg/environment"
	"github.com/dmitrymomot/frostal/pkg/httpserver"
	"github.com/dmitrymomot/frostal/pkg/logger"
	"github.com/dmitrymomot/frostal/pkg/requestid"
)

func main() {
	var cfg Config
	config.MustLoad(&cfg)

	log := logger.New(
		logger.WithEnvironment(environment.Parse(cfg.Env), cfg.Name),
		logger.WithContextExtractors(requestid.LoggerExtractor(), clientip.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := NewApp(cfg, log)
	if err != nil {
		log.Error("failed to initialize application", logger.Error(err))
		os.Exit(1)
	}

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	if err := srv.Run(ctx, app.Handler()); err != nil {
		log.Error("server stopped with error", logger.Error(err))
		os.Exit(1)
	}
}
