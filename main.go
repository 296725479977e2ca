package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/tomsarry/content_backend/config"
	"github.com/tomsarry/content_backend/docs"
	"github.com/tomsarry/content_backend/handlers"
	"github.com/tomsarry/content_backend/logger"
	"github.com/tomsarry/content_backend/server"
	"github.com/tomsarry/content_backend/utils"
)

// setup reads the configuration twice: once quietly to pick the log level,
// then again through the configured logger so every source is reported
func setup(out io.Writer) config.Config {
	dotEnvErr := config.LoadDotEnv()
	boot := config.FromLookup(os.LookupEnv, zerolog.Nop())

	logger.Configure(logger.Config{
		Level:   boot.LogLevel,
		Output:  out,
		Service: "content-api",
		Version: boot.Version,
	})

	log := logger.WithComponent("config")
	if dotEnvErr != nil {
		log.Warn().Err(dotEnvErr).Msg("could not read .env file")
	}
	return config.FromLookup(os.LookupEnv, log)
}

func main() {
	cfg := setup(os.Stdout)
	log := logger.WithComponent("main")
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	doc, err := docs.Load(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("could not load api description")
	}

	h := handlers.New(cfg.Version, utils.NewTimeSeededSampler(), utils.DefaultCatalog())
	r := server.NewRouter(cfg, h, doc)

	if err := server.Run(ctx, cfg, r); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
	log.Info().Msg("server stopped")
}
