package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/DIMO-Network/server-garage/pkg/env"
	"github.com/DIMO-Network/server-garage/pkg/logging"
	"github.com/DIMO-Network/server-garage/pkg/monserver"
	"github.com/DIMO-Network/server-garage/pkg/runner"
	"github.com/rs/zerolog"
	"github.com/timewall-relay/postback-relay/internal/app"
	"github.com/timewall-relay/postback-relay/internal/config"
	"golang.org/x/sync/errgroup"
)

// @title           Postback Relay
// @version         1.0
// @description     Relays Timewall postbacks to a Telegram group.
//
// @BasePath  /
func main() {
	logger := logging.GetAndSetDefaultLogger("postback-relay")
	mainCtx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	go func() {
		<-mainCtx.Done()
		logger.Info().Msg("Received signal, shutting down...")
		cancel()
	}()

	runnerGroup, runnerCtx := errgroup.WithContext(mainCtx)

	envFile := flag.String("env-file", ".env", "path to env file")
	flag.Parse()

	settings, err := env.LoadSettings[config.Settings](*envFile)
	if err != nil {
		log.Fatalf("could not load settings: %s", err)
	}

	if settings.LogLevel == "" {
		settings.LogLevel = "info"
	}
	level, err := zerolog.ParseLevel(settings.LogLevel)
	if err != nil {
		log.Fatalf("could not parse log level: %s", err)
	}
	zerolog.SetGlobalLevel(level)
	logger = logging.GetAndSetDefaultLogger(settings.ServiceName)

	if settings.MonPort != 0 {
		monApp := monserver.NewMonitoringServer(&logger, settings.EnablePprof)
		logger.Info().Str("port", strconv.Itoa(settings.MonPort)).Msgf("Starting monitoring server")
		runner.RunHandler(runnerCtx, runnerGroup, monApp, ":"+strconv.Itoa(settings.MonPort))
	}

	fiberApp, bot := app.CreateServers(runnerCtx, &settings, logger)
	defer bot.Close()
	logger.Info().Str("port", strconv.Itoa(settings.Port)).Str("endpoint", "/timewall-postback").Msgf("Starting web server")
	runner.RunFiber(runnerCtx, runnerGroup, fiberApp, ":"+strconv.Itoa(settings.Port))

	if err := runnerGroup.Wait(); err != nil {
		logger.Fatal().Err(err).Msg("Server failed.")
	}
	logger.Info().Msg("Server stopped.")
}
