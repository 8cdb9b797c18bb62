package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"

	"github.com/openfms/device-mgmt/internal/pkg/application/devicemanagement"
	"github.com/openfms/device-mgmt/internal/pkg/infrastructure/router"
	"github.com/openfms/device-mgmt/internal/pkg/infrastructure/storage"
	"github.com/openfms/device-mgmt/internal/pkg/presentation/api"
)

const serviceName string = "device-mgmt"

var policiesFilePath string
var seedFilePath string

func main() {
	flag.StringVar(&policiesFilePath, "policies", "/opt/openfms/config/authz.rego", "an authorization policy file")
	flag.StringVar(&seedFilePath, "seed", "", "an optional seed file with device types to create on startup")
	flag.Parse()

	serviceVersion := buildinfo.SourceVersion()
	ctx, logger, cleanup := o11y.Init(context.Background(), serviceName, serviceVersion, "json")
	defer cleanup()

	dbCfg := storage.NewConfig(
		env.GetVariableOrDefault(ctx, "POSTGRES_HOST", ""),
		env.GetVariableOrDefault(ctx, "POSTGRES_USER", ""),
		env.GetVariableOrDefault(ctx, "POSTGRES_PASSWORD", ""),
		env.GetVariableOrDefault(ctx, "POSTGRES_PORT", "5432"),
		env.GetVariableOrDefault(ctx, "POSTGRES_DBNAME", "openfms"),
		env.GetVariableOrDefault(ctx, "POSTGRES_SSLMODE", "disable"),
	)

	s, err := storage.New(ctx, dbCfg)
	exitIf(err, logger, "could not connect to database")
	defer s.Close()

	err = s.Initialize(ctx)
	exitIf(err, logger, "could not initialize database")

	messenger, err := messaging.Initialize(ctx, messaging.LoadConfiguration(ctx, serviceName, logger))
	exitIf(err, logger, "failed to init messenger")
	messenger.Start()
	defer messenger.Close()

	svc := devicemanagement.New(s, messenger)

	if seedFilePath != "" {
		seedFile, err := os.Open(seedFilePath)
		exitIf(err, logger, "could not open seed file")

		seedCfg, err := devicemanagement.NewSeedConfig(seedFile)
		exitIf(err, logger, "could not parse seed file")

		err = devicemanagement.SeedDeviceTypes(ctx, svc, s, seedCfg)
		exitIf(err, logger, "could not seed device types")
	}

	policies, err := os.Open(policiesFilePath)
	exitIf(err, logger, "unable to open opa policy file")
	defer policies.Close()

	allowedOrigins := strings.Split(env.GetVariableOrDefault(ctx, "CORS_ALLOWED_ORIGINS", "*"), ",")

	r, err := api.RegisterHandlers(ctx, router.New(serviceName, allowedOrigins...), policies, svc)
	exitIf(err, logger, "failed to register handlers")

	apiPort := env.GetVariableOrDefault(ctx, "SERVICE_PORT", "8080")

	webServer := &http.Server{
		Addr:    ":" + apiPort,
		Handler: r,
		BaseContext: func(l net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("starting to listen for incoming connections", slog.String("port", apiPort))

		err := webServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			exitIf(err, logger, "web server stopped unexpectedly")
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err = webServer.Shutdown(shutdownCtx)
	if err != nil {
		logging.GetFromContext(ctx).Error("graceful shutdown failed", "err", err.Error())
	}
}

func exitIf(err error, logger *slog.Logger, msg string, args ...any) {
	if err != nil {
		logger.With(args...).Error(msg, "err", err.Error())
		time.Sleep(2 * time.Second)
		os.Exit(1)
	}
}
