package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/TemirB/internetmarke/internal/application/orchestrator"
	"github.com/TemirB/internetmarke/internal/cache"
	"github.com/TemirB/internetmarke/internal/config"
	"github.com/TemirB/internetmarke/internal/domain"
	"github.com/TemirB/internetmarke/internal/events"
	"github.com/TemirB/internetmarke/internal/rpcclient"
	"github.com/TemirB/internetmarke/internal/session"
)

const (
	exitError    = 1
	exitRejected = 2
)

func usage() {
	fmt.Fprintln(os.Stderr, `usage: voucherctl <command> [flags]

commands:
  formats                      list page formats
  preview  -product -layout -format
  order-id                     create a shop order id
  checkout -product ... -layout -total [-order-id] [-page-format] [-format]
  retrieve -order-id`)
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(exitError)
	}
	os.Exit(execute(os.Args[1], os.Args[2:]))
}

func execute(cmd string, args []string) int {
	cfg := config.Load()

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := rpcclient.New(rpcclient.Config{
		BaseURL:   cfg.Remote.BaseURL,
		PartnerID: cfg.Remote.PartnerID,
		Timeout:   cfg.Remote.Timeout,
	}, nil, logger)

	orch := orchestrator.New(
		client,
		cache.NewPageFormats(cfg.Reference.CacheTTL, nil),
		session.New(domain.Credentials{Username: cfg.User.Username, Password: cfg.User.Password}),
		orchestrator.Config{DefaultPageFormat: cfg.Reference.DefaultPageFormat},
		logger,
		nil,
	)

	var publisher events.Publisher = events.Noop{}
	if len(cfg.Kafka.Brokers) > 0 {
		publisher = events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, logger)
	}
	defer publisher.Close()

	ok, err := orch.Authenticate(ctx)
	if err != nil {
		logger.Error("Authentication failed", zap.Error(err))
		return exitError
	}
	if !ok {
		logger.Error("Credentials rejected", zap.String("user", cfg.User.Username))
		return exitRejected
	}

	a := &app{
		orch:      orch,
		publisher: publisher,
		out:       os.Stdout,
		logger:    logger,
		now:       time.Now,
	}
	if err := a.run(ctx, cmd, args); err != nil {
		logger.Error("Command failed", zap.String("command", cmd), zap.Error(err))
		if errors.Is(err, errUsage) {
			usage()
		}
		return exitError
	}
	return 0
}

func newLogger(level string) (*zap.Logger, error) {
	if level == "debug" {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	cfg.Level = lvl
	return cfg.Build()
}
