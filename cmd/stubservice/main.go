package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"go.uber.org/zap"

	"github.com/TemirB/internetmarke/internal/config"
	"github.com/TemirB/internetmarke/internal/observability"
	"github.com/TemirB/internetmarke/internal/stubservice"
)

func main() {
	cfg := config.LoadStub()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	fx, err := stubservice.LoadFixture(cfg.Stub.Fixture)
	if err != nil {
		logger.Fatal("Can't load fixture", zap.String("path", cfg.Stub.Fixture), zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	metrics := observability.NewPrometheus("voucher_stub")
	srv := stubservice.New(fx, "http://localhost"+stubHostPort(cfg.Stub.Addr), logger, metrics, metrics.Handler())

	if err := srv.ListenAndServe(ctx, cfg.Stub.Addr); err != nil {
		logger.Error("Stub service stopped", zap.Error(err))
		return
	}
	logger.Info("Stub service stopped")
}

// stubHostPort turns a listen address like ":8090" into the port suffix used
// in generated links.
func stubHostPort(addr string) string {
	if i := strings.LastIndex(addr, ":"); i >= 0 {
		return addr[i:]
	}
	return ""
}
