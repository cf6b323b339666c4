// 账户服务进程，对外提供 account.v1.AccountService，供用例编排服务调用。
package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"

	"usecase-sync/internal/backend"
	confv1 "usecase-sync/internal/conf/v1"
	"usecase-sync/internal/pkg/config"
	logger "usecase-sync/internal/pkg/log"
	"usecase-sync/internal/pkg/otel"
	"usecase-sync/internal/pkg/registry"
	"usecase-sync/internal/server"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

var serviceName = registry.ServiceName("usecase-account")

func main() {
	flag.Parse()

	app := fx.New(fxLogger(), options())

	if err := app.Start(context.Background()); err != nil {
		log.Printf("Failed to start app: %v\n", err)
		os.Exit(1)
	}

	<-app.Done()

	if err := app.Stop(context.Background()); err != nil {
		log.Printf("Failed to stop app gracefully: %v\n", err)
		os.Exit(1)
	}
}

func options() fx.Option {
	return fx.Options(
		config.Module,
		logger.Module,
		otel.Module,
		registry.Module,

		backend.Module,
		server.MiddlewareModule,
		server.BackendModule,

		fx.Supply(serviceName),

		fx.Invoke(
			func(conf *confv1.Bootstrap) error {
				return config.ValidateBackendConfig(conf)
			},
			func(*http.Server) {},
			func(_ *registry.ConsulRegistry) {},
		),
	)
}

// fxLogger 让 fx 自身的启动日志也走 zap
func fxLogger() fx.Option {
	return fx.WithLogger(func(l *zap.Logger) fxevent.Logger {
		return &fxevent.ZapLogger{Logger: l.Named("fx")}
	})
}
