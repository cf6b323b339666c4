package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"

	"usecase-sync/internal/biz"
	confv1 "usecase-sync/internal/conf/v1"
	"usecase-sync/internal/data"
	"usecase-sync/internal/pkg/config"
	logger "usecase-sync/internal/pkg/log"
	"usecase-sync/internal/pkg/otel"
	"usecase-sync/internal/pkg/registry"
	"usecase-sync/internal/server"
	"usecase-sync/internal/service"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

var serviceName = registry.ServiceName("usecase-sync")

func main() {
	flag.Parse()

	fxApp := NewApp()

	// 启动应用
	if err := fxApp.Start(context.Background()); err != nil {
		log.Printf("Failed to start app: %v\n", err)
		os.Exit(1)
	}

	// 等待中断信号
	<-fxApp.Done()

	// 优雅关闭
	if err := fxApp.Stop(context.Background()); err != nil {
		log.Printf("Failed to stop app gracefully: %v\n", err)
		os.Exit(1)
	}
}

// NewApp 创建并配置 FX 应用
func NewApp() *fx.App {
	return fx.New(fxLogger(), options())
}

func options() fx.Option {
	return fx.Options(
		// 提供基础模块
		config.Module,
		logger.Module,
		otel.Module,
		registry.Module,

		// 注入业务模块（按依赖顺序）
		data.Module,
		biz.Module,
		service.Module,
		server.MiddlewareModule, // 中间件模块需要在服务器模块之前
		server.Module,

		fx.Supply(serviceName),

		fx.Invoke(
			// 验证配置完整性
			func(conf *confv1.Bootstrap) error {
				return config.ValidateConfig(conf)
			},

			// 启动 HTTP 服务器
			func(*http.Server) {},

			// 服务器开始监听后再注册到注册中心
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
