package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"usecase-sync/api/account/v1/accountv1connect"
	"usecase-sync/api/check/v1/checkv1connect"
	"usecase-sync/api/usecase/v1/usecasev1connect"
	conf "usecase-sync/internal/conf/v1"

	"connectrpc.com/connect"
	connectcors "connectrpc.com/cors"
	"connectrpc.com/otelconnect"
	"github.com/rs/cors"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

const defaultAddr = ":8080"

// Module 用例编排服务
var Module = fx.Module("server",
	fx.Provide(
		NewHTTPServer,
	),
)

// BackendModule 账户服务
var BackendModule = fx.Module("server.backend",
	fx.Provide(
		NewBackendHTTPServer,
	),
)

// route 一个 Connect 服务挂载点
type route struct {
	path    string
	handler http.Handler
}

// handlerOptions 所有服务共用的 Connect 拦截器
func handlerOptions(connectInterceptor connect.UnaryInterceptorFunc) (connect.HandlerOption, error) {
	otelInterceptor, err := otelconnect.NewInterceptor(
		otelconnect.WithoutServerPeerAttributes(),
	)
	if err != nil {
		return nil, err
	}
	return connect.WithInterceptors(otelInterceptor, connectInterceptor), nil
}

// newHandler 创建处理器链：监控中间件 -> CORS -> HTTP/2
func newHandler(routes []route, monitoringMiddleware func(http.Handler) http.Handler) http.Handler {
	mux := http.NewServeMux()
	for _, r := range routes {
		mux.Handle(r.path, r.handler)
	}

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   connectcors.AllowedMethods(),
		AllowedHeaders:   connectcors.AllowedHeaders(),
		ExposedHeaders:   append(connectcors.ExposedHeaders(), "X-Endpoint-Status"),
		MaxAge:           7200,
		AllowCredentials: false,
	})

	return h2c.NewHandler(monitoringMiddleware(corsHandler.Handler(mux)), &http2.Server{})
}

func listenAddr(cfg *conf.Bootstrap) string {
	if cfg == nil || cfg.Server == nil || cfg.Server.Http == nil || cfg.Server.Http.Addr == "" {
		return defaultAddr
	}
	return cfg.Server.Http.Addr
}

// newServer 创建 http.Server 并注册生命周期钩子，端口在 OnStart 中同步监听
func newServer(lc fx.Lifecycle, addr string, handler http.Handler, logger *zap.Logger) *http.Server {
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", addr)
			if err != nil {
				return err
			}
			logger.Info("HTTP server starting", zap.String("addr", ln.Addr().String()))
			go func() {
				if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("HTTP server stopped unexpectedly", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("HTTP server shutting down...")
			return server.Shutdown(ctx)
		},
	})

	return server
}

// NewHTTPServer 对外提供 usecase.v1.UseCaseService 与健康检查
func NewHTTPServer(
	lc fx.Lifecycle,
	cfg *conf.Bootstrap,
	useCaseService usecasev1connect.UseCaseServiceHandler,
	checkService checkv1connect.CheckServiceHandler,
	logger *zap.Logger,
	monitoringMiddleware func(http.Handler) http.Handler,
	connectInterceptor connect.UnaryInterceptorFunc,
) (*http.Server, error) {
	opts, err := handlerOptions(connectInterceptor)
	if err != nil {
		return nil, err
	}

	useCasePath, useCaseHandler := usecasev1connect.NewUseCaseServiceHandler(useCaseService, opts)
	checkPath, checkHandler := checkv1connect.NewCheckServiceHandler(checkService, opts)

	handler := newHandler([]route{
		{path: useCasePath, handler: useCaseHandler},
		{path: checkPath, handler: checkHandler},
	}, monitoringMiddleware)

	return newServer(lc, listenAddr(cfg), handler, logger), nil
}

// NewBackendHTTPServer 对外提供 account.v1.AccountService
func NewBackendHTTPServer(
	lc fx.Lifecycle,
	cfg *conf.Bootstrap,
	accountService accountv1connect.AccountServiceHandler,
	logger *zap.Logger,
	monitoringMiddleware func(http.Handler) http.Handler,
	connectInterceptor connect.UnaryInterceptorFunc,
) (*http.Server, error) {
	opts, err := handlerOptions(connectInterceptor)
	if err != nil {
		return nil, err
	}

	accountPath, accountHandler := accountv1connect.NewAccountServiceHandler(accountService, opts)
	handler := newHandler([]route{{path: accountPath, handler: accountHandler}}, monitoringMiddleware)

	return newServer(lc, listenAddr(cfg), handler, logger), nil
}
