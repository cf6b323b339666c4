package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"usecase-sync/api/check/v1/checkv1connect"

	"connectrpc.com/connect"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const instrumentationName = "usecase-sync/internal/server"

// Metrics HTTP 与 RPC 共用的监控指标
type Metrics struct {
	requestCounter  metric.Int64Counter
	requestDuration metric.Float64Histogram
	errorCounter    metric.Int64Counter
}

// NewMetrics 从全局 MeterProvider 创建指标，需在 OTel SDK 初始化之后调用
func NewMetrics() (*Metrics, error) {
	meter := otel.GetMeterProvider().Meter(instrumentationName)

	requestCounter, err := meter.Int64Counter(
		"http.server.request.count",
		metric.WithDescription("HTTP 请求总数"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create request counter: %w", err)
	}

	requestDuration, err := meter.Float64Histogram(
		"http.server.request.duration",
		metric.WithDescription("HTTP 请求耗时"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create request duration histogram: %w", err)
	}

	errorCounter, err := meter.Int64Counter(
		"http.server.error.count",
		metric.WithDescription("HTTP 错误总数"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create error counter: %w", err)
	}

	return &Metrics{
		requestCounter:  requestCounter,
		requestDuration: requestDuration,
		errorCounter:    errorCounter,
	}, nil
}

// MonitoringMiddleware 监控中间件
func MonitoringMiddleware(m *Metrics, logger *zap.Logger) func(http.Handler) http.Handler {
	tracer := otel.GetTracerProvider().Tracer(instrumentationName)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			startTime := time.Now()

			ctx, span := tracer.Start(r.Context(), fmt.Sprintf("%s %s", r.Method, r.URL.Path))
			defer span.End()

			span.SetAttributes(
				attribute.String("http.method", r.Method),
				attribute.String("http.route", r.URL.Path),
				attribute.String("http.user_agent", r.UserAgent()),
				attribute.String("http.host", r.Host),
			)

			// 包装 ResponseWriter 来捕获状态码
			ww := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(ww, r.WithContext(ctx))

			elapsed := time.Since(startTime)
			attributes := metric.WithAttributes(
				attribute.String("http.method", r.Method),
				attribute.String("http.route", r.URL.Path),
				attribute.Int("http.status_code", ww.statusCode),
			)
			m.requestCounter.Add(ctx, 1, attributes)
			m.requestDuration.Record(ctx, float64(elapsed.Milliseconds()), attributes)
			span.SetAttributes(attribute.Int("http.status_code", ww.statusCode))

			fields := []zap.Field{
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.statusCode),
				zap.Duration("duration", elapsed),
			}
			if ww.statusCode >= 400 {
				m.errorCounter.Add(ctx, 1, attributes)
				span.SetStatus(codes.Error, http.StatusText(ww.statusCode))
				logger.Warn("HTTP request error", append(fields, zap.String("user_agent", r.UserAgent()))...)
				return
			}
			span.SetStatus(codes.Ok, "OK")
			if r.URL.Path == checkv1connect.CheckServiceReadyProcedure {
				logger.Debug("HTTP request completed", fields...)
				return
			}
			logger.Info("HTTP request completed", fields...)
		})
	}
}

// splitProcedure 将 /pkg.Service/Method 拆分为服务名与方法名
func splitProcedure(procedure string) (string, string) {
	service, method, ok := strings.Cut(strings.TrimPrefix(procedure, "/"), "/")
	if !ok {
		return procedure, ""
	}
	return service, method
}

// ConnectMonitoringInterceptor Connect 专用的监控拦截器
func ConnectMonitoringInterceptor(m *Metrics, logger *zap.Logger) connect.UnaryInterceptorFunc {
	tracer := otel.GetTracerProvider().Tracer(instrumentationName)

	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			startTime := time.Now()
			service, method := splitProcedure(req.Spec().Procedure)

			ctx, span := tracer.Start(ctx, req.Spec().Procedure)
			defer span.End()

			span.SetAttributes(
				attribute.String("rpc.system", "connect"),
				attribute.String("rpc.service", service),
				attribute.String("rpc.method", method),
				attribute.String("rpc.peer", req.Peer().Addr),
			)

			resp, err := next(ctx, req)

			elapsed := time.Since(startTime)
			code := "ok"
			if err != nil {
				code = connect.CodeOf(err).String()
			}
			attributes := metric.WithAttributes(
				attribute.String("rpc.service", service),
				attribute.String("rpc.method", method),
				attribute.String("rpc.connect_rpc.error_code", code),
			)
			m.requestCounter.Add(ctx, 1, attributes)
			m.requestDuration.Record(ctx, float64(elapsed.Milliseconds()), attributes)

			if err != nil {
				m.errorCounter.Add(ctx, 1, attributes)
				span.SetStatus(codes.Error, err.Error())
				logger.Warn("RPC request failed",
					zap.String("service", service),
					zap.String("method", method),
					zap.String("code", code),
					zap.Duration("duration", elapsed),
					zap.Error(err),
				)
				return resp, err
			}

			span.SetStatus(codes.Ok, "OK")
			logger.Debug("RPC request completed",
				zap.String("service", service),
				zap.String("method", method),
				zap.Duration("duration", elapsed),
			)
			return resp, nil
		}
	}
}

// responseWriter 包装 http.ResponseWriter 来捕获状态码
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func (rw *responseWriter) WriteHeader(code int) {
	if !rw.written {
		rw.statusCode = code
		rw.written = true
		rw.ResponseWriter.WriteHeader(code)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.statusCode = http.StatusOK
		rw.written = true
	}
	return rw.ResponseWriter.Write(b)
}

// Flush 流式响应需要透传
func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// MiddlewareModule 提供 Fx 模块
var MiddlewareModule = fx.Module("server.middleware",
	fx.Provide(
		NewMetrics,
		func(m *Metrics, logger *zap.Logger) func(http.Handler) http.Handler {
			return MonitoringMiddleware(m, logger)
		},
		ConnectMonitoringInterceptor,
	),
)
