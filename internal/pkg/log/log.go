// Package log 基于 zap 构建应用日志，配置了 OTLP 导出时同时写入 OpenTelemetry 日志管道。
package log

import (
	"context"
	"fmt"
	"os"
	"strings"

	confv1 "usecase-sync/internal/conf/v1"

	otellog "go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/log/global"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const scopeName = "usecase-sync"

// Module 提供 Fx 模块
var Module = fx.Module("log",
	fx.Provide(NewLogger),
)

// NewLogger 根据 log.level 与 log.format 创建 logger
func NewLogger(lc fx.Lifecycle, cfg *confv1.Bootstrap) (*zap.Logger, error) {
	var logCfg *confv1.Log
	if cfg != nil {
		logCfg = cfg.Log
	}

	level, err := parseLevel(logCfg)
	if err != nil {
		return nil, err
	}

	core := zapcore.NewCore(newEncoder(logCfg), zapcore.Lock(os.Stdout), level)
	if cfg != nil && cfg.Trace != nil && cfg.Trace.Endpoint != "" {
		core = zapcore.NewTee(core, NewOTelCore(global.GetLoggerProvider().Logger(scopeName), level))
	}

	logger := zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
	if cfg != nil && cfg.Trace != nil && cfg.Trace.ServiceName != "" {
		logger = logger.With(zap.String("service", cfg.Trace.ServiceName))
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			// stdout 在部分平台上 Sync 会返回 EINVAL
			_ = logger.Sync()
			return nil
		},
	})
	return logger, nil
}

func parseLevel(cfg *confv1.Log) (zapcore.Level, error) {
	if cfg == nil || cfg.Level == "" {
		return zapcore.InfoLevel, nil
	}
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(strings.ToLower(cfg.Level))); err != nil {
		return level, fmt.Errorf("invalid log.level %q: %w", cfg.Level, err)
	}
	return level, nil
}

func newEncoder(cfg *confv1.Log) zapcore.Encoder {
	if cfg != nil && cfg.Format == "json" {
		encCfg := zap.NewProductionEncoderConfig()
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		return zapcore.NewJSONEncoder(encCfg)
	}
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return zapcore.NewConsoleEncoder(encCfg)
}

// OTelCore 将 zap 日志转换为 OpenTelemetry 日志记录
type OTelCore struct {
	zapcore.LevelEnabler
	logger otellog.Logger
	fields []zapcore.Field
}

func NewOTelCore(logger otellog.Logger, enabler zapcore.LevelEnabler) *OTelCore {
	return &OTelCore{LevelEnabler: enabler, logger: logger}
}

func (c *OTelCore) With(fields []zapcore.Field) zapcore.Core {
	clone := *c
	clone.fields = append(append([]zapcore.Field{}, c.fields...), fields...)
	return &clone
}

func (c *OTelCore) Check(entry zapcore.Entry, checked *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(entry.Level) {
		return checked.AddCore(entry, c)
	}
	return checked
}

func (c *OTelCore) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	var record otellog.Record
	record.SetTimestamp(entry.Time)
	record.SetObservedTimestamp(entry.Time)
	record.SetBody(otellog.StringValue(entry.Message))
	record.SetSeverity(severity(entry.Level))
	record.SetSeverityText(entry.Level.CapitalString())

	enc := zapcore.NewMapObjectEncoder()
	for _, f := range c.fields {
		f.AddTo(enc)
	}
	for _, f := range fields {
		f.AddTo(enc)
	}

	attrs := make([]otellog.KeyValue, 0, len(enc.Fields)+2)
	if entry.LoggerName != "" {
		attrs = append(attrs, otellog.String("logger", entry.LoggerName))
	}
	if entry.Caller.Defined {
		attrs = append(attrs, otellog.String("code.filepath", entry.Caller.TrimmedPath()))
	}
	for k, v := range enc.Fields {
		attrs = append(attrs, otellog.KeyValue{Key: k, Value: toValue(v)})
	}
	record.AddAttributes(attrs...)

	c.logger.Emit(context.Background(), record)
	return nil
}

func (c *OTelCore) Sync() error { return nil }

func severity(level zapcore.Level) otellog.Severity {
	switch level {
	case zapcore.DebugLevel:
		return otellog.SeverityDebug
	case zapcore.InfoLevel:
		return otellog.SeverityInfo
	case zapcore.WarnLevel:
		return otellog.SeverityWarn
	case zapcore.ErrorLevel:
		return otellog.SeverityError
	default:
		return otellog.SeverityFatal
	}
}

func toValue(v any) otellog.Value {
	switch val := v.(type) {
	case string:
		return otellog.StringValue(val)
	case bool:
		return otellog.BoolValue(val)
	case int:
		return otellog.IntValue(val)
	case int32:
		return otellog.Int64Value(int64(val))
	case int64:
		return otellog.Int64Value(val)
	case float64:
		return otellog.Float64Value(val)
	case fmt.Stringer:
		return otellog.StringValue(val.String())
	default:
		return otellog.StringValue(fmt.Sprint(val))
	}
}
