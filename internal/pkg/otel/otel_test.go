package otel

import (
	"context"
	"testing"
	"time"

	confv1 "usecase-sync/internal/conf/v1"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"
)

func TestSetupOTelSDK_Disabled(t *testing.T) {
	for _, cfg := range []*confv1.Trace{nil, {}} {
		shutdown, err := SetupOTelSDK(context.Background(), cfg, zap.NewNop())
		require.NoError(t, err)
		assert.Nil(t, shutdown)
	}
}

func TestSetupOTelSDK_Enabled(t *testing.T) {
	previous := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(previous) })

	shutdown, err := SetupOTelSDK(context.Background(), &confv1.Trace{
		Endpoint:    "127.0.0.1:4318",
		Insecure:    true,
		ServiceName: "usecase-sync-test",
	}, zap.NewNop())
	require.NoError(t, err)
	require.NotNil(t, shutdown)

	_, ok := otel.GetTracerProvider().(*sdktrace.TracerProvider)
	assert.True(t, ok)

	// 没有可用的 collector，只要求关闭在超时内返回
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	_ = shutdown(ctx)
}

func TestRegister_WithoutEndpoint(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	require.NoError(t, register(lc, &confv1.Bootstrap{}, zap.NewNop()))
	lc.RequireStart()
	lc.RequireStop()
}
