// Package registry 将服务实例注册到 Consul。
package registry

import (
	"context"
	"fmt"
	"net"
	"os"
	"strconv"

	confv1 "usecase-sync/internal/conf/v1"

	"github.com/google/uuid"
	"github.com/hashicorp/consul/api"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// ServiceName 注册到 Consul 的服务名
type ServiceName string

// Module 提供 Fx 模块
var Module = fx.Module("registry",
	fx.Provide(NewConsulRegistry),
)

// ConsulRegistry 在应用启动时注册实例，停止时注销
type ConsulRegistry struct {
	client       *api.Client
	registration *api.AgentServiceRegistration
	logger       *zap.Logger
}

// NewConsulRegistry 未配置 registry.consul 时返回 nil
func NewConsulRegistry(lc fx.Lifecycle, cfg *confv1.Bootstrap, name ServiceName, logger *zap.Logger) (*ConsulRegistry, error) {
	if cfg == nil || cfg.Registry == nil || cfg.Registry.Consul == nil || cfg.Registry.Consul.Address == "" {
		logger.Info("Consul registry disabled")
		return nil, nil
	}
	consul := cfg.Registry.Consul

	apiCfg := api.DefaultConfig()
	apiCfg.Address = consul.Address
	if consul.Scheme != "" {
		apiCfg.Scheme = consul.Scheme
	}
	if consul.Token != "" {
		apiCfg.Token = consul.Token
	}
	client, err := api.NewClient(apiCfg)
	if err != nil {
		return nil, fmt.Errorf("create consul client: %w", err)
	}

	registration, err := newRegistration(cfg, string(name))
	if err != nil {
		return nil, err
	}

	r := &ConsulRegistry{client: client, registration: registration, logger: logger}
	lc.Append(fx.Hook{
		OnStart: r.Register,
		OnStop:  r.Deregister,
	})
	return r, nil
}

func newRegistration(cfg *confv1.Bootstrap, name string) (*api.AgentServiceRegistration, error) {
	addr := ""
	if cfg.Server != nil && cfg.Server.Http != nil {
		addr = cfg.Server.Http.Addr
	}
	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return nil, fmt.Errorf("parse server.http.addr %q: %w", addr, err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("parse server.http.addr port %q: %w", portStr, err)
	}

	if h := cfg.Registry.Consul.ServiceHost; h != "" {
		host = h
	}
	if host == "" || host == "0.0.0.0" {
		if hostname, err := os.Hostname(); err == nil {
			host = hostname
		}
	}

	target := net.JoinHostPort(host, strconv.Itoa(port))
	return &api.AgentServiceRegistration{
		ID:      fmt.Sprintf("%s-%s", name, uuid.NewString()),
		Name:    name,
		Address: host,
		Port:    port,
		Tags:    cfg.Registry.Consul.Tags,
		Check: &api.AgentServiceCheck{
			TCP:                            target,
			Interval:                       "10s",
			Timeout:                        "3s",
			DeregisterCriticalServiceAfter: "1m",
		},
	}, nil
}

// Register 向本地 agent 注册实例
func (r *ConsulRegistry) Register(ctx context.Context) error {
	opts := api.ServiceRegisterOpts{}.WithContext(ctx)
	if err := r.client.Agent().ServiceRegisterOpts(r.registration, opts); err != nil {
		return fmt.Errorf("register service %s: %w", r.registration.Name, err)
	}
	r.logger.Info("Service registered to consul",
		zap.String("id", r.registration.ID),
		zap.String("address", r.registration.Address),
		zap.Int("port", r.registration.Port),
	)
	return nil
}

// Deregister 注销实例，失败只记录日志
func (r *ConsulRegistry) Deregister(ctx context.Context) error {
	opts := (&api.QueryOptions{}).WithContext(ctx)
	if err := r.client.Agent().ServiceDeregisterOpts(r.registration.ID, opts); err != nil {
		r.logger.Warn("Failed to deregister service", zap.String("id", r.registration.ID), zap.Error(err))
		return nil
	}
	r.logger.Info("Service deregistered from consul", zap.String("id", r.registration.ID))
	return nil
}

// ID 注册使用的实例 ID
func (r *ConsulRegistry) ID() string {
	return r.registration.ID
}
