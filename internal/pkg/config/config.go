package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	confv1 "usecase-sync/internal/conf/v1"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"go.uber.org/fx"
)

// envPrefix 环境变量覆盖前缀，例如 USECASE_BACKEND_BASE_URL 覆盖 backend.base_url
const envPrefix = "USECASE"

// Module 提供 Fx 模块
var Module = fx.Module("config",
	fx.Provide(
		func() (*confv1.Bootstrap, error) {
			// 从环境变量获取配置路径，如果没有设置则使用默认路径
			configPath := getConfigPath()

			conf, err := Init(configPath)
			if err != nil {
				return nil, err
			}
			fmt.Printf("Configuration loaded successfully from: %s\n", configPath)
			return conf, nil
		},
	),
)

// Init 从本地 YAML 文件加载配置，同名环境变量优先
func Init(configPath string) (*confv1.Bootstrap, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config file %s: %w", configPath, err)
	}

	conf := &confv1.Bootstrap{}

	// AllSettings 只包含配置文件中出现过的键，AutomaticEnv 对这些键生效
	m := v.AllSettings()
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		// 允许将 snake_case 键与 CamelCase 字段匹配
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           conf,
	})
	if err != nil {
		return nil, fmt.Errorf("create config decoder: %w", err)
	}

	if err := decoder.Decode(m); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	return conf, nil
}

// getConfigPath 从环境变量获取配置路径
func getConfigPath() string {
	if configPath := os.Getenv("CONFIG_PATH"); configPath != "" {
		return configPath
	}

	// 在Docker容器中，配置文件位于/app/configs/config.yaml
	if isRunningInContainer() {
		return "/app/configs/config.yaml"
	}

	return "configs/config.yaml"
}

// isRunningInContainer 检查是否在容器中运行
func isRunningInContainer() bool {
	if _, err := os.Stat("/.dockerenv"); err == nil {
		return true
	}

	if cgroup, err := os.ReadFile("/proc/1/cgroup"); err == nil {
		if strings.Contains(string(cgroup), "docker") || strings.Contains(string(cgroup), "kubepods") {
			return true
		}
	}

	return os.Getenv("KUBERNETES_SERVICE_HOST") != "" || os.Getenv("CONTAINER") != ""
}

func validDriver(driver string, allowed ...string) bool {
	if driver == "" {
		return true
	}
	for _, a := range allowed {
		if driver == a {
			return true
		}
	}
	return false
}

// ValidateConfig 验证用例编排服务配置的完整性
func ValidateConfig(conf *confv1.Bootstrap) error {
	if conf == nil {
		return errors.New("configuration is nil")
	}

	if conf.Server == nil || conf.Server.Http == nil {
		return errors.New("server configuration is required")
	}

	if conf.Backend == nil || conf.Backend.BaseUrl == "" {
		return errors.New("backend.base_url is required")
	}

	if conf.Data == nil {
		return nil
	}

	if c := conf.Data.Cache; c != nil {
		if !validDriver(c.Driver, confv1.DriverMemory, confv1.DriverRedis, confv1.DriverPostgres) {
			return fmt.Errorf("unknown data.cache.driver %q", c.Driver)
		}
		if c.TtlSeconds < 0 {
			return errors.New("data.cache.ttl_seconds must not be negative")
		}
		if c.Driver == confv1.DriverPostgres && conf.Data.Database == nil {
			return errors.New("data.database is required when data.cache.driver is postgres")
		}
		if c.Driver == confv1.DriverRedis && conf.Data.Redis == nil {
			return errors.New("data.redis is required when data.cache.driver is redis")
		}
	}

	if e := conf.Data.Events; e != nil {
		if !validDriver(e.Driver, confv1.DriverMemory, confv1.DriverRedis) {
			return fmt.Errorf("unknown data.events.driver %q", e.Driver)
		}
		if e.Driver == confv1.DriverRedis && conf.Data.Redis == nil {
			return errors.New("data.redis is required when data.events.driver is redis")
		}
	}

	return nil
}

// ValidateBackendConfig 验证账户服务配置的完整性
func ValidateBackendConfig(conf *confv1.Bootstrap) error {
	if conf == nil {
		return errors.New("configuration is nil")
	}

	if conf.Server == nil || conf.Server.Http == nil {
		return errors.New("server configuration is required")
	}

	if conf.Backend != nil && conf.Backend.JwtExpireHours < 0 {
		return errors.New("backend.jwt_expire_hours must not be negative")
	}

	return nil
}
