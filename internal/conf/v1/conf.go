// Package confv1 定义服务的启动配置，字段通过 json tag 与 YAML 键对应。
package confv1

type Bootstrap struct {
	Server   *Server   `json:"server"`
	Data     *Data     `json:"data"`
	Backend  *Backend  `json:"backend"`
	Trace    *Trace    `json:"trace"`
	Registry *Registry `json:"registry"`
	Log      *Log      `json:"log"`
}

type Server struct {
	Http *Server_HTTP `json:"http"`
}

type Server_HTTP struct {
	Addr string `json:"addr"`
}

type Data struct {
	Database *Data_Database `json:"database"`
	Redis    *Data_Redis    `json:"redis"`
	Cache    *Data_Cache    `json:"cache"`
	Events   *Data_Events   `json:"events"`
}

type Data_Database struct {
	Host     string `json:"host"`
	Port     int32  `json:"port"`
	User     string `json:"user"`
	Password string `json:"password"`
	DbName   string `json:"db_name"`
	SslMode  string `json:"ssl_mode"`
	Timezone string `json:"timezone"`
}

type Data_Redis struct {
	Host         string `json:"host"`
	Port         int32  `json:"port"`
	Username     string `json:"username"`
	Password     string `json:"password"`
	Db           int32  `json:"db"`
	DialTimeout  int64  `json:"dial_timeout"`
	ReadTimeout  int64  `json:"read_timeout"`
	WriteTimeout int64  `json:"write_timeout"`
	PoolSize     int32  `json:"pool_size"`
	MinIdleConns int32  `json:"min_idle_conns"`
}

// 缓存与事件后端
const (
	DriverMemory   = "memory"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
)

type Data_Cache struct {
	// Driver 可选 memory、redis、postgres（postgres 仅用于用户缓存，令牌与资料回落到 redis 或内存）
	Driver     string `json:"driver"`
	TtlSeconds int64  `json:"ttl_seconds"`
	KeyPrefix  string `json:"key_prefix"`
}

type Data_Events struct {
	// Driver 可选 memory、redis
	Driver string `json:"driver"`
	Stream string `json:"stream"`
	MaxLen int64  `json:"max_len"`
}

// Backend 远端账户服务
type Backend struct {
	BaseUrl        string `json:"base_url"`
	TimeoutSeconds int64  `json:"timeout_seconds"`
	// JwtSecret 仅账户服务进程使用
	JwtSecret      string `json:"jwt_secret"`
	JwtExpireHours int64  `json:"jwt_expire_hours"`
}

type Trace struct {
	Endpoint    string `json:"endpoint"`
	Insecure    bool   `json:"insecure"`
	ServiceName string `json:"service_name"`
	Environment string `json:"environment"`
}

type Registry struct {
	Consul *Registry_Consul `json:"consul"`
}

type Registry_Consul struct {
	Address     string   `json:"address"`
	Scheme      string   `json:"scheme"`
	Token       string   `json:"token"`
	ServiceHost string   `json:"service_host"`
	Tags        []string `json:"tags"`
}

type Log struct {
	// Level 可选 debug、info、warn、error
	Level string `json:"level"`
	// Format 可选 console、json
	Format string `json:"format"`
}
