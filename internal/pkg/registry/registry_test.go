package registry

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	confv1 "usecase-sync/internal/conf/v1"

	"github.com/hashicorp/consul/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"
)

// fakeAgent 模拟 Consul agent 的注册接口
type fakeAgent struct {
	mu           sync.Mutex
	registered   []api.AgentServiceRegistration
	deregistered []string
	token        string
}

func (a *fakeAgent) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.token = r.Header.Get("X-Consul-Token")
	switch {
	case r.Method == http.MethodPut && r.URL.Path == "/v1/agent/service/register":
		var reg api.AgentServiceRegistration
		if err := json.NewDecoder(r.Body).Decode(&reg); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		a.registered = append(a.registered, reg)
	case r.Method == http.MethodPut && strings.HasPrefix(r.URL.Path, "/v1/agent/service/deregister/"):
		a.deregistered = append(a.deregistered, strings.TrimPrefix(r.URL.Path, "/v1/agent/service/deregister/"))
	default:
		http.NotFound(w, r)
	}
}

func TestConsulRegistry_RegisterAndDeregister(t *testing.T) {
	agent := &fakeAgent{}
	ts := httptest.NewServer(agent)
	defer ts.Close()

	cfg := &confv1.Bootstrap{
		Server: &confv1.Server{Http: &confv1.Server_HTTP{Addr: "0.0.0.0:8080"}},
		Registry: &confv1.Registry{Consul: &confv1.Registry_Consul{
			Address:     strings.TrimPrefix(ts.URL, "http://"),
			Scheme:      "http",
			Token:       "secret",
			ServiceHost: "10.0.0.5",
			Tags:        []string{"usecase"},
		}},
	}

	lc := fxtest.NewLifecycle(t)
	r, err := NewConsulRegistry(lc, cfg, ServiceName("usecase-sync"), zap.NewNop())
	require.NoError(t, err)
	require.NotNil(t, r)

	lc.RequireStart()

	agent.mu.Lock()
	require.Len(t, agent.registered, 1)
	reg := agent.registered[0]
	agent.mu.Unlock()
	assert.Equal(t, r.ID(), reg.ID)
	assert.True(t, strings.HasPrefix(reg.ID, "usecase-sync-"))
	assert.Equal(t, "usecase-sync", reg.Name)
	assert.Equal(t, "10.0.0.5", reg.Address)
	assert.Equal(t, 8080, reg.Port)
	assert.Equal(t, []string{"usecase"}, reg.Tags)
	require.NotNil(t, reg.Check)
	assert.Equal(t, "10.0.0.5:8080", reg.Check.TCP)

	lc.RequireStop()

	agent.mu.Lock()
	defer agent.mu.Unlock()
	assert.Equal(t, []string{r.ID()}, agent.deregistered)
	assert.Equal(t, "secret", agent.token)
}

func TestNewConsulRegistry_Disabled(t *testing.T) {
	for _, cfg := range []*confv1.Bootstrap{nil, {}, {Registry: &confv1.Registry{Consul: &confv1.Registry_Consul{}}}} {
		r, err := NewConsulRegistry(fxtest.NewLifecycle(t), cfg, ServiceName("usecase-sync"), zap.NewNop())
		assert.NoError(t, err)
		assert.Nil(t, r)
	}
}

func TestNewConsulRegistry_InvalidAddr(t *testing.T) {
	cfg := &confv1.Bootstrap{
		Server:   &confv1.Server{Http: &confv1.Server_HTTP{Addr: "no-port"}},
		Registry: &confv1.Registry{Consul: &confv1.Registry_Consul{Address: "127.0.0.1:8500"}},
	}
	_, err := NewConsulRegistry(fxtest.NewLifecycle(t), cfg, ServiceName("usecase-sync"), zap.NewNop())
	assert.Error(t, err)
}
