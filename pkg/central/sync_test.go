package central

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latticelabs/latticedns/pkg/names"
	"github.com/latticelabs/latticedns/pkg/types"
)

// fakeCentral serves one network resource and records updates, standing
// in for the central API in synchronizer tests.
type fakeCentral struct {
	mu      sync.Mutex
	network types.Network
	updates int
}

func (f *fakeCentral) handler(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()

		switch r.Method {
		case http.MethodGet:
			json.NewEncoder(w).Encode(f.network)
		case http.MethodPut:
			require.NoError(t, json.NewDecoder(r.Body).Decode(&f.network))
			f.updates++
			json.NewEncoder(w).Encode(f.network)
		default:
			t.Errorf("unexpected method %s", r.Method)
		}
	})
}

func TestPublishReplacesOnlyDNS(t *testing.T) {
	fake := &fakeCentral{
		network: types.Network{
			ID:          "8a56c2e21c000001",
			Description: "lab network",
			Config: &types.NetworkConfig{
				Name:           "lab",
				Private:        true,
				MulticastLimit: 32,
				DNS:            &types.DNS{Domain: "old.example", Servers: []string{"10.0.0.9"}},
				Routes: []types.Route{
					{Target: "10.147.20.0/24"},
					{Target: "0.0.0.0/0", Via: "10.147.20.1"},
				},
				IPAssignmentPools: []types.IPRange{
					{Start: "10.147.20.10", End: "10.147.20.250"},
				},
				V4AssignMode: &types.V4AssignMode{Auto: true},
			},
		},
	}
	srv := httptest.NewServer(fake.handler(t))
	defer srv.Close()

	syncer := NewSynchronizer(NewClient(srv.URL, "central-secret", zerolog.Nop()))

	updated, err := syncer.Publish(context.Background(), "8a56c2e21c000001", names.Domain("lattice.example."), "10.147.20.1")
	require.NoError(t, err)
	assert.True(t, updated)
	assert.Equal(t, 1, fake.updates)

	cfg := fake.network.Config
	require.NotNil(t, cfg)

	// dns replaced, written in relative form
	require.NotNil(t, cfg.DNS)
	assert.Equal(t, "lattice.example", cfg.DNS.Domain)
	assert.Equal(t, []string{"10.147.20.1"}, cfg.DNS.Servers)

	// everything else survives the round-trip untouched
	assert.Equal(t, "lab", cfg.Name)
	assert.True(t, cfg.Private)
	assert.Equal(t, 32, cfg.MulticastLimit)
	assert.Equal(t, []types.Route{
		{Target: "10.147.20.0/24"},
		{Target: "0.0.0.0/0", Via: "10.147.20.1"},
	}, cfg.Routes)
	assert.Equal(t, []types.IPRange{
		{Start: "10.147.20.10", End: "10.147.20.250"},
	}, cfg.IPAssignmentPools)
	require.NotNil(t, cfg.V4AssignMode)
	assert.True(t, cfg.V4AssignMode.Auto)
	assert.Equal(t, "lab network", fake.network.Description)
}

func TestPublishWithoutConfigIsNoop(t *testing.T) {
	fake := &fakeCentral{
		network: types.Network{
			ID:          "8a56c2e21c000001",
			Description: "never configured",
		},
	}
	srv := httptest.NewServer(fake.handler(t))
	defer srv.Close()

	syncer := NewSynchronizer(NewClient(srv.URL, "central-secret", zerolog.Nop()))

	updated, err := syncer.Publish(context.Background(), "8a56c2e21c000001", names.DefaultDomain, "10.147.20.1")
	require.NoError(t, err)
	assert.False(t, updated, "a network without a configuration object must not be written")
	assert.Equal(t, 0, fake.updates)
	assert.Nil(t, fake.network.Config)
}

func TestPublishFetchFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "central unavailable", http.StatusInternalServerError)
	}))
	defer srv.Close()

	syncer := NewSynchronizer(NewClient(srv.URL, "central-secret", zerolog.Nop()))

	updated, err := syncer.Publish(context.Background(), "8a56c2e21c000001", names.DefaultDomain, "10.147.20.1")
	require.Error(t, err)
	assert.False(t, updated)

	var apiErr *APIError
	assert.ErrorAs(t, err, &apiErr)
}

func TestPublishUpdateFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			json.NewEncoder(w).Encode(types.Network{
				ID:     "8a56c2e21c000001",
				Config: &types.NetworkConfig{Name: "lab"},
			})
		case http.MethodPut:
			http.Error(w, "read only token", http.StatusForbidden)
		}
	}))
	defer srv.Close()

	syncer := NewSynchronizer(NewClient(srv.URL, "central-secret", zerolog.Nop()))

	updated, err := syncer.Publish(context.Background(), "8a56c2e21c000001", names.DefaultDomain, "10.147.20.1")
	require.Error(t, err)
	assert.False(t, updated)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
}
