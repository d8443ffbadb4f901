package central

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latticelabs/latticedns/pkg/types"
)

func TestClientNetworkSendsAuth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/network/8a56c2e21c000001", r.URL.Path)
		assert.Equal(t, "Bearer central-secret", r.Header.Get("Authorization"))
		assert.Equal(t, "latticedns/1.2.3", r.Header.Get("User-Agent"))

		json.NewEncoder(w).Encode(types.Network{
			ID:          "8a56c2e21c000001",
			Description: "lab",
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "central-secret", zerolog.Nop()).WithUserAgent("latticedns/1.2.3")

	network, err := client.Network(context.Background(), "8a56c2e21c000001")
	require.NoError(t, err)
	assert.Equal(t, types.NetworkID("8a56c2e21c000001"), network.ID)
	assert.Equal(t, "lab", network.Description)
	assert.Nil(t, network.Config)
}

func TestClientNetworkNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "network not found", http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "central-secret", zerolog.Nop())

	_, err := client.Network(context.Background(), "ffffffffffffffff")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Contains(t, apiErr.Body, "network not found")
}

func TestClientUpdateNetwork(t *testing.T) {
	var received types.Network

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/network/8a56c2e21c000001", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "central-secret", zerolog.Nop())

	network := &types.Network{
		ID: "8a56c2e21c000001",
		Config: &types.NetworkConfig{
			Name: "lab",
			DNS:  &types.DNS{Domain: "lattice.example", Servers: []string{"10.147.20.1"}},
		},
	}
	require.NoError(t, client.UpdateNetwork(context.Background(), network))

	assert.Equal(t, network.ID, received.ID)
	require.NotNil(t, received.Config)
	assert.Equal(t, "lattice.example", received.Config.DNS.Domain)
}

func TestClientUpdateNetworkRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "read only token", http.StatusForbidden)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "central-secret", zerolog.Nop())

	err := client.UpdateNetwork(context.Background(), &types.Network{ID: "8a56c2e21c000001"})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
}

func TestClientMembers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/network/8a56c2e21c000001/member", r.URL.Path)

		json.NewEncoder(w).Encode([]types.Member{
			{
				ID:     "8a56c2e21c000001-aabbccdd11",
				NodeID: "aabbccdd11",
				Name:   "laptop",
				Config: &types.MemberConfig{
					Authorized:    true,
					IPAssignments: []string{"10.147.20.14"},
				},
			},
			{
				ID:     "8a56c2e21c000001-ee55ff0022",
				NodeID: "ee55ff0022",
			},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "central-secret", zerolog.Nop())

	members, err := client.Members(context.Background(), "8a56c2e21c000001")
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, "laptop", members[0].Name)
	assert.Equal(t, []string{"10.147.20.14"}, members[0].Config.IPAssignments)
	assert.Nil(t, members[1].Config)
}

func TestClientDefaultBaseURL(t *testing.T) {
	client := NewClient("", "central-secret", zerolog.Nop())
	assert.Equal(t, DefaultBaseURL, client.baseURL)
}
