package agent

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latticelabs/latticedns/pkg/types"
)

func writeAuthToken(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "authtoken.secret")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestClientNetwork(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/network/8a56c2e21c000001", r.URL.Path)
		assert.Equal(t, "local-secret", r.Header.Get(AuthHeader))

		json.NewEncoder(w).Encode(types.NodeNetwork{
			ID:                "8a56c2e21c000001",
			Name:              "lab",
			Status:            types.NodeNetworkOK,
			AssignedAddresses: []string{"10.147.20.14/24", "fd00::14/64"},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, writeAuthToken(t, "local-secret\n"), zerolog.Nop())

	network, err := client.Network(context.Background(), "8a56c2e21c000001")
	require.NoError(t, err)
	assert.Equal(t, types.NodeNetworkOK, network.Status)
	assert.Len(t, network.AssignedAddresses, 2)
}

func TestClientMissingAuthToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request must not be sent without a credential")
	}))
	defer srv.Close()

	client := NewClient(srv.URL, filepath.Join(t.TempDir(), "missing"), zerolog.Nop())

	_, err := client.Network(context.Background(), "8a56c2e21c000001")
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestClientUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "#unauthorized", http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, writeAuthToken(t, "stale-secret"), zerolog.Nop())

	_, err := client.Network(context.Background(), "8a56c2e21c000001")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}

func TestListenAddresses(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(types.NodeNetwork{
			ID:                "8a56c2e21c000001",
			Status:            types.NodeNetworkOK,
			AssignedAddresses: []string{"10.147.20.14/24"},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, writeAuthToken(t, "local-secret"), zerolog.Nop())

	addrs, err := client.ListenAddresses(context.Background(), "8a56c2e21c000001")
	require.NoError(t, err)
	assert.Equal(t, []string{"10.147.20.14/24"}, addrs, "addresses are returned raw, CIDR suffix included")
}

func TestListenAddressesEmpty(t *testing.T) {
	tests := []struct {
		name    string
		network types.NodeNetwork
	}{
		{
			name: "assigned addresses missing",
			network: types.NodeNetwork{
				ID:     "8a56c2e21c000001",
				Status: types.NodeNetworkRequesting,
			},
		},
		{
			name: "assigned addresses empty",
			network: types.NodeNetwork{
				ID:                "8a56c2e21c000001",
				Status:            types.NodeNetworkOK,
				AssignedAddresses: []string{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(tt.network)
			}))
			defer srv.Close()

			client := NewClient(srv.URL, writeAuthToken(t, "local-secret"), zerolog.Nop())

			_, err := client.ListenAddresses(context.Background(), "8a56c2e21c000001")
			assert.ErrorIs(t, err, ErrNoListenAddresses)
		})
	}
}

func TestParseAddress(t *testing.T) {
	tests := []struct {
		name    string
		cidr    string
		want    string
		wantErr bool
	}{
		{
			name: "ipv4 with prefix",
			cidr: "10.147.20.14/24",
			want: "10.147.20.14",
		},
		{
			name: "ipv6 with prefix",
			cidr: "fd00:1:2::14/64",
			want: "fd00:1:2::14",
		},
		{
			name: "bare address",
			cidr: "10.147.20.14",
			want: "10.147.20.14",
		},
		{
			name:    "garbage",
			cidr:    "not-an-address/24",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr, err := ParseAddress(tt.cidr)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, addr.String())
		})
	}
}
