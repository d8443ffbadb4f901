package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/latticelabs/latticedns/pkg/log"
	"github.com/latticelabs/latticedns/pkg/types"
)

// DefaultBaseURL is the node agent's local API endpoint.
const DefaultBaseURL = "http://127.0.0.1:9873"

// AuthHeader carries the agent credential on every request.
const AuthHeader = "X-Lattice-Auth"

const defaultUserAgent = "latticedns/dev"

// ErrNoListenAddresses indicates the node has no addresses assigned on
// the network, so there is nothing for a DNS server to bind or publish.
var ErrNoListenAddresses = errors.New("no listen addresses available on this network")

// APIError is a non-2xx response from the node agent.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("node agent returned %d: %s", e.StatusCode, e.Body)
}

// Client communicates with the local node agent. The authtoken file is
// read on every request so a rotated token is picked up without a
// restart.
type Client struct {
	baseURL    string
	tokenPath  string
	userAgent  string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a node agent client reading its credential from
// tokenPath. An empty baseURL selects DefaultBaseURL.
func NewClient(baseURL, tokenPath string, logger zerolog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:   baseURL,
		tokenPath: tokenPath,
		userAgent: defaultUserAgent,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: log.Component(logger, "agent"),
	}
}

// WithUserAgent sets the User-Agent header sent on every request.
func (c *Client) WithUserAgent(ua string) *Client {
	c.userAgent = ua
	return c
}

// Network fetches the local node's view of a joined network.
func (c *Client) Network(ctx context.Context, id types.NetworkID) (*types.NodeNetwork, error) {
	authToken, err := c.authToken()
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/network/%s", c.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set(AuthHeader, authToken)
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch node network: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var network types.NodeNetwork
	if err := json.NewDecoder(resp.Body).Decode(&network); err != nil {
		return nil, fmt.Errorf("decode node network: %w", err)
	}
	return &network, nil
}

// ListenAddresses returns the raw CIDR strings assigned to this node on
// the network. An empty set is an error: a DNS server cannot serve a
// network it has no address on. Callers reduce each entry with
// ParseAddress before use as a DNS server address.
func (c *Client) ListenAddresses(ctx context.Context, id types.NetworkID) ([]string, error) {
	network, err := c.Network(ctx, id)
	if err != nil {
		return nil, err
	}

	if len(network.AssignedAddresses) == 0 {
		return nil, ErrNoListenAddresses
	}

	c.logger.Debug().
		Str("network_id", string(id)).
		Strs("assigned", network.AssignedAddresses).
		Msg("Assigned addresses fetched")
	return network.AssignedAddresses, nil
}

func (c *Client) authToken() (string, error) {
	data, err := os.ReadFile(c.tokenPath)
	if err != nil {
		return "", fmt.Errorf("read authtoken %s: %w", c.tokenPath, err)
	}
	return strings.TrimSpace(string(data)), nil
}
