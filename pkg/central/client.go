package central

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/latticelabs/latticedns/pkg/log"
	"github.com/latticelabs/latticedns/pkg/token"
	"github.com/latticelabs/latticedns/pkg/types"
)

// DefaultBaseURL is the public central API endpoint.
const DefaultBaseURL = "https://api.lattice.net/api/v1"

const defaultUserAgent = "latticedns/dev"

// ErrNoToken indicates that no central credential could be resolved
// from either a token file or the environment.
var ErrNoToken = errors.New("no central API token; provide a token file or set " + token.EnvCentralToken)

// APIError is a non-2xx response from the central API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("central API returned %d: %s", e.StatusCode, e.Body)
}

// Client communicates with the central API's network endpoints.
type Client struct {
	baseURL    string
	token      token.Token
	userAgent  string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a central API client. An empty baseURL selects
// DefaultBaseURL.
func NewClient(baseURL string, tok token.Token, logger zerolog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:   baseURL,
		token:     tok,
		userAgent: defaultUserAgent,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: log.Component(logger, "central"),
	}
}

// WithUserAgent sets the User-Agent header sent on every request,
// normally "latticedns/<version>".
func (c *Client) WithUserAgent(ua string) *Client {
	c.userAgent = ua
	return c
}

// Network fetches a network resource by ID.
func (c *Client) Network(ctx context.Context, id types.NetworkID) (*types.Network, error) {
	url := fmt.Sprintf("%s/network/%s", c.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch network: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, readAPIError(resp)
	}

	var network types.Network
	if err := json.NewDecoder(resp.Body).Decode(&network); err != nil {
		return nil, fmt.Errorf("decode network: %w", err)
	}
	return &network, nil
}

// UpdateNetwork writes a whole network resource back to central.
func (c *Client) UpdateNetwork(ctx context.Context, network *types.Network) error {
	url := fmt.Sprintf("%s/network/%s", c.baseURL, network.ID)
	body, err := json.Marshal(network)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	c.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("update network: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return readAPIError(resp)
	}
	return nil
}

// Members lists a network's members.
func (c *Client) Members(ctx context.Context, id types.NetworkID) ([]types.Member, error) {
	url := fmt.Sprintf("%s/network/%s/member", c.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, readAPIError(resp)
	}

	var members []types.Member
	if err := json.NewDecoder(resp.Body).Decode(&members); err != nil {
		return nil, fmt.Errorf("decode members: %w", err)
	}
	return members, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.token.String())
	req.Header.Set("User-Agent", c.userAgent)
}

func readAPIError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	return &APIError{StatusCode: resp.StatusCode, Body: string(body)}
}
