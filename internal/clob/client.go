package clob

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Paths of the CLOB endpoints touched by the bootstrap tool.
const (
	createAPIKeyPath = "/auth/api-key"
	deriveAPIKeyPath = "/auth/derive-api-key"
	getAPIKeysPath   = "/auth/api-keys"
	serverTimePath   = "/time"
)

const defaultHTTPTimeout = 30 * time.Second

// ClientConfig carries the connection parameters for a CLOB client.
type ClientConfig struct {
	Host          string
	ChainID       Chain
	SignatureType SignatureType
	Funder        string
	Nonce         int64
}

// Client talks to a Polymarket CLOB instance on behalf of a single signer.
// Construction performs no network I/O; every remote call takes a context.
type Client struct {
	host    string
	chainID Chain
	sigType SignatureType
	funder  string
	nonce   int64

	signer *Signer
	creds  *APICreds

	http   *http.Client
	logger zerolog.Logger
}

// NewClient binds endpoint, chain, signature scheme and funding address
// into a client handle.
func NewClient(cfg ClientConfig, signer *Signer, logger zerolog.Logger) *Client {
	return &Client{
		host:    strings.TrimRight(cfg.Host, "/"),
		chainID: cfg.ChainID,
		sigType: cfg.SignatureType,
		funder:  cfg.Funder,
		nonce:   cfg.Nonce,
		signer:  signer,
		http:    &http.Client{Timeout: defaultHTTPTimeout},
		logger:  logger,
	}
}

// CreateAPIKey asks the CLOB to mint a fresh credential set for the signer.
func (c *Client) CreateAPIKey(ctx context.Context) (APICreds, error) {
	var creds APICreds
	if err := c.doL1(ctx, "create api key", http.MethodPost, createAPIKeyPath, &creds); err != nil {
		return APICreds{}, err
	}
	return creds, nil
}

// DeriveAPIKey re-derives the credential set that already exists for the
// signer. Deriving is deterministic server-side, so repeated calls return
// the same triple.
func (c *Client) DeriveAPIKey(ctx context.Context) (APICreds, error) {
	var creds APICreds
	if err := c.doL1(ctx, "derive api key", http.MethodGet, deriveAPIKeyPath, &creds); err != nil {
		return APICreds{}, err
	}
	return creds, nil
}

// CreateOrDeriveAPIKey returns existing credentials when the signer already
// has some, otherwise creates a new set: create first, fall back to derive,
// mirroring the remote service's idempotent contract.
func (c *Client) CreateOrDeriveAPIKey(ctx context.Context) (APICreds, error) {
	creds, createErr := c.CreateAPIKey(ctx)
	if createErr == nil {
		return creds, nil
	}
	c.logger.Debug().Err(createErr).Msg("create rejected, deriving existing credentials")

	creds, deriveErr := c.DeriveAPIKey(ctx)
	if deriveErr != nil {
		return APICreds{}, fmt.Errorf("create failed (%v); derive failed: %w", createErr, deriveErr)
	}
	return creds, nil
}

// SetAPICreds binds a credential set onto the client for level-2 calls.
func (c *Client) SetAPICreds(creds APICreds) {
	c.creds = &creds
}

// GetAPIKeys lists the API key identifiers registered for the signer.
// Requires SetAPICreds first.
func (c *Client) GetAPIKeys(ctx context.Context) ([]string, error) {
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	headers, err := c.l2AuthHeaders(timestamp, http.MethodGet, getAPIKeysPath, nil)
	if err != nil {
		return nil, &APIError{Op: "get api keys", Err: err}
	}

	var resp struct {
		APIKeys []string `json:"apiKeys"`
	}
	if err := c.doJSON(ctx, "get api keys", http.MethodGet, getAPIKeysPath, headers, nil, &resp); err != nil {
		return nil, err
	}
	return resp.APIKeys, nil
}

// ServerTime reports the CLOB server clock. The endpoint replies with a
// bare Unix timestamp.
func (c *Client) ServerTime(ctx context.Context) (time.Time, error) {
	const op = "server time"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.host+serverTimePath, nil)
	if err != nil {
		return time.Time{}, &APIError{Op: op, Err: err}
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return time.Time{}, &APIError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return time.Time{}, &APIError{Op: op, Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		return time.Time{}, &APIError{Op: op, StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(data))}
	}
	secs, err := strconv.ParseInt(strings.TrimSpace(string(data)), 10, 64)
	if err != nil {
		return time.Time{}, &APIError{Op: op, Err: fmt.Errorf("parse timestamp %q: %w", strings.TrimSpace(string(data)), err)}
	}
	return time.Unix(secs, 0), nil
}

// doL1 performs a level-1 authenticated request with a fresh timestamp.
func (c *Client) doL1(ctx context.Context, op, method, requestPath string, out any) error {
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	headers, err := c.l1AuthHeaders(timestamp)
	if err != nil {
		return &APIError{Op: op, Err: err}
	}
	return c.doJSON(ctx, op, method, requestPath, headers, nil, out)
}

// doJSON performs one HTTP round trip and decodes a JSON reply. Non-2xx
// statuses surface as *APIError with the server body attached. Headers are
// assigned verbatim to keep the POLY_* names unmangled.
func (c *Client) doJSON(ctx context.Context, op, method, requestPath string, headers map[string]string, body []byte, out any) error {
	var reader io.Reader
	if len(body) > 0 {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.host+requestPath, reader)
	if err != nil {
		return &APIError{Op: op, Err: err}
	}
	for k, v := range headers {
		req.Header[k] = []string{v}
	}
	if len(body) > 0 {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &APIError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{Op: op, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Debug().Int("status", resp.StatusCode).Str("path", requestPath).Msg("clob request rejected")
		return &APIError{Op: op, StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(data))}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &APIError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}
