package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"

	"golang.org/x/oauth2/clientcredentials"

	"github.com/hrsuite/portal-go/internal/config"
)

const csrfHeader = "X-CSRFToken"

// Client is the HTTP client for the portal backend. All mutating requests
// carry the CSRF token header; deployments behind a token gateway use a
// bearer token or OAuth2 client credentials instead.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	csrfToken string
	bearer    string
}

func NewClient(cfg config.PortalConfig, auth config.AuthConfig) (*Client, error) {
	base, err := url.Parse(strings.TrimSuffix(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid portal base URL: %w", err)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	httpClient := &http.Client{Timeout: cfg.Timeout}
	if auth.OAuthTokenURL != "" {
		cc := clientcredentials.Config{
			ClientID:     auth.OAuthClientID,
			ClientSecret: auth.OAuthClientSecret,
			TokenURL:     auth.OAuthTokenURL,
		}
		httpClient = cc.Client(context.Background())
		httpClient.Timeout = cfg.Timeout
	}
	httpClient.Jar = jar

	if auth.SessionCookie != "" {
		jar.SetCookies(base, []*http.Cookie{
			{Name: "sessionid", Value: auth.SessionCookie, Path: "/"},
		})
	}

	if auth.BearerToken != "" {
		if err := checkBearerToken(auth.BearerToken); err != nil {
			return nil, err
		}
	}

	return &Client{
		baseURL:   base,
		http:      httpClient,
		csrfToken: auth.CSRFToken,
		bearer:    auth.BearerToken,
	}, nil
}

// Get performs a GET request and decodes the JSON body into out.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out interface{}) error {
	u := c.resolve(path)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

// PostJSON performs a POST with a JSON body.
func (c *Client) PostJSON(ctx context.Context, path string, body, out interface{}) error {
	return c.sendJSON(ctx, http.MethodPost, path, body, out)
}

// PutJSON performs a PUT with a JSON body.
func (c *Client) PutJSON(ctx context.Context, path string, body, out interface{}) error {
	return c.sendJSON(ctx, http.MethodPut, path, body, out)
}

// PostForm performs a POST with url-encoded form values.
func (c *Client) PostForm(ctx context.Context, path string, form url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.resolve(path).String(),
		strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req, out)
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.resolve(path).String(), nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) sendJSON(ctx context.Context, method, path string, body, out interface{}) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, c.resolve(path).String(), &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) resolve(path string) *url.URL {
	u := *c.baseURL
	u.Path = strings.TrimSuffix(u.Path, "/") + path
	return &u
}

func (c *Client) do(req *http.Request, out interface{}) error {
	req.Header.Set("Accept", "application/json")
	if c.bearer != "" {
		req.Header.Set("Authorization", "Bearer "+c.bearer)
	}
	if req.Method != http.MethodGet && req.Method != http.MethodHead {
		if token := c.csrfFor(req.URL); token != "" {
			req.Header.Set(csrfHeader, token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("portal request failed: %w", err)
	}
	defer resp.Body.Close()

	return decodeResponse(resp, out)
}

// csrfFor returns the configured CSRF token, falling back to the csrftoken
// cookie the server set on login.
func (c *Client) csrfFor(u *url.URL) string {
	if c.csrfToken != "" {
		return c.csrfToken
	}
	if c.http.Jar == nil {
		return ""
	}
	for _, cookie := range c.http.Jar.Cookies(u) {
		if cookie.Name == "csrftoken" {
			return cookie.Value
		}
	}
	return ""
}

// envelope covers the common fields every portal response may carry.
type envelope struct {
	Success *bool  `json:"success,omitempty"`
	Message string `json:"message,omitempty"`
	Err     string `json:"error,omitempty"`
}

func decodeResponse(resp *http.Response, out interface{}) error {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	var env envelope
	// Bodies are not guaranteed to be JSON on errors (proxies, HTML error
	// pages); a decode failure on a non-2xx still yields a useful Error.
	_ = json.Unmarshal(data, &env)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := env.Err
		if msg == "" {
			msg = env.Message
		}
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return &Error{StatusCode: resp.StatusCode, Message: msg}
	}

	if env.Success != nil && !*env.Success {
		msg := env.Err
		if msg == "" {
			msg = env.Message
		}
		return &Error{StatusCode: resp.StatusCode, Code: "REQUEST_FAILED", Message: msg}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response body: %w", err)
	}
	return nil
}
