package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"backoffice/internal/session"
	"backoffice/internal/utils"
)

const defaultRefreshPath = "/api/token/refresh/"

// Client wraps the REST backend. Every request carries the stored bearer
// token; a 401 triggers exactly one silent refresh-and-replay, except on the
// refresh endpoint itself. A failed refresh clears the session and fires the
// logout hook.
type Client struct {
	BaseURL     string
	HTTP        *http.Client
	Session     *session.Store
	OnLogout    func()
	RefreshPath string
	RequestID   string
}

func New(baseURL string, store *session.Store) *Client {
	return &Client{
		BaseURL:     strings.TrimRight(baseURL, "/"),
		HTTP:        &http.Client{Timeout: 30 * time.Second},
		Session:     store,
		RefreshPath: defaultRefreshPath,
	}
}

func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, "", out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, "", nil)
}

func (c *Client) PostJSON(ctx context.Context, path string, body, out any) error {
	return c.doJSON(ctx, http.MethodPost, path, body, out)
}

func (c *Client) PutJSON(ctx context.Context, path string, body, out any) error {
	return c.doJSON(ctx, http.MethodPut, path, body, out)
}

func (c *Client) PatchJSON(ctx context.Context, path string, body, out any) error {
	return c.doJSON(ctx, http.MethodPatch, path, body, out)
}

func (c *Client) PostForm(ctx context.Context, path string, form *Form, out any) error {
	body, contentType, err := form.Encode()
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, path, body, contentType, out)
}

func (c *Client) PutForm(ctx context.Context, path string, form *Form, out any) error {
	body, contentType, err := form.Encode()
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPut, path, body, contentType, out)
}

func (c *Client) PatchForm(ctx context.Context, path string, form *Form, out any) error {
	body, contentType, err := form.Encode()
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPatch, path, body, contentType, out)
}

func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	var encoded []byte
	if body != nil {
		var err error
		encoded, err = json.Marshal(body)
		if err != nil {
			return err
		}
	}
	return c.do(ctx, method, path, encoded, "application/json", out)
}

// do sends the request, handling the single refresh-and-replay on 401. The
// body is raw bytes so the replay carries an identical payload.
func (c *Client) do(ctx context.Context, method, path string, body []byte, contentType string, out any) error {
	status, respBody, err := c.send(ctx, method, path, body, contentType, c.accessToken())
	if err != nil {
		return err
	}

	if status == http.StatusUnauthorized && !c.isRefreshPath(path) {
		newAccess, refreshErr := c.refresh(ctx)
		if refreshErr != nil {
			c.forceLogout()
			return parseAPIError(status, respBody)
		}
		// replay once with the fresh token; a second 401 is surfaced as-is
		status, respBody, err = c.send(ctx, method, path, body, contentType, newAccess)
		if err != nil {
			return err
		}
	}

	if status < 200 || status > 299 {
		return parseAPIError(status, respBody)
	}
	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func (c *Client) send(ctx context.Context, method, path string, body []byte, contentType, token string) (int, []byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return 0, nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, err
	}
	return resp.StatusCode, respBody, nil
}

// refresh exchanges the stored refresh token for a new access token and
// persists it on success.
func (c *Client) refresh(ctx context.Context) (string, error) {
	refreshToken := ""
	if c.Session != nil {
		refreshToken = c.Session.RefreshToken()
	}
	if refreshToken == "" {
		return "", fmt.Errorf("no refresh token stored")
	}

	payload, err := json.Marshal(map[string]string{"refresh": refreshToken})
	if err != nil {
		return "", err
	}
	status, body, err := c.send(ctx, http.MethodPost, c.refreshPath(), payload, "application/json", "")
	if err != nil {
		return "", err
	}
	if status < 200 || status > 299 {
		return "", parseAPIError(status, body)
	}

	var out struct {
		Access string `json:"access"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return "", err
	}
	if out.Access == "" {
		return "", fmt.Errorf("refresh response missing access token")
	}
	if c.Session != nil {
		if err := c.Session.SetTokens(out.Access, ""); err != nil {
			return "", err
		}
	}
	utils.LogEvent(c.RequestID, "apiclient", "token_refresh", "access token rotated")
	return out.Access, nil
}

func (c *Client) forceLogout() {
	if c.Session != nil {
		_ = c.Session.ClearTokens()
	}
	utils.LogEvent(c.RequestID, "apiclient", "force_logout", "refresh failed, session cleared")
	if c.OnLogout != nil {
		c.OnLogout()
	}
}

func (c *Client) accessToken() string {
	if c.Session == nil {
		return ""
	}
	return c.Session.AccessToken()
}

func (c *Client) httpClient() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	return http.DefaultClient
}

func (c *Client) refreshPath() string {
	if c.RefreshPath != "" {
		return c.RefreshPath
	}
	return defaultRefreshPath
}

func (c *Client) isRefreshPath(path string) bool {
	return strings.Contains(path, c.refreshPath())
}
