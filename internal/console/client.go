package console

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"xetasuite/internal/models"
)

// APIError is the normalized form of any non-2xx API response.
type APIError struct {
	Status  int
	Message string
	Fields  map[string]string
}

func (e *APIError) Error() string {
	if len(e.Fields) > 0 {
		parts := make([]string, 0, len(e.Fields))
		for field, msg := range e.Fields {
			parts = append(parts, field+": "+msg)
		}
		return strings.Join(parts, "; ")
	}
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// Page is one page of a list endpoint.
type Page[T any] struct {
	Data []T             `json:"data"`
	Meta models.ListMeta `json:"meta"`
}

// Client talks to the XetaSuite API. It keeps the session cookie in its jar
// and transparently attaches the CSRF token to unsafe requests.
type Client struct {
	baseURL string
	http    *http.Client

	mu        sync.Mutex
	csrfToken string
}

func NewClient(baseURL string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Jar:     jar,
			Timeout: 30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}, nil
}

// HTTPClient exposes the underlying client for the websocket dialer, which
// needs the same cookie jar.
func (c *Client) HTTPClient() *http.Client {
	return c.http
}

// SessionToken returns the current session cookie value, or "" when no
// session is open. Used by xetactl to persist logins across invocations.
func (c *Client) SessionToken() string {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return ""
	}
	for _, cookie := range c.http.Jar.Cookies(u) {
		if cookie.Name == models.SessionCookie {
			return cookie.Value
		}
	}
	return ""
}

// SetSessionToken seeds the cookie jar with a previously saved session.
func (c *Client) SetSessionToken(token string) {
	u, err := url.Parse(c.baseURL)
	if err != nil || token == "" {
		return
	}
	c.http.Jar.SetCookies(u, []*http.Cookie{{
		Name:  models.SessionCookie,
		Value: token,
		Path:  "/",
	}})
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// ensureCSRF fetches a token once per client. The server rotates the masked
// token per response but any unexpired one is accepted.
func (c *Client) ensureCSRF(ctx context.Context) (string, error) {
	c.mu.Lock()
	token := c.csrfToken
	c.mu.Unlock()
	if token != "" {
		return token, nil
	}

	var body struct {
		CSRFToken string `json:"csrf_token"`
	}
	if err := c.Get(ctx, "/auth/csrf", nil, &body); err != nil {
		return "", err
	}

	c.mu.Lock()
	c.csrfToken = body.CSRFToken
	c.mu.Unlock()
	return body.CSRFToken, nil
}

// ResetCSRF drops the cached token so the next unsafe request fetches a
// fresh one. Called after logout.
func (c *Client) ResetCSRF() {
	c.mu.Lock()
	c.csrfToken = ""
	c.mu.Unlock()
}

func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}
	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}

	var body struct {
		Error  string            `json:"error"`
		Errors map[string]string `json:"errors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		apiErr.Message = body.Error
		apiErr.Fields = body.Errors
	}
	return apiErr
}

// Get performs a GET and decodes the response into out.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

// GetRaw performs a GET and returns the raw body, for binary endpoints like
// QR code labels.
func (c *Client) GetRaw(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, decodeAPIError(resp)
	}
	return io.ReadAll(resp.Body)
}

func (c *Client) send(ctx context.Context, method, path string, in, out interface{}) error {
	token, err := c.ensureCSRF(ctx)
	if err != nil {
		return err
	}

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-CSRF-Token", token)
	return c.do(req, out)
}

func (c *Client) Post(ctx context.Context, path string, in, out interface{}) error {
	return c.send(ctx, http.MethodPost, path, in, out)
}

func (c *Client) Put(ctx context.Context, path string, in, out interface{}) error {
	return c.send(ctx, http.MethodPut, path, in, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.send(ctx, http.MethodDelete, path, nil, nil)
}

// PostFile uploads a single file as multipart form data.
func (c *Client) PostFile(ctx context.Context, path, field, fileName, contentType string, data []byte, out interface{}) error {
	token, err := c.ensureCSRF(ctx)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	header := make(map[string][]string)
	header["Content-Disposition"] = []string{fmt.Sprintf(`form-data; name=%q; filename=%q`, field, fileName)}
	header["Content-Type"] = []string{contentType}
	part, err := mw.CreatePart(header)
	if err != nil {
		return err
	}
	if _, err := part.Write(data); err != nil {
		return err
	}
	if err := mw.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("X-CSRF-Token", token)
	return c.do(req, out)
}

// listQuery encodes normalized list params the way the API expects them.
func listQuery(params models.ListParams) url.Values {
	params = params.Normalize()
	q := url.Values{}
	q.Set("page", strconv.Itoa(params.Page))
	q.Set("per_page", strconv.Itoa(params.PerPage))
	if params.Search != "" {
		q.Set("search", params.Search)
	}
	if params.SortBy != "" {
		q.Set("sort_by", params.SortBy)
		q.Set("sort_dir", params.SortDir)
	}
	for key, value := range params.Filters {
		if value != "" {
			q.Set(key, value)
		}
	}
	return q
}
