package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/diradmin/internal/client/models"
	"github.com/dmitrijs2005/diradmin/internal/common"
	"github.com/dmitrijs2005/diradmin/internal/logging"
	"github.com/google/go-querystring/query"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// HTTPClient talks to the JSON API rooted at the configured base path.
type HTTPClient struct {
	doer    httpDoer
	baseURL *url.URL
}

// NewHTTPClient binds a client to baseURL using doer for the actual calls.
// Header decoration is the doer's concern (see Transport).
func NewHTTPClient(baseURL string, doer httpDoer) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse api base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("api base url %q must be absolute", baseURL)
	}
	return &HTTPClient{doer: doer, baseURL: u}, nil
}

// New builds an HTTPClient whose requests go through a decorating Transport.
// No timeout is set: calls run until the context ends.
func New(baseURL string, headers Headers, tokens TokenSource, logger logging.Logger) (*HTTPClient, error) {
	hc := &http.Client{Transport: NewTransport(http.DefaultTransport, headers, tokens, logger)}
	return NewHTTPClient(baseURL, hc)
}

type listUsersQuery struct {
	Page     int `url:"page"`
	PageSize int `url:"pageSize"`
}

type countriesQuery struct {
	ReturnAll int `url:"return_all"`
}

type userEnvelope struct {
	Data *models.User `json:"data"`
}

type countriesEnvelope struct {
	Data []models.Country `json:"data"`
}

// Login posts the admin credentials. The response is returned as received;
// interpreting its status is up to the caller.
func (c *HTTPClient) Login(ctx context.Context, creds models.Credentials) (*models.LoginResponse, error) {
	body := models.LoginRequest{Field: creds.Identifier, Password: creds.Secret, Type: models.LoginTypeAdmin}

	var resp models.LoginResponse
	if err := c.do(ctx, http.MethodPost, []string{"auth", "admin-login"}, nil, body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListUsers fetches one page; page is 1-indexed.
func (c *HTTPClient) ListUsers(ctx context.Context, page, pageSize int) (*models.Page, error) {
	if page < 1 || pageSize < 1 {
		return nil, ErrInvalidPage
	}

	var raw json.RawMessage
	q := listUsersQuery{Page: page, PageSize: pageSize}
	if err := c.do(ctx, http.MethodGet, []string{"users"}, q, nil, &raw); err != nil {
		return nil, err
	}
	return models.DecodePage(raw, page, pageSize)
}

func (c *HTTPClient) GetUser(ctx context.Context, id int64) (*models.User, error) {
	var env userEnvelope
	if err := c.do(ctx, http.MethodGet, []string{"users", strconv.FormatInt(id, 10)}, nil, nil, &env); err != nil {
		return nil, err
	}
	if env.Data == nil {
		return nil, fmt.Errorf("user %d: %w", id, ErrNotFound)
	}
	return env.Data, nil
}

func (c *HTTPClient) CreateUser(ctx context.Context, user models.UserInput) (*models.User, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodPost, []string{"users", "create"}, nil, user, &raw); err != nil {
		return nil, err
	}
	return decodeUser(raw)
}

func (c *HTTPClient) UpdateUser(ctx context.Context, user models.UserInput, id int64) (*models.User, error) {
	var raw json.RawMessage
	path := []string{"users", strconv.FormatInt(id, 10), "edit"}
	if err := c.do(ctx, http.MethodPost, path, nil, user, &raw); err != nil {
		return nil, err
	}
	return decodeUser(raw)
}

// ListCountries fetches the whole reference set in one call.
func (c *HTTPClient) ListCountries(ctx context.Context) ([]models.Country, error) {
	var env countriesEnvelope
	if err := c.do(ctx, http.MethodGet, []string{"countries"}, countriesQuery{ReturnAll: 1}, nil, &env); err != nil {
		return nil, err
	}
	if env.Data == nil {
		return []models.Country{}, nil
	}
	return env.Data, nil
}

// decodeUser accepts either a bare record or one wrapped in {"data": ...}.
func decodeUser(raw json.RawMessage) (*models.User, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return &models.User{}, nil
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, fmt.Errorf("decode user: %w", err)
	}
	if data, ok := probe["data"]; ok && len(data) > 0 && data[0] == '{' {
		raw = data
	}

	var u models.User
	if err := json.Unmarshal(raw, &u); err != nil {
		return nil, fmt.Errorf("decode user: %w", err)
	}
	return &u, nil
}

// do performs one request. q, when non-nil, is encoded with go-querystring;
// in, when non-nil, is sent as JSON; a 2xx body is decoded into out.
func (c *HTTPClient) do(ctx context.Context, method string, path []string, q any, in any, out any) error {
	u := c.baseURL.JoinPath(path...)
	if q != nil {
		values, err := query.Values(q)
		if err != nil {
			return fmt.Errorf("encode query: %w", err)
		}
		u.RawQuery = values.Encode()
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set(common.HeaderContentType, common.ContentTypeJSON)
	}

	resp, err := c.doer.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp.StatusCode, respBody)
	}

	if out == nil {
		return nil
	}
	if raw, ok := out.(*json.RawMessage); ok {
		*raw = append((*raw)[:0], respBody...)
		return nil
	}
	if len(bytes.TrimSpace(respBody)) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
