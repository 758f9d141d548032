package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/maintdesk/maintdesk/internal/client/models"
	"github.com/maintdesk/maintdesk/internal/logging"
)

// envelope is the wire shape every backend response follows. Data is decoded
// a second time into the endpoint's typed payload once the envelope has been
// classified as success.
type envelope struct {
	Message string          `json:"message"`
	Error   bool            `json:"error"`
	Data    json.RawMessage `json:"data"`
}

// HTTPClient is the concrete Client talking JSON over HTTP.
//
// It never retries and never refreshes tokens: a transport failure surfaces
// as ErrUnavailable, a 401 as ErrUnauthorized, and any other failure as an
// *Error carrying the envelope message. The per-request timeout comes from
// the underlying http.Client; callers can shorten it further via ctx.
type HTTPClient struct {
	baseURL string
	hc      *http.Client
	tokens  TokenSource
	log     logging.Logger
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient builds a client for the backend at baseURL (e.g.
// "http://localhost:8080/api/v1"). A zero timeout disables the client-side
// deadline.
func NewHTTPClient(baseURL string, tokens TokenSource, log logging.Logger, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: timeout},
		tokens:  tokens,
		log:     log,
	}
}

// do performs one request/response round trip. The body (if any) is sent as
// JSON; on success the envelope's data field is decoded into out (if non-nil).
// When authed is true the current access token is attached as a bearer header.
func (c *HTTPClient) do(ctx context.Context, method, path string, authed bool, body any, out any) error {
	var payload *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		payload = bytes.NewReader(raw)
	} else {
		payload = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		token, err := c.tokens.AccessToken(ctx)
		if err != nil {
			return fmt.Errorf("reading access token: %w", err)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "method", method, "path", path, "err", err)
		return fmt.Errorf("%s %s: %w", method, path, ErrUnavailable)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		c.log.Warn(ctx, "malformed response", "method", method, "path", path, "status", resp.StatusCode, "err", err)
		return fmt.Errorf("%s %s: decoding response: %w", method, path, ErrUnavailable)
	}

	// A non-2xx status and a truthy error flag are the same failure.
	if resp.StatusCode == http.StatusUnauthorized {
		if env.Message != "" {
			return fmt.Errorf("%s: %w", env.Message, ErrUnauthorized)
		}
		return ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 || env.Error {
		return &Error{StatusCode: resp.StatusCode, Message: env.Message}
	}

	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("%s %s: decoding data: %w", method, path, err)
		}
	}
	return nil
}

// Login exchanges credentials for an access token and the authenticated user.
func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	body := map[string]string{"email": email, "password": password}
	var data struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/login", false, body, &data); err != nil {
		return "", nil, err
	}
	return data.Token, &data.User, nil
}

// Register creates an account. It does not log the user in; new accounts
// wait for admin verification.
func (c *HTTPClient) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	var data struct {
		User models.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/register", false, input, &data); err != nil {
		return nil, err
	}
	return &data.User, nil
}

// Me resolves the current user from the bearer token.
func (c *HTTPClient) Me(ctx context.Context) (*models.User, error) {
	var data struct {
		User models.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/auth/me", true, nil, &data); err != nil {
		return nil, err
	}
	return &data.User, nil
}

func (c *HTTPClient) Tickets(ctx context.Context) ([]models.Ticket, error) {
	var data struct {
		Tickets []models.Ticket `json:"tickets"`
	}
	if err := c.do(ctx, http.MethodGet, "/tickets", true, nil, &data); err != nil {
		return nil, err
	}
	return data.Tickets, nil
}

func (c *HTTPClient) TicketsByMachine(ctx context.Context, machineID string) ([]models.Ticket, error) {
	var data struct {
		Tickets []models.Ticket `json:"tickets"`
	}
	if err := c.do(ctx, http.MethodGet, "/machines/"+machineID+"/tickets", true, nil, &data); err != nil {
		return nil, err
	}
	return data.Tickets, nil
}

func (c *HTTPClient) CreateTicket(ctx context.Context, input TicketInput) (*models.Ticket, error) {
	var data struct {
		Ticket models.Ticket `json:"ticket"`
	}
	if err := c.do(ctx, http.MethodPost, "/tickets", true, input, &data); err != nil {
		return nil, err
	}
	return &data.Ticket, nil
}

func (c *HTTPClient) UpdateTicket(ctx context.Context, id string, input TicketInput) (*models.Ticket, error) {
	var data struct {
		Ticket models.Ticket `json:"ticket"`
	}
	if err := c.do(ctx, http.MethodPut, "/tickets/"+id, true, input, &data); err != nil {
		return nil, err
	}
	return &data.Ticket, nil
}

func (c *HTTPClient) DeleteTicket(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/tickets/"+id, true, nil, nil)
}

func (c *HTTPClient) Machines(ctx context.Context) ([]models.Machine, error) {
	var data struct {
		Machines []models.Machine `json:"machines"`
	}
	if err := c.do(ctx, http.MethodGet, "/machines", true, nil, &data); err != nil {
		return nil, err
	}
	return data.Machines, nil
}

func (c *HTTPClient) CreateMachine(ctx context.Context, input MachineInput) (*models.Machine, error) {
	var data struct {
		Machine models.Machine `json:"machine"`
	}
	if err := c.do(ctx, http.MethodPost, "/machines", true, input, &data); err != nil {
		return nil, err
	}
	return &data.Machine, nil
}

func (c *HTTPClient) UpdateMachine(ctx context.Context, id string, input MachineInput) (*models.Machine, error) {
	var data struct {
		Machine models.Machine `json:"machine"`
	}
	if err := c.do(ctx, http.MethodPut, "/machines/"+id, true, input, &data); err != nil {
		return nil, err
	}
	return &data.Machine, nil
}

func (c *HTTPClient) DeleteMachine(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/machines/"+id, true, nil, nil)
}

func (c *HTTPClient) MachineStatuses(ctx context.Context) ([]models.MachineStatus, error) {
	var data struct {
		Statuses []models.MachineStatus `json:"statuses"`
	}
	if err := c.do(ctx, http.MethodGet, "/machines/statuses/all", true, nil, &data); err != nil {
		return nil, err
	}
	return data.Statuses, nil
}

// MachineStatusesByMachine returns the reading series for one machine,
// most recent first. The backend defines the sort order; the client relies
// on it (see store.StatusStore.LatestByMachine).
func (c *HTTPClient) MachineStatusesByMachine(ctx context.Context, machineID string) ([]models.MachineStatus, error) {
	var data struct {
		Statuses []models.MachineStatus `json:"statuses"`
	}
	if err := c.do(ctx, http.MethodGet, "/machines/"+machineID+"/statuses", true, nil, &data); err != nil {
		return nil, err
	}
	return data.Statuses, nil
}

// CreateMachineStatus records a reading. The backend acknowledges with a
// message only, so there is no entity to return.
func (c *HTTPClient) CreateMachineStatus(ctx context.Context, input StatusInput) error {
	return c.do(ctx, http.MethodPost, "/machines/statuses", true, input, nil)
}

func (c *HTTPClient) UpdateMachineStatus(ctx context.Context, id string, input StatusInput) (*models.MachineStatus, error) {
	var data struct {
		Status models.MachineStatus `json:"status"`
	}
	if err := c.do(ctx, http.MethodPut, "/machines/statuses/"+id, true, input, &data); err != nil {
		return nil, err
	}
	return &data.Status, nil
}

func (c *HTTPClient) DeleteMachineStatus(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/machines/statuses/"+id, true, nil, nil)
}

func (c *HTTPClient) Users(ctx context.Context) ([]models.User, error) {
	var data struct {
		Users []models.User `json:"users"`
	}
	if err := c.do(ctx, http.MethodGet, "/users", true, nil, &data); err != nil {
		return nil, err
	}
	return data.Users, nil
}

func (c *HTTPClient) VerifyUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPatch, "/users/"+id+"/verify", true, nil, nil)
}

func (c *HTTPClient) UnverifyUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPatch, "/users/"+id+"/unverify", true, nil, nil)
}

func (c *HTTPClient) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/users/"+id, true, nil, nil)
}

func (c *HTTPClient) Overview(ctx context.Context) (*models.Overview, error) {
	var data struct {
		Overview models.Overview `json:"overview"`
	}
	if err := c.do(ctx, http.MethodGet, "/overview", true, nil, &data); err != nil {
		return nil, err
	}
	return &data.Overview, nil
}

func (c *HTTPClient) ChatMessages(ctx context.Context) ([]models.ChatMessage, error) {
	var data struct {
		Messages []models.ChatMessage `json:"messages"`
	}
	if err := c.do(ctx, http.MethodGet, "/chats", true, nil, &data); err != nil {
		return nil, err
	}
	return data.Messages, nil
}

// SendChatMessage submits a prompt and returns the assistant's reply.
func (c *HTTPClient) SendChatMessage(ctx context.Context, content string) (*models.ChatMessage, error) {
	body := map[string]string{"content": content}
	var data struct {
		Message models.ChatMessage `json:"message"`
	}
	if err := c.do(ctx, http.MethodPost, "/chats", true, body, &data); err != nil {
		return nil, err
	}
	return &data.Message, nil
}

func (c *HTTPClient) ClearChatMessages(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/chats", true, nil, nil)
}

func (c *HTTPClient) DeleteChatMessage(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/chats/"+id, true, nil, nil)
}
