// Package retroclient is a Go client for the retrospective board API. It
// carries a typed REST client, an explicit board Store that re-fetches on
// change notifications, and a WebSocket Subscriber feeding that store.
package retroclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

const defaultTimeout = 15 * time.Second

// APIError is a non-2xx response.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("retroboard: %d %s", e.Status, e.Message)
}

// IsNotFound reports whether err is a 404 from the server.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// Client calls the REST API. It is safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client

	mu    sync.RWMutex
	token string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithToken sets the session token sent as a bearer credential.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// New creates a client for the server at baseURL, e.g. http://localhost:8080.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// BaseURL returns the server address the client was created with.
func (c *Client) BaseURL() string { return c.baseURL }

// Token returns the current session token.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// SetToken replaces the session token.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// ---------------------------------------------------------------------------
// Session
// ---------------------------------------------------------------------------

// Login issues a session for name and keeps its token for later calls.
func (c *Client) Login(ctx context.Context, name string) (Token, error) {
	var t Token
	if err := c.do(ctx, http.MethodPost, "/api/session", map[string]string{"name": name}, &t); err != nil {
		return Token{}, err
	}
	c.SetToken(t.Token)
	return t, nil
}

// ---------------------------------------------------------------------------
// Retrospectives
// ---------------------------------------------------------------------------

func (c *Client) ListRetros(ctx context.Context, team string, limit int) ([]Retrospective, error) {
	q := url.Values{}
	if team != "" {
		q.Set("team", team)
	}
	if limit > 0 {
		q.Set("limit", fmt.Sprint(limit))
	}
	path := "/api/retrospectives"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	var out []Retrospective
	err := c.do(ctx, http.MethodGet, path, nil, &out)
	return out, err
}

func (c *Client) CreateRetro(ctx context.Context, in NewRetro) (Retrospective, error) {
	var out Retrospective
	err := c.do(ctx, http.MethodPost, "/api/retrospectives", in, &out)
	return out, err
}

func (c *Client) GetRetro(ctx context.Context, id string) (Retrospective, error) {
	var out Retrospective
	err := c.do(ctx, http.MethodGet, "/api/retrospectives/"+url.PathEscape(id), nil, &out)
	return out, err
}

func (c *Client) UpdateRetro(ctx context.Context, id string, patch RetroPatch) (Retrospective, error) {
	var out Retrospective
	err := c.do(ctx, http.MethodPatch, "/api/retrospectives/"+url.PathEscape(id), patch, &out)
	return out, err
}

func (c *Client) DeleteRetro(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/retrospectives/"+url.PathEscape(id), nil, nil)
}

// ---------------------------------------------------------------------------
// Cards, votes, comments
// ---------------------------------------------------------------------------

// ListCards returns the cards of a retrospective. hasVoted is computed for
// userID, or for the session user when userID is empty.
func (c *Client) ListCards(ctx context.Context, retroID, userID string) ([]Card, error) {
	path := "/api/retrospectives/" + url.PathEscape(retroID) + "/cards"
	if userID != "" {
		path += "?userId=" + url.QueryEscape(userID)
	}
	var out []Card
	err := c.do(ctx, http.MethodGet, path, nil, &out)
	return out, err
}

func (c *Client) CreateCard(ctx context.Context, retroID string, in NewCard) (Card, error) {
	var out Card
	err := c.do(ctx, http.MethodPost, "/api/retrospectives/"+url.PathEscape(retroID)+"/cards", in, &out)
	return out, err
}

func (c *Client) UpdateCard(ctx context.Context, id string, patch CardPatch) (Card, error) {
	var out Card
	err := c.do(ctx, http.MethodPatch, "/api/cards/"+url.PathEscape(id), patch, &out)
	return out, err
}

func (c *Client) DeleteCard(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/cards/"+url.PathEscape(id), nil, nil)
}

// ToggleVote adds userID's vote to the card, or removes it when present.
// An empty userID votes as the session user.
func (c *Client) ToggleVote(ctx context.Context, cardID, userID string) (VoteResult, error) {
	var body any
	if userID != "" {
		body = map[string]string{"userId": userID}
	}
	var out VoteResult
	err := c.do(ctx, http.MethodPost, "/api/cards/"+url.PathEscape(cardID)+"/vote", body, &out)
	return out, err
}

func (c *Client) AddComment(ctx context.Context, cardID, author, content string) (Comment, error) {
	body := map[string]string{"content": content}
	if author != "" {
		body["author"] = author
	}
	var out Comment
	err := c.do(ctx, http.MethodPost, "/api/cards/"+url.PathEscape(cardID)+"/comments", body, &out)
	return out, err
}

func (c *Client) DeleteComment(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/comments/"+url.PathEscape(id), nil, nil)
}

// ---------------------------------------------------------------------------
// Actions
// ---------------------------------------------------------------------------

func (c *Client) ListActions(ctx context.Context, retroID string) ([]ActionItem, error) {
	var out []ActionItem
	err := c.do(ctx, http.MethodGet, "/api/retrospectives/"+url.PathEscape(retroID)+"/actions", nil, &out)
	return out, err
}

func (c *Client) CreateAction(ctx context.Context, retroID string, in NewAction) (ActionItem, error) {
	var out ActionItem
	err := c.do(ctx, http.MethodPost, "/api/retrospectives/"+url.PathEscape(retroID)+"/actions", in, &out)
	return out, err
}

func (c *Client) UpdateAction(ctx context.Context, id string, patch ActionPatch) (ActionItem, error) {
	var out ActionItem
	err := c.do(ctx, http.MethodPatch, "/api/actions/"+url.PathEscape(id), patch, &out)
	return out, err
}

func (c *Client) ToggleAction(ctx context.Context, id string) (ActionItem, error) {
	var out ActionItem
	err := c.do(ctx, http.MethodPost, "/api/actions/"+url.PathEscape(id)+"/toggle", nil, &out)
	return out, err
}

func (c *Client) DeleteAction(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/actions/"+url.PathEscape(id), nil, nil)
}

// ---------------------------------------------------------------------------
// Groups
// ---------------------------------------------------------------------------

func (c *Client) ListGroups(ctx context.Context, retroID string) ([]CardGroup, error) {
	var out []CardGroup
	err := c.do(ctx, http.MethodGet, "/api/retrospectives/"+url.PathEscape(retroID)+"/groups", nil, &out)
	return out, err
}

func (c *Client) CreateGroup(ctx context.Context, retroID string, in NewGroup) (CardGroup, error) {
	var out CardGroup
	err := c.do(ctx, http.MethodPost, "/api/retrospectives/"+url.PathEscape(retroID)+"/groups", in, &out)
	return out, err
}

func (c *Client) RenameGroup(ctx context.Context, id, title string) (CardGroup, error) {
	var out CardGroup
	err := c.do(ctx, http.MethodPatch, "/api/groups/"+url.PathEscape(id), map[string]string{"title": title}, &out)
	return out, err
}

func (c *Client) DeleteGroup(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/groups/"+url.PathEscape(id), nil, nil)
}

func (c *Client) AddCardToGroup(ctx context.Context, groupID, cardID string) (CardGroup, error) {
	var out CardGroup
	err := c.do(ctx, http.MethodPost, "/api/groups/"+url.PathEscape(groupID)+"/cards", map[string]string{"cardId": cardID}, &out)
	return out, err
}

func (c *Client) RemoveCardFromGroup(ctx context.Context, groupID, cardID string) (CardGroup, error) {
	var out CardGroup
	err := c.do(ctx, http.MethodDelete, "/api/groups/"+url.PathEscape(groupID)+"/cards/"+url.PathEscape(cardID), nil, &out)
	return out, err
}

// ---------------------------------------------------------------------------
// Transport
// ---------------------------------------------------------------------------

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rdr)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		return decodeAPIError(resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}
	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(&body); err == nil && body.Message != "" {
		apiErr.Message = body.Message
	} else {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	return apiErr
}
