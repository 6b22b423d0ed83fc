// Package client calls the memo API over HTTP.
//
// Every failure is one of *ServerError, *NoResponseError or
// *RequestSetupError; match them with errors.As.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/ferdiebergado/memoboard/internal/memo"
)

const (
	DefaultBaseURL = "http://localhost:3333/api/memos"
	DefaultTimeout = 10 * time.Second

	maxErrorBody = 64 << 10
)

// CreateInput is the body of a create call. An empty CreatedAt lets the
// server use the current date.
type CreateInput struct {
	Title     string `json:"title"`
	CreatedAt string `json:"created_at,omitempty"`
}

type UpdateInput struct {
	Title  string `json:"title"`
	Status string `json:"status"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

type Option func(*Client)

func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

func New(opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Client) GetAllMemos(ctx context.Context) ([]memo.Memo, error) {
	var memos []memo.Memo
	if err := c.do(ctx, http.MethodGet, c.baseURL, nil, &memos); err != nil {
		return nil, fmt.Errorf("failed to fetch memos: %w", err)
	}
	return memos, nil
}

func (c *Client) GetMemo(ctx context.Context, memoID int) (memo.Memo, error) {
	var m memo.Memo
	if err := c.do(ctx, http.MethodGet, c.memoURL(memoID), nil, &m); err != nil {
		return memo.Memo{}, err
	}
	return m, nil
}

func (c *Client) CreateMemo(ctx context.Context, in CreateInput) (memo.Memo, error) {
	var m memo.Memo
	if err := c.do(ctx, http.MethodPost, c.baseURL, in, &m); err != nil {
		return memo.Memo{}, err
	}
	return m, nil
}

func (c *Client) DeleteMemo(ctx context.Context, memoID int) error {
	return c.do(ctx, http.MethodDelete, c.memoURL(memoID), nil, nil)
}

// UpdateMemo logs which kind of failure occurred before returning it.
func (c *Client) UpdateMemo(ctx context.Context, memoID int, in UpdateInput) (memo.Memo, error) {
	var m memo.Memo
	err := c.do(ctx, http.MethodPut, c.memoURL(memoID), in, &m)
	if err == nil {
		return m, nil
	}

	var (
		serverErr *ServerError
		noRespErr *NoResponseError
		setupErr  *RequestSetupError
	)
	switch {
	case errors.As(err, &serverErr):
		c.logger.Error("Server Error", "status", serverErr.Code, "body", string(serverErr.Body))
	case errors.As(err, &noRespErr):
		c.logger.Error("No response from server", "reason", noRespErr.Err)
	case errors.As(err, &setupErr):
		c.logger.Error("Request error", "message", setupErr.Message)
	}

	return memo.Memo{}, err
}

func (c *Client) memoURL(memoID int) string {
	return c.baseURL + "/" + strconv.Itoa(memoID)
}

func (c *Client) do(ctx context.Context, method, url string, in, out any) error {
	body := io.Reader(http.NoBody)
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return &RequestSetupError{Message: "encode request body: " + err.Error(), Err: err}
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return &RequestSetupError{Message: err.Error(), Err: err}
	}

	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return &NoResponseError{Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode >= http.StatusBadRequest {
		data, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))
		return &ServerError{Code: res.StatusCode, Body: data}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, res.Body)
		return nil
	}

	// A body that cannot be decoded is no usable response.
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return &NoResponseError{Err: fmt.Errorf("decode response: %w", err)}
	}

	return nil
}
