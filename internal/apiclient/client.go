// Package apiclient talks to a remote thirtyday server.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	apperrors "github.com/julianstephens/thirtyday/internal/errors"
	"github.com/julianstephens/thirtyday/internal/models"
	"github.com/julianstephens/thirtyday/internal/storage"
)

const defaultTimeout = 10 * time.Second

type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ storage.Gateway = (*Client)(nil)

// New returns a client for the server at baseURL (for example
// http://localhost:3001). A nil httpClient uses one with a 10s timeout.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/api"+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return apperrors.Transient("Server unreachable", err)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return apperrors.Transient("Failed to read response", err)
	}

	if res.StatusCode >= 400 {
		var e struct {
			Error string `json:"error"`
		}
		msg := strings.TrimSpace(string(data))
		if json.Unmarshal(data, &e) == nil && e.Error != "" {
			msg = e.Error
		}
		return apperrors.FromHTTPStatus(res.StatusCode, msg)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return apperrors.Transient("Invalid response from server", err)
	}
	return nil
}

func (c *Client) RegisterUser(ctx context.Context, name string) (models.Registration, error) {
	var reg models.Registration
	err := c.do(ctx, http.MethodPost, "/users/register", map[string]string{"name": name}, &reg)
	return reg, err
}

func (c *Client) SaveProgress(ctx context.Context, update models.ProgressUpdate) error {
	return c.do(ctx, http.MethodPost, "/users/progress", update, nil)
}

func (c *Client) GetProgress(ctx context.Context, userID int64) (models.Progress, error) {
	p := models.NewProgress()
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/users/%d/progress", userID), nil, &p); err != nil {
		return models.Progress{}, err
	}
	if p.CheckedDays == nil {
		p.CheckedDays = map[int]bool{}
	}
	if p.JournalEntries == nil {
		p.JournalEntries = map[int]string{}
	}
	return p, nil
}

func (c *Client) GetLeaderboard(ctx context.Context) ([]models.LeaderboardEntry, error) {
	var board []models.LeaderboardEntry
	err := c.do(ctx, http.MethodGet, "/leaderboard", nil, &board)
	return board, err
}

func (c *Client) CreateShare(ctx context.Context, req models.ShareRequest) (models.Share, error) {
	var res struct {
		ShareID  string `json:"shareId"`
		ShareURL string `json:"shareUrl"`
	}
	if err := c.do(ctx, http.MethodPost, "/share", req, &res); err != nil {
		return models.Share{}, err
	}
	return models.Share{
		ID:            res.ShareID,
		URL:           res.ShareURL,
		UserID:        req.UserID,
		UserName:      req.UserName,
		Streak:        req.Streak,
		DaysSucceeded: req.DaysSucceeded,
		Extra:         req.Extra,
	}, nil
}

func (c *Client) GetShare(ctx context.Context, id string) (models.Share, error) {
	var res struct {
		UserName      string          `json:"userName"`
		Streak        int             `json:"streak"`
		DaysSucceeded int             `json:"daysSucceeded"`
		ShareData     json.RawMessage `json:"shareData"`
		CreatedAt     time.Time       `json:"createdAt"`
	}
	if err := c.do(ctx, http.MethodGet, "/share/"+url.PathEscape(id), nil, &res); err != nil {
		return models.Share{}, err
	}
	return models.Share{
		ID:            id,
		UserName:      res.UserName,
		Streak:        res.Streak,
		DaysSucceeded: res.DaysSucceeded,
		Extra:         res.ShareData,
		CreatedAt:     res.CreatedAt,
		URL:           c.baseURL + "/share/" + url.PathEscape(id),
	}, nil
}

// Health checks that the server answers its health endpoint.
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil)
}
