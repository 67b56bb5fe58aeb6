package riders

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"franchise-dispatch/internal/apperr"
	"franchise-dispatch/internal/domain"
	"franchise-dispatch/internal/session"
)

// Client is a REST client for the rider directory. Assignment and
// reassignment share the payload shape but not the verb: the backend keeps
// them apart for its audit trail.
type Client struct {
	baseURL string
	http    *http.Client
	sess    *session.Session
}

// NewClient creates a rider directory client.
func NewClient(baseURL string, timeout time.Duration, sess *session.Session) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		sess:    sess,
	}
}

type riderDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone_number"`
	Email string `json:"email"`
}

type assignDTO struct {
	OrderIDs []string `json:"order_ids"`
	UserID   string   `json:"user_id"`
}

// List fetches riders, optionally narrowed by a search term.
func (c *Client) List(ctx context.Context, search string) ([]domain.Rider, error) {
	path := "/ydm-riders"
	if search != "" {
		path += "?search=" + url.QueryEscape(search)
	}
	var dtos []riderDTO
	if err := c.do(ctx, http.MethodGet, path, nil, &dtos); err != nil {
		return nil, fmt.Errorf("rider gateway: list: %w", err)
	}
	out := make([]domain.Rider, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, domain.Rider{ID: d.ID, Name: d.Name, Phone: d.Phone, Email: d.Email})
	}
	return out, nil
}

// Assign gives currently unassigned orders to a rider (first assignment).
func (c *Client) Assign(ctx context.Context, orderIDs []string, riderID string) error {
	body := assignDTO{OrderIDs: orderIDs, UserID: riderID}
	if err := c.do(ctx, http.MethodPost, "/assign-order", body, nil); err != nil {
		return fmt.Errorf("rider gateway: assign: %w", err)
	}
	return nil
}

// Reassign moves already assigned orders to a different rider.
func (c *Client) Reassign(ctx context.Context, orderIDs []string, riderID string) error {
	body := assignDTO{OrderIDs: orderIDs, UserID: riderID}
	if err := c.do(ctx, http.MethodPatch, "/assign-order", body, nil); err != nil {
		return fmt.Errorf("rider gateway: reassign: %w", err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body, dst any) error {
	var rd *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode body: %w", err)
		}
		rd = bytes.NewReader(raw)
	} else {
		rd = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	c.sess.Authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		c.sess.Clear()
		return apperr.Unauthorized
	case resp.StatusCode == http.StatusNotFound:
		return apperr.NotFound
	case resp.StatusCode == http.StatusBadRequest:
		return apperr.Invalid
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return fmt.Errorf("rider directory responded %d", resp.StatusCode)
	}

	if dst == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
