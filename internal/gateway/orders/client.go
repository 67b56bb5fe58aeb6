package orders

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"franchise-dispatch/internal/apperr"
	"franchise-dispatch/internal/domain"
	"franchise-dispatch/internal/session"
)

const dateLayout = "2006-01-02"

// StatusError carries a non-2xx upstream response code.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("order store responded %d", e.Code)
}

// Client is a REST client for the remote order store.
type Client struct {
	baseURL string
	http    *http.Client
	sess    *session.Session
}

// NewClient creates an order store client. The session supplies the bearer
// token for every request.
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

// List fetches one page of orders matching the query.
func (c *Client) List(ctx context.Context, q domain.OrderQuery) (domain.OrderPage, error) {
	var page pageDTO
	if err := c.do(ctx, http.MethodGet, "/orders?"+listParams(q).Encode(), nil, &page); err != nil {
		return domain.OrderPage{}, fmt.Errorf("order gateway: list: %w", err)
	}
	out := domain.OrderPage{Count: page.Count, Results: make([]domain.Order, 0, len(page.Results))}
	for _, d := range page.Results {
		out.Results = append(out.Results, toDomain(d))
	}
	return out, nil
}

// Get fetches a single order by id.
func (c *Client) Get(ctx context.Context, id string) (*domain.Order, error) {
	var d orderDTO
	if err := c.do(ctx, http.MethodGet, "/orders/"+url.PathEscape(id), nil, &d); err != nil {
		return nil, fmt.Errorf("order gateway: get %s: %w", id, err)
	}
	ord := toDomain(d)
	return &ord, nil
}

// Patch applies a partial update to a single order and returns the updated order.
func (c *Client) Patch(ctx context.Context, u domain.PartialOrderUpdate) (*domain.Order, error) {
	var d orderDTO
	if err := c.do(ctx, http.MethodPatch, "/orders/"+url.PathEscape(u.ID), toPatchDTO(u), &d); err != nil {
		return nil, fmt.Errorf("order gateway: patch %s: %w", u.ID, err)
	}
	ord := toDomain(d)
	return &ord, nil
}

// BulkUpdateStatus moves a batch of orders into status through the dedicated
// bulk endpoint. The order store uses it for the verification gate.
func (c *Client) BulkUpdateStatus(ctx context.Context, orderIDs []string, status domain.OrderStatus) error {
	body := bulkStatusDTO{OrderIDs: orderIDs, Status: string(status)}
	if err := c.do(ctx, http.MethodPost, "/update-order-status", body, nil); err != nil {
		return fmt.Errorf("order gateway: bulk status %s: %w", status, err)
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
		// Upstream dropped our token: forget it so callers fail fast until
		// a new one is set.
		c.sess.Clear()
		return apperr.Unauthorized
	case resp.StatusCode == http.StatusNotFound:
		return apperr.NotFound
	case resp.StatusCode == http.StatusBadRequest:
		return apperr.Invalid
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return &StatusError{Code: resp.StatusCode}
	}

	if dst == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func listParams(q domain.OrderQuery) url.Values {
	v := url.Values{}
	if q.Franchise != "" {
		v.Set("franchise", q.Franchise)
	}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.PageSize > 0 {
		v.Set("page_size", strconv.Itoa(q.PageSize))
	}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.Status != "" {
		v.Set("order_status", string(q.Status))
	}
	if q.DeliveryType != "" {
		v.Set("delivery_type", string(q.DeliveryType))
	}
	if q.IsAssigned != domain.AssignmentAny {
		v.Set("is_assigned", string(q.IsAssigned))
	}
	if !q.StartDate.IsZero() {
		v.Set("start_date", q.StartDate.Format(dateLayout))
	}
	if !q.EndDate.IsZero() {
		v.Set("end_date", q.EndDate.Format(dateLayout))
	}
	return v
}
