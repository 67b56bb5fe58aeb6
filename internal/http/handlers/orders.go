package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"franchise-dispatch/internal/apperr"
	"franchise-dispatch/internal/domain"
	mw "franchise-dispatch/internal/http/middleware"
	"franchise-dispatch/internal/logx"
	"franchise-dispatch/internal/service/orders"
	"franchise-dispatch/internal/service/status"
	"franchise-dispatch/internal/service/workspace"
)

// OrderHandler serves the order listing and mutation endpoints.
type OrderHandler struct {
	logger     logx.Logger
	store      OrderReader
	engine     StatusEngine
	trail      AuditTrail
	feed       Feed
	workspaces *workspace.Registry
}

// NewOrderHandler wires the order endpoints.
func NewOrderHandler(
	logger logx.Logger,
	store OrderReader,
	engine StatusEngine,
	trail AuditTrail,
	feed Feed,
	workspaces *workspace.Registry,
) *OrderHandler {
	return &OrderHandler{
		logger:     logger,
		store:      store,
		engine:     engine,
		trail:      trail,
		feed:       feed,
		workspaces: workspaces,
	}
}

func userWorkspace(h *workspace.Registry, w http.ResponseWriter, r *http.Request, logger logx.Logger) (*workspace.Workspace, bool) {
	claims := mw.ClaimsFromContext(r.Context())
	if claims == nil {
		writeError(logger, w, r, http.StatusUnauthorized, "not authenticated")
		return nil, false
	}
	return h.Get(claims.UserID), true
}

// List handles GET /orders: the user's current filter query against the order
// store. A ?page= override moves the page first.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	ws, ok := userWorkspace(h.workspaces, w, r, h.logger)
	if !ok {
		return
	}

	if s := r.URL.Query().Get("page"); s != "" {
		page, err := parsePositiveInt(s)
		if err != nil {
			writeError(h.logger, w, r, http.StatusBadRequest, "invalid page")
			return
		}
		// a page move changes the visible rows, so the old selection no
		// longer applies
		if page != ws.Filters.Query().Page {
			ws.Filters.SetPage(page)
			ws.Selection.Clear()
		}
	}

	ctx, cancel := withUpstreamTimeout(r.Context())
	defer cancel()

	page, err := h.store.List(ctx, ws.Filters.Query())
	switch {
	case err == nil:
	case errors.Is(err, apperr.Unauthorized):
		writeError(h.logger, w, r, http.StatusUnauthorized, "order store session expired")
		return
	default:
		writeError(h.logger, w, r, http.StatusBadGateway, "order store unavailable")
		return
	}

	dto := orderPageDTO{Results: make([]orderDTO, 0, len(page.Results)), Count: page.Count}
	for _, o := range page.Results {
		dto.Results = append(dto.Results, toOrderDTO(o, ws.Selection.Selected(o.ID), h.engine.Updating(o.ID)))
	}
	writeJSON(h.logger, w, r, http.StatusOK, dto)
}

// UpdateStatus handles PATCH /orders/{id}/status. The current status comes
// from a fresh read of the order store, never from the client.
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")
	if orderID == "" {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}

	var req statusUpdateRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	claims := mw.ClaimsFromContext(r.Context())
	if claims == nil {
		writeError(h.logger, w, r, http.StatusUnauthorized, "not authenticated")
		return
	}

	ctx, cancel := withUpstreamTimeout(r.Context())
	defer cancel()

	ord, err := h.store.Get(ctx, orderID)
	switch {
	case err == nil:
	case errors.Is(err, apperr.NotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "order not found")
		return
	case errors.Is(err, apperr.Unauthorized):
		writeError(h.logger, w, r, http.StatusUnauthorized, "order store session expired")
		return
	default:
		writeError(h.logger, w, r, http.StatusBadGateway, "order store unavailable")
		return
	}

	to := domain.OrderStatus(req.Status)
	err = h.engine.Update(ctx, status.UpdateRequest{
		OrderID:   orderID,
		From:      ord.Status,
		To:        to,
		Actor:     actorFromRole(claims.Role),
		Comment:   req.Comment,
		Confirmed: req.Confirmed,
	})
	switch {
	case err == nil:
	case errors.Is(err, apperr.Invalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid status update")
		return
	case errors.Is(err, apperr.Conflict):
		writeError(h.logger, w, r, http.StatusConflict, "status transition not allowed")
		return
	case errors.Is(err, apperr.Unauthorized):
		writeError(h.logger, w, r, http.StatusUnauthorized, "order store session expired")
		return
	default:
		writeError(h.logger, w, r, http.StatusBadGateway, "order store unavailable")
		return
	}

	h.feed.Broadcast(orders.Event{
		OrderID:   orderID,
		Status:    string(to),
		RiderID:   ord.RiderID,
		CreatedAt: time.Now().UTC(),
	})
	writeJSON(h.logger, w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// Audit handles GET /orders/{id}/audit.
func (h *OrderHandler) Audit(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")
	if orderID == "" {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}

	ctx, cancel := withUpstreamTimeout(r.Context())
	defer cancel()

	recs, err := h.trail.ListByOrder(ctx, orderID)
	if err != nil {
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
		return
	}

	out := make([]auditDTO, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toAuditDTO(rec))
	}
	writeJSON(h.logger, w, r, http.StatusOK, out)
}

func actorFromRole(role string) domain.Actor {
	if role == "rider" {
		return domain.ActorRider
	}
	return domain.ActorFranchise
}

func parsePositiveInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, errors.New("invalid number")
	}
	return n, nil
}
