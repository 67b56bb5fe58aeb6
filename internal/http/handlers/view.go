package handlers

import (
	"errors"
	"net/http"
	"time"

	"franchise-dispatch/internal/apperr"
	"franchise-dispatch/internal/domain"
	"franchise-dispatch/internal/logx"
	"franchise-dispatch/internal/service/workspace"
)

const dateLayout = "2006-01-02"

// ViewHandler serves the per-user dashboard state: listing filters and the
// bulk-action selection.
type ViewHandler struct {
	logger     logx.Logger
	workspaces *workspace.Registry
}

// NewViewHandler wires the filter and selection endpoints.
func NewViewHandler(logger logx.Logger, workspaces *workspace.Registry) *ViewHandler {
	return &ViewHandler{logger: logger, workspaces: workspaces}
}

// UpdateFilters handles PUT /filters. Provided fields are applied in order;
// the search term settles after the debounce window. Any filter change resets
// the selection along with the page.
func (h *ViewHandler) UpdateFilters(w http.ResponseWriter, r *http.Request) {
	ws, ok := userWorkspace(h.workspaces, w, r, h.logger)
	if !ok {
		return
	}

	var req filtersRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	if req.Status != nil {
		s := domain.OrderStatus(*req.Status)
		if *req.Status != "" && !s.Valid() {
			writeError(h.logger, w, r, http.StatusBadRequest, "invalid status")
			return
		}
		ws.Filters.SetStatus(s)
	}
	if req.DeliveryType != nil {
		ws.Filters.SetDeliveryType(domain.DeliveryType(*req.DeliveryType))
	}
	if req.IsAssigned != nil {
		f := domain.AssignmentFilter(*req.IsAssigned)
		switch f {
		case domain.AssignmentAny, domain.AssignmentAssigned, domain.AssignmentUnassigned:
		default:
			writeError(h.logger, w, r, http.StatusBadRequest, "invalid is_assigned")
			return
		}
		ws.Filters.SetAssignment(f)
	}
	if req.StartDate != nil || req.EndDate != nil {
		start, end, err := parseDateRange(req.StartDate, req.EndDate)
		if err != nil {
			writeError(h.logger, w, r, http.StatusBadRequest, "invalid date range")
			return
		}
		ws.Filters.SetDateRange(start, end)
	}
	if req.Search != nil {
		ws.Filters.SetSearch(*req.Search)
	}
	if req.Page != nil {
		if *req.Page < 1 {
			writeError(h.logger, w, r, http.StatusBadRequest, "invalid page")
			return
		}
		ws.Filters.SetPage(*req.Page)
	}

	// the visible rows change, so the old selection no longer applies
	if req.Page != nil || req.Status != nil || req.DeliveryType != nil ||
		req.IsAssigned != nil || req.StartDate != nil || req.EndDate != nil ||
		req.Search != nil {
		ws.Selection.Clear()
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetSelection handles GET /selection.
func (h *ViewHandler) GetSelection(w http.ResponseWriter, r *http.Request) {
	ws, ok := userWorkspace(h.workspaces, w, r, h.logger)
	if !ok {
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, map[string]any{"order_ids": ws.Selection.IDs()})
}

// ToggleSelection handles POST /selection/toggle.
func (h *ViewHandler) ToggleSelection(w http.ResponseWriter, r *http.Request) {
	ws, ok := userWorkspace(h.workspaces, w, r, h.logger)
	if !ok {
		return
	}

	var req toggleRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	if req.OrderID == "" {
		writeError(h.logger, w, r, http.StatusBadRequest, "missing order_id")
		return
	}

	ws.Selection.Toggle(req.OrderID)
	writeJSON(h.logger, w, r, http.StatusOK, map[string]any{"order_ids": ws.Selection.IDs()})
}

// ToggleAllSelection handles POST /selection/toggle-all with the currently
// visible order ids.
func (h *ViewHandler) ToggleAllSelection(w http.ResponseWriter, r *http.Request) {
	ws, ok := userWorkspace(h.workspaces, w, r, h.logger)
	if !ok {
		return
	}

	var req toggleAllRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	ws.Selection.ToggleAll(req.OrderIDs)
	writeJSON(h.logger, w, r, http.StatusOK, map[string]any{"order_ids": ws.Selection.IDs()})
}

// ClearSelection handles DELETE /selection.
func (h *ViewHandler) ClearSelection(w http.ResponseWriter, r *http.Request) {
	ws, ok := userWorkspace(h.workspaces, w, r, h.logger)
	if !ok {
		return
	}
	ws.Selection.Clear()
	w.WriteHeader(http.StatusNoContent)
}

// Verify handles POST /orders/verify: bulk verify of the current selection.
// An empty selection is a no-op.
func (h *ViewHandler) Verify(w http.ResponseWriter, r *http.Request) {
	ws, ok := userWorkspace(h.workspaces, w, r, h.logger)
	if !ok {
		return
	}

	count := ws.Selection.Len()

	ctx, cancel := withUpstreamTimeout(r.Context())
	defer cancel()

	err := ws.Selection.BulkVerify(ctx)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, map[string]int{"verified": count})
	case errors.Is(err, apperr.Unauthorized):
		writeError(h.logger, w, r, http.StatusUnauthorized, "order store session expired")
	default:
		writeError(h.logger, w, r, http.StatusBadGateway, "order store unavailable")
	}
}

// Assign handles POST /orders/assign: bulk assignment of the current
// selection to one rider. An empty selection is a no-op.
func (h *ViewHandler) Assign(w http.ResponseWriter, r *http.Request) {
	ws, ok := userWorkspace(h.workspaces, w, r, h.logger)
	if !ok {
		return
	}

	var req assignRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	if ws.Selection.Len() == 0 {
		writeJSON(h.logger, w, r, http.StatusOK, toAssignResultDTO(domain.AssignResult{RiderID: req.RiderID}))
		return
	}

	ctx, cancel := withUpstreamTimeout(r.Context())
	defer cancel()

	res, err := ws.Selection.BulkAssign(ctx, req.RiderID)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, toAssignResultDTO(res))
	case errors.Is(err, apperr.Invalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid assignment")
	case errors.Is(err, apperr.Conflict):
		writeError(h.logger, w, r, http.StatusConflict, "order not eligible for assignment")
	case errors.Is(err, apperr.Unauthorized):
		writeError(h.logger, w, r, http.StatusUnauthorized, "order store session expired")
	default:
		// partial failure: report what did go through
		writeJSON(h.logger, w, r, http.StatusBadGateway, toAssignResultDTO(res))
	}
}

func parseDateRange(startStr, endStr *string) (time.Time, time.Time, error) {
	var start, end time.Time
	var err error
	if startStr != nil && *startStr != "" {
		start, err = time.Parse(dateLayout, *startStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	if endStr != nil && *endStr != "" {
		end, err = time.Parse(dateLayout, *endStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		return time.Time{}, time.Time{}, errors.New("end before start")
	}
	return start, end, nil
}
