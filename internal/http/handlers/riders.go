package handlers

import (
	"errors"
	"net/http"

	"franchise-dispatch/internal/apperr"
	"franchise-dispatch/internal/logx"
)

// RiderHandler serves the rider directory endpoints.
type RiderHandler struct {
	logger logx.Logger
	uc     RiderDirectory
}

// NewRiderHandler wires a RiderDirectory into HTTP handlers.
func NewRiderHandler(logger logx.Logger, uc RiderDirectory) *RiderHandler {
	return &RiderHandler{logger: logger, uc: uc}
}

// List handles GET /riders with an optional ?search= term.
func (h *RiderHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := withUpstreamTimeout(r.Context())
	defer cancel()

	riders, err := h.uc.List(ctx, r.URL.Query().Get("search"))
	switch {
	case err == nil:
	case errors.Is(err, apperr.Unauthorized):
		writeError(h.logger, w, r, http.StatusUnauthorized, "rider directory session expired")
		return
	default:
		writeError(h.logger, w, r, http.StatusBadGateway, "rider directory unavailable")
		return
	}

	out := make([]riderDTO, 0, len(riders))
	for _, rd := range riders {
		out = append(out, toRiderDTO(rd))
	}
	writeJSON(h.logger, w, r, http.StatusOK, out)
}
