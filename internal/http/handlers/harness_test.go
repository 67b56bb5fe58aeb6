package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"franchise-dispatch/internal/auth"
	"franchise-dispatch/internal/domain"
	"franchise-dispatch/internal/http/handlers"
	mw "franchise-dispatch/internal/http/middleware"
	"franchise-dispatch/internal/service/filters"
	"franchise-dispatch/internal/service/selection"
	"franchise-dispatch/internal/service/workspace"
	testlog "franchise-dispatch/internal/testutil"
)

const (
	testSecret    = "handler-test-secret"
	testFranchise = "franchise-ktm"
	testUserID    = "u-1"
)

type verifierFunc func(ctx context.Context, orderIDs []string) error

func (f verifierFunc) BulkVerify(ctx context.Context, orderIDs []string) error {
	return f(ctx, orderIDs)
}

type assignerFunc func(ctx context.Context, orderIDs []string, riderID string) (domain.AssignResult, error)

func (f assignerFunc) Assign(ctx context.Context, orderIDs []string, riderID string) (domain.AssignResult, error) {
	return f(ctx, orderIDs, riderID)
}

// env wires real workspaces behind the full auth middleware chain so handler
// tests exercise the same path production requests take.
type env struct {
	store  *MockOrderReader
	engine *MockStatusEngine
	trail  *MockAuditTrail
	feed   *MockFeed
	riders *MockRiderDirectory

	verify verifierFunc
	assign assignerFunc

	workspaces *workspace.Registry
	rec        *testlog.Recorder
	router     chi.Router
}

func newEnv(t *testing.T, ctrl *gomock.Controller) *env {
	t.Helper()

	e := &env{
		store:  NewMockOrderReader(ctrl),
		engine: NewMockStatusEngine(ctrl),
		trail:  NewMockAuditTrail(ctrl),
		feed:   NewMockFeed(ctrl),
		riders: NewMockRiderDirectory(ctrl),
		verify: func(context.Context, []string) error { return nil },
		assign: func(_ context.Context, _ []string, riderID string) (domain.AssignResult, error) {
			return domain.AssignResult{RiderID: riderID}, nil
		},
		rec: testlog.New(),
	}

	logger := e.rec.Logger()
	e.workspaces = workspace.NewRegistry(func(string) *workspace.Workspace {
		return &workspace.Workspace{
			Filters: filters.NewController(testFranchise, 20, 0, nil),
			Selection: selection.NewManager(
				verifierFunc(func(ctx context.Context, ids []string) error { return e.verify(ctx, ids) }),
				assignerFunc(func(ctx context.Context, ids []string, rid string) (domain.AssignResult, error) {
					return e.assign(ctx, ids, rid)
				}),
				logger,
			),
		}
	})

	oh := handlers.NewOrderHandler(logger, e.store, e.engine, e.trail, e.feed, e.workspaces)
	vh := handlers.NewViewHandler(logger, e.workspaces)
	rh := handlers.NewRiderHandler(logger, e.riders)

	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(mw.Authenticate(testSecret))
		r.Use(mw.RequireFranchise(testFranchise))
		r.Get("/orders", oh.List)
		r.Patch("/orders/{id}/status", oh.UpdateStatus)
		r.Get("/orders/{id}/audit", oh.Audit)
		r.Post("/orders/verify", vh.Verify)
		r.Post("/orders/assign", vh.Assign)
		r.Put("/filters", vh.UpdateFilters)
		r.Get("/selection", vh.GetSelection)
		r.Delete("/selection", vh.ClearSelection)
		r.Post("/selection/toggle", vh.ToggleSelection)
		r.Post("/selection/toggle-all", vh.ToggleAllSelection)
		r.Get("/riders", rh.List)
	})
	e.router = r
	return e
}

func (e *env) token(t *testing.T, userID, role string) string {
	t.Helper()
	tok, err := auth.GenerateToken(testSecret, userID, testFranchise, role)
	require.NoError(t, err)
	return tok
}

func (e *env) doAs(t *testing.T, userID, role, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var rd *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	} else {
		rd = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, rd)
	req.Header.Set("Authorization", "Bearer "+e.token(t, userID, role))
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *env) do(t *testing.T, method, target string, body any) *httptest.ResponseRecorder {
	return e.doAs(t, testUserID, "franchise", method, target, body)
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func selectOrders(t *testing.T, e *env, ids ...string) {
	t.Helper()
	for _, id := range ids {
		w := e.do(t, http.MethodPost, "/selection/toggle", map[string]string{"order_id": id})
		require.Equal(t, http.StatusOK, w.Code)
	}
}
