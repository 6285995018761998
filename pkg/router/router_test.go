package router_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/minerush/backend/config"
	"github.com/minerush/backend/pkg/errorx"
	"github.com/minerush/backend/pkg/logger"
	"github.com/minerush/backend/pkg/router"
	"github.com/minerush/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

type greetRequest struct {
	Name string `form:"name" json:"name"`
}

type greetResponse struct {
	Greeting string `json:"greeting"`
}

func newTestRouter() *router.Router {
	cfg := config.Configs{Auth: config.AuthConfigs{TokenSecret: "secret"}}
	return router.New(nil, cfg, logger.NewLogger(logger.SILENCE))
}

func greet(ctx context.Context, req *greetRequest) (*greetResponse, error) {
	if req.Name == "" {
		return nil, errorx.New(errorx.BadRequest, "Empty name")
	}

	return &greetResponse{Greeting: "hello " + req.Name}, nil
}

func TestRouterGET(t *testing.T) {
	r := newTestRouter()
	router.GET(r, "/greet", greet)

	w := httptest.NewRecorder()
	r.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/greet?name=miner", nil))

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"code":0,"data":{"greeting":"hello miner"}}`, w.Body.String())
}

func TestRouterPOST(t *testing.T) {
	r := newTestRouter()
	router.POST(r, "/greet", greet)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/greet", strings.NewReader(`{"name":"miner"}`))
	r.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"code":0,"data":{"greeting":"hello miner"}}`, w.Body.String())

	// A malformed body maps to the bad request code of the envelope.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/greet", strings.NewReader(`{`))
	r.Handler().ServeHTTP(w, req)
	require.JSONEq(t, `{"code":100001,"error":"Cannot bind the request"}`, w.Body.String())
}

func TestRouterErrorEnvelope(t *testing.T) {
	r := newTestRouter()
	router.GET(r, "/greet", greet)

	w := httptest.NewRecorder()
	r.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/greet", nil))

	require.JSONEq(t, `{"code":100001,"error":"Empty name"}`, w.Body.String())
}

func TestRouterBranchMiddleware(t *testing.T) {
	r := newTestRouter()

	open := r.Branch()
	router.GET(open, "/open", greet)

	guarded := r.Branch()
	guarded.Before(func(ctx context.Context) (context.Context, error) {
		if xcontext.HTTPRequest(ctx).Header.Get("X-User") == "" {
			return ctx, errorx.New(errorx.Unauthenticated, "You need to authenticate before")
		}

		return ctx, nil
	})
	router.GET(guarded, "/guarded", greet)

	// The open branch is not affected by the guarded branch's middleware.
	w := httptest.NewRecorder()
	r.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/open?name=miner", nil))
	require.JSONEq(t, `{"code":0,"data":{"greeting":"hello miner"}}`, w.Body.String())

	w = httptest.NewRecorder()
	r.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/guarded?name=miner", nil))
	require.JSONEq(t, `{"code":100005,"error":"You need to authenticate before"}`, w.Body.String())

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/guarded?name=miner", nil)
	req.Header.Set("X-User", "miner")
	r.Handler().ServeHTTP(w, req)
	require.JSONEq(t, `{"code":0,"data":{"greeting":"hello miner"}}`, w.Body.String())
}
