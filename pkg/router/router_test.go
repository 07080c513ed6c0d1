package router_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/timebank-lab/backend/pkg/errorx"
	"github.com/timebank-lab/backend/pkg/router"
	"github.com/timebank-lab/backend/pkg/xcontext"
)

type echoRequest struct {
	Name string `json:"name" form:"name"`
	Fail string `json:"fail" form:"fail"`
}

type echoResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

func echo(ctx context.Context, req *echoRequest) (*echoResponse, error) {
	switch req.Fail {
	case "notfound":
		return nil, errorx.New(errorx.NotFound, "Not found %s", req.Name)
	case "state":
		return nil, errorx.New(errorx.InvalidState, "Thread is not pending")
	case "raw":
		return nil, errors.New("boom")
	}

	return &echoResponse{Message: "hello " + req.Name, UserID: xcontext.RequestUserID(ctx)}, nil
}

func do(t *testing.T, h http.Handler, method, target, body string) (int, map[string]any) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w.Code, resp
}

func TestRouter_BindAndRespond(t *testing.T) {
	r := router.New(context.Background())
	router.GET(r, "/echo", echo)
	router.POST(r, "/echo", echo)
	router.PATCH(r, "/echo", echo)

	code, resp := do(t, r.Handler(), http.MethodGet, "/echo?name=alice", "")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "hello alice", resp["message"])

	code, resp = do(t, r.Handler(), http.MethodPost, "/echo", `{"name":"bob"}`)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "hello bob", resp["message"])

	code, resp = do(t, r.Handler(), http.MethodPatch, "/echo", `{"name":"carol"}`)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "hello carol", resp["message"])
}

func TestRouter_StatusMapping(t *testing.T) {
	r := router.New(context.Background())
	router.GET(r, "/echo", echo)
	router.POST(r, "/echo", echo)

	code, resp := do(t, r.Handler(), http.MethodGet, "/echo?name=x&fail=notfound", "")
	require.Equal(t, http.StatusNotFound, code)
	require.Equal(t, "Not found x", resp["error"])
	require.EqualValues(t, errorx.NotFound, resp["code"])

	code, resp = do(t, r.Handler(), http.MethodGet, "/echo?fail=state", "")
	require.Equal(t, http.StatusInternalServerError, code)
	require.EqualValues(t, errorx.InvalidState, resp["code"])

	code, resp = do(t, r.Handler(), http.MethodGet, "/echo?fail=raw", "")
	require.Equal(t, http.StatusInternalServerError, code)
	require.Equal(t, errorx.Unknown.Message, resp["error"])

	code, _ = do(t, r.Handler(), http.MethodPost, "/echo", `{"name":`)
	require.Equal(t, http.StatusBadRequest, code)
}

func TestRouter_BranchMiddlewareAndCloser(t *testing.T) {
	r := router.New(context.Background())

	var closed []error
	r.AddCloser(func(ctx context.Context) {
		closed = append(closed, xcontext.Error(ctx))
	})

	authRouter := r.Branch()
	authRouter.Before(func(ctx context.Context) (context.Context, error) {
		id := xcontext.HTTPRequest(ctx).Header.Get("X-User")
		if id == "" {
			return nil, errorx.New(errorx.Unauthenticated, "You need to authenticate before")
		}
		return xcontext.WithRequestUserID(ctx, id), nil
	})

	router.GET(authRouter, "/private", echo)
	router.GET(r, "/public", echo)

	code, _ := do(t, r.Handler(), http.MethodGet, "/private", "")
	require.Equal(t, http.StatusUnauthorized, code)

	req := httptest.NewRequest(http.MethodGet, "/private?name=dan", nil)
	req.Header.Set("X-User", "user_dan")
	w := httptest.NewRecorder()
	r.Handler().ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"userId":"user_dan"`)

	code, _ = do(t, r.Handler(), http.MethodGet, "/public?name=eve", "")
	require.Equal(t, http.StatusOK, code)

	require.Len(t, closed, 3)
	require.True(t, errorx.Is(closed[0], errorx.Unauthenticated))
	require.NoError(t, closed[1])
	require.NoError(t, closed[2])
}
