package router

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"golang.org/x/exp/slices"
)

type HandlerFunc[Request, Response any] func(ctx context.Context, req *Request) (*Response, error)

// MiddlewareFunc runs before the handler. A non-nil error stops the chain and
// is written as the response.
type MiddlewareFunc func(ctx context.Context) (context.Context, error)

// CloserFunc runs after the response has been written, whatever the outcome.
type CloserFunc func(ctx context.Context)

type Router struct {
	engine *gin.Engine
	root   context.Context

	befores []MiddlewareFunc
	closers []CloserFunc
}

// New creates a router whose handlers receive the process scoped values
// (database, logger, configs) carried by ctx.
func New(ctx context.Context) *Router {
	engine := gin.New()
	engine.Use(gin.Recovery())

	return &Router{
		engine: engine,
		root:   ctx,
	}
}

func GET[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.engine.GET(pattern, wrapHandler(r, http.MethodGet, handler))
}

func POST[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.engine.POST(pattern, wrapHandler(r, http.MethodPost, handler))
}

func PATCH[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.engine.PATCH(pattern, wrapHandler(r, http.MethodPatch, handler))
}

// Branch returns a router sharing the same engine. Middlewares and closers
// added to the branch do not affect its parent.
func (r *Router) Branch() *Router {
	return &Router{
		engine:  r.engine,
		root:    r.root,
		befores: slices.Clone(r.befores),
		closers: slices.Clone(r.closers),
	}
}

func (r *Router) Before(middleware MiddlewareFunc) {
	r.befores = append(r.befores, middleware)
}

func (r *Router) AddCloser(closer CloserFunc) {
	r.closers = append(r.closers, closer)
}

// Handle registers a raw http.Handler, bypassing middlewares and closers.
func (r *Router) Handle(method, pattern string, handler http.Handler) {
	r.engine.Handle(method, pattern, gin.WrapH(handler))
}

// Handler returns the engine wrapped with a CORS policy allowing every origin.
func (r *Router) Handler() http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions,
		},
		AllowedHeaders: []string{"Accept", "Content-Type", "Content-Length", "Authorization"},
	}).Handler(r.engine)
}
