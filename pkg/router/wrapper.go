package router

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/timebank-lab/backend/pkg/errorx"
	"github.com/timebank-lab/backend/pkg/xcontext"
	"golang.org/x/exp/slices"
)

func wrapHandler[Request, Response any](
	router *Router,
	method string,
	handler HandlerFunc[Request, Response],
) gin.HandlerFunc {
	befores := slices.Clone(router.befores)
	closers := slices.Clone(router.closers)

	return func(c *gin.Context) {
		ctx := xcontext.Inherit(c.Request.Context(), router.root)
		ctx = xcontext.WithHTTPRequest(ctx, c.Request)

		resp, ctx, err := serve(ctx, c, method, befores, handler)
		ctx = xcontext.WithError(ctx, err)

		if err != nil {
			c.JSON(statusCode(err), newErrorResponse(err))
		} else {
			c.JSON(http.StatusOK, resp)
		}

		for _, closer := range closers {
			closer(ctx)
		}
	}
}

func serve[Request, Response any](
	ctx context.Context,
	c *gin.Context,
	method string,
	befores []MiddlewareFunc,
	handler HandlerFunc[Request, Response],
) (*Response, context.Context, error) {
	for _, middleware := range befores {
		next, err := middleware(ctx)
		if err != nil {
			return nil, ctx, err
		}
		ctx = next
	}

	req := new(Request)
	var err error
	switch method {
	case http.MethodGet:
		err = c.ShouldBindQuery(req)
	case http.MethodPost, http.MethodPatch:
		err = c.ShouldBindJSON(req)
	default:
		err = errorx.New(errorx.NotImplemented, "Unsupported method %s", method)
	}

	if err != nil {
		xcontext.Logger(ctx).Debugf("Cannot bind request: %v", err)
		return nil, ctx, errorx.New(errorx.BadRequest, "Invalid request format")
	}

	resp, err := handler(ctx, req)
	return resp, ctx, err
}
