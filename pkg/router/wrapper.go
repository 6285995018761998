package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/minerush/backend/pkg/errorx"
	"github.com/minerush/backend/pkg/xcontext"
)

func wrapHandler[Request, Response any](
	router *Router,
	method string,
	handler HandlerFunc[Request, Response],
) gin.HandlerFunc {
	// Capture the middleware chain at registration time.
	befores := append([]MiddlewareFunc{}, router.befores...)
	closers := append([]CloserFunc{}, router.closers...)

	return func(gctx *gin.Context) {
		ctx := gctx.Request.Context()
		ctx = xcontext.WithDB(ctx, router.db)
		ctx = xcontext.WithLogger(ctx, router.logger)
		ctx = xcontext.WithConfigs(ctx, router.cfg)
		ctx = xcontext.WithTokenEngine(ctx, router.tokenEngine)
		ctx = xcontext.WithHTTPRequest(ctx, gctx.Request)
		ctx = xcontext.WithHTTPWriter(ctx, gctx.Writer)

		err := func() error {
			var request Request
			var bindErr error
			switch method {
			case http.MethodGet:
				bindErr = gctx.ShouldBindQuery(&request)
			case http.MethodPost:
				bindErr = gctx.ShouldBindJSON(&request)
			}
			if bindErr != nil {
				return errorx.New(errorx.BadRequest, "Cannot bind the request")
			}

			for _, m := range befores {
				var err error
				if ctx, err = m(ctx); err != nil {
					return err
				}
			}

			resp, err := handler(ctx, &request)
			if err != nil {
				return err
			}

			gctx.JSON(http.StatusOK, newResponse(resp))
			return nil
		}()

		if err != nil {
			gctx.JSON(http.StatusOK, newErrorResponse(err))
		}

		for _, closer := range closers {
			closer(ctx, err)
		}
	}
}
