package httpserver

import (
	"context"

	"completion-planner/internal/middleware"
	progressHTTP "completion-planner/internal/progress/delivery/http"

	"github.com/gin-gonic/gin"
)

// setupProgressDomain registers /api/v1/planner/profiles and everything below it.
func (srv HTTPServer) setupProgressDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := progressHTTP.New(srv.l, srv.progressUC)
	progressHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Progress domain registered at %s/profiles", apiPrefix)
	return nil
}
