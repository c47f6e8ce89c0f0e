package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/swcatalog/film-manager/internal/api/middleware"
)

// ctxUserID extracts the authenticated user's id injected by the Auth
// middleware. Absence means the route was misconfigured as public; fail
// closed with 401 rather than calling a service with a zero id.
func ctxUserID(c echo.Context) (int64, error) {
	id, ok := c.Get(middleware.CtxUserID).(int64)
	if !ok || id == 0 {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}
