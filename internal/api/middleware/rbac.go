package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/swcatalog/film-manager/internal/core/domain"
)

// RBAC enforces role-based access control against the role claim set by
// Auth. The check is an exact set membership: ADMIN does not implicitly
// satisfy a USER-only route.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(CtxRole).(domain.Role)
			if _, ok := allowed[role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "access forbidden")
			}
			return next(c)
		}
	}
}
