package echoapi

import (
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/classboard/core/user"
)

// adminMiddleware lets through users whose profile has the admin role.
func adminMiddleware(svc user.ServiceInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			usr, err := getContextUser(ctx, svc)
			if err != nil {
				return errors.Wrap(err, "getting context user")
			}
			if usr.IsAdmin() {
				return next(ctx)
			}
			return errHttpForbidden
		}
	}
}
