package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/classboard/core/user"
)

type statsApi struct {
	svc      user.ServiceInterface
	validate *validator.Validate
}

func registerStatsAPI(g *echo.Group, admin echo.MiddlewareFunc, svc user.ServiceInterface, validate *validator.Validate) {
	api := statsApi{svc: svc, validate: validate}

	g.GET("/stats", api.stats, admin)
	g.GET("/users", api.queryUsers, admin)
	g.GET("/users/roles", api.queryRoles, admin)
}

// Handlers

func (api *statsApi) stats(ctx echo.Context) error {
	sum, err := api.svc.Stats(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "summarizing users")
	}
	return ctx.JSON(http.StatusOK, sum)
}

func (api *statsApi) queryUsers(ctx echo.Context) error {
	var query UsersQuery
	if err := ctx.Bind(&query); err != nil {
		return err
	}
	filter, err := query.Filter()
	if err != nil {
		return err
	}
	if err = filter.Validate(api.validate); err != nil {
		return err
	}
	ordering := new(Ordering)
	ordering.Bind(ctx)

	users, err := api.svc.Query(ctx.Request().Context(), filter, ordering.Orderings)
	if err != nil {
		return errors.Wrap(err, "querying users")
	}
	if users == nil {
		users = []user.User{}
	}
	return ctx.JSON(http.StatusOK, users)
}

func (api *statsApi) queryRoles(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, user.Roles)
}
