package echoapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/classboard/core"
	"github.com/trezcool/classboard/core/content"
)

type contentApi struct {
	svc      content.ServiceInterface
	validate *validator.Validate
	logger   core.Logger
}

func registerContentAPI(
	g *echo.Group,
	admin echo.MiddlewareFunc,
	svc content.ServiceInterface,
	validate *validator.Validate,
	logger core.Logger,
) {
	api := contentApi{svc: svc, validate: validate, logger: logger}

	cg := g.Group("/content", admin)
	cg.GET("", api.list)
	cg.PUT("/:kind/:id", api.update)
	cg.DELETE("/:kind/:id", api.destroy)
}

// Handlers

func (api *contentApi) list(ctx echo.Context) error {
	listing, err := api.svc.List(ctx.Request().Context())
	return api.respond(ctx, listing, err)
}

func (api *contentApi) update(ctx echo.Context) error {
	kind, err := content.ParseKind(ctx.Param("kind"))
	if err != nil {
		return errHttpNotFound
	}
	var data content.UpdateContent
	if err = ctx.Bind(&data); err != nil {
		return err
	}
	if err = data.Validate(api.validate); err != nil {
		return err
	}

	listing, err := api.svc.Update(ctx.Request().Context(), kind, ctx.Param("id"), data)
	return api.respond(ctx, listing, err)
}

func (api *contentApi) destroy(ctx echo.Context) error {
	kind, err := content.ParseKind(ctx.Param("kind"))
	if err != nil {
		return errHttpNotFound
	}

	listing, err := api.svc.Delete(ctx.Request().Context(), kind, ctx.Param("id"))
	return api.respond(ctx, listing, err)
}

// respond sends the listing, even partial. It fails only when nothing could be fetched.
func (api *contentApi) respond(ctx echo.Context, listing content.Listing, err error) error {
	if err != nil {
		if _, ok := errors.Cause(err).(*content.WriteError); ok || len(listing.Failed) == 0 || len(listing.Failed) == len(content.Kinds) {
			return err
		}
		tables := make([]string, 0, len(listing.Failed))
		for _, kind := range listing.Failed {
			tables = append(tables, kind.Table())
		}
		api.logger.Warn(fmt.Sprintf("partial content listing, failed: %s", strings.Join(tables, ", ")), err, contextUser(ctx))
	}
	return ctx.JSON(http.StatusOK, listing)
}
