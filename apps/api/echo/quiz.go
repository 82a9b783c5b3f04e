package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/classboard/core/quiz"
)

type quizApi struct {
	svc quiz.ServiceInterface
}

func registerQuizAPI(g *echo.Group, admin echo.MiddlewareFunc, svc quiz.ServiceInterface) {
	api := quizApi{svc: svc}

	g.GET("/quizzes/analytics", api.analytics, admin)
	g.GET("/me/quiz-history", api.history)
}

// Handlers

func (api *quizApi) analytics(ctx echo.Context) error {
	res, err := api.svc.Analytics(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "analyzing quizzes")
	}
	return ctx.JSON(http.StatusOK, res)
}

func (api *quizApi) history(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return err
	}
	if claims.Subject == "" {
		return errUnauthorized
	}

	h, err := api.svc.History(ctx.Request().Context(), claims.Subject)
	if err != nil {
		return errors.Wrap(err, "building quiz history")
	}
	return ctx.JSON(http.StatusOK, h)
}
