package controller

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/satriapw/tolldash/internal/domain"
	"github.com/satriapw/tolldash/internal/pkg/constants"
)

func (c *Controller) Signup(ctx echo.Context) error {
	request := new(domain.SignupRequest)
	if err := ctx.Bind(request); err != nil {
		return err
	}
	if err := ctx.Validate(request); err != nil {
		return err
	}

	resp, err := c.authService.Signup(ctx.Request().Context(), request)
	if err != nil {
		return err
	}

	setAuthCookie(ctx, resp.AuthToken)
	return ctx.JSON(http.StatusCreated, domain.OK("signed up", resp))
}

func (c *Controller) Login(ctx echo.Context) error {
	request := new(domain.LoginRequest)
	if err := ctx.Bind(request); err != nil {
		return err
	}
	if err := ctx.Validate(request); err != nil {
		return err
	}

	resp, err := c.authService.Login(ctx.Request().Context(), request)
	if err != nil {
		return err
	}

	setAuthCookie(ctx, resp.AuthToken)
	return ctx.JSON(http.StatusOK, domain.OK("logged in", resp))
}

func setAuthCookie(ctx echo.Context, token string) {
	ctx.SetCookie(&http.Cookie{
		Name:     constants.CookieKeyAuthToken,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(24 * time.Hour),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
