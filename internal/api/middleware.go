package api

import (
	"github.com/labstack/echo/v4"

	"github.com/satriapw/tolldash/internal/pkg/constants"
	"github.com/satriapw/tolldash/internal/pkg/utils"
)

// AuthMiddleware authenticates requests via the auth cookie and stashes the
// user id on the context.
func (svc *APIService) AuthMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		cookie, err := ctx.Cookie(constants.CookieKeyAuthToken)
		if err != nil {
			return constants.ErrMissingAuthCookie
		}

		token, err := utils.ParseAuthToken(cookie.Value)
		if err != nil {
			return err
		}

		ctx.Set(constants.CtxKeyUserID, token.UserID)

		return next(ctx)
	}
}
