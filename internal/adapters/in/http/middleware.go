package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// requireToken guards admin routes. The token arrives as a bearer header,
// or as a token query parameter for WebSocket upgrades where browsers
// cannot set headers.
func (s *Server) requireToken(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		token := bearerToken(ctx.Request().Header.Get("Authorization"))
		if token == "" {
			token = ctx.QueryParam("token")
		}
		if token == "" {
			return ctx.JSON(http.StatusUnauthorized, envelope{
				Success: false,
				Message: "Authentication required",
			})
		}

		username, err := s.tokens.Parse(token)
		if err != nil {
			return ctx.JSON(http.StatusUnauthorized, envelope{
				Success: false,
				Message: "Invalid or expired token",
			})
		}

		ctx.Set("username", username)
		return next(ctx)
	}
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, prefix))
}
