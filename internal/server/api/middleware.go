package api

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pairspace/loveos/internal/common"
	"github.com/pairspace/loveos/internal/server/auth"
)

const spaceContextKey = "space"

// accessTokenMiddleware validates the bearer token and stores the
// authenticated space name in the request context. The websocket feed also
// accepts the token as a query parameter since browser websocket clients
// cannot set headers.
func (s *Server) accessTokenMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := bearerToken(c.Request().Header.Get(common.AccessTokenHeaderName))
		if token == "" {
			token = c.QueryParam("access_token")
		}
		if token == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing token")
		}

		space, err := auth.GetSpaceFromToken(token, s.secret)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		}

		c.Set(spaceContextKey, space)
		return next(c)
	}
}

// currentSpace returns the authenticated space name set by the middleware.
func currentSpace(c echo.Context) string {
	space, _ := c.Get(spaceContextKey).(string)
	return space
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if strings.HasPrefix(header, prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}
