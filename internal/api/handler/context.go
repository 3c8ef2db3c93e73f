package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxIdentity extracts the session claims injected by the Auth middleware.
// A non-empty role proves the middleware ran; without it the request must not
// reach any role-gated operation.
func ctxIdentity(c echo.Context) (userID, role string, err error) {
	role, _ = c.Get("role").(string)
	if role == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	userID, _ = c.Get("user_id").(string)
	return userID, role, nil
}
