package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/carebridge/enrollment-api/internal/core/domain"
)

// ctxIdentity extracts the auth claims injected by the Auth middleware. A
// non-empty role proves the middleware ran.
func ctxIdentity(c echo.Context) (userID, role string, err error) {
	role, _ = c.Get("role").(string)
	if role == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	userID, _ = c.Get("user_id").(string)
	return userID, role, nil
}

// requireSelfOrAdmin rejects access to another user's resource unless the
// caller holds the admin role.
func requireSelfOrAdmin(c echo.Context, targetUserID string) error {
	userID, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	if role != domain.RoleAdmin && userID != targetUserID {
		return domain.ErrForbidden
	}
	return nil
}
