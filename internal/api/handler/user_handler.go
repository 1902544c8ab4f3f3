package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/carebridge/enrollment-api/internal/core/ports"
)

// UserHandler handles authenticated profile-management endpoints.
type UserHandler struct {
	authService ports.AuthService
}

func NewUserHandler(authService ports.AuthService) *UserHandler {
	return &UserHandler{authService: authService}
}

// Get returns a profile-enriched account. Non-admin callers may only read
// their own profile.
//
// @Summary      Get a user profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path      string  true  "User ID"
// @Success      200     {object}  userResponse
// @Failure      403     {object}  errorResponse
// @Failure      404     {object}  errorResponse
// @Router       /users/{userId} [get]
func (h *UserHandler) Get(c echo.Context) error {
	targetID := c.Param("userId")
	if err := requireSelfOrAdmin(c, targetID); err != nil {
		return err
	}

	view, err := h.authService.GetProfile(c.Request().Context(), targetID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toUserResponse(view))
}

// Update applies field-level profile updates.
//
// @Summary      Update a user profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path      string                true  "User ID"
// @Param        body    body      updateProfileRequest  true  "Fields to update"
// @Success      200     {object}  messageResponse
// @Failure      403     {object}  errorResponse
// @Failure      404     {object}  errorResponse
// @Router       /users/{userId} [put]
func (h *UserHandler) Update(c echo.Context) error {
	targetID := c.Param("userId")
	if err := requireSelfOrAdmin(c, targetID); err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err := h.authService.UpdateProfile(c.Request().Context(), targetID, ports.UpdateProfileInput{
		Email:          req.Email,
		ImageURL:       req.ImageURL,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Phone:          req.Phone,
		Address:        req.Address,
		LicenseNumber:  req.LicenseNumber,
		Specialization: req.Specialization,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Profile updated successfully"})
}

// ChangePassword verifies the current password before storing a new one.
//
// @Summary      Change a password
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path      string                 true  "User ID"
// @Param        body    body      changePasswordRequest  true  "Current and new password"
// @Success      200     {object}  messageResponse
// @Failure      401     {object}  errorResponse
// @Failure      404     {object}  errorResponse
// @Router       /users/{userId}/change-password [post]
func (h *UserHandler) ChangePassword(c echo.Context) error {
	targetID := c.Param("userId")
	if err := requireSelfOrAdmin(c, targetID); err != nil {
		return err
	}

	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.authService.ChangePassword(c.Request().Context(), targetID, req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Password changed successfully"})
}

// UpgradeDoctor promotes a client-role account to doctor.
//
// @Summary      Upgrade a client to doctor
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path      string                true  "User ID"
// @Param        body    body      upgradeDoctorRequest  true  "License details"
// @Success      200     {object}  messageResponse
// @Failure      404     {object}  errorResponse
// @Failure      409     {object}  errorResponse
// @Router       /users/{userId}/upgrade-doctor [post]
func (h *UserHandler) UpgradeDoctor(c echo.Context) error {
	var req upgradeDoctorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.authService.UpgradeToDoctor(c.Request().Context(), c.Param("userId"), req.LicenseNumber, req.Specialization); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "User upgraded to doctor successfully"})
}

// Search pattern-matches accounts by email or id, optionally narrowed by role.
//
// @Summary      Search users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        query  query     string  false  "Pattern matched against email and user id"
// @Param        role   query     string  false  "Role filter (client, doctor, admin)"
// @Success      200    {object}  userListResponse
// @Router       /users/search [get]
func (h *UserHandler) Search(c echo.Context) error {
	views, err := h.authService.SearchUsers(c.Request().Context(), c.QueryParam("query"), c.QueryParam("role"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userListResponse{Data: toUserResponses(views)})
}

// List returns up to limit accounts (default 10).
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query     int  false  "Maximum rows (default 10)"
// @Success      200    {object}  userListResponse
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	views, err := h.authService.ListUsers(c.Request().Context(), limit)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userListResponse{Data: toUserResponses(views)})
}
