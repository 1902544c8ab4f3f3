package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/carebridge/enrollment-api/internal/core/domain"
	"github.com/carebridge/enrollment-api/internal/core/ports"
)

// EnrollmentHandler handles enrollment endpoints nested under /program.
type EnrollmentHandler struct {
	service ports.EnrollmentService
}

func NewEnrollmentHandler(service ports.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{service: service}
}

// resolveTarget decides whose enrollment the request addresses: admins may
// name any user, everyone else acts on their own.
func resolveTarget(c echo.Context, requested string) (string, error) {
	userID, role, err := ctxIdentity(c)
	if err != nil {
		return "", err
	}
	if requested == "" || requested == userID {
		return userID, nil
	}
	if role != domain.RoleAdmin {
		return "", domain.ErrForbidden
	}
	return requested, nil
}

// Enroll creates an enrollment in the program.
//
// @Summary      Enroll into a program
// @Tags         enrollments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        programId  path      string         true   "Program ID"
// @Param        body       body      enrollRequest  false  "Enrollment details"
// @Success      201        {object}  enrollmentResponse
// @Failure      404        {object}  errorResponse
// @Failure      409        {object}  errorResponse
// @Router       /program/{programId}/enroll [post]
func (h *EnrollmentHandler) Enroll(c echo.Context) error {
	var req enrollRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	target, err := resolveTarget(c, req.UserID)
	if err != nil {
		return err
	}

	enrollment, err := h.service.Enroll(c.Request().Context(), ports.EnrollInput{
		UserID:    target,
		ProgramID: c.Param("programId"),
		Notes:     req.Notes,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toEnrollmentResponse(enrollment))
}

// Complete marks an enrollment finished.
//
// @Summary      Complete an enrollment
// @Tags         enrollments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        programId  path      string                     true   "Program ID"
// @Param        body       body      completeEnrollmentRequest  false  "Target user (admin only)"
// @Success      200        {object}  enrollmentResponse
// @Failure      404        {object}  errorResponse
// @Router       /program/{programId}/complete [post]
func (h *EnrollmentHandler) Complete(c echo.Context) error {
	var req completeEnrollmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	target, err := resolveTarget(c, req.UserID)
	if err != nil {
		return err
	}

	enrollment, err := h.service.Complete(c.Request().Context(), target, c.Param("programId"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toEnrollmentResponse(enrollment))
}

// Update applies status/progress/notes changes to an enrollment.
//
// @Summary      Update an enrollment
// @Tags         enrollments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        programId  path      string                   true  "Program ID"
// @Param        body       body      updateEnrollmentRequest  true  "Fields to update"
// @Success      200        {object}  enrollmentResponse
// @Failure      404        {object}  errorResponse
// @Router       /program/{programId}/enrollment [put]
func (h *EnrollmentHandler) Update(c echo.Context) error {
	var req updateEnrollmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	target, err := resolveTarget(c, req.UserID)
	if err != nil {
		return err
	}

	var status *domain.EnrollmentStatus
	if req.Status != nil {
		s := domain.EnrollmentStatus(*req.Status)
		status = &s
	}

	enrollment, err := h.service.Update(c.Request().Context(), target, c.Param("programId"), ports.UpdateEnrollmentInput{
		Status:   status,
		Progress: req.Progress,
		Notes:    req.Notes,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toEnrollmentResponse(enrollment))
}

// Delete removes an enrollment.
//
// @Summary      Delete an enrollment
// @Tags         enrollments
// @Produce      json
// @Security     BearerAuth
// @Param        programId  path      string  true   "Program ID"
// @Param        user_id    query     string  false  "Target user (admin only)"
// @Success      200        {object}  messageResponse
// @Failure      404        {object}  errorResponse
// @Router       /program/{programId}/enrollment [delete]
func (h *EnrollmentHandler) Delete(c echo.Context) error {
	target, err := resolveTarget(c, c.QueryParam("user_id"))
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), target, c.Param("programId")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Enrollment deleted successfully"})
}

// ListAll returns every enrollment in the system.
//
// @Summary      List all enrollments
// @Tags         enrollments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  enrollmentListResponse
// @Router       /program/enrollments [get]
func (h *EnrollmentHandler) ListAll(c echo.Context) error {
	enrollments, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, enrollmentListResponse{Data: toEnrollmentResponses(enrollments)})
}

// ListByProgram returns the enrollments of one program.
//
// @Summary      List a program's enrollments
// @Tags         enrollments
// @Produce      json
// @Security     BearerAuth
// @Param        programId  path      string  true  "Program ID"
// @Success      200        {object}  enrollmentListResponse
// @Failure      404        {object}  errorResponse
// @Router       /program/{programId}/enrollments [get]
func (h *EnrollmentHandler) ListByProgram(c echo.Context) error {
	enrollments, err := h.service.ListByProgram(c.Request().Context(), c.Param("programId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, enrollmentListResponse{Data: toEnrollmentResponses(enrollments)})
}

// ListByUser returns a user's enrollments. Non-admin callers may only read
// their own.
//
// @Summary      List a user's enrollments
// @Tags         enrollments
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path      string  true  "User ID"
// @Success      200     {object}  enrollmentListResponse
// @Failure      403     {object}  errorResponse
// @Router       /users/{userId}/enrollments [get]
func (h *EnrollmentHandler) ListByUser(c echo.Context) error {
	targetID := c.Param("userId")
	if err := requireSelfOrAdmin(c, targetID); err != nil {
		return err
	}

	enrollments, err := h.service.ListByUser(c.Request().Context(), targetID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, enrollmentListResponse{Data: toEnrollmentResponses(enrollments)})
}
