package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/carebridge/enrollment-api/internal/core/ports"
)

// ProgramHandler handles health-program catalog endpoints.
type ProgramHandler struct {
	service ports.ProgramService
}

func NewProgramHandler(service ports.ProgramService) *ProgramHandler {
	return &ProgramHandler{service: service}
}

// Create adds a new program to the catalog.
//
// @Summary      Create a program
// @Tags         programs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProgramRequest  true  "Program details"
// @Success      201   {object}  programResponse
// @Failure      400   {object}  errorResponse
// @Router       /program [post]
func (h *ProgramHandler) Create(c echo.Context) error {
	var req createProgramRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	program, err := h.service.Create(c.Request().Context(), ports.CreateProgramInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toProgramResponse(program))
}

// Get returns a single program.
//
// @Summary      Get a program
// @Tags         programs
// @Produce      json
// @Security     BearerAuth
// @Param        programId  path      string  true  "Program ID"
// @Success      200        {object}  programResponse
// @Failure      404        {object}  errorResponse
// @Router       /program/{programId} [get]
func (h *ProgramHandler) Get(c echo.Context) error {
	program, err := h.service.Get(c.Request().Context(), c.Param("programId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProgramResponse(program))
}

// GetAll returns the whole catalog.
//
// @Summary      List programs
// @Tags         programs
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  programListResponse
// @Router       /program [get]
func (h *ProgramHandler) GetAll(c echo.Context) error {
	programs, err := h.service.GetAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, programListResponse{Data: toProgramResponses(programs)})
}

// Update applies field-level program updates.
//
// @Summary      Update a program
// @Tags         programs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        programId  path      string                true  "Program ID"
// @Param        body       body      updateProgramRequest  true  "Fields to update"
// @Success      200        {object}  programResponse
// @Failure      404        {object}  errorResponse
// @Router       /program/{programId} [put]
func (h *ProgramHandler) Update(c echo.Context) error {
	var req updateProgramRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	program, err := h.service.Update(c.Request().Context(), c.Param("programId"), ports.UpdateProgramInput{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toProgramResponse(program))
}

// Delete removes a program; its enrollments cascade at the store level.
//
// @Summary      Delete a program
// @Tags         programs
// @Produce      json
// @Security     BearerAuth
// @Param        programId  path      string  true  "Program ID"
// @Success      200        {object}  programResponse
// @Failure      404        {object}  errorResponse
// @Router       /program/{programId} [delete]
func (h *ProgramHandler) Delete(c echo.Context) error {
	program, err := h.service.Delete(c.Request().Context(), c.Param("programId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProgramResponse(program))
}

// Toggle flips a program's active flag.
//
// @Summary      Toggle a program's active flag
// @Tags         programs
// @Produce      json
// @Security     BearerAuth
// @Param        programId  path      string  true  "Program ID"
// @Success      200        {object}  programResponse
// @Failure      404        {object}  errorResponse
// @Router       /program/{programId}/toggle [patch]
func (h *ProgramHandler) Toggle(c echo.Context) error {
	program, err := h.service.Toggle(c.Request().Context(), c.Param("programId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProgramResponse(program))
}
