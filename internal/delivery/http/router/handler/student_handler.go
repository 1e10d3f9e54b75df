package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"gradebook/internal/delivery/http/response"
	"gradebook/internal/domain/repository"
	"gradebook/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// StudentHandler holds dependencies for the roster handlers.
type StudentHandler struct {
	uc     usecase.StudentUsecase
	logger *slog.Logger
}

// NewStudentHandler is the constructor for StudentHandler, injected by Fx.
func NewStudentHandler(uc usecase.StudentUsecase, logger *slog.Logger) *StudentHandler {
	return &StudentHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns the whole roster.
func (h *StudentHandler) List(c echo.Context) error {
	students, err := h.uc.ListStudents(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, students, "")
}

// Get returns a single roster entry.
func (h *StudentHandler) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Student ID must be an integer")
	}

	student, err := h.uc.GetStudent(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrStudentNotFound) {
			return response.NotFound(c, "STUDENT_NOT_FOUND", "Student does not exist")
		}

		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, student, "")
}

// Add inserts a roster entry.
func (h *StudentHandler) Add(c echo.Context) error {
	var input *usecase.AddStudentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid student input")
	}
	if err := c.Validate(input); err != nil {
		return response.BindingError(c, "VALIDATION_FAILED", "Invalid student input")
	}

	student, err := h.uc.AddStudent(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, student, "Student added successfully")
}

// Remove deletes a roster entry.
func (h *StudentHandler) Remove(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Student ID must be an integer")
	}

	if err := h.uc.RemoveStudent(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrStudentNotFound) {
			return response.NotFound(c, "STUDENT_NOT_FOUND", "Student does not exist")
		}

		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Student removed"}, "")
}
