package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"obtconnect/internal/service"
)

// ProfileHandler serves self-service profile operations.
type ProfileHandler struct {
	svc service.UserService
}

// NewProfileHandler creates a handler layer.
func NewProfileHandler(svc service.UserService) *ProfileHandler {
	return &ProfileHandler{svc: svc}
}

// UpdateProfileRequest carries the editable profile fields.
type UpdateProfileRequest struct {
	Name     string `json:"name"`
	PhotoURL string `json:"photo_url"`
}

// Get godoc
// @Summary Get the caller's profile
// @Tags profile
// @Produce json
// @Success 200 {object} model.User
// @Failure 404 {object} errors.ErrorResponse
// @Router /profile [get]
func (h *ProfileHandler) Get(c echo.Context) error {
	identity, err := identityFrom(c)
	if err != nil {
		return err
	}

	user, err := h.svc.GetProfile(c.Request().Context(), identity)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, user)
}

// Update godoc
// @Summary Update the caller's name and photo
// @Tags profile
// @Accept json
// @Produce json
// @Param request body UpdateProfileRequest true "Editable fields"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Router /profile [put]
func (h *ProfileHandler) Update(c echo.Context) error {
	identity, err := identityFrom(c)
	if err != nil {
		return err
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	user, err := h.svc.UpdateProfile(c.Request().Context(), identity, req.Name, req.PhotoURL)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, user)
}
