package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"obtconnect/internal/service"
)

// AdminHandler serves the approval queue and the message board.
type AdminHandler struct {
	admin    service.AdminService
	messages service.MessageService
}

// NewAdminHandler creates a handler layer.
func NewAdminHandler(admin service.AdminService, messages service.MessageService) *AdminHandler {
	return &AdminHandler{admin: admin, messages: messages}
}

// PostMessageRequest is a new bulletin-board post.
type PostMessageRequest struct {
	Content string `json:"content" validate:"required"`
}

// ListPending godoc
// @Summary List registrations awaiting approval
// @Tags admin
// @Produce json
// @Success 200 {array} model.User
// @Failure 403 {object} errors.ErrorResponse
// @Router /admin/pending [get]
func (h *AdminHandler) ListPending(c echo.Context) error {
	identity, err := identityFrom(c)
	if err != nil {
		return err
	}

	users, err := h.admin.ListPending(c.Request().Context(), identity)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, users)
}

// Approve godoc
// @Summary Approve a pending registration
// @Tags admin
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} model.Member
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/pending/{id}/approve [post]
func (h *AdminHandler) Approve(c echo.Context) error {
	identity, err := identityFrom(c)
	if err != nil {
		return err
	}

	member, err := h.admin.Approve(c.Request().Context(), identity, c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, member)
}

// Reject godoc
// @Summary Reject and delete a pending registration
// @Tags admin
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/pending/{id}/reject [post]
func (h *AdminHandler) Reject(c echo.Context) error {
	identity, err := identityFrom(c)
	if err != nil {
		return err
	}

	if err := h.admin.Reject(c.Request().Context(), identity, c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "registration rejected"})
}

// ListMessages godoc
// @Summary List bulletin-board posts, newest first
// @Tags messages
// @Produce json
// @Success 200 {array} model.TeamMessage
// @Router /messages [get]
func (h *AdminHandler) ListMessages(c echo.Context) error {
	if _, err := identityFrom(c); err != nil {
		return err
	}

	msgs, err := h.messages.List(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, msgs)
}

// PostMessage godoc
// @Summary Post to the bulletin board
// @Tags messages
// @Accept json
// @Produce json
// @Param request body PostMessageRequest true "Post content"
// @Success 201 {object} model.TeamMessage
// @Router /messages [post]
func (h *AdminHandler) PostMessage(c echo.Context) error {
	identity, err := identityFrom(c)
	if err != nil {
		return err
	}

	var req PostMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	msg, err := h.messages.Post(c.Request().Context(), identity, req.Content)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, msg)
}
