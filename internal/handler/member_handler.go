package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"obtconnect/internal/model"
	"obtconnect/internal/service"
)

// MemberHandler serves the district rosters and their stats.
type MemberHandler struct {
	svc service.MemberService
}

// NewMemberHandler creates a handler layer.
func NewMemberHandler(svc service.MemberService) *MemberHandler {
	return &MemberHandler{svc: svc}
}

// MemberRequest is the draft payload for creating or updating a member.
type MemberRequest struct {
	ID          string `json:"id"`
	Name        string `json:"name" validate:"required"`
	Phone       string `json:"phone" validate:"required"`
	Designation string `json:"designation"`
	Category    string `json:"category"`
	PhotoURL    string `json:"photo_url"`
}

// List godoc
// @Summary List district members visible to the caller
// @Tags members
// @Produce json
// @Param district path string true "District name"
// @Param category query string false "Category filter (privileged roles only)"
// @Success 200 {array} model.Member
// @Failure 400 {object} errors.ErrorResponse
// @Router /districts/{district}/members [get]
func (h *MemberHandler) List(c echo.Context) error {
	identity, err := identityFrom(c)
	if err != nil {
		return err
	}

	members, err := h.svc.List(c.Request().Context(), identity, c.Param("district"), model.Category(c.QueryParam("category")))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, members)
}

// Stats godoc
// @Summary Member counts per district under the caller's category scope
// @Tags members
// @Produce json
// @Success 200 {object} map[string]int64
// @Router /districts/stats [get]
func (h *MemberHandler) Stats(c echo.Context) error {
	identity, err := identityFrom(c)
	if err != nil {
		return err
	}

	stats, err := h.svc.Stats(c.Request().Context(), identity)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, stats)
}

// Save godoc
// @Summary Create or update a district member
// @Tags members
// @Accept json
// @Produce json
// @Param district path string true "District name"
// @Param request body MemberRequest true "Member draft"
// @Success 200 {object} model.Member
// @Failure 403 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /districts/{district}/members [post]
func (h *MemberHandler) Save(c echo.Context) error {
	identity, err := identityFrom(c)
	if err != nil {
		return err
	}

	var req MemberRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	member, err := h.svc.Save(c.Request().Context(), identity, service.MemberDraft{
		ID:          req.ID,
		Name:        req.Name,
		Phone:       req.Phone,
		Designation: req.Designation,
		District:    c.Param("district"),
		Category:    model.Category(req.Category),
		PhotoURL:    req.PhotoURL,
	})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, member)
}

// Delete godoc
// @Summary Delete a district member
// @Tags members
// @Produce json
// @Param district path string true "District name"
// @Param id path string true "Member ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /districts/{district}/members/{id} [delete]
func (h *MemberHandler) Delete(c echo.Context) error {
	identity, err := identityFrom(c)
	if err != nil {
		return err
	}

	if err := h.svc.Delete(c.Request().Context(), identity, c.Param("district"), c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "member deleted"})
}
