package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"obtconnect/internal/model"
	"obtconnect/internal/service"
)

// TeamHandler serves the special State and Master team rosters.
type TeamHandler struct {
	svc service.TeamService
}

// NewTeamHandler creates a handler layer.
func NewTeamHandler(svc service.TeamService) *TeamHandler {
	return &TeamHandler{svc: svc}
}

// TeamMemberRequest is the draft payload for a special team member.
type TeamMemberRequest struct {
	ID          string `json:"id"`
	Name        string `json:"name" validate:"required"`
	Phone       string `json:"phone" validate:"required"`
	Designation string `json:"designation"`
	District    string `json:"district"`
	Category    string `json:"category"`
	PhotoURL    string `json:"photo_url"`
}

func rosterParam(c echo.Context) model.Roster {
	switch c.Param("team") {
	case "state":
		return model.RosterState
	case "master":
		return model.RosterMaster
	default:
		return ""
	}
}

// List godoc
// @Summary List a special team roster
// @Tags teams
// @Produce json
// @Param team path string true "Team (state or master)"
// @Success 200 {array} model.Member
// @Failure 404 {object} errors.ErrorResponse
// @Router /teams/{team}/members [get]
func (h *TeamHandler) List(c echo.Context) error {
	if _, err := identityFrom(c); err != nil {
		return err
	}

	members, err := h.svc.List(c.Request().Context(), rosterParam(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, members)
}

// Save godoc
// @Summary Create or update a special team member
// @Tags teams
// @Accept json
// @Produce json
// @Param team path string true "Team (state or master)"
// @Param request body TeamMemberRequest true "Member draft"
// @Success 200 {object} model.Member
// @Failure 403 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /teams/{team}/members [post]
func (h *TeamHandler) Save(c echo.Context) error {
	identity, err := identityFrom(c)
	if err != nil {
		return err
	}

	var req TeamMemberRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	member, err := h.svc.Save(c.Request().Context(), identity, rosterParam(c), service.MemberDraft{
		ID:          req.ID,
		Name:        req.Name,
		Phone:       req.Phone,
		Designation: req.Designation,
		District:    req.District,
		Category:    model.Category(req.Category),
		PhotoURL:    req.PhotoURL,
	})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, member)
}

// Delete godoc
// @Summary Delete a special team member
// @Tags teams
// @Produce json
// @Param team path string true "Team (state or master)"
// @Param id path string true "Member ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /teams/{team}/members/{id} [delete]
func (h *TeamHandler) Delete(c echo.Context) error {
	identity, err := identityFrom(c)
	if err != nil {
		return err
	}

	if err := h.svc.Delete(c.Request().Context(), identity, rosterParam(c), c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "member deleted"})
}
