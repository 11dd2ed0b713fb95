package handler

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"obtconnect/internal/ai"
	"obtconnect/internal/model"
	"obtconnect/internal/service"
)

// maxUploadBytes caps image-edit uploads, matching the profile photo limit.
const maxUploadBytes = 2 << 20

// AIHandler serves the team analysis and image edit features.
type AIHandler struct {
	client  *ai.Client
	members service.MemberService
}

// NewAIHandler creates a handler layer.
func NewAIHandler(client *ai.Client, members service.MemberService) *AIHandler {
	return &AIHandler{client: client, members: members}
}

// AnalyzeResponse carries the generated team summary.
type AnalyzeResponse struct {
	District string `json:"district"`
	Summary  string `json:"summary"`
}

// Analyze godoc
// @Summary Generate an AI summary of a district team
// @Tags ai
// @Produce json
// @Param district path string true "District name"
// @Param category query string false "Category filter (privileged roles only)"
// @Success 200 {object} AnalyzeResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /districts/{district}/analyze [post]
func (h *AIHandler) Analyze(c echo.Context) error {
	identity, err := identityFrom(c)
	if err != nil {
		return err
	}

	district := c.Param("district")
	members, err := h.members.List(c.Request().Context(), identity, district, model.Category(c.QueryParam("category")))
	if err != nil {
		return httpError(err)
	}

	summary := h.client.AnalyzeTeam(c.Request().Context(), district, members)
	return c.JSON(http.StatusOK, AnalyzeResponse{District: district, Summary: summary})
}

// EditImage godoc
// @Summary Apply an AI edit to an uploaded image
// @Tags ai
// @Accept multipart/form-data
// @Produce image/png
// @Param image formData file true "Source image"
// @Param prompt formData string true "Edit instruction"
// @Success 200 {file} binary
// @Failure 400 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /ai/image-edit [post]
func (h *AIHandler) EditImage(c echo.Context) error {
	if _, err := identityFrom(c); err != nil {
		return err
	}

	prompt := c.FormValue("prompt")
	if prompt == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "prompt is required")
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "image is required")
	}
	if fileHeader.Size > maxUploadBytes {
		return echo.NewHTTPError(http.StatusBadRequest, "image too large, limit is 2MB")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "cannot read image")
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "cannot read image")
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "image/png"
	}

	edited, editedMime, err := h.client.EditImage(c.Request().Context(), data, mimeType, prompt)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}
	if edited == nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "no image was generated")
	}

	return c.Blob(http.StatusOK, editedMime, edited)
}
