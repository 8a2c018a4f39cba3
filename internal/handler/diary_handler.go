package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/navyashreebh2-create/diary-baby/internal/errors"
	"github.com/navyashreebh2-create/diary-baby/internal/model"
	"github.com/navyashreebh2-create/diary-baby/internal/service"
)

// DiaryHandler handles diary entry endpoints.
type DiaryHandler struct {
	diaryService service.DiaryService
}

// NewDiaryHandler creates a new diary handler.
func NewDiaryHandler(diaryService service.DiaryService) *DiaryHandler {
	return &DiaryHandler{diaryService: diaryService}
}

// CreateEntryRequest represents an entry creation request. The API key is
// held client-side and forwarded per request; it is never persisted.
type CreateEntryRequest struct {
	Content      string `json:"content"`
	OpenAIAPIKey string `json:"openaiApiKey"`
}

// List godoc
// @Summary List the authenticated user's diary entries, newest first
// @Tags diary
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /diary [get]
func (h *DiaryHandler) List(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return respondAuthRequired(c)
	}

	entries, err := h.diaryService.List(c.Request().Context(), userID)
	if err != nil {
		he := errors.MapErrorToHTTP(err)
		return c.JSON(he.StatusCode, he.ToErrorResponse())
	}
	if entries == nil {
		entries = []model.DiaryEntry{}
	}

	return c.JSON(http.StatusOK, echo.Map{"entries": entries})
}

// Create godoc
// @Summary Create a diary entry with an AI companion reply
// @Tags diary
// @Accept json
// @Produce json
// @Param request body CreateEntryRequest true "Entry content and API key"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 402 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /diary [post]
func (h *DiaryHandler) Create(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return respondAuthRequired(c)
	}

	var req CreateEntryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.ErrorResponse{Error: "Invalid request body", Code: "BAD_REQUEST"})
	}

	entry, err := h.diaryService.Create(c.Request().Context(), userID, req.Content, req.OpenAIAPIKey)
	if err != nil {
		he := errors.MapErrorToHTTP(err)
		return c.JSON(he.StatusCode, he.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, echo.Map{"entry": entry})
}

// Dates godoc
// @Summary List distinct calendar dates with at least one entry
// @Tags diary
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /diary/dates [get]
func (h *DiaryHandler) Dates(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return respondAuthRequired(c)
	}

	dates, err := h.diaryService.ListEntryDates(c.Request().Context(), userID)
	if err != nil {
		he := errors.MapErrorToHTTP(err)
		return c.JSON(he.StatusCode, he.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, echo.Map{"dates": dates})
}

// currentUserID returns the user id placed in the context by the API auth
// middleware. The middleware stores the verified token's subject, so absence
// means the request never passed verification.
func currentUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get("user").(uuid.UUID)
	return userID, ok
}

func respondAuthRequired(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, errors.ErrorResponse{Error: "Please log in to continue", Code: "AUTH_REQUIRED"})
}
