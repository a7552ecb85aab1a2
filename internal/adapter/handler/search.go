package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/csiedev/meeting-records/internal/adapter/presenter"
	"github.com/csiedev/meeting-records/internal/usecase/search"
)

// Search handles keyword search endpoints
type Search struct {
	searchService *search.SearchService
	logger        *zap.Logger
}

// NewSearch creates a new search handler
func NewSearch(searchService *search.SearchService, logger *zap.Logger) *Search {
	return &Search{
		searchService: searchService,
		logger:        logger,
	}
}

// Meetings searches meetings by keyword across title, chair speech and
// agenda items
func (h *Search) Meetings(c echo.Context) error {
	keyword := c.QueryParam("q")

	meetings, err := h.searchService.SearchMeetings(c.Request().Context(), keyword, visibleTo(c))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToMeetingResponses(meetings))
}

// People searches the directory by name fragment
func (h *Search) People(c echo.Context) error {
	keyword := c.QueryParam("q")

	people, err := h.searchService.SearchPeople(c.Request().Context(), keyword)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToPersonResponses(people))
}
