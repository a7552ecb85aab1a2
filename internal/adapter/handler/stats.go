package handler

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/csiedev/meeting-records/errors"
	"github.com/csiedev/meeting-records/internal/usecase/stats"
)

// Stats handles statistics endpoints
type Stats struct {
	statsService *stats.StatsService
	logger       *zap.Logger
}

// NewStats creates a new stats handler
func NewStats(statsService *stats.StatsService, logger *zap.Logger) *Stats {
	return &Stats{
		statsService: statsService,
		logger:       logger,
	}
}

// Overview returns the current activity snapshot
func (h *Stats) Overview(c echo.Context) error {
	overview, err := h.statsService.GetOverview(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, overview)
}

// Semester returns the aggregate report of one academic semester
func (h *Stats) Semester(c echo.Context) error {
	year, err := strconv.Atoi(c.QueryParam("year"))
	if err != nil {
		year = time.Now().Year()
	}
	semester, err := strconv.Atoi(c.QueryParam("semester"))
	if err != nil {
		semester = 1
	}
	if semester != 1 && semester != 2 {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("semester must be 1 or 2"))
	}

	report, err := h.statsService.GetSemesterReport(c.Request().Context(), year, semester)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, report)
}
