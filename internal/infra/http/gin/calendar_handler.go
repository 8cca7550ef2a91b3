package ginserver

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	gin "github.com/gin-gonic/gin"

	"stayboard/internal/app/dto"
	"stayboard/internal/app/handlers/calendar"
	"stayboard/internal/app/queries"
	"stayboard/internal/domain/calendargrid"
)

type CalendarHandler struct {
	Queries queries.Bus
}

func (h CalendarHandler) MonthGrid(c *gin.Context) {
	if h.Queries == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "queries unavailable"})
		return
	}
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year must be an integer"})
		return
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "month must be an integer"})
		return
	}
	q := calendar.MonthGridQuery{
		Year:      year,
		Month:     time.Month(month),
		SplitRows: c.Query("split_rows") == "true",
	}
	if c.Query("color_mode") == "round_robin" {
		q.ColorMode = calendargrid.ColorRoundRobin
	}
	grid, err := queries.Ask[calendar.MonthGridQuery, dto.MonthGrid](c.Request.Context(), h.Queries, q)
	if err != nil {
		if errors.Is(err, calendar.ErrInvalidMonth) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, grid)
}

var _ CalendarHTTP = CalendarHandler{}
