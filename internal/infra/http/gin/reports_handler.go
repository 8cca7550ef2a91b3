package ginserver

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	gin "github.com/gin-gonic/gin"

	"stayboard/internal/app/dto"
	"stayboard/internal/app/handlers/reports"
	"stayboard/internal/app/queries"
)

type ReportsHandler struct {
	Queries queries.Bus
}

func (h ReportsHandler) ExportMonth(c *gin.Context) {
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
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "month must be 1..12"})
		return
	}
	q := reports.ExportMonthQuery{Year: year, Month: time.Month(month)}
	export, err := queries.Ask[reports.ExportMonthQuery, dto.ReportExport](c.Request.Context(), h.Queries, q)
	if err != nil {
		if errors.Is(err, reports.ErrUploaderUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, export)
}

var _ ReportsHTTP = ReportsHandler{}
