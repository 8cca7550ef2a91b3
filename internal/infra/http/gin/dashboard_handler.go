package ginserver

import (
	"net/http"
	"strconv"
	"time"

	gin "github.com/gin-gonic/gin"

	"stayboard/internal/app/dto"
	"stayboard/internal/app/handlers/dashboard"
	"stayboard/internal/app/queries"
)

type DashboardHandler struct {
	Queries queries.Bus
}

func (h DashboardHandler) RevenueSeries(c *gin.Context) {
	if h.Queries == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "queries unavailable"})
		return
	}
	q := dashboard.RevenueSeriesQuery{}
	if raw := c.Query("days"); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "days must be an integer"})
			return
		}
		q.Days = days
	}
	if raw := c.Query("from"); raw != "" {
		from, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "from must be YYYY-MM-DD"})
			return
		}
		q.From = from
	}
	series, err := queries.Ask[dashboard.RevenueSeriesQuery, dto.Series](c.Request.Context(), h.Queries, q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, series)
}

func (h DashboardHandler) MonthlyTrend(c *gin.Context) {
	if h.Queries == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "queries unavailable"})
		return
	}
	q := dashboard.MonthlyTrendQuery{}
	if raw := c.Query("months"); raw != "" {
		months, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "months must be an integer"})
			return
		}
		q.Months = months
	}
	series, err := queries.Ask[dashboard.MonthlyTrendQuery, dto.Series](c.Request.Context(), h.Queries, q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, series)
}

func (h DashboardHandler) Stats(c *gin.Context) {
	if h.Queries == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "queries unavailable"})
		return
	}
	stats, err := queries.Ask[dashboard.StatsQuery, dto.DashboardStats](c.Request.Context(), h.Queries, dashboard.StatsQuery{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

var _ DashboardHTTP = DashboardHandler{}
