package ginserver

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	gin "github.com/gin-gonic/gin"

	"stayboard/internal/infra/config"
	"stayboard/internal/infra/obs"
)

type DashboardHTTP interface {
	RevenueSeries(c *gin.Context)
	MonthlyTrend(c *gin.Context)
	Stats(c *gin.Context)
}

type CalendarHTTP interface {
	MonthGrid(c *gin.Context)
}

type FinanceHTTP interface {
	Breakdown(c *gin.Context)
}

type ReportsHTTP interface {
	ExportMonth(c *gin.Context)
}

type Handlers struct {
	Dashboard DashboardHTTP
	Calendar  CalendarHTTP
	Finance   FinanceHTTP
	Reports   ReportsHTTP
}

func NewServer(cfg config.Config, obsMW obs.Middleware, health obs.HealthHandlers, h Handlers) *http.Server {
	mode := configureGinMode(cfg.Env)
	if obsMW.Logger != nil {
		obsMW.Logger.Info("gin initialized", "mode", mode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(obsMW.RequestID())
	router.Use(obsMW.LoggerMiddleware())
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{
			"Content-Length",
			"Content-Type",
			"X-Request-ID",
		},
		MaxAge: 12 * time.Hour,
	}))

	router.GET("/livez", health.Livez)
	router.GET("/readyz", health.Readyz)

	api := router.Group("/api/v1")
	if h.Dashboard != nil {
		api.GET("/dashboard/revenue-series", h.Dashboard.RevenueSeries)
		api.GET("/dashboard/monthly-trend", h.Dashboard.MonthlyTrend)
		api.GET("/dashboard/stats", h.Dashboard.Stats)
	}
	if h.Calendar != nil {
		api.GET("/calendar/:year/:month", h.Calendar.MonthGrid)
	}
	if h.Finance != nil {
		api.POST("/finance/breakdown", h.Finance.Breakdown)
	}
	if h.Reports != nil {
		api.POST("/reports/:year/:month/export", h.Reports.ExportMonth)
	}

	return &http.Server{Addr: cfg.HTTPAddr, Handler: router}
}

func configureGinMode(env string) string {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "debug":
		gin.SetMode(gin.DebugMode)
		return gin.DebugMode
	case "test", "testing":
		gin.SetMode(gin.TestMode)
		return gin.TestMode
	default:
		gin.SetMode(gin.ReleaseMode)
		return gin.ReleaseMode
	}
}
