package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/neatify/neatify-api/internal/handler"
	"github.com/neatify/neatify-api/internal/middleware"
	"github.com/neatify/neatify-api/internal/service"
	"github.com/neatify/neatify-api/pkg/config"
	"github.com/neatify/neatify-api/pkg/logger"
	corsmiddleware "github.com/neatify/neatify-api/pkg/middleware/cors"
	reqidmiddleware "github.com/neatify/neatify-api/pkg/middleware/requestid"
)

// Deps carries everything route registration needs.
type Deps struct {
	Config  *config.Config
	Logger  *zap.Logger
	DB      *sqlx.DB
	Auth    *service.AuthService
	Metrics *service.MetricsService

	Reports   *handler.ReportHandler
	AuthAdmin *handler.AuthHandler
	Locations *handler.LocationHandler
	Uploads   *handler.UploadHandler
}

// Setup builds the engine with the full middleware chain and route table.
func Setup(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(d.Logger))
	r.Use(corsmiddleware.New(d.Config.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(d.Metrics))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := d.DB.PingContext(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(d.Metrics.Handler()))

	if d.Config.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(d.Config.APIPrefix)
	{
		reports := api.Group("/reports")
		reports.Use(middleware.Auth(d.Auth))
		{
			reports.POST("", d.Reports.Submit)
			reports.POST("/fetch", d.Reports.Fetch)
			reports.GET("/user/reports", d.Reports.UserReports)
			reports.PATCH("/:id/status", d.Reports.UpdateStatus)
		}

		api.POST("/auth/check-admin", d.AuthAdmin.CheckAdmin)
		api.GET("/campus/list", d.Locations.ListCampuses)
		api.GET("/municipality/list", d.Locations.ListMunicipalities)
		api.POST("/upload/image", d.Uploads.UploadImage)
	}

	return r
}
