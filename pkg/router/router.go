package router

import (
	"net/http"
	"net/url"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	docs "github.com/taya-finance/backend/api"
	"github.com/taya-finance/backend/internal/config"
	"github.com/taya-finance/backend/pkg/controllers/healthz"
	"github.com/taya-finance/backend/pkg/controllers/root"
	v1 "github.com/taya-finance/backend/pkg/controllers/v1"
	"github.com/taya-finance/backend/pkg/controllers/version"
	"github.com/taya-finance/backend/pkg/httperrors"
	"gorm.io/gorm"
)

// This is set at build time, see Makefile.
var buildVersion = "0.0.0"

// Config creates the gin engine with all middlewares.
//
// The returned teardown function must be called when the engine is not used anymore.
func Config(cfg config.Config) (*gin.Engine, func(), error) {
	url := cfg.APIURL
	teardown := func() {
		unregisterPrometheusMetrics()
	}

	// Set up the router and middlewares
	r := gin.New()

	// Don’t process X-Forwarded-For header as we do not do anything with
	// client IPs
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(URLMiddleware(url))
	r.Use(MetricsMiddleware())
	r.NoMethod(func(c *gin.Context) {
		httperrors.New(c, http.StatusMethodNotAllowed, "This HTTP method is not allowed for the endpoint you called")
	})
	r.NoRoute(func(c *gin.Context) {
		httperrors.New(c, http.StatusNotFound, "There is no endpoint for the path you called")
	})
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, logger zerolog.Logger) zerolog.Logger {
			return logger.With().
				Str("request-id", requestid.Get(c)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Int("size", c.Writer.Size()).
				Str("user-agent", c.Request.UserAgent()).
				Logger()
		})))

	// CORS settings
	if len(cfg.CORSOrigins) > 0 {
		log.Debug().Strs("CORS Allowed Origins", cfg.CORSOrigins).Msg("Router")

		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORSOrigins,
			AllowMethods:     []string{"OPTIONS", "GET", "POST", "PUT", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type"},
			AllowCredentials: true,
		}))
	}

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(_, _, _ string, _ int) {}

	// Don’t trust any proxy. We do not process any client IPs,
	// therefore we don’t need to trust anyone here.
	_ = r.SetTrustedProxies([]string{})

	log.Debug().Str("API Base URL", url.String()).Str("Host", url.Host).Str("Path", url.Path).Msg("Router")
	log.Info().Str("version", buildVersion).Msg("Router")

	setSwaggerInfo(url)

	err := registerPrometheusMetrics()
	if err != nil {
		return nil, teardown, err
	}

	return r, teardown, nil
}

func setSwaggerInfo(url *url.URL) {
	docs.SwaggerInfo.Host = url.Host
	docs.SwaggerInfo.BasePath = url.Path
	docs.SwaggerInfo.Title = "Taya"
	docs.SwaggerInfo.Version = buildVersion
	docs.SwaggerInfo.Description = "The backend for Taya, tracking income and expenses by category."
}

// AttachRoutes attaches the API routes to the router group that is passed in
// Separating this from Config() allows us to attach it to different
// paths for different use cases, e.g. the standalone version.
func AttachRoutes(group *gin.RouterGroup, db *gorm.DB, cfg config.Config) {
	// Register metrics
	group.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// pprof performance profiles
	if cfg.EnablePprof {
		pprof.RouteRegister(group, "debug/pprof")
	}

	group.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	root.RegisterRoutes(group.Group(""))
	healthz.RegisterRoutes(group.Group("/healthz"), db)
	version.RegisterRoutes(group.Group("/version"), buildVersion)

	co := v1.Controller{DB: db, MaxPageSize: cfg.MaxPageSize}
	co.RegisterRoutes(group.Group("/v1"))
}
