package router

import (
	"net/http"
	"net/url"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	docs "github.com/pocketledger/backend/api"
	"github.com/pocketledger/backend/internal/auth"
	"github.com/pocketledger/backend/internal/cache"
	"github.com/pocketledger/backend/internal/controllers/healthz"
	"github.com/pocketledger/backend/internal/controllers/root"
	v1 "github.com/pocketledger/backend/internal/controllers/v1"
	"github.com/pocketledger/backend/internal/controllers/version"
	"github.com/pocketledger/backend/internal/events"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// This is set at build time, see Makefile.
var buildVersion = "0.0.0"

type httpError struct {
	Error string `json:"error"`
}

// Config sets up the gin engine with all middlewares.
//
// The returned teardown function must be called when the engine is not
// used anymore, it unregisters the Prometheus metrics.
func Config(url *url.URL, corsOrigins ...string) (*gin.Engine, func(), error) {
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
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, httpError{
			Error: "this HTTP method is not allowed for the endpoint you called",
		})
	})
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, httpError{
			Error: "there is no endpoint at this path",
		})
	})
	r.Use(logger.SetLogger(
		logger.WithWriter(gin.DefaultWriter),
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, l zerolog.Logger) zerolog.Logger {
			return l.With().
				Str("request-id", requestid.Get(c)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Int("size", c.Writer.Size()).
				Str("user-agent", c.Request.UserAgent()).
				Logger()
		})))

	// CORS settings
	if len(corsOrigins) > 0 {
		log.Debug().Strs("allowOrigins", corsOrigins).Msg("CORS")

		r.Use(cors.New(cors.Config{
			AllowOrigins:     corsOrigins,
			AllowMethods:     []string{"OPTIONS", "GET", "POST", "PATCH", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
			ExposeHeaders:    []string{"Content-Disposition", "X-Request-Id"},
			AllowCredentials: true,
		}))
	}

	err := registerPrometheusMetrics()
	if err != nil {
		return nil, func() {}, err
	}
	r.Use(MetricsMiddleware())

	teardown := func() {
		if !unregisterPrometheusMetrics() {
			log.Error().Msg("could not unregister Prometheus metrics")
		}
	}

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(_, _, _ string, _ int) {}

	// Don’t trust any proxy. We do not process any client IPs,
	// therefore we don’t need to trust anyone here.
	_ = r.SetTrustedProxies([]string{})

	log.Debug().Str("API Base URL", url.String()).Str("Host", url.Host).Str("Path", url.Path).Msg("Router")
	log.Info().Str("version", buildVersion).Msg("Router")

	docs.SwaggerInfo.Host = url.Host
	docs.SwaggerInfo.BasePath = url.Path
	docs.SwaggerInfo.Title = "pocketledger"
	docs.SwaggerInfo.Version = buildVersion
	docs.SwaggerInfo.Description = "The backend for pocketledger, tracking income and expenses against monthly category budgets."

	return r, teardown, nil
}

// Routes holds what AttachRoutes needs besides the router group.
type Routes struct {
	Controller  v1.Controller
	Verifier    auth.Verifier
	EnablePprof bool
}

// AttachRoutes attaches the API routes to the router group that is passed in.
//
// Separating this from Config allows us to attach it to different paths
// for different use cases.
func AttachRoutes(rt Routes, group *gin.RouterGroup) {
	if rt.Controller.Cache == nil {
		rt.Controller.Cache = cache.Nop{}
	}

	if rt.Controller.Publisher == nil {
		rt.Controller.Publisher = events.Log{Logger: log.Logger}
	}

	root.RegisterRoutes(group.Group(""))
	version.RegisterRoutes(group.Group("/version"), buildVersion)
	healthz.RegisterRoutes(group.Group("/healthz"))

	group.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// pprof performance profiles
	if rt.EnablePprof {
		pprof.RouteRegister(group, "debug/pprof")
	}

	group.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Everything below /v1 belongs to the owner identified by the token
	v1Group := group.Group("/v1", rt.Verifier.Middleware())
	rt.Controller.RegisterRoutes(v1Group)
}
