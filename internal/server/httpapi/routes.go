package httpapi

import (
	"slices"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joseotaviopc/api-ari/docs"
	"github.com/joseotaviopc/api-ari/internal/common"
	"github.com/joseotaviopc/api-ari/internal/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RouterDeps lists everything NewRouter mounts.
type RouterDeps struct {
	Auth     AuthService
	Users    UserService
	Clientes ClienteService
	Bases    BaseService
	Guard    Authenticator
	Health   map[string]Pinger

	// Metrics and Gatherer are optional; /metrics is mounted when both are set.
	Metrics  *Metrics
	Gatherer prometheus.Gatherer

	AllowedOrigins []string
	SwaggerHost    string
	Log            logging.Logger
}

// NewRouter builds the gin engine with every route of the API.
// @title ARI
// @version 1.0
// @description The ARI API description
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func NewRouter(d RouterDeps) *gin.Engine {
	log := d.Log
	if log == nil {
		log = logging.Nop()
	}

	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), AccessLog(log))
	if d.Metrics != nil {
		r.Use(d.Metrics.Handler())
	}
	if len(d.AllowedOrigins) > 0 {
		r.Use(cors.New(corsConfig(d.AllowedOrigins)))
	}

	health := NewHealthHandler(d.Health)
	r.GET("/", health.Root)
	r.GET("/status", health.Status)
	r.GET("/health", health.Check)

	if d.Metrics != nil && d.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{})))
	}

	if d.SwaggerHost != "" {
		docs.SwaggerInfo.Host = d.SwaggerHost
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := RequireAuth(d.Guard, log)

	authH := NewAuthHandler(d.Auth, log)
	a := r.Group("/auth")
	a.POST("/login", authH.Login)
	a.POST("/register", authH.Register)
	a.GET("/me", requireAuth, authH.Me)
	if d.Auth.LogoutEnabled() {
		a.POST("/logout", requireAuth, authH.Logout)
	}

	usersH := NewUserHandler(d.Users, log)
	r.POST("/users", usersH.Create)
	u := r.Group("/users", requireAuth)
	u.GET("", usersH.List)
	u.GET("/:id", usersH.Get)
	u.PATCH("/:id", usersH.Update)
	u.DELETE("/:id", usersH.Delete)

	clientesH := NewClienteHandler(d.Clientes, log)
	cl := r.Group("/cliente", requireAuth)
	cl.GET("", clientesH.List)
	cl.POST("", clientesH.Create)
	cl.GET("/:id", clientesH.Get)
	cl.PATCH("/:id", clientesH.Update)
	cl.DELETE("/:id", clientesH.Delete)

	basesH := NewBaseHandler(d.Bases, log)
	b := r.Group("/bases", requireAuth)
	b.GET("", basesH.List)
	b.POST("", basesH.Create)
	b.GET("/:id", basesH.Get)
	b.PATCH("/:id", basesH.Update)
	b.DELETE("/:id", basesH.Delete)

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", common.AuthorizationHeaderName, common.RequestIDHeaderName}
	cfg.ExposeHeaders = []string{common.RequestIDHeaderName}
	if slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
