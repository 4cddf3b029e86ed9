package routes

import (
	"net/http"
	"time"

	"restaurant-directory/config"
	"restaurant-directory/handlers"
	"restaurant-directory/middleware"
	"restaurant-directory/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// route declares one endpoint and, optionally, its own access policy.
// A nil policy inherits the policy of the group it is registered in.
type route struct {
	method  string
	path    string
	policy  *middleware.Policy
	handler gin.HandlerFunc
}

// group registers routes under prefix, guarding each one with its resolved policy.
func group(r *gin.Engine, verifier middleware.TokenVerifier, prefix string, groupPolicy *middleware.Policy, routes ...route) {
	g := r.Group(prefix)
	for _, rt := range routes {
		policy := middleware.ResolvePolicy(rt.policy, groupPolicy)
		g.Handle(rt.method, rt.path, middleware.Guard(verifier, policy), rt.handler)
	}
}

// NewEngine builds a gin engine with the middleware both services share:
// request logging, panic recovery, metrics, CORS, /health and /metrics.
func NewEngine(cfg *config.Config, log *zap.Logger, service string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	}

	r := gin.New()
	r.RedirectTrailingSlash = true
	r.Use(middleware.ZapLogger(log))
	r.Use(gin.Recovery())
	r.Use(middleware.Metrics(service))

	corsConfig := cors.DefaultConfig()
	allowedOrigins := cfg.GetAllowedOrigins()
	if len(allowedOrigins) > 0 {
		corsConfig.AllowOrigins = allowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
		log.Info("CORS_ALLOWED_ORIGINS not set, allowing every origin")
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", middleware.RequestIDHeader}
	corsConfig.ExposeHeaders = []string{middleware.RequestIDHeader}
	corsConfig.MaxAge = 12 * time.Hour
	r.Use(cors.New(corsConfig))

	health := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": service})
	}
	r.GET("/health", health)
	r.HEAD("/health", health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

// SetupUserRoutes registers the auth, user, role and permission endpoints.
func SetupUserRoutes(r *gin.Engine, verifier middleware.TokenVerifier, auth *handlers.AuthHandler, admin *handlers.AdminHandler) {
	group(r, verifier, "/auth", middleware.Public(),
		route{http.MethodPost, "/register", nil, auth.Register},
		route{http.MethodPost, "/login", nil, auth.Login},
		route{http.MethodPost, "/refresh", nil, auth.Refresh},
		route{http.MethodGet, "/profile", middleware.Authenticated(), auth.Profile},
	)

	group(r, verifier, "/users", middleware.RequirePermissions(models.PermUsersRead),
		route{http.MethodGet, "", nil, admin.ListUsers},
		route{http.MethodPost, "/:id/roles", middleware.RequirePermissions(models.PermUsersAssignRoles), admin.AssignRole},
	)

	group(r, verifier, "/roles", middleware.Authenticated(),
		route{http.MethodGet, "", nil, admin.ListRoles},
		route{http.MethodPost, "", middleware.RequirePermissions(models.PermRolesCreate), admin.CreateRole},
		route{http.MethodPost, "/:id/permissions", middleware.RequirePermissions(models.PermRolesAssignPermissions), admin.AssignPermission},
	)

	group(r, verifier, "/permissions", middleware.Authenticated(),
		route{http.MethodGet, "", nil, admin.ListPermissions},
		route{http.MethodPost, "", middleware.RequirePermissions(models.PermPermissionsCreate), admin.CreatePermission},
	)
}

// SetupRestaurantRoutes registers the restaurant, menu and city endpoints.
// Reads are public, writes need the admin role.
func SetupRestaurantRoutes(r *gin.Engine, verifier middleware.TokenVerifier, restaurants *handlers.RestaurantHandler, cities *handlers.CityHandler) {
	adminOnly := middleware.RequireRoles(models.RoleAdmin)

	group(r, verifier, "/restaurant", middleware.Public(),
		route{http.MethodGet, "", nil, restaurants.ListRestaurants},
		route{http.MethodGet, "/:id", nil, restaurants.GetRestaurant},
		route{http.MethodPost, "", adminOnly, restaurants.CreateRestaurant},
		route{http.MethodPut, "/:id", adminOnly, restaurants.UpdateRestaurant},
		route{http.MethodDelete, "/:id", adminOnly, restaurants.DeleteRestaurant},
		route{http.MethodGet, "/:id/menu", nil, restaurants.GetMenu},
		route{http.MethodPost, "/:id/menu", adminOnly, restaurants.SaveMenu},
	)

	group(r, verifier, "/city", middleware.Public(),
		route{http.MethodGet, "", nil, cities.ListCities},
		route{http.MethodGet, "/:id", nil, cities.GetCity},
		route{http.MethodPost, "", adminOnly, cities.CreateCity},
		route{http.MethodPut, "/:id", adminOnly, cities.UpdateCity},
		route{http.MethodDelete, "/:id", adminOnly, cities.DeleteCity},
	)
}
