package api

import (
	"recipe_hub/internal/middleware" // Custom package for middleware
	"recipe_hub/internal/session"    // Session manager

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"                 // GORM ORM library
)

// Deps are the collaborators the handlers need
type Deps struct {
	DB       *gorm.DB         // Relational store
	Redis    *redis.Client    // Session backend, used for health checks
	Sessions *session.Manager // Session cookies and records
}

// NewRouter builds the gin engine with every route registered
func NewRouter(d Deps) *gin.Engine {
	r := gin.New() // Gin router instance
	r.Use(gin.Recovery(), middleware.RequestLogger())

	r.GET("/healthz", HealthHandler(d.DB, d.Redis)) // Liveness and dependency probe

	app := r.Group("", middleware.SessionMiddleware(d.Sessions)) // Routes that read the session cookie

	// Auth routes
	app.POST("/signup", SignupHandler(d.DB, d.Sessions)) // Registration endpoint
	app.GET("/check_session", CheckSessionHandler(d.DB)) // Session probe
	app.POST("/login", LoginHandler(d.DB, d.Sessions))   // Login endpoint
	app.DELETE("/logout", LogoutHandler(d.Sessions))     // Logout endpoint

	// Recipe routes (protected by session)
	recipeGroup := app.Group("/recipes")
	recipeGroup.Use(middleware.RequireSession())
	recipeGroup.GET("", ListRecipesHandler(d.DB))   // List recipes endpoint
	recipeGroup.POST("", CreateRecipeHandler(d.DB)) // Create recipe endpoint

	return r
}
