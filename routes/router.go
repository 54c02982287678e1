package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/realme-social/realme-backend/config"
	"github.com/realme-social/realme-backend/controllers"
	"github.com/realme-social/realme-backend/middleware"
	"github.com/realme-social/realme-backend/utils"
)

// SetupRouter wires routes, middlewares, and controllers.
//
// Bearer auth is required only on post/comment mutation; user and community
// creation and every GET stay open. That asymmetry reflects the current
// product behavior and is deliberate, not an oversight to normalize.
func SetupRouter(db *gorm.DB, cfg config.AppConfig) *gin.Engine {
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	// Replace default console logger with a rolling zap access log.
	gl, err := utils.NewRollingFileLogger(cfg.AccessLogPath, cfg.LogLevel, cfg.LogMaxSizeMB, cfg.LogMaxBackups, cfg.LogMaxAgeDays, cfg.LogCompress)
	if err == nil {
		r.Use(utils.Ginzap(gl, time.RFC3339, true))
		r.Use(utils.RecoveryWithZap(gl, false))
	} else {
		// fallback to default recovery if logger failed to init
		r.Use(gin.Recovery())
	}

	r.Use(middleware.RequestTimeout(time.Duration(cfg.RequestTimeoutSeconds) * time.Second))

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	r.GET("/", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "Real.me backend is alive!")
	})
	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	userController := controllers.NewUserController(db)
	communityController := controllers.NewCommunityController(db)
	postController := controllers.NewPostController(db)
	commentController := controllers.NewCommentController(db)

	authRequired := middleware.AuthRequired(cfg)
	rateLimited := middleware.RateLimitMiddleware(cfg)

	users := r.Group("/users")
	users.GET("", userController.ListUsers)
	users.GET("/:id", userController.GetUser)
	users.POST("", userController.CreateUser)

	communities := r.Group("/communities")
	communities.GET("", communityController.ListCommunities)
	communities.GET("/:id", communityController.GetCommunity)
	communities.POST("", communityController.CreateCommunity)

	posts := r.Group("/posts")
	posts.GET("", postController.ListPosts)
	posts.GET("/:id", postController.GetPost)
	posts.GET("/community/:communityId", postController.ListCommunityPosts)
	posts.POST("", authRequired, rateLimited, postController.CreatePost)
	posts.DELETE("/:id", authRequired, rateLimited, postController.DeletePost)

	comments := r.Group("/comments")
	comments.GET("/post/:id", commentController.ListPostComments)
	comments.POST("", authRequired, rateLimited, commentController.CreateComment)
	comments.DELETE("/:id", authRequired, rateLimited, commentController.DeleteComment)

	r.NoRoute(func(ctx *gin.Context) {
		utils.Error(ctx, http.StatusNotFound, "route not found")
	})

	return r
}
