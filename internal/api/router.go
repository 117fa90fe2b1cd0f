package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/openblog/bloglist/docs"
	"github.com/openblog/bloglist/internal/api/handler"
	"github.com/openblog/bloglist/internal/api/middleware"
	"github.com/openblog/bloglist/internal/core/service"
	mongodb "github.com/openblog/bloglist/internal/infrastructure/db/mongo"
	redisdb "github.com/openblog/bloglist/internal/infrastructure/db/redis"
)

// Options carries the router's runtime settings.
type Options struct {
	JWTSecret string
	TokenTTL  time.Duration
	// Env gates the testing reset endpoint; it is mounted only for "test".
	Env string
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, log zerolog.Logger, opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("bloglist"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	blogRepo := mongodb.NewBlogRepository(db)
	commentRepo := mongodb.NewCommentRepository(db)
	throttle := redisdb.NewLoginThrottle(rdb)

	authService := service.NewAuthService(userRepo, throttle, opts.JWTSecret, opts.TokenTTL, log)
	userService := service.NewUserService(userRepo, blogRepo, log)
	blogService := service.NewBlogService(blogRepo, userRepo, log)
	commentService := service.NewCommentService(commentRepo, blogRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	blogHandler := handler.NewBlogHandler(blogService)
	commentHandler := handler.NewCommentHandler(commentService)
	healthHandler := handler.NewHealthHandler(db, rdb)

	userMiddleware := middleware.User(opts.JWTSecret, userRepo)

	// --- Auth and user routes ---
	e.POST("/api/login", authHandler.Login)
	e.POST("/api/users", userHandler.Register)
	e.GET("/api/users", userHandler.List)

	// --- Blog routes (token extracted for all, enforced per operation) ---
	blogs := e.Group("/api/blogs", userMiddleware)
	blogs.GET("", blogHandler.List)
	blogs.GET("/stats", blogHandler.Stats)
	blogs.POST("", blogHandler.Create)
	blogs.PUT("/:id", blogHandler.Update)
	blogs.DELETE("/:id", blogHandler.Delete)
	blogs.GET("/:id/comments", commentHandler.List)
	blogs.POST("/:id/comments", commentHandler.Add)

	// --- Testing support (e2e suites only) ---
	if opts.Env == "test" {
		testingHandler := handler.NewTestingHandler(userRepo, blogRepo, commentRepo)
		e.POST("/api/testing/reset", testingHandler.Reset)
	}

	// --- Observability and docs ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
