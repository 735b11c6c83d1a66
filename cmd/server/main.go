package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	identityapp "github.com/inventaris/backend/internal/application/identity"
	inventoryapp "github.com/inventaris/backend/internal/application/inventory"
	partnerapp "github.com/inventaris/backend/internal/application/partner"
	"github.com/inventaris/backend/internal/infrastructure/auth"
	"github.com/inventaris/backend/internal/infrastructure/config"
	"github.com/inventaris/backend/internal/infrastructure/logger"
	"github.com/inventaris/backend/internal/infrastructure/persistence"
	"github.com/inventaris/backend/internal/interfaces/http/handler"
	"github.com/inventaris/backend/internal/interfaces/http/middleware"
	"github.com/inventaris/backend/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting inventaris backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	// Token revocation prefers Redis so sign-outs survive restarts and are
	// shared between instances. Without Redis the in-process blacklist
	// still covers a single instance.
	var blacklist auth.TokenBlacklist
	redisBlacklist, err := auth.NewRedisTokenBlacklist(cfg.Redis)
	if err != nil {
		log.Warn("Redis unavailable, using in-memory token blacklist", zap.Error(err))
		blacklist = auth.NewMemoryTokenBlacklist()
	} else {
		defer func() {
			_ = redisBlacklist.Close()
		}()
		blacklist = redisBlacklist
		log.Info("Redis token blacklist connected", zap.String("addr", cfg.Redis.Addr()))
	}

	jwtService := auth.NewJWTService(cfg.JWT)

	// Repositories
	itemRepo := persistence.NewGormItemRepository(db.DB)
	txRepo := persistence.NewGormStockTransactionRepository(db.DB)
	supplierRepo := persistence.NewGormSupplierRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)
	txScope := persistence.NewGormTransactionScope(db.DB)

	// Application services
	stockTransactionService := inventoryapp.NewStockTransactionService(txRepo, itemRepo, txScope)
	itemService := inventoryapp.NewItemService(itemRepo, supplierRepo, txScope)
	supplierService := partnerapp.NewSupplierService(supplierRepo)
	authService := identityapp.NewAuthService(userRepo, jwtService, blacklist, log)
	userService := identityapp.NewUserService(userRepo)

	// Handlers
	stockTransactionHandler := handler.NewStockTransactionHandler(stockTransactionService)
	itemHandler := handler.NewItemHandler(itemService)
	supplierHandler := handler.NewSupplierHandler(supplierService)
	authHandler := handler.NewAuthHandler(authService, cfg.Cookie)
	userHandler := handler.NewUserHandler(userService)
	systemHandler := handler.NewSystemHandler(db)

	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.CORS(middleware.CORSConfig{
		AllowOrigins: cfg.HTTP.CORSAllowOrigins,
		AllowMethods: cfg.HTTP.CORSAllowMethods,
		AllowHeaders: cfg.HTTP.CORSAllowHeaders,
	}))

	engine.GET("/health", systemHandler.Health)

	jwtAuth := middleware.JWTAuth(jwtService, blacklist)

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	// Public auth routes
	authRoutes := router.NewDomainGroup("auth", "/auth")
	authRoutes.POST("/signup", authHandler.SignUp)
	authRoutes.POST("/signin", authHandler.SignIn)
	authRoutes.POST("/signout", jwtAuth, authHandler.SignOut)

	// Inventory domain
	inventoryRoutes := router.NewDomainGroup("inventory", "")
	inventoryRoutes.Use(jwtAuth)
	inventoryRoutes.POST("/stock-transactions", stockTransactionHandler.Record)
	inventoryRoutes.GET("/stock-transactions", stockTransactionHandler.List)
	inventoryRoutes.GET("/stock-transactions/by-month", stockTransactionHandler.AggregateByMonth)
	inventoryRoutes.GET("/stock-transactions/by-year", stockTransactionHandler.AggregateByYear)
	inventoryRoutes.POST("/items", itemHandler.Create)
	inventoryRoutes.GET("/items", itemHandler.List)
	inventoryRoutes.PUT("/items/:itemId", itemHandler.Update)
	inventoryRoutes.DELETE("/items/:itemId", itemHandler.Delete)

	// Partner domain
	partnerRoutes := router.NewDomainGroup("partner", "")
	partnerRoutes.Use(jwtAuth)
	partnerRoutes.POST("/suppliers", supplierHandler.Create)
	partnerRoutes.GET("/suppliers", supplierHandler.List)
	partnerRoutes.PUT("/suppliers/:supplierId", supplierHandler.Update)
	partnerRoutes.DELETE("/suppliers/:supplierId", supplierHandler.Delete)

	// Identity domain
	identityRoutes := router.NewDomainGroup("identity", "")
	identityRoutes.Use(jwtAuth)
	identityRoutes.POST("/users", userHandler.Create)
	identityRoutes.GET("/users", userHandler.List)
	identityRoutes.PUT("/users/:userId", userHandler.Update)
	identityRoutes.DELETE("/users/:userId", userHandler.Delete)

	r.Register(authRoutes).
		Register(inventoryRoutes).
		Register(partnerRoutes).
		Register(identityRoutes)
	r.Setup()

	engine.GET("/api/v1/ping", systemHandler.Ping)

	srv := &http.Server{
		Addr:           cfg.App.ServerAddress(),
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
