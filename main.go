package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"moviecatalogapi/bootstrap"
	"moviecatalogapi/config"
	"moviecatalogapi/controllers"
	_ "moviecatalogapi/docs"
	"moviecatalogapi/pkg/logger"
	"moviecatalogapi/services"
	"moviecatalogapi/utils"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           moviecatalogapi
// @version         1.0
// @description     Movie Catalog API

// @BasePath  /api

func main() {
	// 1) Load config
	if err := config.LoadConfig(); err != nil {
		log.Fatalf("LoadConfig error: %v", err)
	}

	// 2) Connect DB (GORM)
	if err := config.ConnectDB(); err != nil {
		log.Fatalf("ConnectDB error: %v", err)
	}
	if config.DB == nil {
		log.Fatal("Database is nil after ConnectDB")
	}

	if err := bootstrap.LoadData(); err != nil {
		log.Fatalf("Load data error: %v", err)
	}

	controllers.SetDirectorService(services.NewDirectorService())
	controllers.SetGenreService(services.NewGenreService())
	controllers.SetMovieService(services.NewMovieService())
	controllers.SetGroupService(services.NewGroupService())
	controllers.SetRoleService(services.NewRoleService())
	controllers.SetUserService(services.NewUserService())

	// 3) Init structured logger with config
	logLevel := logger.ParseLogLevel(config.Cfg.LogLevel)
	logger.InitWithConfig(
		config.Cfg.LogFile,
		logLevel,
		config.Cfg.LogMaxSize,
		config.Cfg.LogMaxBackups,
		config.Cfg.LogMaxAge,
		config.Cfg.LogCompress,
	)
	logger.Infof("Starting Movie Catalog API with log level: %s", config.Cfg.LogLevel)

	// 4) Setup Gin
	router := gin.Default()
	router.Use(utils.LoggerMiddleware())

	v1 := router.Group("/api")
	{
		catalog := v1.Group("/catalog")
		{
			controllers.RegisterDirectorRoutes(catalog)
			controllers.RegisterGenreRoutes(catalog)
			controllers.RegisterMovieRoutes(catalog)
			controllers.RegisterGroupRoutes(catalog)
			controllers.RegisterRoleRoutes(catalog)
			controllers.RegisterUserRoutes(catalog)
		}
	}

	// 5) Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 6) Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		logger.Infof("Application shutdown complete")
		os.Exit(0)
	}()

	// 7) Run
	port := os.Getenv("PORT")
	if port == "" {
		port = config.Cfg.Port
	}
	logger.Infof("Starting server at port %s", port)
	router.Run("0.0.0.0:" + port)
}
