package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/sync/errgroup"

	"tipapi/bootstrap"
	"tipapi/config"
	"tipapi/controllers"
	_ "tipapi/docs"
	"tipapi/pkg/logger"
	"tipapi/pkg/metrics"
	"tipapi/services"
	"tipapi/utils"
)

// @title           tipapi
// @version         1.0
// @description     Review Cycle Group Service

// @BasePath  /api/v1

func main() {
	root := &cobra.Command{
		Use:           "tipapi",
		Short:         "Review cycle group and criteria API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	}
	root.AddCommand(serveCommand(), migrateCommand())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err := root.ExecuteContext(ctx)
	config.CloseDB()
	if err != nil {
		log.Fatalf("tipapi: %v", err)
	}
}

func serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API (default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	}
}

func migrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := bootstrap.MigrateForDriver(config.DB, config.Cfg.DBDriver); err != nil {
				return err
			}
			logger.Infof("Schema migration complete")
			return nil
		},
	}
}

// setup loads config, starts the logger and opens the database.
func setup() error {
	// 1) Load config
	if err := config.LoadConfig(); err != nil {
		return fmt.Errorf("LoadConfig error: %w", err)
	}

	// 2) Init structured logger with config
	logger.InitWithConfig(
		config.Cfg.LogFile,
		logger.ParseLogLevel(config.Cfg.LogLevel),
		config.Cfg.LogMaxSize,
		config.Cfg.LogMaxBackups,
		config.Cfg.LogMaxAge,
		config.Cfg.LogCompress,
	)
	logger.Infof("Starting tipapi with log level: %s", config.Cfg.LogLevel)

	// 3) Connect DB (GORM)
	if err := config.ConnectDB(); err != nil {
		return fmt.Errorf("ConnectDB error: %w", err)
	}
	if config.DB == nil {
		return errors.New("database is nil after ConnectDB")
	}
	return nil
}

func serve(ctx context.Context) error {
	if config.Cfg.DBAutoMigrate {
		if err := bootstrap.MigrateForDriver(config.DB, config.Cfg.DBDriver); err != nil {
			return fmt.Errorf("migrate error: %w", err)
		}
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	controllers.SetReviewCycleGroupService(services.NewReviewCycleGroupService(m))
	controllers.SetReviewGroupCriteriaService(services.NewReviewGroupCriteriaService(m))

	gin.SetMode(config.Cfg.GinMode)
	router := newRouter(m, config.Cfg)

	srv := &http.Server{
		Addr:    "0.0.0.0:" + config.Cfg.Port,
		Handler: router,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Infof("Starting server at port %s", config.Cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Infof("Received shutdown signal, stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.Cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Infof("Application shutdown complete")
	return nil
}

// newRouter assembles middleware and routes. Services must already be set on the controllers.
func newRouter(m *metrics.Metrics, cfg config.AppConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.RequestIDMiddleware())
	router.Use(utils.LoggerMiddleware())
	if cfg.MetricsEnabled {
		router.Use(utils.MetricsMiddleware(m))
		router.GET("/metrics", gin.WrapH(m.Handler()))
	}

	v1 := router.Group("/api/v1")
	{
		controllers.RegisterReviewCycleGroupRoutes(v1)
		controllers.RegisterReviewGroupCriteriaRoutes(v1)
		controllers.RegisterPublicRoutes(v1)
	}

	if cfg.SwaggerEnabled {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
	return router
}
