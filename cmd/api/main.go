package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/opencampus/enrollment-api/api/swagger"
	"github.com/opencampus/enrollment-api/internal/handler"
	"github.com/opencampus/enrollment-api/internal/middleware"
	"github.com/opencampus/enrollment-api/internal/repository"
	"github.com/opencampus/enrollment-api/internal/service"
	"github.com/opencampus/enrollment-api/internal/store"
	"github.com/opencampus/enrollment-api/pkg/config"
	"github.com/opencampus/enrollment-api/pkg/logger"
	corsmiddleware "github.com/opencampus/enrollment-api/pkg/middleware/cors"
	reqidmiddleware "github.com/opencampus/enrollment-api/pkg/middleware/requestid"
)

// @title Enrollment API
// @version 1.0.0
// @description Student, course and department administration service
// @BasePath /api
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	backing, err := newStore(cfg)
	if err != nil {
		logr.Sugar().Fatalw("failed to init store", "driver", cfg.Store.Driver, "error", err)
	}

	metricsSvc := service.NewMetricsService()
	st := store.NewInstrumentedStore(backing, metricsSvc)

	students := repository.NewStudentRepository(st, logr)
	courses := repository.NewCourseRepository(st, logr)
	departments := repository.NewDepartmentRepository(st, logr)

	validate := validator.New()
	studentSvc := service.NewStudentService(students, courses, validate, logr)
	courseSvc := service.NewCourseService(courses, validate, logr)
	departmentSvc := service.NewDepartmentService(departments, validate, logr)
	adminSvc := service.NewAdminService(students, courses, departments, logr)
	exportSvc := service.NewExportService(students, courses, cfg.Export.MaxRows, logr)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/ready", handler.Ready(st))
	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	handler.Register(api, handler.Handlers{
		Students:       handler.NewStudentHandler(studentSvc, exportSvc),
		Courses:        handler.NewCourseHandler(courseSvc, studentSvc, exportSvc),
		Departments:    handler.NewDepartmentHandler(departmentSvc),
		Admin:          handler.NewAdminHandler(adminSvc),
		ExportsEnabled: cfg.Export.Enabled,
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "store", cfg.Store.Driver)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}

func newStore(cfg *config.Config) (store.Store, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverMemory:
		return store.NewMemoryStore(), nil
	case config.StoreDriverFile:
		return store.NewFileStore(cfg.Store.Dir)
	case config.StoreDriverRedis:
		return store.NewRedisStore(cfg.Redis)
	case config.StoreDriverPostgres:
		return store.NewPostgresStore(cfg.Database)
	default:
		return nil, fmt.Errorf("unknown store driver: %s", cfg.Store.Driver)
	}
}
