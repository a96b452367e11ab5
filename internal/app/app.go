package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"elearning_backend/internal/config"
	"elearning_backend/internal/controller"
	"elearning_backend/internal/repository"
	"elearning_backend/internal/service"
	"elearning_backend/internal/util"
	"elearning_backend/pkg/configwatcher"
	"elearning_backend/pkg/database"
	"elearning_backend/pkg/logger"
	"elearning_backend/pkg/monitoring"
	"elearning_backend/pkg/security"
	"elearning_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user      *repository.UserRepository
	cert      *repository.CertificateRepository
	exam      *repository.ExamRepository
	container *repository.ContainerRepository
	question  *repository.QuestionRepository
	option    *repository.OptionRepository
	media     *repository.MediaRepository
}

type services struct {
	auth    *service.AuthService
	cert    *service.CertificateService
	exam    *service.ExamService
	questn  *service.QuestionService
	media   *service.MediaService
	storage *service.StorageService
	report  *service.ReportService
	cache   *service.ExamCache
}

type controllers struct {
	auth      *controller.AuthController
	cert      *controller.CertificateController
	exam      *controller.ExamController
	container *controller.ContainerController
	question  *controller.QuestionController
	option    *controller.OptionController
	media     *controller.MediaController
	upload    *controller.UploadController
	report    *controller.ReportController
	health    *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// WatchConfig keeps rate limits and CORS in sync with edits to the config
// file without a restart.
func (a *App) WatchConfig(configPath string) {
	go configwatcher.WatchConfig(configPath, func(cfg *config.Config) {
		a.Config = cfg
		for _, cb := range a.configCallbacks {
			cb(cfg)
		}
	})
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:      repository.NewUserRepository(db),
		cert:      repository.NewCertificateRepository(db),
		exam:      repository.NewExamRepository(db),
		container: repository.NewContainerRepository(db),
		question:  repository.NewQuestionRepository(db),
		option:    repository.NewOptionRepository(db),
		media:     repository.NewMediaRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.cache = service.NewExamCache(rdb)
	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.cert = service.NewCertificateService(repos.cert)
	s.exam = service.NewExamService(repos.exam, repos.container, repos.cert, s.cache)
	s.questn = service.NewQuestionService(repos.question, repos.option, s.cache)
	s.media = service.NewMediaService(repos.media, repos.exam, repos.container, repos.question, s.cache)
	s.report = service.NewReportService(s.exam, repos.exam)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:      controller.NewAuthController(s.auth),
		cert:      controller.NewCertificateController(s.cert),
		exam:      controller.NewExamController(s.exam),
		container: controller.NewContainerController(s.exam),
		question:  controller.NewQuestionController(s.questn),
		option:    controller.NewOptionController(s.questn),
		media:     controller.NewMediaController(s.media),
		upload:    controller.NewUploadController(s.storage, a.Config),
		report:    controller.NewReportController(s.report),
		health:    controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	windowMinutes := cfg.RateLimit.WindowMinutes
	if windowMinutes <= 0 {
		windowMinutes = 1
	}
	router.Use(security.RateLimiter(maxRequests, time.Duration(windowMinutes)*time.Minute))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	gin.SetMode(cfg.Server.Mode)

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	if cfg.MigrateOnly {
		logger.Log.Info("Migration completed, exiting")
		os.Exit(0)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		// Redis is a cache here, the service still works without it.
		logger.Log.Warn("Redis unavailable, exam detail caching disabled", zap.Error(err))
		rdb = nil
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services, db, rdb)

	monitoring.Init()

	router := gin.New()
	router.Use(gin.Recovery())
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("exam-admin", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == util.StorageLocal {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func (a *App) Run() {
	defer logger.Log.Sync()

	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
