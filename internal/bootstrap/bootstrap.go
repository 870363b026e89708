package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/smartcampus/backend/internal/app/controllers"
	appMigrations "github.com/smartcampus/backend/internal/app/migrations"
	appRepos "github.com/smartcampus/backend/internal/app/repositories"
	appRoutes "github.com/smartcampus/backend/internal/app/routes"
	appServices "github.com/smartcampus/backend/internal/app/services"
	"github.com/smartcampus/backend/internal/config"
	"github.com/smartcampus/backend/internal/db"
	appMiddleware "github.com/smartcampus/backend/internal/middleware"
	pkgAuth "github.com/smartcampus/backend/internal/pkg/auth"
	"github.com/smartcampus/backend/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService        appServices.AuthService
	InstitutionService appServices.InstitutionService
	FacultyService     appServices.FacultyService
	DepartmentService  appServices.DepartmentService
	StaffService       appServices.StaffService
	StudentService     appServices.StudentService
	CourseService      appServices.CourseService
	ClassroomService   appServices.ClassroomService
	TimetableService   appServices.TimetableService
	AttendanceService  appServices.AttendanceService
	IntegrationService appServices.IntegrationService
	UserService        appServices.UserService

	AuthController        *appControllers.AuthController
	InstitutionController *appControllers.InstitutionController
	FacultyController     *appControllers.FacultyController
	DepartmentController  *appControllers.DepartmentController
	StaffController       *appControllers.StaffController
	StudentController     *appControllers.StudentController
	CourseController      *appControllers.CourseController
	ClassroomController   *appControllers.ClassroomController
	TimetableController   *appControllers.TimetableController
	AttendanceController  *appControllers.AttendanceController
	IntegrationController *appControllers.IntegrationController
	UserController        *appControllers.UserController

	AuthMiddleware *appMiddleware.AuthMiddleware
	Repos          *appRepos.Repositories
	JWTService     *pkgAuth.JWTService
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		dbPool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")
	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: cfg.TokenExpiration(),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.Repos.InstitutionRepository,
		deps.JWTService,
	)
	deps.InstitutionService = appServices.NewInstitutionService(
		dbPool,
		deps.Repos.InstitutionRepository,
		deps.Repos.UserRepository,
		deps.Repos.ActivityRepository,
	)
	deps.FacultyService = appServices.NewFacultyService(deps.Repos.FacultyRepository, deps.Repos.ActivityRepository)
	deps.DepartmentService = appServices.NewDepartmentService(deps.Repos.DepartmentRepository, deps.Repos.ActivityRepository)
	deps.StaffService = appServices.NewStaffService(deps.Repos.StaffRepository, deps.Repos.ActivityRepository)
	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository, deps.Repos.ActivityRepository)
	deps.CourseService = appServices.NewCourseService(deps.Repos.CourseRepository, deps.Repos.ActivityRepository)
	deps.ClassroomService = appServices.NewClassroomService(deps.Repos.ClassroomRepository, deps.Repos.ActivityRepository)
	deps.TimetableService = appServices.NewTimetableService(
		deps.Repos.TimeSlotRepository,
		deps.Repos.TimetableRepository,
		deps.Repos.ActivityRepository,
	)
	deps.AttendanceService = appServices.NewAttendanceService(deps.Repos.AttendanceRepository)
	deps.IntegrationService = appServices.NewIntegrationService(deps.Repos.IntegrationRepository)
	deps.UserService = appServices.NewUserService(deps.Repos.UserRepository)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, deps.Repos.UserRepository)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.InstitutionController = appControllers.NewInstitutionController(deps.InstitutionService)
	deps.FacultyController = appControllers.NewFacultyController(deps.FacultyService)
	deps.DepartmentController = appControllers.NewDepartmentController(deps.DepartmentService)
	deps.StaffController = appControllers.NewStaffController(deps.StaffService)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService)
	deps.ClassroomController = appControllers.NewClassroomController(deps.ClassroomService)
	deps.TimetableController = appControllers.NewTimetableController(deps.TimetableService)
	deps.AttendanceController = appControllers.NewAttendanceController(deps.AttendanceService)
	deps.IntegrationController = appControllers.NewIntegrationController(deps.IntegrationService)
	deps.UserController = appControllers.NewUserController(deps.UserService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger(lgr))

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.InstitutionController,
		deps.FacultyController,
		deps.DepartmentController,
		deps.StaffController,
		deps.StudentController,
		deps.CourseController,
		deps.ClassroomController,
		deps.TimetableController,
		deps.AttendanceController,
		deps.IntegrationController,
		deps.UserController,
		deps.AuthMiddleware,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
