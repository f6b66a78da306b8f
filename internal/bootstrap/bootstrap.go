// Package bootstrap handles application initialization
package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/amitk/attendance/internal/app/controllers"
	"github.com/amitk/attendance/internal/app/migrations"
	"github.com/amitk/attendance/internal/app/repositories"
	"github.com/amitk/attendance/internal/app/routes"
	"github.com/amitk/attendance/internal/app/services"
	"github.com/amitk/attendance/internal/config"
	"github.com/amitk/attendance/internal/db"
	"github.com/amitk/attendance/internal/middleware"
	"github.com/amitk/attendance/internal/pkg/auth"
	"github.com/amitk/attendance/internal/pkg/logger"
	"github.com/amitk/attendance/internal/pkg/metrics"
	"github.com/amitk/attendance/internal/seed"
)

// Dependencies holds the wired application components.
type Dependencies struct {
	Repositories   *repositories.Repositories
	JWTService     *auth.JWTService
	Controllers    routes.Controllers
	AuthMiddleware *middleware.AuthMiddleware
}

// LoadConfigAndSetupLogger loads configuration and configures logging.
// Configuration errors are fatal: the server must not come up with an
// unusable config, a missing JWT secret in particular.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(cfg.Logging.Level),
		Pretty: cfg.Logging.Format == "pretty",
	})

	return cfg, nil
}

// SetupDatabase connects to PostgreSQL, applies pending migrations and
// seeds the default admin account. A seed failure is returned as an
// error, which aborts startup.
func SetupDatabase(cfg *config.Config) (*db.PostgresDB, error) {
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	migrator := migrations.NewMigrator(database.Pool)
	if err := migrator.MigrateFromDirectory("migrations"); err != nil {
		database.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	userRepo := repositories.NewUserRepository(database.Pool)
	if err := seed.EnsureAdminUser(ctx, userRepo, logger.Logger()); err != nil {
		database.Close()
		return nil, fmt.Errorf("seeding admin user: %w", err)
	}

	return database, nil
}

// BuildDependencies wires repositories, services, controllers and
// middleware together.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB) *Dependencies {
	repos := repositories.NewRepositories(database.Pool)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: cfg.AccessTokenExp(),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	authService := services.NewAuthService(repos.UserRepository, jwtService, logger.Logger())
	userService := services.NewUserService(repos.UserRepository)
	departmentService := services.NewDepartmentService(repos.DepartmentRepository)
	courseService := services.NewCourseService(repos.CourseRepository, repos.DepartmentRepository)
	studentService := services.NewStudentService(repos.StudentRepository, repos.DepartmentRepository)
	attendanceService := services.NewAttendanceService(
		repos.AttendanceRepository,
		repos.StudentRepository,
		repos.CourseRepository,
	)

	return &Dependencies{
		Repositories: repos,
		JWTService:   jwtService,
		Controllers: routes.Controllers{
			Auth:       controllers.NewAuthController(authService, logger.Logger()),
			User:       controllers.NewUserController(userService),
			Department: controllers.NewDepartmentController(departmentService),
			Course:     controllers.NewCourseController(courseService),
			Student:    controllers.NewStudentController(studentService),
			Attendance: controllers.NewAttendanceController(attendanceService),
		},
		AuthMiddleware: middleware.NewAuthMiddleware(jwtService),
	}
}

// SetupRouter creates the gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(metrics.GinMiddleware())

	routes.SetupRoutes(router, deps.Controllers, deps.AuthMiddleware)

	return router
}
