package app

import (
	"database/sql"

	"go-orgsuite/internal/assessment"
	"go-orgsuite/internal/auth"
	"go-orgsuite/internal/authz"
	"go-orgsuite/internal/chat"
	"go-orgsuite/internal/department"
	"go-orgsuite/internal/employee"
	"go-orgsuite/internal/file"
	"go-orgsuite/internal/messaging/kafka"
	"go-orgsuite/internal/middleware"
	"go-orgsuite/internal/organization"
	"go-orgsuite/internal/position"
	"go-orgsuite/internal/program"
	"go-orgsuite/internal/reminder"
	"go-orgsuite/internal/report"
	"go-orgsuite/internal/shared/blob"
	"go-orgsuite/internal/shared/sequence"
	"go-orgsuite/internal/target"
	"go-orgsuite/internal/task"
	"go-orgsuite/internal/tenant"
	"go-orgsuite/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	blobStore blob.Store,
) error {
	// --- Repositories ---
	orgRepo := organization.NewRepository(gormDB)
	userRepo := user.NewRepository(gormDB)
	departmentRepo := department.NewRepository(gormDB)
	positionRepo := position.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	programRepo := program.NewRepository(gormDB)
	taskRepo := task.NewRepository(gormDB)
	targetRepo := target.NewRepository(gormDB, sequence.NewRepository(gormDB))
	chatRepo := chat.NewRepository(gormDB)
	fileRepo := file.NewRepository(gormDB)
	assessmentRepo := assessment.NewRepository(db)
	reminderRepo := reminder.NewRepository(gormDB)
	reportRepo := report.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Tenancy & Authorization Core ---
	activeOrgStore := organization.NewActiveOrgStore(rdb)
	resolver := tenant.NewResolver(orgRepo, activeOrgStore, tenant.SentinelFromEnv())

	enforcer, err := authz.NewEnforcer()
	if err != nil {
		return err
	}
	authzService := authz.NewService(enforcer, orgRepo)

	// --- Services ---
	orgService := organization.NewService(orgRepo, activeOrgStore)
	userService := user.NewService(userRepo)
	authService := auth.NewService(userRepo, orgService)
	departmentService := department.NewService(departmentRepo)
	positionService := position.NewService(positionRepo)
	employeeService := employee.NewService(employeeRepo, rdb)
	programService := program.NewService(programRepo, rdb)
	taskService := task.NewServiceWithOutbox(taskRepo, outboxRepo)
	targetService := target.NewService(targetRepo)
	chatService := chat.NewService(chatRepo)
	fileService := file.NewService(fileRepo, blobStore)
	assessmentService := assessment.NewService(db, assessmentRepo)
	reminderService := reminder.NewService(reminderRepo, outboxRepo)
	reportService := report.NewService(reportRepo)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	userHandler := user.NewHandler(userService)
	orgHandler := organization.NewHandler(orgService)
	departmentHandler := department.NewHandler(departmentService)
	positionHandler := position.NewHandler(positionService)
	employeeHandler := employee.NewHandler(employeeService)
	programHandler := program.NewHandler(programService)
	taskHandler := task.NewHandler(taskService)
	targetHandler := target.NewHandlerWithRedis(targetService, rdb)
	chatHandler := chat.NewHandler(chatService)
	fileHandler := file.NewHandler(fileService)
	assessmentHandler := assessment.NewHandler(assessmentService)
	reminderHandler := reminder.NewHandler(reminderService)
	reportHandler := report.NewHandler(reportService)

	// --- Routes Registration ---
	router.Use(middleware.RequestID(), middleware.ContextLogger(zap.L()))

	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		user.RegisterRoutes(api, userHandler)
		organization.RegisterRoutes(api, orgHandler)
		department.RegisterRoutes(api, departmentHandler, resolver, authzService)
		position.RegisterRoutes(api, positionHandler, resolver, authzService)
		employee.RegisterRoutes(api, employeeHandler, resolver, authzService)
		program.RegisterRoutes(api, programHandler, resolver, authzService)
		task.RegisterRoutes(api, taskHandler, resolver, authzService)
		target.RegisterRoutes(api, targetHandler, resolver, authzService, rdb)
		chat.RegisterRoutes(api, chatHandler, resolver, authzService)
		file.RegisterRoutes(api, fileHandler, resolver, authzService)
		assessment.RegisterRoutes(api, assessmentHandler, resolver, authzService)
		reminder.RegisterRoutes(api, reminderHandler, resolver, authzService)
		report.RegisterRoutes(api, reportHandler, resolver, authzService)
	}

	return nil
}
