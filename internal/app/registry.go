package app

import (
	"os"
	"strings"

	"go-dispatch/internal/audit"
	"go-dispatch/internal/auth"
	"go-dispatch/internal/authz"
	"go-dispatch/internal/employee"
	"go-dispatch/internal/events"
	"go-dispatch/internal/job"
	"go-dispatch/internal/messaging/kafka/producer"
	"go-dispatch/internal/middleware"
	"go-dispatch/internal/seed"
	"go-dispatch/internal/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func registerModules(
	router *gin.Engine,
	store storage.Store,
	logger *zap.Logger,
) error {
	// --- Repositories ---
	auditRepo := audit.NewRepository(store)
	employeeRepo := employee.NewRepository(store)
	jobRepo := job.NewRepository(store)

	// --- Authorization Core ---
	gate, err := authz.NewService()
	if err != nil {
		return err
	}

	// --- Event Publisher (optional) ---
	var publisher events.Publisher
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		publisher = producer.NewJobEventPublisher(strings.Split(brokers, ","), logger)
		logger.Info("Kafka publisher enabled", zap.String("brokers", brokers))
	}

	// --- Services ---
	auditRecorder := audit.NewRecorder(auditRepo)
	employeeService := employee.NewService(employeeRepo, gate, auditRecorder)
	authService := auth.NewService(employeeRepo, auditRecorder)
	var jobService job.Service
	if publisher != nil {
		jobService = job.NewService(jobRepo, publisher)
	} else {
		jobService = job.NewService(jobRepo)
	}
	seeder := seed.NewSeeder(employeeRepo, logger)

	// --- Handlers ---
	auditHandler := audit.NewHandler(auditRecorder, logger)
	authHandler := auth.NewHandler(authService, logger)
	employeeHandler := employee.NewHandler(employeeService, logger)
	jobHandler := job.NewHandler(jobService, logger)

	// Every request passes the seed gate so baseline accounts exist before
	// any handler touches the store.
	router.Use(middleware.RequestID())
	router.Use(middleware.SeedGate(seeder))

	// --- Routes Registration ---
	api := router.Group("/api")
	{
		auth.RegisterRoutes(api, authHandler, logger)
		audit.RegisterRoutes(api, auditHandler, logger)
		employee.RegisterRoutes(api, employeeHandler, logger)
		job.RegisterRoutes(api, jobHandler, logger)
	}

	return nil
}
