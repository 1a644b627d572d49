package main

import (
	"casecare-service/internal/handler"
	mid "casecare-service/internal/middleware"
	"casecare-service/internal/model"
	"casecare-service/internal/seed"
	"casecare-service/pkg/config"
	"casecare-service/pkg/database"
	"casecare-service/pkg/encryption"
	"casecare-service/pkg/jwtutil"
	"casecare-service/pkg/logger"
	"casecare-service/prometheus"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	// Load .env file if present; deployed environments set variables directly
	_ = godotenv.Load()

	appConfig, err := config.Load()
	if err != nil {
		// Can't use structured logger yet since it's not initialized
		panic("Failed to load configuration: " + err.Error())
	}

	if err := logger.InitLogger(appConfig); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting casecare-service",
		zap.String("environment", appConfig.Server.Env),
		zap.String("port", appConfig.Server.Port))

	jwtutil.Initialize(&appConfig.JWT)
	log.Info("JWT utility initialized")

	encryption.Initialize(&appConfig.Encryption)
	log.Info("Field encryption initialized")

	prometheus.InitMetrics(appConfig)
	log.Info("Prometheus metrics initialized",
		zap.String("metrics_prefix", appConfig.Metrics.Prefix))

	// A database outage must not take the whole service down. The API
	// group answers 503 until the connection is back.
	if _, err := database.InitDB(&appConfig.DB); err != nil {
		log.Error("Failed to initialize database, continuing in degraded mode", zap.Error(err))
	} else {
		log.Info("Database connection established")

		if err := database.MigrateModels(
			&model.User{},
			&model.Client{},
			&model.Provider{},
			&model.FormSection{},
			&model.FormField{},
			&model.ClientCustomField{},
			&model.ProviderCustomField{},
			&model.Relationship{},
			&model.HouseholdMember{},
			&model.PhoneNumber{},
			&model.Tag{},
			&model.TaskItem{},
			&model.TaskTag{},
		); err != nil {
			log.Error("Failed to migrate database schema", zap.Error(err))
		} else if err := seed.Run(database.GetDB()); err != nil {
			log.Error("Failed to seed database", zap.Error(err))
		}
	}

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Recover())
	e.Use(mid.RequestIDMiddleware)
	e.Use(mid.UserContextMiddleware)
	e.Use(mid.MetricsMiddleware)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/health", handler.Health)

	api := e.Group("/api", mid.DatabaseReadyMiddleware)

	api.POST("/auth/token", handler.IssueToken)

	api.GET("/users", handler.ListUsers)
	api.GET("/users/:id", handler.GetUser)
	api.POST("/users", handler.CreateUser)
	api.PUT("/users/:id", handler.UpdateUser)
	api.DELETE("/users/:id", handler.DeleteUser)
	api.GET("/users/:id/dashboard-preferences", handler.GetUserDashboardPreferences)
	api.PUT("/users/:id/dashboard-preferences", handler.SaveUserDashboardPreferences)

	api.GET("/clients", handler.ListClients)
	api.GET("/clients/:id", handler.GetClient)
	api.POST("/clients", handler.CreateClient)
	api.PUT("/clients/:id", handler.UpdateClient)
	api.DELETE("/clients/:id", handler.DeleteClient)
	api.GET("/clients/:id/custom-fields", handler.GetClientCustomFields)
	api.PUT("/clients/:id/custom-fields", handler.SaveClientCustomFields)
	api.GET("/clients/:id/household-members", handler.ListHouseholdMembers)
	api.POST("/clients/:id/household-members", handler.CreateHouseholdMember)
	api.PUT("/clients/:id/household-members", handler.ReplaceHouseholdMembers)
	api.PUT("/clients/:id/household-members/:memberId", handler.UpdateHouseholdMember)
	api.DELETE("/clients/:id/household-members/:memberId", handler.DeleteHouseholdMember)
	api.GET("/clients/:id/phone-numbers", handler.ListPhoneNumbers)
	api.POST("/clients/:id/phone-numbers", handler.CreatePhoneNumber)
	api.DELETE("/clients/:id/phone-numbers/:phoneId", handler.DeletePhoneNumber)

	api.GET("/providers", handler.ListProviders)
	api.GET("/providers/:id", handler.GetProvider)
	api.POST("/providers", handler.CreateProvider)
	api.PUT("/providers/:id", handler.UpdateProvider)
	api.DELETE("/providers/:id", handler.DeleteProvider)
	api.GET("/providers/:id/custom-fields", handler.GetProviderCustomFields)
	api.PUT("/providers/:id/custom-fields", handler.SaveProviderCustomFields)

	api.GET("/form-fields", handler.ListFormFields)
	api.GET("/form-fields/:id", handler.GetFormField)
	api.POST("/form-fields", handler.CreateFormField)
	api.PUT("/form-fields/:id", handler.UpdateFormField)
	api.DELETE("/form-fields/:id", handler.DeleteFormField)
	api.PUT("/form-fields/reorder", handler.ReorderFormFields)
	api.PUT("/form-fields/:id/section", handler.MoveFormFieldToSection)

	api.GET("/form-sections", handler.ListFormSections)
	api.GET("/form-sections/:id", handler.GetFormSection)
	api.POST("/form-sections", handler.CreateFormSection)
	api.PUT("/form-sections/:id", handler.UpdateFormSection)
	api.DELETE("/form-sections/:id", handler.DeleteFormSection)
	api.PUT("/form-sections/reorder", handler.ReorderFormSections)

	api.GET("/tasks", handler.ListTasks)
	api.GET("/tasks/:id", handler.GetTask)
	api.POST("/tasks", handler.CreateTask)
	api.PUT("/tasks/:id", handler.UpdateTask)
	api.PATCH("/tasks/:id/status", handler.UpdateTaskStatus)
	api.DELETE("/tasks/:id", handler.DeleteTask)

	api.GET("/tags", handler.ListTags)
	api.GET("/tags/:id", handler.GetTag)
	api.POST("/tags", handler.CreateTag)
	api.PUT("/tags/:id", handler.UpdateTag)
	api.DELETE("/tags/:id", handler.DeleteTag)
	api.GET("/tags/:id/usage", handler.GetTagUsage)

	api.GET("/relationships", handler.ListRelationships)
	api.POST("/relationships", handler.CreateRelationship)
	api.PUT("/relationships/:id", handler.UpdateRelationship)
	api.DELETE("/relationships/:id", handler.DeleteRelationship)

	api.GET("/dashboard/stats", handler.GetDashboardStats)
	api.GET("/dashboard/pending-tasks", handler.GetPendingTaskCount)

	port := appConfig.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
}
