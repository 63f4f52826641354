package main

import (
	"context"
	"crmserver/internal/domain/policy"
	"crmserver/internal/domain/sqlite"
	"crmserver/internal/domain/sqlite/repository"
	handler2 "crmserver/internal/http/handler"
	middleware2 "crmserver/internal/http/middleware"
	cognitoclient "crmserver/internal/infrastructure/aws/cognito"
	"crmserver/internal/infrastructure/aws/storage"
	"crmserver/internal/infrastructure/aws/websocket"
	"crmserver/internal/service"
	"crmserver/internal/service/jobs"
	"crmserver/internal/utils"
	"crmserver/internal/utils/uid"
	"crmserver/internal/utils/validators"
	"os"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

const (
	envVarsPrefix   = "/crmserver/prod/"
	defaultPageSize = 5
)

func main() {
	validate := validator.New()
	registerValidators(validate)

	// Loads env vars depending on environment
	if os.Getenv("GO_ENV") == "production" {
		loadProdEnv() // AWS SSM Parameter Store
	} else {
		// Loads from .env
		err := godotenv.Load()
		if err != nil {
			panic(err)
		}
	}

	uid.Init(1)

	if err := utils.InitJWKS(os.Getenv("AWS_COGNITO_REGION"), os.Getenv("AWS_COGNITO_POOL_ID")); err != nil {
		panic(err)
	}

	// Init SQLite
	db, err := sqlite.Init()
	if err != nil {
		panic(err)
	}

	// Init cognito client
	cogClient, err := cognitoclient.InitCognitoClient()
	if err != nil {
		panic(err)
	}

	// Init S3 client
	s3Client, err := storage.NewStorageClient()
	if err != nil {
		panic(err)
	}

	// Init API Gateway websocket client
	gateway, err := websocket.NewAWSGatewayClient(
		context.Background(),
		os.Getenv("AWS_WS_ENDPOINT"),
		os.Getenv("AWS_WS_REGION"),
	)
	if err != nil {
		panic(err)
	}

	// Getting repos
	userRepo := repository.NewUserRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	interactionRepo := repository.NewInteractionRepository(db)
	connRepo := repository.NewConnectionRepository(db)

	// Getting services
	feedService := service.NewFeedService(connRepo, gateway)
	editor := service.NewCompanyEditor(validate)
	companyPolicy := policy.NewCompanyPolicy()
	companyService := service.NewCompanyService(companyRepo, companyPolicy, editor, feedService, s3Client, pageSize())
	projectService := service.NewProjectService(projectRepo, companyRepo, feedService, validate)
	interactionService := service.NewInteractionService(interactionRepo, projectRepo, feedService, validate)
	userService := service.NewUserService(userRepo, validate, cogClient, s3Client)

	// Getting handlers
	companyRoutes := handler2.NewCompanyDefault(companyService)
	projectRoutes := handler2.NewProjectDefault(projectService)
	interactionRoutes := handler2.NewInteractionDefault(interactionService)
	userRoutes := handler2.NewUserDefault(userService)
	wsRoutes := handler2.NewWSDefault(feedService)

	// Background sweeps
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go jobs.NewConnectionCleaner(feedService).Start(ctx)

	e := echo.New()
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit("10M"))

	authed := e.Group("/api", middleware2.NewAuthMiddleware(&middleware2.AuthMiddlewareConfig{
		UserRepo: userRepo,
	}))

	// Registration and login stay outside the auth group
	e.POST("/api/users", userRoutes.CreateUser)
	e.POST("/api/users/confirms", userRoutes.ConfirmSignup)
	e.POST("/api/users/confirms/resend", userRoutes.ResendConfirmation)
	e.POST("/api/users/login", userRoutes.CreateLogin)

	// Profile
	authed.GET("/profile", userRoutes.GetProfile)
	authed.PATCH("/profile", userRoutes.UpdateProfile)
	authed.DELETE("/profile", userRoutes.DeleteProfile)
	authed.PUT("/profile/avatar", userRoutes.UploadAvatar)
	authed.GET("/profile/interactions", interactionRoutes.GetMyInteractions)

	// Companies
	authed.GET("/companies", companyRoutes.GetCompanies)
	authed.POST("/companies", companyRoutes.CreateCompany)
	authed.GET("/companies/:id", companyRoutes.GetCompany)
	authed.PUT("/companies/:id", companyRoutes.UpdateCompany)
	authed.DELETE("/companies/:id", companyRoutes.DeleteCompany)
	authed.PUT("/companies/:id/avatar", companyRoutes.UploadAvatar)
	authed.POST("/companies/:id/projects", projectRoutes.CreateProject)

	// Projects
	authed.GET("/projects/:id", projectRoutes.GetProject)
	authed.PUT("/projects/:id", projectRoutes.UpdateProject)
	authed.DELETE("/projects/:id", projectRoutes.DeleteProject)
	authed.POST("/projects/:id/interactions", interactionRoutes.CreateInteraction)
	authed.GET("/projects/:id/interactions", interactionRoutes.GetProjectInteractions)

	// Interactions
	authed.GET("/interactions/:id", interactionRoutes.GetInteraction)
	authed.PUT("/interactions/:id", interactionRoutes.UpdateInteraction)
	authed.DELETE("/interactions/:id", interactionRoutes.DeleteInteraction)

	// Activity feed connections
	authed.POST("/ws/connections", wsRoutes.HandleConnect)
	authed.DELETE("/ws/connections/:id", wsRoutes.HandleDisconnect)
	authed.POST("/ws/messages", wsRoutes.HandleMessage)

	// Docker Compose healthcheck
	e.GET("/health", healthCheckRoute)

	if err := e.Start(":7070"); err != nil {
		panic(err)
	}
}

func registerValidators(validate *validator.Validate) {
	validate.RegisterTagNameFunc(validators.TagName)
	_ = validate.RegisterValidation("capitalized", validators.Capitalized)
}

func pageSize() int {
	raw := os.Getenv("PAGE_SIZE")
	if raw == "" {
		return defaultPageSize
	}

	size, err := strconv.Atoi(raw)
	if err != nil || size < 1 {
		log.Warnf("invalid PAGE_SIZE %q, using default %d", raw, defaultPageSize)
		return defaultPageSize
	}
	return size
}

func loadProdEnv() {
	ctx := context.Background()
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion("us-east-2"))
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	client := ssm.NewFromConfig(cfg)
	out, err := client.GetParametersByPath(ctx, &ssm.GetParametersByPathInput{
		Path:           aws.String(envVarsPrefix),
		WithDecryption: aws.Bool(true),
		Recursive:      aws.Bool(true),
	})
	if err != nil {
		log.Fatalf("unable to load prod environment, %v", err)
	}

	prefixLength := len(envVarsPrefix)
	// Export vars
	for _, param := range out.Parameters {
		key := (*param.Name)[prefixLength:]
		value := *param.Value
		enverr := os.Setenv(key, value)
		if enverr != nil {
			log.Fatalf("unable to set environment variable, %v", enverr)
		}
	}
	log.Debugf("loaded %d prod environment variables", len(out.Parameters))
}

func healthCheckRoute(c echo.Context) error {
	return c.String(200, "OK")
}
