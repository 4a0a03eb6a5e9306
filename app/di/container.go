package di

import (
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"

	"backoffice-api/app/config"
	"backoffice-api/app/driver/kratos"
	"backoffice-api/app/driver/postgres"
	"backoffice-api/app/gateway"
	"backoffice-api/app/port"
	"backoffice-api/app/rest"
	"backoffice-api/app/rest/handlers"
	"backoffice-api/app/usecase"
)

// Container holds all dependencies for the application
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Drivers
	DB           *postgres.DB
	KratosClient *kratos.Client

	// Gateways
	IdentityGateway port.IdentityGateway

	// Usecases
	AuthUsecase    port.AuthUsecase
	ProfileUsecase port.ProfileUsecase
	ClientUsecase  port.ClientUsecase
	GrantUsecase   port.GrantUsecase
	BlogUsecase    port.BlogUsecase
	InquiryUsecase port.InquiryUsecase
	TaskUsecase    port.TaskUsecase
}

// NewContainer creates and initializes a new dependency injection container
func NewContainer(cfg *config.Config, logger *slog.Logger) (*Container, error) {
	container := &Container{
		Config: cfg,
		Logger: logger,
	}

	var err error

	container.DB, err = postgres.NewConnection(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	container.KratosClient, err = kratos.NewClient(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Kratos client: %w", err)
	}

	// Repositories
	pool := container.DB.Pool()
	profileRepo := postgres.NewProfileRepository(pool, logger)
	grantRepo := postgres.NewGrantRepository(pool, logger)
	clientRepo := postgres.NewClientRepository(pool, logger)
	blogRepo := postgres.NewBlogRepository(pool, logger)
	inquiryRepo := postgres.NewInquiryRepository(pool, logger)
	taskRepo := postgres.NewTaskRepository(pool, logger)
	switchLedger := postgres.NewSwitchLedger(pool, logger)
	tenantSetter := postgres.NewTenantSetter(pool, logger)

	// Gateways
	identityAdapter := kratos.NewIdentityAdapter(container.KratosClient, logger)
	container.IdentityGateway = gateway.NewIdentityGateway(identityAdapter, logger)

	// Usecases
	container.AuthUsecase = usecase.NewAuthUseCase(
		container.IdentityGateway,
		profileRepo,
		grantRepo,
		switchLedger,
		tenantSetter,
		cfg.EnableSwitchAudit,
		logger,
	)
	container.ProfileUsecase = usecase.NewProfileUseCase(profileRepo, clientRepo, logger)
	container.ClientUsecase = usecase.NewClientUseCase(clientRepo, logger)
	container.GrantUsecase = usecase.NewGrantUseCase(grantRepo, profileRepo, clientRepo, logger)
	container.BlogUsecase = usecase.NewBlogUseCase(blogRepo, logger)
	container.InquiryUsecase = usecase.NewInquiryUseCase(inquiryRepo, clientRepo, logger)
	container.TaskUsecase = usecase.NewTaskUseCase(taskRepo, logger)

	logger.Info("container initialized with full dependency stack")

	return container, nil
}

// CreateRouter creates and returns a fully configured Echo router
func (c *Container) CreateRouter() *echo.Echo {
	router := rest.NewRouter(rest.RouterConfig{
		Logger:          c.Logger,
		AuthUsecase:     c.AuthUsecase,
		ProfileUsecase:  c.ProfileUsecase,
		ClientUsecase:   c.ClientUsecase,
		GrantUsecase:    c.GrantUsecase,
		BlogUsecase:     c.BlogUsecase,
		InquiryUsecase:  c.InquiryUsecase,
		TaskUsecase:     c.TaskUsecase,
		EnableDebug:     c.Config.LogLevel == "debug",
		EnableRateLimit: c.Config.EnableRateLimit,
		CORSOrigins:     c.Config.CORSAllowedOrigins,
	})

	healthHandler := handlers.NewHealthHandler(c.DB.Pool(), c.KratosClient, c.Logger)
	rest.RegisterHealthRoutes(router, healthHandler)

	return router
}

// Close closes all resources
func (c *Container) Close() error {
	if c.DB != nil {
		c.DB.Close()
	}

	c.Logger.Info("container closed")
	return nil
}
