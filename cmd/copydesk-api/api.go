// Package main provides the Copydesk API server implementation.
package main

import (
	"log/slog"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"go.opentelemetry.io/otel/trace"

	"github.com/copydesk/copydesk/pkg/eventbus"
	"github.com/copydesk/copydesk/pkg/identity"
	"github.com/copydesk/copydesk/pkg/persistence"
	"github.com/copydesk/copydesk/pkg/registry"
	"github.com/copydesk/copydesk/pkg/services"
	"github.com/copydesk/copydesk/pkg/web"
	"github.com/copydesk/copydesk/pkg/workflow"
)

type API struct {
	logger      *slog.Logger
	persistence persistence.Persistence
	registry    *registry.Registry
	identity    identity.Resolver
	eventBus    eventbus.EventBus
	validate    *validator.Validate
	tracer      trace.Tracer
}

func NewAPI(
	logger *slog.Logger,
	persistence persistence.Persistence,
	registry *registry.Registry,
	identity identity.Resolver,
	eventBus eventbus.EventBus,
) *API {
	return &API{
		logger:      logger,
		persistence: persistence,
		registry:    registry,
		identity:    identity,
		eventBus:    eventBus,
		validate:    validator.New(validator.WithRequiredStructEnabled()),
	}
}

// WithTracer exports transition spans through the given tracer instead of
// the noop default.
func (a *API) WithTracer(tracer trace.Tracer) *API {
	a.tracer = tracer

	return a
}

func (a *API) App() *fiber.App {
	evaluator := workflow.NewEvaluator(a.persistence, a.logger)
	executor := workflow.NewExecutor(
		a.persistence,
		a.registry,
		a.identity,
		evaluator,
		eventbus.NewNotificationPublisher(a.eventBus),
		a.logger,
	)
	if a.tracer != nil {
		executor = executor.WithTracer(a.tracer)
	}

	definitionService := services.NewDefinition(a.persistence, a.eventBus, a.logger)
	transitionService := services.NewTransition(
		a.persistence, a.registry, a.identity, evaluator, executor, a.logger)

	handlers := web.NewAPIHandlers(definitionService, transitionService, a.validate, a.registry)

	app := fiber.New()
	app.Use(cors.New())
	app.Use(logger.New(logger.Config{
		DisableColors: true,
	}))

	app.Get(healthcheck.DefaultLivenessEndpoint, healthcheck.NewHealthChecker())
	app.Get(healthcheck.DefaultReadinessEndpoint, healthcheck.NewHealthChecker())

	app.Get("/", func(c fiber.Ctx) error {
		return c.SendString("Copydesk API")
	})

	d := app.Group("/definitions")
	d.Get("/", handlers.GetDefinitions)
	d.Post("/", handlers.SaveDefinition)
	d.Post("/import", handlers.ImportDefinition)
	d.Post("/validate", handlers.ValidateDefinition)
	d.Post("/default", handlers.CreateDefaultDefinition)
	d.Get("/:id", handlers.GetDefinition)
	d.Delete("/:id", handlers.DeleteDefinition)

	content := app.Group("/content/:type/:id")
	content.Get("/transitions", handlers.GetTransitions)
	content.Post("/transitions", handlers.PerformTransition)
	content.Get("/history", handlers.GetHistory)
	content.Get("/visibility", handlers.GetVisibility)

	app.Get("/health", handlers.HealthCheck)

	return app
}

func (a *API) Start(port int) error {
	app := a.App()

	return app.Listen(":" + strconv.Itoa(port))
}
