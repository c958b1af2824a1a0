package main

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	fiberlogger "github.com/gofiber/fiber/v3/middleware/logger"
	cli "github.com/urfave/cli/v3"

	"github.com/razorpay/razorpay-workflow-node/pkg/log"
	"github.com/razorpay/razorpay-workflow-node/pkg/registry"
	"github.com/razorpay/razorpay-workflow-node/pkg/web"
)

const defaultPort = 9092

type API struct {
	logger   *slog.Logger
	registry *registry.Registry
	validate *validator.Validate
}

func NewAPI(logger *slog.Logger, registry *registry.Registry) *API {
	return &API{
		logger:   logger,
		registry: registry,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (a *API) App() *fiber.App {
	handlers := web.NewAPIHandlers(a.registry, a.validate, a.logger)

	app := fiber.New()
	app.Use(cors.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		DisableColors: true,
	}))

	app.Get(healthcheck.DefaultLivenessEndpoint, healthcheck.NewHealthChecker())
	app.Get(healthcheck.DefaultReadinessEndpoint, healthcheck.NewHealthChecker())

	app.Get("/", func(c fiber.Ctx) error {
		return c.SendString("Razorpay Node API")
	})

	o := app.Group("/operations")
	o.Get("/", handlers.GetOperations)
	o.Get("/:id", handlers.GetOperation)

	app.Post("/executions", handlers.ExecuteNode)
	app.Post("/credentials/test", handlers.TestCredentials)

	app.Get("/health", handlers.HealthCheck)

	return app
}

func (a *API) Start(port int) error {
	return a.App().Listen(":" + strconv.Itoa(port))
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the development API server",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Port to run the API server on",
				Value:   defaultPort,
				Sources: cli.EnvVars("PORT"),
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			log.Setup(command.String("log-level"))

			logger := log.WithModule("api")
			logger.InfoContext(ctx, "Initializing Razorpay node API")

			api := NewAPI(logger, newRegistry(logger))

			return api.Start(command.Int("port"))
		},
	}
}

func newRegistry(logger *slog.Logger) *registry.Registry {
	reg := registry.NewRegistry(logger)
	reg.RegisterDefaultOperations()

	return reg
}
