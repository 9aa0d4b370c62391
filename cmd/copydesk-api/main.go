package main

import (
	"context"
	"os"

	cli "github.com/urfave/cli/v3"

	"github.com/copydesk/copydesk/pkg/cmd"
	"github.com/copydesk/copydesk/pkg/config"
	"github.com/copydesk/copydesk/pkg/identity"
	"github.com/copydesk/copydesk/pkg/log"
	"github.com/copydesk/copydesk/pkg/otelhelper"
	"github.com/copydesk/copydesk/pkg/registry"
)

const defaultPort = 9092

func main() {
	command := &cli.Command{
		Name:                  "copydesk-api",
		Usage:                 "Manage editorial workflows and content transitions",
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Port to run the API server on",
				Value:   defaultPort,
				Sources: cli.EnvVars("PORT"),
			},
			&cli.StringFlag{
				Name:     "database-url",
				Usage:    "Storage URL for workflow definitions (file://<dir>)",
				Required: true,
				Sources:  cli.EnvVars("DATABASE_URL"),
			},
			&cli.StringFlag{
				Name:    "content-store",
				Usage:   "Storage URL for content workflow state (file://<dir> or redis://<addr>)",
				Sources: cli.EnvVars("CONTENT_STORE"),
			},
			&cli.StringSliceFlag{
				Name:    "content-types",
				Usage:   "Content-type tags to register content stores for",
				Value:   []string{"post", "page"},
				Sources: cli.EnvVars("CONTENT_TYPES"),
			},
			&cli.StringFlag{
				Name:    "roles-file",
				Usage:   "Path to a JSON file mapping actor IDs to role names",
				Sources: cli.EnvVars("ROLES_FILE"),
			},
			&cli.StringFlag{
				Name:    "event-bus",
				Usage:   "Event bus provider (gochannel, kafka)",
				Value:   "gochannel",
				Sources: cli.EnvVars("EVENT_BUS_TYPE"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				Value:   "info",
				Sources: cli.EnvVars("LOG_LEVEL"),
			},
			&cli.BoolFlag{
				Name:    "tracing",
				Usage:   "Export transition spans over OTLP/HTTP (endpoint from OTEL_EXPORTER_OTLP_ENDPOINT)",
				Sources: cli.EnvVars("TRACING_ENABLED"),
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a copydesk.yaml with per-content-type store configuration",
				Sources: cli.EnvVars("CONFIG_FILE"),
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			log.Setup(command.String("log-level"))

			logger := log.WithModule("api")
			logger.InfoContext(ctx, "Initializing Copydesk API")

			persistence := cmd.NewPersistence(command.String("database-url"))
			defer func() {
				if err := persistence.Close(ctx); err != nil {
					logger.ErrorContext(ctx, "Failed to close persistence", "error", err)
				}
			}()

			eventBus := cmd.NewEventBus(command.String("event-bus"), logger)
			defer func() {
				if err := eventBus.Close(); err != nil {
					logger.ErrorContext(ctx, "Failed to close event bus", "error", err)
				}
			}()

			reg := registry.NewRegistry(logger)

			contentStore := command.String("content-store")
			if contentStore == "" {
				contentStore = command.String("database-url")
			}

			rolesFile := command.String("roles-file")

			if configPath := command.String("config"); configPath != "" {
				cfg, err := config.Load(configPath)
				if err != nil {
					return err
				}

				if rolesFile == "" {
					rolesFile = cfg.RolesFile
				}

				for _, ct := range cfg.ContentTypes {
					storeURL := ct.StoreURL
					if storeURL == "" {
						storeURL = contentStore
					}

					if err := cmd.RegisterContentStores(reg, storeURL, []string{ct.Name}); err != nil {
						return err
					}
				}
			} else if err := cmd.RegisterContentStores(reg, contentStore, command.StringSlice("content-types")); err != nil {
				return err
			}

			resolver, err := newIdentityResolver(rolesFile)
			if err != nil {
				return err
			}

			api := NewAPI(logger, persistence, reg, resolver, eventBus)

			if command.Bool("tracing") {
				tracer, err := otelhelper.NewTracer(ctx, "copydesk-api")
				if err != nil {
					return err
				}

				api = api.WithTracer(tracer)
			}

			if err := api.Start(command.Int("port")); err != nil {
				logger.ErrorContext(ctx, "Failed to start API server", "error", err)
			}

			return nil
		},
	}

	if err := command.Run(context.Background(), os.Args); err != nil {
		panic(err)
	}
}

func newIdentityResolver(rolesFile string) (identity.Resolver, error) {
	if rolesFile == "" {
		return identity.NewStaticResolver(nil), nil
	}

	return identity.NewFileResolver(rolesFile)
}
