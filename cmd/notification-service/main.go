// Package main runs the CRM notification service: it consumes domain
// events from the event fabric, derives notifications and sends welcome
// emails to newly registered users.
//
// The APP_ENV environment variable selects the composition. In the
// standalone environment the service runs without external
// infrastructure: an in-process bus, an in-memory notification store
// and a log-only email gateway. Every other environment uses RabbitMQ,
// MongoDB and SMTP.
package main

import (
	"fmt"
	"os"

	"github.com/Sokol111/crm-commons/pkg/core"
	"github.com/Sokol111/crm-commons/pkg/core/config"
	"github.com/Sokol111/crm-commons/pkg/core/worker"
	"github.com/Sokol111/crm-commons/pkg/email"
	"github.com/Sokol111/crm-commons/pkg/messaging/membus"
	"github.com/Sokol111/crm-commons/pkg/messaging/rabbit"
	"github.com/Sokol111/crm-commons/pkg/mongo"
	"github.com/Sokol111/crm-commons/pkg/notification"
	"github.com/Sokol111/crm-commons/pkg/observability"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "notification-service",
		Short:   "CRM notification service",
		Long:    `notification-service consumes CRM domain events and derives user-facing notifications and welcome emails.`,
		Version: version,
	}

	rootCmd.AddCommand(newServeCmd())

	return rootCmd
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the notification service",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := config.LoadAppConfig()
			if err != nil {
				return fmt.Errorf("failed to load app config: %w", err)
			}

			fx.New(buildOptions(conf)...).Run()
			return nil
		},
	}
}

func buildOptions(conf config.AppConfig) []fx.Option {
	shared := []fx.Option{
		observability.NewObservabilityModule(),
		notification.NewNotificationModule(),
		worker.NewWorkersModule(),
	}

	// Standalone runs without a config file: every module in its
	// composition works from defaults, so a missing configs/ directory
	// must not prevent startup.
	if conf.Environment == config.EnvStandalone {
		return append([]fx.Option{
			core.NewCoreModule(core.WithAppConfig(conf), core.WithoutConfigFile()),
			membus.NewMemBusModule(),
			email.NewEmailModule(email.WithLogOnly()),
			fx.Provide(
				fx.Annotate(notification.NewMemoryStore, fx.As(new(notification.Store))),
			),
		}, shared...)
	}

	return append([]fx.Option{
		core.NewCoreModule(core.WithAppConfig(conf)),
		rabbit.NewRabbitModule(),
		mongo.NewMongoModule(),
		email.NewEmailModule(),
		fx.Provide(
			fx.Annotate(notification.NewMongoStore, fx.As(new(notification.Store))),
		),
	}, shared...)
}
