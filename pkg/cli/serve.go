/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"log/slog"
	"time"

	"github.com/urfave/cli/v3"
	"golang.org/x/time/rate"

	"github.com/vendingworks/coffeemaker/pkg/api"
	"github.com/vendingworks/coffeemaker/pkg/defaults"
	"github.com/vendingworks/coffeemaker/pkg/server"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the machine's HTTP API",
		Description: `Starts the HTTP API for an in-memory machine. The machine starts with
the default ingredient stock; --file preloads recipes and a restock from a
menu file. State is lost when the process exits.

# Examples

Serve an empty machine on the default port:
  coffeemaker serve

Serve a preloaded machine on port 9090:
  coffeemaker serve --file menu.yaml --port 9090`,
		Flags: []cli.Flag{
			menuFlag(false),
			capacityFlag(),
			&cli.StringFlag{
				Name:  "address",
				Usage: "Address to listen on (default: all interfaces)",
			},
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Value:   8080,
				Usage:   "Port to listen on",
				Sources: cli.EnvVars("PORT"),
			},
			&cli.FloatFlag{
				Name:    "rate-limit",
				Value:   defaults.ServerRateLimit,
				Usage:   "Sustained API requests per second before requests are rejected with 429",
				Sources: cli.EnvVars("COFFEEMAKER_RATE_LIMIT"),
			},
			&cli.IntFlag{
				Name:    "rate-limit-burst",
				Value:   defaults.ServerRateLimitBurst,
				Usage:   "API requests allowed in a burst above the sustained rate",
				Sources: cli.EnvVars("COFFEEMAKER_RATE_LIMIT_BURST"),
			},
			&cli.DurationFlag{
				Name:    "shutdown-timeout",
				Value:   0,
				Usage:   "Graceful shutdown timeout (default: server default)",
				Sources: cli.EnvVars("COFFEEMAKER_SHUTDOWN_TIMEOUT"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			m, res, err := loadMachine(ctx, cmd.String("file"), cmd.Int("capacity"))
			if err != nil {
				return err
			}
			if len(res.Added) > 0 {
				slog.Info("menu loaded", "recipes", res.Added)
			}

			return api.Run(ctx, m, server.WithConfig(serverConfig(cmd)))
		},
	}
}

// serverConfig layers the serve flags over the environment-derived defaults.
func serverConfig(cmd *cli.Command) *server.Config {
	cfg := server.NewConfig()
	cfg.Address = cmd.String("address")
	if cmd.IsSet("port") {
		cfg.Port = cmd.Int("port")
	}
	if limit := cmd.Float("rate-limit"); limit > 0 {
		cfg.RateLimit = rate.Limit(limit)
	}
	if burst := cmd.Int("rate-limit-burst"); burst > 0 {
		cfg.RateLimitBurst = burst
	}
	if d := cmd.Duration("shutdown-timeout"); d > time.Duration(0) {
		cfg.ShutdownTimeout = d
	}
	return cfg
}
