/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/vendingworks/coffeemaker/pkg/serializer"
)

func brewCmd() *cli.Command {
	return &cli.Command{
		Name:  "brew",
		Usage: "Buy one drink from a machine loaded with a menu file",
		Description: `Loads the menu into a fresh machine and purchases the recipe in the given
slot. The receipt reports the outcome and the change returned. A refund
(invalid selection, insufficient funds or stock) is not an error.

# Examples

  coffeemaker brew --file menu.yaml --selection 1 --payment 100
  coffeemaker brew -f menu.yaml -s 0 -m 50 --format json`,
		Flags: []cli.Flag{
			menuFlag(true),
			capacityFlag(),
			&cli.IntFlag{
				Name:     "selection",
				Aliases:  []string{"s"},
				Required: true,
				Usage:    "Recipe slot to purchase (0-based)",
			},
			&cli.IntFlag{
				Name:     "payment",
				Aliases:  []string{"m"},
				Required: true,
				Usage:    "Amount paid",
			},
			outputFlag(),
			formatFlag(serializer.FormatYAML),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if _, err := parseOutputFormat(cmd); err != nil {
				return err
			}

			m, _, err := loadMachine(ctx, cmd.String("file"), cmd.Int("capacity"))
			if err != nil {
				return err
			}

			receipt := m.Purchase(cmd.Int("selection"), cmd.Int("payment"))
			slog.Info("purchase completed",
				"outcome", receipt.Outcome,
				"recipe", receipt.Recipe,
				"change", receipt.Change)

			if err := writeOutput(ctx, cmd, receipt); err != nil {
				return fmt.Errorf("failed to serialize receipt: %w", err)
			}
			return nil
		},
	}
}
