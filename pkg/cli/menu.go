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

	"github.com/vendingworks/coffeemaker/pkg/menu"
	"github.com/vendingworks/coffeemaker/pkg/serializer"
)

func menuCmd() *cli.Command {
	return &cli.Command{
		Name:  "menu",
		Usage: "Validate and render menu files",
		Description: `A menu file lists recipes and an optional restock:

  recipes:
    - name: Coffee
      coffee: 3
      milk: 1
      sugar: 1
      price: 50
  restock:
    coffee: 4
    chocolate: 9

Amounts may be numbers or strings; they must be non-negative integers.`,
		Commands: []*cli.Command{
			menuValidateCmd(),
			menuShowCmd(),
		},
	}
}

func menuValidateCmd() *cli.Command {
	return &cli.Command{
		Name:  "validate",
		Usage: "Check that a menu file loads into a machine",
		Flags: []cli.Flag{
			menuFlag(true),
			capacityFlag(),
			&cli.BoolFlag{
				Name:  "strict",
				Usage: "Fail if any recipe would be rejected by the machine (book full or duplicate name)",
			},
			outputFlag(),
			formatFlag(serializer.FormatYAML),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if _, err := parseOutputFormat(cmd); err != nil {
				return err
			}

			path := cmd.String("file")
			_, res, err := loadMachine(ctx, path, cmd.Int("capacity"))
			if err != nil {
				return err
			}

			slog.Info("menu validated", "uri", path, "added", len(res.Added), "rejected", len(res.Rejected))

			if err := writeOutput(ctx, cmd, res); err != nil {
				return fmt.Errorf("failed to serialize validation result: %w", err)
			}
			if cmd.Bool("strict") && len(res.Rejected) > 0 {
				return fmt.Errorf("menu %q: %d recipe(s) would be rejected: %v", path, len(res.Rejected), res.Rejected)
			}
			return nil
		},
	}
}

func menuShowCmd() *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: "Render the recipe slots a menu file produces",
		Flags: []cli.Flag{
			menuFlag(true),
			capacityFlag(),
			outputFlag(),
			formatFlag(serializer.FormatTable),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			m, _, err := loadMachine(ctx, cmd.String("file"), cmd.Int("capacity"))
			if err != nil {
				return err
			}

			format, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}
			if format == serializer.FormatTable {
				return writeOutput(ctx, cmd, menu.NewTable(m.Recipes()))
			}
			return writeOutput(ctx, cmd, m.Recipes())
		},
	}
}
