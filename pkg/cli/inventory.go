/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/vendingworks/coffeemaker/pkg/defaults"
	"github.com/vendingworks/coffeemaker/pkg/menu"
	"github.com/vendingworks/coffeemaker/pkg/serializer"
)

func inventoryCmd() *cli.Command {
	return &cli.Command{
		Name:  "inventory",
		Usage: "Show ingredient levels, including a menu file's restock",
		Flags: []cli.Flag{
			menuFlag(false),
			outputFlag(),
			formatFlag(serializer.FormatTable),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			m, _, err := loadMachine(ctx, cmd.String("file"), defaults.RecipeBookCapacity)
			if err != nil {
				return err
			}

			if format == serializer.FormatTable {
				return writeOutput(ctx, cmd, menu.StockTable(m.Inventory()))
			}
			return writeOutput(ctx, cmd, m.Inventory())
		},
	}
}
