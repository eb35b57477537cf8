/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/vendingworks/coffeemaker/pkg/defaults"
	"github.com/vendingworks/coffeemaker/pkg/machine"
	"github.com/vendingworks/coffeemaker/pkg/menu"
	"github.com/vendingworks/coffeemaker/pkg/recipebook"
	"github.com/vendingworks/coffeemaker/pkg/serializer"
)

// Flags carry parse state, so each command gets its own instances.

func outputFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
	}
}

func capacityFlag() *cli.IntFlag {
	return &cli.IntFlag{
		Name:  "capacity",
		Value: defaults.RecipeBookCapacity,
		Usage: "Number of recipe slots in the machine",
	}
}

func menuFlag(required bool) *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "file",
		Aliases:  []string{"f"},
		Required: required,
		Usage: `Path/URI to a menu file (YAML or JSON).
	Supports: file paths or HTTP/HTTPS URLs.`,
		Sources: cli.EnvVars("COFFEEMAKER_MENU"),
	}
}

func formatFlag(def serializer.Format) *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(def),
		Usage:   fmt.Sprintf("Output format (supported values: %s)", strings.Join(serializer.SupportedFormats(), ", ")),
	}
}

// parseOutputFormat returns the --format value, rejecting unknown formats.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(cmd.String("format"))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q", f)
	}
	return f, nil
}

// writeOutput serializes v to --output, or to the root command's writer when
// no output file is given.
func writeOutput(ctx context.Context, cmd *cli.Command, v any) error {
	format, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	var ser *serializer.Writer
	if path := cmd.String("output"); path != "" {
		ser = serializer.NewFileWriterOrStdout(format, path)
	} else {
		ser = serializer.NewWriter(format, cmd.Root().Writer)
	}
	defer func() {
		if err := ser.Close(); err != nil {
			slog.Warn("failed to close serializer", "error", err)
		}
	}()

	return ser.Serialize(ctx, v)
}

// loadMachine builds a default-stocked machine with the given capacity and,
// when path is set, applies the menu file to it.
func loadMachine(ctx context.Context, path string, capacity int) (*machine.Machine, menu.Result, error) {
	if capacity <= 0 {
		return nil, menu.Result{}, fmt.Errorf("capacity must be positive, got %d", capacity)
	}
	m := machine.New(machine.WithRecipeBook(recipebook.New(recipebook.WithCapacity(capacity))))
	if path == "" {
		return m, menu.Result{}, nil
	}

	slog.Info("loading menu", "uri", path)
	f, err := menu.Load(ctx, path)
	if err != nil {
		return nil, menu.Result{}, fmt.Errorf("failed to load menu from %q: %w", path, err)
	}

	res, err := f.Apply(m)
	if err != nil {
		return nil, res, fmt.Errorf("invalid menu %q: %w", path, err)
	}
	for _, n := range res.Rejected {
		slog.Warn("recipe not added", "name", n, "capacity", capacity)
	}
	return m, res, nil
}
