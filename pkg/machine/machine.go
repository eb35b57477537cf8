// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package machine

import (
	"fmt"
	"log/slog"

	"github.com/vendingworks/coffeemaker/pkg/inventory"
	"github.com/vendingworks/coffeemaker/pkg/recipe"
	"github.com/vendingworks/coffeemaker/pkg/recipebook"
)

// Machine is a coin-operated coffee maker. It owns one inventory and one
// recipe book for its whole life and runs purchases against them.
//
// Machine is safe for concurrent use; its components carry their own locks.
type Machine struct {
	inventory *inventory.Inventory
	book      *recipebook.Book
	logger    *slog.Logger
}

// Option configures a Machine.
type Option func(*Machine)

// WithInventory replaces the default inventory.
func WithInventory(inv *inventory.Inventory) Option {
	return func(m *Machine) {
		if inv != nil {
			m.inventory = inv
		}
	}
}

// WithRecipeBook replaces the default, empty recipe book.
func WithRecipeBook(b *recipebook.Book) Option {
	return func(m *Machine) {
		if b != nil {
			m.book = b
		}
	}
}

// WithLogger sets the logger used for purchase events.
func WithLogger(l *slog.Logger) Option {
	return func(m *Machine) {
		if l != nil {
			m.logger = l
		}
	}
}

// New returns a machine with a default-stocked inventory and an empty
// recipe book.
func New(opts ...Option) *Machine {
	m := &Machine{
		inventory: inventory.New(),
		book:      recipebook.New(),
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// AddInventory restocks all four ingredients. A malformed or negative value
// rejects the whole request with an ErrCodeInventory error.
func (m *Machine) AddInventory(coffee, milk, sugar, chocolate string) error {
	if err := m.inventory.AddIngredients(coffee, milk, sugar, chocolate); err != nil {
		return fmt.Errorf("add inventory: %w", err)
	}
	m.logger.Info("inventory restocked",
		"coffee", coffee,
		"milk", milk,
		"sugar", sugar,
		"chocolate", chocolate,
	)
	return nil
}

// CheckInventory returns a human-readable stock report.
func (m *Machine) CheckInventory() string {
	return m.inventory.String()
}

// Inventory returns a snapshot of the ingredient counters.
func (m *Machine) Inventory() inventory.Stock {
	return m.inventory.Snapshot()
}

// AddRecipe adds r to the first free slot of the recipe book.
func (m *Machine) AddRecipe(r *recipe.Recipe) bool {
	ok := m.book.AddRecipe(r)
	if ok {
		m.logger.Info("recipe added", "name", r.Name())
	}
	return ok
}

// EditRecipe replaces the recipe in an occupied slot and returns the slot's
// (unchanged) name.
func (m *Machine) EditRecipe(index int, r *recipe.Recipe) (string, bool) {
	name, ok := m.book.EditRecipe(index, r)
	if ok {
		m.logger.Info("recipe edited", "slot", index, "name", name)
	}
	return name, ok
}

// DeleteRecipe empties a slot and returns the name of the recipe it held.
func (m *Machine) DeleteRecipe(index int) (string, bool) {
	name, ok := m.book.DeleteRecipe(index)
	if ok {
		m.logger.Info("recipe deleted", "slot", index, "name", name)
	}
	return name, ok
}

// Recipes returns every recipe slot, with nil for empty ones.
func (m *Machine) Recipes() []*recipe.Recipe {
	return m.book.Recipes()
}

// Capacity returns the number of recipe slots.
func (m *Machine) Capacity() int {
	return m.book.Capacity()
}
