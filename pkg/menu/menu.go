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

package menu

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"gopkg.in/yaml.v3"

	"github.com/vendingworks/coffeemaker/pkg/amount"
	cmerrors "github.com/vendingworks/coffeemaker/pkg/errors"
	"github.com/vendingworks/coffeemaker/pkg/inventory"
	"github.com/vendingworks/coffeemaker/pkg/machine"
	"github.com/vendingworks/coffeemaker/pkg/recipe"
	"github.com/vendingworks/coffeemaker/pkg/serializer"
)

// Amount is a textual quantity that decodes from either a number or a
// string. The zero value reads as "0".
type Amount string

// String returns the amount text, "0" when unset.
func (a Amount) String() string {
	if a == "" {
		return "0"
	}
	return string(a)
}

// UnmarshalJSON accepts a JSON number or string.
func (a *Amount) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*a = Amount(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("amount must be a number or string: %s", data)
	}
	*a = Amount(n.String())
	return nil
}

// UnmarshalYAML accepts any scalar.
func (a *Amount) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: amount must be a scalar", node.Line)
	}
	*a = Amount(node.Value)
	return nil
}

// Entry is one recipe in a menu file.
type Entry struct {
	Name      string `json:"name" yaml:"name"`
	Coffee    Amount `json:"coffee,omitempty" yaml:"coffee,omitempty"`
	Milk      Amount `json:"milk,omitempty" yaml:"milk,omitempty"`
	Sugar     Amount `json:"sugar,omitempty" yaml:"sugar,omitempty"`
	Chocolate Amount `json:"chocolate,omitempty" yaml:"chocolate,omitempty"`
	Price     Amount `json:"price,omitempty" yaml:"price,omitempty"`
}

// Recipe builds the entry through the recipe setters.
func (e Entry) Recipe() (*recipe.Recipe, error) {
	return recipe.Build(e.Name,
		e.Coffee.String(), e.Milk.String(), e.Sugar.String(),
		e.Chocolate.String(), e.Price.String())
}

// Restock is an ingredient delivery applied after the recipes.
type Restock struct {
	Coffee    Amount `json:"coffee,omitempty" yaml:"coffee,omitempty"`
	Milk      Amount `json:"milk,omitempty" yaml:"milk,omitempty"`
	Sugar     Amount `json:"sugar,omitempty" yaml:"sugar,omitempty"`
	Chocolate Amount `json:"chocolate,omitempty" yaml:"chocolate,omitempty"`
}

// File is a decoded menu file.
type File struct {
	Recipes []Entry  `json:"recipes" yaml:"recipes"`
	Restock *Restock `json:"restock,omitempty" yaml:"restock,omitempty"`
}

// Load reads a menu file from a path or URL.
func Load(ctx context.Context, path string) (*File, error) {
	f, err := serializer.FromFile[File](ctx, path)
	if err != nil {
		return nil, fmt.Errorf("load menu: %w", err)
	}
	return f, nil
}

// Validate builds every recipe and parses the restock without touching a
// machine. It returns the first problem found.
func (f *File) Validate() error {
	if _, err := f.BuildRecipes(); err != nil {
		return err
	}
	return f.validateRestock()
}

func (f *File) validateRestock() error {
	if rs := f.Restock; rs != nil {
		values := []string{rs.Coffee.String(), rs.Milk.String(), rs.Sugar.String(), rs.Chocolate.String()}
		if _, idx, err := amount.ParseAll(values...); err != nil {
			return cmerrors.WrapWithContext(cmerrors.ErrCodeInventory, "invalid restock amount", err,
				map[string]any{"ingredient": string(inventory.Ingredients()[idx]), "value": values[idx]})
		}
	}
	return nil
}

// BuildRecipes converts every entry into a recipe, in file order.
func (f *File) BuildRecipes() ([]*recipe.Recipe, error) {
	out := make([]*recipe.Recipe, 0, len(f.Recipes))
	for i, e := range f.Recipes {
		r, err := e.Recipe()
		if err != nil {
			return nil, fmt.Errorf("recipe %d (%s): %w", i, e.Name, err)
		}
		out = append(out, r)
	}
	return out, nil
}

// Result lists what Apply did.
type Result struct {
	Added    []string `json:"added" yaml:"added"`
	Rejected []string `json:"rejected,omitempty" yaml:"rejected,omitempty"`
}

// Apply adds the file's recipes to m in order, then applies the restock.
// Recipes the machine refuses (book full, duplicate name) are listed in
// Result.Rejected; malformed recipes or restock amounts are errors and
// leave m unchanged.
func (f *File) Apply(m *machine.Machine) (Result, error) {
	var res Result
	recipes, err := f.BuildRecipes()
	if err != nil {
		return res, err
	}
	if err := f.validateRestock(); err != nil {
		return res, err
	}

	for _, r := range recipes {
		if m.AddRecipe(r) {
			res.Added = append(res.Added, r.Name())
		} else {
			res.Rejected = append(res.Rejected, r.Name())
		}
	}

	if rs := f.Restock; rs != nil {
		if err := m.AddInventory(rs.Coffee.String(), rs.Milk.String(), rs.Sugar.String(), rs.Chocolate.String()); err != nil {
			return res, err
		}
	}

	slog.Debug("menu applied", "added", len(res.Added), "rejected", len(res.Rejected))
	return res, nil
}
