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

package api

import (
	"k8s.io/utils/ptr"

	"github.com/vendingworks/coffeemaker/pkg/menu"
	"github.com/vendingworks/coffeemaker/pkg/recipe"
)

// RecipeRequest is the body of POST /v1/recipes and PUT /v1/recipes/{slot}.
// Omitted amounts are zero. Name is required when adding and ignored when
// editing.
type RecipeRequest struct {
	Name      string       `json:"name" yaml:"name"`
	Coffee    *menu.Amount `json:"coffee,omitempty" yaml:"coffee,omitempty"`
	Milk      *menu.Amount `json:"milk,omitempty" yaml:"milk,omitempty"`
	Sugar     *menu.Amount `json:"sugar,omitempty" yaml:"sugar,omitempty"`
	Chocolate *menu.Amount `json:"chocolate,omitempty" yaml:"chocolate,omitempty"`
	Price     *menu.Amount `json:"price,omitempty" yaml:"price,omitempty"`
}

func amountText(a *menu.Amount) string {
	return ptr.Deref(a, "").String()
}

// Recipe builds the request through the recipe setters.
func (rr RecipeRequest) Recipe() (*recipe.Recipe, error) {
	return recipe.Build(rr.Name,
		amountText(rr.Coffee), amountText(rr.Milk), amountText(rr.Sugar),
		amountText(rr.Chocolate), amountText(rr.Price))
}

// InventoryRequest is the body of POST /v1/inventory.
type InventoryRequest struct {
	Coffee    *menu.Amount `json:"coffee,omitempty" yaml:"coffee,omitempty"`
	Milk      *menu.Amount `json:"milk,omitempty" yaml:"milk,omitempty"`
	Sugar     *menu.Amount `json:"sugar,omitempty" yaml:"sugar,omitempty"`
	Chocolate *menu.Amount `json:"chocolate,omitempty" yaml:"chocolate,omitempty"`
}

// PurchaseRequest is the body of POST /v1/purchases. Both fields are
// required.
type PurchaseRequest struct {
	Selection *int `json:"selection" yaml:"selection"`
	Payment   *int `json:"payment" yaml:"payment"`
}

// RecipesResponse lists every slot; empty slots are null.
type RecipesResponse struct {
	Capacity int              `json:"capacity" yaml:"capacity"`
	Slots    []*recipe.Recipe `json:"slots" yaml:"slots"`
}

// RecipeChangeResponse reports a catalog mutation. Slot is omitted for
// adds, where the machine picks the slot.
type RecipeChangeResponse struct {
	Name  string           `json:"name" yaml:"name"`
	Slot  *int             `json:"slot,omitempty" yaml:"slot,omitempty"`
	Slots []*recipe.Recipe `json:"slots" yaml:"slots"`
}
