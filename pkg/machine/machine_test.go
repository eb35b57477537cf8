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
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cmerrors "github.com/vendingworks/coffeemaker/pkg/errors"
	"github.com/vendingworks/coffeemaker/pkg/inventory"
	"github.com/vendingworks/coffeemaker/pkg/logging"
	"github.com/vendingworks/coffeemaker/pkg/recipe"
	"github.com/vendingworks/coffeemaker/pkg/recipebook"
)

type sampleRecipes struct {
	coffee, mocha, latte, hotChocolate *recipe.Recipe
}

func setUp(t *testing.T) (*Machine, sampleRecipes) {
	t.Helper()
	build := func(name, coffee, milk, sugar, chocolate, price string) *recipe.Recipe {
		r, err := recipe.Build(name, coffee, milk, sugar, chocolate, price)
		require.NoError(t, err)
		return r
	}
	m := New(WithLogger(logging.NewNop()))
	return m, sampleRecipes{
		coffee:       build("Coffee", "3", "1", "1", "0", "50"),
		mocha:        build("Mocha", "3", "1", "1", "20", "75"),
		latte:        build("Latte", "3", "3", "1", "0", "100"),
		hotChocolate: build("Hot Chocolate", "0", "1", "1", "4", "65"),
	}
}

func TestAddInventory(t *testing.T) {
	m, _ := setUp(t)
	require.NoError(t, m.AddInventory("4", "7", "0", "9"))
	assert.Equal(t, inventory.Stock{Coffee: 19, Milk: 22, Sugar: 15, Chocolate: 24}, m.Inventory())
}

func TestAddInventoryRejected(t *testing.T) {
	tests := []struct {
		name string
		args [4]string
	}{
		{"negative milk and non-numeric sugar", [4]string{"4", "-1", "asdf", "3"}},
		{"negative sugar", [4]string{"4", "1", "-2", "3"}},
		{"fractional coffee", [4]string{"1.5", "1", "1", "1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := setUp(t)
			before := m.Inventory()

			err := m.AddInventory(tt.args[0], tt.args[1], tt.args[2], tt.args[3])
			require.Error(t, err)
			assert.True(t, cmerrors.HasCode(err, cmerrors.ErrCodeInventory))
			assert.Equal(t, before, m.Inventory())
		})
	}
}

func TestMakeCoffee(t *testing.T) {
	m, r := setUp(t)
	require.True(t, m.AddRecipe(r.coffee))

	assert.Equal(t, 25, m.MakeCoffee(0, 75))
	assert.Equal(t, inventory.Stock{Coffee: 12, Milk: 14, Sugar: 14, Chocolate: 15}, m.Inventory())
}

func TestMakeCoffeeExactPayment(t *testing.T) {
	m, r := setUp(t)
	require.True(t, m.AddRecipe(r.coffee))
	assert.Equal(t, 0, m.MakeCoffee(0, 50))
	assert.Equal(t, 12, m.Inventory().Coffee)
}

func TestMakeCoffeeRefunds(t *testing.T) {
	tests := []struct {
		name      string
		selection int
		payment   int
		outcome   Outcome
	}{
		{"negative selection", -1, 5, OutcomeInvalidSelection},
		{"selection past capacity", 3, 100, OutcomeInvalidSelection},
		{"empty slot", 2, 100, OutcomeInvalidSelection},
		{"insufficient funds", 0, 49, OutcomeInsufficientFunds},
		{"no payment", 0, 0, OutcomeInsufficientFunds},
		{"negative payment", 0, -10, OutcomeInvalidPayment},
		{"insufficient stock", 1, 100, OutcomeInsufficientStock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, r := setUp(t)
			require.True(t, m.AddRecipe(r.coffee))
			require.True(t, m.AddRecipe(r.mocha))
			before := m.Inventory()

			rec := m.Purchase(tt.selection, tt.payment)
			assert.Equal(t, tt.outcome, rec.Outcome)
			assert.Equal(t, tt.payment, rec.Change)
			assert.False(t, rec.Dispensed())
			assert.Equal(t, before, m.Inventory())

			assert.Equal(t, tt.payment, m.MakeCoffee(tt.selection, tt.payment))
		})
	}
}

func TestPurchaseReceipt(t *testing.T) {
	m, r := setUp(t)
	require.True(t, m.AddRecipe(r.coffee))
	require.True(t, m.AddRecipe(r.latte))

	rec := m.Purchase(1, 120)
	assert.True(t, rec.Dispensed())
	assert.Equal(t, OutcomeDispensed, rec.Outcome)
	assert.Equal(t, "Latte", rec.Recipe)
	assert.Equal(t, 1, rec.Selection)
	assert.Equal(t, 120, rec.Paid)
	assert.Equal(t, 100, rec.Price)
	assert.Equal(t, 20, rec.Change)
	assert.False(t, rec.Timestamp.IsZero())
	_, err := uuid.Parse(rec.ID)
	assert.NoError(t, err)

	refund := m.Purchase(2, 10)
	assert.Empty(t, refund.Recipe)
	assert.Zero(t, refund.Price)
}

func TestMakeCoffeeUntilEmpty(t *testing.T) {
	m, r := setUp(t)
	require.True(t, m.AddRecipe(r.coffee))

	for i := range 5 {
		require.Equal(t, 0, m.MakeCoffee(0, 50), "cup %d", i)
	}
	assert.Equal(t, 50, m.MakeCoffee(0, 50))
	assert.Equal(t, 0, m.Inventory().Coffee)

	require.NoError(t, m.AddInventory("3", "0", "0", "0"))
	assert.Equal(t, 0, m.MakeCoffee(0, 50))
}

func TestAdd4Recipes(t *testing.T) {
	m, r := setUp(t)
	assert.True(t, m.AddRecipe(r.coffee))
	assert.True(t, m.AddRecipe(r.mocha))
	assert.True(t, m.AddRecipe(r.latte))
	assert.False(t, m.AddRecipe(r.hotChocolate))

	occupied := 0
	for _, slot := range m.Recipes() {
		if slot != nil {
			occupied++
		}
	}
	assert.Equal(t, 3, occupied)
	assert.Equal(t, 3, m.Capacity())
}

func TestEditRecipeKeepsSlotName(t *testing.T) {
	m, r := setUp(t)
	require.True(t, m.AddRecipe(r.coffee))
	require.True(t, m.AddRecipe(r.mocha))
	require.True(t, m.AddRecipe(r.latte))

	name, ok := m.EditRecipe(1, r.hotChocolate)
	require.True(t, ok)
	assert.Equal(t, "Mocha", name)
	assert.Equal(t, "Mocha", m.Recipes()[1].Name())

	// Slot 1 now costs 65 and needs hot chocolate ingredients.
	assert.Equal(t, 10, m.MakeCoffee(1, 75))
	assert.Equal(t, 11, m.Inventory().Chocolate)

	_, ok = m.EditRecipe(5, r.hotChocolate)
	assert.False(t, ok)
}

func TestDeleteRecipe(t *testing.T) {
	m, r := setUp(t)
	require.True(t, m.AddRecipe(r.coffee))

	name, ok := m.DeleteRecipe(0)
	require.True(t, ok)
	assert.Equal(t, "Coffee", name)
	assert.Nil(t, m.Recipes()[0])

	assert.Equal(t, 75, m.MakeCoffee(0, 75))
}

func TestCheckInventory(t *testing.T) {
	m, r := setUp(t)
	require.True(t, m.AddRecipe(r.coffee))
	m.MakeCoffee(0, 50)
	assert.Equal(t, "Coffee: 12\nMilk: 14\nSugar: 14\nChocolate: 15\n", m.CheckInventory())
}

func TestOptions(t *testing.T) {
	inv := inventory.New(inventory.WithStock(1))
	book := recipebook.New(recipebook.WithCapacity(1))
	m := New(WithInventory(inv), WithRecipeBook(book), WithLogger(nil), WithInventory(nil))

	assert.Equal(t, 1, m.Capacity())
	assert.Equal(t, 1, m.Inventory().Coffee)
	assert.NotNil(t, m.logger)
}

func TestOutcomes(t *testing.T) {
	seen := map[Outcome]bool{}
	for _, o := range Outcomes() {
		assert.NotEmpty(t, string(o))
		assert.False(t, seen[o], "duplicate outcome %s", o)
		seen[o] = true
	}
	assert.Len(t, seen, 5)
}
