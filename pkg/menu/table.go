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
	"strconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/vendingworks/coffeemaker/pkg/inventory"
	"github.com/vendingworks/coffeemaker/pkg/recipe"
)

// Table renders recipe slots as a table. Empty slots are shown with a dash
// so slot numbers stay aligned with selections.
type Table struct {
	Slots []*recipe.Recipe
}

// NewTable returns a Table over slots as returned by Machine.Recipes.
func NewTable(slots []*recipe.Recipe) Table {
	return Table{Slots: slots}
}

// TableHeader implements serializer.Tabular.
func (t Table) TableHeader() []string {
	return []string{"SLOT", "NAME", "COFFEE", "MILK", "SUGAR", "CHOCOLATE", "PRICE"}
}

// TableRows implements serializer.Tabular.
func (t Table) TableRows() [][]string {
	caser := cases.Title(language.English)
	rows := make([][]string, 0, len(t.Slots))
	for i, r := range t.Slots {
		slot := strconv.Itoa(i)
		if r == nil {
			rows = append(rows, []string{slot, "-", "", "", "", "", ""})
			continue
		}
		rows = append(rows, []string{
			slot,
			caser.String(r.Name()),
			strconv.Itoa(r.AmtCoffee()),
			strconv.Itoa(r.AmtMilk()),
			strconv.Itoa(r.AmtSugar()),
			strconv.Itoa(r.AmtChocolate()),
			strconv.Itoa(r.Price()),
		})
	}
	return rows
}

// StockTable renders inventory levels as a table.
type StockTable inventory.Stock

// TableHeader implements serializer.Tabular.
func (s StockTable) TableHeader() []string {
	return []string{"INGREDIENT", "UNITS"}
}

// TableRows implements serializer.Tabular.
func (s StockTable) TableRows() [][]string {
	stock := inventory.Stock(s)
	caser := cases.Title(language.English)
	rows := make([][]string, 0, 4)
	for _, ing := range inventory.Ingredients() {
		rows = append(rows, []string{caser.String(string(ing)), strconv.Itoa(stock.Get(ing))})
	}
	return rows
}
