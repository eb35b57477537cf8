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
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	cmerrors "github.com/vendingworks/coffeemaker/pkg/errors"
	"github.com/vendingworks/coffeemaker/pkg/inventory"
	"github.com/vendingworks/coffeemaker/pkg/logging"
	"github.com/vendingworks/coffeemaker/pkg/machine"
	"github.com/vendingworks/coffeemaker/pkg/serializer"
)

func newMachine() *machine.Machine {
	return machine.New(machine.WithLogger(logging.NewNop()))
}

func TestLoadYAML(t *testing.T) {
	f, err := Load(context.Background(), filepath.Join("testdata", "menu.yaml"))
	require.NoError(t, err)
	require.Len(t, f.Recipes, 3)
	require.NotNil(t, f.Restock)

	assert.Equal(t, "Mocha", f.Recipes[1].Name)
	assert.Equal(t, Amount("2"), f.Recipes[1].Chocolate)
	assert.Equal(t, "0", f.Recipes[0].Chocolate.String())
	assert.Equal(t, Amount("100"), f.Recipes[2].Price)
	assert.NoError(t, f.Validate())
}

func TestLoadJSON(t *testing.T) {
	f, err := Load(context.Background(), filepath.Join("testdata", "menu.json"))
	require.NoError(t, err)
	require.Len(t, f.Recipes, 1)
	assert.Nil(t, f.Restock)

	r, err := f.Recipes[0].Recipe()
	require.NoError(t, err)
	assert.Equal(t, 0, r.AmtCoffee())
	assert.Equal(t, 4, r.AmtChocolate())
	assert.Equal(t, 65, r.Price())
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join("testdata", "absent.yaml"))
	assert.Error(t, err)
}

func TestAmountDecoding(t *testing.T) {
	var fromJSON struct{ A, B, C Amount }
	require.NoError(t, json.Unmarshal([]byte(`{"A": 3, "B": "-1", "C": "asdf"}`), &fromJSON))
	assert.Equal(t, Amount("3"), fromJSON.A)
	assert.Equal(t, Amount("-1"), fromJSON.B)
	assert.Equal(t, Amount("asdf"), fromJSON.C)

	var bad struct{ A Amount }
	assert.Error(t, json.Unmarshal([]byte(`{"A": [1]}`), &bad))
	assert.Error(t, yaml.Unmarshal([]byte("a: [1, 2]\n"), &bad))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		file File
		code cmerrors.ErrorCode
	}{
		{
			name: "bad recipe amount",
			file: File{Recipes: []Entry{{Name: "Coffee", Coffee: "abc"}}},
			code: cmerrors.ErrCodeRecipe,
		},
		{
			name: "negative price",
			file: File{Recipes: []Entry{{Name: "Coffee", Price: "-5"}}},
			code: cmerrors.ErrCodeRecipe,
		},
		{
			name: "bad restock",
			file: File{Restock: &Restock{Coffee: "4", Milk: "-1", Sugar: "asdf", Chocolate: "3"}},
			code: cmerrors.ErrCodeInventory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.file.Validate()
			require.Error(t, err)
			assert.True(t, cmerrors.HasCode(err, tt.code), "got %v", err)
		})
	}
}

func TestValidateRestockContext(t *testing.T) {
	f := File{Restock: &Restock{Coffee: "4", Milk: "-1", Sugar: "asdf", Chocolate: "3"}}
	err := f.Validate()

	var se *cmerrors.StructuredError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "milk", se.Context["ingredient"])
	assert.Equal(t, "-1", se.Context["value"])
}

func TestApply(t *testing.T) {
	f, err := Load(context.Background(), filepath.Join("testdata", "menu.yaml"))
	require.NoError(t, err)
	f.Recipes = append(f.Recipes, Entry{Name: "Hot Chocolate", Chocolate: "4", Price: "65"})

	m := newMachine()
	res, err := f.Apply(m)
	require.NoError(t, err)
	assert.Equal(t, []string{"Coffee", "Mocha", "Latte"}, res.Added)
	assert.Equal(t, []string{"Hot Chocolate"}, res.Rejected)
	assert.Equal(t, inventory.Stock{Coffee: 19, Milk: 22, Sugar: 15, Chocolate: 24}, m.Inventory())
}

func TestApplyInvalidLeavesMachineUnchanged(t *testing.T) {
	f := File{
		Recipes: []Entry{{Name: "Coffee", Coffee: "3", Price: "50"}},
		Restock: &Restock{Coffee: "x"},
	}
	m := newMachine()
	before := m.Inventory()

	_, err := f.Apply(m)
	require.Error(t, err)
	assert.Nil(t, m.Recipes()[0])
	assert.Equal(t, before, m.Inventory())
}

func TestTable(t *testing.T) {
	f, err := Load(context.Background(), filepath.Join("testdata", "menu.json"))
	require.NoError(t, err)
	m := newMachine()
	_, err = f.Apply(m)
	require.NoError(t, err)

	table := NewTable(m.Recipes())
	rows := table.TableRows()
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"0", "Hot Chocolate", "0", "1", "1", "4", "65"}, rows[0])
	assert.Equal(t, "-", rows[1][1])
	assert.Len(t, table.TableHeader(), len(rows[0]))

	var buf bytes.Buffer
	require.NoError(t, serializer.NewWriter(serializer.FormatTable, &buf).Serialize(context.Background(), table))
	assert.True(t, strings.HasPrefix(buf.String(), "SLOT"))
	assert.Contains(t, buf.String(), "Hot Chocolate")
}

func TestStockTable(t *testing.T) {
	rows := StockTable(inventory.Stock{Coffee: 12, Milk: 14, Sugar: 14, Chocolate: 15}).TableRows()
	assert.Equal(t, [][]string{
		{"Coffee", "12"},
		{"Milk", "14"},
		{"Sugar", "14"},
		{"Chocolate", "15"},
	}, rows)
}
