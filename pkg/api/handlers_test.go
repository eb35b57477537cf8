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
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendingworks/coffeemaker/pkg/inventory"
	"github.com/vendingworks/coffeemaker/pkg/logging"
	"github.com/vendingworks/coffeemaker/pkg/machine"
	"github.com/vendingworks/coffeemaker/pkg/server"
)

type slotView struct {
	Name      string `json:"name"`
	Coffee    int    `json:"coffee"`
	Chocolate int    `json:"chocolate"`
	Price     int    `json:"price"`
}

func newTestAPI(t *testing.T) (http.Handler, *machine.Machine) {
	t.Helper()
	m := machine.New(machine.WithLogger(logging.NewNop()))
	return NewServer(m).Handler(), m
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

const coffeeJSON = `{"name":"Coffee","coffee":3,"milk":1,"sugar":1,"price":50}`

func TestConstants(t *testing.T) {
	assert.Equal(t, "coffeemakerd", name)
	assert.Equal(t, "dev", versionDefault)
	assert.NotEmpty(t, version)
	assert.NotEmpty(t, commit)
	assert.NotEmpty(t, date)
}

func TestRoutes(t *testing.T) {
	routes := NewHandler(machine.New()).Routes()
	for _, p := range []string{
		"GET /v1/recipes", "POST /v1/recipes", "PUT /v1/recipes/{slot}",
		"DELETE /v1/recipes/{slot}", "GET /v1/inventory", "POST /v1/inventory",
		"POST /v1/purchases",
	} {
		assert.NotNil(t, routes[p], p)
	}
	assert.Len(t, routes, 7)
}

func TestListRecipesEmpty(t *testing.T) {
	h, _ := newTestAPI(t)
	rec := do(t, h, http.MethodGet, "/v1/recipes", "")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[struct {
		Capacity int         `json:"capacity"`
		Slots    []*slotView `json:"slots"`
	}](t, rec)
	assert.Equal(t, 3, resp.Capacity)
	assert.Equal(t, []*slotView{nil, nil, nil}, resp.Slots)
}

func TestAddRecipe(t *testing.T) {
	h, m := newTestAPI(t)

	rec := do(t, h, http.MethodPost, "/v1/recipes", coffeeJSON)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	resp := decode[struct {
		Name  string      `json:"name"`
		Slot  *int        `json:"slot"`
		Slots []*slotView `json:"slots"`
	}](t, rec)
	assert.Equal(t, "Coffee", resp.Name)
	assert.Nil(t, resp.Slot)
	require.NotNil(t, resp.Slots[0])
	assert.Equal(t, 50, resp.Slots[0].Price)
	assert.Equal(t, "Coffee", m.Recipes()[0].Name())

	rec = do(t, h, http.MethodPost, "/v1/recipes", coffeeJSON)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "CONFLICT", decode[server.ErrorResponse](t, rec).Code)
}

func TestAddRecipeFull(t *testing.T) {
	h, _ := newTestAPI(t)
	for _, n := range []string{"Coffee", "Mocha", "Latte"} {
		rec := do(t, h, http.MethodPost, "/v1/recipes", `{"name":"`+n+`","price":"50"}`)
		require.Equal(t, http.StatusCreated, rec.Code)
	}
	rec := do(t, h, http.MethodPost, "/v1/recipes", `{"name":"Hot Chocolate","price":65}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAddRecipeRejected(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		status int
		code   string
	}{
		{"negative amount", `{"name":"Coffee","coffee":"-1"}`, http.StatusBadRequest, "RECIPE_INVALID"},
		{"non-numeric price", `{"name":"Coffee","price":"abc"}`, http.StatusBadRequest, "RECIPE_INVALID"},
		{"missing name", `{"coffee":3}`, http.StatusBadRequest, "INVALID_REQUEST"},
		{"malformed json", `{"name":`, http.StatusBadRequest, "INVALID_REQUEST"},
		{"array amount", `{"name":"Coffee","milk":[1]}`, http.StatusBadRequest, "INVALID_REQUEST"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestAPI(t)
			rec := do(t, h, http.MethodPost, "/v1/recipes", tt.body)
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.code, decode[server.ErrorResponse](t, rec).Code)
			assert.Nil(t, m.Recipes()[0])
		})
	}
}

func TestAddRecipeYAML(t *testing.T) {
	h, m := newTestAPI(t)
	req := httptest.NewRequest(http.MethodPost, "/v1/recipes",
		strings.NewReader("name: Latte\ncoffee: 3\nmilk: 3\nsugar: 1\nprice: 100\n"))
	req.Header.Set("Content-Type", "application/yaml")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, 100, m.Recipes()[0].Price())
}

func TestEditRecipe(t *testing.T) {
	h, m := newTestAPI(t)
	require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/v1/recipes", coffeeJSON).Code)

	rec := do(t, h, http.MethodPut, "/v1/recipes/0", `{"name":"Hot Chocolate","milk":1,"sugar":1,"chocolate":4,"price":65}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	resp := decode[struct {
		Name string `json:"name"`
		Slot *int   `json:"slot"`
	}](t, rec)
	assert.Equal(t, "Coffee", resp.Name)
	require.NotNil(t, resp.Slot)
	assert.Equal(t, 0, *resp.Slot)

	r := m.Recipes()[0]
	assert.Equal(t, "Coffee", r.Name())
	assert.Equal(t, 65, r.Price())
	assert.Equal(t, 4, r.AmtChocolate())
}

func TestEditDeleteMissingSlot(t *testing.T) {
	h, _ := newTestAPI(t)
	tests := []struct {
		method string
		path   string
		body   string
		status int
	}{
		{http.MethodPut, "/v1/recipes/1", coffeeJSON, http.StatusNotFound},
		{http.MethodPut, "/v1/recipes/9", coffeeJSON, http.StatusNotFound},
		{http.MethodPut, "/v1/recipes/x", coffeeJSON, http.StatusBadRequest},
		{http.MethodDelete, "/v1/recipes/0", "", http.StatusNotFound},
		{http.MethodDelete, "/v1/recipes/-1", "", http.StatusNotFound},
		{http.MethodDelete, "/v1/recipes/one", "", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := do(t, h, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestDeleteRecipe(t *testing.T) {
	h, m := newTestAPI(t)
	require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/v1/recipes", coffeeJSON).Code)

	rec := do(t, h, http.MethodDelete, "/v1/recipes/0", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Coffee", decode[struct {
		Name string `json:"name"`
	}](t, rec).Name)
	assert.Nil(t, m.Recipes()[0])
}

func TestInventory(t *testing.T) {
	h, m := newTestAPI(t)

	rec := do(t, h, http.MethodGet, "/v1/inventory", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, inventory.Stock{Coffee: 15, Milk: 15, Sugar: 15, Chocolate: 15}, decode[inventory.Stock](t, rec))

	rec = do(t, h, http.MethodPost, "/v1/inventory", `{"coffee":"4","milk":7,"chocolate":9}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, inventory.Stock{Coffee: 19, Milk: 22, Sugar: 15, Chocolate: 24}, decode[inventory.Stock](t, rec))

	rec = do(t, h, http.MethodPost, "/v1/inventory", `{"coffee":"4","milk":"-1","sugar":"asdf","chocolate":"3"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	errResp := decode[server.ErrorResponse](t, rec)
	assert.Equal(t, "INVENTORY_INVALID", errResp.Code)
	assert.Equal(t, "milk", errResp.Details["ingredient"])
	assert.Equal(t, 19, m.Inventory().Coffee)

	rec = do(t, h, http.MethodPost, "/v1/inventory", `{"sugar":"9223372036854775807"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "sugar", decode[server.ErrorResponse](t, rec).Details["ingredient"])
	assert.Equal(t, 15, m.Inventory().Sugar)
}

func TestPurchase(t *testing.T) {
	h, m := newTestAPI(t)
	require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/v1/recipes", coffeeJSON).Code)

	tests := []struct {
		name    string
		body    string
		outcome machine.Outcome
		change  int
	}{
		{"dispensed", `{"selection":0,"payment":75}`, machine.OutcomeDispensed, 25},
		{"invalid selection", `{"selection":-1,"payment":5}`, machine.OutcomeInvalidSelection, 5},
		{"empty slot", `{"selection":2,"payment":60}`, machine.OutcomeInvalidSelection, 60},
		{"insufficient funds", `{"selection":0,"payment":40}`, machine.OutcomeInsufficientFunds, 40},
		{"negative payment", `{"selection":0,"payment":-3}`, machine.OutcomeInvalidPayment, -3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/v1/purchases", tt.body)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			receipt := decode[machine.Receipt](t, rec)
			assert.Equal(t, tt.outcome, receipt.Outcome)
			assert.Equal(t, tt.change, receipt.Change)
		})
	}
	assert.Equal(t, 12, m.Inventory().Coffee)
}

func TestPurchaseRequiresFields(t *testing.T) {
	h, _ := newTestAPI(t)
	for _, body := range []string{`{}`, `{"selection":0}`, `{"payment":50}`, `not json`} {
		rec := do(t, h, http.MethodPost, "/v1/purchases", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.Equal(t, "INVALID_REQUEST", decode[server.ErrorResponse](t, rec).Code)
	}
}

func TestRequestBodyLimit(t *testing.T) {
	h, _ := newTestAPI(t)
	big := `{"name":"` + strings.Repeat("a", 70<<10) + `"}`
	rec := do(t, h, http.MethodPost, "/v1/recipes", big)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestResponsesCarryRequestID(t *testing.T) {
	h, _ := newTestAPI(t)
	rec := do(t, h, http.MethodGet, "/v1/recipes", "")
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}
