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

package inventory

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/vendingworks/coffeemaker/pkg/amount"
	"github.com/vendingworks/coffeemaker/pkg/defaults"
	cmerrors "github.com/vendingworks/coffeemaker/pkg/errors"
	"github.com/vendingworks/coffeemaker/pkg/recipe"
)

// Ingredient names one of the stocked ingredient kinds.
type Ingredient string

const (
	Coffee    Ingredient = "coffee"
	Milk      Ingredient = "milk"
	Sugar     Ingredient = "sugar"
	Chocolate Ingredient = "chocolate"
)

// ErrOverflow is the cause of a restock rejected because a counter would
// exceed math.MaxInt.
var ErrOverflow = errors.New("restock would overflow the ingredient counter")

// Ingredients lists every stocked ingredient in restock argument order.
func Ingredients() []Ingredient {
	return []Ingredient{Coffee, Milk, Sugar, Chocolate}
}

// Stock is a point-in-time copy of the ingredient counters.
type Stock struct {
	Coffee    int `json:"coffee" yaml:"coffee"`
	Milk      int `json:"milk" yaml:"milk"`
	Sugar     int `json:"sugar" yaml:"sugar"`
	Chocolate int `json:"chocolate" yaml:"chocolate"`
}

// Covers reports whether the stock holds at least what r needs of every
// ingredient.
func (s Stock) Covers(r *recipe.Recipe) bool {
	return s.Coffee >= r.AmtCoffee() &&
		s.Milk >= r.AmtMilk() &&
		s.Sugar >= r.AmtSugar() &&
		s.Chocolate >= r.AmtChocolate()
}

// counter returns the address of one ingredient's level.
func (s *Stock) counter(ing Ingredient) *int {
	switch ing {
	case Coffee:
		return &s.Coffee
	case Milk:
		return &s.Milk
	case Sugar:
		return &s.Sugar
	default:
		return &s.Chocolate
	}
}

// Get returns the level of a single ingredient.
func (s Stock) Get(ing Ingredient) int {
	switch ing {
	case Coffee:
		return s.Coffee
	case Milk:
		return s.Milk
	case Sugar:
		return s.Sugar
	case Chocolate:
		return s.Chocolate
	default:
		return 0
	}
}

// Inventory holds the machine's ingredient counters. Counters never go
// negative. It is safe for concurrent use.
type Inventory struct {
	mu    sync.RWMutex
	stock Stock
}

// Option configures an Inventory.
type Option func(*Inventory)

// WithStock sets every counter to n. Negative values are ignored.
func WithStock(n int) Option {
	return func(i *Inventory) {
		if n < 0 {
			return
		}
		i.stock = Stock{Coffee: n, Milk: n, Sugar: n, Chocolate: n}
	}
}

// WithLevels sets each counter individually. Negative levels are ignored.
func WithLevels(s Stock) Option {
	return func(i *Inventory) {
		set := func(dst *int, v int) {
			if v >= 0 {
				*dst = v
			}
		}
		set(&i.stock.Coffee, s.Coffee)
		set(&i.stock.Milk, s.Milk)
		set(&i.stock.Sugar, s.Sugar)
		set(&i.stock.Chocolate, s.Chocolate)
	}
}

// New returns an inventory stocked with defaults.InitialStock units of
// every ingredient unless overridden by options.
func New(opts ...Option) *Inventory {
	i := &Inventory{}
	WithStock(defaults.InitialStock)(i)
	for _, opt := range opts {
		opt(i)
	}
	publish(i.stock)
	return i
}

// AddIngredients restocks all four ingredients. Every value is validated
// before any counter changes: if one of them is malformed, negative or would
// overflow its counter the whole request is rejected with an
// ErrCodeInventory error.
func (i *Inventory) AddIngredients(coffee, milk, sugar, chocolate string) error {
	raw := []string{coffee, milk, sugar, chocolate}
	values, idx, err := amount.ParseAll(raw...)
	if err != nil {
		return invalidAmount(Ingredients()[idx], raw[idx], err)
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	for k, ing := range Ingredients() {
		if values[k] > math.MaxInt-i.stock.Get(ing) {
			return invalidAmount(ing, raw[k], ErrOverflow)
		}
	}
	for k, ing := range Ingredients() {
		*i.stock.counter(ing) += values[k]
	}

	publish(i.stock)
	return nil
}

// AddCoffee restocks coffee only.
func (i *Inventory) AddCoffee(s string) error { return i.add(Coffee, s) }

// AddMilk restocks milk only.
func (i *Inventory) AddMilk(s string) error { return i.add(Milk, s) }

// AddSugar restocks sugar only.
func (i *Inventory) AddSugar(s string) error { return i.add(Sugar, s) }

// AddChocolate restocks chocolate only.
func (i *Inventory) AddChocolate(s string) error { return i.add(Chocolate, s) }

func (i *Inventory) add(ing Ingredient, s string) error {
	n, err := amount.Parse(s)
	if err != nil {
		return invalidAmount(ing, s, err)
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	if n > math.MaxInt-i.stock.Get(ing) {
		return invalidAmount(ing, s, ErrOverflow)
	}
	*i.stock.counter(ing) += n

	publish(i.stock)
	return nil
}

// EnoughIngredients reports whether the current stock covers r.
func (i *Inventory) EnoughIngredients(r *recipe.Recipe) bool {
	if r == nil {
		return false
	}
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.stock.Covers(r)
}

// UseIngredients consumes r's ingredients if, and only if, every counter can
// cover it. The check and the decrement happen under one lock, so no caller
// ever observes a partially consumed recipe.
func (i *Inventory) UseIngredients(r *recipe.Recipe) bool {
	if r == nil {
		return false
	}

	i.mu.Lock()
	if !i.stock.Covers(r) {
		i.mu.Unlock()
		return false
	}
	i.stock.Coffee -= r.AmtCoffee()
	i.stock.Milk -= r.AmtMilk()
	i.stock.Sugar -= r.AmtSugar()
	i.stock.Chocolate -= r.AmtChocolate()
	publish(i.stock)
	i.mu.Unlock()

	return true
}

// Coffee returns the current coffee level.
func (i *Inventory) Coffee() int { return i.Snapshot().Coffee }

// Milk returns the current milk level.
func (i *Inventory) Milk() int { return i.Snapshot().Milk }

// Sugar returns the current sugar level.
func (i *Inventory) Sugar() int { return i.Snapshot().Sugar }

// Chocolate returns the current chocolate level.
func (i *Inventory) Chocolate() int { return i.Snapshot().Chocolate }

// Snapshot returns a copy of all four counters taken under one lock.
func (i *Inventory) Snapshot() Stock {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.stock
}

// String renders the stock one ingredient per line, e.g. "Coffee: 15".
func (i *Inventory) String() string {
	s := i.Snapshot()
	var b strings.Builder
	fmt.Fprintf(&b, "Coffee: %d\n", s.Coffee)
	fmt.Fprintf(&b, "Milk: %d\n", s.Milk)
	fmt.Fprintf(&b, "Sugar: %d\n", s.Sugar)
	fmt.Fprintf(&b, "Chocolate: %d\n", s.Chocolate)
	return b.String()
}

// publish sets the level gauges. Mutators call it while holding the lock so
// the gauges follow the order of mutations.
func publish(s Stock) {
	for _, ing := range Ingredients() {
		ingredientLevel.WithLabelValues(string(ing)).Set(float64(s.Get(ing)))
	}
}

func invalidAmount(ing Ingredient, value string, cause error) error {
	return cmerrors.WrapWithContext(cmerrors.ErrCodeInventory,
		fmt.Sprintf("invalid %s amount", ing), cause, map[string]any{
			"ingredient": string(ing),
			"value":      value,
		})
}
