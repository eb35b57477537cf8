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

package recipe

import (
	"encoding/json"
	"strconv"

	"github.com/vendingworks/coffeemaker/pkg/amount"
	cmerrors "github.com/vendingworks/coffeemaker/pkg/errors"
)

// Field names used in error context and serialized output.
const (
	FieldCoffee    = "coffee"
	FieldMilk      = "milk"
	FieldSugar     = "sugar"
	FieldChocolate = "chocolate"
	FieldPrice     = "price"
)

// Recipe is a named drink formula: how much of each ingredient it consumes
// and what it costs. The zero value is an unnamed recipe that needs nothing
// and costs nothing.
//
// A Recipe is not safe for concurrent mutation. The recipe book stores its own
// copies, so a recipe may be reused or changed after it has been added.
type Recipe struct {
	name      string
	coffee    int
	milk      int
	sugar     int
	chocolate int
	price     int
}

// Info is the exported, serializable view of a Recipe.
type Info struct {
	Name      string `json:"name" yaml:"name"`
	Coffee    int    `json:"coffee" yaml:"coffee"`
	Milk      int    `json:"milk" yaml:"milk"`
	Sugar     int    `json:"sugar" yaml:"sugar"`
	Chocolate int    `json:"chocolate" yaml:"chocolate"`
	Price     int    `json:"price" yaml:"price"`
}

// New returns an empty recipe with the given name.
func New(name string) *Recipe {
	return &Recipe{name: name}
}

// Build assembles a recipe from textual values, applying each setter in
// order. It returns the first setter error, so a partially populated recipe
// is never returned.
func Build(name, coffee, milk, sugar, chocolate, price string) (*Recipe, error) {
	r := New(name)
	setters := []struct {
		set   func(string) error
		value string
	}{
		{r.SetAmtCoffee, coffee},
		{r.SetAmtMilk, milk},
		{r.SetAmtSugar, sugar},
		{r.SetAmtChocolate, chocolate},
		{r.SetPrice, price},
	}
	for _, s := range setters {
		if err := s.set(s.value); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Name returns the recipe name.
func (r *Recipe) Name() string { return r.name }

// SetName sets the recipe name.
func (r *Recipe) SetName(name string) { r.name = name }

// AmtCoffee returns the units of coffee the recipe consumes.
func (r *Recipe) AmtCoffee() int { return r.coffee }

// AmtMilk returns the units of milk the recipe consumes.
func (r *Recipe) AmtMilk() int { return r.milk }

// AmtSugar returns the units of sugar the recipe consumes.
func (r *Recipe) AmtSugar() int { return r.sugar }

// AmtChocolate returns the units of chocolate the recipe consumes.
func (r *Recipe) AmtChocolate() int { return r.chocolate }

// Price returns the recipe price.
func (r *Recipe) Price() int { return r.price }

// SetAmtCoffee parses and stores the coffee amount.
func (r *Recipe) SetAmtCoffee(s string) error { return r.set(&r.coffee, FieldCoffee, s) }

// SetAmtMilk parses and stores the milk amount.
func (r *Recipe) SetAmtMilk(s string) error { return r.set(&r.milk, FieldMilk, s) }

// SetAmtSugar parses and stores the sugar amount.
func (r *Recipe) SetAmtSugar(s string) error { return r.set(&r.sugar, FieldSugar, s) }

// SetAmtChocolate parses and stores the chocolate amount.
func (r *Recipe) SetAmtChocolate(s string) error { return r.set(&r.chocolate, FieldChocolate, s) }

// SetPrice parses and stores the price.
func (r *Recipe) SetPrice(s string) error { return r.set(&r.price, FieldPrice, s) }

// set leaves *dst untouched unless s parses cleanly.
func (r *Recipe) set(dst *int, field, s string) error {
	n, err := amount.Parse(s)
	if err != nil {
		return cmerrors.WrapWithContext(cmerrors.ErrCodeRecipe,
			"invalid "+field+" amount", err, map[string]any{
				"recipe": r.name,
				"field":  field,
				"value":  s,
			})
	}
	*dst = n
	return nil
}

// Clone returns an independent copy of the recipe.
func (r *Recipe) Clone() *Recipe {
	if r == nil {
		return nil
	}
	c := *r
	return &c
}

// Equal reports whether two recipes share a name. Recipe identity is the name.
func (r *Recipe) Equal(other *Recipe) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.name == other.name
}

// String returns the recipe name.
func (r *Recipe) String() string {
	return r.name
}

// Info returns the serializable view of the recipe.
func (r *Recipe) Info() Info {
	return Info{
		Name:      r.name,
		Coffee:    r.coffee,
		Milk:      r.milk,
		Sugar:     r.sugar,
		Chocolate: r.chocolate,
		Price:     r.price,
	}
}

// FromInfo builds a recipe from its serialized view. Negative values in info
// are rejected the same way the textual setters reject them.
func FromInfo(info Info) (*Recipe, error) {
	return Build(info.Name,
		strconv.Itoa(info.Coffee), strconv.Itoa(info.Milk), strconv.Itoa(info.Sugar),
		strconv.Itoa(info.Chocolate), strconv.Itoa(info.Price))
}

// MarshalJSON implements json.Marshaler.
func (r *Recipe) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Info())
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *Recipe) UnmarshalJSON(data []byte) error {
	var info Info
	if err := json.Unmarshal(data, &info); err != nil {
		return err
	}
	parsed, err := FromInfo(info)
	if err != nil {
		return err
	}
	*r = *parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (r *Recipe) MarshalYAML() (any, error) {
	return r.Info(), nil
}
