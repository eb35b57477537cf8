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

package recipebook

import (
	"log/slog"
	"sync"

	"github.com/vendingworks/coffeemaker/pkg/defaults"
	"github.com/vendingworks/coffeemaker/pkg/recipe"
)

// Book is a fixed-capacity catalog of recipes addressed by slot index.
// Slots keep their index for their whole life: deleting a recipe empties its
// slot without shifting the others. The book stores copies of the recipes it
// is given, so callers may keep mutating their own values.
//
// Book is safe for concurrent use.
type Book struct {
	mu          sync.RWMutex
	slots       []*recipe.Recipe
	uniqueNames bool
}

// Option configures a Book.
type Option func(*Book)

// WithCapacity sets the number of slots. Values below one are ignored.
func WithCapacity(n int) Option {
	return func(b *Book) {
		if n < 1 {
			return
		}
		b.slots = make([]*recipe.Recipe, n)
	}
}

// WithUniqueNames controls whether AddRecipe rejects a recipe whose name is
// already in the book.
func WithUniqueNames(unique bool) Option {
	return func(b *Book) {
		b.uniqueNames = unique
	}
}

// New returns an empty book with defaults.RecipeBookCapacity slots.
func New(opts ...Option) *Book {
	b := &Book{
		slots:       make([]*recipe.Recipe, defaults.RecipeBookCapacity),
		uniqueNames: defaults.UniqueRecipeNames,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Capacity returns the number of slots.
func (b *Book) Capacity() int {
	return len(b.slots)
}

// AddRecipe stores a copy of r in the first empty slot. It returns false when
// r is nil, when every slot is taken, or when name uniqueness is enabled and
// another slot already holds a recipe with the same name.
func (b *Book) AddRecipe(r *recipe.Recipe) bool {
	if r == nil {
		return false
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	free := -1
	for i, slot := range b.slots {
		if slot == nil {
			if free < 0 {
				free = i
			}
			continue
		}
		if b.uniqueNames && slot.Equal(r) {
			slog.Debug("recipe rejected, duplicate name", "name", r.Name(), "slot", i)
			return false
		}
	}

	if free < 0 {
		slog.Debug("recipe rejected, book full", "name", r.Name(), "capacity", len(b.slots))
		return false
	}

	b.slots[free] = r.Clone()
	return true
}

// EditRecipe replaces the recipe in an occupied slot. The slot keeps its
// existing name whatever name r carries; r itself is not modified. It returns
// the slot's name and true, or "" and false when index is out of range, the
// slot is empty or r is nil.
func (b *Book) EditRecipe(index int, r *recipe.Recipe) (string, bool) {
	if r == nil {
		return "", false
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	current := b.at(index)
	if current == nil {
		return "", false
	}

	name := current.Name()
	replacement := r.Clone()
	replacement.SetName(name)
	b.slots[index] = replacement
	return name, true
}

// DeleteRecipe empties a slot and returns the name of the recipe it held.
// It returns "" and false when index is out of range or the slot is empty.
func (b *Book) DeleteRecipe(index int) (string, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	current := b.at(index)
	if current == nil {
		return "", false
	}

	b.slots[index] = nil
	return current.Name(), true
}

// Recipe returns a copy of the recipe in a slot.
func (b *Book) Recipe(index int) (*recipe.Recipe, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	current := b.at(index)
	if current == nil {
		return nil, false
	}
	return current.Clone(), true
}

// Recipes returns every slot in order, with nil for empty slots. The
// returned recipes are copies.
func (b *Book) Recipes() []*recipe.Recipe {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]*recipe.Recipe, len(b.slots))
	for i, slot := range b.slots {
		out[i] = slot.Clone()
	}
	return out
}

// Len returns the number of occupied slots.
func (b *Book) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	n := 0
	for _, slot := range b.slots {
		if slot != nil {
			n++
		}
	}
	return n
}

// at returns the recipe stored at index or nil. Callers hold b.mu.
func (b *Book) at(index int) *recipe.Recipe {
	if index < 0 || index >= len(b.slots) {
		return nil
	}
	return b.slots[index]
}
