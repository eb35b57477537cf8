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

package defaults

// Machine defaults.
const (
	// InitialStock is the number of units of each ingredient a new
	// inventory starts with.
	InitialStock = 15

	// RecipeBookCapacity is the number of recipe slots in a new recipe book.
	RecipeBookCapacity = 3

	// UniqueRecipeNames controls whether a recipe book rejects a second
	// recipe with a name already in use.
	UniqueRecipeNames = true
)
