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

package amount

import (
	"errors"
	"fmt"
	"strconv"
)

// Error types for amount parsing failures
var (
	ErrEmpty      = errors.New("amount is empty")
	ErrNonNumeric = errors.New("amount is not a whole number")
	ErrNegative   = errors.New("amount cannot be negative")
)

// Parse converts the textual representation of an ingredient quantity or a
// price into a non-negative int. Surrounding whitespace is not trimmed and
// fractional values are rejected, so " 3" and "1.5" both fail.
func Parse(s string) (int, error) {
	if s == "" {
		return 0, ErrEmpty
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNonNumeric, s)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegative, n)
	}

	return n, nil
}

// MustParse parses s and panics if parsing fails.
// Only use this for hardcoded strings or in tests.
func MustParse(s string) int {
	n, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse: %v", err))
	}
	return n
}

// ParseAll parses every value in order and returns the parsed amounts only if
// all of them are valid. On failure it returns the index of the first
// offending value alongside the error.
func ParseAll(values ...string) ([]int, int, error) {
	out := make([]int, len(values))
	for i, v := range values {
		n, err := Parse(v)
		if err != nil {
			return nil, i, err
		}
		out[i] = n
	}
	return out, -1, nil
}
