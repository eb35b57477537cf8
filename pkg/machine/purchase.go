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
	"time"

	"github.com/google/uuid"
)

// Outcome classifies how a purchase ended. Only OutcomeDispensed consumes
// ingredients; every other outcome refunds the full payment.
type Outcome string

const (
	OutcomeDispensed         Outcome = "dispensed"
	OutcomeInvalidSelection  Outcome = "invalid_selection"
	OutcomeInvalidPayment    Outcome = "invalid_payment"
	OutcomeInsufficientFunds Outcome = "insufficient_funds"
	OutcomeInsufficientStock Outcome = "insufficient_stock"
)

// Outcomes lists every purchase outcome.
func Outcomes() []Outcome {
	return []Outcome{
		OutcomeDispensed,
		OutcomeInvalidSelection,
		OutcomeInvalidPayment,
		OutcomeInsufficientFunds,
		OutcomeInsufficientStock,
	}
}

// Receipt describes a finished purchase.
type Receipt struct {
	ID        string    `json:"id" yaml:"id"`
	Outcome   Outcome   `json:"outcome" yaml:"outcome"`
	Selection int       `json:"selection" yaml:"selection"`
	Recipe    string    `json:"recipe,omitempty" yaml:"recipe,omitempty"`
	Paid      int       `json:"paid" yaml:"paid"`
	Price     int       `json:"price" yaml:"price"`
	Change    int       `json:"change" yaml:"change"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
}

// Dispensed reports whether a drink was made.
func (r Receipt) Dispensed() bool {
	return r.Outcome == OutcomeDispensed
}

// MakeCoffee buys the recipe in slot selection with payment and returns the
// coins handed back: payment minus the price when a drink is made, otherwise
// the full payment.
func (m *Machine) MakeCoffee(selection, payment int) int {
	return m.Purchase(selection, payment).Change
}

// Purchase runs the purchase workflow:
//
//  1. an out-of-range or empty selection refunds the payment;
//  2. a payment below the recipe price refunds the payment;
//  3. if the inventory cannot cover the recipe the payment is refunded;
//  4. otherwise the ingredients are consumed and the change is returned.
//
// Ingredients are only consumed in step 4.
func (m *Machine) Purchase(selection, payment int) Receipt {
	rec := Receipt{
		ID:        uuid.NewString(),
		Selection: selection,
		Paid:      payment,
		Change:    payment,
		Timestamp: time.Now().UTC(),
	}

	r, ok := m.book.Recipe(selection)
	switch {
	case !ok:
		rec.Outcome = OutcomeInvalidSelection
	case payment < 0:
		rec.Recipe, rec.Price = r.Name(), r.Price()
		rec.Outcome = OutcomeInvalidPayment
	case payment < r.Price():
		rec.Recipe, rec.Price = r.Name(), r.Price()
		rec.Outcome = OutcomeInsufficientFunds
	case !m.inventory.UseIngredients(r):
		rec.Recipe, rec.Price = r.Name(), r.Price()
		rec.Outcome = OutcomeInsufficientStock
	default:
		rec.Recipe, rec.Price = r.Name(), r.Price()
		rec.Outcome = OutcomeDispensed
		rec.Change = payment - r.Price()
	}

	m.record(rec)
	return rec
}

func (m *Machine) record(rec Receipt) {
	purchasesTotal.WithLabelValues(string(rec.Outcome)).Inc()

	if rec.Dispensed() {
		revenueTotal.Add(float64(rec.Price))
		m.logger.Info("coffee dispensed",
			"receipt", rec.ID,
			"recipe", rec.Recipe,
			"paid", rec.Paid,
			"change", rec.Change,
		)
		return
	}

	m.logger.Debug("purchase refunded",
		"receipt", rec.ID,
		"outcome", rec.Outcome,
		"selection", rec.Selection,
		"recipe", rec.Recipe,
		"paid", rec.Paid,
	)
}
