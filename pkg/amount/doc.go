// Package amount parses the textual quantities used throughout the coffee
// maker. Recipe fields, restock requests and prices all arrive as text and
// must resolve to non-negative whole numbers.
//
// Failures wrap one of ErrEmpty, ErrNonNumeric or ErrNegative so callers can
// use errors.Is to tell them apart:
//
//	n, err := amount.Parse("-1")
//	if errors.Is(err, amount.ErrNegative) {
//	    // reject
//	}
package amount
