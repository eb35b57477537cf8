// Package errors provides structured error types for better observability
// and programmatic error handling across the coffee maker.
//
// Malformed input to a recipe field surfaces as ErrCodeRecipe and malformed
// restock input as ErrCodeInventory. Business rejections such as a full recipe
// book or insufficient funds are not errors and never use this package.
//
// Example usage:
//
//	if err := r.SetPrice("abc"); errors.HasCode(err, errors.ErrCodeRecipe) {
//	    // keep the previous price
//	}
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeInventory,
//	    "invalid milk amount",
//	    cause,
//	    map[string]any{
//	        "ingredient": "milk",
//	        "value": "-1",
//	    },
//	)
package errors
