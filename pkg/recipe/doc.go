// Package recipe defines the drinks a coffee maker can dispense.
//
// A Recipe holds a name, four ingredient amounts (coffee, milk, sugar,
// chocolate) and a price. Every numeric field is set from text and must parse
// as a non-negative whole number; anything else is rejected with an error
// coded errors.ErrCodeRecipe and the field keeps its previous value.
//
// Fields are independent. There is no cross-field validation, so a recipe that
// needs no ingredients at all is valid.
//
// # Usage
//
//	r := recipe.New("Coffee")
//	if err := r.SetAmtCoffee("3"); err != nil {
//	    return err
//	}
//	_ = r.SetAmtMilk("1")
//	_ = r.SetAmtSugar("1")
//	_ = r.SetAmtChocolate("0")
//	_ = r.SetPrice("50")
//
// Or in one step:
//
//	r, err := recipe.Build("Coffee", "3", "1", "1", "0", "50")
package recipe
