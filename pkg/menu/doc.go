// Package menu loads menu files and applies them to a machine.
//
// A menu file is YAML or JSON listing recipes in slot order plus an optional
// restock. Amounts may be written as numbers or strings; strings are passed
// through the recipe and inventory setters unchanged so that malformed
// values are reported exactly as a keypad entry would be.
//
//	recipes:
//	  - name: Coffee
//	    coffee: 3
//	    milk: 1
//	    sugar: 1
//	    price: 50
//	restock:
//	  coffee: "4"
//	  chocolate: 3
package menu
