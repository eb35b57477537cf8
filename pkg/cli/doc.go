// Package cli implements the coffeemaker command-line interface.
//
// # Commands
//
// serve - Serve the machine's HTTP API:
//
//	coffeemaker serve [--file menu.yaml] [--port 8080] [--capacity 3]
//
// menu validate - Check that a menu file loads into a machine:
//
//	coffeemaker menu validate --file menu.yaml [--strict]
//
// menu show - Render the recipe slots a menu produces:
//
//	coffeemaker menu show --file menu.yaml [--format table|json|yaml]
//
// brew - Buy one drink from a machine loaded with a menu:
//
//	coffeemaker brew --file menu.yaml --selection 1 --payment 100
//
// inventory - Show ingredient levels after a menu's restock:
//
//	coffeemaker inventory [--file menu.yaml]
//
// Every command starts from a fresh in-memory machine; nothing is persisted
// between invocations.
//
// # Environment Variables
//
//	LOG_LEVEL         Set logging verbosity (debug, info, warn, error)
//	COFFEEMAKER_MENU  Default for --file
//	PORT              Default for serve --port
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/vendingworks/coffeemaker/pkg/cli.version=1.0.0'"
package cli
