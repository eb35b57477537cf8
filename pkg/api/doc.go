// Package api serves a coffee machine over HTTP.
//
// Usage:
//
//	if err := api.Serve(); err != nil {
//	    log.Fatalf("server error: %v", err)
//	}
//
// Run accepts a preconfigured machine, e.g. one loaded from a menu file,
// plus server options. Lifecycle, middleware, health, and metrics come from
// pkg/server.
//
// # Endpoints
//
//	GET    /v1/recipes         slot list, null for empty slots
//	POST   /v1/recipes         add; 201, 409 CONFLICT, 400 RECIPE_INVALID
//	PUT    /v1/recipes/{slot}  edit, slot keeps its name; 404 when empty
//	DELETE /v1/recipes/{slot}  delete; 404 when empty
//	GET    /v1/inventory       ingredient levels
//	POST   /v1/inventory       restock; 400 INVENTORY_INVALID
//	POST   /v1/purchases       always 200 with a receipt
//
// Bodies are JSON, or YAML when Content-Type mentions yaml. Amounts may be
// numbers or strings:
//
//	curl -X POST localhost:8080/v1/recipes \
//	  -d '{"name":"Mocha","coffee":3,"milk":1,"sugar":1,"chocolate":"2","price":75}'
//
//	curl -X POST localhost:8080/v1/purchases -d '{"selection":0,"payment":100}'
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/vendingworks/coffeemaker/pkg/api.version=1.0.0'"
package api
