// Package server provides the HTTP server underneath the coffeemaker API.
//
// The server is generic: callers register handlers keyed by ServeMux pattern
// and every handler runs inside the same middleware chain.
//
// # Architecture
//
//   - Rate limiting using token bucket algorithm (golang.org/x/time/rate)
//   - Request ID tracking (X-Request-Id, UUID)
//   - API version negotiation (Accept: application/vnd.coffeemaker.v1+json)
//   - Per-request context deadline (Config.HandlerTimeout)
//   - Panic recovery
//   - Prometheus request metrics, exposed at /metrics
//   - Graceful shutdown on SIGINT/SIGTERM
//   - Health and readiness probes
//
// # Usage
//
//	s := server.New(
//	    server.WithName("coffeemakerd"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "GET /v1/recipes": listRecipes,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// # Configuration
//
// NewConfig applies defaults and these environment overrides:
//
//	PORT                      listen port (default 8080)
//	SHUTDOWN_TIMEOUT_SECONDS  graceful shutdown bound (default 30)
//
// # System Endpoints
//
//	GET /         server name, version, readiness, and route listing
//	GET /health   liveness, always 200
//	GET /ready    200 once serving, 503 before start and during shutdown
//	GET /metrics  Prometheus exposition
//
// # Error Handling
//
// Every error is written as an ErrorResponse:
//
//	{
//	  "code": "CONFLICT",
//	  "message": "recipe book is full or name already in use",
//	  "details": {"name": "Mocha"},
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2025-12-22T12:00:00Z",
//	  "retryable": false
//	}
//
// WriteErrorFromErr derives status and retryability from a StructuredError
// code via HTTPStatusFromCode. Rate-limited requests receive 429 with a
// Retry-After header.
package server
