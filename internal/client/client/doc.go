// Package client contains the console's building blocks for talking to the
// directory backend.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface): admin
//     login, paginated user listing, single-record fetch, create, update and
//     the country reference lookup.
//  2. A concrete HTTP/JSON implementation (see HTTPClient). Query strings are
//     encoded with go-querystring; non-2xx replies become *APIError.
//  3. The request decorator (Decorate) and a RoundTripper (Transport) that
//     applies it to every outgoing request together with the session token.
//  4. Local persistence bootstrap (InitDatabase, RunMigrations) wiring an
//     SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match with
// errors.Is: ErrUnavailable, ErrUnauthorized, ErrNotFound, ErrUnexpectedStatus.
// The backend's own message, when present, is available through MessageOf.
//
// Concurrency & Contexts
//
// HTTPClient and Transport are safe for concurrent use. All operations accept
// context.Context; no timeouts are applied beyond what the context carries.
//
// See Also
//
//   - Interface:  Client
//   - HTTP impl:  HTTPClient
//   - Decorator:  Decorate, Transport
//   - DB helpers: InitDatabase, RunMigrations
package client
