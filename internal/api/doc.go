// Package api is the HTTP client for the moyn blogging service.
//
// A Client is bound to one config.Session and sends every request with the
// session's bearer token, JSON bodies and a fresh X-Request-ID. Each call is
// a single round trip with no retries.
//
// Non-2xx responses are returned as *Error values that unwrap to the
// services markers:
//
//	401, 403       services.ErrUnauthorized
//	404            services.ErrNotFound
//	400, 409, 422  services.ErrValidation
//	other          services.ErrServer
//
// Network failures wrap services.ErrTransport.
package api
