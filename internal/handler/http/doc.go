// Package http implements the HTTP surface of the landing service.
//
// It serves the landing page rendered from the current configuration
// snapshot, accepts registration submits and exposes small diagnostic
// endpoints. Cross-cutting concerns such as request tracing, access logging,
// response compression and panic recovery are handled by middleware before
// requests reach the landing controller.
package http
