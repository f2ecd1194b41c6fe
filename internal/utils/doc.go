// Package utils provides general-purpose helpers shared by the adapters,
// services and handlers: the resty HTTP client wrapper, JSON response
// writing, HMAC signing and phone number normalisation.
package utils
