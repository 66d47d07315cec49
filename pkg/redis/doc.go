// Package redis provides a retrying Connect helper and a readiness
// probe over the go-redis client. The quota package uses it for its
// Redis-backed reservation counters.
package redis
