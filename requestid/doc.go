// Package requestid threads a per-request correlation identifier through
// context.Context, so every error converted at the service boundary can be
// tied back to the request that produced it.
package requestid
