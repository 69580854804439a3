// Package content defines the data-source contract for internal pages.
//
// Each internal hostname (lumen://urls, lumen://credits, ...) is backed by
// one Source. The Registry is the dispatch table from hostname to Source;
// the HTTP layer resolves a request's host, starts the request, and waits
// for the single reply.
//
// Sources come in two shapes:
//   - synchronous: assembled from memory, reply before StartRequest returns
//   - asynchronous: a per-request handler owns the disk or component step
//     and replies from its own goroutine once the worker pool finishes
//
// Security policy hooks (PolicyOverrider, OriginAllower) are optional
// interfaces; the HTTP layer type-asserts them when building response
// headers.
package content
