// Package worker provides a bounded pool for blocking disk IO.
//
// Page loaders must not read files on the goroutine that dispatched the
// request. They hand the blocking step to the pool and deliver their
// response only after the pool signals completion, a post-and-reply
// pattern:
//
//	pool.PostAndReply(
//		func() { h.loadFile() },  // worker goroutine
//		func() { h.respond(cb) }, // calling goroutine
//	)
//
// The reply always runs on the goroutine that posted, so per-request state
// never needs locking: the worker step and the reply step are strictly
// ordered.
package worker
