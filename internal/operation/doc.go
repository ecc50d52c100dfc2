// Package operation builds and submits calls to named server-side
// operations. An action may have side effects; a function is presumed not
// to. The invoker validates every parameter against the wire-type registry,
// assembles the request envelope the remote endpoint expects and hands it
// to an Endpoint implementation; parsing of the response body is
// best-effort, falling back to the raw bytes.
//
// Requests are built fresh per call and discarded after submission. The
// invoker holds no mutable state of its own.
package operation
