// Package params defines the dynamically typed parameters callers hand to
// the operation invoker, and the validator that checks each value's runtime
// shape against the wire-type registry before anything is put on the wire.
package params
