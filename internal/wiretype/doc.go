// Package wiretype holds the vocabulary the remote operation endpoint uses
// to deserialize parameter values: for every parameter kind, the wire type
// name, its structural code (primitive, collection or reference) and the
// runtime shape a value of that kind must have.
//
// The registry is immutable after construction. Reference kinds are
// specialized to a concrete entity type per call, on a value copy of the
// descriptor, so one in-flight invocation can never observe another's
// specialization.
package wiretype
