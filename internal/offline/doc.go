// Package offline decides, per referenced entity type, whether a record
// write goes through the connected Web API path or the disconnected local
// path.
//
// The decision hinges on a tri-state capability flag: unknown until the
// platform's disconnected-availability check has been queried, then pinned
// to available or unavailable for the resolver's lifetime. The query runs
// at most once; an indeterminate answer fails the write without touching
// the flag, and an unavailable answer fails the write outright — there is
// no fallback to the connected path while disconnected, and nothing here
// retries.
package offline
