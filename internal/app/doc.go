// Package app wires a formbridge invocation together: it configures the
// logger, loads the client configuration, builds the Web API client, the
// wire-type registry and the invoker, parses the command line's parameter
// literals and performs exactly one operation call.
package app
