// Package webapi is the connected transport: it submits operation requests
// to the platform's remote-operation endpoint and implements the connected
// record store over the platform's data endpoint.
//
// Paths follow the platform convention: operations POST to /api/operations,
// records live at /api/data/<entityType>(<id>). All request/response bodies
// are JSON.
package webapi
