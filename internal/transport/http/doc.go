// Package http implements the HTTP handlers for the layoffs report API.
// Handlers stay thin: parse the request, call the service layer, render the
// response. Service errors are transformed into RFC 7807 problem responses
// by the shared error handler.
package http
