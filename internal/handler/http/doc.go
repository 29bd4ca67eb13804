// Package http implements the HTTP transport layer of the user directory.
//
// Every request runs through the same pipeline: trace id, auth resolver,
// response mapper, then the route's guards and its handler. Handlers and
// guards never write error bodies themselves; they attach an [*Error] to
// the response and the mapper renders the JSON envelope and logs one line.
package http
