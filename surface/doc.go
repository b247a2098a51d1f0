// Package surface holds display sinks for the render engine: an in-memory
// recorder, a terminal printer, a markdown printer and an HTML document
// shared with live browser clients.
package surface
