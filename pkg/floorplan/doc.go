// Package floorplan is the narrow interface by which a caller supplies room
// specifications and a site boundary and receives a solved Layout (or a
// structured failure). It owns input validation, YAML project loading, run
// identification, and elapsed-time measurement; it holds no mutable state
// between calls and performs no work the solver itself could do.
package floorplan
