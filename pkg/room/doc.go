// Package room defines the Room Specification data model: the per-room
// architectural requirements (minimum area, required/forbidden neighbours,
// exterior-wall membership), the result of placing one room, and the
// complete Layout a solved floor plan produces. Every other core package
// (candidate, orderer, scorer, solver) is built against these types.
package room
