// Package candidate enumerates every legal (size, position) rectangle for a
// single room spec within a boundary. It knows nothing about other rooms or
// scoring; filtering already-placed geometry against a candidate is the
// solver's job.
package candidate
