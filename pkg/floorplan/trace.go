package floorplan

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"sort"

	"github.com/dshills/floorplangen/pkg/geometry"
	"github.com/dshills/floorplangen/pkg/room"
)

// DeriveRunID computes a deterministic identifier for a call's input, for
// correlating logs and exports across a call. It has no bearing on the
// search itself — the engine has no randomness to seed — it exists purely
// so that re-running the same input twice (e.g. once from a CLI, once from
// a test) can be recognised as "the same run" in a log stream.
//
// SHA-256 over a canonical encoding of the boundary and each room's id and
// area, truncated to 16 hex characters.
func DeriveRunID(rooms []room.Spec, boundary geometry.Boundary) string {
	h := sha256.New()

	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(boundary.Width*1000))
	h.Write(buf[:])
	binary.BigEndian.PutUint64(buf[:], uint64(boundary.Height*1000))
	h.Write(buf[:])

	sorted := make([]room.Spec, len(rooms))
	copy(sorted, rooms)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	for _, r := range sorted {
		h.Write([]byte(r.ID))
		binary.BigEndian.PutUint64(buf[:], uint64(r.MinArea*1000))
		h.Write(buf[:])
	}

	return hex.EncodeToString(h.Sum(nil))[:16]
}
