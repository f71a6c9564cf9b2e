package orderer

import (
	"sort"

	"github.com/dshills/floorplangen/pkg/room"
)

// Order returns a permutation of specs sorted by decreasing
// ConstraintCount. Ties preserve the specs' original input order: each
// spec's index is stamped on entry via Spec.WithIndex and used as an
// explicit secondary key, since sort.SliceStable alone already guarantees
// this but a secondary key makes the ordering independent of which sort
// the implementation happens to use.
func Order(specs []room.Spec) []room.Spec {
	ordered := make([]room.Spec, len(specs))
	for i, s := range specs {
		ordered[i] = s.WithIndex(i)
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		ci, cj := ordered[i].ConstraintCount(), ordered[j].ConstraintCount()
		if ci != cj {
			return ci > cj
		}
		return ordered[i].Index() < ordered[j].Index()
	})

	return ordered
}
