package floorplan

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dshills/floorplangen/pkg/geometry"
	"github.com/dshills/floorplangen/pkg/room"
)

// Project is the on-disk, YAML-loadable bundle of a site boundary and its
// room list: the counterpart of a single Solve call's input.
type Project struct {
	// Label is free text used in exports and logs; it has no bearing on
	// the search itself.
	Label string `yaml:"label" json:"label"`

	// Seed is carried for compatibility with hosts that persist one
	// alongside a project (e.g. for correlating with an unrelated
	// random-content generation step downstream). The engine itself is
	// fully deterministic and never reads it; Solve derives its own RunID
	// from the boundary and room list instead. Round-tripped by
	// LoadProject/SaveProject so a host that sets it never loses it.
	Seed uint64 `yaml:"seed,omitempty" json:"seed,omitempty"`

	// Boundary is the site's bounding rectangle.
	Boundary geometry.Boundary `yaml:"boundary" json:"boundary"`

	// Rooms is the list of per-room requirements.
	Rooms []room.Spec `yaml:"rooms" json:"rooms"`
}

// LoadProject reads and parses a YAML project file. It does not validate
// the result against the full InvalidInput rules (duplicate ids, disjoint
// adjacency sets, etc.) — call Validate, or simply call Solve, which
// validates before searching.
func LoadProject(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, room.NewError(room.InvalidInput, "reading project file: %v", err)
	}

	var p Project
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, room.NewError(room.InvalidInput, "parsing YAML: %v", err)
	}

	return &p, nil
}

// Validate checks the project's boundary and each room spec in isolation.
// It does not check cross-room properties (duplicate ids); Solve checks
// those through validateInput.
func (p *Project) Validate() error {
	if err := p.Boundary.Validate(); err != nil {
		return room.NewError(room.InvalidInput, "%v", err)
	}
	for _, r := range p.Rooms {
		if err := r.Validate(); err != nil {
			return room.NewError(room.InvalidInput, "%v", err)
		}
	}
	return nil
}

// SaveProject writes p back out as YAML, for round-tripping a
// programmatically-built project (e.g. one assembled by a host's JSON
// editor) back to disk.
func SaveProject(p *Project, path string) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshaling project: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
