package export

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dshills/floorplangen/pkg/room"
)

// ExportJSON serializes a solved layout to indented JSON.
func ExportJSON(layout *room.Layout) ([]byte, error) {
	if layout == nil {
		return nil, fmt.Errorf("export: layout cannot be nil")
	}
	return json.MarshalIndent(layout, "", "  ")
}

// ExportJSONCompact serializes a solved layout to JSON without indentation,
// suitable for storage or transmission.
func ExportJSONCompact(layout *room.Layout) ([]byte, error) {
	if layout == nil {
		return nil, fmt.Errorf("export: layout cannot be nil")
	}
	return json.Marshal(layout)
}

// SaveJSONToFile exports layout to an indented JSON file with 0644
// permissions.
func SaveJSONToFile(layout *room.Layout, filepath string) error {
	data, err := ExportJSON(layout)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath, data, 0644)
}
