// Package adapter contains the filesystem adapters for the breadboard CLI.
package adapter

import (
	"encoding/json"
	"fmt"
	"os"

	m "github.com/solderless/breadboard/internal/model"
)

// BOMStore loads bills of materials produced by the upstream recognizer.
// It hides direct os access so the workflow logic can be tested without
// touching the disk.
type BOMStore interface {
	Load(path m.Path) (m.BOM, error)
}

type bomStore struct{}

// NewBOMStore constructs the local-filesystem BOMStore.
func NewBOMStore() BOMStore {
	return &bomStore{}
}

// Load reads a BOM JSON file. Component type strings are normalized to the
// canonical enumeration; everything else is passed through untouched.
func (s *bomStore) Load(path m.Path) (m.BOM, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.BOM{}, fmt.Errorf("read bom: %w", err)
	}

	var bom m.BOM
	if err := json.Unmarshal(data, &bom); err != nil {
		return m.BOM{}, fmt.Errorf("parse bom %s: %w", path, err)
	}

	for i := range bom.Entries {
		bom.Entries[i].Type = m.ParseComponentType(string(bom.Entries[i].Type))
	}

	return bom, nil
}
