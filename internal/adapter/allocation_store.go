package adapter

import (
	"encoding/json"
	"fmt"
	"os"

	m "github.com/solderless/breadboard/internal/model"
)

// AllocationStore persists and retrieves placement allocations so a run
// can be re-viewed without recomputing it.
type AllocationStore interface {
	Save(path m.Path, alloc m.Allocation) error
	Load(path m.Path) (m.Allocation, error)
}

type allocationStore struct{}

// NewAllocationStore constructs an AllocationStore implementation.
func NewAllocationStore() AllocationStore {
	return &allocationStore{}
}

func (s *allocationStore) Save(path m.Path, alloc m.Allocation) error {
	data, err := json.MarshalIndent(alloc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal allocation: %w", err)
	}

	if err := os.WriteFile(string(path), append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write allocation: %w", err)
	}

	return nil
}

func (s *allocationStore) Load(path m.Path) (m.Allocation, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.Allocation{}, fmt.Errorf("read allocation: %w", err)
	}

	var alloc m.Allocation
	if err := json.Unmarshal(data, &alloc); err != nil {
		return m.Allocation{}, fmt.Errorf("parse allocation %s: %w", path, err)
	}

	return alloc, nil
}
