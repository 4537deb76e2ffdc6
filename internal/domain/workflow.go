// Package domain implements the placement allocator: it turns a BOM into
// concrete breadboard placements and power-rail jumpers.
package domain

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/solderless/breadboard/internal/capacitor"
	"github.com/solderless/breadboard/internal/grid"
	m "github.com/solderless/breadboard/internal/model"
	"github.com/solderless/breadboard/internal/resistor"
)

// decodeWorkers bounds the concurrent marking-validation pass.
const decodeWorkers = 4

// PlaceArgs carries one allocation request.
type PlaceArgs struct {
	BOM   m.BOM
	Board m.BoardSize
}

// Workflow defines the placement operations offered to the CLI layer.
type Workflow interface {
	Place(args PlaceArgs) (m.Allocation, error)
}

type workflow struct{}

// NewWorkflow creates a Workflow instance.
func NewWorkflow() Workflow {
	return &workflow{}
}

// Place allocates every BOM instance onto the selected board in input
// order. Codec failures are local: the failing instance is recorded and
// the rest of the BOM still places. The only hard error is an unknown
// board size.
func (w *workflow) Place(args PlaceArgs) (m.Allocation, error) {
	layout, err := grid.LayoutFor(args.Board)
	if err != nil {
		return m.Allocation{}, err
	}

	decodeErrs := w.validateMarkings(args.BOM)

	a := newAllocator(args.Board, layout)

	for i, entry := range args.BOM.Entries {
		if err := entry.Validate(); err != nil {
			a.fail(entryLabel(entry, i), err.Error())

			continue
		}

		for _, designator := range entry.Designators {
			w.placeInstance(a, designator, entry, decodeErrs[i])
		}
	}

	if args.BOM.Power != nil && args.BOM.HasActiveDevice() {
		a.placeJumpers()
	}

	return a.alloc, nil
}

// placeInstance dispatches one designator to its placement variant.
func (w *workflow) placeInstance(a *allocator, designator string, entry m.ComponentSpec, decodeErr error) {
	if decodeErr != nil {
		a.fail(designator, decodeErr.Error())

		return
	}

	switch entry.Type {
	case m.TypeResistor, m.TypeCapacitor, m.TypeDiode, m.TypeLED:
		a.placeTwoTerminal(designator, entry.Type)
	case m.TypeIC:
		a.placeDIP(designator, entry.Value)
	case m.TypeTransistor:
		a.note("transistor %s has no breadboard placement variant; skipped", designator)
	case m.TypeSwitch, m.TypeJack, m.TypeFootswitch, m.TypePotentiometer, m.TypeOther:
		a.note("off-board component %s (%s) skipped", designator, entry.Type)
	}
}

// validateMarkings decodes resistor and capacitor markings up front, one
// result slot per BOM entry. Decoding is pure, so entries are checked
// concurrently; result order is preserved by index.
func (w *workflow) validateMarkings(bom m.BOM) []error {
	results := make([]error, len(bom.Entries))

	var g errgroup.Group

	g.SetLimit(decodeWorkers)

	for i, entry := range bom.Entries {
		g.Go(func() error {
			switch entry.Type {
			case m.TypeResistor:
				if _, err := resistor.ParseShorthand(entry.Value); err != nil {
					results[i] = err
				}
			case m.TypeCapacitor:
				if _, err := capacitor.Decode(entry.Value); err != nil {
					results[i] = err
				}
			}

			return nil
		})
	}

	// Workers only write their own slot and never return errors.
	_ = g.Wait()

	return results
}

func entryLabel(entry m.ComponentSpec, index int) string {
	if len(entry.Designators) > 0 {
		return entry.Designators[0]
	}

	return fmt.Sprintf("entry %d (%s)", index+1, entry.Value)
}
