package domain

import (
	"fmt"
	"strconv"

	"github.com/solderless/breadboard/internal/grid"
	m "github.com/solderless/breadboard/internal/model"
)

// startColumn leaves column 1 clear for conventional lead margin.
const startColumn = 2

// allocator walks one BOM, assigning component instances to holes with a
// single running column cursor. It lives for exactly one Place call; no
// state escapes it.
type allocator struct {
	layout grid.Layout
	cursor int
	// wraps counts column overflows. Each wrap restarts the cursor at
	// startColumn and shifts two-terminal home rows one letter down
	// within the a-e section, so wrapped placements land on fresh
	// connectivity groups.
	wraps int

	alloc m.Allocation
}

func newAllocator(board m.BoardSize, layout grid.Layout) *allocator {
	return &allocator{
		layout: layout,
		cursor: startColumn,
		alloc:  m.Allocation{Board: board},
	}
}

func (a *allocator) fail(label, reason string) {
	a.alloc.Failures = append(a.alloc.Failures, m.InstanceFailure{Label: label, Reason: reason})
}

func (a *allocator) note(format string, args ...any) {
	a.alloc.Notes = append(a.alloc.Notes, fmt.Sprintf(format, args...))
}

// shiftedRow applies the wrap policy to a type's home row: each wrap moves
// one row letter down, modulo the 5-row section.
func (a *allocator) shiftedRow(row byte) byte {
	return 'a' + byte((int(row-'a')+a.wraps)%5)
}

// ensureFit wraps the cursor when width columns no longer fit before the
// board edge. It reports false when even a fresh row cannot hold the
// component, which only happens for widths beyond the board itself.
func (a *allocator) ensureFit(width int) bool {
	if a.cursor+width-1 <= a.layout.Columns {
		return true
	}

	a.cursor = startColumn
	a.wraps++

	return a.cursor+width-1 <= a.layout.Columns
}

func terminalHole(row byte, column int) m.HoleID {
	return m.HoleID(string(row) + strconv.Itoa(column))
}

// placeTwoTerminal places a resistor, capacitor, diode or LED: both leads
// in the same row of the a-e section, span columns apart.
func (a *allocator) placeTwoTerminal(label string, ctype m.ComponentType) {
	span := spanByType[ctype]

	if !a.ensureFit(span + 1) {
		a.fail(label, fmt.Sprintf("span %d exceeds board width %d", span, a.layout.Columns))

		return
	}

	row := a.shiftedRow(rowByType[ctype])

	a.alloc.Placements = append(a.alloc.Placements, m.Placement{
		Kind:  m.PlacementTwoTerminal,
		Label: label,
		Type:  ctype,
		Start: terminalHole(row, a.cursor),
		End:   terminalHole(row, a.cursor+span),
	})

	a.cursor += span + 1
}

// placeDIP places an IC straddling the center gap: pin 1 in row e, its
// mirror in row f, reserving the full device width.
func (a *allocator) placeDIP(label, marking string) {
	pins, known := pinCountFor(marking)
	if !known {
		a.note("unknown device marking %q for %s: assuming %d-pin DIP", marking, label, defaultPinCount)
	}

	width := pins / 2

	if !a.ensureFit(width) {
		a.fail(label, fmt.Sprintf("device width %d exceeds board width %d", width, a.layout.Columns))

		return
	}

	a.alloc.Placements = append(a.alloc.Placements, m.Placement{
		Kind:     m.PlacementDIP,
		Label:    label,
		Type:     m.TypeIC,
		Start:    terminalHole('e', a.cursor),
		End:      terminalHole('f', a.cursor),
		PinCount: pins,
	})

	a.cursor += width
}

// placeJumpers emits the two supply jumpers feeding the first placed IC,
// or a fixed fallback region when the only active devices are discretes.
func (a *allocator) placeJumpers() {
	supplyCol, groundCol := startColumn, startColumn+1

	for _, p := range a.alloc.Placements {
		if p.Kind != m.PlacementDIP {
			continue
		}

		ref, err := grid.ParseHole(p.Start)
		if err != nil {
			continue
		}

		// Pin 1 sits at Start; V+ is its mirror across the gap and
		// ground the far pin of the e-row side.
		supplyCol = ref.Column
		groundCol = ref.Column + p.PinCount/2 - 1

		break
	}

	a.alloc.Placements = append(a.alloc.Placements,
		m.Placement{
			Kind:  m.PlacementJumper,
			Label: "V+",
			Color: m.JumperRed,
			Start: m.HoleID("+" + strconv.Itoa(supplyCol)),
			End:   terminalHole('j', supplyCol),
		},
		m.Placement{
			Kind:  m.PlacementJumper,
			Label: "GND",
			Color: m.JumperBlack,
			Start: m.HoleID("-" + strconv.Itoa(groundCol)),
			End:   terminalHole('a', groundCol),
		},
	)
}
