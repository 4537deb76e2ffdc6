package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solderless/breadboard/internal/grid"
	m "github.com/solderless/breadboard/internal/model"
)

func place(t *testing.T, bom m.BOM, board m.BoardSize) m.Allocation {
	t.Helper()

	alloc, err := NewWorkflow().Place(PlaceArgs{BOM: bom, Board: board})
	require.NoError(t, err)

	return alloc
}

func entry(ctype m.ComponentType, value string, designators ...string) m.ComponentSpec {
	return m.ComponentSpec{
		Type:        ctype,
		Value:       value,
		Quantity:    len(designators),
		Designators: designators,
	}
}

func TestPlace_SingleResistor(t *testing.T) {
	alloc := place(t, m.BOM{
		Entries: []m.ComponentSpec{entry(m.TypeResistor, "10k", "R1")},
	}, m.Board830)

	require.Len(t, alloc.Placements, 1)
	assert.Empty(t, alloc.Failures)

	p := alloc.Placements[0]
	assert.Equal(t, m.PlacementTwoTerminal, p.Kind)
	assert.Equal(t, m.TypeResistor, p.Type)
	assert.Equal(t, "R1", p.Label)

	start, err := grid.ParseHole(p.Start)
	require.NoError(t, err)
	end, err := grid.ParseHole(p.End)
	require.NoError(t, err)

	assert.Equal(t, byte('a'), start.Row)
	assert.Equal(t, byte('a'), end.Row)
	assert.Greater(t, end.Column, start.Column)
	assert.Equal(t, start.Column+3, end.Column)
}

func TestPlace_ComponentRows(t *testing.T) {
	alloc := place(t, m.BOM{
		Entries: []m.ComponentSpec{
			entry(m.TypeResistor, "10k", "R1"),
			entry(m.TypeCapacitor, "473", "C1"),
			entry(m.TypeDiode, "1N4148", "D1"),
			entry(m.TypeLED, "red", "D2"),
		},
	}, m.Board830)

	require.Len(t, alloc.Placements, 4)

	wantRows := []byte{'a', 'c', 'd', 'd'}
	for i, p := range alloc.Placements {
		ref, err := grid.ParseHole(p.Start)
		require.NoError(t, err)
		assert.Equal(t, wantRows[i], ref.Row, "placement %s", p.Label)
	}
}

func TestPlace_CursorAdvancesInBOMOrder(t *testing.T) {
	alloc := place(t, m.BOM{
		Entries: []m.ComponentSpec{
			entry(m.TypeResistor, "10k", "R1", "R2"),
			entry(m.TypeCapacitor, "473", "C1"),
		},
	}, m.Board830)

	require.Len(t, alloc.Placements, 3)
	assert.Equal(t, []string{"R1", "R2", "C1"}, []string{
		alloc.Placements[0].Label,
		alloc.Placements[1].Label,
		alloc.Placements[2].Label,
	})

	// Resistor span 3 plus one spare column.
	assert.Equal(t, m.HoleID("a2"), alloc.Placements[0].Start)
	assert.Equal(t, m.HoleID("a5"), alloc.Placements[0].End)
	assert.Equal(t, m.HoleID("a6"), alloc.Placements[1].Start)
	assert.Equal(t, m.HoleID("c10"), alloc.Placements[2].Start)
}

func TestPlace_ICWithPower(t *testing.T) {
	alloc := place(t, m.BOM{
		Entries: []m.ComponentSpec{entry(m.TypeIC, "TL072", "U1")},
		Power:   &m.PowerSpec{Voltage: 9, Polarity: "center-negative"},
	}, m.Board830)

	require.Len(t, alloc.Placements, 3)
	assert.Empty(t, alloc.Failures)
	assert.Empty(t, alloc.Notes)

	ic := alloc.Placements[0]
	assert.Equal(t, m.PlacementDIP, ic.Kind)
	assert.Equal(t, 8, ic.PinCount)
	assert.Equal(t, m.HoleID("e2"), ic.Start)
	assert.Equal(t, m.HoleID("f2"), ic.End)

	var red, black *m.Placement

	for i := range alloc.Placements {
		p := &alloc.Placements[i]
		if p.Kind != m.PlacementJumper {
			continue
		}

		switch p.Color {
		case m.JumperRed:
			red = p
		case m.JumperBlack:
			black = p
		}
	}

	require.NotNil(t, red)
	require.NotNil(t, black)

	for _, j := range []*m.Placement{red, black} {
		start, err := grid.ParseHole(j.Start)
		require.NoError(t, err)
		assert.Equal(t, grid.KindRail, start.Kind)

		end, err := grid.ParseHole(j.End)
		require.NoError(t, err)
		assert.Equal(t, grid.KindTerminal, end.Kind)
	}

	assert.Equal(t, grid.RailPositive, mustParse(t, red.Start).Rail)
	assert.Equal(t, grid.RailGround, mustParse(t, black.Start).Rail)
}

func TestPlace_PinCountTable(t *testing.T) {
	tests := []struct {
		marking  string
		wantPins int
		wantNote bool
	}{
		{marking: "TL072", wantPins: 8},
		{marking: "TL074", wantPins: 14},
		{marking: "PT2399", wantPins: 16},
		{marking: "tl072", wantPins: 8},
		{marking: "XR9999", wantPins: 8, wantNote: true},
	}

	for _, tt := range tests {
		t.Run(tt.marking, func(t *testing.T) {
			alloc := place(t, m.BOM{
				Entries: []m.ComponentSpec{entry(m.TypeIC, tt.marking, "U1")},
			}, m.Board830)

			require.Len(t, alloc.Placements, 1)
			assert.Equal(t, tt.wantPins, alloc.Placements[0].PinCount)
			assert.Empty(t, alloc.Failures)

			if tt.wantNote {
				require.Len(t, alloc.Notes, 1)
				assert.Contains(t, alloc.Notes[0], tt.marking)
			} else {
				assert.Empty(t, alloc.Notes)
			}
		})
	}
}

func TestPlace_PassiveOnlyBOMGetsNoJumpers(t *testing.T) {
	alloc := place(t, m.BOM{
		Entries: []m.ComponentSpec{
			entry(m.TypeResistor, "10k", "R1"),
			entry(m.TypeCapacitor, "47n", "C1"),
		},
		Power: &m.PowerSpec{Voltage: 9},
	}, m.Board830)

	for _, p := range alloc.Placements {
		assert.NotEqual(t, m.PlacementJumper, p.Kind)
	}
}

func TestPlace_TransistorTriggersJumpersWithoutPlacement(t *testing.T) {
	alloc := place(t, m.BOM{
		Entries: []m.ComponentSpec{
			entry(m.TypeTransistor, "2N5088", "Q1"),
			entry(m.TypeResistor, "10k", "R1"),
		},
		Power: &m.PowerSpec{Voltage: 9},
	}, m.Board830)

	jumpers := 0
	for _, p := range alloc.Placements {
		assert.NotEqual(t, "Q1", p.Label)

		if p.Kind == m.PlacementJumper {
			jumpers++
		}
	}

	assert.Equal(t, 2, jumpers)
	require.NotEmpty(t, alloc.Notes)
	assert.Contains(t, alloc.Notes[0], "Q1")
}

func TestPlace_CodecFailureDoesNotAbortBOM(t *testing.T) {
	alloc := place(t, m.BOM{
		Entries: []m.ComponentSpec{
			entry(m.TypeResistor, "10k", "R1"),
			entry(m.TypeCapacitor, "not-a-cap", "C1"),
			entry(m.TypeResistor, "4k7", "R2"),
		},
	}, m.Board830)

	require.Len(t, alloc.Placements, 2)
	assert.Equal(t, "R1", alloc.Placements[0].Label)
	assert.Equal(t, "R2", alloc.Placements[1].Label)

	require.Len(t, alloc.Failures, 1)
	assert.Equal(t, "C1", alloc.Failures[0].Label)
	assert.Contains(t, alloc.Failures[0].Reason, "EIA 3-digit")
}

func TestPlace_QuantityMismatchIsEntryFailure(t *testing.T) {
	alloc := place(t, m.BOM{
		Entries: []m.ComponentSpec{
			{Type: m.TypeResistor, Value: "10k", Quantity: 2, Designators: []string{"R1"}},
			entry(m.TypeResistor, "1k", "R2"),
		},
	}, m.Board830)

	require.Len(t, alloc.Placements, 1)
	assert.Equal(t, "R2", alloc.Placements[0].Label)

	require.Len(t, alloc.Failures, 1)
	assert.Contains(t, alloc.Failures[0].Reason, "quantity")
}

func TestPlace_WrapStaysInBounds(t *testing.T) {
	// 20 resistors at span 3 + 1 spare overrun a 30-column board.
	designators := make([]string, 20)
	for i := range designators {
		designators[i] = "R" + strings.Repeat("I", i+1)
	}

	alloc := place(t, m.BOM{
		Entries: []m.ComponentSpec{entry(m.TypeResistor, "10k", designators...)},
	}, m.Board400)

	require.Len(t, alloc.Placements, 20)
	assert.Empty(t, alloc.Failures)

	for _, p := range alloc.Placements {
		assert.True(t, grid.IsValidHole(p.Start, m.Board400), "start %s out of bounds", p.Start)
		assert.True(t, grid.IsValidHole(p.End, m.Board400), "end %s out of bounds", p.End)
	}

	// The wrap shifts the home row so wrapped parts land on fresh rows.
	first, err := grid.ParseHole(alloc.Placements[0].Start)
	require.NoError(t, err)
	assert.Equal(t, byte('a'), first.Row)

	eighth, err := grid.ParseHole(alloc.Placements[7].Start)
	require.NoError(t, err)
	assert.Equal(t, byte('b'), eighth.Row)
	assert.Equal(t, 2, eighth.Column)
}

func TestPlace_UnknownBoard(t *testing.T) {
	_, err := NewWorkflow().Place(PlaceArgs{
		BOM:   m.BOM{Entries: []m.ComponentSpec{entry(m.TypeResistor, "10k", "R1")}},
		Board: m.BoardSize("999"),
	})

	assert.ErrorIs(t, err, grid.ErrUnknownBoard)
}

func TestPlace_StableAcrossCalls(t *testing.T) {
	bom := m.BOM{
		Entries: []m.ComponentSpec{
			entry(m.TypeResistor, "10k", "R1", "R2"),
			entry(m.TypeIC, "TL072", "U1"),
			entry(m.TypeCapacitor, "47n", "C1"),
		},
		Power: &m.PowerSpec{Voltage: 9},
	}

	first := place(t, bom, m.Board830)
	second := place(t, bom, m.Board830)

	assert.Equal(t, first, second)
}

func mustParse(t *testing.T, id m.HoleID) grid.HoleRef {
	t.Helper()

	ref, err := grid.ParseHole(id)
	require.NoError(t, err)

	return ref
}
