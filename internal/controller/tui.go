package controller

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/solderless/breadboard/internal/capacitor"
	"github.com/solderless/breadboard/internal/grid"
	m "github.com/solderless/breadboard/internal/model"
	"github.com/solderless/breadboard/internal/resistor"
)

// TUI implements UI using Bubble Tea for interactive display. Codec
// results stay plain text; allocations open an interactive browser.
type TUI struct {
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// DisplayAllocation opens the interactive placement browser.
func (t *TUI) DisplayAllocation(alloc m.Allocation) error {
	program := tea.NewProgram(newPlacementModel(alloc), tea.WithOutput(t.output))

	_, err := program.Run()

	return err
}

// DisplayResistorValue prints a decoded resistor with its series advisory.
func (t *TUI) DisplayResistorValue(v resistor.Value) error {
	_, _ = fmt.Fprintf(t.output, "%s ±%g%%\n", resistor.Format(v.Ohms), v.Tolerance)

	if v.Series.OnSeries {
		_, _ = fmt.Fprintf(t.output, "standard %s value\n", v.Series.Series)
	} else {
		_, _ = fmt.Fprintf(t.output, "not a standard value; nearest %s: %s\n", v.Series.Series, resistor.Format(v.Series.Nearest))
	}

	return nil
}

// DisplayResistorBands prints both band sequences for an encoded value.
func (t *TUI) DisplayResistorBands(enc resistor.Encoding) error {
	_, _ = fmt.Fprintf(t.output, "5-band: %s\n", strings.Join(bandNames(enc.FiveBand), " "))
	_, _ = fmt.Fprintf(t.output, "4-band: %s\n", strings.Join(bandNames(enc.FourBand), " "))

	return nil
}

// DisplayCapacitorValue prints a decoded capacitor in all three units.
func (t *TUI) DisplayCapacitorValue(v capacitor.Value) error {
	_, _ = fmt.Fprintf(t.output, "%s (%gpF / %gnF / %gµF) %s\n",
		capacitor.Format(v.Picofarads), v.Picofarads, v.Nanofarads, v.Microfarads, v.Type)

	return nil
}

// DisplayCapacitorMarkings prints both marking forms for an encoded value.
func (t *TUI) DisplayCapacitorMarkings(enc capacitor.Encoding) error {
	_, _ = fmt.Fprintf(t.output, "EIA: %s\nalphanumeric: %s\n", enc.EIA, enc.Alphanumeric)

	return nil
}

// DisplayHole prints a hole's coordinates and connectivity group.
func (t *TUI) DisplayHole(id m.HoleID, x, y float64, connected []m.HoleID) error {
	_, _ = fmt.Fprintf(t.output, "%s at (%.2f, %.2f)mm\n", id, x, y)

	group := make([]string, 0, len(connected))
	for _, h := range connected {
		group = append(group, string(h))
	}

	_, _ = fmt.Fprintf(t.output, "connected: %s\n", strings.Join(group, " "))

	return nil
}

// DisplayLayout prints the canonical board geometry.
func (t *TUI) DisplayLayout(size m.BoardSize, layout grid.Layout) error {
	_, _ = fmt.Fprintf(t.output, "board %s: %d columns, pitch %.2fmm, %.1f x %.1f mm\n",
		size, layout.Columns, layout.Pitch, layout.Width, layout.Height)

	return nil
}
