package controller

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/solderless/breadboard/internal/capacitor"
	"github.com/solderless/breadboard/internal/grid"
	m "github.com/solderless/breadboard/internal/model"
	"github.com/solderless/breadboard/internal/resistor"
)

// SimpleUI implements UI using cobra Command's Println and tablewriter.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayAllocation prints the placement table, then any notes and
// per-instance failures.
func (s *SimpleUI) DisplayAllocation(alloc m.Allocation) error {
	if len(alloc.Placements) == 0 {
		s.cmd.Println("No placements")
	} else {
		var tableBuffer bytes.Buffer

		table := tablewriter.NewWriter(&tableBuffer)
		table.SetHeader([]string{"Label", "Kind", "Type", "Start", "End", "Pins"})
		table.SetBorder(false)
		table.SetCenterSeparator("")
		table.SetColumnAlignment([]int{
			tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
			tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER,
		})

		for _, p := range alloc.Placements {
			table.Append([]string{
				p.Label,
				placementKindCell(p),
				string(p.Type),
				string(p.Start),
				string(p.End),
				pinsCell(p),
			})
		}

		table.SetFooter([]string{
			fmt.Sprintf("Board %s", alloc.Board),
			"", "", "", "",
			strconv.Itoa(len(alloc.Placements)),
		})

		table.Render()
		s.cmd.Printf("%s\n", tableBuffer.String())
	}

	for _, note := range alloc.Notes {
		s.cmd.Printf("note: %s\n", note)
	}

	for _, f := range alloc.Failures {
		s.cmd.Printf("failed: %s: %s\n", f.Label, f.Reason)
	}

	return nil
}

func placementKindCell(p m.Placement) string {
	if p.Kind == m.PlacementJumper {
		return fmt.Sprintf("%s (%s)", p.Kind, jumperStyle(p.Color).Render(string(p.Color)))
	}

	return string(p.Kind)
}

func pinsCell(p m.Placement) string {
	if p.Kind != m.PlacementDIP {
		return ""
	}

	return strconv.Itoa(p.PinCount)
}

func jumperStyle(color m.JumperColor) lipgloss.Style {
	if color == m.JumperRed {
		return lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	}

	return lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
}

// DisplayResistorValue prints a decoded resistor with its series advisory.
func (s *SimpleUI) DisplayResistorValue(v resistor.Value) error {
	s.cmd.Printf("%s ±%g%%\n", resistor.Format(v.Ohms), v.Tolerance)

	if v.Series.OnSeries {
		s.cmd.Printf("standard %s value\n", v.Series.Series)
	} else {
		s.cmd.Printf("not a standard value; nearest %s: %s\n", v.Series.Series, resistor.Format(v.Series.Nearest))
	}

	return nil
}

// DisplayResistorBands prints both band sequences for an encoded value.
func (s *SimpleUI) DisplayResistorBands(enc resistor.Encoding) error {
	s.cmd.Printf("5-band: %s\n", strings.Join(bandNames(enc.FiveBand), " "))
	s.cmd.Printf("4-band: %s\n", strings.Join(bandNames(enc.FourBand), " "))

	return nil
}

// bandColors approximate the physical band colors for terminal output.
var bandColors = map[resistor.Color]string{
	resistor.Black: "0", resistor.Brown: "94", resistor.Red: "9",
	resistor.Orange: "208", resistor.Yellow: "11", resistor.Green: "10",
	resistor.Blue: "12", resistor.Violet: "13", resistor.Grey: "8",
	resistor.White: "15", resistor.Gold: "3", resistor.Silver: "7",
}

func bandNames(bands []resistor.Color) []string {
	names := make([]string, 0, len(bands))

	for _, b := range bands {
		name := string(b)
		if code, ok := bandColors[b]; ok {
			name = lipgloss.NewStyle().Foreground(lipgloss.Color(code)).Render(name)
		}

		names = append(names, name)
	}

	return names
}

// DisplayCapacitorValue prints a decoded capacitor in all three units.
func (s *SimpleUI) DisplayCapacitorValue(v capacitor.Value) error {
	s.cmd.Printf("%s (%gpF / %gnF / %gµF)\n", capacitor.Format(v.Picofarads), v.Picofarads, v.Nanofarads, v.Microfarads)
	s.cmd.Printf("type: %s", v.Type)

	if v.Polarized {
		s.cmd.Printf(" (polarized)")
	}

	s.cmd.Println()

	if v.Tolerance > 0 {
		s.cmd.Printf("tolerance: ±%g%%\n", v.Tolerance)
	}

	if v.Voltage > 0 {
		s.cmd.Printf("rated: %dV\n", v.Voltage)
	}

	return nil
}

// DisplayCapacitorMarkings prints both marking forms for an encoded value.
func (s *SimpleUI) DisplayCapacitorMarkings(enc capacitor.Encoding) error {
	s.cmd.Printf("EIA: %s\n", enc.EIA)
	s.cmd.Printf("alphanumeric: %s\n", enc.Alphanumeric)

	return nil
}

// DisplayHole prints a hole's coordinates and connectivity group.
func (s *SimpleUI) DisplayHole(id m.HoleID, x, y float64, connected []m.HoleID) error {
	s.cmd.Printf("%s at (%.2f, %.2f)mm\n", id, x, y)

	group := make([]string, 0, len(connected))
	for _, h := range connected {
		group = append(group, string(h))
	}

	s.cmd.Printf("connected: %s\n", strings.Join(group, " "))

	return nil
}

// DisplayLayout prints the canonical board geometry.
func (s *SimpleUI) DisplayLayout(size m.BoardSize, layout grid.Layout) error {
	s.cmd.Printf("board %s: %d columns, %d terminal rows\n", size, layout.Columns, len(grid.Rows))
	s.cmd.Printf("pitch %.2fmm, center gap %.2fmm\n", layout.Pitch, layout.CenterGap)
	s.cmd.Printf("size %.1f x %.1f mm\n", layout.Width, layout.Height)
	s.cmd.Printf("rails at y = %.2f %.2f %.2f %.2f\n",
		layout.TopPositiveY, layout.TopGroundY, layout.BottomPositiveY, layout.BottomGroundY)

	return nil
}
