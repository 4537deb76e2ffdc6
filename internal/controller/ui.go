// Package controller provides the output layer of the breadboard CLI.
package controller

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/solderless/breadboard/internal/capacitor"
	"github.com/solderless/breadboard/internal/grid"
	m "github.com/solderless/breadboard/internal/model"
	"github.com/solderless/breadboard/internal/resistor"
)

// UI defines how results reach the user. Implementations can use different
// output methods (plain text tables, interactive TUI).
type UI interface {
	DisplayAllocation(alloc m.Allocation) error
	DisplayResistorValue(v resistor.Value) error
	DisplayResistorBands(enc resistor.Encoding) error
	DisplayCapacitorValue(v capacitor.Value) error
	DisplayCapacitorMarkings(enc capacitor.Encoding) error
	DisplayHole(id m.HoleID, x, y float64, connected []m.HoleID) error
	DisplayLayout(size m.BoardSize, layout grid.Layout) error
}

// NewUI creates a UI based on whether TTY mode is enabled. Interactive
// output gets the Bubble Tea browser; everything else gets plain tables.
func NewUI(cmd *cobra.Command, useTTY bool) UI {
	if useTTY {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY checks if the given writer is an interactive terminal. Redirected
// or piped output reports false.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	fileInfo, err := file.Stat()
	if err != nil {
		return false
	}

	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
