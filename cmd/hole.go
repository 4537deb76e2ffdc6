package cmd

import (
	"github.com/spf13/cobra"

	"github.com/solderless/breadboard/internal/grid"
	m "github.com/solderless/breadboard/internal/model"
)

// holeCmd represents the hole command.
var holeCmd = newHoleCmd()

func newHoleCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "hole HOLE_ID",
		Short:   "Inspect a breadboard hole",
		Long:    holeLongDescription,
		Example: "  breadboard hole a15 --board 830",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := m.HoleID(args[0])
			board := selectedBoard()

			connected, err := grid.ConnectedHoles(id, board)
			if err != nil {
				return err
			}

			layout, err := grid.LayoutFor(board)
			if err != nil {
				return err
			}

			ref, err := grid.ParseHole(id)
			if err != nil {
				return err
			}

			x, y := layout.Coordinates(ref)

			if jsonFlag {
				return printJSON(cmd, struct {
					Hole      m.HoleID   `json:"hole"`
					X         float64    `json:"x"`
					Y         float64    `json:"y"`
					Connected []m.HoleID `json:"connected"`
				}{id, x, y, connected})
			}

			return ui.DisplayHole(id, x, y, connected)
		},
	}
}

func init() {
	rootCmd.AddCommand(holeCmd)
}
