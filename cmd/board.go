package cmd

import (
	"github.com/spf13/cobra"

	"github.com/solderless/breadboard/internal/grid"
	m "github.com/solderless/breadboard/internal/model"
)

// boardCmd represents the board command.
var boardCmd = newBoardCmd()

func newBoardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "board [SIZE]",
		Short: "Show the canonical layout of a board size",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			size := selectedBoard()
			if len(args) == 1 {
				size = m.BoardSize(args[0])
			}

			layout, err := grid.LayoutFor(size)
			if err != nil {
				return err
			}

			if jsonFlag {
				return printJSON(cmd, layout)
			}

			return ui.DisplayLayout(size, layout)
		},
	}
}

func init() {
	rootCmd.AddCommand(boardCmd)
}
