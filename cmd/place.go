package cmd

import (
	"github.com/spf13/cobra"

	"github.com/solderless/breadboard/internal/domain"
	m "github.com/solderless/breadboard/internal/model"
)

var placeOutFlag string

// placeCmd represents the place command.
var placeCmd = newPlaceCmd()

func newPlaceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "place BOM_FILE",
		Short: "Place a BOM onto a breadboard",
		Long:  placeLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bom, err := bomStore.Load(m.Path(args[0]))
			if err != nil {
				return err
			}

			alloc, err := workflow.Place(domain.PlaceArgs{
				BOM:   bom,
				Board: selectedBoard(),
			})
			if err != nil {
				return err
			}

			if placeOutFlag != "" {
				if err := allocationStore.Save(m.Path(placeOutFlag), alloc); err != nil {
					return err
				}
			}

			if jsonFlag {
				return printJSON(cmd, alloc)
			}

			return ui.DisplayAllocation(alloc)
		},
	}
	cmd.Flags().StringVarP(&placeOutFlag, "out", "o", "", "write the allocation as JSON to this file")

	return cmd
}

func init() {
	rootCmd.AddCommand(placeCmd)
}
