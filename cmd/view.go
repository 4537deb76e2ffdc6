package cmd

import (
	"github.com/spf13/cobra"

	m "github.com/solderless/breadboard/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view ALLOCATION_FILE",
		Short: "View a previously saved allocation",
		Long:  "View an allocation previously written by place --out, without recomputing it.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			alloc, err := allocationStore.Load(m.Path(args[0]))
			if err != nil {
				return err
			}

			if jsonFlag {
				return printJSON(cmd, alloc)
			}

			return ui.DisplayAllocation(alloc)
		},
	}
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
