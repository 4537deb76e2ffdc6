package cmd

import (
	"github.com/spf13/cobra"

	"github.com/solderless/breadboard/internal/capacitor"
	"github.com/solderless/breadboard/internal/resistor"
)

// decodeCmd represents the decode command group.
var decodeCmd = newDecodeCmd()

func newDecodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode component markings to values",
		Long:  decodeLongDescription,
	}

	cmd.AddCommand(newDecodeResistorCmd())
	cmd.AddCommand(newDecodeCapacitorCmd())

	return cmd
}

func newDecodeResistorCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "resistor BAND...",
		Short:   "Decode a resistor color-band sequence",
		Example: "  breadboard decode resistor brown black orange gold",
		Args:    cobra.RangeArgs(4, 5),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := resistor.Decode(args)
			if err != nil {
				return err
			}

			if jsonFlag {
				return printJSON(cmd, value)
			}

			return ui.DisplayResistorValue(value)
		},
	}
}

func newDecodeCapacitorCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "capacitor MARKING",
		Short:   "Decode a capacitor marking",
		Example: "  breadboard decode capacitor 473K100",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := capacitor.Decode(args[0])
			if err != nil {
				return err
			}

			if jsonFlag {
				return printJSON(cmd, value)
			}

			return ui.DisplayCapacitorValue(value)
		},
	}
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}
