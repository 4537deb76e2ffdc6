package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/solderless/breadboard/internal/capacitor"
	"github.com/solderless/breadboard/internal/resistor"
)

var encodeResistorToleranceFlag float64
var encodeCapacitorToleranceFlag float64
var encodeUnitFlag string
var encodeVoltageFlag int

// encodeCmd represents the encode command group.
var encodeCmd = newEncodeCmd()

func newEncodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode component values to markings",
		Long:  encodeLongDescription,
	}

	cmd.AddCommand(newEncodeResistorCmd())
	cmd.AddCommand(newEncodeCapacitorCmd())

	return cmd
}

func newEncodeResistorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "resistor VALUE",
		Short:   "Encode a resistance as color bands",
		Example: "  breadboard encode resistor 10k --tolerance 5",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ohms, err := resistor.ParseShorthand(args[0])
			if err != nil {
				return err
			}

			enc, err := resistor.Encode(ohms, encodeResistorToleranceFlag)
			if err != nil {
				return err
			}

			if jsonFlag {
				return printJSON(cmd, enc)
			}

			return ui.DisplayResistorBands(enc)
		},
	}
	cmd.Flags().Float64VarP(&encodeResistorToleranceFlag, "tolerance", "t", 5, "tolerance percent (1, 2, 5, 10 or 20)")

	return cmd
}

func newEncodeCapacitorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "capacitor VALUE",
		Short:   "Encode a capacitance as markings",
		Example: "  breadboard encode capacitor 47 --unit nF --tolerance 10 --voltage 100",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var magnitude float64
			if _, err := fmt.Sscanf(args[0], "%g", &magnitude); err != nil {
				return fmt.Errorf("invalid magnitude %q: %w", args[0], err)
			}

			enc, err := capacitor.Encode(magnitude, capacitor.Unit(encodeUnitFlag), encodeCapacitorToleranceFlag, encodeVoltageFlag)
			if err != nil {
				return err
			}

			if jsonFlag {
				return printJSON(cmd, enc)
			}

			return ui.DisplayCapacitorMarkings(enc)
		},
	}
	cmd.Flags().Float64VarP(&encodeCapacitorToleranceFlag, "tolerance", "t", 0, "tolerance percent from the EIA letter table (0 = none)")
	cmd.Flags().StringVarP(&encodeUnitFlag, "unit", "u", string(capacitor.UnitNF), "unit of VALUE (pF, nF or uF)")
	cmd.Flags().IntVarP(&encodeVoltageFlag, "voltage", "v", 0, "voltage rating to append (0 = none)")

	return cmd
}

func init() {
	rootCmd.AddCommand(encodeCmd)
}
