// Package cmd provides the root command and CLI setup for breadboard.
package cmd

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/solderless/breadboard/internal/adapter"
	"github.com/solderless/breadboard/internal/controller"
	"github.com/solderless/breadboard/internal/domain"
	m "github.com/solderless/breadboard/internal/model"
)

var bomStore adapter.BOMStore
var allocationStore adapter.AllocationStore
var workflow domain.Workflow
var ui controller.UI

func init() {
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	bomStore = adapter.NewBOMStore()
	allocationStore = adapter.NewAllocationStore()
	workflow = domain.NewWorkflow()
}

var boardFlag string
var jsonFlag bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "breadboard",
		Short: "BOM-to-breadboard layout tool",
		Long:  rootLongDescription,
	}

	cmd.PersistentFlags().StringVarP(&boardFlag, "board", "b", string(m.Board830), "board size (830 or 400)")
	cmd.PersistentFlags().BoolVar(&jsonFlag, "json", false, "emit machine-readable JSON instead of tables")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func selectedBoard() m.BoardSize {
	return m.BoardSize(boardFlag)
}

// printJSON renders any result for machine consumers when --json is set.
func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	cmd.Println(string(data))

	return nil
}
