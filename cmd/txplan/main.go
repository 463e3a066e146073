package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/renalecon/transplant-planner/internal/cli"
)

func main() {
	command := NewTxPlanCommand()
	if err := command.Execute(); err != nil {
		os.Exit(1)
	}
}

func NewTxPlanCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "txplan [flags] [options]",
		Short: "txplan projects the cost impact of kidney transplant expansion policies.",
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
			os.Exit(1)
		},
	}
	cmd.AddCommand(cli.NewCmdRanges())
	cmd.AddCommand(cli.NewCmdProject())
	cmd.AddCommand(cli.NewCmdSummary())
	cmd.AddCommand(cli.NewCmdBreakEven())
	cmd.AddCommand(cli.NewCmdVersion())

	return cmd
}
