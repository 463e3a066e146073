package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/renalecon/transplant-planner/pkg/version"
)

type VersionOptions struct {
	Output string
}

func DefaultVersionOptions() *VersionOptions {
	return &VersionOptions{
		Output: "",
	}
}

func NewCmdVersion() *cobra.Command {
	o := DefaultVersionOptions()
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.Run(cmd.Context(), args)
		},
	}
	return cmd
}

func (o *VersionOptions) Run(ctx context.Context, args []string) error {
	versionInfo := version.Get()
	fmt.Printf("txplan version: %s\n", versionInfo.String())
	return nil
}
