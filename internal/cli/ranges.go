package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/renalecon/transplant-planner/internal/handlers/v1alpha1/mappers"
	"github.com/renalecon/transplant-planner/internal/projection"
)

type RangesOptions struct {
	GlobalOptions
}

func DefaultRangesOptions() *RangesOptions {
	return &RangesOptions{
		GlobalOptions: DefaultGlobalOptions(),
	}
}

func NewCmdRanges() *cobra.Command {
	o := DefaultRangesOptions()
	cmd := &cobra.Command{
		Use:   "ranges",
		Short: "Display the tunable parameters with their bounds and defaults.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(cmd, args); err != nil {
				return err
			}
			if err := o.Validate(args); err != nil {
				return err
			}
			return o.Run(cmd.Context(), args)
		},
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	return cmd
}

func (o *RangesOptions) Run(ctx context.Context, args []string) error {
	ranges := mappers.ParameterRangesToApi(projection.DefaultRanges())
	if o.Output != tableFormat {
		return printResource(ranges, o.Output)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 1, '\t', 0)
	fmt.Fprintln(w, "NAME\tMIN\tMAX\tDEFAULT")
	for _, r := range ranges {
		fmt.Fprintf(w, "%s\t%g\t%g\t%g\n", r.Name, r.Min, r.Max, r.Value)
	}
	return w.Flush()
}
