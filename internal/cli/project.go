package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/renalecon/transplant-planner/internal/handlers/v1alpha1/mappers"
	"github.com/renalecon/transplant-planner/internal/service"
)

type ProjectOptions struct {
	GlobalOptions
}

func DefaultProjectOptions() *ProjectOptions {
	return &ProjectOptions{
		GlobalOptions: DefaultGlobalOptions(),
	}
}

func NewCmdProject() *cobra.Command {
	o := DefaultProjectOptions()
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Run the savings projection on the defaults plus --set overrides.",
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

func (o *ProjectOptions) Run(ctx context.Context, args []string) error {
	values, err := resolveSnapshot(o.Overrides)
	if err != nil {
		return err
	}

	result, err := service.ComputeFromSnapshot(values)
	if err != nil {
		return fmt.Errorf("running projection: %w", err)
	}

	if o.Output != tableFormat {
		return printResource(mappers.ProjectionToApi(result), o.Output)
	}

	s := result.Series
	w := tabwriter.NewWriter(os.Stdout, 0, 8, 1, '\t', 0)
	fmt.Fprintln(w, "YEAR\tTX EXPANSION B\tPIRP\tPREEMPTIVE B\tTOTAL B\tCUM TOTAL B\tCUM BAU")
	for i, year := range s.Years {
		fmt.Fprintf(w, "%d\t%.0f\t%.0f\t%.0f\t%.0f\t%.0f\t%.0f\n",
			year, s.TxExpansionB[i], s.PIRP[i], s.PreemptiveB[i], s.TotalB[i], s.CumTotalB[i], s.CumBAU[i])
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\nAdditional transplants/yr (scenario B): %.2f\n", result.Input.AddTxB)
	fmt.Printf("Break-even year: %.0f\n", result.BreakEvenYear)
	fmt.Printf("Current annual dialysis burden: %.0f\n", result.AnnualBurden)
	return nil
}
