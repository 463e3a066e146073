package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/renalecon/transplant-planner/internal/handlers/v1alpha1/mappers"
	"github.com/renalecon/transplant-planner/internal/projection"
	"github.com/renalecon/transplant-planner/internal/service"
)

type SummaryOptions struct {
	GlobalOptions
}

func DefaultSummaryOptions() *SummaryOptions {
	return &SummaryOptions{
		GlobalOptions: DefaultGlobalOptions(),
	}
}

func NewCmdSummary() *cobra.Command {
	o := DefaultSummaryOptions()
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Display the headline savings figures with sensitivity ranges.",
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

func (o *SummaryOptions) Run(ctx context.Context, args []string) error {
	values, err := resolveSnapshot(o.Overrides)
	if err != nil {
		return err
	}

	outcome, err := service.AnalyzeSnapshot(values, projection.DefaultCostDeltas())
	if err != nil {
		return fmt.Errorf("running sensitivity analysis: %w", err)
	}
	summary := service.Summarize(outcome)

	if o.Output != tableFormat {
		return printResource(mappers.SummaryToApi(summary), o.Output)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 1, '\t', 0)
	fmt.Fprintln(w, "METRIC\tBASE\tLOW\tHIGH")
	printRange := func(name string, r service.ValueRange) {
		fmt.Fprintf(w, "%s\t%.2f\t%.2f\t%.2f\n", name, r.Base, r.Low, r.High)
	}
	printRange("Break-even year", summary.BreakEvenYear)
	printRange("Annual dialysis burden", summary.AnnualBurden)
	printRange("Avg annual savings (B)", summary.AvgAnnualSavingsB)
	printRange("Cumulative savings (B)", summary.CumulativeSavingsB)
	printRange("Annual PIRP savings", summary.AnnualPIRPSavings)
	printRange("Per-patient savings, 3yr", summary.PerPatientSavings3yr)
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\nHorizon: %d years\n", summary.HorizonYears)
	fmt.Printf("Additional transplants/yr: %.2f (A), %.2f (B)\n", summary.AdditionalTransplantsA, summary.AdditionalTransplantsB)
	fmt.Printf("Incident cases/yr: %d, avoided with PIRP: %d\n", summary.IncidentCasesPerYear, summary.AvoidedCasesPerYear)
	fmt.Printf("Burden over horizon: %.0f (BAU), %.0f (with PIRP), %.0f (all policies)\n",
		summary.BAUBurdenOverHorizon, summary.BurdenWithPIRP, summary.BurdenWithAll)
	return nil
}
