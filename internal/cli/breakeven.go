package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/renalecon/transplant-planner/internal/projection"
)

type BreakEvenOptions struct {
	GlobalOptions
}

func DefaultBreakEvenOptions() *BreakEvenOptions {
	return &BreakEvenOptions{
		GlobalOptions: DefaultGlobalOptions(),
	}
}

func NewCmdBreakEven() *cobra.Command {
	o := DefaultBreakEvenOptions()
	cmd := &cobra.Command{
		Use:   "breakeven",
		Short: "Display the per-patient transplant break-even year.",
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

func (o *BreakEvenOptions) Run(ctx context.Context, args []string) error {
	values, err := resolveSnapshot(o.Overrides)
	if err != nil {
		return err
	}

	in, err := projection.NewProjectionInput(values)
	if err != nil {
		return err
	}

	year := projection.BreakEvenYear(in.DialysisCost, in.TransplantYear1, in.TransplantMaint)

	if o.Output != tableFormat {
		return printResource(map[string]float64{"breakEvenYear": year}, o.Output)
	}

	fmt.Printf("Break-even year: %.0f\n", year)
	if in.DialysisCost <= in.TransplantMaint {
		fmt.Println("Note: transplant maintenance costs at least as much as dialysis here. The reported year is a degenerate-case approximation; transplantation does not pay off on cost alone at these inputs.")
	}
	return nil
}
