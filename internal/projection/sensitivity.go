package projection

import (
	"golang.org/x/sync/errgroup"
)

// CostDeltas are the absolute perturbations applied to the three cost
// parameters when deriving the low and high sensitivity snapshots.
type CostDeltas struct {
	Dialysis        float64
	TransplantYear1 float64
	TransplantMaint float64
}

// DefaultCostDeltas returns the reporting deltas used for the published
// sensitivity ranges: dialysis +/-15k, transplant year 1 +/-10k, maintenance +/-2.5k.
func DefaultCostDeltas() CostDeltas {
	return CostDeltas{
		Dialysis:        15_000,
		TransplantYear1: 10_000,
		TransplantMaint: 2_500,
	}
}

// ScenarioRun bundles everything one cost level produces: the resolved input,
// the full series, the break-even year and the current annual burden at those
// costs.
type ScenarioRun struct {
	Input         ProjectionInput
	Series        *ResultSeries
	BreakEvenYear float64
	AnnualBurden  float64
}

// Outcome holds the three sensitivity passes. Low and High refer to the cost
// perturbation direction, not to the ordering of any derived metric.
type Outcome struct {
	Low  *ScenarioRun
	Base *ScenarioRun
	High *ScenarioRun
}

// Range returns the min and max over the three passes of a chosen metric.
// Clamping can reorder the triple, so the base value is never assumed to sit
// between low and high.
func Range(low, base, high float64) (min, max float64) {
	min, max = low, low
	for _, v := range []float64{base, high} {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

// Analyzer re-runs the projection pipeline under perturbed cost inputs.
// Perturbed values are clamped into the bounds of the owning Set before use.
type Analyzer struct {
	bounds Set
	deltas CostDeltas
}

// NewAnalyzer builds an Analyzer clamping against bounds with the given deltas.
func NewAnalyzer(bounds Set, deltas CostDeltas) *Analyzer {
	return &Analyzer{bounds: bounds, deltas: deltas}
}

// Run executes the base, cost-low and cost-high passes for the given snapshot.
// The three passes share no mutable state and run concurrently.
func (a *Analyzer) Run(values ValueSnapshot) (*Outcome, error) {
	low, err := a.perturb(values, -1)
	if err != nil {
		return nil, err
	}
	high, err := a.perturb(values, +1)
	if err != nil {
		return nil, err
	}

	outcome := &Outcome{}
	var g errgroup.Group
	for _, pass := range []struct {
		snapshot ValueSnapshot
		dst      **ScenarioRun
	}{
		{values, &outcome.Base},
		{low, &outcome.Low},
		{high, &outcome.High},
	} {
		g.Go(func() error {
			run, err := runScenario(pass.snapshot)
			if err != nil {
				return err
			}
			*pass.dst = run
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outcome, nil
}

// perturb clones the snapshot and shifts each cost parameter by direction*delta,
// clamped into its declared range.
func (a *Analyzer) perturb(values ValueSnapshot, direction float64) (ValueSnapshot, error) {
	out := values.Clone()
	for _, p := range []struct {
		key   string
		delta float64
	}{
		{KeyDialysisCost, a.deltas.Dialysis},
		{KeyTransplantYear1Cost, a.deltas.TransplantYear1},
		{KeyTransplantMaintCost, a.deltas.TransplantMaint},
	} {
		v, err := out.Get(p.key)
		if err != nil {
			return nil, err
		}
		bounds, ok := a.bounds[p.key]
		if !ok {
			return nil, &MissingParameterError{Key: p.key}
		}
		out[p.key] = bounds.Clamp(v + direction*p.delta)
	}
	return out, nil
}

func runScenario(values ValueSnapshot) (*ScenarioRun, error) {
	in, err := NewProjectionInput(values)
	if err != nil {
		return nil, err
	}
	series, err := ProjectScenarios(in)
	if err != nil {
		return nil, err
	}

	nDial, err := values.Get(KeyPrevalentDialysis)
	if err != nil {
		return nil, err
	}

	return &ScenarioRun{
		Input:         in,
		Series:        series,
		BreakEvenYear: BreakEvenYear(in.DialysisCost, in.TransplantYear1, in.TransplantMaint),
		AnnualBurden:  CurrentAnnualBurden(nDial, in.DialysisCost),
	}, nil
}
