package projection

import (
	"errors"
	"math"
	"testing"
)

func defaultInput(t *testing.T) ProjectionInput {
	t.Helper()
	values, err := DefaultRanges().Snapshot()
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	in, err := NewProjectionInput(values)
	if err != nil {
		t.Fatalf("projection input: %v", err)
	}
	return in
}

func TestNewProjectionInput(t *testing.T) {
	t.Parallel()
	in := defaultInput(t)

	if in.Horizon != 10 {
		t.Errorf("horizon = %d, want 10", in.Horizon)
	}
	if !almostEqual(in.AddTxA, 62.06, 1e-9) {
		t.Errorf("AddTxA = %v, want 62.06", in.AddTxA)
	}
	if !almostEqual(in.AddTxB, 120.06, 1e-9) {
		t.Errorf("AddTxB = %v, want 120.06", in.AddTxB)
	}
}

func TestNewProjectionInput_MissingKey(t *testing.T) {
	t.Parallel()
	values, err := DefaultRanges().Snapshot()
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	delete(values, KeyDialysisCost)

	_, err = NewProjectionInput(values)
	var missing *MissingParameterError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingParameterError, got %v", err)
	}
	if missing.Key != KeyDialysisCost {
		t.Errorf("missing key = %q, want %q", missing.Key, KeyDialysisCost)
	}
}

func TestProjectScenarios_SeriesLengths(t *testing.T) {
	t.Parallel()
	in := defaultInput(t)
	res, err := ProjectScenarios(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	series := map[string]int{
		"Years":           len(res.Years),
		"TxExpansionA":    len(res.TxExpansionA),
		"TxExpansionB":    len(res.TxExpansionB),
		"PIRP":            len(res.PIRP),
		"PreemptiveA":     len(res.PreemptiveA),
		"PreemptiveB":     len(res.PreemptiveB),
		"TotalA":          len(res.TotalA),
		"TotalB":          len(res.TotalB),
		"BAU":             len(res.BAU),
		"CumTotalA":       len(res.CumTotalA),
		"CumTotalB":       len(res.CumTotalB),
		"CumBAU":          len(res.CumBAU),
		"CumTxExpansionB": len(res.CumTxExpansionB),
		"CumPIRP":         len(res.CumPIRP),
	}
	for name, length := range series {
		if length != in.Horizon {
			t.Errorf("%s has length %d, want %d", name, length, in.Horizon)
		}
	}
}

func TestProjectScenarios_InvalidHorizon(t *testing.T) {
	t.Parallel()
	in := defaultInput(t)
	in.Horizon = 0

	_, err := ProjectScenarios(in)
	var invalid *InvalidHorizonError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidHorizonError, got %v", err)
	}
}

func TestProjectScenarios_ZeroDiscountIsRunningSum(t *testing.T) {
	t.Parallel()
	in := defaultInput(t)
	in.DiscountRate = 0

	res, err := ProjectScenarios(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	running := 0.0
	for i, v := range res.TotalB {
		running += v
		if !almostEqual(res.CumTotalB[i], running, 1e-6) {
			t.Errorf("year %d: CumTotalB = %v, want plain running sum %v", i+1, res.CumTotalB[i], running)
		}
	}
}

func TestProjectScenarios_DiscountingReducesCumulative(t *testing.T) {
	t.Parallel()
	in := defaultInput(t)
	in.DiscountRate = 0.03

	res, err := ProjectScenarios(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	undiscounted := sum(res.TotalB)
	last := res.CumTotalB[len(res.CumTotalB)-1]
	if last >= undiscounted {
		t.Errorf("discounted cumulative %v not below undiscounted sum %v", last, undiscounted)
	}

	// Spot-check the discount factor on a constant series.
	wantPIRP := 0.0
	for year := 1; year <= in.Horizon; year++ {
		wantPIRP += res.AnnualPIRP / math.Pow(1.03, float64(year))
	}
	if !almostEqual(res.CumPIRP[in.Horizon-1], wantPIRP, 1e-6) {
		t.Errorf("CumPIRP at horizon = %v, want %v", res.CumPIRP[in.Horizon-1], wantPIRP)
	}
}

func TestProjectScenarios_ScenarioOrdering(t *testing.T) {
	t.Parallel()
	in := defaultInput(t)

	res, err := ProjectScenarios(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Scenario B targets a higher transplant rate, so it saves at least as much.
	if res.AvgAnnualB < res.AvgAnnualA {
		t.Errorf("AvgAnnualB %v < AvgAnnualA %v with higher target rate", res.AvgAnnualB, res.AvgAnnualA)
	}
}

func TestProjectScenarios_BAUExcludesPIRP(t *testing.T) {
	t.Parallel()
	in := defaultInput(t)

	res, err := ProjectScenarios(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := range res.BAU {
		want := res.TxExpansionB[i] + res.PreemptiveB[i]
		if !almostEqual(res.BAU[i], want, 1e-6) {
			t.Errorf("year %d: BAU = %v, want transplant+preemptive %v", i+1, res.BAU[i], want)
		}
		if !almostEqual(res.TotalB[i]-res.BAU[i], res.AnnualPIRP, 1e-6) {
			t.Errorf("year %d: TotalB - BAU = %v, want PIRP term %v", i+1, res.TotalB[i]-res.BAU[i], res.AnnualPIRP)
		}
	}
}

func TestProjectScenarios_Scalars(t *testing.T) {
	t.Parallel()
	in := defaultInput(t)

	res, err := ProjectScenarios(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !almostEqual(res.AvgAnnualB, sum(res.TotalB)/float64(in.Horizon), 1e-6) {
		t.Errorf("AvgAnnualB = %v, want sum/horizon", res.AvgAnnualB)
	}
	if !almostEqual(res.MeanTxExpansionB, sum(res.TxExpansionB)/float64(in.Horizon), 1e-6) {
		t.Errorf("MeanTxExpansionB = %v, want mean of series", res.MeanTxExpansionB)
	}
	if !almostEqual(res.AnnualPreemptiveB, res.PreemptiveB[0], 1e-9) {
		t.Errorf("AnnualPreemptiveB = %v, want first-year value %v", res.AnnualPreemptiveB, res.PreemptiveB[0])
	}
}
