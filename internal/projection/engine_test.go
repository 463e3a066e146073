package projection

import (
	"errors"
	"math"
	"testing"
)

func almostEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

func TestAdditionalTransplants(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		target   float64
		baseline float64
		pop      float64
		want     float64
	}{
		{name: "scenario B defaults", target: 35.0, baseline: 14.3, pop: 5.8, want: 120.06},
		{name: "scenario A defaults", target: 25.0, baseline: 14.3, pop: 5.8, want: 62.06},
		{name: "target below baseline clamps to zero", target: 10.0, baseline: 14.3, pop: 5.8, want: 0},
		{name: "target equals baseline", target: 14.3, baseline: 14.3, pop: 5.8, want: 0},
		{name: "zero population", target: 35.0, baseline: 14.3, pop: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AdditionalTransplants(tt.target, tt.baseline, tt.pop)
			if !almostEqual(got, tt.want, 1e-9) {
				t.Errorf("AdditionalTransplants(%v, %v, %v) = %v, want %v", tt.target, tt.baseline, tt.pop, got, tt.want)
			}
		})
	}
}

func TestCumulativePatientCosts(t *testing.T) {
	t.Parallel()
	dial, tx, diff, err := CumulativePatientCosts(3, 50_000, 60_000, 12_000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(dial) != 3 || len(tx) != 3 || len(diff) != 3 {
		t.Fatalf("expected arrays of length 3, got %d/%d/%d", len(dial), len(tx), len(diff))
	}
	if dial[0] != 50_000 {
		t.Errorf("dialysis year 1 = %v, want 50000", dial[0])
	}
	if tx[0] != 60_000 {
		t.Errorf("transplant year 1 = %v, want 60000", tx[0])
	}
	// year 3: dialysis 150k, transplant 60k + 2*12k = 84k
	if dial[2] != 150_000 {
		t.Errorf("dialysis year 3 = %v, want 150000", dial[2])
	}
	if tx[2] != 84_000 {
		t.Errorf("transplant year 3 = %v, want 84000", tx[2])
	}
	if diff[2] != -66_000 {
		t.Errorf("difference year 3 = %v, want -66000", diff[2])
	}
}

func TestCumulativePatientCosts_InvalidHorizon(t *testing.T) {
	t.Parallel()
	for _, years := range []int{0, -1} {
		_, _, _, err := CumulativePatientCosts(years, 50_000, 60_000, 12_000)
		var invalid *InvalidHorizonError
		if !errors.As(err, &invalid) {
			t.Errorf("years=%d: expected InvalidHorizonError, got %v", years, err)
		}
	}
}

func TestBreakEvenYear(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		cDial float64
		cTx1  float64
		cTxm  float64
		want  float64
	}{
		{name: "defaults", cDial: 50_000, cTx1: 60_000, cTxm: 12_000, want: 2.0},
		{name: "expensive first year", cDial: 50_000, cTx1: 100_000, cTxm: 12_000, want: 3.0},
		{name: "transplant cheaper from year one", cDial: 80_000, cTx1: 40_000, cTxm: 5_000, want: 1.0},
		{name: "degenerate maintenance above dialysis", cDial: 10_000, cTx1: 60_000, cTxm: 12_000, want: 1.0},
		{name: "degenerate maintenance equals dialysis", cDial: 12_000, cTx1: 60_000, cTxm: 12_000, want: 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BreakEvenYear(tt.cDial, tt.cTx1, tt.cTxm)
			if got != tt.want {
				t.Errorf("BreakEvenYear(%v, %v, %v) = %v, want %v", tt.cDial, tt.cTx1, tt.cTxm, got, tt.want)
			}
		})
	}
}

func TestTransplantExpansionSavings(t *testing.T) {
	t.Parallel()
	addTx := AdditionalTransplants(35.0, 14.3, 5.8)

	// Year 1 is a net cost: every added transplant pays the expensive first year.
	year1 := TransplantExpansionSavings(1, addTx, 50_000, 60_000, 12_000)
	if !almostEqual(year1, -1_200_600, 1) {
		t.Errorf("year 1 savings = %v, want about -1200600", year1)
	}

	// Year 10: prior cohorts accrue the maintenance-year advantage.
	year10 := TransplantExpansionSavings(10, addTx, 50_000, 60_000, 12_000)
	want := addTx * (-10_000 + 9*38_000)
	if !almostEqual(year10, want, 1) {
		t.Errorf("year 10 savings = %v, want %v", year10, want)
	}
	if !almostEqual(year10, 39_859_920, 1) {
		t.Errorf("year 10 savings = %v, want about 39859920", year10)
	}
}

func TestIncidenceReductionSavings(t *testing.T) {
	t.Parallel()
	got := IncidenceReductionSavings(5.8, 200.0, 0.10, 50_000)
	// 116 avoided cases at 50k each
	if !almostEqual(got, 5_800_000, 1e-6) {
		t.Errorf("IncidenceReductionSavings = %v, want 5800000", got)
	}

	if IncidenceReductionSavings(5.8, 200.0, 0, 50_000) != 0 {
		t.Error("expected zero savings at zero reduction share")
	}
}

func TestPreemptiveSavings(t *testing.T) {
	t.Parallel()
	got := PreemptiveSavings(120.06, 0.20, 20_000)
	if !almostEqual(got, 480_240, 1e-6) {
		t.Errorf("PreemptiveSavings = %v, want 480240", got)
	}
}

func TestCurrentAnnualBurden(t *testing.T) {
	t.Parallel()
	if got := CurrentAnnualBurden(6_500, 50_000); got != 325_000_000 {
		t.Errorf("CurrentAnnualBurden = %v, want 325000000", got)
	}
}
