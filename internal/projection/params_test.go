package projection

import (
	"errors"
	"testing"
)

func TestDefaultRanges(t *testing.T) {
	t.Parallel()
	ranges := DefaultRanges()

	if len(ranges) != len(Keys) {
		t.Fatalf("expected %d parameters, got %d", len(Keys), len(ranges))
	}
	for _, k := range Keys {
		r, ok := ranges[k]
		if !ok {
			t.Errorf("missing parameter %q", k)
			continue
		}
		if !r.Valid() {
			t.Errorf("parameter %q: default value %v outside [%v, %v]", k, r.Value, r.Min, r.Max)
		}
	}
}

func TestParamRangeClamp(t *testing.T) {
	t.Parallel()
	r := ParamRange{Min: 30_000, Max: 80_000, Value: 50_000}

	tests := []struct {
		in   float64
		want float64
	}{
		{in: 50_000, want: 50_000},
		{in: 30_000, want: 30_000},
		{in: 80_000, want: 80_000},
		{in: 10_000, want: 30_000},
		{in: 100_000, want: 80_000},
	}
	for _, tt := range tests {
		if got := r.Clamp(tt.in); got != tt.want {
			t.Errorf("Clamp(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSnapshot(t *testing.T) {
	t.Parallel()
	values, err := DefaultRanges().Snapshot()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(values) != len(Keys) {
		t.Fatalf("expected %d values, got %d", len(Keys), len(values))
	}
	if values[KeyPopulationMillions] != 5.8 {
		t.Errorf("pop_m = %v, want 5.8", values[KeyPopulationMillions])
	}
}

func TestSnapshot_MissingKey(t *testing.T) {
	t.Parallel()
	ranges := DefaultRanges()
	delete(ranges, KeyDiscountRate)

	_, err := ranges.Snapshot()
	var missing *MissingParameterError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingParameterError, got %v", err)
	}
	if missing.Key != KeyDiscountRate {
		t.Errorf("missing key = %q, want %q", missing.Key, KeyDiscountRate)
	}
}

func TestSnapshotClone(t *testing.T) {
	t.Parallel()
	values, err := DefaultRanges().Snapshot()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	clone := values.Clone()
	clone[KeyDialysisCost] = 99_999
	if values[KeyDialysisCost] == 99_999 {
		t.Error("mutating clone leaked into original snapshot")
	}
}

func TestIsKey(t *testing.T) {
	t.Parallel()
	if !IsKey(KeyDialysisCost) {
		t.Errorf("IsKey(%q) = false, want true", KeyDialysisCost)
	}
	if IsKey("not_a_parameter") {
		t.Error(`IsKey("not_a_parameter") = true, want false`)
	}
}

func TestModalityCosts(t *testing.T) {
	t.Parallel()
	values, err := DefaultRanges().Snapshot()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	costs, err := ModalityCosts(values)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(costs) != 5 {
		t.Fatalf("expected 5 modalities, got %d", len(costs))
	}

	want := []float64{50_000, 40_000, 35_000, 60_000, 12_000}
	for i, c := range costs {
		if c.Modality != ModalityLabels[i] {
			t.Errorf("modality %d label = %q, want %q", i, c.Modality, ModalityLabels[i])
		}
		if c.AnnualCost != want[i] {
			t.Errorf("modality %q cost = %v, want %v", c.Modality, c.AnnualCost, want[i])
		}
	}
}

func TestModalityCosts_MissingKey(t *testing.T) {
	t.Parallel()
	_, err := ModalityCosts(ValueSnapshot{KeyDialysisCost: 50_000})
	var missing *MissingParameterError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingParameterError, got %v", err)
	}
}
