package projection

import "fmt"

// Parameter keys understood by the model. Every snapshot must resolve all of them.
const (
	KeyPopulationMillions  = "pop_m"
	KeyBaselineTxRatePMP   = "tx_pmp_baseline"
	KeyScenarioATargetPMP  = "tx_pmp_a"
	KeyScenarioBTargetPMP  = "tx_pmp_b"
	KeyHorizonYears        = "horizon_years"
	KeyDialysisCost        = "c_dial"
	KeyTransplantYear1Cost = "c_tx1"
	KeyTransplantMaintCost = "c_txm"
	KeyIncidentRatePMP     = "inc_pmp"
	KeyPIRPReduction       = "pirp_r"
	KeyPreemptiveShare     = "preempt_share"
	KeyPreemptiveDelta     = "preempt_delta"
	KeyPrevalentDialysis   = "n_dial"
	KeyDiscountRate        = "r_disc"
)

// Keys lists all model parameters in display order.
var Keys = []string{
	KeyPopulationMillions,
	KeyBaselineTxRatePMP,
	KeyScenarioATargetPMP,
	KeyScenarioBTargetPMP,
	KeyHorizonYears,
	KeyDialysisCost,
	KeyTransplantYear1Cost,
	KeyTransplantMaintCost,
	KeyIncidentRatePMP,
	KeyPIRPReduction,
	KeyPreemptiveShare,
	KeyPreemptiveDelta,
	KeyPrevalentDialysis,
	KeyDiscountRate,
}

// IsKey reports whether name is one of the model parameter keys.
func IsKey(name string) bool {
	for _, k := range Keys {
		if k == name {
			return true
		}
	}
	return false
}

// MissingParameterError is returned when a snapshot lacks one of the required keys.
type MissingParameterError struct {
	Key string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("missing parameter %q", e.Key)
}

// ParamRange holds the inclusive bounds and the current value of one tunable parameter.
type ParamRange struct {
	Min   float64
	Max   float64
	Value float64
}

// Clamp returns v forced into [Min, Max].
func (r ParamRange) Clamp(v float64) float64 {
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

// Valid reports whether the current value sits within the bounds.
func (r ParamRange) Valid() bool {
	return r.Min <= r.Value && r.Value <= r.Max
}

// Set maps parameter keys to their ranges. The engine never sees a Set
// directly; it consumes snapshots extracted from one.
type Set map[string]ParamRange

// DefaultRanges returns the full parameter set with domain-derived bounds and
// base values. Bounds are wider than the literature point estimates so the
// sensitivity analysis has room to move.
func DefaultRanges() Set {
	return Set{
		KeyPopulationMillions:  {Min: 2.0, Max: 12.0, Value: 5.8},
		KeyBaselineTxRatePMP:   {Min: 5.0, Max: 30.0, Value: 14.3},
		KeyScenarioATargetPMP:  {Min: 15.0, Max: 50.0, Value: 25.0},
		KeyScenarioBTargetPMP:  {Min: 20.0, Max: 60.0, Value: 35.0},
		KeyHorizonYears:        {Min: 3.0, Max: 20.0, Value: 10.0},
		KeyDialysisCost:        {Min: 30_000, Max: 80_000, Value: 50_000},
		KeyTransplantYear1Cost: {Min: 40_000, Max: 100_000, Value: 60_000},
		KeyTransplantMaintCost: {Min: 5_000, Max: 25_000, Value: 12_000},
		KeyIncidentRatePMP:     {Min: 80.0, Max: 350.0, Value: 200.0},
		KeyPIRPReduction:       {Min: 0.0, Max: 0.30, Value: 0.10},
		KeyPreemptiveShare:     {Min: 0.0, Max: 0.50, Value: 0.20},
		KeyPreemptiveDelta:     {Min: 5_000, Max: 50_000, Value: 20_000},
		KeyPrevalentDialysis:   {Min: 2_000, Max: 15_000, Value: 6_500},
		KeyDiscountRate:        {Min: 0.0, Max: 0.10, Value: 0.03},
	}
}

// Snapshot extracts the current values into an immutable value object.
// No clamping is performed; keeping values in range is the caller's job.
func (s Set) Snapshot() (ValueSnapshot, error) {
	values := make(ValueSnapshot, len(Keys))
	for _, k := range Keys {
		r, ok := s[k]
		if !ok {
			return nil, &MissingParameterError{Key: k}
		}
		values[k] = r.Value
	}
	return values, nil
}

// ValueSnapshot is a flat copy of parameter values, decoupled from the mutable
// Set that produced it. One snapshot feeds exactly one engine run.
type ValueSnapshot map[string]float64

// Get returns the value for key or a MissingParameterError.
func (v ValueSnapshot) Get(key string) (float64, error) {
	val, ok := v[key]
	if !ok {
		return 0, &MissingParameterError{Key: key}
	}
	return val, nil
}

// Clone returns an independent copy of the snapshot.
func (v ValueSnapshot) Clone() ValueSnapshot {
	out := make(ValueSnapshot, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}

// ModalityLabels names the five renal-replacement modalities in display order.
var ModalityLabels = []string{
	"In-centre haemodialysis",
	"Home haemodialysis",
	"Peritoneal dialysis",
	"Kidney transplant (Year 1)",
	"Kidney transplant (Year 2+)",
}

// ModalityCost is the annual per-patient cost of one treatment modality.
type ModalityCost struct {
	Modality   string
	AnnualCost float64
}

// ModalityCosts derives the annual cost per modality for display. In-centre
// dialysis and the two transplant figures come from the snapshot; home
// haemodialysis and peritoneal dialysis are fixed midpoints of literature
// ranges (35-45k and 30-40k respectively).
func ModalityCosts(values ValueSnapshot) ([]ModalityCost, error) {
	cDial, err := values.Get(KeyDialysisCost)
	if err != nil {
		return nil, err
	}
	cTx1, err := values.Get(KeyTransplantYear1Cost)
	if err != nil {
		return nil, err
	}
	cTxm, err := values.Get(KeyTransplantMaintCost)
	if err != nil {
		return nil, err
	}

	costs := []float64{
		cDial,
		(35_000 + 45_000) / 2,
		(30_000 + 40_000) / 2,
		cTx1,
		cTxm,
	}

	out := make([]ModalityCost, len(costs))
	for i, c := range costs {
		out[i] = ModalityCost{Modality: ModalityLabels[i], AnnualCost: c}
	}
	return out, nil
}
