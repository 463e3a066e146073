package projection

import (
	"fmt"
	"math"
)

// InvalidHorizonError is returned by time-series functions when the requested
// horizon is shorter than one year.
type InvalidHorizonError struct {
	Horizon int
}

func (e *InvalidHorizonError) Error() string {
	return fmt.Sprintf("invalid horizon %d: must be at least 1 year", e.Horizon)
}

// AdditionalTransplants is the number of extra transplants per year when moving
// from the baseline rate to the target rate: max(0, (target-baseline) * pop).
// A target below baseline yields zero, never a negative count.
func AdditionalTransplants(targetPMP, baselinePMP, populationMillions float64) float64 {
	return math.Max(0, (targetPMP-baselinePMP)*populationMillions)
}

// CumulativePatientCosts returns per-patient cumulative dialysis cost,
// cumulative transplant cost and their difference (transplant minus dialysis,
// negative meaning transplant is cheaper to date) for years 1..years.
func CumulativePatientCosts(years int, dialysisCost, txYear1Cost, txMaintCost float64) (dialysis, transplant, difference []float64, err error) {
	if years < 1 {
		return nil, nil, nil, &InvalidHorizonError{Horizon: years}
	}

	dialysis = make([]float64, years)
	transplant = make([]float64, years)
	difference = make([]float64, years)
	for i := 0; i < years; i++ {
		t := float64(i + 1)
		dialysis[i] = t * dialysisCost
		transplant[i] = txYear1Cost + (t-1)*txMaintCost
		difference[i] = transplant[i] - dialysis[i]
	}
	return dialysis, transplant, difference, nil
}

// BreakEvenYear is the first year at which cumulative transplant cost no longer
// exceeds cumulative dialysis cost, solved in closed form from
// t*cDial = cTx1 + (t-1)*cTxm and floored at year 1.
//
// When the maintenance cost reaches or exceeds the dialysis cost the
// denominator is non-positive and transplant never pays off through this
// formula; the function then returns 1.0 as a documented degenerate-case
// approximation rather than dividing. Callers needing exact semantics in that
// regime must check dialysisCost <= txMaintCost themselves.
func BreakEvenYear(dialysisCost, txYear1Cost, txMaintCost float64) float64 {
	denom := dialysisCost - txMaintCost
	if denom <= 0 {
		return 1.0
	}
	return math.Max(1.0, math.Ceil((txYear1Cost-txMaintCost)/denom))
}

// TransplantExpansionSavings is the year-t savings from the added transplant
// cohorts: addTx * [(cDial - cTx1) + (t-1)*(cDial - cTxm)]. Each prior cohort
// keeps accruing the dialysis-versus-maintenance differential, so the term
// grows linearly with the year.
func TransplantExpansionSavings(year int, addTx, dialysisCost, txYear1Cost, txMaintCost float64) float64 {
	return addTx * ((dialysisCost - txYear1Cost) + float64(year-1)*(dialysisCost-txMaintCost))
}

// IncidenceReductionSavings is the constant annual dialysis cost avoided by the
// integrated CKD care program: (pop * incidence * reduction) * cDial.
func IncidenceReductionSavings(populationMillions, incidentRatePMP, reductionShare, dialysisCost float64) float64 {
	avoided := populationMillions * incidentRatePMP * reductionShare
	return avoided * dialysisCost
}

// PreemptiveSavings is the constant annual add-on from transplants performed
// before dialysis starts.
func PreemptiveSavings(addTx, preemptiveShare, perCaseDelta float64) float64 {
	return addTx * preemptiveShare * perCaseDelta
}

// CurrentAnnualBurden is the yearly spend on the prevalent dialysis population.
func CurrentAnnualBurden(prevalentDialysisCount, dialysisCost float64) float64 {
	return prevalentDialysisCount * dialysisCost
}
