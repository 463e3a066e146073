package projection

import "math"

// ProjectionInput is the resolved set of numbers one ProjectScenarios run
// consumes. AddTxA/AddTxB are pre-computed so sensitivity passes can reuse them
// while varying only the cost figures.
type ProjectionInput struct {
	Horizon            int
	AddTxA             float64
	AddTxB             float64
	DialysisCost       float64
	TransplantYear1    float64
	TransplantMaint    float64
	PopulationMillions float64
	IncidentRatePMP    float64
	PIRPReduction      float64
	PreemptiveShare    float64
	PreemptiveDelta    float64
	DiscountRate       float64
}

// NewProjectionInput resolves a snapshot into engine inputs, deriving the
// additional-transplant counts for both scenarios.
func NewProjectionInput(values ValueSnapshot) (ProjectionInput, error) {
	var in ProjectionInput
	fields := []struct {
		key string
		dst *float64
	}{
		{KeyDialysisCost, &in.DialysisCost},
		{KeyTransplantYear1Cost, &in.TransplantYear1},
		{KeyTransplantMaintCost, &in.TransplantMaint},
		{KeyPopulationMillions, &in.PopulationMillions},
		{KeyIncidentRatePMP, &in.IncidentRatePMP},
		{KeyPIRPReduction, &in.PIRPReduction},
		{KeyPreemptiveShare, &in.PreemptiveShare},
		{KeyPreemptiveDelta, &in.PreemptiveDelta},
		{KeyDiscountRate, &in.DiscountRate},
	}
	for _, f := range fields {
		v, err := values.Get(f.key)
		if err != nil {
			return ProjectionInput{}, err
		}
		*f.dst = v
	}

	horizon, err := values.Get(KeyHorizonYears)
	if err != nil {
		return ProjectionInput{}, err
	}
	in.Horizon = int(horizon)

	baseline, err := values.Get(KeyBaselineTxRatePMP)
	if err != nil {
		return ProjectionInput{}, err
	}
	targetA, err := values.Get(KeyScenarioATargetPMP)
	if err != nil {
		return ProjectionInput{}, err
	}
	targetB, err := values.Get(KeyScenarioBTargetPMP)
	if err != nil {
		return ProjectionInput{}, err
	}
	in.AddTxA = AdditionalTransplants(targetA, baseline, in.PopulationMillions)
	in.AddTxB = AdditionalTransplants(targetB, baseline, in.PopulationMillions)

	return in, nil
}

// ResultSeries is the output of one engine run. All slices have length equal to
// the horizon. BAU tracks scenario B without the incidence-reduction credit.
type ResultSeries struct {
	Years []int

	TxExpansionA []float64
	TxExpansionB []float64
	PIRP         []float64
	PreemptiveA  []float64
	PreemptiveB  []float64
	TotalA       []float64
	TotalB       []float64
	BAU          []float64

	CumTotalA       []float64
	CumTotalB       []float64
	CumBAU          []float64
	CumTxExpansionB []float64
	CumPIRP         []float64

	AvgAnnualA        float64
	AvgAnnualB        float64
	MeanTxExpansionB  float64
	AnnualPIRP        float64
	AnnualPreemptiveB float64
}

// ProjectScenarios computes the full savings time series for scenarios A and B
// plus the business-as-usual counterfactual, with discounted cumulative sums.
// Discounting uses discrete annual compounding 1/(1+r)^t; a rate at or below
// zero degrades to a plain running sum.
func ProjectScenarios(in ProjectionInput) (*ResultSeries, error) {
	if in.Horizon < 1 {
		return nil, &InvalidHorizonError{Horizon: in.Horizon}
	}

	n := in.Horizon
	res := &ResultSeries{
		Years:        make([]int, n),
		TxExpansionA: make([]float64, n),
		TxExpansionB: make([]float64, n),
		PIRP:         make([]float64, n),
		PreemptiveA:  make([]float64, n),
		PreemptiveB:  make([]float64, n),
		TotalA:       make([]float64, n),
		TotalB:       make([]float64, n),
		BAU:          make([]float64, n),
	}

	res.AnnualPIRP = IncidenceReductionSavings(in.PopulationMillions, in.IncidentRatePMP, in.PIRPReduction, in.DialysisCost)
	preA := PreemptiveSavings(in.AddTxA, in.PreemptiveShare, in.PreemptiveDelta)
	preB := PreemptiveSavings(in.AddTxB, in.PreemptiveShare, in.PreemptiveDelta)
	res.AnnualPreemptiveB = preB

	sumTxB := 0.0
	for i := 0; i < n; i++ {
		year := i + 1
		res.Years[i] = year
		res.TxExpansionA[i] = TransplantExpansionSavings(year, in.AddTxA, in.DialysisCost, in.TransplantYear1, in.TransplantMaint)
		res.TxExpansionB[i] = TransplantExpansionSavings(year, in.AddTxB, in.DialysisCost, in.TransplantYear1, in.TransplantMaint)
		res.PIRP[i] = res.AnnualPIRP
		res.PreemptiveA[i] = preA
		res.PreemptiveB[i] = preB
		res.TotalA[i] = res.TxExpansionA[i] + res.AnnualPIRP + preA
		res.TotalB[i] = res.TxExpansionB[i] + res.AnnualPIRP + preB
		res.BAU[i] = res.TxExpansionB[i] + preB
		sumTxB += res.TxExpansionB[i]
	}

	res.CumTotalA = discountedCumulative(res.TotalA, in.DiscountRate)
	res.CumTotalB = discountedCumulative(res.TotalB, in.DiscountRate)
	res.CumBAU = discountedCumulative(res.BAU, in.DiscountRate)
	res.CumTxExpansionB = discountedCumulative(res.TxExpansionB, in.DiscountRate)
	res.CumPIRP = discountedCumulative(res.PIRP, in.DiscountRate)

	res.AvgAnnualA = sum(res.TotalA) / float64(n)
	res.AvgAnnualB = sum(res.TotalB) / float64(n)
	res.MeanTxExpansionB = sumTxB / float64(n)

	return res, nil
}

func discountedCumulative(annual []float64, rate float64) []float64 {
	out := make([]float64, len(annual))
	running := 0.0
	for i, v := range annual {
		if rate > 0 {
			v /= math.Pow(1+rate, float64(i+1))
		}
		running += v
		out[i] = running
	}
	return out
}

func sum(values []float64) float64 {
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total
}
