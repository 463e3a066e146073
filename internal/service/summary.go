package service

import (
	"context"
	"math"

	"github.com/google/uuid"
	"github.com/renalecon/transplant-planner/internal/projection"
	"github.com/renalecon/transplant-planner/internal/store"
	"github.com/renalecon/transplant-planner/pkg/metrics"
)

// ValueRange is a base value with its sensitivity bounds. Low and High are the
// min and max over the three passes, never assumed ordered around Base.
type ValueRange struct {
	Base float64
	Low  float64
	High float64
}

func newValueRange(low, base, high float64) ValueRange {
	min, max := projection.Range(low, base, high)
	return ValueRange{Base: base, Low: min, High: max}
}

// Summary is the dashboard-level digest of one scenario configuration:
// headline metrics with sensitivity ranges plus undiscounted horizon totals.
type Summary struct {
	HorizonYears int

	AdditionalTransplantsA float64
	AdditionalTransplantsB float64

	BreakEvenYear      ValueRange
	AnnualBurden       ValueRange
	AvgAnnualSavingsB  ValueRange
	CumulativeSavingsB ValueRange
	AnnualPIRPSavings  ValueRange
	AnnualPreemptiveB  float64

	IncidentCasesPerYear int
	AvoidedCasesPerYear  int

	// Undiscounted horizon totals against the business-as-usual burden.
	BAUBurdenOverHorizon          float64
	PIRPSavingsOverHorizon        float64
	TxExpansionSavingsOverHorizon float64
	PreemptiveSavingsOverHorizon  float64
	TotalSavingsOverHorizon       float64
	BurdenWithPIRP                float64
	BurdenWithAll                 float64

	// Per-patient cumulative dialysis-vs-transplant savings after three years.
	PerPatientSavings3yr ValueRange
}

// SummaryService derives the Summary from a full sensitivity outcome.
type SummaryService struct {
	store      store.Store
	sessionSrv *SessionService
	deltas     projection.CostDeltas
}

func NewSummaryService(store store.Store, sessionSrv *SessionService, deltas projection.CostDeltas) *SummaryService {
	return &SummaryService{store: store, sessionSrv: sessionSrv, deltas: deltas}
}

// Summarize computes the summary for a session's current snapshot.
func (s *SummaryService) Summarize(ctx context.Context, sessionID uuid.UUID) (*Summary, error) {
	outcome, err := NewSensitivityService(s.store, s.sessionSrv, s.deltas).Analyze(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	metrics.IncreaseProjectionsComputedMetric("summary")
	return Summarize(outcome), nil
}

// Summarize builds the summary from an already-computed sensitivity outcome.
func Summarize(outcome *projection.Outcome) *Summary {
	base, low, high := outcome.Base, outcome.Low, outcome.High
	in := base.Input
	horizon := float64(in.Horizon)

	lastCum := func(run *projection.ScenarioRun) float64 {
		return run.Series.CumTotalB[len(run.Series.CumTotalB)-1]
	}

	txTotal := 0.0
	grandTotal := 0.0
	for i := range base.Series.TxExpansionB {
		txTotal += base.Series.TxExpansionB[i]
		grandTotal += base.Series.TotalB[i]
	}

	bauBurden := horizon * base.AnnualBurden
	pirpTotal := horizon * base.Series.AnnualPIRP
	preTotal := horizon * base.Series.AnnualPreemptiveB

	return &Summary{
		HorizonYears: in.Horizon,

		AdditionalTransplantsA: in.AddTxA,
		AdditionalTransplantsB: in.AddTxB,

		BreakEvenYear:      newValueRange(low.BreakEvenYear, base.BreakEvenYear, high.BreakEvenYear),
		AnnualBurden:       newValueRange(low.AnnualBurden, base.AnnualBurden, high.AnnualBurden),
		AvgAnnualSavingsB:  newValueRange(low.Series.AvgAnnualB, base.Series.AvgAnnualB, high.Series.AvgAnnualB),
		CumulativeSavingsB: newValueRange(lastCum(low), lastCum(base), lastCum(high)),
		AnnualPIRPSavings:  newValueRange(low.Series.AnnualPIRP, base.Series.AnnualPIRP, high.Series.AnnualPIRP),
		AnnualPreemptiveB:  base.Series.AnnualPreemptiveB,

		IncidentCasesPerYear: int(math.Round(in.PopulationMillions * in.IncidentRatePMP)),
		AvoidedCasesPerYear:  int(math.Round(in.PopulationMillions * in.IncidentRatePMP * in.PIRPReduction)),

		BAUBurdenOverHorizon:          bauBurden,
		PIRPSavingsOverHorizon:        pirpTotal,
		TxExpansionSavingsOverHorizon: txTotal,
		PreemptiveSavingsOverHorizon:  preTotal,
		TotalSavingsOverHorizon:       grandTotal,
		BurdenWithPIRP:                bauBurden - pirpTotal,
		BurdenWithAll:                 bauBurden - grandTotal,

		PerPatientSavings3yr: newValueRange(
			perPatientSavings3yr(low.Input),
			perPatientSavings3yr(base.Input),
			perPatientSavings3yr(high.Input),
		),
	}
}

// perPatientSavings3yr is cumulative dialysis cost minus cumulative transplant
// cost after three years for a single patient.
func perPatientSavings3yr(in projection.ProjectionInput) float64 {
	return 3*in.DialysisCost - (in.TransplantYear1 + 2*in.TransplantMaint)
}
