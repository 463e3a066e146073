package mappers

import (
	api "github.com/renalecon/transplant-planner/api/v1alpha1"
	"github.com/renalecon/transplant-planner/internal/projection"
	"github.com/renalecon/transplant-planner/internal/service"
	"github.com/renalecon/transplant-planner/internal/store/model"
)

func SessionToApi(s model.Session) api.Session {
	return api.Session{
		Id:         s.ID,
		Name:       s.Name,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
		Parameters: s.Parameters.Data,
	}
}

func SessionListToApi(sessions model.SessionList) api.SessionList {
	sessionList := []api.Session{}
	for _, s := range sessions {
		sessionList = append(sessionList, SessionToApi(s))
	}
	return sessionList
}

func ParameterRangesToApi(set projection.Set) api.ParameterRangeList {
	ranges := []api.ParameterRange{}
	for _, k := range projection.Keys {
		r := set[k]
		ranges = append(ranges, api.ParameterRange{
			Name:  k,
			Min:   r.Min,
			Max:   r.Max,
			Value: r.Value,
		})
	}
	return ranges
}

func ModalityCostsToApi(costs []projection.ModalityCost) api.ModalityCostList {
	out := []api.ModalityCost{}
	for _, c := range costs {
		out = append(out, api.ModalityCost{Modality: c.Modality, AnnualCost: c.AnnualCost})
	}
	return out
}

func ProjectionToApi(result *service.ProjectionResult) api.Projection {
	s := result.Series
	return api.Projection{
		Years:           s.Years,
		TxExpansionA:    s.TxExpansionA,
		TxExpansionB:    s.TxExpansionB,
		Pirp:            s.PIRP,
		PreemptiveA:     s.PreemptiveA,
		PreemptiveB:     s.PreemptiveB,
		TotalA:          s.TotalA,
		TotalB:          s.TotalB,
		Bau:             s.BAU,
		CumTotalA:       s.CumTotalA,
		CumTotalB:       s.CumTotalB,
		CumBau:          s.CumBAU,
		CumTxExpansionB: s.CumTxExpansionB,
		CumPirp:         s.CumPIRP,

		AvgAnnualA:        s.AvgAnnualA,
		AvgAnnualB:        s.AvgAnnualB,
		MeanTxExpansionB:  s.MeanTxExpansionB,
		AnnualPirp:        s.AnnualPIRP,
		AnnualPreemptiveB: s.AnnualPreemptiveB,

		AdditionalTransplantsA: result.Input.AddTxA,
		AdditionalTransplantsB: result.Input.AddTxB,
		BreakEvenYear:          result.BreakEvenYear,
		AnnualBurden:           result.AnnualBurden,
	}
}

func metricRange(low, base, high float64) api.MetricRange {
	min, max := projection.Range(low, base, high)
	return api.MetricRange{Base: base, Low: min, High: max}
}

func valueRangeToApi(r service.ValueRange) api.MetricRange {
	return api.MetricRange{Base: r.Base, Low: r.Low, High: r.High}
}

func SensitivityToApi(outcome *projection.Outcome) api.Sensitivity {
	low, base, high := outcome.Low, outcome.Base, outcome.High
	lastCum := func(run *projection.ScenarioRun) float64 {
		return run.Series.CumTotalB[len(run.Series.CumTotalB)-1]
	}

	return api.Sensitivity{
		BreakEvenYear:      metricRange(low.BreakEvenYear, base.BreakEvenYear, high.BreakEvenYear),
		AnnualBurden:       metricRange(low.AnnualBurden, base.AnnualBurden, high.AnnualBurden),
		AvgAnnualSavingsB:  metricRange(low.Series.AvgAnnualB, base.Series.AvgAnnualB, high.Series.AvgAnnualB),
		CumulativeSavingsB: metricRange(lastCum(low), lastCum(base), lastCum(high)),
		AnnualPirpSavings:  metricRange(low.Series.AnnualPIRP, base.Series.AnnualPIRP, high.Series.AnnualPIRP),
	}
}

func SummaryToApi(s *service.Summary) api.Summary {
	return api.Summary{
		HorizonYears: s.HorizonYears,

		AdditionalTransplantsA: s.AdditionalTransplantsA,
		AdditionalTransplantsB: s.AdditionalTransplantsB,

		BreakEvenYear:      valueRangeToApi(s.BreakEvenYear),
		AnnualBurden:       valueRangeToApi(s.AnnualBurden),
		AvgAnnualSavingsB:  valueRangeToApi(s.AvgAnnualSavingsB),
		CumulativeSavingsB: valueRangeToApi(s.CumulativeSavingsB),
		AnnualPirpSavings:  valueRangeToApi(s.AnnualPIRPSavings),
		AnnualPreemptiveB:  s.AnnualPreemptiveB,

		IncidentCasesPerYear: s.IncidentCasesPerYear,
		AvoidedCasesPerYear:  s.AvoidedCasesPerYear,

		BauBurdenOverHorizon:          s.BAUBurdenOverHorizon,
		PirpSavingsOverHorizon:        s.PIRPSavingsOverHorizon,
		TxExpansionSavingsOverHorizon: s.TxExpansionSavingsOverHorizon,
		PreemptiveSavingsOverHorizon:  s.PreemptiveSavingsOverHorizon,
		TotalSavingsOverHorizon:       s.TotalSavingsOverHorizon,
		BurdenWithPirp:                s.BurdenWithPIRP,
		BurdenWithAll:                 s.BurdenWithAll,

		PerPatientSavings3yr: valueRangeToApi(s.PerPatientSavings3yr),
	}
}
