// Package v1alpha1 holds the wire types of the transplant-planner REST API.
package v1alpha1

import (
	"time"

	"github.com/google/uuid"
)

// Error is the common error reply carrying the request id for correlation.
type Error struct {
	Message   string  `json:"message"`
	RequestId *string `json:"requestId,omitempty"`
}

// ParameterRange describes one tunable parameter with its bounds.
type ParameterRange struct {
	Name  string  `json:"name"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Value float64 `json:"value"`
}

type ParameterRangeList []ParameterRange

// Session is one named parameter configuration.
type Session struct {
	Id         uuid.UUID          `json:"id"`
	Name       string             `json:"name"`
	CreatedAt  time.Time          `json:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt"`
	Parameters map[string]float64 `json:"parameters"`
}

type SessionList []Session

// SessionCreate is the request body for creating a session. Parameters are
// optional initial overrides over the defaults.
type SessionCreate struct {
	Name       string             `json:"name" validate:"required,session_name,max=100"`
	Parameters map[string]float64 `json:"parameters,omitempty" validate:"omitempty,dive,keys,parameter_name,endkeys"`
}

// ParametersUpdate is the request body for updating session parameters.
type ParametersUpdate struct {
	Parameters map[string]float64 `json:"parameters" validate:"required,min=1,dive,keys,parameter_name,endkeys"`
}

// ModalityCost is the annual per-patient cost of one treatment modality.
type ModalityCost struct {
	Modality   string  `json:"modality"`
	AnnualCost float64 `json:"annualCost"`
}

type ModalityCostList []ModalityCost

// Projection is one full engine run: per-year savings series by source for
// both scenarios plus derived cumulative series and scalar summaries.
type Projection struct {
	Years []int `json:"years"`

	TxExpansionA []float64 `json:"txExpansionA"`
	TxExpansionB []float64 `json:"txExpansionB"`
	Pirp         []float64 `json:"pirp"`
	PreemptiveA  []float64 `json:"preemptiveA"`
	PreemptiveB  []float64 `json:"preemptiveB"`
	TotalA       []float64 `json:"totalA"`
	TotalB       []float64 `json:"totalB"`
	Bau          []float64 `json:"bau"`

	CumTotalA       []float64 `json:"cumTotalA"`
	CumTotalB       []float64 `json:"cumTotalB"`
	CumBau          []float64 `json:"cumBau"`
	CumTxExpansionB []float64 `json:"cumTxExpansionB"`
	CumPirp         []float64 `json:"cumPirp"`

	AvgAnnualA        float64 `json:"avgAnnualA"`
	AvgAnnualB        float64 `json:"avgAnnualB"`
	MeanTxExpansionB  float64 `json:"meanTxExpansionB"`
	AnnualPirp        float64 `json:"annualPirp"`
	AnnualPreemptiveB float64 `json:"annualPreemptiveB"`

	AdditionalTransplantsA float64 `json:"additionalTransplantsA"`
	AdditionalTransplantsB float64 `json:"additionalTransplantsB"`
	BreakEvenYear          float64 `json:"breakEvenYear"`
	AnnualBurden           float64 `json:"annualBurden"`
}

// MetricRange is a base value with its min/max sensitivity bounds.
type MetricRange struct {
	Base float64 `json:"base"`
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// Sensitivity reports the low/base/high triples for the headline metrics.
type Sensitivity struct {
	BreakEvenYear      MetricRange `json:"breakEvenYear"`
	AnnualBurden       MetricRange `json:"annualBurden"`
	AvgAnnualSavingsB  MetricRange `json:"avgAnnualSavingsB"`
	CumulativeSavingsB MetricRange `json:"cumulativeSavingsB"`
	AnnualPirpSavings  MetricRange `json:"annualPirpSavings"`
}

// Summary is the dashboard digest: headline metrics with ranges and
// undiscounted horizon totals.
type Summary struct {
	HorizonYears int `json:"horizonYears"`

	AdditionalTransplantsA float64 `json:"additionalTransplantsA"`
	AdditionalTransplantsB float64 `json:"additionalTransplantsB"`

	BreakEvenYear      MetricRange `json:"breakEvenYear"`
	AnnualBurden       MetricRange `json:"annualBurden"`
	AvgAnnualSavingsB  MetricRange `json:"avgAnnualSavingsB"`
	CumulativeSavingsB MetricRange `json:"cumulativeSavingsB"`
	AnnualPirpSavings  MetricRange `json:"annualPirpSavings"`
	AnnualPreemptiveB  float64     `json:"annualPreemptiveB"`

	IncidentCasesPerYear int `json:"incidentCasesPerYear"`
	AvoidedCasesPerYear  int `json:"avoidedCasesPerYear"`

	BauBurdenOverHorizon          float64 `json:"bauBurdenOverHorizon"`
	PirpSavingsOverHorizon        float64 `json:"pirpSavingsOverHorizon"`
	TxExpansionSavingsOverHorizon float64 `json:"txExpansionSavingsOverHorizon"`
	PreemptiveSavingsOverHorizon  float64 `json:"preemptiveSavingsOverHorizon"`
	TotalSavingsOverHorizon       float64 `json:"totalSavingsOverHorizon"`
	BurdenWithPirp                float64 `json:"burdenWithPirp"`
	BurdenWithAll                 float64 `json:"burdenWithAll"`

	PerPatientSavings3yr MetricRange `json:"perPatientSavings3yr"`
}
