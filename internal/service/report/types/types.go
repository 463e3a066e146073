package types

import (
	"time"

	"github.com/renalecon/transplant-planner/internal/projection"
	"github.com/renalecon/transplant-planner/internal/store/model"
)

type ReportFormat string

const (
	ReportFormatCSV ReportFormat = "csv"
)

// ReportData is everything a renderer needs for one session report.
type ReportData struct {
	Session     *model.Session
	Values      projection.ValueSnapshot
	Input       projection.ProjectionInput
	Series      *projection.ResultSeries
	GeneratedAt time.Time
}

// Renderer turns ReportData into one output format.
type Renderer interface {
	SupportedFormat() ReportFormat
	Render(data *ReportData) (string, error)
}
