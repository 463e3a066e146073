package csv

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/renalecon/transplant-planner/internal/projection"
	"github.com/renalecon/transplant-planner/internal/service/report/types"
)

type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) SupportedFormat() types.ReportFormat {
	return types.ReportFormatCSV
}

func (r *Renderer) Render(data *types.ReportData) (string, error) {
	var csvRows [][]string

	csvRows = append(csvRows, []string{"KIDNEY TRANSPLANT EXPANSION - SAVINGS PROJECTION"})
	csvRows = append(csvRows, []string{fmt.Sprintf("Session: %s (%s)", data.Session.Name, data.Session.ID)})
	csvRows = append(csvRows, []string{fmt.Sprintf("Generated: %s", data.GeneratedAt.Format(time.RFC3339))})
	csvRows = append(csvRows, []string{""})

	csvRows = r.addParameters(csvRows, data.Values)
	csvRows = r.addScalars(csvRows, data)
	csvRows = r.addProjectionTable(csvRows, data.Series)

	return r.convertRowsToCSV(csvRows)
}

func (r *Renderer) addParameters(csvRows [][]string, values projection.ValueSnapshot) [][]string {
	csvRows = append(csvRows, []string{"PARAMETERS"})
	csvRows = append(csvRows, []string{""})
	csvRows = append(csvRows, []string{"Parameter", "Value"})
	for _, k := range projection.Keys {
		csvRows = append(csvRows, []string{k, fmt.Sprintf("%g", values[k])})
	}
	csvRows = append(csvRows, []string{""})
	return csvRows
}

func (r *Renderer) addScalars(csvRows [][]string, data *types.ReportData) [][]string {
	csvRows = append(csvRows, []string{"HEADLINE FIGURES"})
	csvRows = append(csvRows, []string{""})
	csvRows = append(csvRows, []string{"Metric", "Value"})
	csvRows = append(csvRows, []string{"Additional transplants per year (Scenario A)", fmt.Sprintf("%.2f", data.Input.AddTxA)})
	csvRows = append(csvRows, []string{"Additional transplants per year (Scenario B)", fmt.Sprintf("%.2f", data.Input.AddTxB)})
	csvRows = append(csvRows, []string{"Average annual savings Scenario A", fmt.Sprintf("%.2f", data.Series.AvgAnnualA)})
	csvRows = append(csvRows, []string{"Average annual savings Scenario B", fmt.Sprintf("%.2f", data.Series.AvgAnnualB)})
	csvRows = append(csvRows, []string{"Annual PIRP savings", fmt.Sprintf("%.2f", data.Series.AnnualPIRP)})
	csvRows = append(csvRows, []string{"Annual pre-emptive savings (Scenario B)", fmt.Sprintf("%.2f", data.Series.AnnualPreemptiveB)})
	csvRows = append(csvRows, []string{""})
	return csvRows
}

func (r *Renderer) addProjectionTable(csvRows [][]string, series *projection.ResultSeries) [][]string {
	csvRows = append(csvRows, []string{"YEARLY PROJECTION"})
	csvRows = append(csvRows, []string{""})
	csvRows = append(csvRows, []string{
		"Year",
		"Transplant expansion A", "Transplant expansion B",
		"PIRP", "Pre-emptive A", "Pre-emptive B",
		"Total A", "Total B", "BAU",
		"Cumulative A", "Cumulative B", "Cumulative BAU",
	})

	for i, year := range series.Years {
		csvRows = append(csvRows, []string{
			fmt.Sprintf("%d", year),
			fmt.Sprintf("%.2f", series.TxExpansionA[i]),
			fmt.Sprintf("%.2f", series.TxExpansionB[i]),
			fmt.Sprintf("%.2f", series.PIRP[i]),
			fmt.Sprintf("%.2f", series.PreemptiveA[i]),
			fmt.Sprintf("%.2f", series.PreemptiveB[i]),
			fmt.Sprintf("%.2f", series.TotalA[i]),
			fmt.Sprintf("%.2f", series.TotalB[i]),
			fmt.Sprintf("%.2f", series.BAU[i]),
			fmt.Sprintf("%.2f", series.CumTotalA[i]),
			fmt.Sprintf("%.2f", series.CumTotalB[i]),
			fmt.Sprintf("%.2f", series.CumBAU[i]),
		})
	}
	return csvRows
}

func (r *Renderer) convertRowsToCSV(csvRows [][]string) (string, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	for _, row := range csvRows {
		if err := writer.Write(row); err != nil {
			return "", fmt.Errorf("failed writing csv row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}
	return buf.String(), nil
}
