// Package charts renders dashboard charts.
package charts

import (
	"bytes"
	"fmt"

	"github.com/pocketledger/backend/internal/models"
	"github.com/pocketledger/backend/internal/types"
	"github.com/wcharczuk/go-chart/v2"
)

// BreakdownChart renders the expense breakdown of a month as a PNG bar
// chart. It returns nil when there is no data to chart.
func BreakdownChart(month types.Month, breakdown []models.CategoryAmount) ([]byte, error) {
	if len(breakdown) == 0 {
		return nil, nil
	}

	bars := make([]chart.Value, 0, len(breakdown))
	var maxValue float64
	for _, entry := range breakdown {
		value, _ := entry.Amount.Float64()
		if value > maxValue {
			maxValue = value
		}

		bars = append(bars, chart.Value{
			Label: entry.Name,
			Value: value,
		})
	}

	graph := chart.BarChart{
		Title:    fmt.Sprintf("Expenses by category, %s", month),
		Width:    800,
		Height:   400,
		BarWidth: 60,
		// The range must be explicit, go-chart cannot derive one from a
		// single bar
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: maxValue},
		},
		Background: chart.Style{
			Padding: chart.Box{
				Top:    40,
				Left:   20,
				Right:  20,
				Bottom: 20,
			},
			FillColor: chart.ColorWhite,
		},
		Bars: bars,
	}

	var buffer bytes.Buffer
	err := graph.Render(chart.PNG, &buffer)
	if err != nil {
		return nil, fmt.Errorf("rendering chart failed: %w", err)
	}

	return buffer.Bytes(), nil
}
