package report

import (
	"io"
	"math"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"NewsPulse/internal/domain/models"
)

// RenderSummary writes the per-symbol correlation summary as an ASCII table.
func RenderSummary(w io.Writer, results []models.CorrelationResult) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Symbol", "Correlation", "P-Value", "Observations"})
	for _, r := range results {
		table.Append([]string{
			r.Symbol,
			formatStat(r.Correlation, 4),
			formatStat(r.PValue, 4),
			strconv.Itoa(r.Observations),
		})
	}
	table.Render()
}

func formatStat(v float64, prec int) string {
	if math.IsNaN(v) {
		return "undefined"
	}
	return strconv.FormatFloat(v, 'f', prec, 64)
}
