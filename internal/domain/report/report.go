// Package report serializes team summaries into a CSV export.
package report

import (
	"strconv"
	"strings"
	"time"

	"github.com/okian/scorebook/internal/domain/classify"
	"github.com/okian/scorebook/internal/domain/model"
)

// ContentType is the MIME type of serialized reports.
const ContentType = "text/csv"

// Metadata carries report provenance supplied by the caller: the
// authenticated coach's display name and the generation time.
type Metadata struct {
	GeneratedBy string
	GeneratedAt time.Time
}

// detailHeader is the fixed column order of the player-details table.
var detailHeader = []string{
	"Player Name",
	"Email",
	"Sport",
	"Current Score (%)",
	"Performance Status",
	"Total Matches",
	"Average Score",
}

// Filename suggests a download name for a report generated at t.
func Filename(t time.Time) string {
	return "team-report-" + t.Format("2006-01-02") + ".csv"
}

// Serialize renders a summary plus its roster snapshot as a CSV
// document. Data rows follow roster order. Rows are joined with a
// single newline and the document carries no trailing newline.
//
// Like aggregation, serialization never fails: zero-valued fields
// are emitted as their defaults.
func Serialize(summary model.TeamSummary, records []model.PlayerRecord, meta Metadata) string {
	rows := make([][]string, 0, 12+len(records))

	rows = append(rows,
		[]string{"Team Performance Report"},
		[]string{"Coach Name", meta.GeneratedBy},
		[]string{"Report Date", meta.GeneratedAt.Format("2006-01-02")},
		[]string{""},
		[]string{"Team Statistics"},
		[]string{"Total Players", strconv.Itoa(summary.TotalPlayers)},
		[]string{"Team Average Score", formatScore(summary.AverageScore) + "%"},
		[]string{"Total Matches", strconv.Itoa(summary.TotalMatches)},
		[]string{"Top Performer", topPerformerName(summary)},
		[]string{""},
		[]string{"Player Details"},
		detailHeader,
	)

	for _, rec := range records {
		rows = append(rows, []string{
			rec.Name,
			rec.Email,
			string(rec.Sport),
			formatScore(rec.CurrentScore),
			classify.Classify(rec.CurrentScore).Label,
			strconv.Itoa(rec.MatchCount),
			formatScore(rec.AverageScore),
		})
	}

	lines := make([]string, len(rows))
	for i, row := range rows {
		cells := make([]string, len(row))
		for j, cell := range row {
			cells[j] = escapeCell(cell)
		}
		lines[i] = strings.Join(cells, ",")
	}
	return strings.Join(lines, "\n")
}

func topPerformerName(summary model.TeamSummary) string {
	if summary.TopPerformer == nil {
		return "N/A"
	}
	return summary.TopPerformer.Name
}

// escapeCell quotes a cell if and only if it contains a comma, a
// double quote, or a newline; internal double quotes are doubled.
func escapeCell(cell string) string {
	if !strings.ContainsAny(cell, ",\"\n") {
		return cell
	}
	return `"` + strings.ReplaceAll(cell, `"`, `""`) + `"`
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
