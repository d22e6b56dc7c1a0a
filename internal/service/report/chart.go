package report

import (
	"bytes"
	"context"
	"fmt"

	"github.com/li-cell/election-backend-go/internal/refdata"
	"github.com/li-cell/election-backend-go/internal/service/results"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// WinsChartPNG implements ReportService: a PNG bar chart of declared wins per
// party in the filtered scope. The rasterized labels use the Latin-script
// party names because go-chart's bundled font carries no Bengali glyphs.
func (s *reportServiceImpl) WinsChartPNG(ctx context.Context, f results.Filter) ([]byte, error) {
	live, err := s.cache.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load seats: %w", err)
	}
	points := results.BuildSeries(results.Apply(results.Merge(live), f))
	if len(points) == 0 {
		return renderNoDataPlaceholder()
	}

	maxWins := 0
	values := make([]chart.Value, 0, len(points))
	for _, p := range points {
		if p.Wins > maxWins {
			maxWins = p.Wins
		}
		values = append(values, chart.Value{
			Label: chartLabel(p.Party),
			Value: float64(p.Wins),
			Style: chart.Style{
				FillColor:   drawing.ColorFromHex(trimHash(p.Color)),
				StrokeColor: drawing.ColorFromHex(trimHash(p.Color)),
			},
		})
	}

	graph := chart.BarChart{
		Title:    "Declared seats",
		Width:    900,
		Height:   450,
		BarWidth: 60,
		Bars:     values,
		XAxis: chart.Style{
			TextRotationDegrees: 20,
		},
		// An explicit range keeps rendering valid when every bar carries
		// the same value, which go-chart otherwise rejects as a zero
		// data range.
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{
				Min: 0,
				Max: float64(maxWins) + 1,
			},
		},
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}
	return buffer.Bytes(), nil
}

func renderNoDataPlaceholder() ([]byte, error) {
	graph := chart.BarChart{
		Title:    "No declared results",
		Width:    400,
		Height:   200,
		BarWidth: 40,
		Bars: []chart.Value{
			{Label: "", Value: 0},
		},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{
				Min: 0,
				Max: 1,
			},
		},
	}
	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render placeholder chart: %w", err)
	}
	return buffer.Bytes(), nil
}

// chartLabel falls back to the raw name for custom parties outside the
// static table.
func chartLabel(party string) string {
	if p, ok := refdata.PartyByName(party); ok && p.Latin != "" {
		return p.Latin
	}
	return party
}

func trimHash(color string) string {
	if len(color) > 0 && color[0] == '#' {
		return color[1:]
	}
	return color
}
