package repository

import (
	"astrocore/internal/domain"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, contents string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

const snapshotCsv = `date,point,longitude,speed,house,retrograde,sunrise,sunset
2024-01-08T12:00:00Z,Sun,287.5,1.02,10,false,2024-01-08T07:20:00Z,2024-01-08T16:45:00Z
2024-01-08T12:00:00Z,Moon,250.1,12.8,9,false,2024-01-08T07:20:00Z,2024-01-08T16:45:00Z
2024-01-08T12:00:00Z,Ascendant,10,0,1,false,2024-01-08T07:20:00Z,2024-01-08T16:45:00Z
2024-01-07T12:00:00Z,Sun,286.5,1.02,10,false,,
2024-01-07T12:00:00Z,Moon,-122.7,12.9,8,false,,
2024-01-07T12:00:00Z,Mercury,262.1,-0.3,9,true,,
`

func TestChartSnapshotRepository_List(t *testing.T) {
	t.Run("csv rows grouped by date", func(t *testing.T) {
		repo := NewChartSnapshotRepository(writeFile(t, "snapshots.csv", snapshotCsv))
		out, err := repo.List(ChartSnapshotListFilter{})
		require.NoError(t, err)
		require.Len(t, out, 2)

		first := out[0]
		require.Equal(t, time.Date(2024, 1, 7, 12, 0, 0, 0, time.UTC), first.Date)
		require.Nil(t, first.Sunrise)
		require.Len(t, first.Chart.Planets, 3)
		moon := first.Chart.Find("Moon")
		require.NotNil(t, moon)
		require.InDelta(t, 237.3, moon.Longitude, 1e-9)
		require.Equal(t, domain.Scorpio, moon.Sign)
		require.True(t, first.Chart.Find("Mercury").IsRetrograde())

		second := out[1]
		require.NotNil(t, second.Sunrise)
		require.Equal(t, time.Date(2024, 1, 8, 7, 20, 0, 0, time.UTC), *second.Sunrise)
		require.NotNil(t, second.Chart.Ascendant)
		require.Len(t, second.Chart.Planets, 2)
		require.Equal(t, domain.PointKind_Transit, second.Chart.Planets[0].Kind)
	})

	t.Run("json with range filter", func(t *testing.T) {
		repo := NewChartSnapshotRepository(writeFile(t, "snapshots.json", `[
			{"date": "2024-01-09T12:00:00Z", "chart": {"planets": [{"name": "Sun", "longitude": 288.5}]}},
			{"date": "2024-01-07T12:00:00Z", "chart": {"planets": [{"name": "Sun", "longitude": 366}]}},
			{"date": "2024-01-08T12:00:00Z", "chart": {"planets": [{"name": "Sun", "longitude": 287.5}]}}
		]`))
		start := time.Date(2024, 1, 7, 12, 0, 0, 0, time.UTC)
		end := time.Date(2024, 1, 8, 12, 0, 0, 0, time.UTC)
		out, err := repo.List(ChartSnapshotListFilter{Start: &start, End: &end})
		require.NoError(t, err)
		require.Len(t, out, 2)
		require.Equal(t, start, out[0].Date)
		require.Equal(t, end, out[1].Date)
		require.Equal(t, 6.0, out[0].Chart.Planets[0].Longitude)
		require.Equal(t, domain.Aries, out[0].Chart.Planets[0].Sign)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := NewChartSnapshotRepository(filepath.Join(t.TempDir(), "nope.json")).List(ChartSnapshotListFilter{})
		require.ErrorContains(t, err, "failed to open snapshot file")
	})

	t.Run("bad date in csv", func(t *testing.T) {
		repo := NewChartSnapshotRepository(writeFile(t, "bad.csv", "date,point,longitude,speed,house,retrograde,sunrise,sunset\nyesterday,Sun,1,1,1,false,,\n"))
		_, err := repo.List(ChartSnapshotListFilter{})
		require.ErrorContains(t, err, "yesterday")
	})
}

func TestChartSnapshotRepository_Get(t *testing.T) {
	repo := NewChartSnapshotRepository(writeFile(t, "snapshots.csv", snapshotCsv))

	out, err := repo.Get(time.Date(2024, 1, 8, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NotNil(t, out.Sunset)

	_, err = repo.Get(time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC))
	require.ErrorContains(t, err, "no snapshot for 2030-01-01T00:00:00Z")
}

func TestChartRepository_Get(t *testing.T) {
	path := writeFile(t, "chart.json", `{
		"planets": [{"name": "Venus", "longitude": 400, "speed": -0.5}],
		"ascendant": {"longitude": 95}
	}`)
	chart, err := NewChartRepository().Get(path)
	require.NoError(t, err)
	require.Equal(t, 40.0, chart.Planets[0].Longitude)
	require.Equal(t, domain.Taurus, chart.Planets[0].Sign)
	require.Equal(t, domain.Cancer, chart.Ascendant.Sign)

	_, err = NewChartRepository().Get(writeFile(t, "broken.json", "{"))
	require.ErrorContains(t, err, "failed to parse chart")
}

func TestRankedDateRepository_Write(t *testing.T) {
	date := time.Date(2024, 1, 8, 12, 0, 0, 0, time.UTC)
	ranked := []domain.RankedDate{
		{
			Date:           date,
			Score:          72.5,
			Interpretation: "Good: favorable with minor drawbacks",
			Analysis: &domain.ElectionAnalysis{
				MoonPhase: domain.MoonPhase_WaxingGibbous,
				MoonSign:  domain.Leo,
				Warnings:  []string{"Mercury retrograde"},
			},
		},
		{Date: date.AddDate(0, 0, 1), Score: 40, Interpretation: "Fair: workable but not ideal"},
	}
	repo := NewRankedDateRepository()

	t.Run("csv", func(t *testing.T) {
		buf := &bytes.Buffer{}
		require.NoError(t, repo.Write(buf, ranked, RankedDateFormat_CSV))
		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 3)
		require.Equal(t, "rank,date,score,interpretation,moon_phase,moon_sign,warnings", lines[0])
		require.Equal(t, "1,2024-01-08T12:00:00Z,72.5,Good: favorable with minor drawbacks,waxing_gibbous,Leo,Mercury retrograde", lines[1])
	})

	t.Run("json", func(t *testing.T) {
		buf := &bytes.Buffer{}
		require.NoError(t, repo.Write(buf, ranked, RankedDateFormat_JSON))
		require.Contains(t, buf.String(), `"score": 72.5`)
	})

	t.Run("unknown format", func(t *testing.T) {
		require.Error(t, repo.Write(&bytes.Buffer{}, ranked, RankedDateFormat("xml")))
	})
}
