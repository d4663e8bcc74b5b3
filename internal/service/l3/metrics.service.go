package l3_service

import (
	"astrocore/internal/domain"
	"fmt"
	"time"

	"github.com/montanaflynn/stats"
)

type ScoreMetricsResult struct {
	RangeStart time.Time `json:"rangeStart"`
	RangeEnd   time.Time `json:"rangeEnd"`
	Count      int       `json:"count"`
	Mean       float64   `json:"mean"`
	Median     float64   `json:"median"`
	Stdev      float64   `json:"stdev"`
	P90        float64   `json:"p90"`
	Best       time.Time `json:"best"`
	Worst      time.Time `json:"worst"`
	// BandCounts is keyed by the first word of the interpretation, e.g. "Good".
	BandCounts map[string]int `json:"bandCounts"`
}

// CalculateScoreMetrics summarizes a ranked scan. ranked must be ordered
// best-first, as returned by FindBestDates.
func CalculateScoreMetrics(rangeStart, rangeEnd time.Time, ranked []domain.RankedDate) (*ScoreMetricsResult, error) {
	if len(ranked) == 0 {
		return nil, fmt.Errorf("cannot calculate metrics on 0 ranked dates")
	}

	scores := make([]float64, 0, len(ranked))
	bands := map[string]int{}
	for _, r := range ranked {
		scores = append(scores, r.Score)
		bands[bandOf(r.Interpretation)]++
	}

	mean, err := stats.Mean(scores)
	if err != nil {
		return nil, fmt.Errorf("failed to compute mean: %w", err)
	}
	median, err := stats.Median(scores)
	if err != nil {
		return nil, fmt.Errorf("failed to compute median: %w", err)
	}
	p90, err := stats.Percentile(scores, 90)
	if err != nil {
		return nil, fmt.Errorf("failed to compute p90: %w", err)
	}
	stdev := 0.0
	if len(scores) > 1 {
		stdev, err = stats.StandardDeviationSample(scores)
		if err != nil {
			return nil, fmt.Errorf("failed to compute stdev: %w", err)
		}
	}

	return &ScoreMetricsResult{
		RangeStart: rangeStart,
		RangeEnd:   rangeEnd,
		Count:      len(ranked),
		Mean:       round(mean, 2),
		Median:     round(median, 2),
		Stdev:      round(stdev, 2),
		P90:        round(p90, 2),
		Best:       ranked[0].Date,
		Worst:      ranked[len(ranked)-1].Date,
		BandCounts: bands,
	}, nil
}

func bandOf(interpretation string) string {
	for i, c := range interpretation {
		if c == ':' {
			return interpretation[:i]
		}
	}
	return interpretation
}
