package l3_service

import (
	"astrocore/internal/domain"
	"fmt"
	"sort"
	"time"
)

type FindBestDatesInput struct {
	EventType  domain.EventType
	RangeStart time.Time
	RangeEnd   time.Time
	// Snapshots are ranked as given; filtering to the range is the caller's job.
	Snapshots       []domain.ChartSnapshot
	Latitude        float64
	Location        *time.Location
	AspectOptions   domain.AspectOptions
	RankExpression  string
	IncludeAnalysis bool
}

type DateRangeService interface {
	FindBestDates(in FindBestDatesInput) ([]domain.RankedDate, error)
	RankAnalyses(analyses []domain.ElectionAnalysis, rankExpression string, includeAnalysis bool) ([]domain.RankedDate, error)
}

type dateRangeServiceHandler struct {
	ElectionalService ElectionalService
}

func NewDateRangeService(electionalService ElectionalService) DateRangeService {
	return dateRangeServiceHandler{
		ElectionalService: electionalService,
	}
}

func (h dateRangeServiceHandler) FindBestDates(in FindBestDatesInput) ([]domain.RankedDate, error) {
	analyses := make([]domain.ElectionAnalysis, 0, len(in.Snapshots))
	for _, snapshot := range in.Snapshots {
		analysis, err := h.ElectionalService.AnalyzeElection(AnalyzeElectionInput{
			DateTime:      snapshot.Date,
			EventType:     in.EventType,
			Chart:         snapshot.Chart,
			Sunrise:       snapshot.Sunrise,
			Sunset:        snapshot.Sunset,
			Latitude:      in.Latitude,
			Location:      in.Location,
			AspectOptions: in.AspectOptions,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to analyze %s: %w", snapshot.Date.Format(time.RFC3339), err)
		}
		analyses = append(analyses, *analysis)
	}

	return h.RankAnalyses(analyses, in.RankExpression, in.IncludeAnalysis)
}

// RankAnalyses orders analyses best-first. The key is the total score, or
// the value of rankExpression when one is given. Equal keys keep input order.
func (h dateRangeServiceHandler) RankAnalyses(analyses []domain.ElectionAnalysis, rankExpression string, includeAnalysis bool) ([]domain.RankedDate, error) {
	out := make([]domain.RankedDate, 0, len(analyses))
	for i := range analyses {
		a := analyses[i]
		key := a.Score.Total
		if rankExpression != "" {
			var err error
			key, err = EvaluateRankExpression(rankExpression, a)
			if err != nil {
				return nil, fmt.Errorf("failed to rank %s: %w", a.DateTime.Format(time.RFC3339), err)
			}
		}
		ranked := domain.RankedDate{
			Date:           a.DateTime,
			Score:          key,
			Interpretation: a.Score.Interpretation,
		}
		if includeAnalysis {
			ranked.Analysis = &analyses[i]
		}
		out = append(out, ranked)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out, nil
}
