package app

import (
	"astrocore/internal/domain"
	"astrocore/internal/logger"
	"astrocore/internal/repository"
	l3_service "astrocore/internal/service/l3"
	"astrocore/internal/util"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

type ElectionAppOptions struct {
	Workers        int
	Latitude       float64
	Location       *time.Location
	RankExpression string
	AspectOptions  domain.AspectOptions
}

type FindBestDatesInput struct {
	EventType       domain.EventType
	Start           time.Time
	End             time.Time
	Limit           int
	IncludeAnalysis bool
}

type SkippedSnapshot struct {
	Date   time.Time `json:"date"`
	Reason string    `json:"reason"`
}

type FindBestDatesResult struct {
	RunID   uuid.UUID                      `json:"runId"`
	Dates   []domain.RankedDate            `json:"dates"`
	Summary *l3_service.ScoreMetricsResult `json:"summary,omitempty"`
	Skipped []SkippedSnapshot              `json:"skipped"`
	Profile *util.PerformanceProfile       `json:"profile,omitempty"`
}

// ElectionApp scores stored snapshots for one event type, either a whole
// date range ranked best first or the single snapshot cast for an instant.
type ElectionApp interface {
	FindBestDates(ctx context.Context, in FindBestDatesInput) (*FindBestDatesResult, error)
	ElectSnapshot(ctx context.Context, eventType domain.EventType, at time.Time) (*domain.ElectionAnalysis, error)
}

type electionAppHandler struct {
	ChartSnapshotRepository repository.ChartSnapshotRepository
	ElectionalService       l3_service.ElectionalService
	DateRangeService        l3_service.DateRangeService
	Options                 ElectionAppOptions
}

func NewElectionApp(
	chartSnapshotRepository repository.ChartSnapshotRepository,
	electionalService l3_service.ElectionalService,
	dateRangeService l3_service.DateRangeService,
	options ElectionAppOptions,
) ElectionApp {
	if options.Workers <= 0 {
		options.Workers = 1
	}
	return electionAppHandler{
		ChartSnapshotRepository: chartSnapshotRepository,
		ElectionalService:       electionalService,
		DateRangeService:        dateRangeService,
		Options:                 options,
	}
}

type analyzeWorkInput struct {
	index    int
	snapshot domain.ChartSnapshot
}

type analyzeWorkResult struct {
	index    int
	analysis *domain.ElectionAnalysis
	err      error
}

func (h electionAppHandler) FindBestDates(ctx context.Context, in FindBestDatesInput) (*FindBestDatesResult, error) {
	runID := uuid.New()
	log := logger.FromContext(ctx).With("runId", runID.String(), "eventType", in.EventType)
	profile := util.GetPerformanceProfile(ctx)
	if profile == nil {
		profile = &util.PerformanceProfile{}
		ctx = util.WithPerformanceProfile(ctx, profile)
	}
	profile.Add("start")

	if in.End.Before(in.Start) {
		return nil, fmt.Errorf("range end %s is before start %s", in.End.Format(time.DateOnly), in.Start.Format(time.DateOnly))
	}
	if _, err := h.ElectionalService.GetElectionalGuidelines(in.EventType); err != nil {
		return nil, err
	}

	end := util.EndOfDay(in.End)
	snapshots, err := h.ChartSnapshotRepository.List(repository.ChartSnapshotListFilter{
		Start: &in.Start,
		End:   &end,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	profile.Add("load snapshots")
	log.Infow("scoring snapshots", "count", len(snapshots), "workers", h.Options.Workers)

	results, err := h.analyzeSnapshots(ctx, in.EventType, snapshots)
	if err != nil {
		return nil, err
	}

	analyses := []domain.ElectionAnalysis{}
	skipped := []SkippedSnapshot{}
	for i, res := range results {
		if res.err != nil {
			log.Warnw("skipping snapshot", "date", snapshots[i].Date, "error", res.err)
			skipped = append(skipped, SkippedSnapshot{
				Date:   snapshots[i].Date,
				Reason: res.err.Error(),
			})
			continue
		}
		analyses = append(analyses, *res.analysis)
	}

	ranked, err := h.DateRangeService.RankAnalyses(analyses, h.Options.RankExpression, in.IncludeAnalysis)
	if err != nil {
		return nil, fmt.Errorf("failed to rank dates: %w", err)
	}

	var summary *l3_service.ScoreMetricsResult
	if len(ranked) > 0 {
		summary, err = l3_service.CalculateScoreMetrics(in.Start, in.End, ranked)
		if err != nil {
			return nil, fmt.Errorf("failed to summarize scores: %w", err)
		}
	}
	if in.Limit > 0 && len(ranked) > in.Limit {
		ranked = ranked[:in.Limit]
	}
	profile.Add("rank")

	log.Infow("finished scoring", "ranked", len(analyses), "skipped", len(skipped), "elapsedMs", profile.Total)

	return &FindBestDatesResult{
		RunID:   runID,
		Dates:   ranked,
		Summary: summary,
		Skipped: skipped,
		Profile: profile,
	}, nil
}

// analyzeSnapshots scores snapshots on a fixed pool of workers. Results are
// indexed like snapshots so ranking ties stay in chronological order.
func (h electionAppHandler) analyzeSnapshots(ctx context.Context, eventType domain.EventType, snapshots []domain.ChartSnapshot) ([]analyzeWorkResult, error) {
	inputCh := make(chan analyzeWorkInput, len(snapshots))
	resultCh := make(chan analyzeWorkResult, len(snapshots))
	for i, s := range snapshots {
		inputCh <- analyzeWorkInput{index: i, snapshot: s}
	}
	close(inputCh)

	var wg sync.WaitGroup
	for i := 0; i < h.Options.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case input, ok := <-inputCh:
					if !ok {
						return
					}
					analysis, err := h.ElectionalService.AnalyzeElection(h.analyzeInput(eventType, input.snapshot))
					if err != nil {
						err = fmt.Errorf("failed to analyze %s: %w", input.snapshot.Date.Format(time.RFC3339), err)
					}
					resultCh <- analyzeWorkResult{
						index:    input.index,
						analysis: analysis,
						err:      err,
					}
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(resultCh)
	}()

	results := make([]analyzeWorkResult, len(snapshots))
	for res := range resultCh {
		results[res.index] = res
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("scoring cancelled: %w", err)
	}
	util.GetPerformanceProfile(ctx).Add("analyze snapshots")

	return results, nil
}

// ElectSnapshot scores the snapshot cast exactly at at, using its stored
// sunrise and sunset for the planetary hour.
func (h electionAppHandler) ElectSnapshot(ctx context.Context, eventType domain.EventType, at time.Time) (*domain.ElectionAnalysis, error) {
	snapshot, err := h.ChartSnapshotRepository.Get(at)
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}
	analysis, err := h.ElectionalService.AnalyzeElection(h.analyzeInput(eventType, *snapshot))
	if err != nil {
		return nil, fmt.Errorf("failed to analyze election: %w", err)
	}
	logger.FromContext(ctx).Debugw("scored snapshot", "date", at, "eventType", eventType, "score", analysis.Score.Total)
	return analysis, nil
}

func (h electionAppHandler) analyzeInput(eventType domain.EventType, snapshot domain.ChartSnapshot) l3_service.AnalyzeElectionInput {
	return l3_service.AnalyzeElectionInput{
		DateTime:      snapshot.Date,
		EventType:     eventType,
		Chart:         snapshot.Chart,
		Sunrise:       snapshot.Sunrise,
		Sunset:        snapshot.Sunset,
		Latitude:      h.Options.Latitude,
		Location:      h.Options.Location,
		AspectOptions: h.Options.AspectOptions,
	}
}
