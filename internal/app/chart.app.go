package app

import (
	"astrocore/internal/domain"
	"astrocore/internal/logger"
	"astrocore/internal/repository"
	l1_service "astrocore/internal/service/l1"
	l2_service "astrocore/internal/service/l2"
	l3_service "astrocore/internal/service/l3"
	"context"
	"fmt"
	"time"
)

type MidpointReport struct {
	Midpoints   []domain.Midpoint           `json:"midpoints"`
	Activations []domain.MidpointActivation `json:"activations"`
}

type MoonReport struct {
	Phase        domain.MoonPhase          `json:"phase"`
	Illumination float64                   `json:"illumination"`
	Sign         domain.Sign               `json:"sign"`
	VoidOfCourse domain.VoidOfCourseResult `json:"voidOfCourse"`
}

type ElectInput struct {
	ChartPath string
	EventType domain.EventType
	DateTime  time.Time
	Sunrise   *time.Time
	Sunset    *time.Time
}

// ChartApp runs single-chart and two-chart calculations on chart files.
type ChartApp interface {
	Aspects(ctx context.Context, chartPath string) (*domain.AspectClassification, error)
	Synastry(ctx context.Context, chartPathA, chartPathB string) ([]domain.AspectMatch, error)
	Midpoints(ctx context.Context, chartPath, otherChartPath string, orb float64) (*MidpointReport, error)
	Moon(ctx context.Context, chartPath string) (*MoonReport, error)
	Elect(ctx context.Context, in ElectInput) (*domain.ElectionAnalysis, error)
}

type chartAppHandler struct {
	ChartRepository   repository.ChartRepository
	AspectService     l1_service.AspectService
	MidpointService   l1_service.MidpointService
	LunarService      l2_service.LunarService
	ElectionalService l3_service.ElectionalService
	Options           ElectionAppOptions
}

func NewChartApp(
	chartRepository repository.ChartRepository,
	aspectService l1_service.AspectService,
	midpointService l1_service.MidpointService,
	lunarService l2_service.LunarService,
	electionalService l3_service.ElectionalService,
	options ElectionAppOptions,
) ChartApp {
	return chartAppHandler{
		ChartRepository:   chartRepository,
		AspectService:     aspectService,
		MidpointService:   midpointService,
		LunarService:      lunarService,
		ElectionalService: electionalService,
		Options:           options,
	}
}

func (h chartAppHandler) load(ctx context.Context, path string) (*domain.Chart, error) {
	chart, err := h.ChartRepository.Get(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load chart: %w", err)
	}
	logger.FromContext(ctx).Debugw("loaded chart", "path", path, "points", len(chart.AllPoints()))
	return chart, nil
}

func (h chartAppHandler) Aspects(ctx context.Context, chartPath string) (*domain.AspectClassification, error) {
	chart, err := h.load(ctx, chartPath)
	if err != nil {
		return nil, err
	}
	out := h.AspectService.ClassifyAspects(chart, h.Options.AspectOptions)
	return &out, nil
}

func (h chartAppHandler) Synastry(ctx context.Context, chartPathA, chartPathB string) ([]domain.AspectMatch, error) {
	chartA, err := h.load(ctx, chartPathA)
	if err != nil {
		return nil, err
	}
	chartB, err := h.load(ctx, chartPathB)
	if err != nil {
		return nil, err
	}
	return h.AspectService.FindAspects(chartA, chartB, h.Options.AspectOptions), nil
}

// Midpoints reports the chart's midpoints and their activations. With a
// second chart the activators are that chart's points, prefixed "A:".
func (h chartAppHandler) Midpoints(ctx context.Context, chartPath, otherChartPath string, orb float64) (*MidpointReport, error) {
	chart, err := h.load(ctx, chartPath)
	if err != nil {
		return nil, err
	}
	report := &MidpointReport{
		Midpoints: h.MidpointService.CalculateMidpoints(chart),
	}
	if otherChartPath == "" {
		report.Activations = h.MidpointService.FindMidpointActivations(chart, orb)
		return report, nil
	}

	other, err := h.load(ctx, otherChartPath)
	if err != nil {
		return nil, err
	}
	report.Activations = h.MidpointService.FindCrossMidpointActivations(other, chart, orb)
	return report, nil
}

func (h chartAppHandler) Moon(ctx context.Context, chartPath string) (*MoonReport, error) {
	chart, err := h.load(ctx, chartPath)
	if err != nil {
		return nil, err
	}
	sun := chart.Find(string(domain.Sun))
	if sun == nil {
		return nil, domain.MissingPointError{Point: string(domain.Sun)}
	}
	moon := chart.Find(string(domain.Moon))
	if moon == nil {
		return nil, domain.MissingPointError{Point: string(domain.Moon)}
	}

	return &MoonReport{
		Phase:        h.LunarService.GetMoonPhase(sun.Longitude, moon.Longitude),
		Illumination: h.LunarService.MoonIllumination(sun.Longitude, moon.Longitude),
		Sign:         moon.Sign,
		VoidOfCourse: h.LunarService.CheckVoidOfCourse(chart),
	}, nil
}

func (h chartAppHandler) Elect(ctx context.Context, in ElectInput) (*domain.ElectionAnalysis, error) {
	chart, err := h.load(ctx, in.ChartPath)
	if err != nil {
		return nil, err
	}
	analysis, err := h.ElectionalService.AnalyzeElection(l3_service.AnalyzeElectionInput{
		DateTime:      in.DateTime,
		EventType:     in.EventType,
		Chart:         *chart,
		Sunrise:       in.Sunrise,
		Sunset:        in.Sunset,
		Latitude:      h.Options.Latitude,
		Location:      h.Options.Location,
		AspectOptions: h.Options.AspectOptions,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to analyze election: %w", err)
	}
	return analysis, nil
}
