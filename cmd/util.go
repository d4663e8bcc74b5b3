package cmd

import (
	"astrocore/internal/app"
	"astrocore/internal/domain"
	"astrocore/internal/repository"
	l1_service "astrocore/internal/service/l1"
	l2_service "astrocore/internal/service/l2"
	l3_service "astrocore/internal/service/l3"
	"astrocore/internal/util"
	"fmt"
	"time"
)

type Dependencies struct {
	Config               util.Config
	AspectOptions        domain.AspectOptions
	Location             *time.Location
	ChartApp             app.ChartApp
	PlanetaryHourService l1_service.PlanetaryHourService
	ElectionalService    l3_service.ElectionalService
	DateRangeService     l3_service.DateRangeService
	RankedDateRepository repository.RankedDateRepository
}

func InitializeDependencies(configPath string) (*Dependencies, error) {
	config, err := util.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	location, err := config.Location()
	if err != nil {
		return nil, err
	}
	aspectOptions, err := config.AspectOptions()
	if err != nil {
		return nil, err
	}

	aspectService := l1_service.NewAspectService()
	midpointService := l1_service.NewMidpointService()
	planetaryHourService := l1_service.NewPlanetaryHourService()
	lunarService := l2_service.NewLunarService(aspectService)
	electionalService := l3_service.NewElectionalService(aspectService, planetaryHourService, lunarService)
	dateRangeService := l3_service.NewDateRangeService(electionalService)

	chartApp := app.NewChartApp(
		repository.NewChartRepository(),
		aspectService,
		midpointService,
		lunarService,
		electionalService,
		app.ElectionAppOptions{
			Workers:       config.Workers,
			Latitude:      config.Latitude,
			Location:      location,
			AspectOptions: aspectOptions,
		},
	)

	return &Dependencies{
		Config:               *config,
		AspectOptions:        aspectOptions,
		Location:             location,
		ChartApp:             chartApp,
		PlanetaryHourService: planetaryHourService,
		ElectionalService:    electionalService,
		DateRangeService:     dateRangeService,
		RankedDateRepository: repository.NewRankedDateRepository(),
	}, nil
}

// ElectionApp builds an app over the snapshot file at path.
func (d Dependencies) ElectionApp(snapshotPath string, rankExpression string) app.ElectionApp {
	if rankExpression == "" {
		rankExpression = d.Config.RankExpression
	}
	return app.NewElectionApp(
		repository.NewChartSnapshotRepository(snapshotPath),
		d.ElectionalService,
		d.DateRangeService,
		app.ElectionAppOptions{
			Workers:        d.Config.Workers,
			Latitude:       d.Config.Latitude,
			Location:       d.Location,
			RankExpression: rankExpression,
			AspectOptions:  d.AspectOptions,
		},
	)
}
