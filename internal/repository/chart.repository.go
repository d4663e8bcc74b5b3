package repository

import (
	"astrocore/internal/domain"
	"encoding/json"
	"fmt"
	"os"
)

type ChartRepository interface {
	Get(path string) (*domain.Chart, error)
}

type chartRepositoryHandler struct{}

func NewChartRepository() ChartRepository {
	return chartRepositoryHandler{}
}

func (h chartRepositoryHandler) Get(path string) (*domain.Chart, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open chart file: %w", err)
	}
	defer f.Close()

	chart := domain.Chart{}
	if err := json.NewDecoder(f).Decode(&chart); err != nil {
		return nil, fmt.Errorf("failed to parse chart %s: %w", path, err)
	}
	chart = normalizeChart(chart)
	return &chart, nil
}
