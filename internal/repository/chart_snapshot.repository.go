package repository

import (
	"astrocore/internal/calculator"
	"astrocore/internal/domain"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
)

type ChartSnapshotListFilter struct {
	Start *time.Time
	End   *time.Time
}

// ChartSnapshotRepository reads ephemeris snapshots produced by an external
// position provider.
type ChartSnapshotRepository interface {
	List(filter ChartSnapshotListFilter) ([]domain.ChartSnapshot, error)
	Get(date time.Time) (*domain.ChartSnapshot, error)
}

type chartSnapshotRepositoryHandler struct {
	Path string
}

func NewChartSnapshotRepository(path string) ChartSnapshotRepository {
	return chartSnapshotRepositoryHandler{Path: path}
}

// chartSnapshotRow is one point of one snapshot; rows sharing a date form
// a single chart.
type chartSnapshotRow struct {
	Date       string  `csv:"date"`
	Point      string  `csv:"point"`
	Longitude  float64 `csv:"longitude"`
	Speed      float64 `csv:"speed"`
	House      int     `csv:"house"`
	Retrograde bool    `csv:"retrograde"`
	Sunrise    string  `csv:"sunrise"`
	Sunset     string  `csv:"sunset"`
}

func (h chartSnapshotRepositoryHandler) List(filter ChartSnapshotListFilter) ([]domain.ChartSnapshot, error) {
	all, err := h.load()
	if err != nil {
		return nil, err
	}

	out := []domain.ChartSnapshot{}
	for _, s := range all {
		if filter.Start != nil && s.Date.Before(*filter.Start) {
			continue
		}
		if filter.End != nil && s.Date.After(*filter.End) {
			continue
		}
		out = append(out, s)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})

	return out, nil
}

func (h chartSnapshotRepositoryHandler) Get(date time.Time) (*domain.ChartSnapshot, error) {
	all, err := h.load()
	if err != nil {
		return nil, err
	}
	for _, s := range all {
		if s.Date.Equal(date) {
			return &s, nil
		}
	}
	return nil, fmt.Errorf("no snapshot for %s in %s", date.Format(time.RFC3339), h.Path)
}

func (h chartSnapshotRepositoryHandler) load() ([]domain.ChartSnapshot, error) {
	f, err := os.Open(h.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot file: %w", err)
	}
	defer f.Close()

	var snapshots []domain.ChartSnapshot
	if strings.EqualFold(filepath.Ext(h.Path), ".csv") {
		rows := []chartSnapshotRow{}
		if err := gocsv.UnmarshalFile(f, &rows); err != nil {
			return nil, fmt.Errorf("failed to parse snapshot csv %s: %w", h.Path, err)
		}
		snapshots, err = snapshotsFromRows(rows)
		if err != nil {
			return nil, err
		}
	} else {
		if err := json.NewDecoder(f).Decode(&snapshots); err != nil {
			return nil, fmt.Errorf("failed to parse snapshot json %s: %w", h.Path, err)
		}
	}

	for i := range snapshots {
		snapshots[i].Chart = normalizeChart(snapshots[i].Chart)
	}
	return snapshots, nil
}

func snapshotsFromRows(rows []chartSnapshotRow) ([]domain.ChartSnapshot, error) {
	out := []domain.ChartSnapshot{}
	index := map[string]int{}
	for _, row := range rows {
		i, ok := index[row.Date]
		if !ok {
			date, err := time.Parse(time.RFC3339, row.Date)
			if err != nil {
				return nil, fmt.Errorf("failed to parse snapshot date %q: %w", row.Date, err)
			}
			snapshot := domain.ChartSnapshot{Date: date}
			if snapshot.Sunrise, err = parseOptionalTime(row.Sunrise); err != nil {
				return nil, err
			}
			if snapshot.Sunset, err = parseOptionalTime(row.Sunset); err != nil {
				return nil, err
			}
			out = append(out, snapshot)
			i = len(out) - 1
			index[row.Date] = i
		}

		p := domain.Point{
			Name:       row.Point,
			Longitude:  row.Longitude,
			Speed:      row.Speed,
			House:      row.House,
			Retrograde: row.Retrograde,
			Kind:       domain.PointKind_Transit,
		}
		chart := &out[i].Chart
		switch p.Name {
		case domain.AscendantName:
			chart.Ascendant = &p
		case domain.MCName:
			chart.MC = &p
		default:
			chart.Planets = append(chart.Planets, p)
		}
	}
	return out, nil
}

func parseOptionalTime(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, fmt.Errorf("failed to parse time %q: %w", s, err)
	}
	return &t, nil
}

func normalizeChart(c domain.Chart) domain.Chart {
	c.Planets = calculator.NormalizePoints(c.Planets)
	if c.Ascendant != nil {
		asc := calculator.NormalizePoint(*c.Ascendant)
		c.Ascendant = &asc
	}
	if c.MC != nil {
		mc := calculator.NormalizePoint(*c.MC)
		c.MC = &mc
	}
	return c
}
