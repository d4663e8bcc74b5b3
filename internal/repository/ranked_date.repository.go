package repository

import (
	"astrocore/internal/domain"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
)

type RankedDateFormat string

const (
	RankedDateFormat_JSON RankedDateFormat = "json"
	RankedDateFormat_CSV  RankedDateFormat = "csv"
)

type RankedDateRepository interface {
	Write(w io.Writer, ranked []domain.RankedDate, format RankedDateFormat) error
}

type rankedDateRepositoryHandler struct{}

func NewRankedDateRepository() RankedDateRepository {
	return rankedDateRepositoryHandler{}
}

type rankedDateRow struct {
	Rank           int     `csv:"rank"`
	Date           string  `csv:"date"`
	Score          float64 `csv:"score"`
	Interpretation string  `csv:"interpretation"`
	MoonPhase      string  `csv:"moon_phase"`
	MoonSign       string  `csv:"moon_sign"`
	Warnings       string  `csv:"warnings"`
}

func (h rankedDateRepositoryHandler) Write(w io.Writer, ranked []domain.RankedDate, format RankedDateFormat) error {
	switch format {
	case RankedDateFormat_CSV:
		rows := make([]rankedDateRow, 0, len(ranked))
		for i, r := range ranked {
			row := rankedDateRow{
				Rank:           i + 1,
				Date:           r.Date.Format(time.RFC3339),
				Score:          r.Score,
				Interpretation: r.Interpretation,
			}
			if r.Analysis != nil {
				row.MoonPhase = string(r.Analysis.MoonPhase)
				row.MoonSign = r.Analysis.MoonSign.String()
				row.Warnings = strings.Join(r.Analysis.Warnings, "; ")
			}
			rows = append(rows, row)
		}
		if err := gocsv.Marshal(rows, w); err != nil {
			return fmt.Errorf("failed to write ranked dates csv: %w", err)
		}
		return nil
	case RankedDateFormat_JSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(ranked); err != nil {
			return fmt.Errorf("failed to write ranked dates json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}
