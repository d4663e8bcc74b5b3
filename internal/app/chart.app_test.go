package app

import (
	"astrocore/internal/domain"
	mock_repository "astrocore/internal/repository/mocks"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestChartApp(chartRepository *mock_repository.MockChartRepository) ChartApp {
	aspectService, midpointService, lunarService, electionalService, _ := newTestServices()
	return NewChartApp(chartRepository, aspectService, midpointService, lunarService, electionalService, ElectionAppOptions{})
}

func TestChartApp(t *testing.T) {
	natal := &domain.Chart{Planets: []domain.Point{
		{Name: "Sun", Longitude: 10, Sign: domain.Aries},
		{Name: "Moon", Longitude: 130, Sign: domain.Leo},
		{Name: "Venus", Longitude: 40, Sign: domain.Taurus},
		{Name: "Mars", Longitude: 100, Sign: domain.Cancer},
		{Name: "Jupiter", Longitude: 160, Sign: domain.Virgo},
	}}

	t.Run("aspects are classified", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		chartRepository := mock_repository.NewMockChartRepository(ctrl)
		chartRepository.EXPECT().Get("natal.json").Return(natal, nil)

		out, err := newTestChartApp(chartRepository).Aspects(testContext(), "natal.json")
		require.NoError(t, err)
		require.Contains(t, out.Benefic, "Sun trine Moon")
		require.NotEmpty(t, out.Matches)
	})

	t.Run("synastry loads both charts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		chartRepository := mock_repository.NewMockChartRepository(ctrl)
		chartRepository.EXPECT().Get("a.json").Return(natal, nil)
		chartRepository.EXPECT().Get("b.json").Return(&domain.Chart{Planets: []domain.Point{{Name: "Saturn", Longitude: 190}}}, nil)

		out, err := newTestChartApp(chartRepository).Synastry(testContext(), "a.json", "b.json")
		require.NoError(t, err)
		require.Len(t, out, 3)
		// exact sextile outranks the exact opposition and square
		require.Equal(t, "Moon sextile Saturn", out[0].Display())
		displays := []string{}
		for _, m := range out {
			displays = append(displays, m.Display())
		}
		require.ElementsMatch(t, []string{"Moon sextile Saturn", "Sun opposition Saturn", "Mars square Saturn"}, displays)
	})

	t.Run("midpoints within and across charts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		chartRepository := mock_repository.NewMockChartRepository(ctrl)
		chartRepository.EXPECT().Get("natal.json").Return(natal, nil).Times(2)
		chartRepository.EXPECT().Get("transit.json").Return(&domain.Chart{Planets: []domain.Point{{Name: "Pluto", Longitude: 70}}}, nil)

		h := newTestChartApp(chartRepository)
		single, err := h.Midpoints(testContext(), "natal.json", "", 1)
		require.NoError(t, err)
		require.NotEmpty(t, single.Midpoints)

		// Sun/Moon midpoint sits at 70
		cross, err := h.Midpoints(testContext(), "natal.json", "transit.json", 1)
		require.NoError(t, err)
		found := false
		for _, a := range cross.Activations {
			if a.Activator == "A:Pluto" && a.Midpoint.ID == "Sun/Moon" {
				found = true
			}
		}
		require.True(t, found)
	})

	t.Run("moon report", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		chartRepository := mock_repository.NewMockChartRepository(ctrl)
		chartRepository.EXPECT().Get("natal.json").Return(natal, nil)

		out, err := newTestChartApp(chartRepository).Moon(testContext(), "natal.json")
		require.NoError(t, err)
		require.Equal(t, domain.MoonPhase_FirstQuarter, out.Phase)
		require.Equal(t, domain.Leo, out.Sign)
	})

	t.Run("moon report needs the sun", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		chartRepository := mock_repository.NewMockChartRepository(ctrl)
		chartRepository.EXPECT().Get("moon.json").Return(&domain.Chart{Planets: []domain.Point{{Name: "Moon", Longitude: 1}}}, nil)

		_, err := newTestChartApp(chartRepository).Moon(testContext(), "moon.json")
		var missing domain.MissingPointError
		require.True(t, errors.As(err, &missing))
	})

	t.Run("elect", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		chartRepository := mock_repository.NewMockChartRepository(ctrl)
		chartRepository.EXPECT().Get("now.json").Return(natal, nil)

		out, err := newTestChartApp(chartRepository).Elect(testContext(), ElectInput{
			ChartPath: "now.json",
			EventType: domain.EventType_Marriage,
			DateTime:  time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)
		require.Equal(t, domain.EventType_Marriage, out.EventType)
		require.GreaterOrEqual(t, out.Score.Total, 0.0)
	})

	t.Run("load error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		chartRepository := mock_repository.NewMockChartRepository(ctrl)
		chartRepository.EXPECT().Get("missing.json").Return(nil, fmt.Errorf("no such file"))

		_, err := newTestChartApp(chartRepository).Aspects(testContext(), "missing.json")
		require.ErrorContains(t, err, "failed to load chart")
	})
}
