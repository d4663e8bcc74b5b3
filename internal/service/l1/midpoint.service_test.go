package l1_service

import (
	"astrocore/internal/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMidpointService_CalculateMidpoints(t *testing.T) {
	h := NewMidpointService()

	t.Run("only catalog pairs present in the chart", func(t *testing.T) {
		out := h.CalculateMidpoints(chartOf(
			domain.Point{Name: "Sun", Longitude: 0},
			domain.Point{Name: "Moon", Longitude: 60},
		))
		require.Len(t, out, 1)
		mp := out[0]
		require.Equal(t, "Sun/Moon", mp.ID)
		require.Equal(t, "Soul Point", mp.Name)
		require.InDelta(t, 30.0, mp.Longitude, 1e-9)
		require.Equal(t, domain.Taurus, mp.Sign)
		require.Equal(t, 0, mp.Degree)
		require.Equal(t, 0, mp.Minute)
		require.NotEmpty(t, mp.Keywords)
	})

	t.Run("shorter arc across aries", func(t *testing.T) {
		out := h.CalculateMidpoints(chartOf(
			domain.Point{Name: "Venus", Longitude: 350},
			domain.Point{Name: "Mars", Longitude: 20.5},
		))
		require.Len(t, out, 1)
		require.Equal(t, "Passion Point", out[0].Name)
		require.InDelta(t, 5.25, out[0].Longitude, 1e-9)
		require.Equal(t, 5, out[0].Degree)
		require.Equal(t, 15, out[0].Minute)
	})

	t.Run("missing planets are skipped", func(t *testing.T) {
		require.Empty(t, h.CalculateMidpoints(chartOf(domain.Point{Name: "Sun", Longitude: 0})))
		require.Empty(t, h.CalculateMidpoints(nil))
	})
}

func TestMidpointService_FindMidpointActivations(t *testing.T) {
	h := NewMidpointService()

	t.Run("conjunction and square, tightest first", func(t *testing.T) {
		chart := &domain.Chart{
			Planets: []domain.Point{
				{Name: "Sun", Longitude: 0},
				{Name: "Moon", Longitude: 60},
				{Name: "Jupiter", Longitude: 30.5},
			},
			MC: &domain.Point{Name: "MC", Longitude: 120},
		}
		out := h.FindMidpointActivations(chart, 1)
		require.Len(t, out, 2)

		require.Equal(t, "MC", out[0].Activator)
		require.Equal(t, domain.AspectType_Square, out[0].AspectType)
		require.Equal(t, 0.0, out[0].Orb)
		require.Equal(t, "Sun/Moon", out[0].Midpoint.ID)

		require.Equal(t, "Jupiter", out[1].Activator)
		require.Equal(t, domain.AspectType_Conjunction, out[1].AspectType)
		require.Equal(t, 0.5, out[1].Orb)
		require.Equal(t, "Jupiter conjunct Soul Point (Sun/Moon)", out[1].Description)
	})

	t.Run("forming planets never activate their own midpoint", func(t *testing.T) {
		chart := chartOf(
			domain.Point{Name: "Sun", Longitude: 10},
			domain.Point{Name: "Moon", Longitude: 10},
			domain.Point{Name: "Venus", Longitude: 10},
		)
		out := h.FindMidpointActivations(chart, 1)
		require.NotEmpty(t, out)
		for _, a := range out {
			require.NotEqual(t, string(a.Midpoint.Planet1), a.Activator)
			require.NotEqual(t, string(a.Midpoint.Planet2), a.Activator)
		}
	})

	t.Run("orb defaults to one degree", func(t *testing.T) {
		chart := chartOf(
			domain.Point{Name: "Sun", Longitude: 0},
			domain.Point{Name: "Moon", Longitude: 60},
			domain.Point{Name: "Saturn", Longitude: 211.5},
		)
		require.Empty(t, h.FindMidpointActivations(chart, 0))

		out := h.FindMidpointActivations(chart, 2)
		require.Len(t, out, 1)
		require.Equal(t, domain.AspectType_Opposition, out[0].AspectType)
	})
}

func TestMidpointService_FindCrossMidpointActivations(t *testing.T) {
	h := NewMidpointService()

	chartA := chartOf(
		domain.Point{Name: "Jupiter", Longitude: 210},
		domain.Point{Name: "Sun", Longitude: 30.2},
	)
	chartB := chartOf(
		domain.Point{Name: "Sun", Longitude: 0},
		domain.Point{Name: "Moon", Longitude: 60},
	)

	out := h.FindCrossMidpointActivations(chartA, chartB, 1)
	require.Len(t, out, 2)

	require.Equal(t, "A:Jupiter", out[0].Activator)
	require.Equal(t, domain.AspectType_Opposition, out[0].AspectType)
	require.Equal(t, "Sun/Moon", out[0].Midpoint.ID)

	// chart A's Sun is not the Sun that formed chart B's midpoint
	require.Equal(t, "A:Sun", out[1].Activator)
	require.Equal(t, domain.AspectType_Conjunction, out[1].AspectType)
	require.InDelta(t, 0.2, out[1].Orb, 1e-9)
}
