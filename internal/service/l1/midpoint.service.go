package l1_service

import (
	"astrocore/internal/calculator"
	"astrocore/internal/domain"
	"fmt"
	"sort"
)

const DefaultMidpointOrb = 1.0

// CrossChartActivatorPrefix marks activators that come from the first chart
// of a cross-chart comparison.
const CrossChartActivatorPrefix = "A:"

type MidpointService interface {
	CalculateMidpoints(chart *domain.Chart) []domain.Midpoint
	FindMidpointActivations(chart *domain.Chart, orb float64) []domain.MidpointActivation
	// FindCrossMidpointActivations builds midpoints from chartB and looks for
	// activators among chartA's points.
	FindCrossMidpointActivations(chartA, chartB *domain.Chart, orb float64) []domain.MidpointActivation
}

type midpointServiceHandler struct {
	Catalog []domain.MidpointDefinition
}

func NewMidpointService() MidpointService {
	return midpointServiceHandler{
		Catalog: domain.MidpointCatalog,
	}
}

type activationAngle struct {
	aspectType domain.AspectType
	angle      float64
	verb       string
}

var activationAngles = []activationAngle{
	{aspectType: domain.AspectType_Conjunction, angle: 0, verb: "conjunct"},
	{aspectType: domain.AspectType_Square, angle: 90, verb: "square"},
	{aspectType: domain.AspectType_Opposition, angle: 180, verb: "opposite"},
}

func (h midpointServiceHandler) CalculateMidpoints(chart *domain.Chart) []domain.Midpoint {
	out := []domain.Midpoint{}
	for _, def := range h.Catalog {
		p1 := chart.Find(string(def.Planet1))
		p2 := chart.Find(string(def.Planet2))
		if p1 == nil || p2 == nil {
			continue
		}
		lon := calculator.MidpointLongitude(p1.Longitude, p2.Longitude)
		keywords := make([]string, len(def.Keywords))
		copy(keywords, def.Keywords)
		out = append(out, domain.Midpoint{
			ID:        def.ID(),
			Planet1:   def.Planet1,
			Planet2:   def.Planet2,
			Longitude: lon,
			Sign:      calculator.SignOf(lon),
			Degree:    calculator.DegreeOf(lon),
			Minute:    calculator.MinuteOf(lon),
			Name:      def.Name,
			Keywords:  keywords,
		})
	}
	return out
}

func (h midpointServiceHandler) FindMidpointActivations(chart *domain.Chart, orb float64) []domain.MidpointActivation {
	midpoints := h.CalculateMidpoints(chart)
	activators := calculator.NormalizePoints(chart.AllPoints())

	out := []domain.MidpointActivation{}
	for _, mp := range midpoints {
		for _, activator := range activators {
			if activator.Name == string(mp.Planet1) || activator.Name == string(mp.Planet2) {
				continue
			}
			if a := activate(mp, activator, activator.Name, orb); a != nil {
				out = append(out, *a)
			}
		}
	}

	sortActivations(out)
	return out
}

func (h midpointServiceHandler) FindCrossMidpointActivations(chartA, chartB *domain.Chart, orb float64) []domain.MidpointActivation {
	midpoints := h.CalculateMidpoints(chartB)
	activators := calculator.NormalizePoints(chartA.AllPoints())

	out := []domain.MidpointActivation{}
	for _, mp := range midpoints {
		for _, activator := range activators {
			label := CrossChartActivatorPrefix + activator.Name
			if a := activate(mp, activator, label, orb); a != nil {
				out = append(out, *a)
			}
		}
	}

	sortActivations(out)
	return out
}

func activate(mp domain.Midpoint, activator domain.Point, label string, orb float64) *domain.MidpointActivation {
	if orb <= 0 {
		orb = DefaultMidpointOrb
	}
	separation := calculator.AngularSeparation(activator.Longitude, mp.Longitude)
	for _, a := range activationAngles {
		d := separation - a.angle
		if d < 0 {
			d = -d
		}
		if d > orb+orbEpsilon {
			continue
		}
		return &domain.MidpointActivation{
			Midpoint:    mp,
			Activator:   label,
			AspectType:  a.aspectType,
			Orb:         round(d, 4),
			Description: fmt.Sprintf("%s %s %s (%s)", label, a.verb, mp.Name, mp.ID),
		}
	}
	return nil
}

// tightest first; equal orbs keep catalog then chart order
func sortActivations(activations []domain.MidpointActivation) {
	sort.SliceStable(activations, func(i, j int) bool {
		return activations[i].Orb < activations[j].Orb
	})
}
