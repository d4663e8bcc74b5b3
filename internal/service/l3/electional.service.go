package l3_service

import (
	"astrocore/internal/calculator"
	"astrocore/internal/domain"
	l1_service "astrocore/internal/service/l1"
	l2_service "astrocore/internal/service/l2"
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// breakdown keys
const (
	Breakdown_MoonPhase     = "moonPhaseAppropriate"
	Breakdown_MoonSign      = "moonSignAppropriate"
	Breakdown_Aspects       = "aspectFavorability"
	Breakdown_VoidOfCourse  = "voidOfCourse"
	Breakdown_PlanetaryHour = "planetaryHourAppropriate"
)

const (
	moonPhaseBestWeight     = 20
	moonPhaseOtherWeight    = 5
	moonSignBestWeight      = 20
	moonSignNeutralWeight   = 10
	retrogradeBudget        = 20
	aspectBase              = 15
	aspectStep              = 3
	aspectCeiling           = 30
	voidOfCoursePenalty     = -20
	planetaryHourBestWeight = 10
	planetaryHourWeight     = 5
)

// DirectBreakdownKey names the breakdown entry for a planet that should not
// be retrograde, e.g. "mercuryDirect".
func DirectBreakdownKey(p domain.Planet) string {
	name := string(p)
	if name == "" {
		return "direct"
	}
	return strings.ToLower(name[:1]) + name[1:] + "Direct"
}

type AnalyzeElectionInput struct {
	DateTime      time.Time
	EventType     domain.EventType
	Chart         domain.Chart
	Sunrise       *time.Time
	Sunset        *time.Time
	Latitude      float64
	Location      *time.Location
	AspectOptions domain.AspectOptions
}

type ElectionalService interface {
	AnalyzeElection(in AnalyzeElectionInput) (*domain.ElectionAnalysis, error)
	GetElectionalGuidelines(eventType domain.EventType) (domain.ElectionalGuideline, error)
}

type electionalServiceHandler struct {
	AspectService        l1_service.AspectService
	PlanetaryHourService l1_service.PlanetaryHourService
	LunarService         l2_service.LunarService
}

func NewElectionalService(
	aspectService l1_service.AspectService,
	planetaryHourService l1_service.PlanetaryHourService,
	lunarService l2_service.LunarService,
) ElectionalService {
	return electionalServiceHandler{
		AspectService:        aspectService,
		PlanetaryHourService: planetaryHourService,
		LunarService:         lunarService,
	}
}

func (h electionalServiceHandler) GetElectionalGuidelines(eventType domain.EventType) (domain.ElectionalGuideline, error) {
	return GetElectionalGuidelines(eventType)
}

// AnalyzeElection scores a moment for an event type. Sun and Moon are
// required; every other missing point only lowers the score.
func (h electionalServiceHandler) AnalyzeElection(in AnalyzeElectionInput) (*domain.ElectionAnalysis, error) {
	guideline, err := GetElectionalGuidelines(in.EventType)
	if err != nil {
		return nil, err
	}
	sun := in.Chart.Find(string(domain.Sun))
	if sun == nil {
		return nil, domain.MissingPointError{Point: string(domain.Sun)}
	}
	moon := in.Chart.Find(string(domain.Moon))
	if moon == nil {
		return nil, domain.MissingPointError{Point: string(domain.Moon)}
	}

	breakdown := map[string]float64{}
	recommendations := []string{}
	warnings := []string{}

	phase := h.LunarService.GetMoonPhase(sun.Longitude, moon.Longitude)
	if slices.Contains(guideline.BestMoonPhases, phase) {
		breakdown[Breakdown_MoonPhase] = moonPhaseBestWeight
		recommendations = append(recommendations, fmt.Sprintf("The %s Moon supports %s", phaseLabel(phase), eventLabel(in.EventType)))
	} else {
		breakdown[Breakdown_MoonPhase] = moonPhaseOtherWeight
		recommendations = append(recommendations, fmt.Sprintf("Prefer a %s Moon", joinPhases(guideline.BestMoonPhases)))
	}

	moonSign := calculator.SignOf(moon.Longitude)
	switch {
	case slices.Contains(guideline.BestMoonSigns, moonSign):
		breakdown[Breakdown_MoonSign] = moonSignBestWeight
		recommendations = append(recommendations, fmt.Sprintf("Moon in %s is favorable", moonSign))
	case slices.Contains(guideline.AvoidMoonSigns, moonSign):
		breakdown[Breakdown_MoonSign] = 0
		warnings = append(warnings, fmt.Sprintf("Moon in %s is unfavorable for %s", moonSign, eventLabel(in.EventType)))
	default:
		breakdown[Breakdown_MoonSign] = moonSignNeutralWeight
	}

	retrogrades := []string{}
	for _, p := range in.Chart.Planets {
		if p.IsRetrograde() {
			retrogrades = append(retrogrades, p.Name)
		}
	}
	if len(guideline.AvoidRetrogrades) > 0 {
		share := float64(retrogradeBudget) / float64(len(guideline.AvoidRetrogrades))
		for _, planet := range guideline.AvoidRetrogrades {
			key := DirectBreakdownKey(planet)
			p := in.Chart.Find(string(planet))
			if p != nil && p.IsRetrograde() {
				breakdown[key] = 0
				warnings = append(warnings, fmt.Sprintf("%s retrograde", planet))
				continue
			}
			breakdown[key] = round(share, 2)
		}
	}

	classification := h.AspectService.ClassifyAspects(&in.Chart, in.AspectOptions)
	benefic, malefic := len(classification.Benefic), len(classification.Malefic)
	breakdown[Breakdown_Aspects] = clamp(float64(aspectBase+aspectStep*benefic-aspectStep*malefic), 0, aspectCeiling)
	if malefic > benefic {
		warnings = append(warnings, fmt.Sprintf("Challenging aspects (%d) outnumber supportive ones (%d)", malefic, benefic))
	} else if benefic > 0 {
		recommendations = append(recommendations, fmt.Sprintf("%d supportive aspect(s) in the chart", benefic))
	}

	voc := h.LunarService.CheckVoidOfCourse(&in.Chart)
	if voc.IsVoid {
		breakdown[Breakdown_VoidOfCourse] = voidOfCoursePenalty
		warnings = append(warnings, "Void of Course Moon")
	} else {
		breakdown[Breakdown_VoidOfCourse] = 0
	}

	var currentHour *domain.PlanetaryHour
	if in.Sunrise != nil && in.Sunset != nil {
		currentHour, err = h.PlanetaryHourService.CalculatePlanetaryHour(l1_service.PlanetaryHourInput{
			Instant:  in.DateTime,
			Latitude: in.Latitude,
			Sunrise:  *in.Sunrise,
			Sunset:   *in.Sunset,
			Location: in.Location,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to calculate planetary hour: %w", err)
		}
		if slices.Contains(guideline.BestHourRulers, currentHour.Planet) {
			breakdown[Breakdown_PlanetaryHour] = planetaryHourBestWeight
			recommendations = append(recommendations, fmt.Sprintf("The hour of %s suits %s", currentHour.Planet, eventLabel(in.EventType)))
		} else {
			breakdown[Breakdown_PlanetaryHour] = planetaryHourWeight
		}
	}

	if slices.Contains(guideline.BestDays, in.DateTime.Weekday()) {
		recommendations = append(recommendations, fmt.Sprintf("%s is a traditionally favored day", in.DateTime.Weekday()))
	}
	recommendations = append(recommendations, guideline.Tips...)

	total := 0.0
	for _, v := range breakdown {
		total += v
	}
	total = round(clamp(total, 0, 100), 1)

	return &domain.ElectionAnalysis{
		DateTime:  in.DateTime,
		EventType: in.EventType,
		Score: domain.ElectionalScore{
			Breakdown:      breakdown,
			Total:          total,
			Interpretation: InterpretScore(total),
		},
		MoonPhase:         phase,
		MoonIllumination:  h.LunarService.MoonIllumination(sun.Longitude, moon.Longitude),
		MoonSign:          moonSign,
		VoidOfCourse:      voc,
		CurrentHour:       currentHour,
		RetrogradePlanets: retrogrades,
		BeneficAspects:    classification.Benefic,
		MaleficAspects:    classification.Malefic,
		Recommendations:   recommendations,
		Warnings:          warnings,
	}, nil
}

// InterpretScore maps a 0-100 total onto its quality band.
func InterpretScore(total float64) string {
	switch {
	case total >= 80:
		return "Excellent: highly favorable timing"
	case total >= 60:
		return "Good: favorable with minor drawbacks"
	case total >= 40:
		return "Fair: workable but not ideal"
	default:
		return "Poor: consider another date"
	}
}

func phaseLabel(p domain.MoonPhase) string {
	return strings.ReplaceAll(string(p), "_", " ")
}

func eventLabel(e domain.EventType) string {
	return strings.ReplaceAll(string(e), "_", " ")
}

func joinPhases(phases []domain.MoonPhase) string {
	labels := make([]string, 0, len(phases))
	for _, p := range phases {
		labels = append(labels, phaseLabel(p))
	}
	return strings.Join(labels, " or ")
}

func clamp(f, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, f))
}

func round(f float64, places int32) float64 {
	return decimal.NewFromFloat(f).Round(places).InexactFloat64()
}
