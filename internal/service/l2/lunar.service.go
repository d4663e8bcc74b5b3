package l2_service

import (
	"astrocore/internal/calculator"
	"astrocore/internal/domain"
	l1_service "astrocore/internal/service/l1"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// MeanLunarSpeed stands in when the chart carries no usable Moon speed.
const MeanLunarSpeed = 13.176 // degrees per day

type LunarService interface {
	GetMoonPhase(sunLon, moonLon float64) domain.MoonPhase
	// MoonIllumination is the lit fraction of the disc as a percentage.
	MoonIllumination(sunLon, moonLon float64) float64
	CheckVoidOfCourse(chart *domain.Chart) domain.VoidOfCourseResult
}

type lunarServiceHandler struct {
	AspectService l1_service.AspectService
}

func NewLunarService(aspectService l1_service.AspectService) LunarService {
	return lunarServiceHandler{
		AspectService: aspectService,
	}
}

func (h lunarServiceHandler) GetMoonPhase(sunLon, moonLon float64) domain.MoonPhase {
	elongation := calculator.Normalize(moonLon - sunLon)
	i := int(elongation / 45)
	if i >= len(domain.MoonPhases) {
		i = len(domain.MoonPhases) - 1
	}
	return domain.MoonPhases[i]
}

func (h lunarServiceHandler) MoonIllumination(sunLon, moonLon float64) float64 {
	elongation := calculator.Normalize(moonLon - sunLon)
	lit := (1 - math.Cos(elongation*math.Pi/180)) / 2 * 100
	return decimal.NewFromFloat(lit).Round(1).InexactFloat64()
}

// CheckVoidOfCourse projects the Moon and every planet linearly at their
// current speeds and looks for an applying major aspect that is within orb
// now, or comes within orb, before the Moon reaches the end of its sign. The
// nearest one is the aspect entering orb first, then perfecting first.
// Ascendant and MC are not considered.
func (h lunarServiceHandler) CheckVoidOfCourse(chart *domain.Chart) domain.VoidOfCourseResult {
	moonPoint := chart.Find(string(domain.Moon))
	if moonPoint == nil {
		return domain.VoidOfCourseResult{
			IsVoid:      false,
			Description: "Moon position unavailable; void of course not determined",
		}
	}
	moon := calculator.NormalizePoint(*moonPoint)
	moonSign := moon.Sign

	speed := moon.Speed
	if speed <= 0 {
		speed = MeanLunarSpeed
	}
	degreesLeft := 30 - math.Mod(moon.Longitude, 30)
	daysLeft := degreesLeft / speed
	hoursLeft := roundHours(daysLeft * 24)

	rules := l1_service.ActiveRules(h.AspectService.Rules(), domain.AspectOptions{})

	var (
		next                *domain.UpcomingAspect
		nextEnter, nextDays float64
	)
	for _, p := range calculator.NormalizePoints(chart.Planets) {
		if p.Name == moon.Name {
			continue
		}
		relative := speed - p.Speed
		separation := calculator.AngularSeparation(moon.Longitude, p.Longitude)
		for _, rule := range rules {
			orb := l1_service.EffectiveOrb(rule, domain.AspectOptions{}, 0)
			enter, days, ok := approach(moon.Longitude, p.Longitude, relative, rule.ExactAngle, orb)
			if !ok || enter > daysLeft {
				continue
			}
			if next == nil || enter < nextEnter || (enter == nextEnter && days < nextDays) {
				nextEnter = enter
				nextDays = days
				next = &domain.UpcomingAspect{
					Planet:          p.Name,
					Type:            rule.Type,
					Orb:             decimal.NewFromFloat(math.Abs(separation - rule.ExactAngle)).Round(4).InexactFloat64(),
					HoursUntilExact: roundHours(days * 24),
				}
			}
		}
	}

	if next == nil {
		return domain.VoidOfCourseResult{
			IsVoid:            true,
			MoonSign:          &moonSign,
			HoursToSignChange: hoursLeft,
			Description:       fmt.Sprintf("Moon is void of course in %s for %.1f more hours", moonSign, hoursLeft),
		}
	}
	return domain.VoidOfCourseResult{
		IsVoid:            false,
		MoonSign:          &moonSign,
		LastAspect:        next,
		HoursToSignChange: hoursLeft,
		Description:       fmt.Sprintf("Moon applying %s %s in %s, exact in %.1f hours", next.Type, next.Planet, moonSign, next.HoursUntilExact),
	}
}

// approach measures the Moon closing on exactAngle to a planet, given the
// Moon's speed relative to the planet. It returns the days until the
// separation is within orb of exactAngle (0 when it already is) and the days
// until it is exact, for whichever side of the circle perfects first. The gap
// "planet ahead of Moon" shrinks when relative > 0.
func approach(moonLon, planetLon, relative, exactAngle, orb float64) (float64, float64, bool) {
	if relative == 0 {
		return 0, 0, false
	}
	ahead := calculator.Normalize(planetLon - moonLon)
	targets := []float64{exactAngle}
	if exactAngle != 0 && exactAngle != 180 {
		targets = append(targets, 360-exactAngle)
	}

	speed := math.Abs(relative)
	enter, exact := 0.0, math.Inf(1)
	for _, target := range targets {
		var distance float64
		if relative > 0 {
			distance = calculator.Normalize(ahead - target)
		} else {
			distance = calculator.Normalize(target - ahead)
		}
		if days := distance / speed; days < exact {
			exact = days
			enter = math.Max(distance-orb, 0) / speed
		}
	}
	return enter, exact, true
}

func roundHours(h float64) float64 {
	return decimal.NewFromFloat(h).Round(2).InexactFloat64()
}
