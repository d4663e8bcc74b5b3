package l1_service

import (
	"astrocore/internal/domain"
	"fmt"
	"time"
)

type PlanetaryHourInput struct {
	Instant  time.Time
	Latitude float64
	Sunrise  time.Time
	Sunset   time.Time
	// NextSunrise closes the night span; sunrise + 24h when nil.
	NextSunrise *time.Time
	// Location is the observer's zone. The weekday of sunrise decides the
	// ruler sequence, so a UTC sunrise east of Greenwich needs it. Without
	// it the zone carried by Sunrise is used.
	Location *time.Location
}

type PlanetaryHourService interface {
	CalculatePlanetaryHour(in PlanetaryHourInput) (*domain.PlanetaryHour, error)
}

type planetaryHourServiceHandler struct{}

func NewPlanetaryHourService() PlanetaryHourService {
	return planetaryHourServiceHandler{}
}

// CalculatePlanetaryHour finds which of the 24 unequal hours contains the
// instant. Instants before sunrise belong to the previous day's night and
// take that weekday's ruler sequence.
func (h planetaryHourServiceHandler) CalculatePlanetaryHour(in PlanetaryHourInput) (*domain.PlanetaryHour, error) {
	if !in.Sunset.After(in.Sunrise) {
		return nil, fmt.Errorf("no usable day span at latitude %.2f: sunset %s is not after sunrise %s", in.Latitude, in.Sunset.Format(time.RFC3339), in.Sunrise.Format(time.RFC3339))
	}
	nextSunrise := in.Sunrise.Add(24 * time.Hour)
	if in.NextSunrise != nil {
		nextSunrise = *in.NextSunrise
	}
	if !nextSunrise.After(in.Sunset) {
		return nil, fmt.Errorf("no usable night span at latitude %.2f: next sunrise %s is not after sunset %s", in.Latitude, nextSunrise.Format(time.RFC3339), in.Sunset.Format(time.RFC3339))
	}

	weekday := in.Sunrise.Weekday()
	if in.Location != nil {
		weekday = in.Sunrise.In(in.Location).Weekday()
	}
	var (
		spanStart, spanEnd time.Time
		isDay              bool
	)
	switch {
	case !in.Instant.Before(in.Sunrise) && in.Instant.Before(in.Sunset):
		spanStart, spanEnd, isDay = in.Sunrise, in.Sunset, true
	case !in.Instant.Before(in.Sunset) && in.Instant.Before(nextSunrise):
		spanStart, spanEnd = in.Sunset, nextSunrise
	case in.Instant.Before(in.Sunrise) && !in.Instant.Before(in.Sunset.Add(-24*time.Hour)):
		spanStart, spanEnd = in.Sunset.Add(-24*time.Hour), in.Sunrise
		weekday = (weekday + 6) % 7
	default:
		return nil, fmt.Errorf("instant %s is outside the day starting at sunrise %s", in.Instant.Format(time.RFC3339), in.Sunrise.Format(time.RFC3339))
	}

	hourLength := spanEnd.Sub(spanStart) / 12
	index := int(in.Instant.Sub(spanStart) / hourLength)
	if index > 11 {
		index = 11
	}

	// hours 0-11 are daytime, 12-23 night
	slot := index
	if !isDay {
		slot += 12
	}
	ruler := hourRuler(weekday, slot)

	start := spanStart.Add(time.Duration(index) * hourLength)
	end := start.Add(hourLength)
	if index == 11 {
		end = spanEnd
	}

	goodFor := make([]string, len(domain.HourActivities[ruler]))
	copy(goodFor, domain.HourActivities[ruler])

	return &domain.PlanetaryHour{
		Planet:    ruler,
		IsDay:     isDay,
		HourIndex: index + 1,
		StartTime: start,
		EndTime:   end,
		GoodFor:   goodFor,
	}, nil
}

func hourRuler(weekday time.Weekday, slot int) domain.Planet {
	dayRuler := domain.DayRulers[weekday]
	start := 0
	for i, p := range domain.ChaldeanOrder {
		if p == dayRuler {
			start = i
			break
		}
	}
	return domain.ChaldeanOrder[(start+slot)%len(domain.ChaldeanOrder)]
}
