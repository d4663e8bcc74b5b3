package domain

import "time"

// ChaldeanOrder is the planetary hour ruler sequence.
var ChaldeanOrder = []Planet{Saturn, Jupiter, Mars, Sun, Venus, Mercury, Moon}

// DayRulers maps each weekday to the ruler of its first daytime hour.
var DayRulers = map[time.Weekday]Planet{
	time.Sunday:    Sun,
	time.Monday:    Moon,
	time.Tuesday:   Mars,
	time.Wednesday: Mercury,
	time.Thursday:  Jupiter,
	time.Friday:    Venus,
	time.Saturday:  Saturn,
}

var HourActivities = map[Planet][]string{
	Sun:     {"leadership", "visibility", "dealing with authority", "health"},
	Moon:    {"emotional matters", "domestic affairs", "travel by water", "public dealings"},
	Mercury: {"communication", "contracts", "study", "short trips"},
	Venus:   {"romance", "art", "socializing", "beauty"},
	Mars:    {"physical activity", "competition", "surgery", "bold action"},
	Jupiter: {"expansion", "legal matters", "finance", "education"},
	Saturn:  {"structure", "long-term planning", "real estate", "discipline"},
}

type PlanetaryHour struct {
	Planet    Planet    `json:"planet"`
	IsDay     bool      `json:"isDay"`
	HourIndex int       `json:"hourIndex"` // 1-12 within the day or night
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	GoodFor   []string  `json:"goodFor"`
}
