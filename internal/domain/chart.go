package domain

import "time"

// Planet names the bodies the rule tables refer to. Charts may carry other
// points (nodes, asteroids); those are matched by name only.
type Planet string

const (
	Sun     Planet = "Sun"
	Moon    Planet = "Moon"
	Mercury Planet = "Mercury"
	Venus   Planet = "Venus"
	Mars    Planet = "Mars"
	Jupiter Planet = "Jupiter"
	Saturn  Planet = "Saturn"
	Uranus  Planet = "Uranus"
	Neptune Planet = "Neptune"
	Pluto   Planet = "Pluto"
)

const (
	AscendantName = "Ascendant"
	MCName        = "MC"
)

func (p Planet) String() string {
	return string(p)
}

func (p Planet) IsBenefic() bool {
	return p == Venus || p == Jupiter
}

func (p Planet) IsMalefic() bool {
	return p == Mars || p == Saturn
}

type HouseCusp struct {
	House     int     `json:"house"`
	Longitude float64 `json:"longitude"`
	Sign      Sign    `json:"sign"`
}

// Chart is the ephemeris snapshot this module consumes. Planets may be nil.
type Chart struct {
	Planets   []Point     `json:"planets"`
	Ascendant *Point      `json:"ascendant,omitempty"`
	MC        *Point      `json:"mc,omitempty"`
	Houses    []HouseCusp `json:"houses,omitempty"`
}

// Find returns the planet with the given name, or nil.
func (c *Chart) Find(name string) *Point {
	if c == nil {
		return nil
	}
	for i := range c.Planets {
		if c.Planets[i].Name == name {
			return &c.Planets[i]
		}
	}
	return nil
}

// Anchors returns the Ascendant and MC, whichever are present.
func (c *Chart) Anchors() []Point {
	out := []Point{}
	if c == nil {
		return out
	}
	if c.Ascendant != nil {
		a := *c.Ascendant
		if a.Name == "" {
			a.Name = AscendantName
		}
		out = append(out, a)
	}
	if c.MC != nil {
		m := *c.MC
		if m.Name == "" {
			m.Name = MCName
		}
		out = append(out, m)
	}
	return out
}

// AllPoints is the planets followed by the anchors.
func (c *Chart) AllPoints() []Point {
	out := []Point{}
	if c == nil {
		return out
	}
	out = append(out, c.Planets...)
	return append(out, c.Anchors()...)
}

// ChartSnapshot pairs a chart with the instant it was cast for. Sunrise and
// sunset are optional and enable planetary-hour scoring.
type ChartSnapshot struct {
	Date    time.Time  `json:"date"`
	Chart   Chart      `json:"chart"`
	Sunrise *time.Time `json:"sunrise,omitempty"`
	Sunset  *time.Time `json:"sunset,omitempty"`
}
