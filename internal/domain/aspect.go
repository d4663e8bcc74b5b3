package domain

import (
	"fmt"
	"strings"
)

type AspectType string

const (
	AspectType_Conjunction    AspectType = "conjunction"
	AspectType_Sextile        AspectType = "sextile"
	AspectType_Square         AspectType = "square"
	AspectType_Trine          AspectType = "trine"
	AspectType_Opposition     AspectType = "opposition"
	AspectType_Semisextile    AspectType = "semisextile"
	AspectType_Semisquare     AspectType = "semisquare"
	AspectType_Sesquiquadrate AspectType = "sesquiquadrate"
	AspectType_Quincunx       AspectType = "quincunx"
)

func ParseAspectType(s string) (AspectType, error) {
	t := AspectType(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := aspectRuleTable[t]; !ok {
		return "", fmt.Errorf("unknown aspect type %q", s)
	}
	return t, nil
}

type AspectRule struct {
	Type       AspectType `json:"type"`
	ExactAngle float64    `json:"exactAngle"`
	BaseOrb    float64    `json:"baseOrb"`
	Harmonious bool       `json:"harmonious"`
	Major      bool       `json:"major"`
}

// base orbs are the transit orbs; natal-natal comparisons widen them
var aspectRuleTable = map[AspectType]AspectRule{
	AspectType_Conjunction:    {Type: AspectType_Conjunction, ExactAngle: 0, BaseOrb: 6, Harmonious: true, Major: true},
	AspectType_Sextile:        {Type: AspectType_Sextile, ExactAngle: 60, BaseOrb: 4, Harmonious: true, Major: true},
	AspectType_Square:         {Type: AspectType_Square, ExactAngle: 90, BaseOrb: 5, Harmonious: false, Major: true},
	AspectType_Trine:          {Type: AspectType_Trine, ExactAngle: 120, BaseOrb: 5, Harmonious: true, Major: true},
	AspectType_Opposition:     {Type: AspectType_Opposition, ExactAngle: 180, BaseOrb: 6, Harmonious: false, Major: true},
	AspectType_Semisextile:    {Type: AspectType_Semisextile, ExactAngle: 30, BaseOrb: 2, Harmonious: true, Major: false},
	AspectType_Semisquare:     {Type: AspectType_Semisquare, ExactAngle: 45, BaseOrb: 2, Harmonious: false, Major: false},
	AspectType_Sesquiquadrate: {Type: AspectType_Sesquiquadrate, ExactAngle: 135, BaseOrb: 2, Harmonious: false, Major: false},
	AspectType_Quincunx:       {Type: AspectType_Quincunx, ExactAngle: 150, BaseOrb: 2, Harmonious: false, Major: false},
}

// AllAspectTypes lists majors first, each group by exact angle.
var AllAspectTypes = []AspectType{
	AspectType_Conjunction,
	AspectType_Sextile,
	AspectType_Square,
	AspectType_Trine,
	AspectType_Opposition,
	AspectType_Semisextile,
	AspectType_Semisquare,
	AspectType_Sesquiquadrate,
	AspectType_Quincunx,
}

// DefaultAspectRules returns a fresh copy of the rule table in AllAspectTypes order.
func DefaultAspectRules() []AspectRule {
	out := make([]AspectRule, 0, len(AllAspectTypes))
	for _, t := range AllAspectTypes {
		out = append(out, aspectRuleTable[t])
	}
	return out
}

func (t AspectType) Rule() (AspectRule, bool) {
	r, ok := aspectRuleTable[t]
	return r, ok
}

func (t AspectType) IsMajor() bool {
	return aspectRuleTable[t].Major
}

// Keyword is the short interpretation tag for the aspect.
func (t AspectType) Keyword() string {
	switch t {
	case AspectType_Conjunction:
		return "fusion"
	case AspectType_Sextile:
		return "opportunity"
	case AspectType_Square:
		return "tension"
	case AspectType_Trine:
		return "harmony"
	case AspectType_Opposition:
		return "polarity"
	case AspectType_Semisextile:
		return "growth"
	case AspectType_Semisquare:
		return "friction"
	case AspectType_Sesquiquadrate:
		return "agitation"
	case AspectType_Quincunx:
		return "adjustment"
	}
	return string(t)
}

type OrbOverrides struct {
	Default *float64               `json:"default,omitempty"`
	ByType  map[AspectType]float64 `json:"byType,omitempty"`
}

// AspectOptions is the caller's override of the default rule behaviour.
// The zero value searches the major aspects with table orbs.
type AspectOptions struct {
	Aspects      []AspectType `json:"aspects,omitempty"`
	Orbs         OrbOverrides `json:"orbs"`
	IncludeMinor bool         `json:"includeMinor"`
	MaxResults   int          `json:"maxResults,omitempty"`
}

type AspectMatch struct {
	From           PointRef   `json:"from"`
	To             PointRef   `json:"to"`
	Type           AspectType `json:"type"`
	Orb            float64    `json:"orb"`
	Applying       bool       `json:"applying"`
	Score          float64    `json:"score"`
	IsHarmonious   bool       `json:"isHarmonious"`
	Interpretation string     `json:"interpretation"`
}

// Display renders the match as "Venus trine Jupiter".
func (m AspectMatch) Display() string {
	return fmt.Sprintf("%s %s %s", m.From.Name, m.Type, m.To.Name)
}

type AspectClassification struct {
	Benefic []string      `json:"benefic"`
	Malefic []string      `json:"malefic"`
	Matches []AspectMatch `json:"matches"`
}
