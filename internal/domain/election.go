package domain

import (
	"fmt"
	"strings"
	"time"
)

type EventType string

const (
	EventType_BusinessStart    EventType = "business_start"
	EventType_SigningContracts EventType = "signing_contracts"
	EventType_Marriage         EventType = "marriage"
	EventType_Engagement       EventType = "engagement"
	EventType_FirstDate        EventType = "first_date"
	EventType_Surgery          EventType = "surgery"
	EventType_Dental           EventType = "dental"
	EventType_StartTreatment   EventType = "start_treatment"
	EventType_LongJourney      EventType = "long_journey"
	EventType_MovingHouse      EventType = "moving_house"
	EventType_Investment       EventType = "investment"
	EventType_BuyingProperty   EventType = "buying_property"
	EventType_MajorPurchase    EventType = "major_purchase"
	EventType_CreativeStart    EventType = "creative_start"
	EventType_Publishing       EventType = "publishing"
	EventType_StartingStudies  EventType = "starting_studies"
	EventType_Exam             EventType = "exam"
	EventType_Lawsuit          EventType = "lawsuit"
	EventType_CourtAppearance  EventType = "court_appearance"
)

var AllEventTypes = []EventType{
	EventType_BusinessStart,
	EventType_SigningContracts,
	EventType_Marriage,
	EventType_Engagement,
	EventType_FirstDate,
	EventType_Surgery,
	EventType_Dental,
	EventType_StartTreatment,
	EventType_LongJourney,
	EventType_MovingHouse,
	EventType_Investment,
	EventType_BuyingProperty,
	EventType_MajorPurchase,
	EventType_CreativeStart,
	EventType_Publishing,
	EventType_StartingStudies,
	EventType_Exam,
	EventType_Lawsuit,
	EventType_CourtAppearance,
}

func ParseEventType(s string) (EventType, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for _, e := range AllEventTypes {
		if string(e) == normalized {
			return e, nil
		}
	}
	return "", fmt.Errorf("unknown event type %q", s)
}

type ElectionalGuideline struct {
	BestMoonPhases   []MoonPhase    `json:"bestMoonPhases"`
	BestMoonSigns    []Sign         `json:"bestMoonSigns"`
	AvoidMoonSigns   []Sign         `json:"avoidMoonSigns,omitempty"`
	AvoidRetrogrades []Planet       `json:"avoidRetrogrades"`
	BestDays         []time.Weekday `json:"bestDays,omitempty"`
	BestHourRulers   []Planet       `json:"bestHourRulers,omitempty"`
	Tips             []string       `json:"tips"`
}

type ElectionalScore struct {
	Breakdown      map[string]float64 `json:"breakdown"`
	Total          float64            `json:"total"`
	Interpretation string             `json:"interpretation"`
}

type ElectionAnalysis struct {
	DateTime          time.Time          `json:"dateTime"`
	EventType         EventType          `json:"eventType"`
	Score             ElectionalScore    `json:"score"`
	MoonPhase         MoonPhase          `json:"moonPhase"`
	MoonIllumination  float64            `json:"moonIllumination"`
	MoonSign          Sign               `json:"moonSign"`
	VoidOfCourse      VoidOfCourseResult `json:"voidOfCourse"`
	CurrentHour       *PlanetaryHour     `json:"currentHour,omitempty"`
	RetrogradePlanets []string           `json:"retrogradePlanets"`
	BeneficAspects    []string           `json:"beneficAspects"`
	MaleficAspects    []string           `json:"maleficAspects"`
	Recommendations   []string           `json:"recommendations"`
	Warnings          []string           `json:"warnings"`
}

type RankedDate struct {
	Date           time.Time         `json:"date"`
	Score          float64           `json:"score"`
	Interpretation string            `json:"interpretation"`
	Analysis       *ElectionAnalysis `json:"analysis,omitempty"`
}

// MissingPointError reports a chart that lacks a point a calculation cannot
// proceed without.
type MissingPointError struct {
	Point string
}

func (e MissingPointError) Error() string {
	return fmt.Sprintf("chart is missing required point %s", e.Point)
}
