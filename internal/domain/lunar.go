package domain

type MoonPhase string

const (
	MoonPhase_NewMoon        MoonPhase = "new_moon"
	MoonPhase_WaxingCrescent MoonPhase = "waxing_crescent"
	MoonPhase_FirstQuarter   MoonPhase = "first_quarter"
	MoonPhase_WaxingGibbous  MoonPhase = "waxing_gibbous"
	MoonPhase_FullMoon       MoonPhase = "full_moon"
	MoonPhase_WaningGibbous  MoonPhase = "waning_gibbous"
	MoonPhase_LastQuarter    MoonPhase = "last_quarter"
	MoonPhase_WaningCrescent MoonPhase = "waning_crescent"
)

// MoonPhases is ordered by elongation; index i covers [45i, 45i+45).
var MoonPhases = []MoonPhase{
	MoonPhase_NewMoon,
	MoonPhase_WaxingCrescent,
	MoonPhase_FirstQuarter,
	MoonPhase_WaxingGibbous,
	MoonPhase_FullMoon,
	MoonPhase_WaningGibbous,
	MoonPhase_LastQuarter,
	MoonPhase_WaningCrescent,
}

func (p MoonPhase) IsWaxing() bool {
	switch p {
	case MoonPhase_NewMoon, MoonPhase_WaxingCrescent, MoonPhase_FirstQuarter, MoonPhase_WaxingGibbous:
		return true
	}
	return false
}

// UpcomingAspect is the next applying aspect that is within orb of the Moon
// before it changes sign.
type UpcomingAspect struct {
	Planet          string     `json:"planet"`
	Type            AspectType `json:"type"`
	Orb             float64    `json:"orb"`
	HoursUntilExact float64    `json:"hoursUntilExact"`
}

type VoidOfCourseResult struct {
	IsVoid            bool            `json:"isVoid"`
	MoonSign          *Sign           `json:"moonSign,omitempty"`
	LastAspect        *UpcomingAspect `json:"lastAspect"`
	HoursToSignChange float64         `json:"hoursToSignChange"`
	Description       string          `json:"description"`
}
