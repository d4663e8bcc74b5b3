package calculator

import (
	"astrocore/internal/domain"
	"math"

	"github.com/shopspring/decimal"
)

// tolerance for comparing derived angles that should be exactly equal
const epsilon = 1e-9

// Normalize reduces any longitude to [0,360). NaN and infinities become 0.
func Normalize(lon float64) float64 {
	if math.IsNaN(lon) || math.IsInf(lon, 0) {
		return 0
	}
	n := math.Mod(lon, 360)
	if n < 0 {
		n += 360
	}
	// -1e-20 + 360 rounds to 360
	if n >= 360 {
		n = 0
	}
	return n
}

// AngularSeparation is the unsigned shorter-arc distance between two
// longitudes, in [0,180].
func AngularSeparation(a, b float64) float64 {
	d := math.Abs(Normalize(a) - Normalize(b))
	if d > 180 {
		d = 360 - d
	}
	return d
}

// MidpointLongitude returns the midpoint on the shorter arc between a and b.
// When a and b are exactly opposite both candidates are 90 degrees away; the
// arithmetic mean of the normalized inputs is returned in that case.
func MidpointLongitude(a, b float64) float64 {
	na, nb := Normalize(a), Normalize(b)
	mean := Normalize((na + nb) / 2)
	if AngularSeparation(mean, na) <= 90+epsilon {
		return mean
	}
	return Normalize(mean + 180)
}

func SignOf(lon float64) domain.Sign {
	s := domain.Sign(int(Normalize(lon) / 30))
	if s > domain.Pisces {
		s = domain.Pisces
	}
	return s
}

// DegreeOf is the whole degree within the sign, 0-29.
func DegreeOf(lon float64) int {
	d, _ := degreeMinute(lon)
	return d
}

// MinuteOf is the arc minute within the degree, 0-59.
func MinuteOf(lon float64) int {
	_, m := degreeMinute(lon)
	return m
}

// degreeMinute works in whole arc minutes so 10.999999 does not show as
// 10 degrees 60 minutes.
func degreeMinute(lon float64) (int, int) {
	inSign := math.Mod(Normalize(lon), 30)
	totalMinutes := decimal.NewFromFloat(inSign).Mul(decimal.NewFromInt(60)).Floor().IntPart()
	if totalMinutes >= 30*60 {
		totalMinutes = 30*60 - 1
	}
	return int(totalMinutes / 60), int(totalMinutes % 60)
}

// NormalizePoint returns p with its longitude normalized and its sign
// re-derived. Non-finite speeds are treated as stationary.
func NormalizePoint(p domain.Point) domain.Point {
	p.Longitude = Normalize(p.Longitude)
	p.Sign = SignOf(p.Longitude)
	if math.IsNaN(p.Speed) || math.IsInf(p.Speed, 0) {
		p.Speed = 0
	}
	return p
}

func NormalizePoints(points []domain.Point) []domain.Point {
	out := make([]domain.Point, 0, len(points))
	for _, p := range points {
		out = append(out, NormalizePoint(p))
	}
	return out
}
