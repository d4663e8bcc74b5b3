package domain

import (
	"fmt"
	"strings"
)

type PointKind string

const (
	PointKind_Natal   PointKind = "natal"
	PointKind_Transit PointKind = "transit"
	PointKind_Derived PointKind = "derived"
)

// Sign is one of the 12 zodiac segments, 30 degrees wide, starting at 0 (Aries).
type Sign int

const (
	Aries Sign = iota
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces
)

var signNames = [12]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

func (s Sign) String() string {
	if s < Aries || s > Pisces {
		return fmt.Sprintf("Sign(%d)", int(s))
	}
	return signNames[s]
}

func (s Sign) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Sign) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	parsed, err := ParseSign(string(b))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func ParseSign(name string) (Sign, error) {
	for i, n := range signNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return Sign(i), nil
		}
	}
	return 0, fmt.Errorf("unknown sign %q", name)
}

type Element string

const (
	Element_Fire  Element = "fire"
	Element_Earth Element = "earth"
	Element_Air   Element = "air"
	Element_Water Element = "water"
)

// Element follows the fire, earth, air, water rotation from Aries.
func (s Sign) Element() Element {
	switch ((int(s) % 4) + 4) % 4 {
	case 0:
		return Element_Fire
	case 1:
		return Element_Earth
	case 2:
		return Element_Air
	default:
		return Element_Water
	}
}

type Point struct {
	Name      string    `json:"name"`
	Longitude float64   `json:"longitude"`
	Sign      Sign      `json:"sign"`
	House     int       `json:"house,omitempty"`
	Speed     float64   `json:"speed,omitempty"` // degrees per day
	Kind      PointKind `json:"kind,omitempty"`

	Retrograde bool `json:"retrograde,omitempty"`
}

func (p Point) IsRetrograde() bool {
	return p.Retrograde || p.Speed < 0
}

// Ref is the snapshot of a point carried on match records.
func (p Point) Ref() PointRef {
	return PointRef{
		Name:  p.Name,
		Sign:  p.Sign,
		House: p.House,
		Kind:  p.Kind,
	}
}

type PointRef struct {
	Name  string    `json:"name"`
	Sign  Sign      `json:"sign"`
	House int       `json:"house,omitempty"`
	Kind  PointKind `json:"kind,omitempty"`
}
