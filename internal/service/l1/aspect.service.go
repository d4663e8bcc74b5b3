package l1_service

import (
	"astrocore/internal/calculator"
	"astrocore/internal/domain"
	"fmt"
	"math"
	"sort"

	"github.com/shopspring/decimal"
)

// NatalOrbBonus widens every effective orb when both points belong to the
// same natal chart.
const NatalOrbBonus = 3.0

// applying/separating is decided by re-measuring the orb one hour later
const applyingStepDays = 1.0 / 24

const orbEpsilon = 1e-9

type AspectService interface {
	// FindAspects compares every point of chartA (planets plus Ascendant/MC)
	// against every point of chartB. Passing the same chart twice skips each
	// point paired with itself.
	FindAspects(chartA, chartB *domain.Chart, opts domain.AspectOptions) []domain.AspectMatch
	// FindNatalAspects compares the points of one chart with each other,
	// reporting each unordered pair at most once.
	FindNatalAspects(chart *domain.Chart, opts domain.AspectOptions) []domain.AspectMatch
	ClassifyAspects(chart *domain.Chart, opts domain.AspectOptions) domain.AspectClassification
	Rules() []domain.AspectRule
}

type aspectServiceHandler struct {
	AspectRules   []domain.AspectRule
	NatalOrbBonus float64
}

func NewAspectService() AspectService {
	return aspectServiceHandler{
		AspectRules:   domain.DefaultAspectRules(),
		NatalOrbBonus: NatalOrbBonus,
	}
}

// NewAspectServiceWithRules uses a custom rule table in place of the default one.
func NewAspectServiceWithRules(rules []domain.AspectRule, natalOrbBonus float64) AspectService {
	return aspectServiceHandler{
		AspectRules:   rules,
		NatalOrbBonus: natalOrbBonus,
	}
}

func (h aspectServiceHandler) Rules() []domain.AspectRule {
	out := make([]domain.AspectRule, len(h.AspectRules))
	copy(out, h.AspectRules)
	return out
}

func (h aspectServiceHandler) FindAspects(chartA, chartB *domain.Chart, opts domain.AspectOptions) []domain.AspectMatch {
	setA := calculator.NormalizePoints(chartA.AllPoints())
	setB := calculator.NormalizePoints(chartB.AllPoints())
	rules := ActiveRules(h.AspectRules, opts)

	sameChart := chartA == chartB

	out := []domain.AspectMatch{}
	for i, a := range setA {
		for j, b := range setB {
			if sameChart && i == j {
				continue
			}
			if m := h.matchPair(a, b, rules, opts, 0); m != nil {
				out = append(out, *m)
			}
		}
	}

	return rankMatches(out, opts.MaxResults)
}

func (h aspectServiceHandler) FindNatalAspects(chart *domain.Chart, opts domain.AspectOptions) []domain.AspectMatch {
	points := calculator.NormalizePoints(chart.AllPoints())
	rules := ActiveRules(h.AspectRules, opts)

	out := []domain.AspectMatch{}
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			if m := h.matchPair(points[i], points[j], rules, opts, h.NatalOrbBonus); m != nil {
				out = append(out, *m)
			}
		}
	}

	return rankMatches(out, opts.MaxResults)
}

func (h aspectServiceHandler) ClassifyAspects(chart *domain.Chart, opts domain.AspectOptions) domain.AspectClassification {
	matches := h.FindNatalAspects(chart, opts)
	out := domain.AspectClassification{
		Benefic: []string{},
		Malefic: []string{},
		Matches: matches,
	}
	for _, m := range matches {
		switch classifyMatch(m) {
		case aspectQuality_Benefic:
			out.Benefic = append(out.Benefic, m.Display())
		case aspectQuality_Malefic:
			out.Malefic = append(out.Malefic, m.Display())
		}
	}
	return out
}

// ActiveRules selects the rules a search uses. An explicit aspect list wins
// over IncludeMinor, so a listed minor aspect is always searched.
func ActiveRules(rules []domain.AspectRule, opts domain.AspectOptions) []domain.AspectRule {
	out := []domain.AspectRule{}
	if len(opts.Aspects) > 0 {
		wanted := map[domain.AspectType]bool{}
		for _, t := range opts.Aspects {
			wanted[t] = true
		}
		for _, r := range rules {
			if wanted[r.Type] {
				out = append(out, r)
			}
		}
		return out
	}
	for _, r := range rules {
		if r.Major || opts.IncludeMinor {
			out = append(out, r)
		}
	}
	return out
}

// EffectiveOrb resolves the per-type override, then the default override,
// then the rule's own orb, and adds the bonus.
func EffectiveOrb(rule domain.AspectRule, opts domain.AspectOptions, bonus float64) float64 {
	orb := rule.BaseOrb
	if v, ok := opts.Orbs.ByType[rule.Type]; ok {
		orb = v
	} else if opts.Orbs.Default != nil {
		orb = *opts.Orbs.Default
	}
	return orb + bonus
}

func (h aspectServiceHandler) matchPair(a, b domain.Point, rules []domain.AspectRule, opts domain.AspectOptions, bonus float64) *domain.AspectMatch {
	separation := calculator.AngularSeparation(a.Longitude, b.Longitude)

	var (
		best      *domain.AspectRule
		bestOrb   float64
		bestLimit float64
	)
	for i := range rules {
		limit := EffectiveOrb(rules[i], opts, bonus)
		orb := math.Abs(separation - rules[i].ExactAngle)
		if orb > limit+orbEpsilon {
			continue
		}
		// overlapping custom orbs: the tightest aspect wins, earlier rule on ties
		if best == nil || orb < bestOrb {
			best = &rules[i]
			bestOrb = orb
			bestLimit = limit
		}
	}
	if best == nil {
		return nil
	}

	applying := isApplying(a, b, best.ExactAngle, bestOrb)
	return &domain.AspectMatch{
		From:           a.Ref(),
		To:             b.Ref(),
		Type:           best.Type,
		Orb:            round(bestOrb, 4),
		Applying:       applying,
		Score:          aspectScore(*best, bestOrb, bestLimit),
		IsHarmonious:   best.Harmonious,
		Interpretation: interpretation(a.Name, b.Name, best.Type, applying),
	}
}

// isApplying projects both points forward by one step using their speeds.
// Stationary pairs never apply.
func isApplying(a, b domain.Point, exactAngle, orb float64) bool {
	next := calculator.AngularSeparation(
		a.Longitude+a.Speed*applyingStepDays,
		b.Longitude+b.Speed*applyingStepDays,
	)
	return math.Abs(next-exactAngle) < orb-orbEpsilon
}

// aspectScore ranks a match: closeness to exact contributes up to 60,
// a major aspect 30 and a harmonious one 10.
func aspectScore(rule domain.AspectRule, orb, limit float64) float64 {
	closeness := 1.0
	if limit > 0 {
		closeness = 1 - orb/limit
	}
	if closeness < 0 {
		closeness = 0
	}
	score := 60 * closeness
	if rule.Major {
		score += 30
	}
	if rule.Harmonious {
		score += 10
	}
	return round(score, 2)
}

func interpretation(from, to string, t domain.AspectType, applying bool) string {
	motion := "separating"
	if applying {
		motion = "applying"
	}
	return fmt.Sprintf("%s between %s and %s (%s)", t.Keyword(), from, to, motion)
}

func rankMatches(matches []domain.AspectMatch, maxResults int) []domain.AspectMatch {
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	if maxResults > 0 && len(matches) > maxResults {
		matches = matches[:maxResults]
	}
	return matches
}

type aspectQuality int

const (
	aspectQuality_Neutral aspectQuality = iota
	aspectQuality_Benefic
	aspectQuality_Malefic
)

func classifyMatch(m domain.AspectMatch) aspectQuality {
	benefic := domain.Planet(m.From.Name).IsBenefic() || domain.Planet(m.To.Name).IsBenefic()
	malefic := domain.Planet(m.From.Name).IsMalefic() || domain.Planet(m.To.Name).IsMalefic()

	switch m.Type {
	case domain.AspectType_Trine, domain.AspectType_Sextile:
		return aspectQuality_Benefic
	case domain.AspectType_Square, domain.AspectType_Opposition:
		return aspectQuality_Malefic
	case domain.AspectType_Conjunction:
		if benefic {
			return aspectQuality_Benefic
		}
		if malefic {
			return aspectQuality_Malefic
		}
	case domain.AspectType_Semisextile, domain.AspectType_Quincunx,
		domain.AspectType_Semisquare, domain.AspectType_Sesquiquadrate:
		if m.IsHarmonious && m.Applying && benefic {
			return aspectQuality_Benefic
		}
		if !m.IsHarmonious && malefic {
			return aspectQuality_Malefic
		}
	}
	return aspectQuality_Neutral
}

func round(f float64, places int32) float64 {
	return decimal.NewFromFloat(f).Round(places).InexactFloat64()
}
