package l3_service

import (
	"astrocore/internal/domain"
	"fmt"
	"time"
)

var (
	waxingPhases = []domain.MoonPhase{
		domain.MoonPhase_NewMoon,
		domain.MoonPhase_WaxingCrescent,
		domain.MoonPhase_FirstQuarter,
		domain.MoonPhase_WaxingGibbous,
	}
	waningPhases = []domain.MoonPhase{
		domain.MoonPhase_WaningGibbous,
		domain.MoonPhase_LastQuarter,
		domain.MoonPhase_WaningCrescent,
	}
)

// electionalGuidelines is keyed by every domain.EventType.
var electionalGuidelines = map[domain.EventType]domain.ElectionalGuideline{
	domain.EventType_BusinessStart: {
		BestMoonPhases:   waxingPhases,
		BestMoonSigns:    []domain.Sign{domain.Taurus, domain.Gemini, domain.Leo, domain.Virgo, domain.Capricorn},
		AvoidMoonSigns:   []domain.Sign{domain.Scorpio},
		AvoidRetrogrades: []domain.Planet{domain.Mercury, domain.Jupiter},
		BestDays:         []time.Weekday{time.Sunday, time.Wednesday, time.Thursday},
		BestHourRulers:   []domain.Planet{domain.Sun, domain.Jupiter, domain.Mercury},
		Tips: []string{
			"Start while the Moon is waxing so the venture grows with it",
			"Keep Mercury direct for paperwork, registrations and launch communications",
			"A strong Jupiter supports expansion and profit",
		},
	},
	domain.EventType_SigningContracts: {
		BestMoonPhases:   []domain.MoonPhase{domain.MoonPhase_WaxingCrescent, domain.MoonPhase_FirstQuarter, domain.MoonPhase_WaxingGibbous},
		BestMoonSigns:    []domain.Sign{domain.Gemini, domain.Virgo, domain.Libra, domain.Capricorn},
		AvoidMoonSigns:   []domain.Sign{domain.Pisces, domain.Scorpio},
		AvoidRetrogrades: []domain.Planet{domain.Mercury},
		BestDays:         []time.Weekday{time.Wednesday, time.Thursday},
		BestHourRulers:   []domain.Planet{domain.Mercury, domain.Jupiter},
		Tips: []string{
			"Mercury rules contracts: avoid signing while Mercury is retrograde",
			"Read the fine print when Mercury is square Neptune",
		},
	},
	domain.EventType_Marriage: {
		BestMoonPhases:   []domain.MoonPhase{domain.MoonPhase_WaxingCrescent, domain.MoonPhase_FirstQuarter, domain.MoonPhase_WaxingGibbous, domain.MoonPhase_FullMoon},
		BestMoonSigns:    []domain.Sign{domain.Taurus, domain.Cancer, domain.Libra, domain.Pisces},
		AvoidMoonSigns:   []domain.Sign{domain.Scorpio, domain.Capricorn, domain.Aries},
		AvoidRetrogrades: []domain.Planet{domain.Venus, domain.Mercury},
		BestDays:         []time.Weekday{time.Friday, time.Monday},
		BestHourRulers:   []domain.Planet{domain.Venus, domain.Jupiter, domain.Moon},
		Tips: []string{
			"Venus should be direct and well aspected for a lasting union",
			"A Moon applying to Venus or Jupiter blesses the ceremony",
			"Avoid Mars or Saturn conjunct the Moon on the day",
		},
	},
	domain.EventType_Engagement: {
		BestMoonPhases:   waxingPhases,
		BestMoonSigns:    []domain.Sign{domain.Taurus, domain.Cancer, domain.Leo, domain.Libra},
		AvoidMoonSigns:   []domain.Sign{domain.Scorpio, domain.Capricorn},
		AvoidRetrogrades: []domain.Planet{domain.Venus},
		BestDays:         []time.Weekday{time.Friday},
		BestHourRulers:   []domain.Planet{domain.Venus, domain.Moon},
		Tips: []string{
			"Choose a day when Venus is direct and not afflicted by Saturn",
			"A waxing Moon lets the commitment grow",
		},
	},
	domain.EventType_FirstDate: {
		BestMoonPhases:   []domain.MoonPhase{domain.MoonPhase_WaxingCrescent, domain.MoonPhase_FirstQuarter, domain.MoonPhase_WaxingGibbous},
		BestMoonSigns:    []domain.Sign{domain.Gemini, domain.Leo, domain.Libra, domain.Sagittarius},
		AvoidMoonSigns:   []domain.Sign{domain.Capricorn},
		AvoidRetrogrades: []domain.Planet{domain.Venus, domain.Mercury},
		BestDays:         []time.Weekday{time.Friday, time.Saturday},
		BestHourRulers:   []domain.Planet{domain.Venus, domain.Mercury},
		Tips: []string{
			"A Venus hour or a Moon to Venus aspect favors attraction",
			"Mercury direct keeps conversation easy",
		},
	},
	domain.EventType_Surgery: {
		BestMoonPhases:   waningPhases,
		BestMoonSigns:    []domain.Sign{domain.Taurus, domain.Virgo, domain.Capricorn},
		AvoidMoonSigns:   []domain.Sign{domain.Scorpio},
		AvoidRetrogrades: []domain.Planet{domain.Mars, domain.Mercury},
		BestDays:         []time.Weekday{time.Tuesday, time.Saturday},
		BestHourRulers:   []domain.Planet{domain.Mars, domain.Saturn},
		Tips: []string{
			"Operate on a waning Moon to reduce swelling and bleeding",
			"Avoid the Moon in the sign ruling the body part being operated on",
			"Mars direct supports a clean, decisive procedure",
		},
	},
	domain.EventType_Dental: {
		BestMoonPhases:   waningPhases,
		BestMoonSigns:    []domain.Sign{domain.Gemini, domain.Virgo, domain.Libra, domain.Sagittarius, domain.Capricorn, domain.Pisces},
		AvoidMoonSigns:   []domain.Sign{domain.Aries, domain.Taurus},
		AvoidRetrogrades: []domain.Planet{domain.Mars},
		BestDays:         []time.Weekday{time.Tuesday, time.Saturday},
		BestHourRulers:   []domain.Planet{domain.Saturn, domain.Mars},
		Tips: []string{
			"Avoid the Moon in Aries or Taurus, which rule the head and jaw",
			"Saturn rules the teeth: prefer Saturn well aspected",
		},
	},
	domain.EventType_StartTreatment: {
		BestMoonPhases:   []domain.MoonPhase{domain.MoonPhase_FullMoon, domain.MoonPhase_WaningGibbous, domain.MoonPhase_LastQuarter, domain.MoonPhase_WaningCrescent},
		BestMoonSigns:    []domain.Sign{domain.Virgo, domain.Cancer, domain.Pisces},
		AvoidMoonSigns:   []domain.Sign{domain.Scorpio},
		AvoidRetrogrades: []domain.Planet{domain.Mercury, domain.Mars},
		BestDays:         []time.Weekday{time.Monday, time.Wednesday},
		BestHourRulers:   []domain.Planet{domain.Moon, domain.Mercury},
		Tips: []string{
			"Begin treatments meant to remove illness on a waning Moon",
			"Mercury direct helps prescriptions and instructions be understood",
		},
	},
	domain.EventType_LongJourney: {
		BestMoonPhases:   waxingPhases,
		BestMoonSigns:    []domain.Sign{domain.Gemini, domain.Sagittarius, domain.Aquarius, domain.Pisces},
		AvoidMoonSigns:   []domain.Sign{domain.Scorpio},
		AvoidRetrogrades: []domain.Planet{domain.Mercury, domain.Jupiter},
		BestDays:         []time.Weekday{time.Wednesday, time.Thursday},
		BestHourRulers:   []domain.Planet{domain.Jupiter, domain.Mercury, domain.Moon},
		Tips: []string{
			"Jupiter rules long journeys: travel when it is direct and well aspected",
			"Mercury retrograde brings delays and lost luggage",
		},
	},
	domain.EventType_MovingHouse: {
		BestMoonPhases:   waxingPhases,
		BestMoonSigns:    []domain.Sign{domain.Taurus, domain.Cancer, domain.Leo, domain.Capricorn},
		AvoidMoonSigns:   []domain.Sign{domain.Aries, domain.Scorpio},
		AvoidRetrogrades: []domain.Planet{domain.Mercury, domain.Saturn},
		BestDays:         []time.Weekday{time.Monday, time.Saturday},
		BestHourRulers:   []domain.Planet{domain.Moon, domain.Saturn},
		Tips: []string{
			"The Moon rules the home: a strong, waxing Moon settles the household",
			"Avoid Mercury retrograde for signing leases and moving logistics",
		},
	},
	domain.EventType_Investment: {
		BestMoonPhases:   waxingPhases,
		BestMoonSigns:    []domain.Sign{domain.Taurus, domain.Virgo, domain.Capricorn},
		AvoidMoonSigns:   []domain.Sign{domain.Pisces, domain.Scorpio},
		AvoidRetrogrades: []domain.Planet{domain.Jupiter, domain.Mercury, domain.Venus},
		BestDays:         []time.Weekday{time.Thursday, time.Friday},
		BestHourRulers:   []domain.Planet{domain.Jupiter, domain.Venus},
		Tips: []string{
			"Jupiter direct and unafflicted favors growth of capital",
			"Venus rules money: avoid Venus retrograde for new investments",
		},
	},
	domain.EventType_BuyingProperty: {
		BestMoonPhases:   waxingPhases,
		BestMoonSigns:    []domain.Sign{domain.Taurus, domain.Cancer, domain.Capricorn},
		AvoidMoonSigns:   []domain.Sign{domain.Aries, domain.Libra},
		AvoidRetrogrades: []domain.Planet{domain.Saturn, domain.Mercury},
		BestDays:         []time.Weekday{time.Saturday, time.Monday},
		BestHourRulers:   []domain.Planet{domain.Saturn, domain.Moon},
		Tips: []string{
			"Saturn rules land and property: prefer Saturn direct and well aspected",
			"A Moon in an earth sign grounds the purchase",
		},
	},
	domain.EventType_MajorPurchase: {
		BestMoonPhases:   waxingPhases,
		BestMoonSigns:    []domain.Sign{domain.Taurus, domain.Leo, domain.Libra, domain.Capricorn},
		AvoidMoonSigns:   []domain.Sign{domain.Scorpio, domain.Pisces},
		AvoidRetrogrades: []domain.Planet{domain.Venus, domain.Mercury},
		BestDays:         []time.Weekday{time.Friday, time.Thursday},
		BestHourRulers:   []domain.Planet{domain.Venus, domain.Jupiter},
		Tips: []string{
			"Venus direct helps you value the purchase correctly",
			"Mercury retrograde increases the chance of returns and defects",
		},
	},
	domain.EventType_CreativeStart: {
		BestMoonPhases:   waxingPhases,
		BestMoonSigns:    []domain.Sign{domain.Leo, domain.Libra, domain.Pisces, domain.Taurus},
		AvoidMoonSigns:   []domain.Sign{domain.Capricorn},
		AvoidRetrogrades: []domain.Planet{domain.Venus},
		BestDays:         []time.Weekday{time.Friday, time.Sunday},
		BestHourRulers:   []domain.Planet{domain.Venus, domain.Sun},
		Tips: []string{
			"Venus rules the arts: begin when Venus is direct and strong",
			"A Moon in Leo or Pisces feeds imagination",
		},
	},
	domain.EventType_Publishing: {
		BestMoonPhases:   []domain.MoonPhase{domain.MoonPhase_FirstQuarter, domain.MoonPhase_WaxingGibbous, domain.MoonPhase_FullMoon},
		BestMoonSigns:    []domain.Sign{domain.Gemini, domain.Sagittarius, domain.Virgo, domain.Aquarius},
		AvoidMoonSigns:   []domain.Sign{domain.Scorpio},
		AvoidRetrogrades: []domain.Planet{domain.Mercury, domain.Jupiter},
		BestDays:         []time.Weekday{time.Wednesday, time.Thursday},
		BestHourRulers:   []domain.Planet{domain.Mercury, domain.Jupiter},
		Tips: []string{
			"Mercury direct is essential for error-free printing and distribution",
			"Jupiter well aspected widens the audience",
		},
	},
	domain.EventType_StartingStudies: {
		BestMoonPhases:   waxingPhases,
		BestMoonSigns:    []domain.Sign{domain.Gemini, domain.Virgo, domain.Sagittarius, domain.Aquarius},
		AvoidMoonSigns:   []domain.Sign{domain.Pisces},
		AvoidRetrogrades: []domain.Planet{domain.Mercury},
		BestDays:         []time.Weekday{time.Wednesday, time.Thursday},
		BestHourRulers:   []domain.Planet{domain.Mercury, domain.Jupiter},
		Tips: []string{
			"Mercury governs learning: enroll while Mercury is direct",
			"A Moon in an air sign sharpens the mind",
		},
	},
	domain.EventType_Exam: {
		BestMoonPhases:   []domain.MoonPhase{domain.MoonPhase_FirstQuarter, domain.MoonPhase_WaxingGibbous, domain.MoonPhase_FullMoon},
		BestMoonSigns:    []domain.Sign{domain.Gemini, domain.Virgo, domain.Aquarius, domain.Capricorn},
		AvoidMoonSigns:   []domain.Sign{domain.Pisces, domain.Cancer},
		AvoidRetrogrades: []domain.Planet{domain.Mercury},
		BestDays:         []time.Weekday{time.Wednesday},
		BestHourRulers:   []domain.Planet{domain.Mercury, domain.Sun},
		Tips: []string{
			"Mercury direct and unafflicted supports recall and clear writing",
			"Avoid a void of course Moon for the exam hour",
		},
	},
	domain.EventType_Lawsuit: {
		BestMoonPhases:   []domain.MoonPhase{domain.MoonPhase_FirstQuarter, domain.MoonPhase_WaxingGibbous},
		BestMoonSigns:    []domain.Sign{domain.Libra, domain.Sagittarius, domain.Capricorn, domain.Leo},
		AvoidMoonSigns:   []domain.Sign{domain.Pisces, domain.Scorpio},
		AvoidRetrogrades: []domain.Planet{domain.Jupiter, domain.Mercury, domain.Saturn},
		BestDays:         []time.Weekday{time.Thursday, time.Saturday},
		BestHourRulers:   []domain.Planet{domain.Jupiter, domain.Saturn},
		Tips: []string{
			"Jupiter rules law and justice: file when Jupiter is direct",
			"Mercury direct keeps filings and testimony accurate",
		},
	},
	domain.EventType_CourtAppearance: {
		BestMoonPhases:   waxingPhases,
		BestMoonSigns:    []domain.Sign{domain.Libra, domain.Leo, domain.Sagittarius, domain.Capricorn},
		AvoidMoonSigns:   []domain.Sign{domain.Scorpio, domain.Pisces},
		AvoidRetrogrades: []domain.Planet{domain.Jupiter, domain.Mercury},
		BestDays:         []time.Weekday{time.Thursday, time.Sunday},
		BestHourRulers:   []domain.Planet{domain.Jupiter, domain.Sun},
		Tips: []string{
			"Appear in a Jupiter hour for a favorable hearing",
			"Mercury direct helps your arguments land",
		},
	},
}

// GetElectionalGuidelines returns the static guideline for eventType.
func GetElectionalGuidelines(eventType domain.EventType) (domain.ElectionalGuideline, error) {
	g, ok := electionalGuidelines[eventType]
	if !ok {
		return domain.ElectionalGuideline{}, fmt.Errorf("no electional guidelines for event type %q", eventType)
	}
	return g, nil
}
