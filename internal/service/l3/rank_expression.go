package l3_service

import (
	"astrocore/internal/domain"
	"fmt"
	"math"

	"github.com/maja42/goval"
)

func rankFunctions() map[string]goval.ExpressionFunction {
	return map[string]goval.ExpressionFunction{
		"min": func(args ...interface{}) (interface{}, error) {
			if len(args) < 1 {
				return 0, fmt.Errorf("min needs at least 1 arg, got %d", len(args))
			}
			out := math.Inf(1)
			for _, a := range args {
				f, err := toFloat(a)
				if err != nil {
					return 0, err
				}
				out = math.Min(out, f)
			}
			return out, nil
		},
		"max": func(args ...interface{}) (interface{}, error) {
			if len(args) < 1 {
				return 0, fmt.Errorf("max needs at least 1 arg, got %d", len(args))
			}
			out := math.Inf(-1)
			for _, a := range args {
				f, err := toFloat(a)
				if err != nil {
					return 0, err
				}
				out = math.Max(out, f)
			}
			return out, nil
		},
		"abs": func(args ...interface{}) (interface{}, error) {
			if len(args) != 1 {
				return 0, fmt.Errorf("abs needs 1 arg, got %d", len(args))
			}
			f, err := toFloat(args[0])
			if err != nil {
				return 0, err
			}
			return math.Abs(f), nil
		},
	}
}

// rankVariables exposes an analysis to rank expressions. Every fixed
// breakdown key is present so expressions never hit an undefined variable.
func rankVariables(a domain.ElectionAnalysis) map[string]interface{} {
	variables := map[string]interface{}{
		Breakdown_MoonPhase:     0.0,
		Breakdown_MoonSign:      0.0,
		Breakdown_Aspects:       0.0,
		Breakdown_VoidOfCourse:  0.0,
		Breakdown_PlanetaryHour: 0.0,
	}
	for k, v := range a.Score.Breakdown {
		variables[k] = v
	}
	variables["total"] = a.Score.Total
	variables["illumination"] = a.MoonIllumination
	variables["warnings"] = float64(len(a.Warnings))
	variables["beneficAspects"] = float64(len(a.BeneficAspects))
	variables["maleficAspects"] = float64(len(a.MaleficAspects))
	variables["retrogrades"] = float64(len(a.RetrogradePlanets))
	variables["weekday"] = float64(a.DateTime.Weekday())
	variables["voidOfCourseMoon"] = a.VoidOfCourse.IsVoid
	return variables
}

// EvaluateRankExpression computes the ranking key of an analysis from a
// goval expression such as "total - 5 * warnings".
func EvaluateRankExpression(expression string, a domain.ElectionAnalysis) (float64, error) {
	eval := goval.NewEvaluator()
	result, err := eval.Evaluate(expression, rankVariables(a), rankFunctions())
	if err != nil {
		return 0, fmt.Errorf("failed to evaluate rank expression: %w", err)
	}

	r, err := toFloat(result)
	if err != nil {
		return 0, err
	} else if math.IsNaN(r) {
		return 0, fmt.Errorf("calculated NaN as rank expression result")
	} else if math.IsInf(r, 0) {
		return 0, fmt.Errorf("calculated infinity as rank expression result")
	}
	return r, nil
}

func toFloat(v interface{}) (float64, error) {
	switch t := v.(type) {
	case float64:
		return t, nil
	case int:
		return float64(t), nil
	case bool:
		if t {
			return 1, nil
		}
		return 0, nil
	default:
		return 0, fmt.Errorf("failed to convert %v (%T) to float", v, v)
	}
}
