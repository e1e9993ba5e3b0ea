package quiz

import (
	"math"
	"strconv"
	"strings"

	"github.com/verte-zerg/tentwenty/internal/model"
)

// Expected returns prompt*percent/100 rounded to two decimal places.
func Expected(prompt, percent int) float64 {
	v := float64(prompt*percent) / 100
	return math.Round(v*100) / 100
}

// ExpectedAnswers derives the expected value for every measurement, in order.
func ExpectedAnswers(prompt int, table []model.Measurement) []model.Expected {
	out := make([]model.Expected, 0, len(table))
	for _, m := range table {
		out = append(out, model.Expected{Label: m.Label, Value: Expected(prompt, m.Percent)})
	}
	return out
}

// ParseAnswer parses a typed decimal number. Surrounding whitespace is ignored
// and underscores may separate digits ("1_0" is 10). Hex floats are rejected.
func ParseAnswer(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" || strings.ContainsAny(s, "xXpP") {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Evaluate grades submitted answers against the expected values. Labels
// missing from submitted are unparseable. Matching is exact, with no tolerance.
func Evaluate(expected []model.Expected, submitted map[string]string) model.AnswerEvaluation {
	results := make([]model.Result, 0, len(expected))
	for _, e := range expected {
		status := model.StatusUnparseable
		if raw, ok := submitted[e.Label]; ok {
			if v, ok := ParseAnswer(raw); ok {
				status = model.StatusIncorrect
				if v == e.Value {
					status = model.StatusCorrect
				}
			}
		}
		results = append(results, model.Result{Label: e.Label, Status: status})
	}
	return model.AnswerEvaluation{Results: results}
}
