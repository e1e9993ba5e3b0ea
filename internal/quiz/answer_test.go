package quiz

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/verte-zerg/tentwenty/internal/model"
)

func formatExpected(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func TestExpectedRounding(t *testing.T) {
	cases := []struct {
		prompt, percent int
		want            float64
	}{
		{30, 10, 3.0},
		{37, 15, 5.55},
		{61, 35, 21.35},
		{33, 5, 1.65},
		{10, 75, 7.5},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Expected(tc.prompt, tc.percent), "prompt=%d percent=%d", tc.prompt, tc.percent)
	}
}

func TestTypedDecimalMatchesExpected(t *testing.T) {
	for prompt := 1; prompt <= 100; prompt++ {
		for _, pct := range []int{5, 10, 15, 25, 30, 35, 45, 50, 70, 75, 90} {
			want := Expected(prompt, pct)
			typed := strconv.FormatFloat(float64(prompt*pct)/100, 'f', 2, 64)
			got, ok := ParseAnswer(typed)
			if !ok || got != want {
				t.Fatalf("typed %q for prompt=%d pct=%d parsed to %v, want %v", typed, prompt, pct, got, want)
			}
		}
	}
}

func TestParseAnswer(t *testing.T) {
	for _, raw := range []string{"", "  ", "abc", "1,5", "0x10", "0x1p-2", "1.2.3", "1__0", "_1", "1_", "1._5"} {
		_, ok := ParseAnswer(raw)
		assert.False(t, ok, "expected %q to be unparseable", raw)
	}
	v, ok := ParseAnswer(" 10.0\t")
	assert.True(t, ok)
	assert.Equal(t, 10.0, v)

	v, ok = ParseAnswer("1_0")
	assert.True(t, ok)
	assert.Equal(t, 10.0, v)

	v, ok = ParseAnswer("1_000.5")
	assert.True(t, ok)
	assert.Equal(t, 1000.5, v)

	v, ok = ParseAnswer("-2.5")
	assert.True(t, ok)
	assert.Equal(t, -2.5, v)
}

func TestEvaluateExactEquality(t *testing.T) {
	expected := []model.Expected{{Label: "a", Value: 5.55}}
	eval := Evaluate(expected, map[string]string{"a": "5.550000001"})
	assert.Equal(t, model.StatusIncorrect, eval.Results[0].Status)

	eval = Evaluate(expected, map[string]string{"a": "5.55"})
	assert.Equal(t, model.StatusCorrect, eval.Results[0].Status)
}
