// Package model defines shared data structures.
package model

import "fmt"

// StartPageID is the id of the start page. Advancing to it ends a round.
const StartPageID = 0

// Config defines drill settings after flags and the config file are merged.
type Config struct {
	CatalogPath string `flag:"catalog"`
	AssetsDir   string `flag:"assets"`
	Seed        int64  `flag:"seed"`
	Theme       string `flag:"theme" validate:"oneof=cosmo pulse darkly"`
	ImagePolicy string `flag:"image-policy" validate:"omitempty,oneof=abort ignore"`
	ImageWidth  int    `flag:"image-width" validate:"gt=0,lte=200"`
	ImageHeight int    `flag:"image-height" validate:"gt=0,lte=100"`
	Images      bool   `flag:"images"`
	Plain       bool   `flag:"plain"`
}

// Measurement is one row of a page's measurement table.
type Measurement struct {
	Label   string `toml:"label" yaml:"label"`
	Percent int    `toml:"percent" yaml:"percent"`
}

// Range bounds a prompt value. Both ends are legal draws.
type Range struct {
	Min int `toml:"min" yaml:"min"`
	Max int `toml:"max" yaml:"max"`
}

// Contains reports whether v lies within the inclusive bounds.
func (r Range) Contains(v int) bool {
	return v >= r.Min && v <= r.Max
}

func (r Range) String() string {
	return fmt.Sprintf("%d-%d", r.Min, r.Max)
}

// PageDefinition describes one quiz page. Measurements keep display order.
type PageDefinition struct {
	ID             int           `toml:"id" yaml:"id"`
	ReferenceLabel string        `toml:"label" yaml:"label"`
	Measurements   []Measurement `toml:"measurements" yaml:"measurements"`
	Range          Range         `toml:"range" yaml:"range"`
	NextPageID     int           `toml:"next" yaml:"next"`
	Image          string        `toml:"image" yaml:"image"`
}

// StartPage holds the start page texts and the first page to enter.
type StartPage struct {
	Title     string `toml:"title" yaml:"title"`
	Intro     string `toml:"intro" yaml:"intro"`
	Image     string `toml:"image" yaml:"image"`
	FirstPage int    `toml:"first_page" yaml:"first_page"`
}

// Expected is a generated answer for a single label.
type Expected struct {
	Label string
	Value float64
}

// SessionState is the live state owned by the session controller.
type SessionState struct {
	CurrentPageID int
	HasPrompt     bool
	PromptValue   int
	Expected      []Expected
}

// Lookup returns the expected value stored for label.
func (s SessionState) Lookup(label string) (float64, bool) {
	for _, e := range s.Expected {
		if e.Label == label {
			return e.Value, true
		}
	}
	return 0, false
}

// Field is an input row on a page view.
type Field struct {
	Label string
	Value string
}

// PageView is the renderable snapshot of the current page.
type PageView struct {
	PageID       int
	Start        bool
	Title        string
	Intro        string
	PromptText   string
	PromptValue  int
	Fields       []Field
	NextPageID   int
	AdvanceLabel string
	Image        string
}

// Status is the per-label outcome of a check.
type Status int

const (
	StatusUnparseable Status = iota
	StatusIncorrect
	StatusCorrect
)

func (s Status) String() string {
	switch s {
	case StatusCorrect:
		return "correct"
	case StatusIncorrect:
		return "incorrect"
	default:
		return "unparseable"
	}
}

// Result is the outcome for one label.
type Result struct {
	Label  string
	Status Status
}

// AnswerEvaluation lists a result for every expected label, in page order.
type AnswerEvaluation struct {
	Results []Result
}

const (
	allCorrectMessage = "All answers correct!"
	retryMessage      = "Please check your answers, some are incorrect."
)

// Status returns the result for label, or false if the label was not evaluated.
func (e AnswerEvaluation) Status(label string) (Status, bool) {
	for _, r := range e.Results {
		if r.Label == label {
			return r.Status, true
		}
	}
	return StatusUnparseable, false
}

// AllCorrect reports whether every label was answered correctly.
func (e AnswerEvaluation) AllCorrect() bool {
	for _, r := range e.Results {
		if r.Status != StatusCorrect {
			return false
		}
	}
	return true
}

// Counts tallies results by status.
func (e AnswerEvaluation) Counts() (correct, incorrect, unparseable int) {
	for _, r := range e.Results {
		switch r.Status {
		case StatusCorrect:
			correct++
		case StatusIncorrect:
			incorrect++
		default:
			unparseable++
		}
	}
	return correct, incorrect, unparseable
}

// Summary returns the aggregate feedback message.
func (e AnswerEvaluation) Summary() string {
	if e.AllCorrect() {
		return allCorrectMessage
	}
	return retryMessage
}
