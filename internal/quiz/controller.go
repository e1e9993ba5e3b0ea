// Package quiz drives a drill session: page navigation, prompt generation and
// answer checking.
package quiz

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/verte-zerg/tentwenty/internal/catalog"
	"github.com/verte-zerg/tentwenty/internal/model"
)

// Source draws prompt values from an inclusive range.
type Source interface {
	Between(lo, hi int) int
}

// Controller owns the session state. It is not safe for concurrent use; a
// display drives it from a single event loop.
type Controller struct {
	catalog *catalog.Catalog
	source  Source
	log     *zap.Logger
	state   model.SessionState
	// round identifies one pass from the start page, for log correlation.
	round string
}

// NewController returns a controller positioned on the start page.
func NewController(cat *catalog.Catalog, src Source, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{catalog: cat, source: src, log: log}
}

// Start resets the session to the start page.
func (c *Controller) Start() model.PageView {
	c.state = model.SessionState{CurrentPageID: model.StartPageID}
	c.round = uuid.NewString()
	c.log.Debug("start page entered", zap.String("round", c.round))
	return c.startView()
}

// EnterPage draws a new prompt for page id and makes it current. An unknown id
// leaves the state untouched.
func (c *Controller) EnterPage(id int) (model.PageView, error) {
	page, err := c.catalog.Get(id)
	if err != nil {
		return model.PageView{}, err
	}
	if id == model.StartPageID {
		return c.Start(), nil
	}
	prompt := c.source.Between(page.Range.Min, page.Range.Max)
	c.state = model.SessionState{
		CurrentPageID: id,
		HasPrompt:     true,
		PromptValue:   prompt,
		Expected:      ExpectedAnswers(prompt, page.Measurements),
	}
	c.log.Debug("page entered",
		zap.String("round", c.round),
		zap.Int("page", id),
		zap.Int("prompt", prompt),
		zap.Int("fields", len(page.Measurements)),
	)
	return pageView(page, prompt), nil
}

// Check grades submitted answers for the current page. It never mutates state.
func (c *Controller) Check(submitted map[string]string) model.AnswerEvaluation {
	eval := Evaluate(c.state.Expected, submitted)
	correct, incorrect, unparseable := eval.Counts()
	c.log.Info("answers checked",
		zap.String("round", c.round),
		zap.Int("page", c.state.CurrentPageID),
		zap.Int("correct", correct),
		zap.Int("incorrect", incorrect),
		zap.Int("unparseable", unparseable),
	)
	return eval
}

// Advance enters the current page's next page. From the start page this is
// the begin action.
func (c *Controller) Advance() (model.PageView, error) {
	next, err := c.NextPageID()
	if err != nil {
		return model.PageView{}, err
	}
	return c.EnterPage(next)
}

// NextPageID returns the page Advance would enter, without changing state.
func (c *Controller) NextPageID() (int, error) {
	page, err := c.catalog.Get(c.state.CurrentPageID)
	if err != nil {
		return 0, fmt.Errorf("current page: %w", err)
	}
	return page.NextPageID, nil
}

// Current re-renders the current page with its existing prompt.
func (c *Controller) Current() model.PageView {
	if c.state.CurrentPageID == model.StartPageID || !c.state.HasPrompt {
		return c.startView()
	}
	page, err := c.catalog.Get(c.state.CurrentPageID)
	if err != nil {
		return c.startView()
	}
	return pageView(page, c.state.PromptValue)
}

// State returns a copy of the session state.
func (c *Controller) State() model.SessionState {
	s := c.state
	s.Expected = append([]model.Expected(nil), c.state.Expected...)
	return s
}

// Round returns the id of the current round. It changes on every Start.
func (c *Controller) Round() string {
	return c.round
}

// Catalog returns the catalog the controller navigates.
func (c *Controller) Catalog() *catalog.Catalog {
	return c.catalog
}

func (c *Controller) startView() model.PageView {
	start := c.catalog.Start()
	return model.PageView{
		PageID:       model.StartPageID,
		Start:        true,
		Title:        start.Title,
		Intro:        start.Intro,
		NextPageID:   start.FirstPage,
		AdvanceLabel: "Start",
		Image:        start.Image,
	}
}

func pageView(page model.PageDefinition, prompt int) model.PageView {
	fields := make([]model.Field, 0, len(page.Measurements))
	for _, m := range page.Measurements {
		fields = append(fields, model.Field{Label: m.Label})
	}
	return model.PageView{
		PageID:       page.ID,
		Title:        page.ReferenceLabel,
		PromptText:   PromptText(page.ReferenceLabel, prompt),
		PromptValue:  prompt,
		Fields:       fields,
		NextPageID:   page.NextPageID,
		AdvanceLabel: AdvanceLabel(page.NextPageID),
		Image:        page.Image,
	}
}

// PromptText formats the question shown above the inputs.
func PromptText(label string, prompt int) string {
	return fmt.Sprintf("If the measurement from %s is: %dcm\nProvide the following lengths:", label, prompt)
}

// AdvanceLabel names the navigation action for a next page id.
func AdvanceLabel(next int) string {
	if next == model.StartPageID {
		return "Back to start"
	}
	return fmt.Sprintf("Go to Page %d", next)
}
