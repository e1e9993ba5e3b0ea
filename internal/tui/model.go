// Package tui provides the Bubble Tea drill interface.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/verte-zerg/tentwenty/internal/imageview"
	"github.com/verte-zerg/tentwenty/internal/model"
	"github.com/verte-zerg/tentwenty/internal/quiz"
)

const (
	appTitle   = "10-20 Measurement Practice"
	labelWidth = 30
	inputWidth = 12
)

// Options configures the display.
type Options struct {
	Theme  Theme
	Policy imageview.Policy
	// Images renders page previews; nil disables them.
	Images *imageview.Renderer
	Logger *zap.Logger
}

// Model implements the Bubble Tea drill UI.
type Model struct {
	ctrl   *quiz.Controller
	images *imageview.Renderer
	policy imageview.Policy
	log    *zap.Logger
	styles styles
	keys   keyMap
	help   help.Model

	width  int
	height int

	view     model.PageView
	inputs   []textinput.Model
	focus    int
	eval     *model.AnswerEvaluation
	preview  string
	imageErr string
	errMsg   string
}

// NewModel constructs the drill model positioned on the start page.
func NewModel(ctrl *quiz.Controller, opts Options) *Model {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Theme.Name == "" {
		opts.Theme = themes["cosmo"]
	}
	if opts.Policy == "" {
		opts.Policy = imageview.DefaultPolicy("")
	}
	m := &Model{
		ctrl:   ctrl,
		images: opts.Images,
		policy: opts.Policy,
		log:    opts.Logger,
		styles: newStyles(opts.Theme),
		keys:   newKeyMap(),
		help:   help.New(),
	}
	m.showStart()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if m.view.Start {
			return m.updateStart(msg)
		}
		return m.updatePage(msg)
	default:
		return m.updateFocused(msg)
	}
}

func (m *Model) updateStart(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.QuitAlt):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Begin):
		return m, m.advance()
	}
	return m, nil
}

func (m *Model) updatePage(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Check):
		m.check()
		return m, nil
	case key.Matches(msg, m.keys.Next):
		return m, m.setFocus(m.focus + 1)
	case key.Matches(msg, m.keys.Prev):
		return m, m.setFocus(m.focus - 1)
	case key.Matches(msg, m.keys.Advance):
		return m, m.advance()
	}
	return m.updateFocused(msg)
}

func (m *Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	if len(m.inputs) == 0 {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	var body string
	if m.view.Start {
		body = m.renderStart()
	} else {
		body = m.renderPage()
	}
	footer := m.renderFooter()
	if m.width == 0 || m.height == 0 {
		return body + "\n\n" + footer
	}
	footerHeight := lipgloss.Height(footer)
	bodyHeight := m.height - footerHeight
	if bodyHeight < 1 {
		return body + "\n" + footer
	}
	placed := lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, body)
	return placed + "\n" + lipgloss.PlaceHorizontal(m.width, lipgloss.Center, footer)
}

// advance enters the next page, applying the image policy first so that an
// aborted navigation leaves the session untouched.
func (m *Model) advance() tea.Cmd {
	target, err := m.ctrl.NextPageID()
	if err != nil {
		m.fail("failed to resolve next page", err)
		return nil
	}
	return m.enter(target)
}

func (m *Model) enter(id int) tea.Cmd {
	if id == model.StartPageID {
		m.showStart()
		return nil
	}
	page, err := m.ctrl.Catalog().Get(id)
	if err != nil {
		m.fail("failed to open page", err)
		return nil
	}
	preview, proceed, loadErr := m.images.Load(page.Image, m.policy)
	if loadErr != nil {
		m.log.Warn("image load failed", zap.Int("page", id), zap.String("image", page.Image), zap.Error(loadErr))
	}
	if !proceed {
		m.errMsg = fmt.Sprintf("Error loading image %s: %v", page.Image, loadErr)
		return nil
	}
	view, err := m.ctrl.EnterPage(id)
	if err != nil {
		m.fail("failed to open page", err)
		return nil
	}
	m.setView(view, preview, loadErr)
	return m.setFocus(0)
}

// showStart resets the session. The start image never blocks navigation.
func (m *Model) showStart() {
	view := m.ctrl.Start()
	preview, _, loadErr := m.images.Load(view.Image, imageview.PolicyIgnore)
	if loadErr != nil {
		m.log.Warn("start image load failed", zap.String("image", view.Image), zap.Error(loadErr))
	}
	m.setView(view, preview, loadErr)
}

func (m *Model) setView(view model.PageView, preview string, loadErr error) {
	m.view = view
	m.preview = preview
	m.imageErr = ""
	if loadErr != nil {
		m.imageErr = fmt.Sprintf("image unavailable: %s", view.Image)
	}
	m.errMsg = ""
	m.eval = nil
	m.focus = 0
	m.inputs = make([]textinput.Model, 0, len(view.Fields))
	for _, f := range view.Fields {
		m.inputs = append(m.inputs, newAnswerInput(f.Value))
	}
}

func newAnswerInput(value string) textinput.Model {
	input := textinput.New()
	input.Prompt = ""
	input.Placeholder = "cm"
	input.CharLimit = 16
	input.Width = inputWidth
	input.SetValue(value)
	return input
}

func (m *Model) setFocus(idx int) tea.Cmd {
	count := len(m.inputs)
	if count == 0 {
		return nil
	}
	if idx < 0 {
		idx = count - 1
	}
	if idx >= count {
		idx = 0
	}
	m.focus = idx
	var cmd tea.Cmd
	for i := range m.inputs {
		if i == m.focus {
			cmd = m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	return cmd
}

func (m *Model) submitted() map[string]string {
	out := make(map[string]string, len(m.inputs))
	for i, f := range m.view.Fields {
		out[f.Label] = m.inputs[i].Value()
	}
	return out
}

func (m *Model) check() {
	eval := m.ctrl.Check(m.submitted())
	m.eval = &eval
	m.errMsg = ""
}

func (m *Model) fail(context string, err error) {
	m.log.Error(context, zap.Error(err))
	m.errMsg = fmt.Sprintf("%s: %v", context, err)
}

func (m *Model) renderStart() string {
	lines := []string{m.styles.header.Render(appTitle), ""}
	if block := m.renderPreview(); block != "" {
		lines = append(lines, block, "")
	}
	lines = append(lines,
		m.styles.title.Render(m.view.Title),
		"",
		m.styles.text.Render(m.view.Intro),
		"",
		m.styles.button.Render(m.view.AdvanceLabel),
	)
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func (m *Model) renderPage() string {
	lines := []string{m.styles.header.Render(appTitle), ""}
	if block := m.renderPreview(); block != "" {
		lines = append(lines, block, "")
	}
	width := labelWidth + inputWidth + 16
	prompt := wrapStyledRunes(
		buildStyledRunes(m.view.PromptText, fmt.Sprintf("%dcm", m.view.PromptValue), m.styles.text, m.styles.accent),
		width,
	)
	lines = append(lines, prompt, "")
	for i, f := range m.view.Fields {
		lines = append(lines, m.renderField(i, f))
	}
	lines = append(lines, "")
	if m.eval != nil {
		style := m.styles.status[statusIncorrect]
		if m.eval.AllCorrect() {
			style = m.styles.status[statusCorrect]
		}
		lines = append(lines, style.Render(m.eval.Summary()), "")
	}
	lines = append(lines, m.styles.button.Render(m.view.AdvanceLabel))
	return lipgloss.NewStyle().Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m *Model) renderField(i int, f model.Field) string {
	label := m.styles.label.Render(padLabel(f.Label, labelWidth))
	status := m.fieldStatus(f.Label)
	style := m.styles.status[status]
	input := style.Render("[") + m.inputs[i].View() + style.Render("]")
	return label + " " + input + " " + style.Render(statusMarker(status))
}

func (m *Model) fieldStatus(label string) statusKey {
	if m.eval == nil {
		return statusNone
	}
	s, ok := m.eval.Status(label)
	if !ok {
		return statusNone
	}
	switch s {
	case model.StatusCorrect:
		return statusCorrect
	case model.StatusIncorrect:
		return statusIncorrect
	default:
		return statusUnparseable
	}
}

func statusMarker(s statusKey) string {
	switch s {
	case statusCorrect:
		return "✓"
	case statusIncorrect:
		return "✗"
	case statusUnparseable:
		return "?"
	default:
		return " "
	}
}

func (m *Model) renderPreview() string {
	if m.preview != "" {
		return m.styles.preview.Render(m.preview)
	}
	if m.imageErr != "" {
		return m.styles.warning.Render(m.imageErr)
	}
	return ""
}

func (m *Model) renderFooter() string {
	var bindings []key.Binding
	if m.view.Start {
		bindings = m.keys.startHelp()
	} else {
		bindings = m.keys.pageHelp(strings.ToLower(m.view.AdvanceLabel))
	}
	segments := []string{}
	if !m.view.Start {
		segments = append(segments, fmt.Sprintf("Page %d of %d", m.view.PageID, m.ctrl.Catalog().Len()))
		if m.eval != nil {
			correct, _, _ := m.eval.Counts()
			segments = append(segments, fmt.Sprintf("Correct %d/%d", correct, len(m.eval.Results)))
		}
	}
	lines := []string{}
	if len(segments) > 0 {
		lines = append(lines, m.styles.footer.Render(strings.Join(segments, "  ")))
	}
	lines = append(lines, m.help.ShortHelpView(bindings))
	if m.errMsg != "" {
		lines = append(lines, m.styles.errorLine.Render(m.errMsg))
	}
	return strings.Join(lines, "\n")
}
