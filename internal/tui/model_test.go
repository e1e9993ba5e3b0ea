package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/verte-zerg/tentwenty/internal/catalog"
	"github.com/verte-zerg/tentwenty/internal/imageview"
	"github.com/verte-zerg/tentwenty/internal/model"
	"github.com/verte-zerg/tentwenty/internal/quiz"
)

type fixedSource int

func (f fixedSource) Between(_, _ int) int { return int(f) }

func newTestModel(t *testing.T, opts Options) (*Model, *quiz.Controller) {
	t.Helper()
	opts.Logger = zaptest.NewLogger(t)
	ctrl := quiz.NewController(catalog.Default(), fixedSource(30), opts.Logger)
	return NewModel(ctrl, opts), ctrl
}

func press(m *Model, k tea.KeyType) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: k})
	return cmd
}

func typeText(m *Model, s string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func TestStartPageBeginEntersFirstPage(t *testing.T) {
	m, ctrl := newTestModel(t, Options{})
	require.True(t, m.view.Start)
	assert.Contains(t, m.View(), catalog.DefaultStart.Title)

	press(m, tea.KeyEnter)
	assert.Equal(t, 1, m.view.PageID)
	assert.Len(t, m.inputs, 5)
	assert.Equal(t, 1, ctrl.State().CurrentPageID)
	assert.Contains(t, m.View(), "nasion to inion is: 30cm")
}

func TestCheckShowsPerFieldFeedback(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	press(m, tea.KeyEnter)

	typeText(m, "3.0")
	press(m, tea.KeyTab)
	typeText(m, "bad")
	press(m, tea.KeyTab)
	typeText(m, "15")
	press(m, tea.KeyTab)
	typeText(m, "21.0")
	press(m, tea.KeyTab)
	typeText(m, "99")
	press(m, tea.KeyEnter)

	require.NotNil(t, m.eval)
	statuses := make([]model.Status, 0, len(m.eval.Results))
	for _, r := range m.eval.Results {
		statuses = append(statuses, r.Status)
	}
	assert.Equal(t, []model.Status{
		model.StatusCorrect,
		model.StatusUnparseable,
		model.StatusCorrect,
		model.StatusCorrect,
		model.StatusIncorrect,
	}, statuses)

	out := m.View()
	assert.Contains(t, out, "Please check your answers, some are incorrect.")
	assert.Contains(t, out, "✓")
	assert.Contains(t, out, "✗")
	assert.Contains(t, m.renderFooter(), "Correct 3/5")
}

func TestAllCorrectMessage(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	press(m, tea.KeyEnter)
	for i, v := range []string{"3", "9", "15", "21", "27"} {
		if i > 0 {
			press(m, tea.KeyDown)
		}
		typeText(m, v)
	}
	press(m, tea.KeyEnter)
	require.NotNil(t, m.eval)
	assert.True(t, m.eval.AllCorrect())
	assert.Contains(t, m.View(), "All answers correct!")
}

func TestFocusWraps(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	press(m, tea.KeyEnter)
	press(m, tea.KeyShiftTab)
	assert.Equal(t, 4, m.focus)
	press(m, tea.KeyTab)
	assert.Equal(t, 0, m.focus)
}

func TestAdvanceThroughCatalogReturnsToStart(t *testing.T) {
	m, ctrl := newTestModel(t, Options{})
	press(m, tea.KeyEnter)
	for want := 2; want <= 7; want++ {
		press(m, tea.KeyCtrlN)
		require.Equal(t, want, m.view.PageID)
		require.Nil(t, m.eval)
	}
	press(m, tea.KeyCtrlN)
	assert.True(t, m.view.Start)
	assert.Equal(t, model.StartPageID, ctrl.State().CurrentPageID)
}

func TestAbortPolicyKeepsState(t *testing.T) {
	images := imageview.NewRenderer(imageview.NewResolver(t.TempDir()), 10, 5)
	m, ctrl := newTestModel(t, Options{Images: images, Policy: imageview.PolicyAbort})
	assert.Contains(t, m.View(), "image unavailable")

	press(m, tea.KeyEnter)
	assert.True(t, m.view.Start)
	assert.Equal(t, model.StartPageID, ctrl.State().CurrentPageID)
	assert.Contains(t, m.errMsg, "Error loading image assets/images/page1.png")
}

func TestIgnorePolicyEntersPage(t *testing.T) {
	dir := t.TempDir()
	images := imageview.NewRenderer(imageview.NewResolver(filepath.Join(dir, "missing")), 10, 5)
	m, ctrl := newTestModel(t, Options{Images: images, Policy: imageview.PolicyIgnore})

	press(m, tea.KeyEnter)
	assert.Equal(t, 1, ctrl.State().CurrentPageID)
	assert.Empty(t, m.errMsg)
	assert.Contains(t, m.View(), "image unavailable: assets/images/page1.png")
}

func TestQuitKeys(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	cmd := press(m, tea.KeyEsc)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())

	press(m, tea.KeyEnter)
	typeText(m, "q")
	assert.Equal(t, "q", m.inputs[0].Value())

	cmd = press(m, tea.KeyCtrlC)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestRenderFooterFormats(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	press(m, tea.KeyEnter)
	out := m.renderFooter()
	if !containsAll(out, []string{"Page 1 of 7", "check answers", "go to page 2"}) {
		t.Fatalf("footer missing expected segments: %s", out)
	}
}

func TestSizedViewFitsHeight(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	press(m, tea.KeyEnter)
	out := m.View()
	assert.Equal(t, 40, strings.Count(out, "\n")+1)
}

func TestLookupTheme(t *testing.T) {
	th, err := LookupTheme("Darkly")
	require.NoError(t, err)
	assert.Equal(t, "darkly", th.Name)

	th, err = LookupTheme(" pulse ")
	require.NoError(t, err)
	assert.Equal(t, "pulse", th.Name)
	assert.Equal(t, []string{"cosmo", "pulse", "darkly"}, ThemeNames())

	_, err = LookupTheme("solar")
	assert.Error(t, err)
}

func containsAll(haystack string, needles []string) bool {
	for _, needle := range needles {
		if !strings.Contains(haystack, needle) {
			return false
		}
	}
	return true
}

func TestDefaultImageSettingsReachFirstPage(t *testing.T) {
	images := imageview.NewRenderer(imageview.NewResolver(imageview.DefaultDirs("")...), 36, 15)
	m, ctrl := newTestModel(t, Options{
		Images: images,
		Policy: imageview.DefaultPolicy(""),
	})

	press(m, tea.KeyEnter)
	assert.Equal(t, 1, ctrl.State().CurrentPageID)
	assert.False(t, m.view.Start)
	assert.Empty(t, m.errMsg)
	assert.Contains(t, m.View(), "image unavailable: assets/images/page1.png")

	// Without a policy the model uses the same default.
	m, ctrl = newTestModel(t, Options{Images: images})
	press(m, tea.KeyEnter)
	assert.Equal(t, 1, ctrl.State().CurrentPageID)
}
