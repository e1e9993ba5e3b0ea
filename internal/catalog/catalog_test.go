package catalog

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/tentwenty/internal/model"
)

func TestDefaultCatalogChain(t *testing.T) {
	c := Default()
	require.Equal(t, 7, c.Len())

	id := model.StartPageID
	var visited []int
	for i := 0; i < 8; i++ {
		page, err := c.Get(id)
		require.NoError(t, err)
		id = page.NextPageID
		visited = append(visited, id)
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 0}, visited)
}

func TestGetUnknownPage(t *testing.T) {
	_, err := Default().Get(99)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestGetStartPage(t *testing.T) {
	page, err := Default().Get(0)
	require.NoError(t, err)
	assert.Empty(t, page.Measurements)
	assert.Equal(t, 1, page.NextPageID)
	assert.Equal(t, DefaultStart.Title, page.ReferenceLabel)
}

func TestGetReturnsCopy(t *testing.T) {
	c := Default()
	page, err := c.Get(1)
	require.NoError(t, err)
	page.Measurements[0].Percent = 99

	again, err := c.Get(1)
	require.NoError(t, err)
	assert.Equal(t, 10, again.Measurements[0].Percent)
}

func TestValidateReportsAllDefects(t *testing.T) {
	pages := []model.PageDefinition{
		{
			ID:             1,
			ReferenceLabel: "a to b",
			Measurements:   []model.Measurement{{Label: "x", Percent: 0}, {Label: "x", Percent: 10}},
			Range:          model.Range{Min: 5, Max: 5},
			NextPageID:     9,
		},
		{ID: 1, ReferenceLabel: "dup"},
	}
	err := Validate(model.StartPage{FirstPage: 3}, pages)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalid))
	msg := err.Error()
	for _, want := range []string{
		"duplicate id",
		"percent 0 must be between 1 and 100",
		`duplicate label "x"`,
		"range min 5 must be < max 5",
		"next page 9 is not defined",
		"first page 3 is not defined",
	} {
		assert.Contains(t, msg, want)
	}
}

func TestValidateEmpty(t *testing.T) {
	err := Validate(model.StartPage{}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no pages")
}

func TestEncodeDecodeTOML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, FormatTOML, Default()))

	c, err := Decode(&buf, FormatTOML)
	require.NoError(t, err)
	assert.Equal(t, Default().Pages(), c.Pages())
	assert.Equal(t, DefaultStart, c.Start())
}

func TestEncodeDecodeYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, FormatYAML, Default()))
	assert.Contains(t, buf.String(), "first_page: 1")

	c, err := Decode(&buf, FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, Default().Pages(), c.Pages())
	assert.Equal(t, DefaultStart, c.Start())
}

func TestLoadYAMLFillsStartDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	content := `pages:
  - id: 10
    label: Cz to Pz
    range: {min: 5, max: 9}
    next: 0
    measurements:
      - {label: "Cz to CPz (50%)", percent: 50}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 10, c.Start().FirstPage)
	assert.Equal(t, DefaultStart.Title, c.Start().Title)

	page, err := c.Get(10)
	require.NoError(t, err)
	assert.Equal(t, []model.Measurement{{Label: "Cz to CPz (50%)", Percent: 50}}, page.Measurements)
}

func TestDecodeRejectsUnknownKeys(t *testing.T) {
	content := `[[pages]]
id = 1
label = "a"
next = 0
colour = "red"
range = { min = 1, max = 2 }
measurements = [{ label = "b", percent = 10 }]
`
	_, err := Decode(strings.NewReader(content), FormatTOML)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "colour")
}

func TestFormatFromPath(t *testing.T) {
	f, err := FormatFromPath("x.YML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	_, err = FormatFromPath("x.json")
	assert.Error(t, err)
}
