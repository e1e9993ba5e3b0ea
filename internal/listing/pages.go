package listing

import (
	"fmt"
	"io"
	"strconv"

	"github.com/verte-zerg/tentwenty/internal/catalog"
	"github.com/verte-zerg/tentwenty/internal/model"
)

// Pages writes one row per catalog page. Lines longer than width are
// truncated; width <= 0 disables truncation.
func Pages(w io.Writer, cat *catalog.Catalog, width int) error {
	headers := []string{"Page", "Reference", "Range (cm)", "Fields", "Next", "Image"}
	pages := cat.Pages()
	rows := make([][]string, 0, len(pages))
	for _, p := range pages {
		next := strconv.Itoa(p.NextPageID)
		if p.NextPageID == model.StartPageID {
			next = "start"
		}
		rows = append(rows, []string{
			strconv.Itoa(p.ID),
			p.ReferenceLabel,
			p.Range.String(),
			strconv.Itoa(len(p.Measurements)),
			next,
			p.Image,
		})
	}
	rightAlign := map[int]bool{0: true, 3: true, 4: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, truncateLine(line, width)); err != nil {
			return err
		}
	}
	return nil
}

// Measurements writes the measurement table of a single page.
func Measurements(w io.Writer, page model.PageDefinition) error {
	if _, err := fmt.Fprintf(w, "Page %d: %s (%s cm)\n", page.ID, page.ReferenceLabel, page.Range); err != nil {
		return err
	}
	rows := make([][]string, 0, len(page.Measurements))
	for _, m := range page.Measurements {
		rows = append(rows, []string{m.Label, fmt.Sprintf("%d%%", m.Percent)})
	}
	for _, line := range formatTable([]string{"Measurement", "Percent"}, rows, map[int]bool{1: true}) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
