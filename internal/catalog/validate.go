package catalog

import (
	"fmt"
	"strings"

	"go.uber.org/multierr"

	"github.com/verte-zerg/tentwenty/internal/model"
)

// Validate reports every defect in the start page and page list at once.
func Validate(start model.StartPage, pages []model.PageDefinition) error {
	var errs error
	if len(pages) == 0 {
		errs = multierr.Append(errs, fmt.Errorf("catalog has no pages"))
	}

	ids := make(map[int]struct{}, len(pages))
	for _, p := range pages {
		if p.ID <= 0 {
			errs = multierr.Append(errs, fmt.Errorf("page %d: id must be > 0", p.ID))
			continue
		}
		if _, dup := ids[p.ID]; dup {
			errs = multierr.Append(errs, fmt.Errorf("page %d: duplicate id", p.ID))
			continue
		}
		ids[p.ID] = struct{}{}
	}

	for _, p := range pages {
		errs = multierr.Append(errs, validatePage(p, ids))
	}

	if _, ok := ids[start.FirstPage]; !ok && len(pages) > 0 {
		errs = multierr.Append(errs, fmt.Errorf("start page: first page %d is not defined", start.FirstPage))
	}

	if errs != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, errs)
	}
	return nil
}

func validatePage(p model.PageDefinition, ids map[int]struct{}) error {
	var errs error
	if strings.TrimSpace(p.ReferenceLabel) == "" {
		errs = multierr.Append(errs, fmt.Errorf("page %d: reference label is empty", p.ID))
	}
	if len(p.Measurements) == 0 {
		errs = multierr.Append(errs, fmt.Errorf("page %d: measurement table is empty", p.ID))
	}
	if p.Range.Min >= p.Range.Max {
		errs = multierr.Append(errs, fmt.Errorf("page %d: range min %d must be < max %d", p.ID, p.Range.Min, p.Range.Max))
	}
	if p.NextPageID != model.StartPageID {
		if _, ok := ids[p.NextPageID]; !ok {
			errs = multierr.Append(errs, fmt.Errorf("page %d: next page %d is not defined", p.ID, p.NextPageID))
		}
	}

	labels := make(map[string]struct{}, len(p.Measurements))
	for _, m := range p.Measurements {
		if strings.TrimSpace(m.Label) == "" {
			errs = multierr.Append(errs, fmt.Errorf("page %d: measurement label is empty", p.ID))
			continue
		}
		if _, dup := labels[m.Label]; dup {
			errs = multierr.Append(errs, fmt.Errorf("page %d: duplicate label %q", p.ID, m.Label))
		}
		labels[m.Label] = struct{}{}
		if m.Percent < 1 || m.Percent > 100 {
			errs = multierr.Append(errs, fmt.Errorf("page %d: %q percent %d must be between 1 and 100", p.ID, m.Label, m.Percent))
		}
	}
	return errs
}
