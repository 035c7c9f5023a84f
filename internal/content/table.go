package content

import (
	"strings"

	"filmwiki/internal/domain"
	"filmwiki/internal/wiki"
)

// infoBoxRows renders one labeled group of the info box. The first row
// carries the label, every further row the vertical span marker so the label
// cell is merged across the group. Items keep the order they arrive in.
func infoBoxRows[E any](f wiki.Formatter, label string, items []domain.Item[E], value func(domain.Item[E]) string) []string {
	if len(items) == 0 {
		return nil
	}
	lines := make([]string, 0, len(items))
	for i, it := range items {
		first := label
		if i > 0 {
			first = f.CellSpanVertically()
		}
		lines = append(lines, f.TableRow(first, value(it)))
	}
	return lines
}

// sectionRows renders an independent table: a title row, one row per item
// and two blank lines closing the section.
func sectionRows[E any](f wiki.Formatter, titles []string, items []domain.Item[E], cells func(domain.Item[E]) []string) []string {
	if len(items) == 0 {
		return nil
	}
	lines := make([]string, 0, len(items)+3)
	lines = append(lines, f.TableTitle(titles...))
	for _, it := range items {
		lines = append(lines, f.TableRow(cells(it)...))
	}
	return append(lines, "", "")
}

// withDetails appends the free-text details of an item to its value.
func withDetails(value, details string) string {
	value, details = strings.TrimSpace(value), strings.TrimSpace(details)
	switch {
	case details == "":
		return value
	case value == "":
		return details
	}
	return value + " " + details
}
