// Package content turns works and their attribute items into wiki lines.
//
// Every creator implements the full Creator contract, but each variant only
// supports the operations meaningful for its role; the others return an
// error wrapping ErrUnsupportedOperation. Construction validates all inputs
// and fails with ErrValidation, so a constructed creator never fails for
// missing arguments later on.
package content

import (
	"errors"
	"fmt"
	"strings"

	"filmwiki/internal/domain"
	"filmwiki/internal/l10n"
	"filmwiki/internal/wiki"
)

var (
	ErrValidation           = errors.New("validation failed")
	ErrUnsupportedOperation = errors.New("unsupported operation")
)

type Creator interface {
	// PageName is the file name of the page; page creators only.
	PageName() (string, error)
	// CreatePage assembles a complete document; page creators only.
	CreatePage() ([]string, error)
	CreateInfoBoxContent() ([]string, error)
	CreateChapterContent() ([]string, error)
	CreateSectionContent() ([]string, error)
}

var (
	_ Creator = (*InfoBoxCreator[domain.Genre])(nil)
	_ Creator = (*FieldCreator)(nil)
	_ Creator = (*SectionCreator[domain.Company])(nil)
	_ Creator = (*TimespanCreator)(nil)
	_ Creator = (*ConnectionCreator)(nil)
	_ Creator = (*ChapterCreator)(nil)
	_ Creator = (*MovieCreator)(nil)
	_ Creator = (*SeriesCreator)(nil)
)

// unsupported rejects every operation. Variants embed it and override the
// operations they support.
type unsupported struct{ name string }

func (u unsupported) PageName() (string, error)               { return "", u.reject("PageName") }
func (u unsupported) CreatePage() ([]string, error)           { return nil, u.reject("CreatePage") }
func (u unsupported) CreateInfoBoxContent() ([]string, error) { return nil, u.reject("CreateInfoBoxContent") }
func (u unsupported) CreateChapterContent() ([]string, error) { return nil, u.reject("CreateChapterContent") }
func (u unsupported) CreateSectionContent() ([]string, error) { return nil, u.reject("CreateSectionContent") }

func (u unsupported) reject(op string) error {
	return fmt.Errorf("%w: %s does not support %s", ErrUnsupportedOperation, u.name, op)
}

// base carries what every creator needs besides its data.
type base struct {
	unsupported
	f    wiki.Formatter
	lang string
}

func newBase(name string, f wiki.Formatter, lang string) (base, error) {
	if f == nil {
		return base{}, invalid(name, "formatter is required")
	}
	if strings.TrimSpace(lang) == "" {
		return base{}, invalid(name, "language code is required")
	}
	return base{unsupported: unsupported{name: name}, f: f, lang: lang}, nil
}

func invalid(name, msg string) error {
	return fmt.Errorf("%w: %s: %s", ErrValidation, name, msg)
}

func requireItems[E any](name string, items []domain.Item[E]) error {
	if items == nil {
		return invalid(name, "items are required")
	}
	return nil
}

func (b base) heading(k l10n.Key) string { return l10n.Heading(b.lang, k) }

func (b base) resolve(t domain.LocalizedText) string { return l10n.Resolve(b.lang, t) }

// entityLink links to the page of an entity in namespace ns of the current
// language; entity pages are named like work pages.
func (b base) entityLink(ns string, id int64, name string) string {
	key := b.f.AsPagename(name + " " + domain.PageKey(id))
	return b.f.InternalLink([]string{b.lang, ns}, key, name)
}
