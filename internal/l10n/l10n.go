// Package l10n picks the language variant of labels and values and renders
// numbers and dates for a page language.
//
// Values and headings fall back differently for unknown language codes:
// values fall back to the original text, headings to German.
package l10n

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"filmwiki/internal/domain"
)

const (
	English = "en"
	German  = "de"
)

// Supported lists the languages the wiki publishes pages in.
func Supported() []string { return []string{English, German} }

// Canonical maps a BCP 47 code such as "de-DE" or "EN" to one of the
// supported languages. ok is false for every other language.
func Canonical(code string) (lang string, ok bool) {
	tag, err := language.Parse(code)
	if err != nil {
		return "", false
	}
	base, _ := tag.Base()
	switch base.String() {
	case English:
		return English, true
	case German:
		return German, true
	}
	return "", false
}

// Resolve returns the variant of t to display for the requested language.
func Resolve(lang string, t domain.LocalizedText) string {
	switch lang {
	case English:
		if t.English != "" {
			return t.English
		}
	case German:
		if t.German != "" {
			return t.German
		}
	}
	return t.Original
}

// printer uses the same two-way split as headings: English for "en",
// German for everything else.
func printer(lang string) *message.Printer {
	if lang == English {
		return message.NewPrinter(language.English)
	}
	return message.NewPrinter(language.German)
}

// FormatNumber renders n with the language's digit grouping.
func FormatNumber(lang string, n int64) string {
	return printer(lang).Sprintf("%d", n)
}

func FormatMoney(lang string, m domain.Money) string {
	if m.Currency == "" {
		return FormatNumber(lang, m.Amount)
	}
	return FormatNumber(lang, m.Amount) + " " + m.Currency
}

var germanMonths = [...]string{
	"Januar", "Februar", "März", "April", "Mai", "Juni",
	"Juli", "August", "September", "Oktober", "November", "Dezember",
}

// FormatDate renders a calendar date: "May 1, 2019" for English,
// "1. Mai 2019" otherwise.
func FormatDate(lang string, t time.Time) string {
	if lang == English {
		return t.Format("January 2, 2006")
	}
	return fmt.Sprintf("%d. %s %d", t.Day(), germanMonths[t.Month()-1], t.Year())
}
