// Package dokuwiki renders wiki tokens in DokuWiki syntax, including the
// WRAP, tablewidth, include and comment plugins.
package dokuwiki

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"filmwiki/internal/wiki"
)

const (
	nsSep     = ":"
	spanCell  = ":::"
	extension = ".txt"
)

type Formatter struct{}

var _ wiki.Formatter = Formatter{}

func New() Formatter { return Formatter{} }

func (Formatter) Heading(level int, text string) string {
	if level < 1 {
		level = 1
	}
	if level > 5 {
		level = 5
	}
	marks := strings.Repeat("=", 7-level)
	return marks + " " + text + " " + marks
}

func (Formatter) TableRow(cells ...string) string {
	return row("|", cells)
}

func (Formatter) TableTitle(cells ...string) string {
	return row("^", cells)
}

func row(sep string, cells []string) string {
	if len(cells) == 0 {
		return ""
	}
	var b strings.Builder
	for _, c := range cells {
		b.WriteString(sep)
		b.WriteByte(' ')
		b.WriteString(escapeCell(c))
		b.WriteByte(' ')
	}
	b.WriteString(sep)
	return b.String()
}

// escapeCell wraps cell separators found in plain text with %%...%% so
// they do not open new cells. Links and media keep their own "|".
func escapeCell(c string) string {
	if !strings.ContainsAny(c, "|^") {
		return c
	}
	var b strings.Builder
	depth := 0
	for i := 0; i < len(c); i++ {
		rest := c[i:]
		switch {
		case strings.HasPrefix(rest, "[[") || strings.HasPrefix(rest, "{{"):
			depth++
			b.WriteString(rest[:2])
			i++
		case depth > 0 && (strings.HasPrefix(rest, "]]") || strings.HasPrefix(rest, "}}")):
			depth--
			b.WriteString(rest[:2])
			i++
		case depth == 0 && (c[i] == '|' || c[i] == '^'):
			b.WriteString("%%")
			b.WriteByte(c[i])
			b.WriteString("%%")
		default:
			b.WriteByte(c[i])
		}
	}
	return b.String()
}

func (Formatter) InternalLink(path []string, key, label string) string {
	target := join(path, key)
	if label == "" {
		return "[[" + target + "]]"
	}
	return "[[" + target + "|" + label + "]]"
}

func (Formatter) Image(path []string, filename string, widthPercent int) string {
	return "{{" + join(path, filename) + "?" + strconv.Itoa(widthPercent) + "%}}"
}

func (Formatter) InsertPage(path ...string) string {
	return "{{page>" + strings.Join(path, nsSep) + "}}"
}

func (Formatter) BeginBox(width int, align wiki.Align) string {
	return "<WRAP box " + string(align) + " " + strconv.Itoa(width) + "px>"
}

func (Formatter) EndBox() string { return "</WRAP>" }

func (Formatter) DefineTable(width int, colWidths ...int) string {
	var b strings.Builder
	b.WriteString("|< ")
	b.WriteString(strconv.Itoa(width))
	b.WriteString("px")
	for _, w := range colWidths {
		b.WriteByte(' ')
		b.WriteString(strconv.Itoa(w))
		b.WriteByte('%')
	}
	b.WriteString(" >|")
	return b.String()
}

func (Formatter) DisableCache() string       { return "~~NOCACHE~~" }
func (Formatter) DisableTOC() string         { return "~~NOTOC~~" }
func (Formatter) BeginComment() string       { return "/*" }
func (Formatter) EndComment() string         { return "*/" }
func (Formatter) CellSpanVertically() string { return spanCell }

var umlauts = strings.NewReplacer(
	"ä", "ae", "ö", "oe", "ü", "ue", "ß", "ss",
	"Ä", "ae", "Ö", "oe", "Ü", "ue",
)

// AsPagename mirrors DokuWiki's cleanID: lower case ASCII, German umlauts
// spelled out, other accents dropped, every other rune mapped to "_" and
// runs of "_" collapsed.
func (Formatter) AsPagename(text string) string {
	s := umlauts.Replace(text)
	deaccent := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if out, _, err := transform.String(deaccent, s); err == nil {
		s = out
	}
	s = strings.ToLower(s)

	var b strings.Builder
	underscore := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '.', r == '-':
			b.WriteRune(r)
			underscore = false
		default:
			if !underscore {
				b.WriteByte('_')
				underscore = true
			}
		}
	}
	return strings.Trim(b.String(), "_.-")
}

func (f Formatter) AsFilename(text string) string {
	return f.AsPagename(text) + extension
}

func join(path []string, last string) string {
	if len(path) == 0 {
		return last
	}
	return strings.Join(path, nsSep) + nsSep + last
}
