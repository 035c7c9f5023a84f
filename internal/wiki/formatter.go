// Package wiki defines the markup capability page content is written
// against. Content code never emits syntax itself; swapping the Formatter
// changes only the output dialect.
package wiki

type Align string

const (
	AlignLeft  Align = "left"
	AlignRight Align = "right"
)

// Formatter produces syntax tokens. Implementations are stateless and safe
// for concurrent use.
type Formatter interface {
	// Heading renders a heading; level 1 is the page title.
	Heading(level int, text string) string
	TableRow(cells ...string) string
	// TableTitle renders a header row. Empty cells stay empty.
	TableTitle(cells ...string) string
	// InternalLink links to page key inside namespace path. An empty label
	// lets the wiki pick the page title.
	InternalLink(path []string, key, label string) string
	Image(path []string, filename string, widthPercent int) string
	// InsertPage transcludes the page addressed by path.
	InsertPage(path ...string) string
	BeginBox(width int, align Align) string
	EndBox() string
	// DefineTable fixes the table width (px) and column widths (percent).
	DefineTable(width int, colWidths ...int) string
	DisableCache() string
	DisableTOC() string
	BeginComment() string
	EndComment() string
	// CellSpanVertically is the cell value meaning "continues the cell above".
	CellSpanVertically() string
	// AsPagename turns free text into a valid page id.
	AsPagename(text string) string
	// AsFilename turns free text into the file name the page is stored under.
	AsFilename(text string) string
}
