// Package export renders a resolved dossier into a paginated PDF.
//
// Rendering happens in two stages: a deterministic layout pass that
// places every line on fixed A4 geometry, then a PDF pass that draws the
// laid-out pages. Given the same view and mode the layout is
// reproducible; only the footer timestamp varies.
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/Alan-Biju/global-visa/internal/dossier"
)

// Mode selects the artifact's delivery: a named file download or an
// inline view opened in a new tab.
type Mode string

const (
	ModeDownload Mode = "download"
	ModeView     Mode = "view"
)

// A4 portrait geometry, millimetres.
const (
	leftMargin = 20.0
	rightEdge  = 190.0
	secondCol  = 120.0
	topMargin  = 20.0
	breakAt    = 268.0 // start a new page before writing past this
	footerY    = 280.0
	lineHeight = 7.0
	wrapWidth  = 88 // conservative wrap width for 11pt body text
)

// Line is one positioned string on a page.
type Line struct {
	X, Y    float64
	Size    float64
	Style   string // "" normal, "B" bold
	R, G, B int
	Text    string
}

// Rule is a horizontal separator.
type Rule struct {
	X1, Y1, X2, Y2 float64
}

// Page holds everything drawn on one page.
type Page struct {
	Lines []Line
	Rules []Rule
}

// Document is the laid-out artifact, ready for the PDF pass.
type Document struct {
	Title    string
	Filename string
	Pages    []Page
}

// Text returns every line of the document in draw order, for assertions
// and plain-text fallbacks.
func (d *Document) Text() []string {
	var out []string
	for _, p := range d.Pages {
		for _, l := range p.Lines {
			out = append(out, l.Text)
		}
	}
	return out
}

var (
	indigo = [3]int{79, 70, 229}
	grey   = [3]int{100, 100, 100}
	faint  = [3]int{150, 150, 150}
	body   = [3]int{50, 50, 50}
	black  = [3]int{0, 0, 0}
)

type layout struct {
	doc  *Document
	page int
	y    float64
}

func (l *layout) newPage() {
	l.doc.Pages = append(l.doc.Pages, Page{})
	l.page = len(l.doc.Pages) - 1
	l.y = topMargin
}

// ensure breaks to a new page when the cursor has passed the near-bottom
// threshold. Checked before every line so no section can run off-page.
func (l *layout) ensure() {
	if l.y > breakAt {
		l.newPage()
	}
}

func (l *layout) line(x, size float64, style string, rgb [3]int, text string) {
	l.ensure()
	p := &l.doc.Pages[l.page]
	p.Lines = append(p.Lines, Line{X: x, Y: l.y, Size: size, Style: style, R: rgb[0], G: rgb[1], B: rgb[2], Text: text})
}

func (l *layout) lineAt(x, y, size float64, style string, rgb [3]int, text string) {
	p := &l.doc.Pages[l.page]
	p.Lines = append(p.Lines, Line{X: x, Y: y, Size: size, Style: style, R: rgb[0], G: rgb[1], B: rgb[2], Text: text})
}

func (l *layout) rule() {
	l.ensure()
	p := &l.doc.Pages[l.page]
	p.Rules = append(p.Rules, Rule{X1: leftMargin, Y1: l.y, X2: rightEdge, Y2: l.y})
}

func (l *layout) advance(dy float64) { l.y += dy }

// sectionHeading writes a numbered section title.
func (l *layout) sectionHeading(text string) {
	l.ensure()
	l.line(leftMargin, 14, "", indigo, text)
	l.advance(10)
}

// bullets writes wrapped bullet items with page breaks between lines.
func (l *layout) bullets(items []string) {
	for _, item := range items {
		for i, part := range wrap(item, wrapWidth) {
			prefix := "• "
			indent := 25.0
			if i > 0 {
				prefix = ""
				indent = 29.0
			}
			l.line(indent, 11, "", body, prefix+part)
			l.advance(lineHeight)
		}
	}
}

// steps writes wrapped numbered items.
func (l *layout) steps(items []dossier.Item) {
	for _, item := range items {
		for i, part := range wrap(item.Text, wrapWidth) {
			text := part
			indent := 25.0
			if i == 0 {
				text = fmt.Sprintf("%d. %s", item.Position, part)
			} else {
				indent = 29.0
			}
			l.line(indent, 11, "", body, text)
			l.advance(lineHeight)
		}
	}
}

// Layout builds the paginated document for one dossier view.
func Layout(v *dossier.View, mode Mode, now time.Time, sourceURL string) *Document {
	doc := &Document{
		Title:    "Global Visa Portal",
		Filename: Filename(v),
	}
	l := &layout{doc: doc}
	l.newPage()

	// Title block.
	l.line(leftMargin, 24, "", indigo, "Global Visa Portal")
	l.advance(10)
	l.line(leftMargin, 14, "", grey, "Official Requirements Summary")
	l.advance(15)
	l.rule()
	l.advance(15)

	// Route and category strip, two columns.
	l.line(leftMargin, 12, "", black, "Origin: "+v.OriginName)
	l.lineAt(secondCol, l.y, 12, "", black, "Destination: "+v.DestinationName)
	l.advance(8)
	l.line(leftMargin, 12, "", black, "Visa Type: "+v.Category)
	l.advance(15)
	l.line(leftMargin, 12, "B", black, "Duration: "+v.Duration)
	l.lineAt(secondCol, l.y, 12, "B", black, "Est. Cost: "+v.Cost)
	l.advance(20)

	// 1. Required Documents. Instant categories suppress the list and
	// point at support instead.
	l.sectionHeading("1. Required Documents")
	if v.Instant {
		l.bullets([]string{"Instant e-Visa category: contact our support desk for the live document protocol."})
	} else if len(v.Requirements) == 0 {
		l.bullets([]string{"No specific document requirements published for this category."})
	} else {
		items := make([]string, len(v.Requirements))
		for i, r := range v.Requirements {
			items[i] = r.Text
		}
		l.bullets(items)
	}
	l.advance(10)

	// 2. Application Process.
	l.sectionHeading("2. Application Process")
	l.steps(v.Process)
	l.advance(10)

	// 3. Key Formalities: category first, then country-wide.
	l.sectionHeading("3. Key Formalities")
	l.bullets(v.CategoryFormalities)
	l.bullets(v.CountryFormalities)

	// Footer on the first page, fixed position.
	first := &doc.Pages[0]
	first.Lines = append(first.Lines, Line{
		X: leftMargin, Y: footerY, Size: 10,
		R: faint[0], G: faint[1], B: faint[2],
		Text: "Generated on " + now.Format("02 Jan 2006"),
	})
	if mode == ModeView && sourceURL != "" {
		first.Lines = append(first.Lines, Line{
			X: leftMargin, Y: footerY + 5, Size: 10,
			R: faint[0], G: faint[1], B: faint[2],
			Text: "Source: " + sourceURL,
		})
	}

	return doc
}

// Filename names the download artifact, with spaces and slashes
// sanitized out of the destination and category.
func Filename(v *dossier.View) string {
	return fmt.Sprintf("%s_%s_Dossier.pdf", sanitize(v.DestinationName), sanitize(v.Category))
}

func sanitize(s string) string {
	var b strings.Builder
	lastDash := false
	for _, r := range s {
		switch r {
		case ' ', '/', '\\':
			if !lastDash && b.Len() > 0 {
				b.WriteRune('-')
				lastDash = true
			}
		default:
			b.WriteRune(r)
			lastDash = false
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// wrap splits text into display lines of at most width runes, breaking
// on spaces where possible.
func wrap(text string, width int) []string {
	runes := []rune(text)
	if len(runes) <= width {
		return []string{text}
	}

	var lines []string
	for len(runes) > width {
		cut := width
		for i := width; i > 0; i-- {
			if runes[i] == ' ' {
				cut = i
				break
			}
		}
		lines = append(lines, strings.TrimRight(string(runes[:cut]), " "))
		runes = runes[cut:]
		for len(runes) > 0 && runes[0] == ' ' {
			runes = runes[1:]
		}
	}
	if len(runes) > 0 {
		lines = append(lines, string(runes))
	}
	return lines
}
