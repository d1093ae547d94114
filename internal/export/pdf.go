package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/Alan-Biju/global-visa/internal/dossier"
)

// Exporter turns dossier views into PDF artifacts.
type Exporter struct {
	// SourceURL is the canonical page URL printed in view-mode footers.
	SourceURL string
	// Now is the clock used for the footer timestamp; defaults to
	// time.Now.
	Now func() time.Time
}

// Export renders the dossier as a PDF and returns the bytes and the
// sanitized artifact filename. Rendering failures are caught here and
// returned as errors; the resolved dossier is never lost to a panic.
func (e *Exporter) Export(v *dossier.View, mode Mode) (data []byte, filename string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("exporting dossier: %v", r)
		}
	}()

	now := time.Now
	if e.Now != nil {
		now = e.Now
	}

	doc := Layout(v, mode, now(), e.SourceURL)

	var buf bytes.Buffer
	if err := Render(doc, &buf); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), doc.Filename, nil
}

// Render draws a laid-out document into PDF bytes.
func Render(doc *Document, buf *bytes.Buffer) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(doc.Title, true)
	pdf.SetAutoPageBreak(false, 0) // the layout pass owns pagination
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, page := range doc.Pages {
		pdf.AddPage()
		for _, r := range page.Rules {
			pdf.SetDrawColor(200, 200, 200)
			pdf.Line(r.X1, r.Y1, r.X2, r.Y2)
		}
		for _, ln := range page.Lines {
			pdf.SetFont("Helvetica", ln.Style, ln.Size)
			pdf.SetTextColor(ln.R, ln.G, ln.B)
			pdf.Text(ln.X, ln.Y, tr(ln.Text))
		}
	}

	if err := pdf.Output(buf); err != nil {
		return fmt.Errorf("writing pdf: %w", err)
	}
	return nil
}
