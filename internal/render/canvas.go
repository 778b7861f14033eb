package render

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

const (
	ptToMM     = 25.4 / 72
	leading    = 1.3
	cellMargin = 2
	rowPad     = 1.5
	boxPad     = 3
	thinLine   = 0.2
	accentBar  = 1.4
	utf8Family = "confirmation"
	creator    = "confirmation"
)

func lineHeight(size float64) float64 {
	return size * ptToMM * leading
}

func weight(bold bool) string {
	if bold {
		return "B"
	}

	return ""
}

// canvas wraps one fpdf document together with the style it is drawn in.
// Text handed to fpdf must go through tr first; split already returns
// translated lines.
type canvas struct {
	pdf   *fpdf.Fpdf
	style Style
	tr    func(string) string
	font  string
	utf8  bool
}

func newCanvas(style Style, profile Profile, opts options) *canvas {
	pdf := fpdf.New("P", "mm", "A4", opts.fontDir)
	pdf.SetMargins(style.Margin, style.Margin, style.Margin)
	pdf.SetAutoPageBreak(true, style.Margin)
	pdf.SetCompression(opts.compress)
	pdf.SetCellMargin(cellMargin)

	if !opts.creationDate.IsZero() {
		pdf.SetCreationDate(opts.creationDate)
	}

	pdf.SetTitle(profile.DocumentTitle(), true)
	pdf.SetAuthor(profile.HotelName, true)
	pdf.SetSubject("Booking confirmation", false)
	pdf.SetCreator(creator, false)

	c := &canvas{pdf: pdf, style: style, font: style.Font}

	if opts.utf8Regular != "" {
		bold := opts.utf8Bold
		if bold == "" {
			bold = opts.utf8Regular
		}

		pdf.AddUTF8Font(utf8Family, "", opts.utf8Regular)
		pdf.AddUTF8Font(utf8Family, "B", bold)

		c.font = utf8Family
		c.utf8 = true
		c.tr = func(s string) string { return s }
	} else {
		c.tr = pdf.UnicodeTranslatorFromDescriptor("")
	}

	pdf.AddPage()

	return c
}

func (c *canvas) err() error {
	if c.pdf.Err() {
		return c.pdf.Error() //nolint:wrapcheck
	}

	return nil
}

func (c *canvas) bytes() ([]byte, error) {
	var buf bytes.Buffer

	if err := c.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}

	return buf.Bytes(), nil
}

func (c *canvas) setFont(style string, size float64) {
	c.pdf.SetFont(c.font, style, size)
}

func (c *canvas) textColor(col Color) {
	c.pdf.SetTextColor(col.R, col.G, col.B)
}

func (c *canvas) fillColor(col Color) {
	c.pdf.SetFillColor(col.R, col.G, col.B)
}

func (c *canvas) drawColor(col Color) {
	c.pdf.SetDrawColor(col.R, col.G, col.B)
}

func (c *canvas) contentWidth() float64 {
	pageW, _ := c.pdf.GetPageSize()

	return pageW - 2*c.style.Margin
}

// ensureSpace starts a new page when h millimetres do not fit any more.
func (c *canvas) ensureSpace(h float64) {
	_, pageH := c.pdf.GetPageSize()

	if c.pdf.GetY()+h > pageH-c.style.Margin {
		c.pdf.AddPage()
	}
}

// split wraps text to width w using the current font.
func (c *canvas) split(text string, w float64) []string {
	var lines []string

	if c.utf8 {
		lines = c.pdf.SplitText(text, w)
	} else {
		for _, line := range c.pdf.SplitLines([]byte(c.tr(text)), w) {
			lines = append(lines, string(line))
		}
	}

	if len(lines) == 0 {
		lines = []string{""}
	}

	return lines
}

func (c *canvas) lines(x, y, w, lh float64, lines []string) {
	for i, line := range lines {
		c.pdf.SetXY(x, y+float64(i)*lh)
		c.pdf.CellFormat(w, lh, line, "", 0, "L", false, 0, "")
	}
}

func (c *canvas) column(x, w float64) {
	pageW, _ := c.pdf.GetPageSize()

	c.pdf.SetLeftMargin(x)
	c.pdf.SetRightMargin(pageW - x - w)
	c.pdf.SetX(x)
}

func (c *canvas) resetColumn() {
	c.pdf.SetLeftMargin(c.style.Margin)
	c.pdf.SetRightMargin(c.style.Margin)
}

func (c *canvas) writeSpans(spans []Span, size float64, base Color) {
	lh := lineHeight(size)

	for _, s := range spans {
		c.setFont(weight(s.Bold), size)

		if s.Accent {
			c.textColor(c.style.Accent)
		} else {
			c.textColor(base)
		}

		if s.Link != "" {
			c.pdf.WriteLinkString(lh, c.tr(s.Text), s.Link)

			continue
		}

		c.pdf.Write(lh, c.tr(s.Text))
	}
}

func (c *canvas) centered(spans []Span, size float64, base Color) {
	var total float64

	for _, s := range spans {
		c.setFont(weight(s.Bold), size)
		total += c.pdf.GetStringWidth(c.tr(s.Text))
	}

	x := c.style.Margin
	if free := c.contentWidth() - total; free > 0 {
		x += free / 2 //nolint:gomnd
	}

	c.pdf.SetX(x)
	c.writeSpans(spans, size, base)
	c.pdf.Ln(lineHeight(size))
}

// measure returns the height spans take when wrapped to w. Bold metrics
// are used throughout so the estimate never comes out short.
func (c *canvas) measure(spans []Span, w, size float64) float64 {
	c.setFont("B", size)

	return float64(len(c.split(plain(spans), w))) * lineHeight(size)
}

func (c *canvas) header(l Layout) {
	c.setFont("B", c.style.TitleSize)
	c.textColor(c.style.Title)
	c.pdf.CellFormat(0, lineHeight(c.style.TitleSize), c.tr(l.Title), "", 1, "C", false, 0, "")
	c.pdf.Ln(2) //nolint:gomnd

	c.centered(l.Greeting, c.style.SubSize, c.style.Subtitle)

	if l.Tagline != "" {
		c.centered([]Span{{Text: l.Tagline}}, c.style.SubSize, c.style.Subtitle)
	}

	c.pdf.Ln(4) //nolint:gomnd
}

func (c *canvas) heading(text string) {
	lh := lineHeight(c.style.HeadingSize)

	c.pdf.Ln(3.5) //nolint:gomnd
	c.ensureSpace(3 * lh) //nolint:gomnd
	c.setFont("B", c.style.HeadingSize)
	c.textColor(c.style.Heading)
	c.pdf.CellFormat(0, lh, c.tr(text), "", 1, "L", false, 0, "")
	c.pdf.Ln(2) //nolint:gomnd
}

func (c *canvas) footer(spans []Span) {
	c.pdf.Ln(5) //nolint:gomnd
	c.ensureSpace(lineHeight(c.style.SmallSize))
	c.centered(spans, c.style.SmallSize, c.style.Footer)
}
