package render

import (
	"github.com/avstrong/confirmation/internal/booking"
)

// FlowRenderer draws the confirmation as styled tables and boxes.
type FlowRenderer struct {
	style   Style
	profile Profile
	opts    options
}

func NewFlowRenderer(style Style, profile Profile, opts ...Option) *FlowRenderer {
	return &FlowRenderer{
		style:   style,
		profile: profile,
		opts:    newOptions(opts),
	}
}

func (r *FlowRenderer) Render(rec booking.Record) (doc *Document, err error) {
	defer recoverRender(r.style.Name, &doc, &err)

	c := newCanvas(r.style, r.profile, r.opts)
	if err := c.err(); err != nil {
		return nil, newRenderError(r.style.Name, err)
	}

	layout := Compose(rec, r.profile)

	c.header(layout)

	for _, s := range layout.Sections {
		switch s.Kind {
		case SectionTable:
			c.heading(s.Heading)
			r.table(c, s.Rows)
		case SectionNote:
			r.note(c, s.Spans)
		case SectionParagraph:
			c.heading(s.Heading)
			r.paragraph(c, s.Spans)
		case SectionPanels:
			c.heading(s.Heading)
			r.panels(c, s.Panels)
		}
	}

	c.footer(layout.Footer)

	return finish(c, r.style.Name, rec)
}

func (r *FlowRenderer) boxStyle() string {
	if r.style.Fills {
		return "FD"
	}

	return "D"
}

func (r *FlowRenderer) table(c *canvas, rows []Row) {
	size := r.style.TableSize
	lh := lineHeight(size)
	x := r.style.Margin
	labelW := r.style.LabelWidth
	valueW := r.style.TableWidth - labelW

	for _, row := range rows {
		c.setFont("B", size)
		labels := c.split(row.Label, labelW)

		c.setFont("", size)
		values := c.split(row.Value, valueW)

		h := float64(max(len(labels), len(values)))*lh + 2*rowPad

		c.ensureSpace(h)
		y := c.pdf.GetY()

		c.pdf.SetLineWidth(thinLine)
		c.drawColor(r.style.Grid)
		c.fillColor(r.style.LabelFill)
		c.pdf.Rect(x, y, labelW, h, r.boxStyle())
		c.pdf.Rect(x+labelW, y, valueW, h, "D")

		c.textColor(r.style.Text)
		c.setFont("B", size)
		c.lines(x, y+rowPad, labelW, lh, labels)
		c.setFont("", size)
		c.lines(x+labelW, y+rowPad, valueW, lh, values)

		c.pdf.SetY(y + h)
	}
}

func (r *FlowRenderer) note(c *canvas, spans []Span) {
	size := r.style.TableSize
	x := r.style.Margin
	w := r.style.TableWidth
	h := c.measure(spans, w-2*boxPad, size) + 2*boxPad

	c.pdf.Ln(3.5) //nolint:gomnd
	c.ensureSpace(h)
	y := c.pdf.GetY()

	c.pdf.SetLineWidth(thinLine)
	c.drawColor(r.style.Grid)
	c.fillColor(r.style.NoteFill)
	c.pdf.Rect(x, y, w, h, r.boxStyle())

	c.pdf.SetLineWidth(accentBar)
	c.drawColor(r.style.Accent)
	c.pdf.Line(x, y, x, y+h)
	c.pdf.SetLineWidth(thinLine)

	c.pdf.SetY(y + boxPad)
	c.column(x+boxPad, w-2*boxPad)
	c.writeSpans(spans, size, r.style.Muted)
	c.resetColumn()

	c.pdf.SetY(y + h)
}

func (r *FlowRenderer) paragraph(c *canvas, spans []Span) {
	c.pdf.SetX(r.style.Margin)
	c.writeSpans(spans, r.style.BodySize, r.style.Text)
	c.pdf.Ln(lineHeight(r.style.BodySize))
}

// panels draws the boxes side by side, all as tall as the tallest one.
func (r *FlowRenderer) panels(c *canvas, panels []Panel) {
	size := r.style.SmallSize
	lh := lineHeight(size)
	w := r.style.PanelWidth
	inner := w - 2*boxPad

	titles := make([][]string, len(panels))
	bodies := make([][]string, len(panels))

	var tallest float64

	for i, p := range panels {
		c.setFont("B", size)
		titles[i] = c.split(p.Title, inner)

		c.setFont("", size)

		for _, line := range p.Lines {
			bodies[i] = append(bodies[i], c.split(line, inner)...)
		}

		tallest = max(tallest, float64(len(titles[i])+len(bodies[i]))*lh)
	}

	h := tallest + 2*boxPad

	c.ensureSpace(h)
	y := c.pdf.GetY()

	for i := range panels {
		x := r.style.Margin + float64(i)*(w+r.style.PanelGap)

		c.pdf.SetLineWidth(thinLine)
		c.drawColor(r.style.Grid)
		c.fillColor(r.style.PanelFill)
		c.pdf.Rect(x, y, w, h, r.boxStyle())

		c.textColor(r.style.Muted)
		c.setFont("B", size)
		c.lines(x+boxPad, y+boxPad, inner, lh, titles[i])
		c.setFont("", size)
		c.lines(x+boxPad, y+boxPad+float64(len(titles[i]))*lh, inner, lh, bodies[i])
	}

	c.pdf.SetY(y + h)
}
