package render

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/avstrong/confirmation/internal/booking"
)

// The basic HTML writer understands b, i, u, a and br. It has no entity
// decoding, so angle brackets are dropped from values instead of escaped.
const markupTemplates = `
{{- define "spans"}}{{range .}}{{if .Link}}<a href="{{attr .Link}}">{{clean .Text}}</a>{{else if .Bold}}<b>{{clean .Text}}</b>{{else}}{{clean .Text}}{{end}}{{end}}{{end -}}
{{- define "table"}}{{range .Rows}}<b>{{clean .Label}}:</b> {{clean .Value}}<br>{{end}}{{end -}}
{{- define "note"}}{{template "spans" .Spans}}{{end -}}
{{- define "paragraph"}}{{template "spans" .Spans}}{{end -}}
{{- define "panel"}}<b>{{clean .Title}}</b><br>{{range .Lines}}{{clean .}}<br>{{end}}{{end -}}
`

var (
	textCleaner = strings.NewReplacer("<", "", ">", "", "\r", "", "\n", " ")
	attrCleaner = strings.NewReplacer(`"`, "", "'", "", "<", "", ">", "", " ", "%20")
)

var sectionTemplates = map[SectionKind]string{
	SectionTable:     "table",
	SectionNote:      "note",
	SectionParagraph: "paragraph",
}

// MarkupRenderer renders each section to basic HTML and lets the PDF
// writer lay it out.
type MarkupRenderer struct {
	style   Style
	profile Profile
	opts    options
	tpl     *template.Template
}

func NewMarkupRenderer(style Style, profile Profile, opts ...Option) (*MarkupRenderer, error) {
	funcMap := template.FuncMap{
		"clean": textCleaner.Replace,
		"attr":  attrCleaner.Replace,
	}

	tpl, err := template.New("confirmation").Funcs(funcMap).Parse(markupTemplates)
	if err != nil {
		return nil, fmt.Errorf("parse markup templates: %w", err)
	}

	return &MarkupRenderer{
		style:   style,
		profile: profile,
		opts:    newOptions(opts),
		tpl:     tpl,
	}, nil
}

func (r *MarkupRenderer) execute(name string, data any) (string, error) {
	var buf bytes.Buffer

	if err := r.tpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("execute %s template: %w", name, err)
	}

	return buf.String(), nil
}

func (r *MarkupRenderer) Render(rec booking.Record) (doc *Document, err error) {
	defer recoverRender(r.style.Name, &doc, &err)

	c := newCanvas(r.style, r.profile, r.opts)
	if err := c.err(); err != nil {
		return nil, newRenderError(r.style.Name, err)
	}

	layout := Compose(rec, r.profile)

	c.header(layout)

	for _, s := range layout.Sections {
		if s.Heading != "" {
			c.heading(s.Heading)
		}

		if s.Kind == SectionPanels {
			err = r.panels(c, s.Panels)
		} else {
			err = r.section(c, s)
		}

		if err != nil {
			return nil, newRenderError(r.style.Name, err)
		}
	}

	c.footer(layout.Footer)

	return finish(c, r.style.Name, rec)
}

func (r *MarkupRenderer) section(c *canvas, s Section) error {
	name, ok := sectionTemplates[s.Kind]
	if !ok {
		return fmt.Errorf("no template for section kind %d", s.Kind)
	}

	markup, err := r.execute(name, s)
	if err != nil {
		return err
	}

	size := r.style.BodySize
	lh := lineHeight(size)
	html := c.pdf.HTMLBasicNew()

	c.setFont("", size)
	c.textColor(r.style.Text)

	if s.Kind != SectionNote {
		html.Write(lh, c.tr(markup))

		if s.Kind == SectionParagraph {
			c.pdf.Ln(lh)
		}

		return nil
	}

	c.pdf.Ln(3.5) //nolint:gomnd

	top := c.pdf.GetY()

	c.column(r.style.Margin+boxPad, r.style.TableWidth-boxPad)
	c.textColor(r.style.Muted)
	html.Write(lh, c.tr(markup))
	c.pdf.Ln(lh)
	c.resetColumn()

	c.pdf.SetLineWidth(accentBar)
	c.drawColor(r.style.Accent)
	c.pdf.Line(r.style.Margin, top, r.style.Margin, c.pdf.GetY())
	c.pdf.SetLineWidth(thinLine)

	return nil
}

// panels writes each panel into its own column starting at the same height.
func (r *MarkupRenderer) panels(c *canvas, panels []Panel) error {
	size := r.style.SmallSize
	lh := lineHeight(size)
	html := c.pdf.HTMLBasicNew()

	top := c.pdf.GetY()
	bottom := top

	c.setFont("", size)
	c.textColor(r.style.Muted)

	for i, p := range panels {
		markup, err := r.execute("panel", p)
		if err != nil {
			return err
		}

		x := r.style.Margin + float64(i)*(r.style.PanelWidth+r.style.PanelGap)

		c.pdf.SetY(top)
		c.column(x, r.style.PanelWidth)
		html.Write(lh, c.tr(markup))

		bottom = max(bottom, c.pdf.GetY())
	}

	c.resetColumn()
	c.pdf.SetY(bottom)

	return nil
}
