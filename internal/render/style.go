package render

import (
	"errors"
	"fmt"
	"sort"
)

var ErrUnknownStyle = errors.New("unknown style")

type Engine string

const (
	// EngineFlow draws styled tables and boxes directly on the page.
	EngineFlow Engine = "flow"
	// EngineMarkup lays out basic HTML produced from templates.
	EngineMarkup Engine = "markup"
)

type Color struct {
	R, G, B int
}

// Style is one visual variant of the confirmation template. Sizes are in
// points, distances in millimetres.
type Style struct {
	Name   string
	Engine Engine
	Font   string

	TitleSize   float64
	SubSize     float64
	HeadingSize float64
	BodySize    float64
	TableSize   float64
	SmallSize   float64

	Title     Color
	Subtitle  Color
	Heading   Color
	Text      Color
	Muted     Color
	Accent    Color
	Grid      Color
	LabelFill Color
	NoteFill  Color
	PanelFill Color
	Footer    Color

	Fills      bool
	Margin     float64
	TableWidth float64
	LabelWidth float64
	PanelWidth float64
	PanelGap   float64
}

var classic = Style{
	Name:        "classic",
	Engine:      EngineFlow,
	Font:        "Helvetica",
	TitleSize:   22,
	SubSize:     11,
	HeadingSize: 12,
	BodySize:    10,
	TableSize:   9.5,
	SmallSize:   9,
	Title:       Color{44, 62, 80},
	Subtitle:    Color{52, 73, 94},
	Heading:     Color{44, 62, 80},
	Text:        Color{51, 51, 51},
	Muted:       Color{85, 85, 85},
	Accent:      Color{52, 152, 219},
	Grid:        Color{236, 236, 236},
	LabelFill:   Color{250, 250, 250},
	NoteFill:    Color{240, 244, 248},
	PanelFill:   Color{244, 248, 250},
	Footer:      Color{153, 153, 153},
	Fills:       true,
	Margin:      15,
	TableWidth:  160,
	LabelWidth:  50,
	PanelWidth:  78,
	PanelGap:    2,
}

func builtinStyles() map[string]Style {
	ocean := classic
	ocean.Name = "ocean"
	ocean.Title = Color{0, 95, 115}
	ocean.Subtitle = Color{0, 95, 115}
	ocean.Heading = Color{0, 95, 115}
	ocean.Accent = Color{10, 147, 150}
	ocean.Grid = Color{204, 227, 227}
	ocean.LabelFill = Color{233, 245, 245}
	ocean.NoteFill = Color{255, 248, 230}
	ocean.PanelFill = Color{237, 246, 246}

	minimal := classic
	minimal.Name = "minimal"
	minimal.Font = "Times"
	minimal.TitleSize = 20
	minimal.Title = Color{0, 0, 0}
	minimal.Subtitle = Color{0, 0, 0}
	minimal.Heading = Color{0, 0, 0}
	minimal.Text = Color{0, 0, 0}
	minimal.Accent = Color{0, 0, 0}
	minimal.Grid = Color{180, 180, 180}
	minimal.Fills = false

	markup := classic
	markup.Name = "markup"
	markup.Engine = EngineMarkup
	markup.Fills = false

	return map[string]Style{
		classic.Name: classic,
		ocean.Name:   ocean,
		minimal.Name: minimal,
		markup.Name:  markup,
	}
}

func DefaultStyle() Style {
	return classic
}

func StyleByName(name string) (Style, error) {
	style, ok := builtinStyles()[name]
	if !ok {
		return Style{}, fmt.Errorf("style %q: %w", name, ErrUnknownStyle)
	}

	return style, nil
}

func StyleNames() []string {
	styles := builtinStyles()

	names := make([]string, 0, len(styles))
	for name := range styles {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
