package confirmation

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/avstrong/confirmation/internal/booking"
	"github.com/avstrong/confirmation/internal/logger"
	"github.com/avstrong/confirmation/internal/render"
)

var ErrNoRenderers = errors.New("no renderers configured")

type Manager struct {
	l            *logger.Logger
	renderers    map[string]render.Renderer
	defaultStyle string
}

// New wires one renderer per style name. defaultStyle must be one of them.
func New(l *logger.Logger, renderers map[string]render.Renderer, defaultStyle string) (*Manager, error) {
	if len(renderers) == 0 {
		return nil, ErrNoRenderers
	}

	if _, ok := renderers[defaultStyle]; !ok {
		return nil, fmt.Errorf("default style %q: %w", defaultStyle, render.ErrUnknownStyle)
	}

	return &Manager{
		l:            l,
		renderers:    renderers,
		defaultStyle: defaultStyle,
	}, nil
}

func (m *Manager) Styles() []string {
	names := make([]string, 0, len(m.renderers))
	for name := range m.renderers {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

func (m *Manager) DefaultStyle() string {
	return m.defaultStyle
}

func (m *Manager) logger(ctx context.Context) *logger.Logger {
	if id, ok := RequestIDFromContext(ctx); ok && id != "" {
		return m.l.With(zap.String("requestID", id))
	}

	return m.l
}

// Issue validates the input and renders it with the given style, or the
// default one when style is empty. Errors are *booking.ValidationError,
// *render.RenderError or wrap render.ErrUnknownStyle.
func (m *Manager) Issue(ctx context.Context, in booking.Input, style string) (*render.Document, error) {
	l := m.logger(ctx)

	if style == "" {
		style = m.defaultStyle
	}

	renderer, ok := m.renderers[style]
	if !ok {
		return nil, fmt.Errorf("style %q: %w", style, render.ErrUnknownStyle)
	}

	rec, err := booking.Build(in)
	if err != nil {
		l.LogDebugf("Booking input rejected: %v", err.Error())

		return nil, err
	}

	doc, err := renderer.Render(rec)
	if err != nil {
		l.LogErrorf("Could not render confirmation for %d nights with style %s: %v", rec.Nights, style, err.Error())

		return nil, err
	}

	l.LogInfo("Confirmation %s rendered with style %s (%d bytes)", doc.Filename, style, len(doc.Content))

	return doc, nil
}
