package render

import (
	"errors"
	"fmt"
	"time"

	"github.com/avstrong/confirmation/internal/booking"
)

const ContentType = "application/pdf"

var (
	ErrUnknownEngine = errors.New("unknown render engine")
	ErrPanic         = errors.New("panic while rendering")
)

// Document is a finished confirmation. Content is a complete PDF.
type Document struct {
	Filename string
	Content  []byte
}

type Renderer interface {
	Render(rec booking.Record) (*Document, error)
}

// RenderError means no document could be produced for an otherwise valid record.
type RenderError struct {
	Style string
	Err   error
}

func newRenderError(style string, err error) *RenderError {
	return &RenderError{Style: style, Err: err}
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render %q confirmation: %v", e.Style, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

func IsRenderError(err error) *RenderError {
	if err == nil {
		return nil
	}

	var renderError *RenderError

	if errors.As(err, &renderError) {
		return renderError
	}

	return nil
}

type options struct {
	fontDir      string
	utf8Regular  string
	utf8Bold     string
	compress     bool
	creationDate time.Time
}

type Option func(*options)

// WithFontDir sets the directory font files are resolved against.
func WithFontDir(dir string) Option {
	return func(o *options) {
		o.fontDir = dir
	}
}

// WithUTF8Font replaces the core font with TrueType files, needed for guest
// names outside Latin-1. Bold falls back to regular when empty.
func WithUTF8Font(regular, bold string) Option {
	return func(o *options) {
		o.utf8Regular = regular
		o.utf8Bold = bold
	}
}

func WithCompression(enabled bool) Option {
	return func(o *options) {
		o.compress = enabled
	}
}

func WithCreationDate(t time.Time) Option {
	return func(o *options) {
		o.creationDate = t
	}
}

func newOptions(opts []Option) options {
	//nolint:exhaustruct
	o := options{compress: true}

	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// New returns the renderer for the style's engine.
func New(style Style, profile Profile, opts ...Option) (Renderer, error) {
	if err := profile.validate(); err != nil {
		return nil, err
	}

	switch style.Engine {
	case EngineFlow:
		return NewFlowRenderer(style, profile, opts...), nil
	case EngineMarkup:
		r, err := NewMarkupRenderer(style, profile, opts...)
		if err != nil {
			return nil, fmt.Errorf("init markup renderer: %w", err)
		}

		return r, nil
	default:
		return nil, fmt.Errorf("style %q uses engine %q: %w", style.Name, style.Engine, ErrUnknownEngine)
	}
}

func recoverRender(style string, doc **Document, err *error) {
	if p := recover(); p != nil {
		*doc = nil
		*err = newRenderError(style, fmt.Errorf("%v: %w", p, ErrPanic))
	}
}

func finish(c *canvas, style string, rec booking.Record) (*Document, error) {
	content, err := c.bytes()
	if err != nil {
		return nil, newRenderError(style, err)
	}

	return &Document{
		Filename: rec.Filename(),
		Content:  content,
	}, nil
}
