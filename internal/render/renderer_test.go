package render

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avstrong/confirmation/internal/booking"
)

func TestRender_AllStyles(t *testing.T) {
	rec := testRecord(t, nil)

	for _, name := range StyleNames() {
		t.Run(name, func(t *testing.T) {
			style, err := StyleByName(name)
			require.NoError(t, err)

			r, err := New(style, DefaultProfile(), WithCompression(false), WithCreationDate(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)))
			require.NoError(t, err)

			doc, err := r.Render(rec)
			require.NoError(t, err)
			require.NotNil(t, doc)

			assert.Equal(t, "Maria_Papas_10-06-2025_13-06-2025.pdf", doc.Filename)
			assert.True(t, bytes.HasPrefix(doc.Content, []byte("%PDF-")))
			assert.Equal(t, 1, bytes.Count(doc.Content, []byte("%%EOF")))
			assert.Contains(t, string(doc.Content), "Guest Details")
			assert.Contains(t, string(doc.Content), "Cancellation Policy")
		})
	}
}

func TestFlowRenderer_WritesValues(t *testing.T) {
	r := NewFlowRenderer(classic, DefaultProfile(), WithCompression(false))

	doc, err := r.Render(testRecord(t, nil))
	require.NoError(t, err)

	content := string(doc.Content)
	assert.Contains(t, content, "Maria Papas")
	assert.Contains(t, content, "315.00")
	assert.Contains(t, content, "GR5601408400840002002023605")
}

func TestRender_LongValuesWrap(t *testing.T) {
	rec := testRecord(t, func(in *booking.Input) {
		in.GuestName = strings.Repeat("Maria Papas ", 60)
		in.PaymentStatus = strings.Repeat("Deposit received, balance due on arrival. ", 40)
	})

	for _, name := range StyleNames() {
		style, err := StyleByName(name)
		require.NoError(t, err)

		r, err := New(style, DefaultProfile())
		require.NoError(t, err)

		doc, err := r.Render(rec)
		require.NoError(t, err, name)
		assert.True(t, bytes.HasPrefix(doc.Content, []byte("%PDF-")), name)
	}
}

func TestRender_MissingFontIsRenderError(t *testing.T) {
	r, err := New(classic, DefaultProfile(), WithFontDir(t.TempDir()), WithUTF8Font("missing.ttf", ""))
	require.NoError(t, err)

	doc, err := r.Render(testRecord(t, nil))
	require.Error(t, err)
	assert.Nil(t, doc)

	renderErr := IsRenderError(err)
	require.NotNil(t, renderErr)
	assert.Equal(t, "classic", renderErr.Style)
}

func TestRender_ConcurrentCalls(t *testing.T) {
	r := NewFlowRenderer(classic, DefaultProfile())
	rec := testRecord(t, nil)

	var wg sync.WaitGroup

	errs := make(chan error, 8)

	for range 8 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			_, err := r.Render(rec)
			errs <- err
		}()
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
}

func TestNew_Errors(t *testing.T) {
	_, err := New(Style{Name: "svg", Engine: "svg"}, DefaultProfile())
	assert.True(t, errors.Is(err, ErrUnknownEngine))

	p := DefaultProfile()
	p.HotelName = ""
	_, err = New(classic, p)
	assert.True(t, errors.Is(err, ErrProfile))
}

func TestStyles(t *testing.T) {
	assert.Equal(t, []string{"classic", "markup", "minimal", "ocean"}, StyleNames())

	_, err := StyleByName("baroque")
	assert.True(t, errors.Is(err, ErrUnknownStyle))

	markup, err := StyleByName("markup")
	require.NoError(t, err)
	assert.Equal(t, EngineMarkup, markup.Engine)
}

func TestIsRenderError(t *testing.T) {
	assert.Nil(t, IsRenderError(nil))
	assert.Nil(t, IsRenderError(errors.New("x")))

	wrapped := errors.Join(errors.New("ctx"), newRenderError("classic", ErrPanic))
	require.NotNil(t, IsRenderError(wrapped))
	assert.True(t, errors.Is(wrapped, ErrPanic))
}

func TestMarkupTemplates_DropAngleBrackets(t *testing.T) {
	r, err := NewMarkupRenderer(classic, DefaultProfile())
	require.NoError(t, err)

	out, err := r.execute("table", Section{Rows: []Row{{Label: "Guest Name", Value: "<i>Eve</i>"}}})
	require.NoError(t, err)
	assert.Equal(t, "<b>Guest Name:</b> iEve/i<br>", out)
}
