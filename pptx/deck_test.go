package pptx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var defaultLayoutNames = []string{
	"Title Slide",
	"Title and Content",
	"Section Header",
	"Two Content",
	"Comparison",
	"Title Only",
	"Blank",
	"Content with Caption",
	"Picture with Caption",
	"Title and Vertical Text",
	"Vertical Title and Text",
}

func TestNewDefaultLayouts(t *testing.T) {
	d := New()

	var names []string
	for _, l := range d.Layouts() {
		names = append(names, l.Name)
	}
	assert.Equal(t, defaultLayoutNames, names)
	assert.Empty(t, d.Slides())
	assert.Equal(t, int64(9144000), d.Width)
	assert.Equal(t, int64(6858000), d.Height)
}

func TestNewDecksDoNotShareLayouts(t *testing.T) {
	a, b := New(), New()
	a.Layouts()[0].Placeholders[0].Prompt = "changed"

	assert.NotSame(t, a.Layouts()[0], b.Layouts()[0])
	assert.Equal(t, promptTitle, b.Layouts()[0].Placeholders[0].Prompt)
}

func TestLayoutByName(t *testing.T) {
	d := New()

	l, err := d.LayoutByName("Title Only")
	require.NoError(t, err)
	assert.Same(t, d.Layouts()[5], l)

	_, err = d.LayoutByName("Nope")
	assert.ErrorIs(t, err, ErrLayoutNotFound)
}

func TestAddSlide(t *testing.T) {
	d := New()

	s, err := d.AddSlide(d.Layouts()[0])
	require.NoError(t, err)
	assert.Equal(t, 1, s.Number())
	assert.Same(t, d.Layouts()[0], s.Layout())

	require.Len(t, s.Placeholders(), 2)
	title, sub := s.Placeholders()[0], s.Placeholders()[1]
	assert.Equal(t, PhCenterTitle, title.Type())
	assert.Equal(t, uint32(0), title.Idx())
	assert.Equal(t, "Title 1", title.Name())
	assert.Equal(t, PhSubTitle, sub.Type())
	assert.Equal(t, uint32(1), sub.Idx())
	assert.Equal(t, "Subtitle 2", sub.Name())

	// fresh placeholders hold one empty paragraph
	require.Len(t, title.Paragraphs(), 1)
	assert.Equal(t, "", title.Text())

	s2, err := d.AddSlide(d.Layouts()[1])
	require.NoError(t, err)
	assert.Equal(t, 2, s2.Number())
	assert.Len(t, d.Slides(), 2)
	assert.Equal(t, "Content Placeholder 2", s2.Placeholders()[1].Name())
}

func TestAddSlideForeignLayout(t *testing.T) {
	d, other := New(), New()

	_, err := d.AddSlide(other.Layouts()[0])
	assert.ErrorIs(t, err, ErrForeignLayout)

	_, err = d.AddSlide(nil)
	assert.ErrorIs(t, err, ErrForeignLayout)
	assert.Empty(t, d.Slides())
}

func TestSlidePlaceholderLookup(t *testing.T) {
	d := New()
	s, err := d.AddSlide(d.Layouts()[1])
	require.NoError(t, err)

	title, err := s.Title()
	require.NoError(t, err)
	assert.Equal(t, PhTitle, title.Type())

	body, err := s.Placeholder(1)
	require.NoError(t, err)
	assert.Equal(t, PhObject, body.Type())

	zero, err := s.Placeholder(0)
	require.NoError(t, err)
	assert.Same(t, title, zero)

	_, err = s.Placeholder(99)
	assert.ErrorIs(t, err, ErrPlaceholderNotFound)

	blank, err := d.LayoutByName("Blank")
	require.NoError(t, err)
	bs, err := d.AddSlide(blank)
	require.NoError(t, err)
	_, err = bs.Title()
	assert.ErrorIs(t, err, ErrPlaceholderNotFound)
}

func TestPlaceholderText(t *testing.T) {
	d := New()
	s, err := d.AddSlide(d.Layouts()[1])
	require.NoError(t, err)
	body, err := s.Placeholder(1)
	require.NoError(t, err)

	body.SetText("first\nsecond")
	require.Len(t, body.Paragraphs(), 2)

	body.SetText("This is a test slide")
	body.AddParagraph().SetText("• Bullet point 1")
	body.AddParagraph().SetText("• Bullet point 2")

	var texts []string
	for _, p := range body.Paragraphs() {
		texts = append(texts, p.Text())
	}
	assert.Equal(t, []string{"This is a test slide", "• Bullet point 1", "• Bullet point 2"}, texts)
	assert.Equal(t, "This is a test slide\n• Bullet point 1\n• Bullet point 2", body.Text())
}

func TestSlidesFromSameLayoutAreIndependent(t *testing.T) {
	d := New()
	a, err := d.AddSlide(d.Layouts()[0])
	require.NoError(t, err)
	b, err := d.AddSlide(d.Layouts()[0])
	require.NoError(t, err)

	ta, _ := a.Title()
	tb, _ := b.Title()
	ta.SetText("A")

	assert.Equal(t, "A", ta.Text())
	assert.Equal(t, "", tb.Text())
}

func TestPlaceholderNames(t *testing.T) {
	d := New()
	cases := []struct {
		layout string
		want   []string
	}{
		{"Section Header", []string{"Title 1", "Text Placeholder 2"}},
		{"Picture with Caption", []string{"Title 1", "Picture Placeholder 2", "Text Placeholder 3"}},
		{"Vertical Title and Text", []string{"Vertical Title 1", "Vertical Text Placeholder 2"}},
	}
	for _, tc := range cases {
		t.Run(tc.layout, func(t *testing.T) {
			l, err := d.LayoutByName(tc.layout)
			require.NoError(t, err)
			s, err := d.AddSlide(l)
			require.NoError(t, err)

			var names []string
			for _, p := range s.Placeholders() {
				names = append(names, p.Name())
			}
			assert.Equal(t, tc.want, names)
		})
	}
}
