package pptx

import (
	"fmt"
	"strings"
)

// Slide is one slide of a Deck, bound to a layout of the same deck.
type Slide struct {
	layout       *Layout
	number       int
	placeholders []*Placeholder
}

// Layout returns the layout the slide was created from.
func (s *Slide) Layout() *Layout {
	return s.layout
}

// Number is the 1-based position of the slide in its deck.
func (s *Slide) Number() int {
	return s.number
}

// Placeholders returns the slide's placeholders in layout order.
func (s *Slide) Placeholders() []*Placeholder {
	return s.placeholders
}

// Title returns the first title or centered-title placeholder.
func (s *Slide) Title() (*Placeholder, error) {
	for _, p := range s.placeholders {
		if p.def.Type.IsTitle() {
			return p, nil
		}
	}
	return nil, fmt.Errorf("slide %d: %w: title", s.number, ErrPlaceholderNotFound)
}

// Placeholder returns the placeholder with the given idx. Title placeholders
// have idx 0.
func (s *Slide) Placeholder(idx uint32) (*Placeholder, error) {
	for _, p := range s.placeholders {
		if p.def.Idx == idx {
			return p, nil
		}
	}
	return nil, fmt.Errorf("slide %d: %w: idx %d", s.number, ErrPlaceholderNotFound, idx)
}

// Placeholder is a text region of a slide, cloned from a layout definition.
type Placeholder struct {
	def        PlaceholderDef
	shapeID    int
	paragraphs []*Paragraph
}

// Type is the placeholder type inherited from the layout.
func (p *Placeholder) Type() PlaceholderType {
	return p.def.Type
}

// Idx is the placeholder index inherited from the layout.
func (p *Placeholder) Idx() uint32 {
	return p.def.Idx
}

// Name is the shape name PowerPoint shows in the selection pane, e.g. "Title 1".
func (p *Placeholder) Name() string {
	var base string
	switch p.def.Type {
	case PhTitle, PhCenterTitle:
		base = "Title"
		if p.def.Orient == OrientVert {
			base = "Vertical Title"
		}
	case PhSubTitle:
		base = "Subtitle"
	case PhBody:
		base = "Text Placeholder"
		if p.def.Orient == OrientVert {
			base = "Vertical Text Placeholder"
		}
	case PhPicture:
		base = "Picture Placeholder"
	default:
		base = "Content Placeholder"
	}
	return fmt.Sprintf("%s %d", base, p.shapeID-1)
}

// Text joins the paragraphs with "\n".
func (p *Placeholder) Text() string {
	lines := make([]string, len(p.paragraphs))
	for i, para := range p.paragraphs {
		lines[i] = para.text
	}
	return strings.Join(lines, "\n")
}

// SetText replaces all paragraphs with one paragraph per line of text.
func (p *Placeholder) SetText(text string) {
	lines := strings.Split(text, "\n")
	p.paragraphs = make([]*Paragraph, len(lines))
	for i, line := range lines {
		p.paragraphs[i] = &Paragraph{text: line}
	}
}

// AddParagraph appends an empty paragraph after the existing ones.
func (p *Placeholder) AddParagraph() *Paragraph {
	para := &Paragraph{}
	p.paragraphs = append(p.paragraphs, para)
	return para
}

// Paragraphs returns the paragraphs in order.
func (p *Placeholder) Paragraphs() []*Paragraph {
	return p.paragraphs
}

// Paragraph is a single line of plain text. Bullets, if any, are part of the
// text itself.
type Paragraph struct {
	text string
}

// Text returns the paragraph text as set.
func (p *Paragraph) Text() string {
	return p.text
}

// SetText replaces the paragraph text.
func (p *Paragraph) SetText(text string) {
	p.text = text
}
