// Package pptx builds PresentationML (.pptx) documents from a small object
// model: a deck with the stock Office layouts, slides cloned from those
// layouts and plain-text placeholders.
package pptx

import (
	"fmt"
	"slices"
)

// Deck is an in-memory presentation. It is not safe for concurrent use.
type Deck struct {
	Width  int64
	Height int64

	layouts []*Layout
	slides  []*Slide
}

// New returns an empty deck backed by the built-in default template.
func New() *Deck {
	d := &Deck{
		Width:  SlideWidth,
		Height: SlideHeight,
	}
	for _, l := range defaultLayouts() {
		l.Placeholders = slices.Clone(l.Placeholders)
		l.deck = d
		d.layouts = append(d.layouts, &l)
	}
	return d
}

// Layouts returns the deck's layouts in template order: "Title Slide" first,
// then "Title and Content".
func (d *Deck) Layouts() []*Layout {
	return d.layouts
}

// LayoutByName returns the layout with the given name or ErrLayoutNotFound.
func (d *Deck) LayoutByName(name string) (*Layout, error) {
	for _, l := range d.layouts {
		if l.Name == name {
			return l, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrLayoutNotFound, name)
}

// Slides returns the slides in presentation order.
func (d *Deck) Slides() []*Slide {
	return d.slides
}

// AddSlide appends a slide using layout l. The new slide gets one empty
// placeholder for every placeholder l defines.
func (d *Deck) AddSlide(l *Layout) (*Slide, error) {
	if l == nil || l.deck != d {
		return nil, ErrForeignLayout
	}

	s := &Slide{
		layout: l,
		number: len(d.slides) + 1,
	}
	for i, def := range l.Placeholders {
		s.placeholders = append(s.placeholders, &Placeholder{
			def:        def,
			shapeID:    i + 2,
			paragraphs: []*Paragraph{{}},
		})
	}
	d.slides = append(d.slides, s)
	return s, nil
}

func (d *Deck) layoutIndex(l *Layout) int {
	return slices.Index(d.layouts, l)
}
