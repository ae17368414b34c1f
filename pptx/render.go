package pptx

import (
	"bytes"
	"embed"
	"encoding/xml"
	"fmt"
	"strings"
	"text/template"

	"github.com/brandquad/testppt/assets"
	"github.com/brandquad/testppt/colorutils"
	"golang.org/x/text/unicode/norm"
)

//go:embed templates/*.xml.tmpl
var templatesFS embed.FS

var templates = template.Must(
	template.New("pptx").Funcs(template.FuncMap{"xml": escapeText}).ParseFS(templatesFS, "templates/*.xml.tmpl"),
)

// escapeText NFC-normalizes s and escapes it for use in element text and
// attribute values.
func escapeText(s string) string {
	var b strings.Builder
	// strings.Builder never fails on write
	_ = xml.EscapeText(&b, []byte(norm.NFC.String(s)))
	return b.String()
}

func render(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name+".tmpl", data); err != nil {
		return nil, fmt.Errorf("render %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

type shapeView struct {
	ID         int
	Name       string
	Type       PlaceholderType
	Idx        uint32
	Size       string
	Orient     string
	Frame      *Frame
	Paragraphs []string
}

// PhType is the p:ph/@type value. Content placeholders leave it out, obj is
// the schema default.
func (v shapeView) PhType() string {
	if v.Type == PhObject {
		return ""
	}
	return string(v.Type)
}

func (v shapeView) Vertical() bool {
	return v.Orient == OrientVert
}

// defShapes renders placeholder definitions the way layouts and the master
// show them: positioned, holding the prompt text.
func defShapes(defs []PlaceholderDef) []shapeView {
	shapes := make([]shapeView, len(defs))
	for i, def := range defs {
		p := Placeholder{def: def, shapeID: i + 2}
		frame := def.Frame
		shapes[i] = shapeView{
			ID:         p.shapeID,
			Name:       p.Name(),
			Type:       def.Type,
			Idx:        def.Idx,
			Size:       def.Size,
			Orient:     def.Orient,
			Frame:      &frame,
			Paragraphs: []string{def.Prompt},
		}
	}
	return shapes
}

// slideShapes renders slide placeholders. Geometry is inherited from the
// layout, so no frame is written.
func slideShapes(s *Slide) []shapeView {
	shapes := make([]shapeView, len(s.placeholders))
	for i, p := range s.placeholders {
		paragraphs := make([]string, len(p.paragraphs))
		for j, para := range p.paragraphs {
			paragraphs[j] = para.text
		}
		shapes[i] = shapeView{
			ID:         p.shapeID,
			Name:       p.Name(),
			Type:       p.def.Type,
			Idx:        p.def.Idx,
			Size:       p.def.Size,
			Orient:     p.def.Orient,
			Paragraphs: paragraphs,
		}
	}
	return shapes
}

type idRef struct {
	ID  uint32
	RID string
}

type presentationView struct {
	MasterRID string
	Slides    []idRef
	Width     int64
	Height    int64
	SizeType  string
}

type masterView struct {
	Shapes  []shapeView
	Layouts []idRef
}

type layoutView struct {
	Name   string
	Type   string
	Shapes []shapeView
}

type slideView struct {
	Shapes []shapeView
}

type themeColorView struct {
	Name string
	Val  string
}

type themeView struct {
	Name       string
	SchemeName string
	Colors     []themeColorView
	MajorFont  string
	MinorFont  string
}

type appView struct {
	Format string
	Slides int
}

type coreView struct {
	Title string
}

func defaultTheme() themeView {
	v := themeView{
		Name:       assets.ThemeName,
		SchemeName: assets.SchemeName,
		MajorFont:  assets.MajorFont,
		MinorFont:  assets.MinorFont,
	}
	for _, c := range assets.Scheme {
		v.Colors = append(v.Colors, themeColorView{Name: c.Name, Val: colorutils.SrgbVal(c.Color)})
	}
	return v
}

// sizeType maps slide dimensions to p:sldSz/@type and the app.xml format name.
func sizeType(w, h int64) (string, string) {
	switch {
	case w == SlideWidth && h == SlideHeight:
		return "screen4x3", "On-screen Show (4:3)"
	case w == 12192000 && h == 6858000:
		return "", "Widescreen"
	case w*9 == h*16:
		return "screen16x9", "On-screen Show (16:9)"
	}
	return "custom", "Custom"
}
