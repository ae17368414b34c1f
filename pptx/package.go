package pptx

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path"
	"time"

	"github.com/klauspost/compress/zip"
)

const (
	relTypeOfficeDocument = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	relTypeCoreProps      = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
	relTypeExtendedProps  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties"
	relTypeSlideMaster    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster"
	relTypeSlideLayout    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout"
	relTypeSlide          = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide"
	relTypeTheme          = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/theme"
	relTypePresProps      = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/presProps"
	relTypeViewProps      = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/viewProps"
	relTypeTableStyles    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/tableStyles"
)

const (
	ctRelationships = "application/vnd.openxmlformats-package.relationships+xml"
	ctXML           = "application/xml"
	ctPresentation  = "application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"
	ctSlideMaster   = "application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml"
	ctSlideLayout   = "application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml"
	ctSlide         = "application/vnd.openxmlformats-officedocument.presentationml.slide+xml"
	ctTheme         = "application/vnd.openxmlformats-officedocument.theme+xml"
	ctPresProps     = "application/vnd.openxmlformats-officedocument.presentationml.presProps+xml"
	ctViewProps     = "application/vnd.openxmlformats-officedocument.presentationml.viewProps+xml"
	ctTableStyles   = "application/vnd.openxmlformats-officedocument.presentationml.tableStyles+xml"
	ctCoreProps     = "application/vnd.openxmlformats-package.core-properties+xml"
	ctExtendedProps = "application/vnd.openxmlformats-officedocument.extended-properties+xml"
)

const (
	masterID         = 2147483648
	firstSlideID     = 256
	contentTypesPart = "[Content_Types].xml"
	documentTitle    = "PowerPoint Presentation"
)

// All zip entries carry the same timestamp so equal decks produce equal files.
var partModTime = time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)

type part struct {
	name        string
	contentType string
	body        []byte
}

type relationship struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

type relationships struct {
	XMLName xml.Name       `xml:"http://schemas.openxmlformats.org/package/2006/relationships Relationships"`
	Items   []relationship `xml:"Relationship"`
}

func (r *relationships) add(relType, target string) string {
	id := fmt.Sprintf("rId%d", len(r.Items)+1)
	r.Items = append(r.Items, relationship{ID: id, Type: relType, Target: target})
	return id
}

type ctDefault struct {
	Extension   string `xml:"Extension,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type ctOverride struct {
	PartName    string `xml:"PartName,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type typesDoc struct {
	XMLName   xml.Name     `xml:"http://schemas.openxmlformats.org/package/2006/content-types Types"`
	Defaults  []ctDefault  `xml:"Default"`
	Overrides []ctOverride `xml:"Override"`
}

func marshalXML(v any) ([]byte, error) {
	body, err := xml.Marshal(v)
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}

// relsName returns the relationships part of a source part,
// e.g. ppt/slides/_rels/slide1.xml.rels for ppt/slides/slide1.xml.
func relsName(source string) string {
	dir, file := path.Split(source)
	return path.Join(dir, "_rels", file+".rels")
}

type packageBuilder struct {
	parts []part
}

func (b *packageBuilder) add(name, contentType string, body []byte) {
	b.parts = append(b.parts, part{name: name, contentType: contentType, body: body})
}

func (b *packageBuilder) addRendered(name, contentType, tmpl string, data any) error {
	body, err := render(tmpl, data)
	if err != nil {
		return err
	}
	b.add(name, contentType, body)
	return nil
}

func (b *packageBuilder) addRels(source string, rels *relationships) error {
	body, err := marshalXML(rels)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", relsName(source), err)
	}
	b.add(relsName(source), "", body)
	return nil
}

// contentTypes lists an override for every part that declares a content type.
// It must be the first entry of the archive.
func (b *packageBuilder) contentTypes() (part, error) {
	doc := typesDoc{
		Defaults: []ctDefault{
			{Extension: "rels", ContentType: ctRelationships},
			{Extension: "xml", ContentType: ctXML},
		},
	}
	for _, p := range b.parts {
		if p.contentType == "" {
			continue
		}
		doc.Overrides = append(doc.Overrides, ctOverride{PartName: "/" + p.name, ContentType: p.contentType})
	}
	body, err := marshalXML(doc)
	if err != nil {
		return part{}, fmt.Errorf("marshal %s: %w", contentTypesPart, err)
	}
	return part{name: contentTypesPart, body: body}, nil
}

// parts renders every part of the package in archive order.
func (d *Deck) parts() ([]part, error) {
	var b packageBuilder

	const (
		presentation = "ppt/presentation.xml"
		master       = "ppt/slideMasters/slideMaster1.xml"
		theme        = "ppt/theme/theme1.xml"
	)

	var root relationships
	root.add(relTypeOfficeDocument, presentation)
	root.add(relTypeCoreProps, "docProps/core.xml")
	root.add(relTypeExtendedProps, "docProps/app.xml")
	if err := b.addRels("", &root); err != nil {
		return nil, err
	}

	sizeAttr, format := sizeType(d.Width, d.Height)

	// presentation
	var presRels relationships
	pv := presentationView{
		MasterRID: presRels.add(relTypeSlideMaster, "slideMasters/slideMaster1.xml"),
		Width:     d.Width,
		Height:    d.Height,
		SizeType:  sizeAttr,
	}
	for i := range d.slides {
		pv.Slides = append(pv.Slides, idRef{
			ID:  firstSlideID + uint32(i),
			RID: presRels.add(relTypeSlide, fmt.Sprintf("slides/slide%d.xml", i+1)),
		})
	}
	presRels.add(relTypePresProps, "presProps.xml")
	presRels.add(relTypeViewProps, "viewProps.xml")
	presRels.add(relTypeTheme, "theme/theme1.xml")
	presRels.add(relTypeTableStyles, "tableStyles.xml")

	if err := b.addRendered(presentation, ctPresentation, "presentation.xml", pv); err != nil {
		return nil, err
	}
	if err := b.addRels(presentation, &presRels); err != nil {
		return nil, err
	}

	// slides
	for i, s := range d.slides {
		name := fmt.Sprintf("ppt/slides/slide%d.xml", i+1)
		li := d.layoutIndex(s.layout)
		if li < 0 {
			return nil, fmt.Errorf("slide %d: %w", s.number, ErrForeignLayout)
		}
		if err := b.addRendered(name, ctSlide, "slide.xml", slideView{Shapes: slideShapes(s)}); err != nil {
			return nil, err
		}
		var rels relationships
		rels.add(relTypeSlideLayout, fmt.Sprintf("../slideLayouts/slideLayout%d.xml", li+1))
		if err := b.addRels(name, &rels); err != nil {
			return nil, err
		}
	}

	// master and layouts
	var masterRels relationships
	mv := masterView{Shapes: defShapes(masterPlaceholders())}
	for i, l := range d.layouts {
		name := fmt.Sprintf("ppt/slideLayouts/slideLayout%d.xml", i+1)
		mv.Layouts = append(mv.Layouts, idRef{
			ID:  masterID + 1 + uint32(i),
			RID: masterRels.add(relTypeSlideLayout, fmt.Sprintf("../slideLayouts/slideLayout%d.xml", i+1)),
		})
		lv := layoutView{Name: l.Name, Type: l.Type, Shapes: defShapes(l.Placeholders)}
		if err := b.addRendered(name, ctSlideLayout, "slideLayout.xml", lv); err != nil {
			return nil, err
		}
		var rels relationships
		rels.add(relTypeSlideMaster, "../slideMasters/slideMaster1.xml")
		if err := b.addRels(name, &rels); err != nil {
			return nil, err
		}
	}
	masterRels.add(relTypeTheme, "../theme/theme1.xml")
	if err := b.addRendered(master, ctSlideMaster, "slideMaster.xml", mv); err != nil {
		return nil, err
	}
	if err := b.addRels(master, &masterRels); err != nil {
		return nil, err
	}

	if err := b.addRendered(theme, ctTheme, "theme.xml", defaultTheme()); err != nil {
		return nil, err
	}
	if err := b.addRendered("ppt/presProps.xml", ctPresProps, "presProps.xml", nil); err != nil {
		return nil, err
	}
	if err := b.addRendered("ppt/viewProps.xml", ctViewProps, "viewProps.xml", nil); err != nil {
		return nil, err
	}
	if err := b.addRendered("ppt/tableStyles.xml", ctTableStyles, "tableStyles.xml", nil); err != nil {
		return nil, err
	}
	if err := b.addRendered("docProps/core.xml", ctCoreProps, "core.xml", coreView{Title: documentTitle}); err != nil {
		return nil, err
	}
	if err := b.addRendered("docProps/app.xml", ctExtendedProps, "app.xml", appView{Format: format, Slides: len(d.slides)}); err != nil {
		return nil, err
	}

	ct, err := b.contentTypes()
	if err != nil {
		return nil, err
	}
	return append([]part{ct}, b.parts...), nil
}

func writeParts(w io.Writer, parts []part) error {
	zw := zip.NewWriter(w)
	for _, p := range parts {
		fw, err := zw.CreateHeader(&zip.FileHeader{
			Name:     p.name,
			Method:   zip.Deflate,
			Modified: partModTime,
		})
		if err != nil {
			return fmt.Errorf("create %s: %w", p.name, err)
		}
		if _, err = fw.Write(p.body); err != nil {
			return fmt.Errorf("write %s: %w", p.name, err)
		}
	}
	return zw.Close()
}

// Save writes the deck as a .pptx package to w.
func (d *Deck) Save(w io.Writer) error {
	parts, err := d.parts()
	if err != nil {
		return err
	}
	return writeParts(w, parts)
}

// SaveFile writes the deck to filename, replacing any existing file. A
// failed write may leave a truncated file behind.
func (d *Deck) SaveFile(filename string) error {
	parts, err := d.parts()
	if err != nil {
		return err
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err = writeParts(f, parts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
