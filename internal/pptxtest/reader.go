// Package pptxtest reads back .pptx packages written by the pptx package so
// tests can assert on slide content.
package pptxtest

import (
	"encoding/xml"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/klauspost/compress/zip"
)

const (
	presentationPart = "ppt/presentation.xml"
	relTypeSlide     = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide"
	relTypeLayout    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout"
	relTypeMaster    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster"
)

type xmlRel struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

type xmlRels struct {
	Items []xmlRel `xml:"Relationship"`
}

type xmlIDRef struct {
	RID string `xml:"http://schemas.openxmlformats.org/officeDocument/2006/relationships id,attr"`
}

type xmlPresentation struct {
	Masters []xmlIDRef `xml:"sldMasterIdLst>sldMasterId"`
	Slides  []xmlIDRef `xml:"sldIdLst>sldId"`
	Size    struct {
		CX int64 `xml:"cx,attr"`
		CY int64 `xml:"cy,attr"`
	} `xml:"sldSz"`
}

type xmlMaster struct {
	Layouts []xmlIDRef `xml:"sldLayoutIdLst>sldLayoutId"`
}

type xmlPh struct {
	Type string `xml:"type,attr"`
	Idx  uint32 `xml:"idx,attr"`
}

type xmlParagraph struct {
	Runs []struct {
		T string `xml:"t"`
	} `xml:"r"`
}

type xmlShape struct {
	NvSpPr struct {
		CNvPr struct {
			Name string `xml:"name,attr"`
		} `xml:"cNvPr"`
		NvPr struct {
			Ph *xmlPh `xml:"ph"`
		} `xml:"nvPr"`
	} `xml:"nvSpPr"`
	Paragraphs []xmlParagraph `xml:"txBody>p"`
}

type xmlCSld struct {
	CSld struct {
		Name   string     `xml:"name,attr"`
		Shapes []xmlShape `xml:"spTree>sp"`
	} `xml:"cSld"`
}

// Placeholder is a placeholder shape as stored in a slide part. Type is "obj"
// when the part leaves it out.
type Placeholder struct {
	Type       string
	Idx        uint32
	Name       string
	Paragraphs []string
}

func (p Placeholder) Text() string {
	return strings.Join(p.Paragraphs, "\n")
}

type Slide struct {
	Part         string
	Layout       string
	Placeholders []Placeholder
}

// Title returns the first title or ctrTitle placeholder.
func (s Slide) Title() (Placeholder, bool) {
	for _, p := range s.Placeholders {
		if p.Type == "title" || p.Type == "ctrTitle" {
			return p, true
		}
	}
	return Placeholder{}, false
}

func (s Slide) Placeholder(idx uint32) (Placeholder, bool) {
	for _, p := range s.Placeholders {
		if p.Idx == idx {
			return p, true
		}
	}
	return Placeholder{}, false
}

type Package struct {
	// Parts lists archive entries in archive order.
	Parts   []string
	Width   int64
	Height  int64
	Layouts []string
	Slides  []Slide

	files map[string]*zip.File
}

// Open reads the package at filename.
func Open(filename string) (*Package, error) {
	r, err := zip.OpenReader(filename)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return load(&r.Reader)
}

func Read(r io.ReaderAt, size int64) (*Package, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, err
	}
	return load(zr)
}

func load(zr *zip.Reader) (*Package, error) {
	p := &Package{files: make(map[string]*zip.File)}
	for _, f := range zr.File {
		p.Parts = append(p.Parts, f.Name)
		p.files[f.Name] = f
	}

	var pres xmlPresentation
	if err := p.decode(presentationPart, &pres); err != nil {
		return nil, err
	}
	p.Width, p.Height = pres.Size.CX, pres.Size.CY

	presRels, err := p.rels(presentationPart)
	if err != nil {
		return nil, err
	}

	for _, m := range pres.Masters {
		master, err := target(presentationPart, presRels, m.RID, relTypeMaster)
		if err != nil {
			return nil, err
		}
		if err = p.loadLayouts(master); err != nil {
			return nil, err
		}
	}

	for _, ref := range pres.Slides {
		name, err := target(presentationPart, presRels, ref.RID, relTypeSlide)
		if err != nil {
			return nil, err
		}
		s, err := p.slide(name)
		if err != nil {
			return nil, err
		}
		p.Slides = append(p.Slides, s)
	}

	p.files = nil
	return p, nil
}

func (p *Package) loadLayouts(master string) error {
	var m xmlMaster
	if err := p.decode(master, &m); err != nil {
		return err
	}
	rels, err := p.rels(master)
	if err != nil {
		return err
	}
	for _, ref := range m.Layouts {
		name, err := target(master, rels, ref.RID, relTypeLayout)
		if err != nil {
			return err
		}
		var l xmlCSld
		if err = p.decode(name, &l); err != nil {
			return err
		}
		p.Layouts = append(p.Layouts, l.CSld.Name)
	}
	return nil
}

func (p *Package) slide(name string) (Slide, error) {
	s := Slide{Part: name}

	var x xmlCSld
	if err := p.decode(name, &x); err != nil {
		return s, err
	}

	rels, err := p.rels(name)
	if err != nil {
		return s, err
	}
	for _, r := range rels {
		if r.Type != relTypeLayout {
			continue
		}
		var l xmlCSld
		if err = p.decode(resolve(name, r.Target), &l); err != nil {
			return s, err
		}
		s.Layout = l.CSld.Name
	}

	for _, sp := range x.CSld.Shapes {
		ph := sp.NvSpPr.NvPr.Ph
		if ph == nil {
			continue
		}
		placeholder := Placeholder{
			Type: ph.Type,
			Idx:  ph.Idx,
			Name: sp.NvSpPr.CNvPr.Name,
		}
		if placeholder.Type == "" {
			placeholder.Type = "obj"
		}
		for _, para := range sp.Paragraphs {
			var b strings.Builder
			for _, r := range para.Runs {
				b.WriteString(r.T)
			}
			placeholder.Paragraphs = append(placeholder.Paragraphs, b.String())
		}
		s.Placeholders = append(s.Placeholders, placeholder)
	}
	return s, nil
}

func (p *Package) decode(name string, v any) error {
	f, ok := p.files[name]
	if !ok {
		return fmt.Errorf("part %s: not found", name)
	}
	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("part %s: %w", name, err)
	}
	defer rc.Close()
	if err = xml.NewDecoder(rc).Decode(v); err != nil {
		return fmt.Errorf("part %s: %w", name, err)
	}
	return nil
}

func (p *Package) rels(source string) ([]xmlRel, error) {
	dir, file := path.Split(source)
	var r xmlRels
	if err := p.decode(path.Join(dir, "_rels", file+".rels"), &r); err != nil {
		return nil, err
	}
	return r.Items, nil
}

func target(source string, rels []xmlRel, id, relType string) (string, error) {
	for _, r := range rels {
		if r.ID == id {
			if r.Type != relType {
				return "", fmt.Errorf("%s: relationship %s has type %s", source, id, r.Type)
			}
			return resolve(source, r.Target), nil
		}
	}
	return "", fmt.Errorf("%s: relationship %s not found", source, id)
}

// resolve turns a relationship target into a part name relative to the
// package root.
func resolve(source, target string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return path.Join(path.Dir(source), target)
}
