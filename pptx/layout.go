package pptx

// EMU (English Metric Units) per inch.
const emuPerInch = 914400

// Default slide size is 4:3, 10in x 7.5in.
const (
	SlideWidth  int64 = 10 * emuPerInch
	SlideHeight int64 = 7.5 * emuPerInch
)

type PlaceholderType string

const (
	PhCenterTitle PlaceholderType = "ctrTitle"
	PhSubTitle    PlaceholderType = "subTitle"
	PhTitle       PlaceholderType = "title"
	PhBody        PlaceholderType = "body"
	PhObject      PlaceholderType = "obj"
	PhPicture     PlaceholderType = "pic"
)

// IsTitle reports whether the placeholder holds a slide title.
func (t PlaceholderType) IsTitle() bool {
	return t == PhTitle || t == PhCenterTitle
}

const (
	SizeHalf    = "half"
	SizeQuarter = "quarter"

	OrientVert = "vert"
)

const (
	promptTitle    = "Click to edit Master title style"
	promptSubTitle = "Click to edit Master subtitle style"
	promptText     = "Click to edit Master text styles"
)

// Frame is a shape position and extent in EMU.
type Frame struct {
	X, Y   int64
	CX, CY int64
}

// PlaceholderDef describes a placeholder a layout exposes to its slides.
type PlaceholderDef struct {
	Type   PlaceholderType
	Idx    uint32
	Size   string
	Orient string
	Frame  Frame
	Prompt string
}

// Layout is a predefined slide template. Layouts are owned by the deck that
// created them.
type Layout struct {
	Name         string
	Type         string
	Placeholders []PlaceholderDef

	deck *Deck
}

var (
	titleFrame = Frame{457200, 274638, 8229600, 1143000}
	bodyFrame  = Frame{457200, 1600200, 8229600, 4525963}
)

func masterPlaceholders() []PlaceholderDef {
	return []PlaceholderDef{
		{Type: PhTitle, Frame: titleFrame, Prompt: promptTitle},
		{Type: PhBody, Idx: 1, Frame: bodyFrame, Prompt: promptText},
	}
}

// defaultLayouts returns the layouts of the built-in template, in the order
// the stock Office template lists them.
func defaultLayouts() []Layout {
	title := PlaceholderDef{Type: PhTitle, Frame: titleFrame, Prompt: promptTitle}

	return []Layout{
		{Name: "Title Slide", Type: "title", Placeholders: []PlaceholderDef{
			{Type: PhCenterTitle, Frame: Frame{685800, 2130425, 7772400, 1470025}, Prompt: promptTitle},
			{Type: PhSubTitle, Idx: 1, Frame: Frame{1371600, 3886200, 6400800, 1752600}, Prompt: promptSubTitle},
		}},
		{Name: "Title and Content", Type: "obj", Placeholders: []PlaceholderDef{
			title,
			{Type: PhObject, Idx: 1, Frame: bodyFrame, Prompt: promptText},
		}},
		{Name: "Section Header", Type: "secHead", Placeholders: []PlaceholderDef{
			{Type: PhTitle, Frame: Frame{722313, 4406900, 7772400, 1362075}, Prompt: promptTitle},
			{Type: PhBody, Idx: 1, Frame: Frame{722313, 2906713, 7772400, 1500187}, Prompt: promptText},
		}},
		{Name: "Two Content", Type: "twoObj", Placeholders: []PlaceholderDef{
			title,
			{Type: PhObject, Idx: 1, Size: SizeHalf, Frame: Frame{457200, 1600200, 4038600, 4525963}, Prompt: promptText},
			{Type: PhObject, Idx: 2, Size: SizeHalf, Frame: Frame{4648200, 1600200, 4038600, 4525963}, Prompt: promptText},
		}},
		{Name: "Comparison", Type: "twoTxTwoObj", Placeholders: []PlaceholderDef{
			title,
			{Type: PhBody, Idx: 1, Frame: Frame{457200, 1535113, 4040188, 639762}, Prompt: promptText},
			{Type: PhObject, Idx: 2, Size: SizeHalf, Frame: Frame{457200, 2174875, 4040188, 3951288}, Prompt: promptText},
			{Type: PhBody, Idx: 3, Size: SizeQuarter, Frame: Frame{4645025, 1535113, 4041775, 639762}, Prompt: promptText},
			{Type: PhObject, Idx: 4, Size: SizeQuarter, Frame: Frame{4645025, 2174875, 4041775, 3951288}, Prompt: promptText},
		}},
		{Name: "Title Only", Type: "titleOnly", Placeholders: []PlaceholderDef{
			title,
		}},
		{Name: "Blank", Type: "blank"},
		{Name: "Content with Caption", Type: "objTx", Placeholders: []PlaceholderDef{
			{Type: PhTitle, Frame: Frame{457200, 273050, 3008313, 1162050}, Prompt: promptTitle},
			{Type: PhObject, Idx: 1, Frame: Frame{3575050, 273050, 5111750, 5853113}, Prompt: promptText},
			{Type: PhBody, Idx: 2, Size: SizeHalf, Frame: Frame{457200, 1435100, 3008313, 4691063}, Prompt: promptText},
		}},
		{Name: "Picture with Caption", Type: "picTx", Placeholders: []PlaceholderDef{
			{Type: PhTitle, Frame: Frame{1792288, 4800600, 5486400, 566738}, Prompt: promptTitle},
			{Type: PhPicture, Idx: 1, Frame: Frame{1792288, 612775, 5486400, 4114800}},
			{Type: PhBody, Idx: 2, Size: SizeQuarter, Frame: Frame{1792288, 5367338, 5486400, 804862}, Prompt: promptText},
		}},
		{Name: "Title and Vertical Text", Type: "vertTx", Placeholders: []PlaceholderDef{
			title,
			{Type: PhBody, Idx: 1, Orient: OrientVert, Frame: bodyFrame, Prompt: promptText},
		}},
		{Name: "Vertical Title and Text", Type: "vertTitleAndTx", Placeholders: []PlaceholderDef{
			{Type: PhTitle, Orient: OrientVert, Frame: Frame{6629400, 274638, 2057400, 5851525}, Prompt: promptTitle},
			{Type: PhBody, Idx: 1, Orient: OrientVert, Frame: Frame{457200, 274638, 6019800, 5851525}, Prompt: promptText},
		}},
	}
}
