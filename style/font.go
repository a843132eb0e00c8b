package style

// Weight is a font weight class.
type Weight uint8

const (
	WeightRegular Weight = iota
	WeightMedium
	WeightSemibold
	WeightBold
)

func (w Weight) String() string {
	switch w {
	case WeightMedium:
		return "medium"
	case WeightSemibold:
		return "semibold"
	case WeightBold:
		return "bold"
	default:
		return "regular"
	}
}

// Color is a named palette entry; hosts map it to their own colour space.
type Color string

const (
	ColorDefault   Color = ""
	ColorDarkGray  Color = "darkGray"
	ColorLightGray Color = "lightGray"
)

// BodySize is the point size of text without a header.
const BodySize = 17

// Paragraph is the paragraph layout applied to blockquote lines.
type Paragraph struct {
	HeadIndent          float64
	FirstLineHeadIndent float64
	TailIndent          float64
	SpacingBefore       float64
	SpacingAfter        float64
}

// BlockquoteParagraph is the paragraph layout of every blockquote line.
var BlockquoteParagraph = Paragraph{
	HeadIndent:          20,
	FirstLineHeadIndent: 0,
	TailIndent:          -20,
	SpacingBefore:       10,
	SpacingAfter:        10,
}

// Font is the resolved presentation of an Attributes value.
type Font struct {
	Size          float64
	Weight        Weight
	Bold          bool
	Italic        bool
	Underline     bool
	Strikethrough bool

	Paragraph  *Paragraph
	Foreground Color
	Background Color
}

// Size returns the point size for h.
func (h HeaderLevel) Size() float64 {
	switch h {
	case H1:
		return 32
	case H2:
		return 28
	case H3:
		return 24
	case H4:
		return 20
	case H5:
		return 18
	case H6:
		return 16
	default:
		return BodySize
	}
}

// Weight returns the font weight for h.
func (h HeaderLevel) Weight() Weight {
	switch h {
	case H1, H2:
		return WeightBold
	case H3, H4:
		return WeightSemibold
	case H5, H6:
		return WeightMedium
	default:
		return WeightRegular
	}
}

// ResolveFont derives the presentation of a.
//
// Order is fixed: blockquote paragraph styling first, then the header
// (size and weight), then the format flags on top of whatever font is active.
func ResolveFont(a Attributes) Font {
	f := Font{Size: BodySize, Weight: WeightRegular}

	if a.Blockquote {
		p := BlockquoteParagraph
		f.Paragraph = &p
		f.Foreground = ColorDarkGray
		f.Background = ColorLightGray
	}

	if a.Header != HeaderNone && a.Header.Valid() {
		f.Size = a.Header.Size()
		f.Weight = a.Header.Weight()
	}

	// Traits keep the size of whatever font is active.
	f.Bold = a.Has(Bold)
	f.Italic = a.Has(Italic)
	f.Underline = a.Has(Underline)
	f.Strikethrough = a.Has(Strikethrough)
	return f
}
