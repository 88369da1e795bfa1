package tokens

// FontSpec is one step of the type scale: a pixel size and a weight
// (CSS-style 400/500/600/700/800).
type FontSpec struct {
	Size   int32
	Weight int32
}

// TypeScale is the font size/weight scale plus semantic accessors.
type TypeScale struct {
	XS   FontSpec // 12px - captions, hints
	SM   FontSpec // 14px - secondary text
	Base FontSpec // 16px - body text
	LG   FontSpec // 18px - emphasized body
	XL   FontSpec // 20px - minor headings
	XL2  FontSpec // 24px
	XL3  FontSpec // 30px
	XL4  FontSpec // 36px
}

func defaultTypeScale() TypeScale {
	return TypeScale{
		XS:   FontSpec{Size: 12, Weight: 400},
		SM:   FontSpec{Size: 14, Weight: 400},
		Base: FontSpec{Size: 16, Weight: 400},
		LG:   FontSpec{Size: 18, Weight: 400},
		XL:   FontSpec{Size: 20, Weight: 600},
		XL2:  FontSpec{Size: 24, Weight: 600},
		XL3:  FontSpec{Size: 30, Weight: 600},
		XL4:  FontSpec{Size: 36, Weight: 800},
	}
}

// H1 is the largest heading.
func (t TypeScale) H1() FontSpec { return t.XL4 }

// H2 is a section heading.
func (t TypeScale) H2() FontSpec { return t.XL3 }

// H3 is a subsection heading.
func (t TypeScale) H3() FontSpec { return t.XL2 }

// H4 is a minor heading.
func (t TypeScale) H4() FontSpec { return t.XL }

// Body is the default text size.
func (t TypeScale) Body() FontSpec { return t.Base }

// Small is for secondary text such as descriptions.
func (t TypeScale) Small() FontSpec { return t.SM }
