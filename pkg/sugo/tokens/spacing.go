package tokens

// Spacing is the pixel spacing scale, built on a 4px base unit.
type Spacing struct {
	Unit int32 // Base unit; the scale below is derived from it

	XS  int32 // 4px - minimal spacing
	SM  int32 // 8px - between related elements
	MD  int32 // 16px - standard spacing
	LG  int32 // 24px - clear visual separation
	XL  int32 // 32px - significant spacing
	XL2 int32 // 40px - major section spacing
}

func defaultSpacing() Spacing {
	return spacingForUnit(4)
}

func spacingForUnit(unit int32) Spacing {
	return Spacing{
		Unit: unit,
		XS:   unit,
		SM:   unit * 2,
		MD:   unit * 4,
		LG:   unit * 6,
		XL:   unit * 8,
		XL2:  unit * 10,
	}
}

// Insets defines spacing on all four sides of an element.
type Insets struct {
	Top    int32
	Right  int32
	Bottom int32
	Left   int32
}

// UniformInsets creates an Insets with the same value on all sides.
func UniformInsets(value int32) Insets {
	return Insets{
		Top:    value,
		Right:  value,
		Bottom: value,
		Left:   value,
	}
}
