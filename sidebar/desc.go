package sidebar

const (
	LabelBrushKind   = "Brush Kind"
	LabelBrushMode   = "Brush Mode"
	LabelBrushWidth  = "Brush Width"
	LabelBrushLength = "Brush Height"
	LabelBrushRadius = "Brush Radius"

	DescKindCircle    = "Circle"
	DescKindRectangle = "Rectangle"

	DescModeModifyHeightMap = "Modify Height Map"
	DescModeDrawOnMask      = "Draw On Mask"
)

const (
	ShapeCircle = iota
	ShapeRectangle
)

const (
	ModeModifyHeightMap = iota
	ModeDrawOnMask
)

const NumericStep = 0.1
