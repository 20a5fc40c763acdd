package sidebar

import (
	"goterrain/common"
	"goterrain/terrain"
)

type ControlKind int

const (
	ControlDropdown ControlKind = iota
	ControlNumeric
)

// Row is one line of the brush section grid: a label and the control next to it.
type Row struct {
	Label   string
	Field   Field
	Control ControlKind

	// dropdown rows
	Options  []string
	Selected int

	// numeric rows
	Min, Max, Step float32
}

// BrushPanel keeps the shared brush and the brush section widgets in step.
// It knows the widgets only by Field; a Host owns the real ones.
type BrushPanel struct {
	brush *terrain.SharedBrush
	rows  []Row
}

func NewBrushPanel() *BrushPanel {
	return &BrushPanel{
		brush: terrain.NewSharedBrush(terrain.DefaultBrush()),
		rows:  brushRows(),
	}
}

func brushRows() []Row {
	numeric := func(label string, f Field) Row {
		return Row{
			Label:   label,
			Field:   f,
			Control: ControlNumeric,
			Min:     0,
			Max:     common.GetTFloatMax[float32](0),
			Step:    NumericStep,
		}
	}
	return []Row{
		{
			Label:    LabelBrushKind,
			Field:    FieldShape,
			Control:  ControlDropdown,
			Options:  []string{DescKindCircle, DescKindRectangle},
			Selected: ShapeCircle,
		},
		{
			Label:    LabelBrushMode,
			Field:    FieldMode,
			Control:  ControlDropdown,
			Options:  []string{DescModeModifyHeightMap, DescModeDrawOnMask},
			Selected: ModeModifyHeightMap,
		},
		numeric(LabelBrushWidth, FieldWidth),
		numeric(LabelBrushLength, FieldLength),
		numeric(LabelBrushRadius, FieldRadius),
	}
}

// Rows describes the grid in display order.
func (p *BrushPanel) Rows() []Row {
	return append([]Row(nil), p.rows...)
}

// Brush is the handle the terrain tool reads from.
func (p *BrushPanel) Brush() *terrain.SharedBrush {
	return p.brush
}

// SyncToModel pushes the current brush into the widgets.
// Only values are sent; showing or hiding rows per shape is up to the caller.
func (p *BrushPanel) SyncToModel(ui Host) {
	b := p.brush.Load()

	switch k := b.Kind.(type) {
	case terrain.Circle:
		ui.Send(SetSelection{Field: FieldShape, Index: ShapeCircle})
		ui.Send(SetValue{Field: FieldRadius, Value: k.Radius})
	case terrain.Rectangle:
		ui.Send(SetSelection{Field: FieldShape, Index: ShapeRectangle})
		ui.Send(SetValue{Field: FieldWidth, Value: k.Width})
		ui.Send(SetValue{Field: FieldLength, Value: k.Length})
	}

	switch b.Mode.(type) {
	case terrain.ModifyHeightMap:
		ui.Send(SetSelection{Field: FieldMode, Index: ModeModifyHeightMap})
	case terrain.DrawOnMask:
		ui.Send(SetSelection{Field: FieldMode, Index: ModeDrawOnMask})
	}
}

// HandleMessage applies one UI change to the brush and reports whether it wrote anything.
// A dropdown index outside its options panics: the dropdowns only ever offer two.
func (p *BrushPanel) HandleMessage(msg Message) bool {
	return p.brush.Update(func(b *terrain.Brush) bool {
		switch m := msg.(type) {
		case SelectionChanged:
			switch m.Field {
			case FieldShape:
				b.Kind = kindForIndex(m.Index)
				return true
			case FieldMode:
				b.Mode = modeForIndex(m.Index)
				return true
			}
		case ValueChanged:
			switch k := b.Kind.(type) {
			case terrain.Circle:
				if m.Field == FieldRadius {
					k.Radius = m.Value
					b.Kind = k
					return true
				}
			case terrain.Rectangle:
				switch m.Field {
				case FieldLength:
					k.Length = m.Value
					b.Kind = k
					return true
				case FieldWidth:
					k.Width = m.Value
					b.Kind = k
					return true
				}
			}
		}
		return false
	})
}

func kindForIndex(i int) terrain.Kind {
	switch i {
	case ShapeCircle:
		return terrain.DefaultCircle()
	case ShapeRectangle:
		return terrain.DefaultRectangle()
	}
	common.Unreachable("brush kind index %d", i)
	return nil
}

func modeForIndex(i int) terrain.Mode {
	switch i {
	case ModeModifyHeightMap:
		return terrain.DefaultModifyHeightMap()
	case ModeDrawOnMask:
		return terrain.DefaultDrawOnMask()
	}
	common.Unreachable("brush mode index %d", i)
	return nil
}
