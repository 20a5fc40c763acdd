package terrain

import (
	"fmt"
	"goterrain/common"
)

// Kind is the footprint of a brush: Circle or Rectangle.
type Kind interface {
	isKind()
}

type Circle struct {
	Radius float32
}

type Rectangle struct {
	Width  float32
	Length float32
}

func (Circle) isKind()    {}
func (Rectangle) isKind() {}

// Mode is what a brush does to the terrain under it: ModifyHeightMap or DrawOnMask.
type Mode interface {
	isMode()
}

type ModifyHeightMap struct {
	Amount float32
}

type DrawOnMask struct {
	Layer uint32
	Alpha float32
}

func (ModifyHeightMap) isMode() {}
func (DrawOnMask) isMode()      {}

// Brush is the parameter bag a terrain tool reads while sculpting.
// Center is placed by the tool itself (cursor raycast) and never by the sidebar.
type Brush struct {
	Center common.Vec3
	Kind   Kind
	Mode   Mode
}

func DefaultCircle() Circle {
	return Circle{Radius: 1.0}
}

func DefaultRectangle() Rectangle {
	return Rectangle{Width: 0.5, Length: 0.5}
}

func DefaultModifyHeightMap() ModifyHeightMap {
	return ModifyHeightMap{Amount: 0.25}
}

func DefaultDrawOnMask() DrawOnMask {
	return DrawOnMask{Layer: 0, Alpha: 1.0}
}

func DefaultBrush() Brush {
	return Brush{
		Kind: DefaultCircle(),
		Mode: DefaultModifyHeightMap(),
	}
}

func (b Brush) String() string {
	var kind, mode string
	switch k := b.Kind.(type) {
	case Circle:
		kind = fmt.Sprintf("circle r=%.2f", k.Radius)
	case Rectangle:
		kind = fmt.Sprintf("rect %.2fx%.2f", k.Width, k.Length)
	default:
		kind = "none"
	}
	switch m := b.Mode.(type) {
	case ModifyHeightMap:
		mode = fmt.Sprintf("height %+.2f", m.Amount)
	case DrawOnMask:
		mode = fmt.Sprintf("mask #%d a=%.2f", m.Layer, m.Alpha)
	default:
		mode = "none"
	}
	return fmt.Sprintf("%s, %s @ (%.1f, %.1f, %.1f)", kind, mode, b.Center.X(), b.Center.Y(), b.Center.Z())
}
