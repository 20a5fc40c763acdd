package imgui

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"goterrain/demo/config"
	"goterrain/sidebar"
	"goterrain/terrain"
)

func newTestWindow() *BrushWindow {
	return NewBrushWindow(config.NewConfig(), zap.NewNop(), sidebar.NewBrushPanel())
}

func TestBrushWindowInitialSync(t *testing.T) {
	w := newTestWindow()
	assert.Equal(t, int32(0), *w.selected[sidebar.FieldShape])
	assert.Equal(t, int32(0), *w.selected[sidebar.FieldMode])
	assert.Equal(t, float32(1), *w.values[sidebar.FieldRadius])
	assert.Equal(t, float32(0), *w.values[sidebar.FieldWidth])
}

func TestBrushWindowComboChange(t *testing.T) {
	w := newTestWindow()

	*w.selected[sidebar.FieldShape] = 1
	w.onSelect(sidebar.FieldShape)()
	assert.Equal(t, terrain.DefaultRectangle(), w.panel.Brush().Load().Kind)
	assert.Equal(t, float32(0.5), *w.values[sidebar.FieldWidth])
	assert.Equal(t, float32(0.5), *w.values[sidebar.FieldLength])

	*w.selected[sidebar.FieldMode] = 1
	w.onSelect(sidebar.FieldMode)()
	assert.Equal(t, terrain.DefaultDrawOnMask(), w.panel.Brush().Load().Mode)
}

func TestBrushWindowInputChange(t *testing.T) {
	w := newTestWindow()

	*w.values[sidebar.FieldRadius] = 2.5
	w.onValue(sidebar.FieldRadius)()
	assert.Equal(t, terrain.Circle{Radius: 2.5}, w.panel.Brush().Load().Kind)

	*w.values[sidebar.FieldRadius] = -1
	w.onValue(sidebar.FieldRadius)()
	assert.Equal(t, float32(0), *w.values[sidebar.FieldRadius])
	assert.Equal(t, terrain.Circle{Radius: 0}, w.panel.Brush().Load().Kind)

	*w.values[sidebar.FieldRadius] = float32(math.NaN())
	w.onValue(sidebar.FieldRadius)()
	assert.Equal(t, terrain.Circle{Radius: 0}, w.panel.Brush().Load().Kind)

	*w.values[sidebar.FieldWidth] = 7
	w.onValue(sidebar.FieldWidth)()
	assert.Equal(t, terrain.Circle{Radius: 0}, w.panel.Brush().Load().Kind)
}

func TestBrushWindowSendPanicsOnUnknownField(t *testing.T) {
	w := newTestWindow()
	assert.Panics(t, func() { w.Send(sidebar.SetValue{Field: sidebar.FieldShape, Value: 1}) })
	assert.Panics(t, func() { w.Send(sidebar.SetSelection{Field: sidebar.FieldRadius, Index: 1}) })
}

func TestBrushWindowInputSteps(t *testing.T) {
	w := newTestWindow()
	for _, f := range []sidebar.Field{sidebar.FieldWidth, sidebar.FieldLength, sidebar.FieldRadius} {
		assert.Equal(t, float32(sidebar.NumericStep), w.bounds[f].step, f.String())
		assert.Equal(t, float32(0), w.bounds[f].min, f.String())
	}
	assert.Equal(t, "1.25", fmt.Sprintf(inputFormat, float32(1.25)))
}
