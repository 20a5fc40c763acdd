package terrain

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"goterrain/common"
)

func TestDefaultBrush(t *testing.T) {
	b := DefaultBrush()
	assert.Equal(t, Circle{Radius: 1.0}, b.Kind)
	assert.Equal(t, ModifyHeightMap{Amount: 0.25}, b.Mode)
	assert.Equal(t, common.Vec3{}, b.Center)
}

func TestDefaultVariants(t *testing.T) {
	assert.Equal(t, Rectangle{Width: 0.5, Length: 0.5}, DefaultRectangle())
	assert.Equal(t, DrawOnMask{Layer: 0, Alpha: 1.0}, DefaultDrawOnMask())
}

func TestBrushString(t *testing.T) {
	b := Brush{
		Center: common.Vec3{1, 2, 3},
		Kind:   Rectangle{Width: 1, Length: 2},
		Mode:   DrawOnMask{Layer: 3, Alpha: 0.5},
	}
	assert.Equal(t, "rect 1.00x2.00, mask #3 a=0.50 @ (1.0, 2.0, 3.0)", b.String())
	assert.Equal(t, "circle r=1.00, height +0.25 @ (0.0, 0.0, 0.0)", DefaultBrush().String())
}

func TestSharedBrushUpdate(t *testing.T) {
	s := NewSharedBrush(DefaultBrush())

	changed := s.Update(func(b *Brush) bool {
		b.Kind = DefaultRectangle()
		return true
	})
	assert.True(t, changed)
	assert.Equal(t, DefaultRectangle(), s.Load().Kind)

	changed = s.Update(func(b *Brush) bool { return false })
	assert.False(t, changed)
	assert.Equal(t, DefaultRectangle(), s.Load().Kind)
}

func TestSharedBrushLoadIsCopy(t *testing.T) {
	s := NewSharedBrush(DefaultBrush())
	b := s.Load()
	b.Center = common.Vec3{5, 5, 5}
	b.Kind = DefaultRectangle()
	assert.Equal(t, DefaultBrush(), s.Load())
}

func TestSharedBrushConcurrentAccess(t *testing.T) {
	s := NewSharedBrush(DefaultBrush())
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				s.Update(func(b *Brush) bool {
					b.Center = common.Vec3{float32(i), float32(j), 0}
					return true
				})
			}
		}(i)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				b := s.Load()
				assert.NotNil(t, b.Kind)
				assert.NotNil(t, b.Mode)
			}
		}()
	}
	wg.Wait()

	s.Store(Brush{Kind: DefaultCircle(), Mode: DefaultDrawOnMask()})
	assert.Equal(t, DefaultDrawOnMask(), s.Load().Mode)
}
