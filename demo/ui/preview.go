package ui

import (
	"context"
	"github.com/gorustyt/fyne/v2"
	"github.com/gorustyt/fyne/v2/data/binding"
	"github.com/gorustyt/fyne/v2/widget"
	"goterrain/demo/config"
	"goterrain/terrain"
	"time"
)

// BrushPreview reads the brush from its own goroutine, the way the terrain tool's
// update loop does, and shows what it saw.
type BrushPreview struct {
	brush    *terrain.SharedBrush
	interval time.Duration
	data     binding.String
	label    *widget.Label
	last     string
}

func NewBrushPreview(ctx *Context) *BrushPreview {
	p := &BrushPreview{
		brush:    ctx.Panel().Brush(),
		interval: ctx.Config().SidebarConfig.PreviewInterval,
		data:     binding.NewString(),
	}
	_ = p.data.Set(config.PreviewNotReady)
	p.label = widget.NewLabelWithData(p.data)
	p.label.Wrapping = fyne.TextWrapWord
	return p
}

func (p *BrushPreview) Run(ctx context.Context) {
	t := time.NewTicker(p.interval)
	defer t.Stop()
	p.poll()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			p.poll()
		}
	}
}

func (p *BrushPreview) poll() {
	s := p.brush.Load().String()
	if s == p.last {
		return
	}
	p.last = s
	_ = p.data.Set(s)
}

func (p *BrushPreview) Text() string {
	s, _ := p.data.Get()
	return s
}

func (p *BrushPreview) GetRenderObj() fyne.CanvasObject {
	return p.label
}
