package ui

import (
	"github.com/gorustyt/fyne/v2"
	"github.com/gorustyt/fyne/v2/container"
	"github.com/gorustyt/fyne/v2/widget"
	"goterrain/common"
	"goterrain/sidebar"
	"goterrain/terrain"
)

// BrushSection is the fyne rendition of the brush panel grid.
type BrushSection struct {
	c   *fyne.Container
	ctx *Context

	kind   *widget.Select
	mode   *widget.Select
	width  *NumericField
	length *NumericField
	radius *NumericField

	rows map[sidebar.Field]*fyne.Container
	// set while commands are applied so widget callbacks do not echo into the brush
	syncing bool
}

func NewBrushSection(ctx *Context) *BrushSection {
	b := &BrushSection{
		ctx:  ctx,
		c:    container.NewVBox(),
		rows: map[sidebar.Field]*fyne.Container{},
	}
	cfg := ctx.Config().SidebarConfig
	for _, row := range ctx.Panel().Rows() {
		var control fyne.CanvasObject
		switch row.Control {
		case sidebar.ControlDropdown:
			sel := widget.NewSelect(row.Options, b.onSelect(row.Field, row.Options))
			sel.Selected = row.Options[row.Selected]
			b.setSelect(row.Field, sel)
			control = sel
		case sidebar.ControlNumeric:
			n := NewNumericField(row.Min, row.Max, row.Step)
			n.OnChanged = b.onValue(row.Field)
			b.setNumeric(row.Field, n)
			control = n.GetRenderObj()
		}
		label := container.NewGridWrap(fyne.NewSize(cfg.ColumnWidth, cfg.RowHeight), widget.NewLabel(row.Label))
		r := container.NewBorder(nil, nil, label, nil, control)
		b.rows[row.Field] = r
		b.c.Add(r)
	}
	ctx.AppendHost(b)
	ctx.AppendBrushChange(b)
	ctx.AppendAfterInit(ctx.SyncToModel)
	return b
}

func (b *BrushSection) setSelect(f sidebar.Field, s *widget.Select) {
	switch f {
	case sidebar.FieldShape:
		b.kind = s
	case sidebar.FieldMode:
		b.mode = s
	}
}

func (b *BrushSection) setNumeric(f sidebar.Field, n *NumericField) {
	switch f {
	case sidebar.FieldWidth:
		b.width = n
	case sidebar.FieldLength:
		b.length = n
	case sidebar.FieldRadius:
		b.radius = n
	}
}

func (b *BrushSection) onSelect(f sidebar.Field, options []string) func(string) {
	return func(s string) {
		// an emptied dropdown has no index to report
		if b.syncing || s == "" {
			return
		}
		b.ctx.HandleMessage(sidebar.SelectionChanged{Field: f, Index: indexOf(options, s)})
	}
}

func (b *BrushSection) onValue(f sidebar.Field) func(float32) {
	return func(v float32) {
		if b.syncing {
			return
		}
		b.ctx.HandleMessage(sidebar.ValueChanged{Field: f, Value: v})
	}
}

// Send applies one command from the panel to the matching widget.
func (b *BrushSection) Send(cmd sidebar.Command) {
	b.syncing = true
	defer func() { b.syncing = false }()

	switch c := cmd.(type) {
	case sidebar.SetSelection:
		sel := b.selectFor(c.Field)
		common.AssertTrue(sel != nil, "no dropdown for %v", c.Field)
		common.AssertTrue(c.Index >= 0 && c.Index < len(sel.Options), "%v index %d", c.Field, c.Index)
		sel.SetSelected(sel.Options[c.Index])
	case sidebar.SetValue:
		n := b.numericFor(c.Field)
		common.AssertTrue(n != nil, "no numeric field for %v", c.Field)
		n.SetValue(c.Value)
	}
}

// BrushChange keeps only the rows of the current shape visible.
func (b *BrushSection) BrushChange(brush terrain.Brush) {
	_, circle := brush.Kind.(terrain.Circle)
	for f, r := range b.rows {
		switch f {
		case sidebar.FieldRadius:
			setVisible(r, circle)
		case sidebar.FieldWidth, sidebar.FieldLength:
			setVisible(r, !circle)
		}
	}
}

func setVisible(o fyne.CanvasObject, visible bool) {
	if visible {
		o.Show()
	} else {
		o.Hide()
	}
}

func (b *BrushSection) selectFor(f sidebar.Field) *widget.Select {
	switch f {
	case sidebar.FieldShape:
		return b.kind
	case sidebar.FieldMode:
		return b.mode
	}
	return nil
}

func (b *BrushSection) numericFor(f sidebar.Field) *NumericField {
	switch f {
	case sidebar.FieldWidth:
		return b.width
	case sidebar.FieldLength:
		return b.length
	case sidebar.FieldRadius:
		return b.radius
	}
	return nil
}

// Control returns the input widget of a field.
func (b *BrushSection) Control(f sidebar.Field) fyne.CanvasObject {
	if sel := b.selectFor(f); sel != nil {
		return sel
	}
	if n := b.numericFor(f); n != nil {
		return n.Entry
	}
	return nil
}

func (b *BrushSection) GetRenderObj() fyne.CanvasObject {
	return b.c
}
