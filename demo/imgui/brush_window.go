package imgui

import (
	"github.com/AllenDang/giu"
	"go.uber.org/zap"
	"goterrain/common"
	"goterrain/demo/config"
	"goterrain/sidebar"
)

// BrushWindow draws the brush panel with giu. Immediate mode keeps no widgets,
// so the window owns the values the widgets point at and commands write into them.
type BrushWindow struct {
	cfg   *config.Config
	log   *zap.Logger
	panel *sidebar.BrushPanel
	rows  []sidebar.Row

	selected map[sidebar.Field]*int32
	values   map[sidebar.Field]*float32
	bounds   map[sidebar.Field]inputBounds
}

type inputBounds struct {
	min, max, step float32
}

// matches the precision Brush.String reports
const inputFormat = "%.2f"

func NewBrushWindow(cfg *config.Config, log *zap.Logger, panel *sidebar.BrushPanel) *BrushWindow {
	w := &BrushWindow{
		cfg:      cfg,
		log:      log,
		panel:    panel,
		rows:     panel.Rows(),
		selected: map[sidebar.Field]*int32{},
		values:   map[sidebar.Field]*float32{},
		bounds:   map[sidebar.Field]inputBounds{},
	}
	for _, r := range w.rows {
		switch r.Control {
		case sidebar.ControlDropdown:
			sel := int32(r.Selected)
			w.selected[r.Field] = &sel
		case sidebar.ControlNumeric:
			v := r.Min
			w.values[r.Field] = &v
			w.bounds[r.Field] = inputBounds{min: r.Min, max: r.Max, step: r.Step}
		}
	}
	panel.SyncToModel(w)
	return w
}

func (w *BrushWindow) Send(cmd sidebar.Command) {
	switch c := cmd.(type) {
	case sidebar.SetSelection:
		sel, ok := w.selected[c.Field]
		common.AssertTrue(ok, "no combo for %v", c.Field)
		*sel = int32(c.Index)
	case sidebar.SetValue:
		v, ok := w.values[c.Field]
		common.AssertTrue(ok, "no input for %v", c.Field)
		*v = c.Value
	}
}

func (w *BrushWindow) onSelect(f sidebar.Field) func() {
	return func() {
		w.handle(sidebar.SelectionChanged{Field: f, Index: int(*w.selected[f])})
	}
}

func (w *BrushWindow) onValue(f sidebar.Field) func() {
	return func() {
		v, b := w.values[f], w.bounds[f]
		if !common.IsFinite(*v) {
			*v = b.min
		}
		*v = common.Clamp(*v, b.min, b.max)
		w.handle(sidebar.ValueChanged{Field: f, Value: *v})
	}
}

func (w *BrushWindow) handle(msg sidebar.Message) {
	if !w.panel.HandleMessage(msg) {
		return
	}
	w.log.Debug("brush changed", zap.Stringer("brush", w.panel.Brush().Load()))
	if _, ok := msg.(sidebar.SelectionChanged); ok {
		w.panel.SyncToModel(w)
	}
}

func (w *BrushWindow) control(r sidebar.Row) giu.Widget {
	id := "##" + r.Field.String()
	switch r.Control {
	case sidebar.ControlDropdown:
		sel := w.selected[r.Field]
		return giu.Combo(id, r.Options[*sel], r.Options, sel).Size(-1).OnChange(w.onSelect(r.Field))
	default:
		return giu.InputFloat(w.values[r.Field]).
			Label(id).
			Format(inputFormat).
			StepSize(w.bounds[r.Field].step).
			Size(-1).
			OnChange(w.onValue(r.Field))
	}
}

func (w *BrushWindow) loop() {
	rows := make([]*giu.TableRowWidget, 0, len(w.rows))
	for _, r := range w.rows {
		rows = append(rows, giu.TableRow(giu.Label(r.Label), w.control(r)))
	}
	giu.SingleWindow().Layout(
		giu.Label(config.SectionBrush),
		giu.Table().
			Columns(
				giu.TableColumn("label").Flags(giu.TableColumnFlagsWidthFixed).InnerWidthOrWeight(w.cfg.SidebarConfig.ColumnWidth),
				giu.TableColumn("control").Flags(giu.TableColumnFlagsWidthStretch),
			).
			Rows(rows...),
		giu.Separator(),
		giu.Label(config.SectionTerrain),
		giu.Label(w.panel.Brush().Load().String()),
	)
}

// Run blocks until the window is closed.
func Run(cfg *config.Config, log *zap.Logger, panel *sidebar.BrushPanel) {
	bw := NewBrushWindow(cfg, log, panel)
	wnd := giu.NewMasterWindow(cfg.WindowConfig.Title, cfg.WindowConfig.Width, cfg.WindowConfig.Height, 0)
	log.Info("imgui host started")
	wnd.Run(bw.loop)
	log.Info("imgui host stopped")
}
