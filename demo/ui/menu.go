package ui

import (
	"context"
	"github.com/gorustyt/fyne/v2"
	"github.com/gorustyt/fyne/v2/container"
	"github.com/gorustyt/fyne/v2/widget"
	"go.uber.org/zap"
	"goterrain/demo/config"
	"goterrain/sidebar"
	"goterrain/terrain"
)

func SetUi(a fyne.App, w fyne.Window, cfg *config.Config, log *zap.Logger) {
	ctx := NewContext(cfg, log, sidebar.NewBrushPanel())
	section := NewBrushSection(ctx)
	preview := NewBrushPreview(ctx)

	root := container.NewVBox(
		widget.NewLabel(config.SectionBrush),
		section.GetRenderObj(),
		widget.NewSeparator(),
		widget.NewLabel(config.SectionTerrain),
		preview.GetRenderObj(),
	)
	s := container.NewVScroll(root)
	s.SetMinSize(fyne.NewSize(cfg.SidebarConfig.ColumnWidth*2, float32(cfg.WindowConfig.Height)))

	runCtx, cancel := context.WithCancel(context.Background())
	go preview.Run(runCtx)
	w.SetOnClosed(func() {
		cancel()
		log.Info("editor window closed")
	})

	ctx.AfterInit()
	SetMainMenu(a, w, ctx)
	w.SetContent(container.NewBorder(nil, nil, s, nil))
}

type BrushChange interface {
	BrushChange(b terrain.Brush)
}

type Context struct {
	cfg   *config.Config
	log   *zap.Logger
	panel *sidebar.BrushPanel

	hosts        []sidebar.Host
	BrushChanges []BrushChange
	afterInit    []func()
}

func NewContext(cfg *config.Config, log *zap.Logger, panel *sidebar.BrushPanel) *Context {
	return &Context{
		cfg:   cfg,
		log:   log,
		panel: panel,
	}
}

func (s *Context) AppendHost(hs ...sidebar.Host) {
	s.hosts = append(s.hosts, hs...)
}

func (s *Context) AppendBrushChange(ss ...BrushChange) {
	s.BrushChanges = append(s.BrushChanges, ss...)
}

func (s *Context) AppendAfterInit(ss ...func()) {
	s.afterInit = append(s.afterInit, ss...)
}

// HandleMessage forwards a widget change to the panel and tells listeners if the brush moved.
// A new shape or mode comes with reset values, so the widgets are resynced to show them.
func (s *Context) HandleMessage(msg sidebar.Message) {
	if !s.panel.HandleMessage(msg) {
		return
	}
	if _, ok := msg.(sidebar.SelectionChanged); ok {
		s.SyncToModel()
		return
	}
	s.OnBrushChange()
}

func (s *Context) OnBrushChange() {
	b := s.panel.Brush().Load()
	s.log.Debug("brush changed", zap.Stringer("brush", b))
	for _, v := range s.BrushChanges {
		v.BrushChange(b)
	}
}

// SyncToModel pushes the brush into every registered host.
func (s *Context) SyncToModel() {
	for _, h := range s.hosts {
		s.panel.SyncToModel(h)
	}
	s.OnBrushChange()
}

// ApplyBrush replaces shape and mode from outside the widgets (paste, reset)
// and resyncs them. The center stays where the terrain tool put it.
func (s *Context) ApplyBrush(b terrain.Brush) {
	s.panel.Brush().Update(func(cur *terrain.Brush) bool {
		cur.Kind = b.Kind
		cur.Mode = b.Mode
		return true
	})
	s.SyncToModel()
}

func (s *Context) Config() *config.Config {
	return s.cfg
}

func (s *Context) Logger() *zap.Logger {
	return s.log
}

func (s *Context) Panel() *sidebar.BrushPanel {
	return s.panel
}

func (s *Context) AfterInit() {
	for _, v := range s.afterInit {
		v()
	}
}
