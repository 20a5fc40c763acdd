package ui

import (
	"fmt"
	"github.com/gorustyt/fyne/v2"
	"github.com/gorustyt/fyne/v2/container"
	"github.com/gorustyt/fyne/v2/dialog"
	"github.com/gorustyt/fyne/v2/theme"
	"github.com/gorustyt/fyne/v2/widget"
	"go.uber.org/zap"
	"goterrain/common/message"
	"goterrain/demo/config"
	"goterrain/terrain"
)

func SetMainMenu(a fyne.App, w fyne.Window, ctx *Context) {
	copyItem := fyne.NewMenuItem(config.MenuCopyBrush, func() {
		if err := CopyBrush(ctx, w.Clipboard()); err != nil {
			dialog.ShowError(err, w)
		}
	})
	pasteItem := fyne.NewMenuItem(config.MenuPasteBrush, func() {
		if err := PasteBrush(ctx, w.Clipboard()); err != nil {
			dialog.ShowError(err, w)
		}
	})
	resetItem := fyne.NewMenuItem(config.MenuResetBrush, func() {
		ctx.ApplyBrush(terrain.DefaultBrush())
	})
	edit := fyne.NewMenu(config.MenuEdit, copyItem, pasteItem, fyne.NewMenuItemSeparator(), resetItem)

	label := widget.NewLabel("setting theme")
	label.Alignment = fyne.TextAlignCenter
	themes := container.NewGridWithColumns(2,
		widget.NewButton("Dark", func() {
			ApplyTheme(a, config.ThemeDark)
		}),
		widget.NewButton("Light", func() {
			ApplyTheme(a, config.ThemeLight)
		}),
	)
	themeItem := fyne.NewMenuItem(config.MenuTheme, func() {
		w1 := a.NewWindow("Theme Settings")
		w1.SetContent(container.NewVBox(
			label,
			themes,
		))
		w1.Resize(fyne.NewSize(200, 200))
		w1.Show()
	})
	settingMenu := fyne.NewMenu(config.MenuSettings, themeItem)

	// a quit item will be appended to our first (File) menu
	file := fyne.NewMenu(config.MenuFile)
	w.SetMainMenu(fyne.NewMainMenu(file, edit, settingMenu))
}

func ApplyTheme(a fyne.App, name string) {
	switch name {
	case config.ThemeLight:
		a.Settings().SetTheme(theme.LightTheme())
	default:
		a.Settings().SetTheme(theme.DarkTheme())
	}
}

func CopyBrush(ctx *Context, cb fyne.Clipboard) error {
	text, err := message.MarshalBrushText(ctx.Panel().Brush().Load())
	if err != nil {
		return fmt.Errorf("copy brush: %w", err)
	}
	cb.SetContent(text)
	ctx.Logger().Debug("brush copied")
	return nil
}

func PasteBrush(ctx *Context, cb fyne.Clipboard) error {
	b, err := message.UnmarshalBrushText(cb.Content())
	if err != nil {
		return fmt.Errorf("paste brush: %w", err)
	}
	ctx.ApplyBrush(b)
	ctx.Logger().Info("brush pasted", zap.Stringer("brush", b))
	return nil
}
