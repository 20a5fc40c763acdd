package config

const (
	HostFyne  = "fyne"
	HostImgui = "imgui"

	ThemeDark  = "dark"
	ThemeLight = "light"
)

const (
	ColumnWidth = 140
	RowHeight   = 25
)

const (
	MenuFile        = "File"
	MenuEdit        = "Edit"
	MenuSettings    = "Settings"
	MenuCopyBrush   = "Copy Brush"
	MenuPasteBrush  = "Paste Brush"
	MenuResetBrush  = "Reset Brush"
	MenuTheme       = "Theme"
	SectionBrush    = "Brush"
	SectionTerrain  = "Terrain Tool"
	PreviewNotReady = "waiting for brush..."
)
