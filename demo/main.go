package main

import (
	"fmt"
	"github.com/gorustyt/fyne/v2"
	"github.com/gorustyt/fyne/v2/app"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"goterrain/common"
	"goterrain/demo/config"
	"goterrain/demo/imgui"
	"goterrain/demo/ui"
	"goterrain/sidebar"
	"os"
)

var version = "dev"

var (
	settingsPath string
	hostFlag     string
	logFile      string
	debug        bool
)

var rootCmd = &cobra.Command{
	Use:           "goterrain",
	Short:         "Terrain brush editor",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(settingsPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("host") {
			cfg.WindowConfig.Host = hostFlag
		}
		if cmd.Flags().Changed("log-file") {
			cfg.LogConfig.File = logFile
		}
		if debug {
			cfg.LogConfig.Debug = true
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		log := common.NewLogger(common.LogOptions{
			File:       cfg.LogConfig.File,
			MaxSizeMB:  cfg.LogConfig.MaxSizeMB,
			MaxBackups: cfg.LogConfig.MaxBackups,
			MaxAgeDays: cfg.LogConfig.MaxAgeDays,
			Debug:      cfg.LogConfig.Debug,
		})
		defer log.Sync()
		log.Info("starting editor",
			zap.String("version", version),
			zap.String("host", cfg.WindowConfig.Host),
			zap.String("settings", settingsPath))

		switch cfg.WindowConfig.Host {
		case config.HostImgui:
			imgui.Run(cfg, log, sidebar.NewBrushPanel())
		default:
			runFyne(cfg, log)
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("goterrain version %s\n", version)
	},
}

func runFyne(cfg *config.Config, log *zap.Logger) {
	a := app.NewWithID("goterrain")
	ui.ApplyTheme(a, cfg.WindowConfig.Theme)
	w := a.NewWindow(cfg.WindowConfig.Title)
	ui.SetUi(a, w, cfg, log)
	w.Resize(fyne.NewSize(float32(cfg.WindowConfig.Width), float32(cfg.WindowConfig.Height)))
	w.ShowAndRun()
}

func init() {
	rootCmd.Flags().StringVar(&settingsPath, "config", "editor.yaml", "settings file")
	rootCmd.Flags().StringVar(&hostFlag, "host", config.HostFyne, "ui host: fyne or imgui")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "rolling log file")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "log brush changes")
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
