package main

// Configuration mirrors the teacher's flag-based Configuration/InitConfig
// (config.go), trimmed to the flags this core's feature set actually
// drives: no LSP/Ollama endpoints (§ this build carries no such
// features), but the same gutter/tab/leader/logging knobs plus the
// colour-scheme path §6 hot-reloads.

import (
	"flag"
	"os"
	"path/filepath"
)

// Config holds all adjustable settings for the editor.
type Config struct {
	GutterWidth      int
	DefaultTabWidth  int
	LeaderKey        rune
	UseLogFile       bool
	LogFilePath      string
	NumLogsInWindow  int
	ColorSchemePath  string
	BuildCommand     string
	DevMode          bool
	ShowColors       bool
	ShowInfo         bool
	ShowVersion      bool
}

// ParseConfig sets up command-line flags and parses them into a Config.
func ParseConfig() Config {
	var c Config
	var leaderKey string

	flag.IntVar(&c.GutterWidth, "gutter-width", 7, "Width of the gutter")
	flag.IntVar(&c.DefaultTabWidth, "tab-width", 4, "Default tab width")
	flag.StringVar(&leaderKey, "leader", "\\", "Leader key")
	flag.BoolVar(&c.UseLogFile, "log", false, "Enable logging to file")
	flag.StringVar(&c.LogFilePath, "log-path", filepath.Join(os.TempDir(), "cmantic-debug.log"), "Path to log file")
	flag.IntVar(&c.NumLogsInWindow, "num-logs", 10, "Number of logs in debug window")
	flag.StringVar(&c.ColorSchemePath, "colorscheme", "", "Path to a .cmantic-colorscheme file to load and hot-reload")
	flag.StringVar(&c.BuildCommand, "build-cmd", "", "Shell command run by the build action")
	flag.BoolVar(&c.DevMode, "dev", false, "Enable development mode")
	flag.BoolVar(&c.ShowColors, "colors", false, "Show the active colour scheme and exit")
	flag.BoolVar(&c.ShowInfo, "info", false, "Show language/file-type associations and exit")
	flag.BoolVar(&c.ShowVersion, "version", false, "Show version and exit")
	flag.Parse()

	if len(leaderKey) > 0 {
		c.LeaderKey = rune(leaderKey[0])
	}
	return c
}
