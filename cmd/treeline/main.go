package main

import (
	_ "embed"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/treeline/internal/app"
	"github.com/marcus/treeline/internal/cache"
	"github.com/marcus/treeline/internal/config"
	"github.com/marcus/treeline/internal/keymap"
	"github.com/marcus/treeline/internal/tree"
	"github.com/marcus/treeline/internal/watcher"
)

// Version is set at build time via ldflags
var Version = ""

//go:embed treelinerc
var defaultRC string

var (
	configPath  = flag.String("config", "", "path to the startup command file")
	noCache     = flag.Bool("no-cache", false, "do not load or save session state")
	selectPath  = flag.String("select", "", "reveal and select this path at startup")
	execCmds    = flag.String("exec", "", "commands to run after the startup file")
	debugFlag   = flag.Bool("debug", false, "enable debug logging")
	versionFlag = flag.Bool("version", false, "print version and exit")
)

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: treeline [options] [directory]\n\n")
		fmt.Fprintf(os.Stderr, "An interactive file tree side panel for the terminal.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()

	if *versionFlag {
		fmt.Printf("treeline version %s\n", effectiveVersion(Version))
		os.Exit(0)
	}

	logLevel := slog.LevelInfo
	if *debugFlag {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	dir := "."
	if flag.NArg() > 0 {
		dir = flag.Arg(0)
	}
	root, err := filepath.Abs(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to resolve directory: %v\n", err)
		os.Exit(1)
	}
	if err := os.Chdir(root); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to enter directory: %v\n", err)
		os.Exit(1)
	}

	cfg := config.Default()
	keys := keymap.New()

	cachePath := cache.DefaultPath()
	var rec cache.Record
	if !*noCache && cachePath != "" {
		rec, err = cache.Load(cachePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load session state: %v\n", err)
			os.Exit(1)
		}
	}

	t := tree.New(root)
	t.ExtendExpanded(rec.ExpandedPaths)

	watch, err := watcher.New(watcher.DefaultDebounce)
	if err != nil {
		logger.Warn("filesystem watching disabled", "err", err)
		watch = nil
	} else {
		defer watch.Close()
	}

	model := app.New(cfg, t, keys, watch, logger)

	script, err := loadScript(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read startup file: %v\n", err)
		os.Exit(1)
	}
	model.ApplyScript(script)
	if *execCmds != "" {
		model.ApplyScript(*execCmds)
	}

	if *selectPath != "" {
		t.ExpandToPath(*selectPath)
	}
	t.Update(cfg)
	if rec.SelectedPath != "" {
		t.SelectPath(rec.SelectedPath)
	}
	if *selectPath != "" {
		t.SelectPath(*selectPath)
	}

	// A quit in the startup script exits before the UI ever starts.
	if !model.Quitting() {
		p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
		if _, err := p.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error running application: %v\n", err)
			os.Exit(1)
		}
	}

	if *noCache || cachePath == "" {
		return
	}
	out := cache.Record{ExpandedPaths: t.Expanded().List()}
	if i := t.SelectedIndex(); i >= 0 {
		out.SelectedPath = t.Lines()[i].Path
	}
	if err := cache.Save(cachePath, out); err != nil {
		logger.Warn("could not save session state", "err", err)
	}
}

// loadScript reads the startup command file. With no explicit path, the
// default location is used and seeded with the built-in defaults on
// first run; an explicit path that cannot be read is an error.
func loadScript(path string) (string, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return defaultRC, nil
	}
	path = filepath.Join(home, ".config", "treeline", "treelinerc")
	data, err := os.ReadFile(path)
	if err == nil {
		return string(data), nil
	}
	if !os.IsNotExist(err) {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err == nil {
		_ = os.WriteFile(path, []byte(defaultRC), 0644)
	}
	return defaultRC, nil
}

// effectiveVersion returns the version string, with fallback to build info.
func effectiveVersion(v string) string {
	if v != "" {
		return v
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" && setting.Value != "" {
			rev := setting.Value
			if len(rev) > 12 {
				rev = rev[:12]
			}
			return "devel+" + rev
		}
	}
	return "devel"
}
