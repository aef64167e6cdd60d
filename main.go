package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"kit/internal/clipboard"
	"kit/internal/config"
	"kit/internal/kit"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"golang.org/x/term"
)

func main() {
	toolFlag := flag.String("tool", "", "open the named tool directly")
	configFlag := flag.String("config", "", "config file (default "+config.ConfigPath()+")")
	logFlag := flag.String("log", "", "write logs to this file")
	writeConfig := flag.Bool("write-config", false, "write the current config to disk and exit")
	list := flag.Bool("list", false, "list tool names and exit")
	flag.Parse()

	path := *configFlag
	if path == "" {
		path = config.ConfigPath()
	}
	cfg, cfgErr := config.LoadFile(path)
	if *logFlag != "" {
		cfg.Log.File = *logFlag
	}

	logger, err := newLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	kit.SetLogger(logger)

	if cfgErr != nil {
		logger.Warn("config load failed, using defaults", zap.String("path", path), zap.Error(cfgErr))
	}

	if *writeConfig {
		if err := cfg.SaveFile(path); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(path)
		return
	}

	model, err := kit.NewModel(cfg, clipboard.System{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *list {
		fmt.Println(strings.Join(model.Slugs(), "\n"))
		return
	}

	if *toolFlag != "" {
		if err := model.OpenTool(*toolFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v (try -list)\n", err)
			os.Exit(1)
		}
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: kit needs an interactive terminal")
		os.Exit(1)
	}
	if !clipboard.Available() {
		logger.Warn("no clipboard utility found, copy is disabled")
	}

	p := tea.NewProgram(model, tea.WithAltScreen())

	logger.Info("kit started", zap.String("tool", *toolFlag))
	if _, err := p.Run(); err != nil {
		logger.Error("program exited", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
	logger.Info("kit stopped")
}

// newLogger writes JSON logs to the configured file. The terminal belongs to
// the UI, so without a file nothing is logged.
func newLogger(c *config.Log) (*zap.Logger, error) {
	if c.File == "" {
		return zap.NewNop(), nil
	}
	level, err := zap.ParseAtomicLevel(c.Level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	zc := zap.NewProductionConfig()
	zc.Level = level
	zc.OutputPaths = []string{c.File}
	zc.ErrorOutputPaths = []string{c.File}
	return zc.Build()
}
