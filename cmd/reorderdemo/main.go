// Command reorderdemo shows a sectioned list whose rows can be reordered by
// holding the mouse button on a row and dragging it.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/xqrs/tview-reorder"
	"github.com/xqrs/tview-reorder/logging"
	"github.com/xqrs/tview-reorder/reorder"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	logPath := flag.String("log", "", "append logs to this file")
	flag.Parse()

	if err := run(*configPath, *logPath); err != nil {
		fmt.Fprintln(os.Stderr, "reorderdemo:", err)
		os.Exit(1)
	}
}

func run(configPath, logPath string) error {
	cfg := DefaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = LoadConfig(configPath); err != nil {
			return err
		}
	}

	logger, closeLog, err := openLog(logPath, cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	app := tview.NewApplication().EnableMouse(true)
	root, err := newDemo(app, cfg, logger)
	if err != nil {
		return err
	}
	app.SetRoot(root)

	logger.Info("demo started", "sections", len(cfg.Sections))
	return app.Run()
}

// openLog returns a text slog logger appending to path, or a no-op logger
// when path is empty.
func openLog(path string, cfg LogConfig) (reorder.Logger, func(), error) {
	if path == "" {
		return logging.NewNop(), func() {}, nil
	}
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, nil, err
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	handler := slog.NewTextHandler(file, &slog.HandlerOptions{Level: level})
	return logging.NewSlog(slog.New(handler)), func() { _ = file.Close() }, nil
}
