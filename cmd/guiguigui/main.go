package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/rs/zerolog"

	"github.com/sdpkjc/guiguigui/pkg/action"
	"github.com/sdpkjc/guiguigui/pkg/display"
	"github.com/sdpkjc/guiguigui/pkg/global"
	"github.com/sdpkjc/guiguigui/pkg/logger"
	"github.com/sdpkjc/guiguigui/pkg/macro"
	"github.com/sdpkjc/guiguigui/pkg/mouse"
	"github.com/sdpkjc/guiguigui/pkg/window"
)

func main() {
	scriptPath := flag.String("script", "", "run a macro script (YAML)")
	listDisplays := flag.Bool("displays", false, "list connected displays")
	listWindows := flag.Bool("windows", false, "list top-level windows")
	cursor := flag.Bool("position", false, "print the current cursor position")
	keepGoing := flag.Bool("continue-on-error", false, "run remaining steps after a step fails")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	logLevel := zerolog.InfoLevel
	if *debug {
		logLevel = zerolog.DebugLevel
	}

	log, err := logger.NewLogger(
		logger.WithConsole(),
		logger.WithLevel(logLevel),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()
	global.SetLogger(log)

	log.Debug("Starting guiguigui",
		"pid", os.Getpid(),
		"os", runtime.GOOS,
		"arch", runtime.GOARCH)

	switch {
	case *cursor:
		pos, err := mouse.Position()
		if err != nil {
			log.Fatal("Failed to query cursor position", err)
		}
		fmt.Printf("%d,%d\n", pos.X, pos.Y)

	case *listDisplays:
		displays, err := display.List()
		if err != nil {
			log.Fatal("Failed to list displays", err)
		}
		for _, d := range displays {
			primary := ""
			if d.Primary {
				primary = " (primary)"
			}
			fmt.Printf("%d\t%s\t%dx%d+%d+%d\tscale %.2f%s\n",
				d.ID, d.Name,
				d.Bounds.Width, d.Bounds.Height, d.Bounds.X, d.Bounds.Y,
				d.Scale, primary)
		}

	case *listWindows:
		windows, err := window.List()
		if err != nil {
			log.Fatal("Failed to list windows", err)
		}
		for _, w := range windows {
			fmt.Printf("%s\t%d\t%s\t%s\n", w.ID, w.PID, w.App, w.Title)
		}

	case *scriptPath != "":
		runScript(log, *scriptPath, *keepGoing)

	default:
		flag.Usage()
		os.Exit(2)
	}
}

func runScript(log *logger.Logger, path string, keepGoing bool) {
	script, actions, err := action.LoadScript(path)
	if err != nil {
		log.Fatal("Failed to load script", err, "path", path)
	}

	opts := []macro.Option{macro.WithLogger(log)}
	if keepGoing {
		opts = append(opts, macro.ContinueOnError())
	}

	m := macro.New(script.Name, opts...)
	for _, a := range actions {
		m.Add(a)
	}

	log.Info("Running macro",
		"name", script.Name,
		"steps", m.Len(),
		"estimated", m.Estimated().String())

	if err := m.Run(); err != nil {
		log.Fatal("Macro failed", err, "name", script.Name, "state", m.State().String())
	}
	log.Info("Macro finished", "name", script.Name, "state", m.State().String())
}
