package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"

	"github.com/funvibe/numtower/internal/logging"
	"github.com/funvibe/numtower/pkg/tower"
)

const (
	colorGreen = "\x1b[32m"
	colorRed   = "\x1b[31m"
	colorReset = "\x1b[0m"
)

// Run is the driver entry point. With arguments it evaluates them as a single
// expression and exits; without, it reads expressions line by line.
func Run(args []string, in io.Reader, out io.Writer) int {
	cfg, err := LoadConfig(ConfigFileName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "numtower: %v\n", err)
		return 1
	}

	log, err := logging.New(logging.Config{Level: cfg.LogLevel, OutputPaths: []string{"stderr"}})
	if err != nil {
		fmt.Fprintf(os.Stderr, "numtower: %v\n", err)
		return 1
	}
	defer log.Sync() //nolint:errcheck

	session := uuid.NewString()
	log.Debug("session started", zap.String("session", session))

	tw := tower.NewEmpty(tower.WithLogger(log))
	for _, name := range cfg.Packages {
		if !tw.InstallPackage(name) {
			log.Warn("unknown package in config", zap.String("package", name))
		}
	}

	useColor := shouldColor(cfg.Color, out)

	if len(args) > 0 {
		return evalAndPrint(tw, strings.Join(args, " "), out, useColor)
	}

	interactive := false
	if f, ok := in.(*os.File); ok {
		interactive = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}

	scanner := bufio.NewScanner(in)
	status := 0
	for {
		if interactive {
			fmt.Fprint(out, "> ")
		}
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			break
		}
		status = evalAndPrint(tw, line, out, useColor)
	}
	return status
}

func evalAndPrint(tw *tower.Tower, input string, out io.Writer, useColor bool) int {
	res, err := Eval(tw, input)
	if err != nil {
		fmt.Fprintln(out, colorize(fmt.Sprintf("error: %v", err), colorRed, useColor))
		return 1
	}
	fmt.Fprintln(out, colorize(res.Inspect(), colorGreen, useColor))
	return 0
}

func colorize(s, color string, enabled bool) string {
	if !enabled {
		return s
	}
	return color + s + colorReset
}

func shouldColor(mode string, out io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		f, ok := out.(*os.File)
		if !ok {
			return false
		}
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
}
