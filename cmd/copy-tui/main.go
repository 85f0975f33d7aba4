package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cnharrison/copy-tui/internal/config"
	"github.com/cnharrison/copy-tui/internal/format"
	"github.com/cnharrison/copy-tui/internal/log"
	"github.com/cnharrison/copy-tui/internal/ui"
	"github.com/cnharrison/copy-tui/pkg/clipboard"
	"github.com/cnharrison/copy-tui/pkg/copier"
)

var version = "dev"

func main() {
	args, err := parseFlags(newFlagSet(os.Stderr), os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}

	if args.version {
		fmt.Printf("copy-tui %s\n", version)
		os.Exit(0)
	}

	if err := run(args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run loads configuration, sets up logging and dispatches to the command
func run(args cliArgs) error {
	cmd, rest := args.command()
	if cmd == "config" {
		return runConfig(args.configPath, rest, os.Stdout)
	}

	cfg, err := config.Load(args.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := args.apply(cfg); err != nil {
		return err
	}

	closeLog, err := setupLogging(cfg, cmd == "")
	if err != nil {
		return err
	}
	defer closeLog()

	platform, err := clipboard.Open(cfg.Backend)
	if err != nil {
		return err
	}
	log.Debug("main: backend %s (%T)", cfg.Backend, platform)

	switch cmd {
	case "":
		if !clipboard.IsTerminal(os.Stdout) {
			return fmt.Errorf("the interactive UI needs a terminal; try 'copy-tui copy'")
		}
		return ui.NewApplication(platform, cfg).Run()
	case "copy":
		return runCopy(platform, cfg, rest, os.Stdin, os.Stdout)
	case "paste":
		return runPaste(platform, os.Stdout)
	case "clear":
		return runClear(platform, os.Stdout)
	case "backends":
		return runBackends(clipboard.Probe(), os.Stdout)
	}
	return fmt.Errorf("unknown command %q", cmd)
}

// setupLogging applies the configured level and destination. The UI owns
// the terminal, so without a log file its output is discarded.
func setupLogging(cfg *config.Config, interactive bool) (func(), error) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	log.SetLevel(level)

	if cfg.LogFile != "" {
		f, err := log.OpenFile(cfg.LogFile)
		if err != nil {
			return nil, err
		}
		return func() { f.Close() }, nil
	}
	if interactive {
		log.SetOutput(nil)
	}
	return func() {}, nil
}

// runCopy copies the joined arguments, or stdin when there are none
func runCopy(platform clipboard.Platform, cfg *config.Config, words []string, stdin io.Reader, stdout io.Writer) error {
	var text string
	if len(words) > 0 {
		text = strings.Join(words, " ")
	} else {
		if clipboard.IsTerminal(stdin) {
			return fmt.Errorf("nothing to copy: pass text or pipe it on stdin")
		}
		data, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		text = string(data)
	}

	if cfg.Pretty {
		var contentType string
		text, contentType = format.NewContentFormatter().AutoPretty(text)
		log.Debug("main: pretty-printed as %s", contentType)
	}

	c := copier.New(platform, copier.WithTimeout(0))
	defer c.Close()
	if !c.Copy(text) {
		return c.Err()
	}
	fmt.Fprintf(stdout, "Copied %d characters to clipboard\n", len([]rune(text)))
	return nil
}

// runPaste prints the clipboard contents
func runPaste(platform clipboard.Platform, stdout io.Writer) error {
	reader, ok := platform.(clipboard.Reader)
	if !ok {
		return fmt.Errorf("backend %T cannot read the clipboard", platform)
	}
	if !clipboard.Supported(platform) {
		return copier.ErrUnsupported
	}
	text, err := reader.ReadText()
	if err != nil {
		return err
	}
	_, err = io.WriteString(stdout, text)
	return err
}

// runClear empties the clipboard
func runClear(platform clipboard.Platform, stdout io.Writer) error {
	c := copier.New(platform, copier.WithTimeout(0))
	defer c.Close()
	if !c.Clear() {
		return c.Err()
	}
	fmt.Fprintln(stdout, "Clipboard cleared")
	return nil
}

// runConfig manages the config file: "init" writes the defaults, "path"
// prints where the file is read from
func runConfig(path string, rest []string, stdout io.Writer) error {
	if len(rest) != 1 {
		return fmt.Errorf("usage: copy-tui config init|path")
	}

	switch rest[0] {
	case "path":
		fmt.Fprintln(stdout, path)
		return nil
	case "init":
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config %s already exists", path)
		} else if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("checking config: %w", err)
		}
		if err := config.Default().Save(path); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Wrote default config to %s\n", path)
		return nil
	}
	return fmt.Errorf("unknown config command %q", rest[0])
}

// runBackends prints one line per backend with its support flags
func runBackends(statuses []clipboard.BackendStatus, stdout io.Writer) error {
	fmt.Fprintf(stdout, "%-8s %-10s %-7s %s\n", "BACKEND", "AVAILABLE", "SECURE", "SUPPORTED")
	for _, s := range statuses {
		fmt.Fprintf(stdout, "%-8s %-10t %-7t %t\n", s.Name, s.Available, s.Secure, s.Available && s.Secure)
	}
	return nil
}
