package main

import (
	"flag"
	"io"

	"github.com/cnharrison/copy-tui/internal/config"
)

type cliArgs struct {
	configPath string
	backend    string
	timeoutMs  int
	pretty     bool
	logLevel   string
	logFile    string
	version    bool

	// set records which flags were given explicitly
	set  map[string]bool
	rest []string
}

func parseFlags(fs *flag.FlagSet, argv []string) (cliArgs, error) {
	var args cliArgs

	fs.StringVar(&args.configPath, "config", config.DefaultPath(), "Path to the YAML config file")
	fs.StringVar(&args.backend, "backend", "", "Clipboard backend (auto, system, native, exec, osc52, memory)")
	fs.IntVar(&args.timeoutMs, "timeout", 0, "Milliseconds before copied resets (0 disables)")
	fs.BoolVar(&args.pretty, "pretty", false, "Pretty-print JSON/HTML/XML before copying")
	fs.StringVar(&args.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&args.logFile, "log-file", "", "Append logs to this file")
	fs.BoolVar(&args.version, "version", false, "Show version and exit")

	if err := fs.Parse(argv); err != nil {
		return args, err
	}

	args.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { args.set[f.Name] = true })
	args.rest = fs.Args()
	return args, nil
}

// command returns the subcommand and its arguments
func (a cliArgs) command() (string, []string) {
	if len(a.rest) == 0 {
		return "", nil
	}
	return a.rest[0], a.rest[1:]
}

// apply overrides cfg with every flag given on the command line
func (a cliArgs) apply(cfg *config.Config) error {
	if a.set["backend"] {
		cfg.Backend = a.backend
	}
	if a.set["timeout"] {
		cfg.TimeoutMs = a.timeoutMs
	}
	if a.set["pretty"] {
		cfg.Pretty = a.pretty
	}
	if a.set["log-level"] {
		cfg.LogLevel = a.logLevel
	}
	if a.set["log-file"] {
		cfg.LogFile = a.logFile
	}
	return cfg.Validate()
}

func newFlagSet(output io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("copy-tui", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		w := fs.Output()
		io.WriteString(w, "Usage: copy-tui [flags] [command] [args]\n\n")
		io.WriteString(w, "Commands:\n")
		io.WriteString(w, "  (none)          Start the interactive clipboard UI\n")
		io.WriteString(w, "  copy [text...]  Copy the arguments, or stdin when none are given\n")
		io.WriteString(w, "  paste           Print the clipboard contents\n")
		io.WriteString(w, "  clear           Clear the clipboard\n")
		io.WriteString(w, "  backends        List clipboard backends and their status\n")
		io.WriteString(w, "  config init     Write the default config file\n")
		io.WriteString(w, "  config path     Print the config file location\n\n")
		io.WriteString(w, "Flags:\n")
		fs.PrintDefaults()
	}
	return fs
}
