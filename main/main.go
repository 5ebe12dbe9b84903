// Command bytestr runs byte string operations over files.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rawbytedev/bytestr"
	"go.uber.org/zap"
)

var errUsage = errors.New("usage")

type command struct {
	name  string
	usage string
	run   func(env *env, args []string) error
}

// env is the state shared by every command.
type env struct {
	cfg    Config
	log    *zap.Logger
	stdout io.Writer
	stderr io.Writer
}

var commands = []command{
	{"len", "len FILE", runLen},
	{"count", "count -pattern P [-overlap] FILE", runCount},
	{"escape", "escape FILE", runEscape},
	{"strip", "strip [-chars C] [-side both|left|right] FILE", runStrip},
	{"replace", "replace -old P -new R [-all] [-right] FILE", runReplace},
	{"split", "split [-delim D] FILE", runSplit},
	{"pack", "pack [-delim D] [-compress] -o OUT FILE", runPack},
	{"unpack", "unpack FILE", runUnpack},
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("bytestr", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "Path to YAML configuration file")
	logLevel := fs.String("log-level", "", "Log level (debug, info, warn, error)")
	fs.Usage = func() { usage(stderr, fs) }
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	logger, err := cfg.NewLogger()
	if err != nil {
		fmt.Fprintf(stderr, "Error: invalid log level %q: %v\n", cfg.LogLevel, err)
		return 1
	}
	defer logger.Sync()
	bytestr.SetLogger(logger.Named("bytestr"))

	rest := fs.Args()
	if len(rest) == 0 {
		fs.Usage()
		return 2
	}
	cmd, ok := lookup(rest[0])
	if !ok {
		fmt.Fprintf(stderr, "Error: unknown command %q\n", rest[0])
		fs.Usage()
		return 2
	}

	e := &env{cfg: cfg, log: logger.With(zap.String("command", cmd.name)), stdout: stdout, stderr: stderr}
	if err := cmd.run(e, rest[1:]); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintf(stderr, "Usage: bytestr %s\n", cmd.usage)
			return 2
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func lookup(name string) (command, bool) {
	for _, c := range commands {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

func usage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintf(w, "Usage: bytestr [options] <command> [flags] FILE\n\nOptions:\n")
	fs.PrintDefaults()
	fmt.Fprintf(w, "\nCommands:\n")
	for _, c := range commands {
		fmt.Fprintf(w, "  %s\n", c.usage)
	}
}

// parse parses command flags and returns the single FILE argument.
func parse(fs *flag.FlagSet, e *env, args []string) (string, error) {
	fs.SetOutput(e.stderr)
	if err := fs.Parse(args); err != nil {
		return "", errUsage
	}
	if fs.NArg() != 1 {
		return "", errUsage
	}
	return fs.Arg(0), nil
}

func (e *env) read(path string) (*bytestr.Buffer, error) {
	var opts []bytestr.Option
	if e.cfg.MinCapacity > 0 {
		opts = append(opts, bytestr.WithMinCapacity(e.cfg.MinCapacity))
	}
	b, err := bytestr.ReadFilePath(path, opts...)
	if err != nil {
		return nil, err
	}
	e.log.Debug("read input", zap.String("path", path), zap.Int("len", b.Len()), zap.Int("cap", b.Cap()))
	return b, nil
}
