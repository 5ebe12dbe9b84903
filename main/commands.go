package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rawbytedev/bytestr"
	"github.com/rawbytedev/bytestr/pkg/frame"
	"github.com/rawbytedev/bytestr/pkg/utf8codec"
	"go.uber.org/zap"
)

func runLen(e *env, args []string) error {
	path, err := parse(flag.NewFlagSet("len", flag.ContinueOnError), e, args)
	if err != nil {
		return err
	}
	b, err := e.read(path)
	if err != nil {
		return err
	}
	defer b.Release()
	fmt.Fprintf(e.stdout, "bytes\t%d\ncodepoints\t%d\n", b.Len(), utf8codec.Count(b.View().Bytes()))
	return nil
}

func runCount(e *env, args []string) error {
	fs := flag.NewFlagSet("count", flag.ContinueOnError)
	pattern := fs.String("pattern", "", "Pattern to count (a single byte uses a byte count)")
	overlap := fs.Bool("overlap", false, "Count overlapping matches")
	path, err := parse(fs, e, args)
	if err != nil {
		return err
	}
	if *pattern == "" {
		return errUsage
	}
	b, err := e.read(path)
	if err != nil {
		return err
	}
	defer b.Release()

	var n int
	if len(*pattern) == 1 {
		n = bytestr.CountByte(b.View(), (*pattern)[0])
	} else {
		var flags bytestr.CountFlags
		if *overlap {
			flags |= bytestr.CountOverlap
		}
		n = bytestr.Count(bytestr.RefString(*pattern), b.View(), flags)
	}
	fmt.Fprintln(e.stdout, n)
	return nil
}

func runEscape(e *env, args []string) error {
	path, err := parse(flag.NewFlagSet("escape", flag.ContinueOnError), e, args)
	if err != nil {
		return err
	}
	b, err := e.read(path)
	if err != nil {
		return err
	}
	defer b.Release()
	out := bytestr.Escape(b.View())
	defer out.Release()
	fmt.Fprintln(e.stdout, out.String())
	return nil
}

func runStrip(e *env, args []string) error {
	fs := flag.NewFlagSet("strip", flag.ContinueOnError)
	chars := fs.String("chars", " \t\r\n", "Bytes to strip")
	side := fs.String("side", "both", "Side to strip: both, left or right")
	path, err := parse(fs, e, args)
	if err != nil {
		return err
	}
	var flags bytestr.StripFlags
	switch *side {
	case "both":
		flags = bytestr.StripBoth
	case "left":
		flags = bytestr.StripLeft
	case "right":
		flags = bytestr.StripRight
	default:
		return fmt.Errorf("invalid side %q", *side)
	}
	b, err := e.read(path)
	if err != nil {
		return err
	}
	defer b.Release()
	out, n := bytestr.Strip(bytestr.RefString(*chars), b.View(), flags)
	e.log.Info("stripped", zap.Int("removed", n))
	fmt.Fprintln(e.stdout, out.String())
	return nil
}

func runReplace(e *env, args []string) error {
	fs := flag.NewFlagSet("replace", flag.ContinueOnError)
	old := fs.String("old", "", "Pattern to replace")
	repl := fs.String("new", "", "Replacement")
	all := fs.Bool("all", false, "Replace every occurrence")
	right := fs.Bool("right", false, "Search from the right")
	path, err := parse(fs, e, args)
	if err != nil {
		return err
	}
	if *old == "" {
		return errUsage
	}
	var flags bytestr.ReplaceFlags
	if *all {
		flags |= bytestr.ReplaceAll
	}
	if *right {
		flags |= bytestr.ReplaceFromRight
	}
	b, err := e.read(path)
	if err != nil {
		return err
	}
	defer b.Release()
	n, err := b.Replace(bytestr.RefString(*old), bytestr.RefString(*repl), flags)
	if err != nil {
		return err
	}
	e.log.Info("replaced", zap.Int("count", n))
	fmt.Fprint(e.stdout, b.String())
	return nil
}

func runSplit(e *env, args []string) error {
	fs := flag.NewFlagSet("split", flag.ContinueOnError)
	delim := fs.String("delim", "\n", "Delimiter")
	path, err := parse(fs, e, args)
	if err != nil {
		return err
	}
	b, err := e.read(path)
	if err != nil {
		return err
	}
	defer b.Release()
	i := 0
	for part := range bytestr.Split(b.View(), bytestr.RefString(*delim)).All() {
		writePart(e.stdout, i, part)
		i++
	}
	return nil
}

func runPack(e *env, args []string) error {
	fs := flag.NewFlagSet("pack", flag.ContinueOnError)
	delim := fs.String("delim", "\n", "Delimiter")
	compress := fs.Bool("compress", e.cfg.Compress, "Compress the payload with zstd")
	out := fs.String("o", "", "Output file")
	path, err := parse(fs, e, args)
	if err != nil {
		return err
	}
	if *out == "" {
		return errUsage
	}
	b, err := e.read(path)
	if err != nil {
		return err
	}
	defer b.Release()

	var flags byte
	if *compress {
		flags |= frame.FlagCompressed
	}
	var parts []bytestr.View
	for part := range bytestr.Split(b.View(), bytestr.RefString(*delim)).All() {
		parts = append(parts, part)
	}
	data, err := frame.Encode(parts, flags)
	if err != nil {
		return err
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		return err
	}
	e.log.Info("packed", zap.Int("parts", len(parts)), zap.Int("size", len(data)), zap.String("out", *out))
	return nil
}

func runUnpack(e *env, args []string) error {
	path, err := parse(flag.NewFlagSet("unpack", flag.ContinueOnError), e, args)
	if err != nil {
		return err
	}
	b, err := e.read(path)
	if err != nil {
		return err
	}
	defer b.Release()
	parts, err := frame.Decode(b.View().Bytes())
	if err != nil {
		return fmt.Errorf("unpack %s: %w", path, err)
	}
	for i, part := range parts {
		writePart(e.stdout, i, part)
	}
	return nil
}

// writePart prints one indexed, escaped part per line.
func writePart(w io.Writer, i int, part bytestr.View) {
	esc := bytestr.Escape(part)
	defer esc.Release()
	fmt.Fprintf(w, "%d\t%s\n", i, esc.View().UnsafeString())
}
