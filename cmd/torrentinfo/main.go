package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/WendelHime/torrentinfo/internal/bencode"
	"github.com/WendelHime/torrentinfo/internal/decoder"
	"github.com/WendelHime/torrentinfo/internal/logic"
	"github.com/schollz/progressbar/v3"
)

const usage = `usage: torrentinfo [flags] decode <bencoded value>
       torrentinfo [flags] info <path to .torrent>`

func main() {
	var maxDepth int
	var maxSize int64
	var logLevel string
	var logJSON bool
	var showProgress bool
	flag.IntVar(&maxDepth, "max-depth", bencode.DefaultMaxDepth, "Maximum nesting of lists and dictionaries")
	flag.Int64Var(&maxSize, "max-size", decoder.DefaultMaxSize, "Maximum metafile size in bytes")
	flag.StringVar(&logLevel, "log-level", "error", "Log level: debug, info, warn or error")
	flag.BoolVar(&logJSON, "log-json", false, "Write logs as JSON")
	flag.BoolVar(&showProgress, "progress", false, "Show a progress bar while reading the metafile")
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(1)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler = slog.NewTextHandler(os.Stderr, handlerOpts)
	if logJSON {
		handler = slog.NewJSONHandler(os.Stderr, handlerOpts)
	}
	logger := slog.New(handler)

	opts := bencode.Options{MaxDepth: maxDepth}
	d := decoder.NewDecoder().WithOptions(decoder.Options{MaxSize: maxSize, Bencode: opts})
	inspector := logic.NewInspector(d, opts, logger)

	var err error
	switch command, arg := flag.Arg(0), flag.Arg(1); command {
	case "decode":
		err = inspector.Decode(arg, os.Stdout)
	case "info":
		err = info(inspector, arg, showProgress)
	default:
		flag.Usage()
		os.Exit(1)
	}
	if err != nil {
		message, code := logic.Describe(err)
		fmt.Fprintln(os.Stderr, message)
		os.Exit(code)
	}
}

func info(inspector logic.Inspector, torrentPath string, showProgress bool) error {
	f, err := os.Open(torrentPath)
	if err != nil {
		return err
	}
	defer f.Close()

	var r io.Reader = f
	if showProgress {
		stat, err := f.Stat()
		if err != nil {
			return err
		}
		bar := progressbar.DefaultBytes(stat.Size(), "reading metafile")
		defer bar.Close()
		r = io.TeeReader(f, bar)
	}

	return inspector.Info(r, os.Stdout)
}
