package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/wippyai/wordvm/binding"
	"github.com/wippyai/wordvm/config"
	"github.com/wippyai/wordvm/engine"
	"github.com/wippyai/wordvm/inspect"
)

type options struct {
	configFile  string
	wasmFile    string
	entry       string
	ops         string
	dump        bool
	words       bool
	interactive bool
	verbose     bool
}

func main() {
	var opts options
	flag.StringVar(&opts.configFile, "config", "", "Path to "+config.FileName+" (optional)")
	flag.StringVar(&opts.wasmFile, "wasm", "", "Guest module to run against the context")
	flag.StringVar(&opts.entry, "entry", "", "Guest export to call (overrides engine.entry)")
	flag.StringVar(&opts.ops, "ops", "", `Stack ops applied before the guest runs, e.g. "push16:300 push8:-5 pop8"`)
	flag.BoolVar(&opts.dump, "dump", false, "Dump the context when done")
	flag.BoolVar(&opts.words, "words", false, "List live stack words when done")
	flag.BoolVar(&opts.interactive, "i", false, "Interactive stack console")
	flag.BoolVar(&opts.verbose, "v", false, "Debug logging")
	flag.Parse()

	if opts.wasmFile == "" && opts.ops == "" && !opts.interactive {
		fmt.Fprintln(os.Stderr, "Usage: wordvm [-config wordvm.toml] -ops \"push16:300 pop16\" [-dump] [-words]")
		fmt.Fprintln(os.Stderr, "       wordvm [-config wordvm.toml] -wasm <guest.wasm> [-entry run] [-dump]")
		fmt.Fprintln(os.Stderr, "       wordvm -i  (interactive mode)")
		os.Exit(1)
	}

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(opts options) (*config.Config, error) {
	cfg := config.Default()
	if opts.configFile != "" {
		var err error
		if cfg, err = config.Load(opts.configFile); err != nil {
			return nil, err
		}
	}
	if opts.verbose {
		cfg.Log.Level = "debug"
	}
	if opts.entry != "" {
		cfg.Engine.Entry = opts.entry
	}
	return cfg, nil
}

func run(opts options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	logger, err := cfg.NewLogger()
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer logger.Sync()
	binding.SetLogger(logger.Named("binding"))
	engine.SetLogger(logger.Named("engine"))

	mctx, err := cfg.NewContext()
	if err != nil {
		return fmt.Errorf("create context: %w", err)
	}
	dumper := cfg.NewDumper(&inspect.Counter{})
	var guestErr error

	if opts.interactive {
		return runInteractive(mctx, dumper)
	}

	if opts.ops != "" {
		ops, err := parseOps(opts.ops)
		if err != nil {
			return err
		}
		if err := applyOps(os.Stdout, mctx, dumper, ops); err != nil {
			return err
		}
	}

	if opts.wasmFile != "" {
		data, err := os.ReadFile(opts.wasmFile)
		if err != nil {
			return fmt.Errorf("read file: %w", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		eng, err := engine.NewWazeroEngine(ctx, &engine.Config{MemoryLimitPages: cfg.Engine.MemoryLimitPages})
		if err != nil {
			return fmt.Errorf("create engine: %w", err)
		}
		defer eng.Close(ctx)

		result, err := eng.Run(ctx, data, cfg.Engine.Entry, mctx)
		if err != nil {
			return err
		}
		logger.Info("guest finished",
			zap.String("wasm", opts.wasmFile),
			zap.String("entry", cfg.Engine.Entry),
			zap.Stringer("code", result.Code),
			zap.Int("stack_words", mctx.Stack().Len()))
		fmt.Printf("Return code: %s (%d)\n", result.Code, result.Code)
		if result.Code.IsFailure() {
			guestErr = fmt.Errorf("guest failed: %s", result.Code)
		}
	}

	if opts.words {
		if err := inspect.Words(os.Stdout, mctx); err != nil {
			return err
		}
	}
	if opts.dump {
		if err := dumper.Dump(os.Stdout, mctx); err != nil {
			return err
		}
	}
	return guestErr
}
