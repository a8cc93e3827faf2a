package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"videoname/internal/cli"
	"videoname/internal/config"
	"videoname/internal/naming"
	"videoname/internal/server"
)

var (
	newLogger              = func() loggerAPI { return cli.NewLogger(cli.LogOptions{}) }
	loadConfigFn           = config.Load
	serveFn                = serve
	nowFn                  = time.Now
	stdout       io.Writer = os.Stdout
	exitFn                 = cli.Exit
)

type loggerAPI interface {
	Configure(opts cli.LogOptions)
	Logrus() *logrus.Logger
	Info(msg string)
	Warn(msg string)
	Error(msg string)
	Success(msg string)
	Failure(msg string)
}

func execute(ctx context.Context, argv []string, logger loggerAPI, cfgLoader func(path string) (config.Config, error)) int {
	args := cli.ParseArgs(argv)
	resolvedCfg, err := filepath.Abs(args.ConfigPath)
	if err != nil {
		logger.Error(formatError(err))
		return 1
	}
	cfg, err := cfgLoader(resolvedCfg)
	if err != nil {
		logger.Error(formatError(err))
		return 1
	}
	logger.Configure(cli.LogOptions{Level: cfg.Log.Level, Format: cfg.Log.Format, File: cfg.Log.File})

	loc, err := cfg.Location()
	if err != nil {
		logger.Error(formatError(err))
		return 1
	}
	gen := naming.NewGenerator(loc, nowFn, logger.Logrus())

	switch args.Command {
	case cli.CommandGenerate:
		return generate(cfg, gen, logger)
	case cli.CommandServe:
		if err := serveFn(ctx, cfg, gen, logger); err != nil {
			logger.Error(formatError(err))
			return 1
		}
		return 0
	default:
		logger.Error("unknown command: " + args.Command)
		return 1
	}
}

// generate names every configured input and prints one line per input in
// input order: the name, or the message of the rule it failed.
func generate(cfg config.Config, gen *naming.Generator, logger loggerAPI) int {
	if len(cfg.Inputs) == 0 {
		logger.Error("config must contain a non-empty `inputs` array")
		return 1
	}
	names := make([]string, len(cfg.Inputs))
	errs := make([]error, len(cfg.Inputs))

	jobs := cfg.Jobs
	// Bound worker count to a valid range so scheduling and channel lifecycles stay predictable.
	if jobs > len(cfg.Inputs) {
		jobs = len(cfg.Inputs)
	}
	if jobs < 1 {
		jobs = 1
	}
	progress := cli.NewProgress("inputs", len(cfg.Inputs))
	taskCh := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < jobs; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range taskCh {
				// Each worker owns distinct indices, so the slices need no lock.
				names[i], errs[i] = gen.Generate(cfg.Inputs[i])
				progress.Step()
			}
		}()
	}
	for i := range cfg.Inputs {
		taskCh <- i
	}
	close(taskCh)
	wg.Wait()
	progress.Stop()

	failed := 0
	for i := range cfg.Inputs {
		label := fmt.Sprintf("inputs[%d]", i)
		if errs[i] != nil {
			failed++
			logger.Failure(label + " -> " + formatError(errs[i]))
			fmt.Fprintln(stdout, formatError(errs[i]))
			continue
		}
		logger.Success(label + " -> " + names[i])
		fmt.Fprintln(stdout, names[i])
	}

	logger.Info(fmt.Sprintf("Completed. success=%d failed=%d", len(cfg.Inputs)-failed, failed))
	if failed > 0 {
		return 2
	}
	return 0
}

func serve(ctx context.Context, cfg config.Config, gen *naming.Generator, logger loggerAPI) error {
	log := logger.Logrus()
	h := server.NewRouter(server.NewHandler(gen, log), log, cfg.MaxBodyBytes)
	return server.Run(ctx, cfg.Listen, h, log)
}

func main() {
	logger := newLogger()
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	exitCode := execute(ctx, os.Args[1:], logger, loadConfigFn)
	cancel()
	exitFn(exitCode)
}

func formatError(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
