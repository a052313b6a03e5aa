package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/iliamunaev/sequenced-counter/internal/app"
	"github.com/iliamunaev/sequenced-counter/internal/log"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "counter: %v\n", err)
		os.Exit(1)
	}
}

// run parses flags, builds the logger and drives one counting run.
// Status lines go to stdout; diagnostics go to stderr as JSON.
func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("counter", flag.ContinueOnError)
	logLevel := fs.String("log-level", "warn", "debug|info|warn|error")
	if err := fs.Parse(args); err != nil {
		return err
	}

	logger, err := log.NewLogger(log.WithLogLevel(*logLevel))
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	logger = logger.With(zap.String("app", fs.Name()))

	a := app.New(app.Config{}, stdout, logger)
	if err := a.Run(); err != nil {
		logger.Error("run failed", zap.Error(err))
		return err
	}
	return nil
}
