// Package empdb implements the empdb command: it parses the command line,
// opens the employees database and runs exactly one mode against it.
package empdb

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexflint/go-arg"
	"github.com/google/uuid"
	"github.com/nsqlite/empdb/internal/empdb/config"
	"github.com/nsqlite/empdb/internal/empdb/store"
	"github.com/nsqlite/empdb/internal/log"
)

// Run runs the empdb CLI with the given arguments, args[0] being the
// program name. Results are written to stdout, logs and progress to stderr.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if err := config.LoadEnv(); err != nil {
		return err
	}

	conf, parser, err := config.Parse(args)
	switch {
	case errors.Is(err, arg.ErrHelp):
		parser.WriteHelp(stdout)
		return nil
	case errors.Is(err, arg.ErrVersion):
		fmt.Fprint(stdout, conf.Version())
		return nil
	case err != nil:
		return &UsageError{Msg: "Invalid arguments:", Err: err}
	}

	mode, err := parseMode(conf.Mode, conf.Args)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := log.NewLogger(stderr, conf.Verbose).With(log.KV{
		"runId": uuid.NewString(),
	})
	logger.InfoNs(log.NsCLI, "starting empdb", log.KV{
		"mode":     mode.Value,
		"database": conf.Database,
		"driver":   conf.ParsedDriver.Value,
	})

	st, err := store.Open(ctx, store.Config{
		Logger:               logger,
		Path:                 conf.Database,
		Driver:               conf.ParsedDriver,
		DisableOptimizations: conf.DisableOptimizations,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := st.Close(); err != nil {
			logger.ErrorNs(log.NsDatabase, "error closing database", log.KV{"error": err})
		}
	}()

	d := dispatcher{
		conf:   conf,
		store:  st,
		stdout: stdout,
		stderr: stderr,
		logger: logger,
	}
	return d.run(ctx, mode)
}
