package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/hamed0406/apphealth/internal/config"
	"github.com/hamed0406/apphealth/internal/logging"
	"github.com/hamed0406/apphealth/internal/probe"
	"github.com/hamed0406/apphealth/internal/report"
)

// run performs one probe and returns the exit code. A completed probe exits
// 0 whether the target is UP or DOWN.
func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Parse(config.FromEnv(), "apphealth", args, stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return 0
	}
	if err != nil {
		return 2
	}

	logger, closeLog, err := logging.NewLogger(logging.Options{
		Path:        cfg.LogFile,
		MaxSizeMB:   cfg.LogMaxSizeMB,
		MaxBackups:  cfg.LogMaxBackups,
		ErrorOutput: stderr,
	})
	if err != nil {
		fmt.Fprintln(stderr, "apphealth:", err)
		return 1
	}
	defer func() {
		if err := closeLog(); err != nil {
			fmt.Fprintln(stderr, "apphealth: close log:", err)
		}
	}()

	res := probe.NewHTTPChecker().Check(context.Background(), cfg.ProbeRequest())
	if err := report.New(stdout, logger).Report(res); err != nil {
		fmt.Fprintln(stderr, "apphealth: write result:", err)
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
