package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/hamed0406/apphealth/internal/domain"
)

const (
	DefaultURL            = "http://localhost:4498"
	DefaultTimeoutSeconds = 5
	DefaultLogFile        = "app_health_log.txt"
)

type Config struct {
	URL            string // target to probe
	TimeoutSeconds int    // request deadline, not validated here
	LogFile        string // append-only log, relative to the run directory
	LogMaxSizeMB   int    // 0 disables rotation
	LogMaxBackups  int    // rotated files to keep, 0 keeps all
}

func FromEnv() Config {
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = DefaultLogFile
	}

	// Rotation is off unless explicitly sized.
	maxSize := 0
	if v := os.Getenv("LOG_MAX_SIZE_MB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			maxSize = n
		}
	}

	maxBackups := 0
	if v := os.Getenv("LOG_MAX_BACKUPS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			maxBackups = n
		}
	}

	return Config{
		URL:            DefaultURL,
		TimeoutSeconds: DefaultTimeoutSeconds,
		LogFile:        logFile,
		LogMaxSizeMB:   maxSize,
		LogMaxBackups:  maxBackups,
	}
}

// Parse overrides cfg with -u/--url and -t/--timeout from args. Errors and
// usage go to out; -h/--help yields pflag.ErrHelp.
func Parse(cfg Config, name string, args []string, out io.Writer) (Config, error) {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(out)
	fs.Usage = func() {
		fmt.Fprintf(out, "Usage of %s:\nCheck the health of a web application.\n\n", name)
		fs.PrintDefaults()
	}

	fs.StringVarP(&cfg.URL, "url", "u", cfg.URL, "URL of the application to check")
	fs.IntVarP(&cfg.TimeoutSeconds, "timeout", "t", cfg.TimeoutSeconds, "Timeout in seconds for the HTTP request")

	err := fs.Parse(args)
	if err == nil && fs.NArg() > 0 {
		err = fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	// pflag prints usage itself only for help when errors are continued.
	if err != nil && !errors.Is(err, pflag.ErrHelp) {
		fmt.Fprintln(out, err)
		fs.Usage()
	}
	return cfg, err
}

func (c Config) ProbeRequest() domain.ProbeRequest {
	return domain.ProbeRequest{URL: c.URL, TimeoutSeconds: c.TimeoutSeconds}
}
