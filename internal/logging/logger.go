package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// TimeLayout is the timestamp prefix of every log line.
const TimeLayout = "2006-01-02 15:04:05"

type Options struct {
	Path        string
	MaxSizeMB   int       // > 0 switches to a rotating sink
	MaxBackups  int       // only with MaxSizeMB
	ErrorOutput io.Writer // where write failures are reported, stderr if nil
}

// NewLogger opens Path for appending, creating it and its directory if
// needed, and returns a logger writing "<time> - <LEVEL> - <msg>" lines.
// The returned func flushes and closes the file.
func NewLogger(opts Options) (*zap.Logger, func() error, error) {
	if dir := filepath.Dir(opts.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}

	w, closeSink, err := openSink(opts)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file %s: %w", opts.Path, err)
	}

	errOut := opts.ErrorOutput
	if errOut == nil {
		errOut = os.Stderr
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(EncoderConfig()), w, zap.InfoLevel)
	log := zap.New(core, zap.ErrorOutput(zapcore.Lock(zapcore.AddSync(errOut))))

	return log, func() error {
		return multierr.Append(log.Sync(), closeSink())
	}, nil
}

func EncoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.NameKey = zapcore.OmitKey
	cfg.CallerKey = zapcore.OmitKey
	cfg.StacktraceKey = zapcore.OmitKey
	cfg.EncodeTime = zapcore.TimeEncoderOfLayout(TimeLayout)
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.ConsoleSeparator = " - "
	return cfg
}

func openSink(opts Options) (zapcore.WriteSyncer, func() error, error) {
	if opts.MaxSizeMB <= 0 {
		// zap.Open treats relative names as URLs; "a:b" would be a scheme.
		abs, err := filepath.Abs(opts.Path)
		if err != nil {
			return nil, nil, err
		}
		ws, closeFile, err := zap.Open(abs)
		if err != nil {
			return nil, nil, err
		}
		return ws, func() error { closeFile(); return nil }, nil
	}

	// lumberjack opens lazily; fail now rather than on the first write.
	f, err := os.OpenFile(opts.Path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
	if err != nil {
		return nil, nil, err
	}
	if err := f.Close(); err != nil {
		return nil, nil, err
	}

	lj := &lumberjack.Logger{
		Filename:   opts.Path,
		MaxSize:    opts.MaxSizeMB, // MB
		MaxBackups: opts.MaxBackups,
	}
	return zapcore.AddSync(lj), lj.Close, nil
}
