package report

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/hamed0406/apphealth/internal/domain"
)

type Reporter struct {
	Out    io.Writer
	Logger *zap.Logger
}

func New(out io.Writer, logger *zap.Logger) *Reporter {
	return &Reporter{Out: out, Logger: logger}
}

// Message renders a result as its single human-readable line.
func Message(r domain.ProbeResult) string {
	return fmt.Sprintf("Status: %s, Code/Error: %s", r.Status(), r.Detail())
}

// Report prints the line and records it at INFO for UP, ERROR for DOWN.
// The log record is written even if printing fails.
func (p *Reporter) Report(r domain.ProbeResult) error {
	msg := Message(r)
	_, err := fmt.Fprintln(p.Out, msg)

	if r.Status() == domain.StatusUp {
		p.Logger.Info(msg)
	} else {
		p.Logger.Error(msg)
	}
	return err
}
