package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/joancf/Multimode-Networks/pkg/observability"
)

// logHooks reports projection events through the CLI logger at debug level.
type logHooks struct {
	logger *log.Logger
}

var _ observability.ProjectionHooks = (*logHooks)(nil)

func newLogHooks(l *log.Logger) *logHooks {
	return &logHooks{logger: l}
}

func (h *logHooks) OnRunStart(_ context.Context, jobID, label string) {
	h.logger.Debug("job started", "job", jobID, "label", label)
}

func (h *logHooks) OnPhaseComplete(_ context.Context, jobID, phase string, d time.Duration) {
	h.logger.Debug("phase complete", "job", jobID, "phase", phase, "duration", d.Round(time.Microsecond))
}

func (h *logHooks) OnLookupError(_ context.Context, jobID, node string, err error) {
	h.logger.Debug("lookup failed", "job", jobID, "node", node, "err", err)
}

func (h *logHooks) OnRunComplete(_ context.Context, jobID string, cancelled bool, d time.Duration) {
	h.logger.Debug("job complete", "job", jobID, "cancelled", cancelled, "duration", d.Round(time.Millisecond))
}
