package multimode

import (
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/joancf/Multimode-Networks/pkg/errors"
)

// Options configures a projection.
type Options struct {
	// Attribute is the node column holding the category of each node.
	Attribute string

	// In, Common and Out are the category values of the first, intermediate
	// and second groups. Nodes without a value match "null".
	In     string
	Common string
	Out    string

	// Threshold is the exclusive lower bound a result cell must exceed to
	// become an edge. Zero keeps every positive cell.
	Threshold float64

	// RemoveNodes deletes the intermediate group after the matrices are built.
	// It takes precedence over RemoveEdges.
	RemoveNodes bool

	// RemoveEdges deletes the edges that contributed to either matrix.
	RemoveEdges bool

	// ConsiderDirected selects the host's directed view. New edges are
	// directed only when the view is.
	ConsiderDirected bool

	// Logger receives diagnostics. Defaults to a discarding logger.
	Logger *log.Logger

	// Progress receives progress reports. Optional.
	Progress ProgressFunc
}

// Validate checks the configuration. Category values are not checked: an
// empty category simply matches nodes whose value stringifies to "".
func (o Options) Validate() error {
	if o.Attribute == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "attribute is required")
	}
	if math.IsNaN(o.Threshold) || math.IsInf(o.Threshold, 0) {
		return errors.New(errors.ErrCodeInvalidConfig, "threshold must be finite, got %v", o.Threshold)
	}
	if o.Threshold < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "threshold must be non-negative, got %v", o.Threshold)
	}
	return nil
}

// Label returns the provenance value written on every created edge.
func (o Options) Label() string {
	return o.In + labelSeparator + o.Out
}

func (o *Options) setDefaults() {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}
