package multimode

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/joancf/Multimode-Networks/pkg/errors"
	"github.com/joancf/Multimode-Networks/pkg/matrix"
	"github.com/joancf/Multimode-Networks/pkg/observability"
)

// Sizes records how many nodes each group held when the run partitioned
// the graph.
type Sizes struct {
	First  int
	Common int
	Second int
}

// Result summarizes a job run.
type Result struct {
	JobID string

	// Phase is the last phase that completed.
	Phase Phase

	// Cancelled reports whether the run stopped before Finish because it
	// was cancelled.
	Cancelled bool

	// Err is set when an internal failure stopped the run early. Host lookup
	// failures never set it; they are counted in First and Second.
	Err error

	Sizes    Sizes
	First    BuildStats
	Second   BuildStats
	Removal  RemovalStats
	Creation CreationStats
	Duration time.Duration
}

// Job is a cancellable projection over a host graph. A Job runs at most
// once; later calls to Run or Start return the first run's result.
//
// While the job runs it is the only writer of the host graph.
type Job struct {
	id    string
	host  Host
	attrs AttributeStore
	opts  Options

	once sync.Once
	done chan struct{}

	mu              sync.Mutex
	stop            context.CancelFunc
	cancelRequested bool

	result Result
}

// NewJob validates opts and returns a job ready to run.
func NewJob(host Host, attrs AttributeStore, opts Options) (*Job, error) {
	if host == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "host is required")
	}
	if attrs == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "attribute store is required")
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	opts.setDefaults()
	return &Job{
		id:    uuid.NewString(),
		host:  host,
		attrs: attrs,
		opts:  opts,
		done:  make(chan struct{}),
	}, nil
}

// ID returns the job's unique identifier.
func (j *Job) ID() string { return j.id }

// Options returns the job's configuration with defaults applied.
func (j *Job) Options() Options { return j.opts }

// Cancel requests that the job stop at its next checkpoint. It does not wait
// for the job to stop, may be called any number of times, before or during
// a run, and always returns true.
func (j *Job) Cancel() bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.cancelRequested = true
	if j.stop != nil {
		j.stop()
	}
	return true
}

// Start runs the job on a new goroutine. Use Wait or Done to observe the end.
func (j *Job) Start(ctx context.Context) {
	go j.Run(ctx)
}

// Done returns a channel closed when the run ends.
func (j *Job) Done() <-chan struct{} { return j.done }

// Wait blocks until the run ends and returns its result.
func (j *Job) Wait() Result {
	<-j.done
	return j.result
}

// Run executes the job on the calling goroutine and returns its result.
// Cancelling ctx has the same effect as calling Cancel.
func (j *Job) Run(ctx context.Context) Result {
	j.once.Do(func() {
		defer close(j.done)
		j.result = j.run(ctx)
	})
	<-j.done
	return j.result
}

func (j *Job) run(parent context.Context) Result {
	ctx, stop := context.WithCancel(parent)
	defer stop()

	j.mu.Lock()
	j.stop = stop
	if j.cancelRequested {
		stop()
	}
	j.mu.Unlock()

	r := &runner{
		job:    j,
		ctx:    ctx,
		logger: j.opts.Logger.With("job", j.id),
		hooks:  observability.Projection(),
		begin:  time.Now(),
		total:  fixedSteps,
	}
	r.res.JobID = j.id
	r.res.Phase = PhaseStart
	return r.execute()
}

// runner carries the state of one run between phases.
type runner struct {
	job    *Job
	ctx    context.Context
	logger *log.Logger
	hooks  observability.ProjectionHooks

	begin      time.Time
	phaseStart time.Time
	total      int
	view       GraphView
	part       Partition
	first      *matrix.Dense
	second     *matrix.Dense
	product    *matrix.Dense
	res        Result
	cancelled  bool
}

func (r *runner) execute() Result {
	opts := r.job.opts
	opts.Logger = r.logger
	r.hooks.OnRunStart(r.ctx, r.job.id, opts.Label())
	r.logger.Info("projection started",
		"attribute", opts.Attribute,
		"label", opts.Label(),
		"common", opts.Common,
		"threshold", opts.Threshold)

	r.phaseStart = r.begin
	if r.complete(PhaseStart, 0) {
		return r.finish()
	}

	// Partition
	r.view = r.job.host.View(opts.ConsiderDirected)
	r.part = Classify(r.view, opts.Attribute, opts.In, opts.Common, opts.Out)
	r.res.Sizes = Sizes{
		First:  len(r.part.FirstVertical),
		Common: len(r.part.FirstHorizontal),
		Second: len(r.part.SecondHorizontal),
	}
	r.total = len(r.part.FirstVertical) + fixedSteps
	r.logger.Debug("partitioned nodes",
		"first", r.res.Sizes.First,
		"common", r.res.Sizes.Common,
		"second", r.res.Sizes.Second,
		"directed", r.view.IsDirected())
	if r.complete(PhasePartition, 1) {
		return r.finish()
	}

	// BuildFirstMatrix
	r.first, r.res.First = BuildBiAdjacency(r.view, r.part.FirstVertical, r.part.FirstHorizontal, r.logger)
	r.reportFailures(r.res.First)
	if r.complete(PhaseBuildFirstMatrix, 2) {
		return r.finish()
	}

	// BuildSecondMatrix
	r.second, r.res.Second = BuildBiAdjacency(r.view, r.part.SecondVertical, r.part.SecondHorizontal, r.logger)
	r.reportFailures(r.res.Second)
	if r.complete(PhaseBuildSecondMatrix, 3) {
		return r.finish()
	}

	// Multiply
	product, err := Multiply(r.first, r.second)
	if err != nil {
		r.res.Err = errors.Wrap(errors.ErrCodeInternal, err, "bi-adjacency matrices do not chain")
		r.logger.Error("projection aborted", "err", err)
		return r.finish()
	}
	r.product = product
	if r.complete(PhaseMultiply, 4) {
		return r.finish()
	}

	// RemoveIntermediate
	r.res.Removal = RemoveIntermediate(r.view, r.part, r.first, r.second, opts)
	r.logger.Debug("removed intermediate structure",
		"nodes", r.res.Removal.NodesRemoved,
		"edges", r.res.Removal.EdgesRemoved)
	if r.complete(PhaseRemoveIntermediate, 5) {
		return r.finish()
	}

	// CreateEdges
	rows := len(r.part.FirstVertical)
	r.res.Creation, err = CreateEdges(r.ctx, r.view, r.job.attrs, r.part, r.product, opts, func(row int) {
		if row < rows-1 {
			r.report(PhaseCreateEdges, 5+row+1)
		}
	})
	if err != nil {
		r.cancelled = true
		return r.finish()
	}
	if r.complete(PhaseCreateEdges, 5+rows) {
		return r.finish()
	}

	r.record(PhaseFinish, r.total)
	return r.finish()
}

// complete records phase p and reports whether the run must stop.
func (r *runner) complete(p Phase, done int) bool {
	r.record(p, done)
	if r.ctx.Err() != nil {
		r.cancelled = true
		return true
	}
	return false
}

func (r *runner) record(p Phase, done int) {
	now := time.Now()
	r.res.Phase = p
	r.hooks.OnPhaseComplete(r.ctx, r.job.id, p.String(), now.Sub(r.phaseStart))
	r.phaseStart = now
	r.report(p, done)
}

func (r *runner) report(p Phase, done int) {
	if fn := r.job.opts.Progress; fn != nil {
		fn(Progress{Phase: p, Label: p.Label(), Done: done, Total: r.total})
	}
}

func (r *runner) reportFailures(stats BuildStats) {
	for _, f := range stats.Failures {
		r.hooks.OnLookupError(r.ctx, r.job.id, f.Node, f.Err)
	}
}

func (r *runner) finish() Result {
	r.res.Cancelled = r.cancelled
	r.res.Duration = time.Since(r.begin)
	r.hooks.OnRunComplete(r.ctx, r.job.id, r.cancelled, r.res.Duration)
	if r.cancelled {
		r.logger.Warn("projection cancelled", "after", r.res.Phase, "duration", r.res.Duration)
	} else if r.res.Err == nil {
		r.logger.Info("projection finished",
			"created", r.res.Creation.Created,
			"removed_nodes", r.res.Removal.NodesRemoved,
			"removed_edges", r.res.Removal.EdgesRemoved,
			"duration", r.res.Duration)
	}
	return r.res
}
