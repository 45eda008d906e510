package multimode

// Phase is a step of a projection job.
type Phase int

// Phases in execution order.
const (
	PhaseStart Phase = iota
	PhasePartition
	PhaseBuildFirstMatrix
	PhaseBuildSecondMatrix
	PhaseMultiply
	PhaseRemoveIntermediate
	PhaseCreateEdges
	PhaseFinish
)

var phaseNames = [...]string{
	PhaseStart:              "Start",
	PhasePartition:          "Partition",
	PhaseBuildFirstMatrix:   "BuildFirstMatrix",
	PhaseBuildSecondMatrix:  "BuildSecondMatrix",
	PhaseMultiply:           "Multiply",
	PhaseRemoveIntermediate: "RemoveIntermediate",
	PhaseCreateEdges:        "CreateEdges",
	PhaseFinish:             "Finish",
}

var phaseLabels = [...]string{
	PhaseStart:              "Starting",
	PhasePartition:          "Partitioning nodes",
	PhaseBuildFirstMatrix:   "Building first matrix",
	PhaseBuildSecondMatrix:  "Building second matrix",
	PhaseMultiply:           "Multiplication",
	PhaseRemoveIntermediate: "Removing nodes/edges",
	PhaseCreateEdges:        "Creating new edges",
	PhaseFinish:             "Done",
}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "Unknown"
	}
	return phaseNames[p]
}

// Label returns a human-readable description of the phase.
func (p Phase) Label() string {
	if p < 0 || int(p) >= len(phaseLabels) {
		return ""
	}
	return phaseLabels[p]
}

// Progress is a progress report. Done counts completed steps out of Total.
// Total is an estimate until the partition is known; afterwards it is the
// number of first-group nodes plus one step per phase after Start.
type Progress struct {
	Phase Phase
	Label string
	Done  int
	Total int
}

// ProgressFunc receives progress reports on the job's goroutine. It must
// not block.
type ProgressFunc func(Progress)

// ChannelProgress returns a ProgressFunc that sends reports to ch, dropping
// any report that would block.
func ChannelProgress(ch chan<- Progress) ProgressFunc {
	return func(p Progress) {
		select {
		case ch <- p:
		default:
		}
	}
}

// fixedSteps is the number of progress steps that do not depend on the
// partition: Partition through RemoveIntermediate, plus Finish.
const fixedSteps = 6
